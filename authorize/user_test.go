package authorize

import (
	"testing"

	"github.com/vistack/dashboard/config"
)

func TestSetUser(t *testing.T) {
	perm, s := openPerm(t)
	defer closePerm(s)

	config.C.CommonConf.Admins = []string{"admin1"}

	// new User
	if err := perm.SetUser("manager1", "manager1@vistack.io"); err != nil {
		t.Fatal("SetUser fail:", err.Error())
	}
	user, err := perm.GetUser("manager1")
	if err != nil || len(user.Groups) != 1 || user.Groups[0] != defaultGName || user.Email != "manager1@vistack.io" {
		t.Fatalf("GetUser not match with expect: %v, %+v", err, user)
	}

	// an admin lands in the admin group.
	if err := perm.SetUser("admin1", ""); err != nil {
		t.Fatal("SetUser fail:", err.Error())
	}
	user, err = perm.GetUser("admin1")
	if err != nil || len(user.Groups) != 1 || user.Groups[0] != adminGName {
		t.Fatalf("GetUser not match with expect: %v, %+v", err, user)
	}

	// update keeps the groups.
	if err := perm.SetUser("manager1", "m1@vistack.io"); err != nil {
		t.Fatal("SetUser fail:", err.Error())
	}
	user, err = perm.GetUser("manager1")
	if err != nil || len(user.Groups) != 1 || user.Email != "m1@vistack.io" {
		t.Fatalf("GetUser not match with expect: %v, %+v", err, user)
	}

	if err := perm.SetUser("", ""); err == nil {
		t.Fatal("SetUser with empty username should fail")
	}
}

func TestGetUserList(t *testing.T) {
	perm, s := openPerm(t)
	defer closePerm(s)

	err1 := perm.SetUser("user1", "user1@vistack.io")
	err2 := perm.SetUser("user2", "user2@vistack.io")
	if err1 != nil || err2 != nil {
		t.Fatal("SetUser fail:", err1, err2)
	}

	// case1
	usernames := []string{"user1", "user2"}
	users, err := perm.GetUserList(usernames)
	if err != nil {
		t.Fatal("GetUserList case1 fail:", users, err)
	} else {
		if user1, ok := users["user1"]; !ok || user1.Email != "user1@vistack.io" {
			t.Fatalf("user1 not match with expect, %+v, %v", user1, err)
		}
		if user2, ok := users["user2"]; !ok || user2.Email != "user2@vistack.io" {
			t.Fatalf("user2 not match with expect, %+v, %v", user2, err)
		}
	}

	// case2
	usernames = []string{"user1", "user2", "user3"}
	users, err = perm.GetUserList(usernames)
	if err != nil {
		t.Fatal("GetUserList case2 fail:", users, err)
	} else {
		user1, ok1 := users["user1"]
		user2, ok2 := users["user2"]
		if !ok1 ||
			!ok2 ||
			user1.Email != "user1@vistack.io" ||
			user2.Email != "user2@vistack.io" {
			t.Fatalf("get user1/2 not match with expect, %+v,%+v, %v", user1, user2, err)
		}
		if _, ok := users["user3"]; ok {
			t.Fatalf("get user3 success, not match with expect")
		}
	}
}

func TestCheckUserExist(t *testing.T) {
	perm, s := openPerm(t)
	defer closePerm(s)

	if err := perm.SetUser("user1", ""); err != nil {
		t.Fatal("SetUser fail:", err.Error())
	}
	if exist, err := perm.CheckUserExist("user1"); err != nil || !exist {
		t.Fatal("CheckUserExist fail:", exist, err)
	}
	if exist, err := perm.CheckUserExist("ghost"); err != nil || exist {
		t.Fatal("CheckUserExist fail:", exist, err)
	}
	if _, err := perm.CheckUserExist(""); err == nil {
		t.Fatal("CheckUserExist with empty username should fail")
	}
}
