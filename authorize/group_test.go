package authorize

import (
	"testing"
)

func TestCreateGroup(t *testing.T) {
	perm, s := openPerm(t)
	defer closePerm(s)

	// new Group
	if err := perm.CreateGroup("", []string{"manager1"}, []string{}, []string{"board-dashboard-GET"}); err == nil {
		t.Fatal("CreateGroup with empty name should fail")
	}
	if err := perm.SetUser("manager1", ""); err != nil {
		t.Fatal("SetUser fail:", err.Error())
	}
	if err := perm.CreateGroup("board.frontend-ops", []string{"manager1"}, []string{}, []string{"frontend.board-dashboard-PUT"}); err != nil {
		t.Fatal("CreateGroup fail:", err)
	}

	// get Group
	g, err := perm.GetGroup("board.frontend-ops")
	if err != nil {
		t.Fatal("GetGroup fail:", err.Error())
	}
	if len(g.Managers) != 1 || g.Managers[0] != "manager1" || len(g.Items) != 1 {
		t.Fatalf("GetGroup result not match with expect, %+v", g)
	}

	if err := perm.CreateGroup("board.frontend-ops", []string{}, []string{}, []string{}); err != ErrGroupAlreadyExist {
		t.Fatal("create duplicate group should fail:", err)
	}
}

func TestUpdateItems(t *testing.T) {
	perm, s := openPerm(t)
	defer closePerm(s)

	if err := perm.CreateGroup("board.frontend-ops", []string{}, []string{}, []string{"frontend.board-dashboard-GET"}); err != nil {
		t.Fatal("CreateGroup fail:", err)
	}

	items := []string{"frontend.board-dashboard-GET", "frontend.board-dashboard-PUT"}
	if err := perm.UpdateItems("board.frontend-ops", items); err != nil {
		t.Fatal("UpdateItems fail:", err.Error())
	}
	g, err := perm.GetGroup("board.frontend-ops")
	if err != nil || len(g.Items) != 2 || g.Items[1] != "frontend.board-dashboard-PUT" {
		t.Fatalf("GetGroup result not match with expect, %v, %+v", err, g)
	}

	if err := perm.UpdateItems("board.frontend-ops", []string{""}); err == nil {
		t.Fatal("UpdateItems with empty item should fail")
	}
	if err := perm.UpdateItems("ghost", items); err != ErrGroupNotFound {
		t.Fatal("UpdateItems on missing group should fail:", err)
	}
}

func TestGroupName(t *testing.T) {
	g := &Group{}
	if gName := g.GetGNameByNs("frontend.board"); gName != "board.frontend" {
		t.Fatal("GetGNameByNs not match with expect:", gName)
	}
	if gName := g.GetGNameByNs("board"); gName != "board" {
		t.Fatal("GetGNameByNs not match with expect:", gName)
	}
	if gName := g.GetNsAdminGName("frontend.board"); gName != "board.frontend-admin" {
		t.Fatal("GetNsAdminGName not match with expect:", gName)
	}

	ns, name := g.ReadGName("board.frontend-admin")
	if ns != "frontend.board" || name != "admin" {
		t.Fatal("ReadGName not match with expect:", ns, name)
	}
	ns, name = g.ReadGName("board-default")
	if ns != "board" || name != "default" {
		t.Fatal("ReadGName not match with expect:", ns, name)
	}
}

func TestListNsGroup(t *testing.T) {
	perm, s := openPerm(t)
	defer closePerm(s)

	if err := perm.CreateGroup("board.frontend-ops", []string{}, []string{}, []string{"frontend.board-dashboard-PUT"}); err != nil {
		t.Fatal("CreateGroup fail:", err)
	}
	if err := perm.CreateGroup("board.frontend-viewer", []string{}, []string{}, []string{"frontend.board-dashboard-GET"}); err != nil {
		t.Fatal("CreateGroup fail:", err)
	}
	if err := perm.CreateGroup("board.backend-ops", []string{}, []string{}, []string{"backend.board-dashboard-PUT"}); err != nil {
		t.Fatal("CreateGroup fail:", err)
	}

	groups, err := perm.ListNsGroup("frontend.board")
	if err != nil || len(groups) != 2 {
		t.Fatalf("ListNsGroup not match with expect: %v, %+v", err, groups)
	}
	for _, group := range groups {
		if group.GName != "board.frontend-ops" && group.GName != "board.frontend-viewer" {
			t.Fatalf("ListNsGroup returned stranger: %+v", group)
		}
	}
}
