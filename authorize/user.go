package authorize

import (
	"encoding/json"
	"errors"

	"github.com/vistack/dashboard/common"
	"github.com/vistack/dashboard/config"

	"github.com/lodastack/log"
	m "github.com/lodastack/store/model"
)

// ErrUserNotFound is returned when the username has no record.
var ErrUserNotFound = errors.New("user not found")

// User is the infomation one user has.
type User struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Groups   []string `json:"groups"`

	cluster Cluster `json:"-"`
}

func getUKey(username string) []byte { return []byte("u-" + username) }

// Byte return the user at []byte format.
func (u *User) Byte() ([]byte, error) {
	return json.Marshal(u)
}

// GetUser return user by username.
func (u *User) GetUser(username string) (User, error) {
	out := User{}
	uByte, err := u.cluster.View([]byte(AuthBuck), getUKey(username))
	if err != nil {
		return out, err
	}
	if len(uByte) == 0 {
		return out, ErrUserNotFound
	}
	err = json.Unmarshal(uByte, &out)
	return out, err
}

// GetUserList return user list by username list.
func (u *User) GetUserList(usernames []string) (map[string]User, error) {
	Users := make(map[string]User, len(usernames))
	for _, username := range usernames {
		if username == "" {
			continue
		}
		user, err := u.GetUser(username)
		if err != nil {
			log.Errorf("GetUser %s error: %s", username, err.Error())
			continue
		}
		Users[username] = user
	}

	return Users, nil
}

// CheckUserExist return the username exist or not.
func (u *User) CheckUserExist(username string) (bool, error) {
	if username == "" {
		return false, common.ErrInvalidParam
	}
	if _, err := u.GetUser(username); err != nil {
		if err == ErrUserNotFound {
			return false, nil
		}
		log.Errorf("GetUser %s fail: %s", username, err.Error())
		return false, err
	}
	return true, nil
}

// SetUser create/update user. But will not init/update groups.
func (u *User) SetUser(username, email string) error {
	if username == "" {
		return common.ErrInvalidParam
	}

	us, err := u.GetUser(username)
	if err != nil {
		// create a user.
		us.Username = username
		us.Email = email
		if _, ok := common.ContainString(config.C.CommonConf.Admins, username); ok {
			us.Groups = []string{adminGName}
		} else {
			us.Groups = []string{defaultGName}
		}
	} else {
		// update the user.
		if email != "" {
			us.Email = email
		}
	}

	uByte, err := us.Byte()
	if err != nil {
		return err
	}
	return u.cluster.Update([]byte(AuthBuck), getUKey(username), uByte)
}

// UserRemoveUser remove the user and return the groups the user had.
func (u *User) UserRemoveUser(username string) ([]string, error) {
	us, err := u.GetUser(username)
	if err != nil {
		return nil, err
	}

	return us.Groups, u.cluster.RemoveKey([]byte(AuthBuck), getUKey(username))
}

// UpdateUser add or remove the user to or from group.
func (u *User) UpdateUser(username string, addGroup string, removeGroup string) (m.Row, error) {
	updateRow := m.Row{}
	user, err := u.GetUser(username)
	if err != nil {
		return updateRow, err
	}

	if addGroup != "" {
		user.Groups, _ = common.AddIfNotContain(user.Groups, addGroup)
	}
	if removeGroup != "" {
		user.Groups, _ = common.RemoveIfContain(user.Groups, removeGroup)
	}

	newUserByte, err := user.Byte()
	if err != nil {
		return updateRow, err
	}

	updateRow = m.Row{Bucket: []byte(AuthBuck), Key: getUKey(username), Value: newUserByte}
	return updateRow, nil
}
