package authorize

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/vistack/dashboard/common"

	"github.com/lodastack/log"
	m "github.com/lodastack/store/model"
)

var (
	AuthBuck = "authorize"

	// DefaultUser carries the builtin groups, it is not a signin account.
	DefaultUser = "default"

	defaultGName = rootNS + "-default"
	adminGName   = rootNS + "-admin"
)

// UpdateMember actions.
const (
	Add    = "add"
	Remove = "remove"
)

// resources the permission items cover.
var resources = []string{"project", "dashboard", "widget", "monitor", "theme", "user", "group"}

type perm struct {
	sync.RWMutex
	Group
	User
	cluster Cluster
}

// check whether one query has the permission.
func (p *perm) Check(username, ns, resource, method string) (bool, error) {
	u, err := p.GetUser(username)
	if err != nil {
		return false, errors.New("get user fail: " + err.Error())
	}
	if len(u.Groups) == 0 {
		return false, errors.New("user has no group")
	}

	q := ns + "-" + resource + "-" + method
	for _, gName := range u.Groups {
		g, err := p.GetGroup(gName)
		if err != nil {
			log.Errorf("get group %s fail: %s", gName, err.Error())
			continue
		}
		for _, item := range g.Items {
			if item == "" {
				continue
			}
			// if has the perm of the ns or its parent, pass.
			if strings.HasSuffix(q, item) {
				return true, nil
			}
		}
	}
	return false, nil
}

// default group reads every resource, builds widgets, writes monitors
// and updates the own profile.
func (p *perm) DefaultGroupItems(ns string) []string {
	items := make([]string, 0, len(resources)+3)
	for _, res := range resources {
		items = append(items, fmt.Sprintf("%s-%s-%s", ns, res, "GET"))
	}
	items = append(items,
		fmt.Sprintf("%s-widget-%s", ns, "POST"),
		fmt.Sprintf("%s-monitor-%s", ns, "PUT"),
		fmt.Sprintf("%s-user-%s", ns, "PUT"))
	return items
}

func (p *perm) AdminGroupItems(ns string) []string {
	items := make([]string, len(resources)*4)
	for index, res := range resources {
		items[index*4] = fmt.Sprintf("%s-%s-%s", ns, res, "GET")
		items[index*4+1] = fmt.Sprintf("%s-%s-%s", ns, res, "PUT")
		items[index*4+2] = fmt.Sprintf("%s-%s-%s", ns, res, "POST")
		items[index*4+3] = fmt.Sprintf("%s-%s-%s", ns, res, "DELETE")
	}
	return items
}

// InitGroup create the builtin groups and the default user.
func (p *perm) InitGroup(rootNS string) error {
	if _, err := p.CreateIfNotExist(Group{
		GName: defaultGName,
		Items: p.DefaultGroupItems(rootNS),
	}); err != nil {
		return errors.New("init default group fail: " + err.Error())
	}
	if _, err := p.CreateIfNotExist(Group{
		GName: adminGName,
		Items: p.AdminGroupItems(rootNS),
	}); err != nil {
		return errors.New("init admin group fail: " + err.Error())
	}

	_, err := p.GetUser(DefaultUser)
	if err == nil {
		return nil
	}
	if err != ErrUserNotFound {
		return errors.New("get default user fail: " + err.Error())
	}
	u := User{
		Username: DefaultUser,
		Groups:   []string{defaultGName, adminGName},
	}
	uByte, err := u.Byte()
	if err != nil {
		return err
	}
	return p.cluster.Update([]byte(AuthBuck), getUKey(DefaultUser), uByte)
}

// CreateGroup create a group and put the members into it.
func (p *perm) CreateGroup(gName string, managers, members, items []string) error {
	if gName == "" {
		return common.ErrInvalidParam
	}
	if err := p.Group.CreateGroup(gName, items); err != nil {
		return err
	}
	if len(managers) == 0 && len(members) == 0 {
		return nil
	}
	return p.UpdateMember(gName, managers, members, Add)
}

// UpdateMember add or remove the managers/members of the group. The
// group row and the user rows go in one batch.
func (p *perm) UpdateMember(group string, managers, members []string, action string) error {
	p.Lock()
	defer p.Unlock()

	var groupRow m.Row
	var err error
	switch action {
	case Add:
		groupRow, err = p.UpdateGroupMember(group, managers, members, nil, nil)
	case Remove:
		groupRow, err = p.UpdateGroupMember(group, nil, nil, managers, members)
	default:
		return common.ErrInvalidParam
	}
	if err != nil {
		return err
	}
	rows := []m.Row{groupRow}

	usernames := []string{}
	for _, username := range managers {
		usernames, _ = common.AddIfNotContain(usernames, username)
	}
	for _, username := range members {
		usernames, _ = common.AddIfNotContain(usernames, username)
	}
	for _, username := range usernames {
		var userRow m.Row
		if action == Add {
			userRow, err = p.UpdateUser(username, group, "")
		} else {
			userRow, err = p.UpdateUser(username, "", group)
		}
		if err != nil {
			return err
		}
		rows = append(rows, userRow)
	}
	return p.cluster.Batch(rows)
}

// RemoveUser remove the user and take him out of his groups.
func (p *perm) RemoveUser(username string) error {
	p.Lock()
	defer p.Unlock()

	groups, err := p.UserRemoveUser(username)
	if err != nil {
		return err
	}

	var rows []m.Row
	for _, gName := range groups {
		row, err := p.UpdateGroupMember(gName, nil, nil, []string{username}, []string{username})
		if err != nil {
			if err == ErrGroupNotFound {
				continue
			}
			return err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil
	}
	return p.cluster.Batch(rows)
}

// RemoveGroup remove the group and take it out of the member group
// lists. The builtin groups stay.
func (p *perm) RemoveGroup(gName string) error {
	if gName == defaultGName || gName == adminGName {
		return common.ErrNotAllowDel
	}
	p.Lock()
	defer p.Unlock()

	managerAndMember, err := p.GroupRemoveGroup(gName)
	if err != nil {
		return err
	}

	usernames := []string{}
	for _, username := range managerAndMember {
		usernames, _ = common.AddIfNotContain(usernames, username)
	}
	var rows []m.Row
	for _, username := range usernames {
		row, err := p.UpdateUser(username, "", gName)
		if err != nil {
			if err == ErrUserNotFound {
				continue
			}
			return err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil
	}
	return p.cluster.Batch(rows)
}
