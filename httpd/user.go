package httpd

import (
	"net"
	"net/http"
	"strings"

	"github.com/vistack/dashboard/authorize"
	"github.com/vistack/dashboard/common"
	"github.com/vistack/dashboard/config"

	"github.com/julienschmidt/httprouter"
)

// UserToken struct
type UserToken struct {
	User  string `json:"user"`
	Token string `json:"token"`
}

func (s *Service) initPermissionHandler() {
	s.router.POST("/api/v1/user/signin", s.HandlerSignin)
	s.router.GET("/api/v1/user/signout", s.HandlerSignout)

	s.router.GET("/api/v1/perm/group", s.HandlerGroupGet)
	s.router.GET("/api/v1/perm/group/list", s.HandlerGroupList)
	s.router.POST("/api/v1/perm/group", s.HandlerGroupCreate)
	s.router.PUT("/api/v1/perm/group/item", s.HandlerUpdateGroupItem)
	s.router.PUT("/api/v1/perm/group/member", s.HandlerUpdateGroupMember)
	s.router.DELETE("/api/v1/perm/group", s.HandlerRemoveGroup)

	s.router.GET("/api/v1/perm/user", s.HandlerUserGet)
	s.router.GET("/api/v1/perm/user/list", s.HandlerUserListGet)
	s.router.PUT("/api/v1/perm/user", s.HandlerUserSet)
	s.router.DELETE("/api/v1/perm/user", s.HandlerRemoveUser)

	// response ok if the request pass permission check.
	s.router.GET("/api/v1/perm/check", s.nilHandler)
	s.router.POST("/api/v1/perm/check", s.nilHandler)
	s.router.PUT("/api/v1/perm/check", s.nilHandler)
	s.router.DELETE("/api/v1/perm/check", s.nilHandler)
}

// HandlerSignin handler signin request
func (s *Service) HandlerSignin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if !s.limiter.GetVisitor(ip).Allow() {
		WriteResponse(w, http.StatusTooManyRequests, "too many signin attempts", nil)
		return
	}

	user := strings.ToLower(r.FormValue("username"))
	pass := r.FormValue("password")
	if user == "" || pass == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}

	if config.C.LDAPConf.Enable {
		if err := LDAPAuth(user, pass); err != nil {
			ReturnUnauthorized(w, err.Error())
			return
		}
	}

	ok, err := s.perm.CheckUserExist(user)
	if err != nil {
		s.logger.Errorf("check user fail: %s", err.Error())
		ReturnServerError(w, err)
		return
	} else if !ok {
		// the first signin has to be unlocked by an admin.
		ReturnForbidden(w, "you have no permission, contact the administrators")
		return
	}

	token := common.GenUUID()
	s.session.Set(token, user)
	ReturnJson(w, 200, UserToken{User: user, Token: token})
}

// HandlerSignout handler signout request
func (s *Service) HandlerSignout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var user string
	token := r.Header.Get("AuthToken")
	v := s.session.Get(token)
	if v == nil {
		ReturnJson(w, 200, UserToken{Token: token})
		return
	}
	user = v.(string)
	s.session.Delete(token)
	ReturnJson(w, 200, UserToken{User: user, Token: token})
}

// HandlerGroupGet handle query group resquest
func (s *Service) HandlerGroupGet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	gName := strings.ToLower(r.FormValue("gname"))
	if gName == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	g, err := s.perm.GetGroup(gName)
	if err != nil {
		ReturnNotFound(w, "group not found")
		return
	}
	ReturnJson(w, 200, g)
}

// HandlerGroupList handle query group list resquest
func (s *Service) HandlerGroupList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ns := strings.ToLower(r.FormValue("ns"))
	if ns == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	gList, err := s.perm.ListNsGroup(ns)
	if err != nil {
		ReturnNotFound(w, "group not found")
		return
	}
	ReturnJson(w, 200, gList)
}

// HandlerGroupCreate create a group under the ns with its items.
func (s *Service) HandlerGroupCreate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	name := strings.ToLower(r.FormValue("gname"))
	ns := r.FormValue("ns")
	itemStr := r.FormValue("items")
	managers := r.FormValue("managers")
	members := r.FormValue("members")

	for _, gnameLetter := range name {
		if gnameLetter >= 'a' && gnameLetter <= 'z' {
			continue
		}
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}

	gName := ""
	if ns != "" && name != "" {
		gName = s.perm.GetGNameByNs(ns) + "-" + name
	}
	if gName == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}

	err := s.perm.CreateGroup(gName,
		splitParam(managers),
		splitParam(members),
		splitParam(itemStr))
	if err != nil {
		s.logger.Errorf("create group fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnOK(w, "success")
}

// HandlerUpdateGroupItem handle update group resquest
func (s *Service) HandlerUpdateGroupItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	gName := strings.ToLower(r.FormValue("gname"))
	itemStr := r.FormValue("items")
	if gName == "" || itemStr == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}

	if err := s.perm.UpdateItems(gName, strings.Split(itemStr, ",")); err != nil {
		s.logger.Errorf("update group item fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnOK(w, "success")
}

// HandlerUpdateGroupMember add or remove managers/members of a group.
// Users known to LDAP but not signed up yet are created on the fly.
func (s *Service) HandlerUpdateGroupMember(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	gName := strings.ToLower(r.FormValue("gname"))
	if gName == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	managers := splitParam(r.FormValue("managers"))
	members := splitParam(r.FormValue("members"))
	action := r.FormValue("action")
	if action == "" {
		action = authorize.Add
	}

	if action == authorize.Add {
		allUser := append(managers, members...)
		for _, user := range allUser {
			ok, err := s.perm.CheckUserExist(user)
			if err != nil {
				ReturnServerError(w, err)
				return
			} else if !ok {
				if config.C.LDAPConf.Enable && !LDAPUserExist(user) {
					ReturnNotFound(w, "unknown user "+user)
					return
				}
				if err = s.perm.SetUser(user, ""); err != nil {
					s.logger.Errorf("set user fail: %s", err.Error())
					ReturnServerError(w, err)
					return
				}
			}
		}
	}

	if err := s.perm.UpdateMember(gName, managers, members, action); err != nil {
		ReturnServerError(w, err)
		return
	}
	ReturnOK(w, "success")
}

// HandlerRemoveGroup handle remove group request
func (s *Service) HandlerRemoveGroup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	gName := strings.ToLower(r.FormValue("gname"))
	if gName == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}

	if err := s.perm.RemoveGroup(gName); err != nil {
		ReturnServerError(w, err)
		return
	}
	ReturnJson(w, 200, "success")
}

// HandlerUserGet handle query user resquest
func (s *Service) HandlerUserGet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	username := strings.ToLower(r.FormValue("username"))
	if username == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	u, err := s.perm.GetUser(username)
	if err != nil {
		ReturnNotFound(w, "user not found")
		return
	}
	ReturnJson(w, 200, u)
}

// HandlerUserListGet handle query user list resquest
func (s *Service) HandlerUserListGet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	usernames := splitParam(r.FormValue("usernames"))

	userData, err := s.perm.GetUserList(usernames)
	if err != nil {
		ReturnServerError(w, err)
		return
	}
	ReturnJson(w, 200, userData)
}

// HandlerUserSet handle set user resquest. A user may only edit their
// own profile.
func (s *Service) HandlerUserSet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	username := strings.ToLower(r.FormValue("username"))
	email := r.FormValue("email")
	if username == "" ||
		(r.Header.Get(`UID`) != "" && username != r.Header.Get(`UID`)) {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}

	if err := s.perm.SetUser(username, email); err != nil {
		s.logger.Errorf("set user fail: %s", err.Error())
		ReturnServerError(w, err)
		return
	}
	ReturnOK(w, "success")
}

// HandlerRemoveUser drop the user and pull them out of their groups.
func (s *Service) HandlerRemoveUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	username := strings.ToLower(r.FormValue("username"))
	if username == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}

	if err := s.perm.RemoveUser(username); err != nil {
		ReturnServerError(w, err)
		return
	}
	ReturnJson(w, 200, "success")
}

func (s *Service) nilHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ReturnJson(w, 200, "success")
}

// splitParam split a comma separated param, "" means none rather than
// one empty name.
func splitParam(param string) []string {
	if param == "" {
		return []string{}
	}
	return strings.Split(param, ",")
}
