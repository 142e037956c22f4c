package httpd

import (
	"net/http"
	"strings"

	"github.com/vistack/dashboard/board"

	"github.com/julienschmidt/httprouter"
)

func (s *Service) initProjectHandler() {
	s.router.GET("/api/v1/project", s.handlerProjectGet)
	s.router.POST("/api/v1/project", s.handlerProjectPost)
	s.router.DELETE("/api/v1/project", s.handlerProjectDel)

	s.router.GET("/api/v1/project/usage", s.handlerUsageGet)
}

func (s *Service) handlerProjectGet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	name := r.FormValue("name")
	if name != "" {
		project, err := s.board.GetProject(name)
		if err != nil {
			ReturnNotFound(w, "project not found")
			return
		}
		ReturnJson(w, 200, project)
		return
	}

	projects, err := s.board.ListProjects()
	if err != nil {
		s.logger.Errorf("list projects fail: %s", err.Error())
		ReturnServerError(w, err)
		return
	}
	ReturnJson(w, 200, projects)
}

// handlerProjectPost create the project and its admin group, the
// creator starts as the only manager.
func (s *Service) handlerProjectPost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	name := strings.ToLower(r.FormValue("name"))
	if name == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	creator := r.Header.Get("UID")

	id, err := s.board.CreateProject(name, creator)
	if err != nil {
		s.logger.Errorf("create project %s fail: %s", name, err.Error())
		ReturnBadRequest(w, err)
		return
	}

	ns := board.ProjectNS(name)
	gName := s.perm.GetNsAdminGName(ns)
	managers := []string{}
	if creator != "" {
		managers = append(managers, creator)
	}
	if err := s.perm.CreateGroup(gName, managers, []string{}, s.perm.AdminGroupItems(ns)); err != nil {
		s.logger.Errorf("create group %s fail: %s", gName, err.Error())
		ReturnServerError(w, err)
		return
	}
	ReturnJson(w, 200, map[string]string{"id": id, "name": name})
}

// handlerProjectDel remove the project and every group scoped to it.
func (s *Service) handlerProjectDel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	name := r.FormValue("name")
	if name == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}

	if err := s.board.DeleteProject(name); err != nil {
		s.logger.Errorf("delete project %s fail: %s", name, err.Error())
		ReturnBadRequest(w, err)
		return
	}

	ns := board.ProjectNS(name)
	gList, err := s.perm.ListNsGroup(ns)
	if err != nil {
		s.logger.Errorf("list group of %s fail: %s", ns, err.Error())
	}
	for _, g := range gList {
		if err := s.perm.RemoveGroup(g.GName); err != nil {
			s.logger.Errorf("remove group %s fail: %s", g.GName, err.Error())
		}
	}
	ReturnJson(w, 200, "OK")
}

func (s *Service) handlerUsageGet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ReturnJson(w, 200, s.board.GetUsage())
}
