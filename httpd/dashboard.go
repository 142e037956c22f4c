package httpd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/vistack/dashboard/model"
)

func (s *Service) initDashboardHandler() {
	s.router.GET("/api/v1/dashboard", s.handlerDashboardGet)
	s.router.POST("/api/v1/dashboard", s.handlerDashboardPost)
	s.router.PUT("/api/v1/dashboard", s.handlerDashboardPut)
	s.router.DELETE("/api/v1/dashboard", s.handlerDashboardDel)

	s.router.POST("/api/v1/dashboard/widget", s.handlerWidgetPost)
	s.router.POST("/api/v1/dashboard/widget/build", s.handlerWidgetBuildPost)
	s.router.PUT("/api/v1/dashboard/widget", s.handlerWidgetPut)
	s.router.PUT("/api/v1/dashboard/widget/order", s.handlerWidgetReorder)
	s.router.DELETE("/api/v1/dashboard/widget", s.handlerWidgetDel)

	s.router.POST("/api/v1/dashboard/widget/query", s.handlerQueryPost)
	s.router.PUT("/api/v1/dashboard/widget/query", s.handlerQueryPut)
	s.router.DELETE("/api/v1/dashboard/widget/query", s.handlerQueryDelete)
}

func (s *Service) handlerDashboardGet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	project := r.FormValue("project")
	if project == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	dashboards, err := s.board.GetDashboards(project)
	if err != nil {
		s.logger.Errorf("handlerDashboardGet GetDashboards fail: %s", err.Error())
		ReturnServerError(w, err)
		return
	}
	ReturnJson(w, 200, dashboards)
}

func (s *Service) handlerDashboardPost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r.Body); err != nil {
		ReturnBadRequest(w, err)
		return
	}
	var dashboard model.Dashboard
	if len(buf.Bytes()) != 0 {
		if err := json.Unmarshal(buf.Bytes(), &dashboard); err != nil {
			s.logger.Errorf("unmarshal dashboard fail: %s", err.Error())
			ReturnBadRequest(w, err)
			return
		}
	}

	project, name := r.FormValue("project"), r.FormValue("name")
	if project == "" || name == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	if err := s.board.AddDashboard(project, name, dashboard); err != nil {
		s.logger.Errorf("handlerDashboardPost AddDashboard fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, "OK")
}

func (s *Service) handlerDashboardPut(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	project, name, title := r.FormValue("project"), r.FormValue("name"), r.FormValue("title")
	if project == "" || name == "" || title == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	if err := s.board.UpdateDashboard(project, name, title); err != nil {
		s.logger.Errorf("handlerDashboardPut UpdateDashboard fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, "OK")
}

func (s *Service) handlerDashboardDel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	project, name := r.FormValue("project"), r.FormValue("name")
	if project == "" || name == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	if err := s.board.DeleteDashboard(project, name); err != nil {
		s.logger.Errorf("delete dashboard fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, "OK")
}

func (s *Service) handlerWidgetPost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r.Body); err != nil {
		ReturnBadRequest(w, err)
		return
	}
	var widget model.Widget
	if err := json.Unmarshal(buf.Bytes(), &widget); err != nil {
		s.logger.Errorf("unmarshal widget fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}

	project, name := r.FormValue("project"), r.FormValue("name")
	if project == "" || name == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	id, err := s.board.AddWidget(project, name, widget)
	if err != nil {
		s.logger.Errorf("AddWidget fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, map[string]string{"id": id})
}

// handlerWidgetBuildPost normalize the builder draft in the body and
// append the built widget to the dashboard.
func (s *Service) handlerWidgetBuildPost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r.Body); err != nil {
		ReturnBadRequest(w, err)
		return
	}
	var state model.BuilderState
	if err := json.Unmarshal(buf.Bytes(), &state); err != nil {
		s.logger.Errorf("unmarshal builder state fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}

	project, name := r.FormValue("project"), r.FormValue("name")
	if project == "" || name == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	widget, err := s.board.AddBuiltWidget(project, name, state)
	if err != nil {
		s.logger.Errorf("AddBuiltWidget fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, widget)
}

func (s *Service) handlerWidgetPut(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	project, name, title, displayType, index :=
		r.FormValue("project"), r.FormValue("name"), r.FormValue("title"), r.FormValue("type"), r.FormValue("index")
	i, err := strconv.Atoi(index)
	if project == "" || name == "" || err != nil {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}

	if err := s.board.UpdateWidget(project, name, i, title, model.DisplayType(displayType)); err != nil {
		s.logger.Errorf("UpdateWidget fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, "OK")
}

func (s *Service) handlerWidgetReorder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r.Body); err != nil {
		ReturnBadRequest(w, err)
		return
	}
	var newOrder []int
	if err := json.Unmarshal(buf.Bytes(), &newOrder); err != nil {
		s.logger.Errorf("unmarshal widget order fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}

	project, name := r.FormValue("project"), r.FormValue("name")
	if project == "" || name == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}

	if err := s.board.ReorderWidget(project, name, newOrder); err != nil {
		s.logger.Errorf("ReorderWidget fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, "OK")
}

func (s *Service) handlerWidgetDel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	project, name, index := r.FormValue("project"), r.FormValue("name"), r.FormValue("index")
	i, err := strconv.Atoi(index)
	if project == "" || name == "" || err != nil {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	if err := s.board.DelWidget(project, name, i); err != nil {
		s.logger.Errorf("DelWidget fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, "OK")
}

func (s *Service) handlerQueryPost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r.Body); err != nil {
		ReturnBadRequest(w, err)
		return
	}
	var query model.WidgetQuery
	if err := json.Unmarshal(buf.Bytes(), &query); err != nil {
		s.logger.Errorf("unmarshal widget query fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}

	project, name, widgetIndex := r.FormValue("project"), r.FormValue("name"), r.FormValue("wIndex")
	if project == "" || name == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	wIndex, err := strconv.Atoi(widgetIndex)
	if err != nil {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	if err := s.board.AppendQuery(project, name, wIndex, query); err != nil {
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, "OK")
}

func (s *Service) handlerQueryPut(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r.Body); err != nil {
		ReturnBadRequest(w, err)
		return
	}
	var query model.WidgetQuery
	if err := json.Unmarshal(buf.Bytes(), &query); err != nil {
		s.logger.Errorf("unmarshal widget query fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}

	project, name, widgetIndex, queryIndex := r.FormValue("project"), r.FormValue("name"), r.FormValue("wIndex"), r.FormValue("qIndex")
	if project == "" || name == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	wIndex, err := strconv.Atoi(widgetIndex)
	if err != nil {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	qIndex, err := strconv.Atoi(queryIndex)
	if err != nil {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	if err := s.board.UpdateQuery(project, name, wIndex, qIndex, query); err != nil {
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, "OK")
}

func (s *Service) handlerQueryDelete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	project, name, widgetIndex, queryIndex := r.FormValue("project"), r.FormValue("name"), r.FormValue("wIndex"), r.FormValue("qIndex")
	if project == "" || name == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	wIndex, err := strconv.Atoi(widgetIndex)
	if err != nil {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	qIndex, err := strconv.Atoi(queryIndex)
	if err != nil {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	if err := s.board.DelQuery(project, name, wIndex, qIndex); err != nil {
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, "OK")
}
