package httpd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vistack/dashboard/model"

	"github.com/julienschmidt/httprouter"
)

// MonitorPartition is the connected/unconnected split the automations
// drawer renders.
type MonitorPartition struct {
	Connected   []model.Monitor `json:"connected"`
	Unconnected []model.Monitor `json:"unconnected"`
}

func (s *Service) initMonitorHandler() {
	s.router.GET("/api/v1/monitor", s.handlerMonitorGet)
	s.router.POST("/api/v1/monitor", s.handlerMonitorPost)
	s.router.PUT("/api/v1/monitor", s.handlerMonitorPut)
	s.router.DELETE("/api/v1/monitor", s.handlerMonitorDel)

	s.router.PUT("/api/v1/monitor/connection", s.handlerMonitorConnection)
	s.router.GET("/api/v1/monitor/partition", s.handlerMonitorPartition)
}

func (s *Service) handlerMonitorGet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	project := r.FormValue("project")
	if project == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	monitors, err := s.board.ListMonitors(project)
	if err != nil {
		s.logger.Errorf("ListMonitors fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, monitors)
}

func (s *Service) handlerMonitorPost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r.Body); err != nil {
		ReturnBadRequest(w, err)
		return
	}
	var monitor model.Monitor
	if err := json.Unmarshal(buf.Bytes(), &monitor); err != nil {
		s.logger.Errorf("unmarshal monitor fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}

	project := r.FormValue("project")
	if project == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	if monitor.Creator == "" {
		monitor.Creator = r.Header.Get("UID")
	}
	id, err := s.board.AddMonitor(project, monitor)
	if err != nil {
		s.logger.Errorf("AddMonitor fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, map[string]string{"id": id})
}

func (s *Service) handlerMonitorPut(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r.Body); err != nil {
		ReturnBadRequest(w, err)
		return
	}
	var monitor model.Monitor
	if err := json.Unmarshal(buf.Bytes(), &monitor); err != nil {
		s.logger.Errorf("unmarshal monitor fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}

	project := r.FormValue("project")
	if project == "" || monitor.ID == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	if err := s.board.UpdateMonitor(project, monitor); err != nil {
		s.logger.Errorf("UpdateMonitor fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, "OK")
}

func (s *Service) handlerMonitorDel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	project, id := r.FormValue("project"), r.FormValue("id")
	if project == "" || id == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	if err := s.board.DeleteMonitor(project, id); err != nil {
		s.logger.Errorf("DeleteMonitor fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, "OK")
}

// handlerMonitorConnection connect or disconnect one monitor. A
// disconnect pings the purge URL so downstream status caches drop it.
func (s *Service) handlerMonitorConnection(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	project, id := r.FormValue("project"), r.FormValue("id")
	connected, err := strconv.ParseBool(r.FormValue("connected"))
	if project == "" || id == "" || err != nil {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}

	monitor, err := s.board.SetConnection(project, id, connected)
	if err != nil {
		s.logger.Errorf("SetConnection fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	if !connected {
		purgeMonitorStatus(project, monitor.ID)
	}
	ReturnJson(w, 200, monitor)
}

func (s *Service) handlerMonitorPartition(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	project := r.FormValue("project")
	if project == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	connected, unconnected, err := s.board.PartitionMonitors(project)
	if err != nil {
		s.logger.Errorf("PartitionMonitors fail: %s", err.Error())
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, MonitorPartition{Connected: connected, Unconnected: unconnected})
}
