package httpd

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/vistack/dashboard/dataset"
	"github.com/vistack/dashboard/model"

	"github.com/julienschmidt/httprouter"
)

func (s *Service) initWidgetHandler() {
	s.router.POST("/api/v1/widget/build", s.handlerWidgetBuild)

	s.router.GET("/api/v1/dataset", s.handlerDatasetList)
	s.router.GET("/api/v1/dataset/default", s.handlerDatasetDefault)
}

// handlerWidgetBuild normalize the builder draft in the body to the
// widget it describes. Nothing is stored, the builder calls this on
// every edit to preview the result.
func (s *Service) handlerWidgetBuild(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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

	ReturnJson(w, 200, s.board.BuildWidget(state))
}

func (s *Service) handlerDatasetList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ReturnJson(w, 200, dataset.All())
}

// handlerDatasetDefault return the default query shape of one dataset.
// Unknown datasets resolve to the baseline shape.
func (s *Service) handlerDatasetDefault(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	d := model.Dataset(r.FormValue("dataset"))
	ReturnJson(w, 200, dataset.Defaults(d))
}
