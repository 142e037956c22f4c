package httpd

import (
	"net/http"

	"github.com/vistack/dashboard/catalog"

	"github.com/julienschmidt/httprouter"
)

func (s *Service) initCatalogHandler() {
	s.router.GET("/api/v1/catalog/icons", s.handlerIconList)
	s.router.GET("/api/v1/catalog/icon", s.handlerIconGet)
	s.router.GET("/api/v1/catalog/actions", s.handlerActionList)
	s.router.GET("/api/v1/catalog/action", s.handlerActionGet)
}

func (s *Service) handlerIconList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ReturnJson(w, 200, catalog.Icons())
}

// handlerIconGet never 404s, unknown plugins get the placeholder icon.
func (s *Service) handlerIconGet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	plugin := r.FormValue("plugin")
	if plugin == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	ReturnJson(w, 200, map[string]string{"plugin": plugin, "icon": catalog.Icon(plugin)})
}

func (s *Service) handlerActionList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ReturnJson(w, 200, catalog.Actions())
}

func (s *Service) handlerActionGet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	actionType := r.FormValue("type")
	if actionType == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	meta, err := catalog.Action(catalog.ActionType(actionType))
	if err != nil {
		ReturnNotFound(w, err.Error())
		return
	}
	ReturnJson(w, 200, meta)
}
