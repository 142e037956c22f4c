package httpd

import (
	"net/http"

	"github.com/vistack/dashboard/theme"

	"github.com/julienschmidt/httprouter"
)

func (s *Service) initThemeHandler() {
	s.router.GET("/api/v1/theme", s.handlerThemeGet)
	s.router.GET("/api/v1/theme/list", s.handlerThemeList)
	s.router.PUT("/api/v1/theme", s.handlerThemePut)
}

func (s *Service) handlerThemeGet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ReturnJson(w, 200, s.theme.Current())
}

func (s *Service) handlerThemeList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ReturnJson(w, 200, theme.Modes())
}

func (s *Service) handlerThemePut(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	mode := r.FormValue("mode")
	if mode == "" {
		ReturnBadRequest(w, ErrInvalidParam)
		return
	}
	t, err := s.theme.Update(theme.Mode(mode))
	if err != nil {
		ReturnBadRequest(w, err)
		return
	}
	ReturnJson(w, 200, t)
}
