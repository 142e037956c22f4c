package httpd

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/vistack/dashboard/authorize"
	"github.com/vistack/dashboard/board"
	"github.com/vistack/dashboard/limit"
	"github.com/vistack/dashboard/model"
	"github.com/vistack/dashboard/theme"

	"github.com/julienschmidt/httprouter"
	"github.com/lodastack/log"
	m "github.com/lodastack/store/model"
)

const (
	apiPrefix   = "/api/v1"
	signinPath  = apiPrefix + "/user/signin"
	signoutPath = apiPrefix + "/user/signout"
	checkPath   = apiPrefix + "/perm/check"
)

// Cluster is the interface op must implement.
type Cluster interface {
	// Join joins the node, reachable at addr, to the cluster.
	Join(addr string) error

	// Remove removes a node from the store, specified by addr.
	Remove(addr string) error

	// Create a bucket via distributed consensus if not exist.
	CreateBucketIfNotExist(name []byte) error

	// Remove a bucket, via distributed consensus.
	RemoveBucket(name []byte) error

	// Batch update values for given keys in given buckets, via distributed consensus.
	Batch(rows []m.Row) error

	// Backup database.
	Backup() ([]byte, error)

	// Restore database from a backup file.
	Restore(file string) error

	// Peers return the map of Raft addresses to API addresses.
	Peers() (map[string]map[string]string, error)
}

// Service provides HTTP service.
type Service struct {
	addr string
	ln   net.Listener

	router *httprouter.Router

	cluster Cluster
	board   board.Inf
	perm    authorize.Perm
	theme   *theme.Manager

	session *TokenSession
	limiter *limit.RateLimiter

	logger *log.Logger
}

// New returns an uninitialized HTTP service.
func New(addr string, cluster Cluster, b board.Inf, perm authorize.Perm, tm *theme.Manager) *Service {
	return &Service{
		addr:    addr,
		cluster: cluster,
		board:   b,
		perm:    perm,
		theme:   tm,
		router:  httprouter.New(),
		session: NewSession(),
		limiter: limit.NewRateLimiter(1, 5),
		logger:  log.New("INFO", "http", model.LogBackend),
	}
}

// Start the server
func (s *Service) Start() error {
	s.initHandler()

	server := http.Server{
		Handler: s.accessControl(s.router),
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.ln = ln

	go func() {
		err := server.Serve(s.ln)
		if err != nil {
			s.logger.Fatalf("Serve error: %s\n", err.Error())
		}
	}()
	s.logger.Println("service listening on: ", s.addr)

	return nil
}

// Close closes the service.
func (s *Service) Close() error {
	s.ln.Close()
	return nil
}

// NormalizeAddr ensures that the given URL has a HTTP protocol prefix.
// If none is supplied, it prefixes the URL with "http://".
func NormalizeAddr(addr string) string {
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		return fmt.Sprintf("http://%s", addr)
	}
	return addr
}

func (s *Service) initHandler() {
	// cluster endpoints, not under the API prefix so that nodes can
	// join before any session exists.
	s.router.GET("/peer", s.handlerPeers)
	s.router.POST("/peer", s.handlerJoin)
	s.router.DELETE("/peer", s.handlerRemove)
	s.router.GET("/backup", s.handlerBackup)
	s.router.POST("/restore", s.handlerRestore)

	s.initPermissionHandler()
	s.initProjectHandler()
	s.initDashboardHandler()
	s.initWidgetHandler()
	s.initMonitorHandler()
	s.initThemeHandler()
	s.initCatalogHandler()
}

// accessControl resolves the signin token and checks the permission of
// every API request against the resource its path names.
func (s *Service) accessControl(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, apiPrefix) ||
			r.URL.Path == signinPath || r.URL.Path == signoutPath {
			inner.ServeHTTP(w, r)
			return
		}

		token := r.Header.Get("AuthToken")
		v := s.session.Get(token)
		if v == nil {
			ReturnUnauthorized(w, "invalid or expired token")
			return
		}
		username := v.(string)
		r.Header.Set("UID", username)

		resource := s.resourceOf(r)
		if resource == "" {
			ReturnNotFound(w, "page not found")
			return
		}

		ns := r.FormValue("ns")
		if ns == "" {
			if project := r.FormValue("project"); project != "" {
				ns = board.ProjectNS(project)
			} else {
				ns = board.RootNS
			}
		}
		method := r.Method
		if r.URL.Path == checkPath {
			if probe := r.FormValue("method"); probe != "" {
				method = probe
			}
		}

		ok, err := s.perm.Check(username, ns, resource, method)
		if err != nil {
			s.logger.Errorf("check %s %s-%s-%s fail: %s", username, ns, resource, method, err.Error())
			ReturnServerError(w, err)
			return
		}
		if !ok {
			ReturnForbidden(w, "you have no permission, contact the administrators")
			return
		}
		inner.ServeHTTP(w, r)
	})
}

// resourceOf maps an API path to the resource type its permission
// items are written against.
func (s *Service) resourceOf(r *http.Request) string {
	seg := strings.Split(strings.TrimPrefix(r.URL.Path, apiPrefix+"/"), "/")
	switch seg[0] {
	case "project":
		return "project"
	case "dashboard":
		// widget and query ops live under the dashboard path.
		if len(seg) > 1 && seg[1] == "widget" {
			return "widget"
		}
		return "dashboard"
	case "widget", "dataset":
		return "widget"
	case "monitor":
		return "monitor"
	case "theme", "catalog":
		return "theme"
	case "user":
		return "user"
	case "perm":
		if len(seg) < 2 {
			return ""
		}
		switch seg[1] {
		case "check":
			return r.FormValue("resource")
		case "group":
			return "group"
		}
		return "user"
	}
	return ""
}
