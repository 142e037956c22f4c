package board

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vistack/dashboard/board/cluster"
	"github.com/vistack/dashboard/common"
	"github.com/vistack/dashboard/config"
	"github.com/vistack/dashboard/model"

	"github.com/lodastack/log"
	"github.com/pquerna/ffjson/ffjson"
)

const (
	metaBucket  = "board"
	projectsKey = "projects"

	dashboardDoc = "dashboard"
	monitorDoc   = "monitor"
)

const (
	// RootNS is the permission scope every project hangs off.
	RootNS = "board"

	nsDeli = "."
)

// ProjectNS returns the permission scope of one project. A permission
// item granted on RootNS matches every project by suffix.
func ProjectNS(name string) string {
	return name + nsDeli + RootNS
}

// Inf is the board ops the API layer needs.
type Inf interface {
	// CreateProject create a project and return its id.
	CreateProject(name, creator string) (string, error)

	// GetProject return the project by name.
	GetProject(name string) (model.Project, error)

	// ListProjects return every project sorted by name.
	ListProjects() ([]model.Project, error)

	// DeleteProject remove an empty project.
	DeleteProject(name string) error

	// GetUsage return the op counters.
	GetUsage() map[string]int64

	DashboardInf
	MonitorInf
}

// Board manages the projects and their dashboards and monitors.
type Board struct {
	cluster cluster.Inf
	Mu      sync.RWMutex
	logger  *log.Logger

	monitors monitorCaches
	usage    usageInfo
}

// NewBoard return Board obj.
func NewBoard(c cluster.Inf) (*Board, error) {
	b := Board{
		cluster: c,
		logger:  log.New(config.C.LogConf.Level, "board", model.LogBackend),
		monitors: monitorCaches{
			cache: make(map[string]*monitorCache),
		},
		usage: usageInfo{
			Counters: make(map[string]int64),
		},
	}
	err := b.init()
	return &b, err
}

func (b *Board) init() error {
	if err := b.cluster.CreateBucketIfNotExist([]byte(metaBucket)); err != nil {
		b.logger.Errorf("board %s CreateBucketIfNotExist fail: %s", metaBucket, err.Error())
		return common.ErrInitBucket
	}
	if err := b.initUsage(); err != nil {
		return err
	}
	b.startLoops()
	return nil
}

func (b *Board) readProjects() (map[string]model.Project, error) {
	v, err := b.cluster.View([]byte(metaBucket), []byte(projectsKey))
	if err != nil {
		return nil, err
	}
	projects := make(map[string]model.Project)
	if len(v) == 0 {
		return projects, nil
	}
	if err := ffjson.Unmarshal(v, &projects); err != nil {
		b.logger.Errorf("unmarshal projects fail, error: %s, data: %s:", err, string(v))
		return nil, err
	}
	return projects, nil
}

func (b *Board) saveProjects(projects map[string]model.Project) error {
	data, err := ffjson.Marshal(projects)
	if err != nil {
		b.logger.Errorf("marshal projects fail: %s", err.Error())
		return err
	}
	return b.cluster.Update([]byte(metaBucket), []byte(projectsKey), data)
}

// projectID resolves a project name to the bucket its documents live
// in.
func (b *Board) projectID(name string) (string, error) {
	projects, err := b.readProjects()
	if err != nil {
		return "", err
	}
	p, ok := projects[name]
	if !ok {
		return "", common.ErrProjectNotFound
	}
	return p.ID, nil
}

func invalidProjectName(name string) bool {
	return name == "" || strings.ContainsAny(name, "-. /")
}

// CreateProject registers the project and creates the bucket its
// documents live in. The name feeds permission items and the ns
// scheme, so the separators of both are rejected.
func (b *Board) CreateProject(name, creator string) (string, error) {
	if invalidProjectName(name) {
		return "", common.ErrInvalidParam
	}
	b.Mu.Lock()
	defer b.Mu.Unlock()

	projects, err := b.readProjects()
	if err != nil {
		return "", err
	}
	if _, ok := projects[name]; ok {
		return "", common.ErrProjectAlreadyExist
	}

	p := model.Project{
		ID:       common.GenUUID(),
		Name:     name,
		Creator:  creator,
		CreateAt: time.Now().Unix(),
	}
	if err := b.cluster.CreateBucket([]byte(p.ID)); err != nil {
		b.logger.Errorf("create bucket for project %s fail: %s", name, err.Error())
		return "", err
	}

	projects[name] = p
	if err := b.saveProjects(projects); err != nil {
		// roll the bucket back so a retry can succeed.
		if e := b.cluster.RemoveBucket([]byte(p.ID)); e != nil {
			b.logger.Errorf("rollback bucket %s fail: %s", p.ID, e.Error())
		}
		return "", err
	}
	b.incrUsage("project.create")
	return p.ID, nil
}

// GetProject return the project by name.
func (b *Board) GetProject(name string) (model.Project, error) {
	projects, err := b.readProjects()
	if err != nil {
		return model.Project{}, err
	}
	p, ok := projects[name]
	if !ok {
		return model.Project{}, common.ErrProjectNotFound
	}
	return p, nil
}

// ListProjects return every project sorted by name.
func (b *Board) ListProjects() ([]model.Project, error) {
	projects, err := b.readProjects()
	if err != nil {
		return nil, err
	}
	list := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// DeleteProject removes the project and its bucket. A project that
// still has dashboards or monitors is not allowed to go.
func (b *Board) DeleteProject(name string) error {
	dashboards, err := b.GetDashboards(name)
	if err != nil {
		return err
	}
	ms, err := b.ListMonitors(name)
	if err != nil {
		return err
	}
	if len(dashboards) != 0 || len(ms) != 0 {
		b.logger.Errorf("not allow delete project %s, %d dashboards, %d monitors",
			name, len(dashboards), len(ms))
		return common.ErrNotAllowDel
	}

	b.Mu.Lock()
	defer b.Mu.Unlock()
	projects, err := b.readProjects()
	if err != nil {
		return err
	}
	p, ok := projects[name]
	if !ok {
		return common.ErrProjectNotFound
	}
	delete(projects, name)
	if err := b.saveProjects(projects); err != nil {
		return err
	}
	if err := b.cluster.RemoveBucket([]byte(p.ID)); err != nil {
		b.logger.Errorf("remove bucket of project %s fail: %s", name, err.Error())
		return err
	}
	b.monitors.drop(name)
	b.incrUsage("project.delete")
	return nil
}
