package board

import (
	"sync"
	"time"

	"github.com/vistack/dashboard/board/cluster"
	"github.com/vistack/dashboard/common"
	"github.com/vistack/dashboard/limit"
	"github.com/vistack/dashboard/model"
	"github.com/vistack/dashboard/monitors"

	"github.com/pquerna/ffjson/ffjson"
)

// monitor cache refresh fan-out width
const defaultSweepWorker = 4

// MonitorInf is the monitor ops the API layer needs.
type MonitorInf interface {
	// ListMonitors return the monitors of the project.
	ListMonitors(project string) ([]model.Monitor, error)

	// AddMonitor register a monitor and return its id.
	AddMonitor(project string, monitor model.Monitor) (string, error)

	// UpdateMonitor update name/type/last issue of the monitor.
	UpdateMonitor(project string, monitor model.Monitor) error

	// DeleteMonitor remove the monitor of the project.
	DeleteMonitor(project, id string) error

	// SetConnection connect or disconnect the monitor and return the
	// record after the toggle.
	SetConnection(project, id string, connected bool) (model.Monitor, error)

	// PartitionMonitors return the connected/unconnected split the
	// automations drawer renders.
	PartitionMonitors(project string) (connected, unconnected []model.Monitor, err error)
}

// monitorCaches keep the monitor list of each project between writes,
// so the drawer partition is memoized on the unchanged slice.
type monitorCaches struct {
	sync.Mutex
	cache map[string]*monitorCache
}

type monitorCache struct {
	list []model.Monitor
	part monitors.Partitioner
}

func (mc *monitorCaches) get(project string) ([]model.Monitor, bool) {
	mc.Lock()
	defer mc.Unlock()
	c, ok := mc.cache[project]
	if !ok {
		return nil, false
	}
	return c.list, true
}

func (mc *monitorCaches) put(project string, list []model.Monitor) {
	mc.Lock()
	defer mc.Unlock()
	c, ok := mc.cache[project]
	if !ok {
		c = &monitorCache{}
		mc.cache[project] = c
	}
	c.list = list
}

func (mc *monitorCaches) drop(project string) {
	mc.Lock()
	defer mc.Unlock()
	delete(mc.cache, project)
}

func (mc *monitorCaches) projects() []string {
	mc.Lock()
	defer mc.Unlock()
	out := make([]string, 0, len(mc.cache))
	for project := range mc.cache {
		out = append(out, project)
	}
	return out
}

func (mc *monitorCaches) partition(project string) (connected, unconnected []model.Monitor, ok bool) {
	mc.Lock()
	defer mc.Unlock()
	c, found := mc.cache[project]
	if !found {
		return nil, nil, false
	}
	connected, unconnected = c.part.Partition(c.list)
	return connected, unconnected, true
}

func (b *Board) readMonitors(project string) ([]model.Monitor, error) {
	bucketID, err := b.projectID(project)
	if err != nil {
		return nil, err
	}
	resByte, err := cluster.GetByte(b.cluster, bucketID, monitorDoc)
	if err != nil {
		return nil, err
	}
	ms := []model.Monitor{}
	if len(resByte) == 0 {
		return ms, nil
	}
	if err := ffjson.Unmarshal(resByte, &ms); err != nil {
		b.logger.Errorf("unmarshal monitor fail, error: %s, data: %s:", err, string(resByte))
		return nil, err
	}
	return ms, nil
}

func (b *Board) saveMonitors(project string, ms []model.Monitor) error {
	bucketID, err := b.projectID(project)
	if err != nil {
		return err
	}
	resByte, err := ffjson.Marshal(ms)
	if err != nil {
		b.logger.Errorf("marshal monitor fail: %s", err.Error())
		return err
	}
	if err := cluster.SetByte(b.cluster, bucketID, monitorDoc, resByte); err != nil {
		return err
	}
	b.monitors.put(project, ms)
	return nil
}

// ListMonitors return the monitors of the project, from the cache
// between writes.
func (b *Board) ListMonitors(project string) ([]model.Monitor, error) {
	if list, ok := b.monitors.get(project); ok {
		return list, nil
	}
	ms, err := b.readMonitors(project)
	if err != nil {
		return nil, err
	}
	b.monitors.put(project, ms)
	return ms, nil
}

// AddMonitor register a monitor under the project and return its id.
func (b *Board) AddMonitor(project string, monitor model.Monitor) (string, error) {
	if monitor.Name == "" || !model.ValidMonitorType(monitor.Type) {
		return "", common.ErrInvalidParam
	}
	ms, err := b.readMonitors(project)
	if err != nil {
		return "", err
	}

	monitor.ID = common.GenUUID()
	monitor.CreateAt = time.Now().Unix()
	monitor.UpdateAt = monitor.CreateAt
	ms = append(ms, monitor)
	if err := b.saveMonitors(project, ms); err != nil {
		return "", err
	}
	b.incrUsage("monitor.add")
	return monitor.ID, nil
}

// UpdateMonitor update the editable keys of the monitor, the
// connection toggle has its own op.
func (b *Board) UpdateMonitor(project string, monitor model.Monitor) error {
	if monitor.ID == "" {
		return common.ErrInvalidParam
	}
	if monitor.Type != "" && !model.ValidMonitorType(monitor.Type) {
		return common.ErrInvalidParam
	}
	ms, err := b.readMonitors(project)
	if err != nil {
		return err
	}
	for i := range ms {
		if ms[i].ID != monitor.ID {
			continue
		}
		if monitor.Name != "" {
			ms[i].Name = monitor.Name
		}
		if monitor.Type != "" {
			ms[i].Type = monitor.Type
		}
		if monitor.LastIssue != "" {
			ms[i].LastIssue = monitor.LastIssue
		}
		ms[i].UpdateAt = time.Now().Unix()
		return b.saveMonitors(project, ms)
	}
	return common.ErrMonitorNotFound
}

// DeleteMonitor remove the monitor of the project.
func (b *Board) DeleteMonitor(project, id string) error {
	ms, err := b.readMonitors(project)
	if err != nil {
		return err
	}
	for i := range ms {
		if ms[i].ID != id {
			continue
		}
		copy(ms[i:], ms[i+1:])
		ms = ms[:len(ms)-1]
		if err := b.saveMonitors(project, ms); err != nil {
			return err
		}
		b.incrUsage("monitor.delete")
		return nil
	}
	return common.ErrMonitorNotFound
}

// SetConnection connect or disconnect the monitor.
func (b *Board) SetConnection(project, id string, connected bool) (model.Monitor, error) {
	ms, err := b.readMonitors(project)
	if err != nil {
		return model.Monitor{}, err
	}
	for i := range ms {
		if ms[i].ID != id {
			continue
		}
		ms[i].Connected = connected
		ms[i].UpdateAt = time.Now().Unix()
		if err := b.saveMonitors(project, ms); err != nil {
			return model.Monitor{}, err
		}
		b.incrUsage("monitor.connection")
		return ms[i], nil
	}
	return model.Monitor{}, common.ErrMonitorNotFound
}

// PartitionMonitors return the connected/unconnected split of the
// project. Repeated calls between writes serve the memoized split.
func (b *Board) PartitionMonitors(project string) (connected, unconnected []model.Monitor, err error) {
	if _, ok := b.monitors.get(project); !ok {
		if _, err := b.ListMonitors(project); err != nil {
			return nil, nil, err
		}
	}
	connected, unconnected, _ = b.monitors.partition(project)
	b.incrUsage("monitor.partition")
	return connected, unconnected, nil
}

// refreshMonitorCaches reloads every cached project list from the
// store, a few projects at a time. Lists written by other nodes of the
// cluster land in the cache here.
func (b *Board) refreshMonitorCaches() {
	projects := b.monitors.projects()
	if len(projects) == 0 {
		return
	}
	l := limit.NewLimit(defaultSweepWorker)
	for _, project := range projects {
		l.Take()
		go func(project string) {
			defer l.Release()
			ms, err := b.readMonitors(project)
			if err != nil {
				if err == common.ErrProjectNotFound {
					b.monitors.drop(project)
					return
				}
				b.logger.Errorf("refresh monitors of %s fail: %s", project, err.Error())
				return
			}
			b.monitors.put(project, ms)
		}(project)
	}
	l.Wait()
}
