package board

import (
	"testing"

	"github.com/vistack/dashboard/common"
	"github.com/vistack/dashboard/model"
)

func addMonitors(t *testing.T, b *Board, project string, names ...string) []string {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		id, err := b.AddMonitor(project, model.Monitor{
			Name:    name,
			Type:    model.MonitorMetric,
			Creator: "dev1",
		})
		if err != nil {
			t.Fatal("AddMonitor fail:", err)
		}
		ids = append(ids, id)
	}
	return ids
}

func TestAddMonitor(t *testing.T) {
	b, s := openBoard(t)
	defer closeBoard(s)

	if _, err := b.CreateProject("frontend", "dev1"); err != nil {
		t.Fatal("CreateProject fail:", err)
	}

	id, err := b.AddMonitor("frontend", model.Monitor{Name: "error spike", Type: model.MonitorIssue})
	if err != nil || id == "" {
		t.Fatal("AddMonitor fail:", err, id)
	}
	if _, err := b.AddMonitor("frontend", model.Monitor{Type: model.MonitorIssue}); err != common.ErrInvalidParam {
		t.Fatal("add monitor without name should fail:", err)
	}
	if _, err := b.AddMonitor("frontend", model.Monitor{Name: "x", Type: "watchdog"}); err != common.ErrInvalidParam {
		t.Fatal("add monitor with bad type should fail:", err)
	}
	if _, err := b.AddMonitor("backend", model.Monitor{Name: "x", Type: model.MonitorCron}); err != common.ErrProjectNotFound {
		t.Fatal("add monitor to missing project should fail:", err)
	}

	list, err := b.ListMonitors("frontend")
	if err != nil || len(list) != 1 {
		t.Fatal("ListMonitors fail:", err, len(list))
	}
	monitor := list[0]
	if monitor.ID != id || monitor.Name != "error spike" || monitor.Connected {
		t.Fatalf("monitor not match with expect: %+v", monitor)
	}
	if monitor.CreateAt == 0 || monitor.UpdateAt == 0 {
		t.Fatalf("monitor timestamps should be set: %+v", monitor)
	}
}

func TestUpdateMonitor(t *testing.T) {
	b, s := openBoard(t)
	defer closeBoard(s)

	if _, err := b.CreateProject("frontend", "dev1"); err != nil {
		t.Fatal("CreateProject fail:", err)
	}
	ids := addMonitors(t, b, "frontend", "cron health")

	update := model.Monitor{ID: ids[0], Name: "cron health v2", LastIssue: "JAVASCRIPT-42"}
	if err := b.UpdateMonitor("frontend", update); err != nil {
		t.Fatal("UpdateMonitor fail:", err)
	}
	list, err := b.ListMonitors("frontend")
	if err != nil {
		t.Fatal("ListMonitors fail:", err)
	}
	monitor := list[0]
	if monitor.Name != "cron health v2" || monitor.LastIssue != "JAVASCRIPT-42" {
		t.Fatalf("updated monitor not match with expect: %+v", monitor)
	}
	// type was left empty so the old one stays.
	if monitor.Type != model.MonitorMetric {
		t.Fatalf("monitor type should keep: %+v", monitor)
	}

	if err := b.UpdateMonitor("frontend", model.Monitor{ID: "no-such-id", Name: "x"}); err != common.ErrMonitorNotFound {
		t.Fatal("update missing monitor should fail:", err)
	}
}

func TestDeleteMonitor(t *testing.T) {
	b, s := openBoard(t)
	defer closeBoard(s)

	if _, err := b.CreateProject("frontend", "dev1"); err != nil {
		t.Fatal("CreateProject fail:", err)
	}
	ids := addMonitors(t, b, "frontend", "m1", "m2")

	if err := b.DeleteMonitor("frontend", ids[0]); err != nil {
		t.Fatal("DeleteMonitor fail:", err)
	}
	list, err := b.ListMonitors("frontend")
	if err != nil || len(list) != 1 || list[0].ID != ids[1] {
		t.Fatalf("monitors after delete not match with expect: %v %+v", err, list)
	}
	if err := b.DeleteMonitor("frontend", ids[0]); err != common.ErrMonitorNotFound {
		t.Fatal("delete missing monitor should fail:", err)
	}
}

func TestSetConnection(t *testing.T) {
	b, s := openBoard(t)
	defer closeBoard(s)

	if _, err := b.CreateProject("frontend", "dev1"); err != nil {
		t.Fatal("CreateProject fail:", err)
	}
	ids := addMonitors(t, b, "frontend", "m1")

	monitor, err := b.SetConnection("frontend", ids[0], true)
	if err != nil || !monitor.Connected {
		t.Fatalf("SetConnection fail: %v %+v", err, monitor)
	}
	list, _ := b.ListMonitors("frontend")
	if !list[0].Connected {
		t.Fatalf("connection should be stored: %+v", list[0])
	}

	monitor, err = b.SetConnection("frontend", ids[0], false)
	if err != nil || monitor.Connected {
		t.Fatalf("SetConnection fail: %v %+v", err, monitor)
	}
	if _, err := b.SetConnection("frontend", "no-such-id", true); err != common.ErrMonitorNotFound {
		t.Fatal("set connection on missing monitor should fail:", err)
	}
}

func TestPartitionMonitors(t *testing.T) {
	b, s := openBoard(t)
	defer closeBoard(s)

	if _, err := b.CreateProject("frontend", "dev1"); err != nil {
		t.Fatal("CreateProject fail:", err)
	}
	ids := addMonitors(t, b, "frontend", "m1", "m2", "m3", "m4", "m5")
	for _, id := range []string{ids[0], ids[2]} {
		if _, err := b.SetConnection("frontend", id, true); err != nil {
			t.Fatal("SetConnection fail:", err)
		}
	}

	connected, unconnected, err := b.PartitionMonitors("frontend")
	if err != nil {
		t.Fatal("PartitionMonitors fail:", err)
	}
	if len(connected) != 2 || len(unconnected) != 3 {
		t.Fatalf("partition not match with expect: %d/%d", len(connected), len(unconnected))
	}
	if connected[0].ID != ids[0] || connected[1].ID != ids[2] {
		t.Fatalf("connected order not match with expect: %+v", connected)
	}
	if unconnected[0].ID != ids[1] || unconnected[1].ID != ids[3] || unconnected[2].ID != ids[4] {
		t.Fatalf("unconnected order not match with expect: %+v", unconnected)
	}

	// repeated reads are served from the cache.
	computes := b.monitors.cache["frontend"].part.Computes()
	if _, _, err := b.PartitionMonitors("frontend"); err != nil {
		t.Fatal("PartitionMonitors fail:", err)
	}
	if got := b.monitors.cache["frontend"].part.Computes(); got != computes {
		t.Fatalf("cached partition should not recompute: %d != %d", got, computes)
	}

	// a write drops the memo.
	if _, err := b.SetConnection("frontend", ids[1], true); err != nil {
		t.Fatal("SetConnection fail:", err)
	}
	connected, unconnected, err = b.PartitionMonitors("frontend")
	if err != nil || len(connected) != 3 || len(unconnected) != 2 {
		t.Fatalf("partition after write not match with expect: %v %d/%d", err, len(connected), len(unconnected))
	}
	if got := b.monitors.cache["frontend"].part.Computes(); got != computes+1 {
		t.Fatalf("write should invalidate the memo: %d != %d", got, computes+1)
	}

	if _, _, err := b.PartitionMonitors("backend"); err != common.ErrProjectNotFound {
		t.Fatal("partition missing project should fail:", err)
	}
}

func TestDeleteProjectDropsMonitors(t *testing.T) {
	b, s := openBoard(t)
	defer closeBoard(s)

	if _, err := b.CreateProject("frontend", "dev1"); err != nil {
		t.Fatal("CreateProject fail:", err)
	}
	ids := addMonitors(t, b, "frontend", "m1")
	if err := b.DeleteMonitor("frontend", ids[0]); err != nil {
		t.Fatal("DeleteMonitor fail:", err)
	}
	if err := b.DeleteProject("frontend"); err != nil {
		t.Fatal("DeleteProject fail:", err)
	}
	if _, err := b.ListMonitors("frontend"); err != common.ErrProjectNotFound {
		t.Fatal("monitors of removed project should be gone:", err)
	}
}
