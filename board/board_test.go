package board

import (
	"os"
	"testing"
	"time"

	"github.com/vistack/dashboard/board/test_sample"
	"github.com/vistack/dashboard/common"

	"github.com/lodastack/store/store"
)

func openBoard(t *testing.T) (*Board, *store.Store) {
	s := test_sample.MustNewStore(t)
	if err := s.Open(true); err != nil {
		t.Fatalf("failed to open single-node store: %s", err.Error())
	}
	s.WaitForLeader(10 * time.Second)

	b, err := NewBoard(s)
	if err != nil {
		t.Fatal("NewBoard fail:", err)
	}
	return b, s
}

func closeBoard(s *store.Store) {
	s.Close(true)
	os.RemoveAll(s.Path())
}

func TestCreateProject(t *testing.T) {
	b, s := openBoard(t)
	defer closeBoard(s)

	id, err := b.CreateProject("frontend", "dev1")
	if err != nil || id == "" {
		t.Fatal("CreateProject fail:", err, id)
	}
	if _, err := b.CreateProject("frontend", "dev2"); err != common.ErrProjectAlreadyExist {
		t.Fatal("create duplicate project should fail:", err)
	}
	for _, name := range []string{"", "api-server", "a.b", "a b"} {
		if _, err := b.CreateProject(name, "dev1"); err != common.ErrInvalidParam {
			t.Fatalf("create project %q should be invalid: %v", name, err)
		}
	}

	p, err := b.GetProject("frontend")
	if err != nil || p.ID != id || p.Creator != "dev1" {
		t.Fatalf("GetProject fail: %v, project: %+v", err, p)
	}
	if _, err := b.GetProject("backend"); err != common.ErrProjectNotFound {
		t.Fatal("get missing project should fail:", err)
	}
}

func TestListProjects(t *testing.T) {
	b, s := openBoard(t)
	defer closeBoard(s)

	for _, name := range []string{"mobile", "api", "frontend"} {
		if _, err := b.CreateProject(name, "dev1"); err != nil {
			t.Fatal("CreateProject fail:", err)
		}
	}
	list, err := b.ListProjects()
	if err != nil || len(list) != 3 {
		t.Fatal("ListProjects fail:", err, len(list))
	}
	// sorted by name
	if list[0].Name != "api" || list[1].Name != "frontend" || list[2].Name != "mobile" {
		t.Fatalf("ListProjects order not match with expect: %+v", list)
	}
}

func TestDeleteProject(t *testing.T) {
	b, s := openBoard(t)
	defer closeBoard(s)

	if _, err := b.CreateProject("frontend", "dev1"); err != nil {
		t.Fatal("CreateProject fail:", err)
	}
	if err := b.DeleteProject("frontend"); err != nil {
		t.Fatal("DeleteProject fail:", err)
	}
	if _, err := b.GetProject("frontend"); err != common.ErrProjectNotFound {
		t.Fatal("project should be gone:", err)
	}
	if err := b.DeleteProject("frontend"); err != common.ErrProjectNotFound {
		t.Fatal("delete missing project should fail:", err)
	}
}

func TestDeleteProjectWithDashboard(t *testing.T) {
	b, s := openBoard(t)
	defer closeBoard(s)

	if _, err := b.CreateProject("frontend", "dev1"); err != nil {
		t.Fatal("CreateProject fail:", err)
	}
	if err := b.AddDashboard("frontend", "overview", sampleDashboard()); err != nil {
		t.Fatal("AddDashboard fail:", err)
	}
	if err := b.DeleteProject("frontend"); err != common.ErrNotAllowDel {
		t.Fatal("delete project with dashboard should not be allowed:", err)
	}
}

func TestProjectNS(t *testing.T) {
	if ns := ProjectNS("frontend"); ns != "frontend.board" {
		t.Fatal("ProjectNS not match with expect:", ns)
	}
}

func TestUsageCounters(t *testing.T) {
	b, s := openBoard(t)
	defer closeBoard(s)

	if _, err := b.CreateProject("frontend", "dev1"); err != nil {
		t.Fatal("CreateProject fail:", err)
	}
	if err := b.AddDashboard("frontend", "overview", sampleDashboard()); err != nil {
		t.Fatal("AddDashboard fail:", err)
	}
	usage := b.GetUsage()
	if usage["project.create"] != 1 || usage["dashboard.add"] != 1 {
		t.Fatalf("usage counters not match with expect: %+v", usage)
	}

	// counters survive a save and restore cycle.
	if err := b.saveUsage(); err != nil {
		t.Fatal("saveUsage fail:", err)
	}
	again, err := NewBoard(s)
	if err != nil {
		t.Fatal("NewBoard fail:", err)
	}
	usage = again.GetUsage()
	if usage["project.create"] != 1 || usage["dashboard.add"] != 1 {
		t.Fatalf("restored usage counters not match with expect: %+v", usage)
	}
}
