package monitors

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vistack/dashboard/model"
)

func drawerList() []model.Monitor {
	return []model.Monitor{
		{ID: "m1", Name: "checkout crash spike", Type: model.MonitorIssue, Connected: true},
		{ID: "m2", Name: "nightly import", Type: model.MonitorCron, Connected: false},
		{ID: "m3", Name: "p95 latency", Type: model.MonitorMetric, Connected: true},
		{ID: "m4", Name: "api uptime", Type: model.MonitorUptime, Connected: false},
		{ID: "m5", Name: "error budget", Type: model.MonitorMetric, Connected: false},
	}
}

func TestPartitionSplitsAndKeepsOrder(t *testing.T) {
	ms := drawerList()
	connected, unconnected := Partition(ms)

	require.Len(t, connected, 2)
	require.Len(t, unconnected, 3)
	require.Equal(t, []string{"m1", "m3"}, ids(connected))
	require.Equal(t, []string{"m2", "m4", "m5"}, ids(unconnected))

	// the input list is left as it was
	require.Equal(t, drawerList(), ms)
}

func TestPartitionEmpty(t *testing.T) {
	connected, unconnected := Partition(nil)
	require.NotNil(t, connected)
	require.NotNil(t, unconnected)
	require.Len(t, connected, 0)
	require.Len(t, unconnected, 0)
}

func TestPartitionerMemoizesOnSliceIdentity(t *testing.T) {
	var p Partitioner
	ms := drawerList()

	c1, u1 := p.Partition(ms)
	require.Equal(t, 1, p.Computes())
	require.Equal(t, []string{"m1", "m3"}, ids(c1))
	require.Equal(t, []string{"m2", "m4", "m5"}, ids(u1))

	// unchanged slice, served from cache
	c2, u2 := p.Partition(ms)
	require.Equal(t, 1, p.Computes())
	require.Equal(t, ids(c1), ids(c2))
	require.Equal(t, ids(u1), ids(u2))

	// a fresh list recomputes
	c3, _ := p.Partition(drawerList())
	require.Equal(t, 2, p.Computes())
	require.Equal(t, ids(c1), ids(c3))
}

func TestPartitionerLengthChangeRecomputes(t *testing.T) {
	var p Partitioner
	ms := drawerList()

	p.Partition(ms)
	require.Equal(t, 1, p.Computes())

	// same backing array, shorter view
	connected, unconnected := p.Partition(ms[:2])
	require.Equal(t, 2, p.Computes())
	require.Equal(t, []string{"m1"}, ids(connected))
	require.Equal(t, []string{"m2"}, ids(unconnected))
}

func TestPartitionerInvalidate(t *testing.T) {
	var p Partitioner
	ms := drawerList()

	p.Partition(ms)
	p.Partition(ms)
	require.Equal(t, 1, p.Computes())

	p.Invalidate()
	p.Partition(ms)
	require.Equal(t, 2, p.Computes())
}

func ids(ms []model.Monitor) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}
