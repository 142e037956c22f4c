package model

// monitor types shown in the automations drawer
const (
	MonitorCron   = "cron"
	MonitorMetric = "metric"
	MonitorIssue  = "issue"
	MonitorUptime = "uptime"
)

// ValidMonitorType reports whether t is a declared monitor type.
func ValidMonitorType(t string) bool {
	switch t {
	case MonitorCron, MonitorMetric, MonitorIssue, MonitorUptime:
		return true
	}
	return false
}

// Monitor is the display record of one automation. LastIssue is the
// short id of the newest issue it fired on, only rendered, never
// resolved back to the issue store.
type Monitor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	LastIssue string `json:"lastIssue,omitempty"`
	Creator   string `json:"creator,omitempty"`
	Connected bool   `json:"connected"`
	CreateAt  int64  `json:"createAt,omitempty"`
	UpdateAt  int64  `json:"updateAt,omitempty"`
}
