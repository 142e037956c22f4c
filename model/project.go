package model

// Project is the org unit that owns dashboards and monitors. The ID
// doubles as the bucket name its documents live in.
type Project struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Creator  string `json:"creator,omitempty"`
	CreateAt int64  `json:"createAt,omitempty"`
}
