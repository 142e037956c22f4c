package board

import (
	"sort"

	"github.com/vistack/dashboard/board/cluster"
	"github.com/vistack/dashboard/builder"
	"github.com/vistack/dashboard/common"
	"github.com/vistack/dashboard/model"

	"github.com/pquerna/ffjson/ffjson"
)

// DashboardInf is the dashboard ops the API layer needs.
type DashboardInf interface {
	// GetDashboards return dashboard map of the project.
	GetDashboards(project string) (map[string]model.Dashboard, error)

	// AddDashboard create a dashboard under the project.
	AddDashboard(project, name string, dashboard model.Dashboard) error

	// UpdateDashboard update the title of the dashboard.
	UpdateDashboard(project, name, title string) error

	// DeleteDashboard remove the dashboard of the project.
	DeleteDashboard(project, name string) error

	WidgetInf
}

// WidgetInf is the widget and widget query ops the API layer needs.
type WidgetInf interface {
	// BuildWidget normalize a builder draft to the widget it
	// describes. Pure, the draft is not stored.
	BuildWidget(state model.BuilderState) model.Widget

	// AddBuiltWidget normalize the draft and append the widget to the
	// dashboard.
	AddBuiltWidget(project, name string, state model.BuilderState) (model.Widget, error)

	// AddWidget append the widget to the dashboard.
	AddWidget(project, name string, widget model.Widget) (string, error)

	// UpdateWidget update the title or display type of one widget.
	UpdateWidget(project, name string, widgetIndex int, title string, displayType model.DisplayType) error

	// DelWidget delete one widget of the dashboard.
	DelWidget(project, name string, widgetIndex int) error

	// ReorderWidget reorder the widgets of the dashboard.
	ReorderWidget(project, name string, newOrder []int) error

	// AppendQuery append a query to the widget.
	AppendQuery(project, name string, widgetIndex int, query model.WidgetQuery) error

	// UpdateQuery update a query of the widget.
	UpdateQuery(project, name string, widgetIndex, queryIndex int, query model.WidgetQuery) error

	// DelQuery delete a query of the widget. A widget keeps at least
	// one query.
	DelQuery(project, name string, widgetIndex, queryIndex int) error
}

// GetDashboards return the dashboards under the project.
func (b *Board) GetDashboards(project string) (map[string]model.Dashboard, error) {
	bucketID, err := b.projectID(project)
	if err != nil {
		return nil, err
	}

	resByte, err := cluster.GetByte(b.cluster, bucketID, dashboardDoc)
	if err != nil {
		return nil, err
	}
	dashboards := make(map[string]model.Dashboard)
	if len(resByte) == 0 {
		return dashboards, nil
	}
	if err := ffjson.Unmarshal(resByte, &dashboards); err != nil {
		b.logger.Errorf("unmarshal dashboard fail, error: %s, data: %s:", err, string(resByte))
		return nil, err
	}
	return dashboards, nil
}

func (b *Board) setDashboards(project string, dashboards map[string]model.Dashboard) error {
	bucketID, err := b.projectID(project)
	if err != nil {
		return err
	}
	resByte, err := ffjson.Marshal(dashboards)
	if err != nil {
		b.logger.Errorf("marshal dashboard fail: %s", err.Error())
		return err
	}
	return cluster.SetByte(b.cluster, bucketID, dashboardDoc, resByte)
}

// AddDashboard create the dashboard under the project. Widgets carried
// on it get an id if the caller left it empty.
func (b *Board) AddDashboard(project, name string, dashboard model.Dashboard) error {
	if name == "" {
		return common.ErrInvalidParam
	}
	dashboards, err := b.GetDashboards(project)
	if err != nil {
		return err
	}
	if _, ok := dashboards[name]; ok {
		return common.ErrDashboardAlreadyExist
	}
	if dashboard.Title == "" {
		dashboard.Title = name
	}
	for i := range dashboard.Widgets {
		if dashboard.Widgets[i].ID == "" {
			dashboard.Widgets[i].ID = common.GenUUID()
		}
	}

	dashboards[name] = dashboard
	if err := b.setDashboards(project, dashboards); err != nil {
		return err
	}
	b.incrUsage("dashboard.add")
	return nil
}

// UpdateDashboard update the title of the dashboard.
func (b *Board) UpdateDashboard(project, name, title string) error {
	if title == "" {
		return common.ErrInvalidParam
	}
	dashboards, err := b.GetDashboards(project)
	if err != nil {
		return err
	}
	dashboard, ok := dashboards[name]
	if !ok {
		return common.ErrDashboardNotFound
	}
	dashboard.Title = title
	dashboards[name] = dashboard
	return b.setDashboards(project, dashboards)
}

// DeleteDashboard remove the dashboard of the project.
func (b *Board) DeleteDashboard(project, name string) error {
	dashboards, err := b.GetDashboards(project)
	if err != nil {
		return err
	}
	if _, ok := dashboards[name]; !ok {
		return common.ErrDashboardNotFound
	}
	delete(dashboards, name)
	if err := b.setDashboards(project, dashboards); err != nil {
		return err
	}
	b.incrUsage("dashboard.delete")
	return nil
}

// getDashboard reads one dashboard for a widget op.
func (b *Board) getDashboard(project, name string) (map[string]model.Dashboard, model.Dashboard, error) {
	dashboards, err := b.GetDashboards(project)
	if err != nil {
		return nil, model.Dashboard{}, err
	}
	dashboard, ok := dashboards[name]
	if !ok {
		return nil, model.Dashboard{}, common.ErrDashboardNotFound
	}
	return dashboards, dashboard, nil
}

// BuildWidget normalize a builder draft to the widget it describes.
func (b *Board) BuildWidget(state model.BuilderState) model.Widget {
	b.incrUsage("widget.build")
	return builder.Convert(state)
}

// AddBuiltWidget normalize the draft and append the widget to the
// dashboard. The saved widget gets its id here.
func (b *Board) AddBuiltWidget(project, name string, state model.BuilderState) (model.Widget, error) {
	widget := builder.Convert(state)
	id, err := b.AddWidget(project, name, widget)
	if err != nil {
		return model.Widget{}, err
	}
	widget.ID = id
	return widget, nil
}

// AddWidget append the widget to the dashboard and return its id.
func (b *Board) AddWidget(project, name string, widget model.Widget) (string, error) {
	if len(widget.Queries) == 0 {
		return "", common.ErrEmptyWidget
	}
	dashboards, dashboard, err := b.getDashboard(project, name)
	if err != nil {
		return "", err
	}
	if widget.ID == "" {
		widget.ID = common.GenUUID()
	}
	if widget.DisplayType == "" {
		widget.DisplayType = model.DefaultDisplayType
	}
	if widget.Interval == "" {
		widget.Interval = model.DefaultInterval
	}

	dashboard.Widgets = append(dashboard.Widgets, widget)
	dashboards[name] = dashboard
	if err := b.setDashboards(project, dashboards); err != nil {
		return "", err
	}
	b.incrUsage("widget.add")
	return widget.ID, nil
}

// UpdateWidget update the title or display type of one widget. Empty
// arguments leave the key as it was.
func (b *Board) UpdateWidget(project, name string, widgetIndex int, title string, displayType model.DisplayType) error {
	if displayType != "" && !displayType.Valid() {
		return common.ErrInvalidParam
	}
	dashboards, dashboard, err := b.getDashboard(project, name)
	if err != nil {
		return err
	}
	if widgetIndex < 0 || widgetIndex >= len(dashboard.Widgets) {
		return common.ErrWidgetNotFound
	}
	if title != "" {
		dashboard.Widgets[widgetIndex].Title = title
	}
	if displayType != "" {
		dashboard.Widgets[widgetIndex].DisplayType = displayType
	}
	dashboards[name] = dashboard
	return b.setDashboards(project, dashboards)
}

// DelWidget delete one widget of the dashboard.
func (b *Board) DelWidget(project, name string, widgetIndex int) error {
	dashboards, dashboard, err := b.getDashboard(project, name)
	if err != nil {
		return err
	}
	if widgetIndex < 0 || widgetIndex >= len(dashboard.Widgets) {
		return common.ErrWidgetNotFound
	}

	copy(dashboard.Widgets[widgetIndex:], dashboard.Widgets[widgetIndex+1:])
	dashboard.Widgets = dashboard.Widgets[:len(dashboard.Widgets)-1]
	dashboards[name] = dashboard
	if err := b.setDashboards(project, dashboards); err != nil {
		return err
	}
	b.incrUsage("widget.delete")
	return nil
}

func invalidOrder(order sort.IntSlice) bool {
	tmp := make(sort.IntSlice, len(order))
	copy(tmp, order)
	tmp.Sort()
	for i, index := range tmp {
		if i != index {
			return true
		}
	}
	return false
}

// ReorderWidget reorder the widgets of the dashboard. newOrder must be
// a permutation of the current indexes.
func (b *Board) ReorderWidget(project, name string, newOrder []int) error {
	dashboards, dashboard, err := b.getDashboard(project, name)
	if err != nil {
		return err
	}
	if len(dashboard.Widgets) != len(newOrder) || invalidOrder(newOrder) {
		return common.ErrInvalidParam
	}

	newWidgets := make([]model.Widget, len(dashboard.Widgets))
	for i, order := range newOrder {
		newWidgets[i] = dashboard.Widgets[order]
	}
	dashboard.Widgets = newWidgets
	dashboards[name] = dashboard
	return b.setDashboards(project, dashboards)
}

// AppendQuery append a query to the widget.
func (b *Board) AppendQuery(project, name string, widgetIndex int, query model.WidgetQuery) error {
	dashboards, dashboard, err := b.getDashboard(project, name)
	if err != nil {
		return err
	}
	if widgetIndex < 0 || widgetIndex >= len(dashboard.Widgets) {
		return common.ErrWidgetNotFound
	}
	widget := dashboard.Widgets[widgetIndex]
	widget.Queries = append(widget.Queries, query)
	dashboard.Widgets[widgetIndex] = widget
	dashboards[name] = dashboard
	return b.setDashboards(project, dashboards)
}

// UpdateQuery update a query of the widget.
func (b *Board) UpdateQuery(project, name string, widgetIndex, queryIndex int, query model.WidgetQuery) error {
	dashboards, dashboard, err := b.getDashboard(project, name)
	if err != nil {
		return err
	}
	if widgetIndex < 0 || widgetIndex >= len(dashboard.Widgets) {
		return common.ErrWidgetNotFound
	}
	widget := dashboard.Widgets[widgetIndex]
	if queryIndex < 0 || queryIndex >= len(widget.Queries) {
		return common.ErrQueryNotFound
	}
	widget.Queries[queryIndex] = query
	dashboard.Widgets[widgetIndex] = widget
	dashboards[name] = dashboard
	return b.setDashboards(project, dashboards)
}

// DelQuery delete a query of the widget. The last query of a widget
// cannot go, a widget always queries something.
func (b *Board) DelQuery(project, name string, widgetIndex, queryIndex int) error {
	dashboards, dashboard, err := b.getDashboard(project, name)
	if err != nil {
		return err
	}
	if widgetIndex < 0 || widgetIndex >= len(dashboard.Widgets) {
		return common.ErrWidgetNotFound
	}
	widget := dashboard.Widgets[widgetIndex]
	if queryIndex < 0 || queryIndex >= len(widget.Queries) {
		return common.ErrQueryNotFound
	}
	if len(widget.Queries) == 1 {
		return common.ErrNotAllowDel
	}

	copy(widget.Queries[queryIndex:], widget.Queries[queryIndex+1:])
	widget.Queries = widget.Queries[:len(widget.Queries)-1]
	dashboard.Widgets[widgetIndex] = widget
	dashboards[name] = dashboard
	return b.setDashboards(project, dashboards)
}
