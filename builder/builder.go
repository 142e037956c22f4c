// Package builder turns the transient draft edited in the dashboard
// builder into the widget the platform persists and renders.
package builder

import (
	"github.com/vistack/dashboard/dataset"
	"github.com/vistack/dashboard/model"
)

// Convert normalizes state into a widget. It is pure: the state is
// never written to, equal states produce deeply equal widgets, and the
// widget always carries at least one query. Missing keys take the
// dataset defaults, each key on its own.
func Convert(state model.BuilderState) model.Widget {
	conditions := state.Queries
	if len(conditions) == 0 {
		conditions = []string{""}
	}

	queries := make([]model.WidgetQuery, 0, len(conditions))
	for _, condition := range conditions {
		queries = append(queries, buildQuery(state, condition))
	}

	displayType := state.DisplayType
	if displayType == "" {
		displayType = model.DefaultDisplayType
	}

	return model.Widget{
		Title:       state.Title,
		Description: state.Description,
		DisplayType: displayType,
		Interval:    model.DefaultInterval,
		Queries:     queries,
		WidgetType:  state.Dataset,
	}
}

// buildQuery renders one query for condition. The fields, aggregates
// and columns keys fall back to the dataset default independently;
// an empty render of one key never drags the others down with it.
func buildQuery(state model.BuilderState, condition string) model.WidgetQuery {
	def := dataset.Defaults(state.Dataset)

	fields := render(state.Fields)
	// TODO: replace with a real sort policy once product settles one,
	// the first selected field is a placeholder ranking.
	orderBy := def.OrderBy
	if len(fields) > 0 {
		orderBy = fields[0]
	}
	if len(fields) == 0 {
		fields = def.Fields
	}

	aggregates := render(state.YAxis)
	if len(aggregates) == 0 {
		aggregates = def.Aggregates
	}

	columns := renderColumns(state.Fields)
	if len(columns) == 0 {
		columns = def.Columns
	}

	return model.WidgetQuery{
		Fields:     fields,
		Aggregates: aggregates,
		Columns:    columns,
		Conditions: condition,
		OrderBy:    orderBy,
	}
}

// render maps selectors to their canonical strings.
func render(sels []model.FieldSelector) []string {
	if len(sels) == 0 {
		return nil
	}
	out := make([]string, 0, len(sels))
	for _, s := range sels {
		out = append(out, s.Canonical())
	}
	return out
}

// renderColumns keeps only the raw field selectors.
func renderColumns(sels []model.FieldSelector) []string {
	var out []string
	for _, s := range sels {
		if s.IsField() {
			out = append(out, s.Canonical())
		}
	}
	return out
}
