package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vistack/dashboard/dataset"
	"github.com/vistack/dashboard/model"
)

func TestConvertEmptyStateHasOneEmptyQuery(t *testing.T) {
	w := Convert(model.BuilderState{})
	require.Len(t, w.Queries, 1)
	require.Equal(t, "", w.Queries[0].Conditions)
}

func TestConvertKeepsQueryOrder(t *testing.T) {
	state := model.BuilderState{
		Dataset: model.DatasetErrors,
		Queries: []string{"level:error", "level:warning", "release:1.2.*"},
	}
	w := Convert(state)
	require.Len(t, w.Queries, 3)
	for i, cond := range state.Queries {
		require.Equal(t, cond, w.Queries[i].Conditions)
	}
}

func TestConvertEmptyFieldsTakeDatasetDefaults(t *testing.T) {
	def := dataset.Defaults(model.DatasetErrors)
	w := Convert(model.BuilderState{Dataset: model.DatasetErrors})
	q := w.Queries[0]
	require.Equal(t, def.Fields, q.Fields)
	require.Equal(t, def.Aggregates, q.Aggregates)
	require.Equal(t, def.Columns, q.Columns)
	require.Equal(t, def.OrderBy, q.OrderBy)
}

func TestConvertAggregateOnlyFieldsFallBackColumns(t *testing.T) {
	state := model.BuilderState{
		Dataset: model.DatasetErrors,
		Fields: []model.FieldSelector{
			{Kind: model.KindAggregate, Function: "count"},
			{Kind: model.KindAggregate, Function: "count_unique", Parameter: "user"},
		},
	}
	w := Convert(state)
	q := w.Queries[0]
	require.Equal(t, []string{"count()", "count_unique(user)"}, q.Fields)
	require.Equal(t, dataset.Defaults(model.DatasetErrors).Columns, q.Columns)
	require.Equal(t, "count()", q.OrderBy)
}

func TestConvertFallbacksAreIndependent(t *testing.T) {
	state := model.BuilderState{
		Dataset: model.DatasetTransactions,
		Fields: []model.FieldSelector{
			{Kind: model.KindField, Field: "transaction"},
		},
	}
	w := Convert(state)
	q := w.Queries[0]
	require.Equal(t, []string{"transaction"}, q.Fields)
	require.Equal(t, []string{"transaction"}, q.Columns)
	require.Equal(t, dataset.Defaults(model.DatasetTransactions).Aggregates, q.Aggregates)
	require.Equal(t, "transaction", q.OrderBy)
}

func TestConvertWidgetDefaults(t *testing.T) {
	w := Convert(model.BuilderState{})
	require.Equal(t, "", w.Title)
	require.Equal(t, model.DefaultDisplayType, w.DisplayType)
	require.Equal(t, model.DefaultInterval, w.Interval)
	require.Equal(t, model.Dataset(""), w.WidgetType)
}

func TestConvertUnknownDatasetUsesBaselineShape(t *testing.T) {
	w := Convert(model.BuilderState{Dataset: "sessions"})
	require.Equal(t, dataset.Defaults(model.DefaultDataset).Fields, w.Queries[0].Fields)
	// the chosen dataset is still carried on the widget untouched
	require.Equal(t, model.Dataset("sessions"), w.WidgetType)
}

func TestConvertDeterministicAndReadOnly(t *testing.T) {
	state := model.BuilderState{
		Dataset:     model.DatasetTransactions,
		Title:       "slowest endpoints",
		Description: "p75 by transaction",
		DisplayType: model.DisplayTopN,
		Fields: []model.FieldSelector{
			{Kind: model.KindField, Field: "transaction"},
			{Kind: model.KindAggregate, Function: "p75", Parameter: "transaction.duration"},
		},
		YAxis: []model.FieldSelector{
			{Kind: model.KindAggregate, Function: "p75", Parameter: "transaction.duration"},
		},
		Queries: []string{"transaction.op:http.server", ""},
	}
	saved := model.BuilderState{
		Dataset:     state.Dataset,
		Title:       state.Title,
		Description: state.Description,
		DisplayType: state.DisplayType,
		Fields:      append([]model.FieldSelector{}, state.Fields...),
		YAxis:       append([]model.FieldSelector{}, state.YAxis...),
		Queries:     append([]string{}, state.Queries...),
	}

	first := Convert(state)
	second := Convert(state)
	require.Equal(t, first, second)

	require.Equal(t, saved.Fields, state.Fields)
	require.Equal(t, saved.YAxis, state.YAxis)
	require.Equal(t, saved.Queries, state.Queries)

	require.Len(t, first.Queries, 2)
	require.Equal(t, "transaction.op:http.server", first.Queries[0].Conditions)
	require.Equal(t, "", first.Queries[1].Conditions)
	require.Equal(t, []string{"transaction", "p75(transaction.duration)"}, first.Queries[0].Fields)
	require.Equal(t, []string{"p75(transaction.duration)"}, first.Queries[0].Aggregates)
	require.Equal(t, []string{"transaction"}, first.Queries[0].Columns)
	require.Equal(t, "transaction", first.Queries[0].OrderBy)
}
