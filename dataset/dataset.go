// Package dataset declares the default query shape of every dataset
// the builder can point a widget at.
package dataset

import (
	"fmt"

	"github.com/vistack/dashboard/model"
)

// defaults must cover model.Datasets exactly, one shape per declared
// dataset. Validate checks that at startup.
var defaults = map[model.Dataset]model.WidgetQuery{
	model.DatasetErrors: {
		Fields:     []string{"issue", "title", "count()"},
		Aggregates: []string{"count()"},
		Columns:    []string{"issue", "title"},
		Conditions: "",
		OrderBy:    "-count()",
	},
	model.DatasetTransactions: {
		Fields:     []string{"transaction", "p75(transaction.duration)"},
		Aggregates: []string{"p75(transaction.duration)"},
		Columns:    []string{"transaction"},
		Conditions: "",
		OrderBy:    "-p75(transaction.duration)",
	},
	model.DatasetIssues: {
		Fields:     []string{"issue", "assignee", "title"},
		Aggregates: []string{},
		Columns:    []string{"issue", "assignee", "title"},
		Conditions: "",
		OrderBy:    "date",
	},
	model.DatasetReleases: {
		Fields:     []string{"release", "count()"},
		Aggregates: []string{"count()"},
		Columns:    []string{"release"},
		Conditions: "",
		OrderBy:    "-count()",
	},
	model.DatasetLogs: {
		Fields:     []string{"timestamp", "message"},
		Aggregates: []string{},
		Columns:    []string{"timestamp", "message"},
		Conditions: "",
		OrderBy:    "-timestamp",
	},
}

// Defaults returns the default query shape of d. Empty or undeclared
// datasets resolve to the baseline shape, the lookup never fails.
func Defaults(d model.Dataset) model.WidgetQuery {
	q, ok := defaults[d]
	if !ok {
		q = defaults[model.DefaultDataset]
	}
	return clone(q)
}

// All returns the default shape of every declared dataset.
func All() map[model.Dataset]model.WidgetQuery {
	all := make(map[model.Dataset]model.WidgetQuery, len(defaults))
	for d, q := range defaults {
		all[d] = clone(q)
	}
	return all
}

// Validate checks the table and the declared dataset list cover each
// other. Run once at startup, any miss is a packaging mistake.
func Validate() error {
	for _, d := range model.Datasets() {
		if _, ok := defaults[d]; !ok {
			return fmt.Errorf("dataset %s has no default query shape", d)
		}
	}
	for d := range defaults {
		if !d.Valid() {
			return fmt.Errorf("default query shape for undeclared dataset %s", d)
		}
	}
	return nil
}

// clone copies the slices so callers cannot write into the table.
func clone(q model.WidgetQuery) model.WidgetQuery {
	c := q
	c.Fields = append([]string{}, q.Fields...)
	c.Aggregates = append([]string{}, q.Aggregates...)
	c.Columns = append([]string{}, q.Columns...)
	return c
}
