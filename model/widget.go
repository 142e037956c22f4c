package model

// Dataset names the data source a widget queries.
type Dataset string

const (
	DatasetErrors       Dataset = "errors"
	DatasetTransactions Dataset = "transactions"
	DatasetIssues       Dataset = "issues"
	DatasetReleases     Dataset = "releases"
	DatasetLogs         Dataset = "logs"

	// DefaultDataset is used wherever a dataset is unset or unknown.
	DefaultDataset Dataset = DatasetErrors
)

// Datasets returns every declared dataset, baseline first.
func Datasets() []Dataset {
	return []Dataset{
		DatasetErrors,
		DatasetTransactions,
		DatasetIssues,
		DatasetReleases,
		DatasetLogs,
	}
}

func (d Dataset) Valid() bool {
	switch d {
	case DatasetErrors, DatasetTransactions, DatasetIssues, DatasetReleases, DatasetLogs:
		return true
	}
	return false
}

// DisplayType names how a widget renders its queries.
type DisplayType string

const (
	DisplayTable     DisplayType = "table"
	DisplayLine      DisplayType = "line"
	DisplayArea      DisplayType = "area"
	DisplayBar       DisplayType = "bar"
	DisplayBigNumber DisplayType = "big_number"
	DisplayTopN      DisplayType = "top_n"

	DefaultDisplayType DisplayType = DisplayTable
)

func (d DisplayType) Valid() bool {
	switch d {
	case DisplayTable, DisplayLine, DisplayArea, DisplayBar, DisplayBigNumber, DisplayTopN:
		return true
	}
	return false
}

// Interval every widget query runs at. Not user-editable.
const DefaultInterval = "5m"

type WidgetQuery struct {
	Fields     []string `json:"fields"`
	Aggregates []string `json:"aggregates"`
	Columns    []string `json:"columns"`
	Conditions string   `json:"conditions"`
	OrderBy    string   `json:"orderby"`
}

type Widget struct {
	ID          string        `json:"id,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	DisplayType DisplayType   `json:"displayType"`
	Interval    string        `json:"interval"`
	Queries     []WidgetQuery `json:"queries"`
	WidgetType  Dataset       `json:"widgetType,omitempty"`
}

type Dashboard struct {
	Title   string   `json:"title"`
	Widgets []Widget `json:"widgets"`
}
