package model

// FieldKind classifies one selected column of the builder.
type FieldKind string

const (
	KindField     FieldKind = "field"
	KindAggregate FieldKind = "aggregate"
)

// FieldSelector is one column picked in the builder, either a raw
// field or an aggregate expression over one.
type FieldSelector struct {
	Kind      FieldKind `json:"kind"`
	Field     string    `json:"field,omitempty"`
	Function  string    `json:"function,omitempty"`
	Parameter string    `json:"parameter,omitempty"`
}

// Canonical renders the selector to the string form the query layer
// understands. Aggregates render as function(parameter), zero-arg
// aggregates as function().
func (f FieldSelector) Canonical() string {
	if f.Kind == KindAggregate {
		return f.Function + "(" + f.Parameter + ")"
	}
	return f.Field
}

// IsField reports whether the selector names a raw field.
func (f FieldSelector) IsField() bool {
	return f.Kind != KindAggregate
}

// BuilderState is the transient draft the builder edits. Every key is
// optional. It is normalized to a Widget on every change and on save,
// never persisted itself.
type BuilderState struct {
	Dataset     Dataset         `json:"dataset,omitempty"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	DisplayType DisplayType     `json:"displayType,omitempty"`
	Fields      []FieldSelector `json:"fields,omitempty"`
	YAxis       []FieldSelector `json:"yAxis,omitempty"`
	Queries     []string        `json:"queries,omitempty"`
}
