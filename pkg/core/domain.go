// Package core holds the notebook domain and the insight extraction rules.
package core

import "encoding/json"

// CellType tags a notebook cell.
type CellType string

const (
	CellMarkdown CellType = "markdown"
	CellCode     CellType = "code"
	CellRaw      CellType = "raw"
)

// Output is a single recorded execution output of a code cell.
// HasText distinguishes an output without a text field from one whose text is empty.
type Output struct {
	OutputType string
	Text       string
	HasText    bool
}

// Cell is one entry of a notebook, with its source fragments already joined.
type Cell struct {
	Type    CellType
	Source  string
	Outputs []Output
}

// Notebook is a parsed notebook document.
type Notebook struct {
	Title string
	Cells []Cell
}

// Entry names a notebook file relative to the repository root.
type Entry struct {
	Key  string `yaml:"key" json:"key"`
	File string `yaml:"file" json:"file"`
}

// InsightOutput is the type tag carried by insights taken from code outputs.
const InsightOutput = "output"

// Insight is an excerpt of a notebook cell flagged by keyword matching.
type Insight struct {
	CellIndex int    `json:"cell_index"`
	Type      string `json:"type,omitempty"`
	Content   string `json:"content"`
}

// Result is the outcome of analyzing one notebook entry.
// When the notebook could not be analyzed, Message holds a human readable
// placeholder and Err the underlying cause.
type Result struct {
	Key      string    `json:"key"`
	File     string    `json:"file"`
	Title    string    `json:"title,omitempty"`
	Insights []Insight `json:"insights"`
	Message  string    `json:"message,omitempty"`
	Err      error     `json:"-"`
}

type resultFields Result

// MarshalJSON always emits the insights list of an analyzed notebook, empty
// when nothing matched, and leaves it out of failed results.
func (r Result) MarshalJSON() ([]byte, error) {
	out := struct {
		resultFields
		Insights *[]Insight `json:"insights,omitempty"`
	}{resultFields: resultFields(r)}
	if !r.Failed() {
		insights := r.Insights
		if insights == nil {
			insights = []Insight{}
		}
		out.Insights = &insights
	}
	return json.Marshal(out)
}

// Failed reports whether the result carries a placeholder message instead of insights.
func (r Result) Failed() bool {
	return r.Message != ""
}

// EventType represents the type of change to a notebook file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a tracked notebook.
type Event struct {
	Type      EventType
	File      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.File
}
