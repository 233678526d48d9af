package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/capstone/pkg/core"
)

var errNull = errors.New("value is null")

// multiline is an nbformat multi-line string: either one string or a list of fragments.
type multiline []string

func (m *multiline) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return errNull
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = multiline{s}
		return nil
	}

	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("expected string or list of strings: %w", err)
	}
	*m = parts
	return nil
}

func (m multiline) String() string {
	return strings.Join(m, "")
}

// object is a JSON object whose fields are decoded on demand, so fields a
// cell kind never uses cannot fail the notebook.
type object map[string]json.RawMessage

// ParseNotebook decodes a notebook document from r.
//
// A document without a cells list parses as an empty notebook. Cells whose
// cell_type is missing or not a string are kept but carry no type. Only the
// source of markdown cells and the outputs of code cells must be well formed;
// an explicit null in either, in the cells list, or in an output's text makes
// the notebook invalid.
func ParseNotebook(r io.Reader) (core.Notebook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return core.Notebook{}, err
	}

	var doc object
	if err := json.Unmarshal(data, &doc); err != nil {
		return core.Notebook{}, invalid(err)
	}
	if doc == nil {
		return core.Notebook{}, invalid(errors.New("document is null"))
	}

	nb := core.Notebook{Cells: []core.Cell{}}
	if raw, ok := doc["cells"]; ok {
		var cells []object
		if err := decodeField(raw, &cells); err != nil {
			return core.Notebook{}, invalid(fmt.Errorf("cells: %w", err))
		}
		for i, rc := range cells {
			cell, err := parseCell(rc)
			if err != nil {
				return core.Notebook{}, invalid(fmt.Errorf("cell %d: %w", i, err))
			}
			nb.Cells = append(nb.Cells, cell)
		}
	}

	nb.Title = notebookTitle(nb.Cells)
	return nb, nil
}

func parseCell(rc object) (core.Cell, error) {
	if rc == nil {
		return core.Cell{}, errors.New("cell is not an object")
	}

	var kind string
	if raw, ok := rc["cell_type"]; ok {
		_ = json.Unmarshal(raw, &kind)
	}
	cell := core.Cell{Type: core.CellType(kind)}

	switch cell.Type {
	case core.CellMarkdown:
		if raw, ok := rc["source"]; ok {
			var src multiline
			if err := decodeField(raw, &src); err != nil {
				return core.Cell{}, fmt.Errorf("source: %w", err)
			}
			cell.Source = src.String()
		}
	case core.CellCode:
		if raw, ok := rc["outputs"]; ok {
			var outputs []object
			if err := decodeField(raw, &outputs); err != nil {
				return core.Cell{}, fmt.Errorf("outputs: %w", err)
			}
			for j, ro := range outputs {
				out, err := parseOutput(ro)
				if err != nil {
					return core.Cell{}, fmt.Errorf("output %d: %w", j, err)
				}
				cell.Outputs = append(cell.Outputs, out)
			}
		}
		cell.Source = lenientText(rc["source"])
	default:
		cell.Source = lenientText(rc["source"])
	}
	return cell, nil
}

func parseOutput(ro object) (core.Output, error) {
	if ro == nil {
		return core.Output{}, errors.New("output is not an object")
	}

	var out core.Output
	if raw, ok := ro["output_type"]; ok {
		_ = json.Unmarshal(raw, &out.OutputType)
	}
	if raw, ok := ro["text"]; ok {
		var text multiline
		if err := decodeField(raw, &text); err != nil {
			return core.Output{}, fmt.Errorf("text: %w", err)
		}
		out.HasText = true
		out.Text = text.String()
	}
	return out, nil
}

// decodeField decodes raw into v, rejecting an explicit null.
func decodeField(raw json.RawMessage, v any) error {
	if isNull(raw) {
		return errNull
	}
	return json.Unmarshal(raw, v)
}

// lenientText decodes a source field that nothing depends on, ignoring bad shapes.
func lenientText(raw json.RawMessage) string {
	if raw == nil || isNull(raw) {
		return ""
	}
	var m multiline
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	return m.String()
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", core.ErrInvalidNotebook, err)
}
