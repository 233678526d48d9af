package fs

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/capstone/pkg/core"
)

const sampleNotebook = `{
 "cells": [
  {
   "cell_type": "markdown",
   "metadata": {},
   "source": ["# SpaceX Falcon 9 *Landing* Prediction\n", "\n", "## Objectives\n"]
  },
  {
   "cell_type": "code",
   "execution_count": 3,
   "metadata": {},
   "outputs": [
    {"name": "stdout", "output_type": "stream", "text": ["Best Accuracy: ", "94.4%\n"]},
    {"output_type": "execute_result", "data": {"text/plain": ["0.944"]}, "metadata": {}, "execution_count": 3}
   ],
   "source": "print(best)"
  },
  {
   "cell_type": "raw",
   "metadata": {},
   "source": "raw text"
  }
 ],
 "metadata": {"kernelspec": {"name": "python3"}},
 "nbformat": 4,
 "nbformat_minor": 4
}`

func TestParseNotebook(t *testing.T) {
	nb, err := ParseNotebook(strings.NewReader(sampleNotebook))
	require.NoError(t, err)

	assert.Equal(t, "SpaceX Falcon 9 Landing Prediction", nb.Title)
	require.Len(t, nb.Cells, 3)

	assert.Equal(t, core.CellMarkdown, nb.Cells[0].Type)
	assert.Equal(t, "# SpaceX Falcon 9 *Landing* Prediction\n\n## Objectives\n", nb.Cells[0].Source)

	code := nb.Cells[1]
	assert.Equal(t, core.CellCode, code.Type)
	assert.Equal(t, "print(best)", code.Source)
	require.Len(t, code.Outputs, 2)
	assert.True(t, code.Outputs[0].HasText)
	assert.Equal(t, "Best Accuracy: 94.4%\n", code.Outputs[0].Text)
	assert.False(t, code.Outputs[1].HasText)

	assert.Equal(t, core.CellRaw, nb.Cells[2].Type)
}

func TestParseNotebook_NoCells(t *testing.T) {
	nb, err := ParseNotebook(strings.NewReader(`{"nbformat": 4}`))
	require.NoError(t, err)
	assert.Empty(t, nb.Cells)
	assert.Empty(t, core.Extract(nb))
}

func TestParseNotebook_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Malformed JSON", `{"cells": [`},
		{"Top Level List", `[]`},
		{"Numeric Source", `{"cells": [{"cell_type": "markdown", "source": 42}]}`},
		{"Cells Not a List", `{"cells": "nope"}`},
		{"Null Document", `null`},
		{"Null Cells", `{"cells": null}`},
		{"Null Cell", `{"cells": [null]}`},
		{"Null Markdown Source", `{"cells": [{"cell_type": "markdown", "source": null}]}`},
		{"Null Code Outputs", `{"cells": [{"cell_type": "code", "source": "x", "outputs": null}]}`},
		{"Outputs Not a List", `{"cells": [{"cell_type": "code", "outputs": {}}]}`},
		{"Null Output", `{"cells": [{"cell_type": "code", "outputs": [null]}]}`},
		{"Null Output Text", `{"cells": [{"cell_type": "code", "outputs": [{"output_type": "stream", "text": null}]}]}`},
		{"Numeric Output Text", `{"cells": [{"cell_type": "code", "outputs": [{"output_type": "stream", "text": 7}]}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseNotebook(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrInvalidNotebook))
		})
	}
}

func TestParseNotebook_Lenient(t *testing.T) {
	input := `{"cells": [
		{"cell_type": 5, "source": null, "outputs": null},
		{"cell_type": "code", "source": 42, "outputs": [{"output_type": "stream", "text": "accuracy 0.83"}]},
		{"cell_type": "markdown", "source": "Key finding: the tree model generalizes.", "outputs": null},
		{"source": "no type"}
	]}`

	nb, err := ParseNotebook(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, nb.Cells, 4)

	assert.Equal(t, core.CellType(""), nb.Cells[0].Type)
	assert.Empty(t, nb.Cells[1].Source)
	require.Len(t, nb.Cells[1].Outputs, 1)
	assert.Empty(t, nb.Cells[2].Outputs)
	assert.Equal(t, "no type", nb.Cells[3].Source)

	insights := core.Extract(nb)
	require.Len(t, insights, 2)
	assert.Equal(t, 1, insights[0].CellIndex)
	assert.Equal(t, core.InsightOutput, insights[0].Type)
	assert.Equal(t, 2, insights[1].CellIndex)
}

func TestFirstHeading(t *testing.T) {
	assert.Equal(t, "Title", firstHeading([]byte("intro\n\n# Title\n\n# Second"), 1))
	assert.Equal(t, "Section code", firstHeading([]byte("## Section `code`"), 2))
	assert.Empty(t, firstHeading([]byte("no headings here"), 1))
}
