package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/capstone/pkg/core"
)

func writeNotebook(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Parses Existing Notebook", func(t *testing.T) {
		dir := t.TempDir()
		writeNotebook(t, dir, "labs-jupyter-spacex-Data wrangling.ipynb", sampleNotebook)
		repo := NewRepository(Config{Path: dir})

		nb, err := repo.Get(ctx, "labs-jupyter-spacex-Data wrangling.ipynb")
		require.NoError(t, err)
		assert.Len(t, nb.Cells, 3)
	})

	t.Run("Missing Notebook", func(t *testing.T) {
		repo := NewRepository(Config{Path: t.TempDir()})

		_, err := repo.Get(ctx, "edadataviz.ipynb")
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrNotebookNotFound))
	})

	t.Run("Path Through Regular File", func(t *testing.T) {
		dir := t.TempDir()
		writeNotebook(t, dir, "file.ipynb", sampleNotebook)
		repo := NewRepository(Config{Path: dir})

		_, err := repo.Get(ctx, "file.ipynb/child.ipynb")
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrNotebookNotFound))
		assert.Equal(t, "Notebook not found: file.ipynb/child.ipynb", core.Placeholder("file.ipynb/child.ipynb", err))
	})

	t.Run("Invalid Notebook", func(t *testing.T) {
		dir := t.TempDir()
		writeNotebook(t, dir, "broken.ipynb", "{not json")
		repo := NewRepository(Config{Path: dir})

		_, err := repo.Get(ctx, "broken.ipynb")
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrInvalidNotebook))
		assert.Contains(t, err.Error(), "broken.ipynb")
	})

	t.Run("Cache Follows File Changes", func(t *testing.T) {
		dir := t.TempDir()
		writeNotebook(t, dir, "nb.ipynb", `{"cells": []}`)
		repo := NewRepository(Config{Path: dir})

		_, err := repo.Get(ctx, "nb.ipynb")
		require.NoError(t, err)
		_, err = repo.Get(ctx, "nb.ipynb")
		require.NoError(t, err)

		state := repo.State().(RepositoryState)
		assert.Equal(t, 1, state.Parsed)
		assert.Equal(t, 1, state.CacheSize)

		writeNotebook(t, dir, "nb.ipynb", sampleNotebook)
		future := time.Now().Add(time.Minute)
		require.NoError(t, os.Chtimes(filepath.Join(dir, "nb.ipynb"), future, future))

		nb, err := repo.Get(ctx, "nb.ipynb")
		require.NoError(t, err)
		assert.Len(t, nb.Cells, 3)
		assert.Equal(t, 2, repo.State().(RepositoryState).Parsed)
	})

	t.Run("Honors Cancelled Context", func(t *testing.T) {
		repo := NewRepository(Config{Path: t.TempDir()})
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.Get(cctx, "nb.ipynb")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRepository_Discover(t *testing.T) {
	dir := t.TempDir()
	writeNotebook(t, dir, "edadataviz.ipynb", `{"cells": []}`)
	writeNotebook(t, dir, "labs/webscraping.ipynb", `{"cells": []}`)
	writeNotebook(t, dir, "webscraping.ipynb", `{"cells": []}`)
	writeNotebook(t, dir, "labs/.ipynb_checkpoints/webscraping-checkpoint.ipynb", `{"cells": []}`)
	writeNotebook(t, dir, "README.md", "# readme")

	repo := NewRepository(Config{Path: dir})

	entries, err := repo.Discover(context.Background(), "**/*.ipynb")
	require.NoError(t, err)
	assert.Equal(t, []core.Entry{
		{Key: "edadataviz", File: "edadataviz.ipynb"},
		{Key: "labs/webscraping", File: "labs/webscraping.ipynb"},
		{Key: "webscraping", File: "webscraping.ipynb"},
	}, entries)

	_, err = repo.Discover(context.Background(), "[")
	assert.Error(t, err)
}

func TestRepository_ServiceIntegration(t *testing.T) {
	dir := t.TempDir()
	writeNotebook(t, dir, "ml.ipynb", sampleNotebook)
	writeNotebook(t, dir, "bad.ipynb", `{"cells": null}`)

	svc := core.NewService(NewRepository(Config{Path: dir}), []core.Entry{
		{Key: "data_collection", File: "jupyter-labs-spacex-data-collection-api.ipynb"},
		{Key: "broken", File: "bad.ipynb"},
		{Key: "machine_learning", File: "ml.ipynb"},
	})

	results, err := svc.ExtractAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "Notebook not found: jupyter-labs-spacex-data-collection-api.ipynb", results[0].Message)
	assert.Contains(t, results[1].Message, "Error analyzing notebook:")

	ml := results[2]
	assert.False(t, ml.Failed())
	require.Len(t, ml.Insights, 2)
	assert.Equal(t, 0, ml.Insights[0].CellIndex)
	assert.Equal(t, 1, ml.Insights[1].CellIndex)
	assert.Equal(t, core.InsightOutput, ml.Insights[1].Type)
	assert.Equal(t, "Best Accuracy: 94.4%\n", ml.Insights[1].Content)
}
