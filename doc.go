// Package capstone is the composition root for the capstone tooling.
//
// It wires the insight extraction service (pkg/core) to the notebook
// filesystem adapter (pkg/adapters/fs) using functional options, and exposes
// the project configuration loaded from capstone.yaml.
//
// Features:
//
//   - Keyword based insight extraction from Jupyter notebooks.
//   - Notebook discovery with doublestar globs and watch mode over fsnotify.
//   - Project charts rendered to PNG or PDF (pkg/chart).
//   - Presentation summary and slide templates (pkg/present).
//
// Usage:
//
//	svc, err := capstone.New("./coursework",
//		capstone.WithDiscover("**/*.ipynb"),
//		capstone.WithLogger(logger),
//	)
//
//	results, err := svc.ExtractAll(ctx)
package capstone
