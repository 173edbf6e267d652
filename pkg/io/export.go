package io

import (
	"fmt"
	"io"
	"os"

	"github.com/flowmark/flowmark/pkg/flowchart"
)

// Write serializes a flowchart tree as markup and writes it to w.
// The output can be re-imported with [Read] for round-trip processing.
func Write(f *flowchart.Flowchart, w io.Writer) error {
	if _, err := io.WriteString(w, f.Render()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportFile writes a flowchart tree to a markup file at path.
// A path of [StdinPath] writes to stdout instead.
func ExportFile(f *flowchart.Flowchart, path string) error {
	if path == StdinPath {
		return Write(f, os.Stdout)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	return Write(f, out)
}
