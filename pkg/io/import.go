package io

import (
	"fmt"
	"io"
	"os"

	"github.com/flowmark/flowmark/pkg/flowchart"
)

// StdinPath is the conventional path selecting stdin or stdout.
const StdinPath = "-"

// Read parses a markup document from r into a flowchart tree.
//
// Read returns the parse errors of [flowchart.Parse] unchanged, so
// callers can match the package sentinels with errors.Is. The returned
// tree is independent of r; Read does not close r.
func Read(r io.Reader) (*flowchart.Flowchart, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return flowchart.Parse(string(data))
}

// ImportFile reads and parses the markup document at path.
// A path of [StdinPath] reads from stdin instead.
func ImportFile(path string) (*flowchart.Flowchart, error) {
	if path == StdinPath {
		return Read(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
