package io

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/flowmark/flowmark/pkg/flowchart"
)

func TestReadWriteRoundTrip(t *testing.T) {
	f := flowchart.NewWithTitle("pipeline").
		AddNodeWithLabel("build").
		AddNodeWithLabel("deploy").
		Connect("build", "deploy")

	var buf bytes.Buffer
	if err := Write(f, &buf); err != nil {
		t.Fatal(err)
	}

	parsed, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Title != "pipeline" {
		t.Errorf("Title = %q, want pipeline", parsed.Title)
	}
	if parsed.Render() != f.Render() {
		t.Error("round trip through Read/Write not identical")
	}
}

func TestImportExportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.mmd")

	f := flowchart.New().AddNodeWithLabel("a").Connect("a", "b")
	if err := ExportFile(f, path); err != nil {
		t.Fatal(err)
	}

	parsed, err := ImportFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Render() != f.Render() {
		t.Error("file round trip not identical")
	}
}

func TestImportFileMissing(t *testing.T) {
	if _, err := ImportFile(filepath.Join(t.TempDir(), "nope.mmd")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportFileParseErrorKeepsSentinel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mmd")
	if err := os.WriteFile(path, []byte("not a flowchart\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportFile(path)
	if !errors.Is(err, flowchart.ErrMissingHeader) {
		t.Errorf("err = %v, want ErrMissingHeader", err)
	}
}
