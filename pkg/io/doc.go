// Package io reads and writes flowchart markup documents.
//
// It wraps the core [flowchart.Parse] and [flowchart.Flowchart.Render]
// operations with file and stream plumbing so that CLI commands and the
// HTTP server share one code path. The conventional "-" path selects
// stdin for reads and stdout for writes.
//
// # Example
//
//	f, err := io.ImportFile("diagram.mmd")
//	if err != nil {
//	    return err
//	}
//	f.AddNodeWithLabel("cache")
//	err = io.ExportFile(f, "diagram.mmd")
package io
