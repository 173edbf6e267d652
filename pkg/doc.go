// Package pkg provides the core libraries for Flowmark flowchart tooling.
//
// # Overview
//
// Flowmark parses, formats, and renders a flowchart markup dialect. The pkg
// directory is organized into a small set of focused packages:
//
//  1. [flowchart] - The diagram model, serializer, and parser
//  2. [render] - SVG rendering via local Graphviz or a remote Kroki service
//  3. [cache] - Artifact caching (file, Redis, null backends)
//  4. [io] - File and stream import/export plumbing
//  5. [httputil] - Retry helpers for HTTP clients
//  6. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical data flow through Flowmark:
//
//	Markup text
//	         ↓
//	    [flowchart] package (parse into the container tree)
//	         ↓
//	    [render] package (DOT translation or remote service)
//	         ↓
//	    SVG output (optionally cached via [cache])
//
// # Quick Start
//
// Build a diagram programmatically and serialize it:
//
//	import "github.com/flowmark/flowmark/pkg/flowchart"
//
//	f := flowchart.NewWithTitle("pipeline").
//	    AddNodeWithLabel("build").
//	    AddNodeWithLabel("deploy").
//	    Connect("build", "deploy")
//	fmt.Print(f.Render())
//
// Or parse existing markup and render it to SVG:
//
//	f, err := flowchart.Parse(text)
//	svg, err := render.Graphviz{}.Render(ctx, f.Render())
//
// # Main Packages
//
// [flowchart] - The core dialect: nodes with eight shapes, typed links with
// labels and styles, nested subgraphs, class definitions, and link style
// statements. Parsing and serialization round-trip canonical text
// byte-identically.
//
// [render] - Two rendering engines behind one Renderer interface: Graphviz
// translates diagrams to DOT and rasterizes locally; Kroki posts the markup
// to a remote service with retry on transient failures. WithCache wraps
// either engine with artifact caching.
//
// [cache] - Content-addressed artifact storage keyed on a SHA-256 of the
// markup. FileCache for the CLI, RedisCache for server deployments,
// NullCache for tests and cache bypass.
//
// [io] - Import/export against files and streams, with "-" as the stdin
// and stdout convention.
//
// [flowchart]: https://pkg.go.dev/github.com/flowmark/flowmark/pkg/flowchart
// [render]: https://pkg.go.dev/github.com/flowmark/flowmark/pkg/render
// [cache]: https://pkg.go.dev/github.com/flowmark/flowmark/pkg/cache
// [io]: https://pkg.go.dev/github.com/flowmark/flowmark/pkg/io
// [httputil]: https://pkg.go.dev/github.com/flowmark/flowmark/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/flowmark/flowmark/pkg/observability
package pkg
