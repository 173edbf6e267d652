// Package render turns diagram markup into displayable artifacts.
//
// The markup dialect is designed for external renderers; this package
// provides the two delegation paths the CLI and server use:
//
//   - [Graphviz]: an embedded approximation. The flowchart is converted
//     to Graphviz DOT with [ToDOT] and rasterized locally. Shapes and
//     nesting are mapped to their closest DOT equivalents; class-based
//     styling is not applied.
//   - [Kroki]: a client for any Kroki-compatible rendering service,
//     which understands the dialect natively and produces faithful
//     output.
//
// Both implement [Renderer]. Wrap either with [WithCache] to reuse
// artifacts across invocations: serialization is deterministic, so the
// markup text is a sound cache key.
package render
