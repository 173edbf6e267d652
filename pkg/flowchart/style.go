package flowchart

import (
	"strconv"
	"strings"
)

// NodeStyle is an optional attribute bag for node styling. Absent
// attributes contribute nothing to the output; an entirely empty style
// renders as the empty string.
type NodeStyle struct {
	Fill        string
	Stroke      string
	StrokeWidth string
	Color       string
	StrokeDash  string
}

// String renders the style as comma-joined key:value pairs in fixed field
// order: fill, stroke, stroke-width, color, stroke-dasharray.
func (s *NodeStyle) String() string {
	return joinAttrs([]attr{
		{"fill", s.Fill},
		{"stroke", s.Stroke},
		{"stroke-width", s.StrokeWidth},
		{"color", s.Color},
		{"stroke-dasharray", s.StrokeDash},
	})
}

// LinkStyle is an optional attribute bag for link styling.
type LinkStyle struct {
	Stroke      string
	StrokeWidth string
	Color       string
}

// String renders the style as comma-joined key:value pairs in fixed field
// order: stroke, stroke-width, color.
func (s *LinkStyle) String() string {
	return joinAttrs([]attr{
		{"stroke", s.Stroke},
		{"stroke-width", s.StrokeWidth},
		{"color", s.Color},
	})
}

// DashPattern normalizes a numeric dash sequence to the space-joined text
// accepted by the stroke-dasharray attribute.
func DashPattern(segments ...int) string {
	parts := make([]string, len(segments))
	for i, n := range segments {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

type attr struct {
	key   string
	value string
}

func joinAttrs(attrs []attr) string {
	var parts []string
	for _, a := range attrs {
		if a.value != "" {
			parts = append(parts, a.key+":"+a.value)
		}
	}
	return strings.Join(parts, ",")
}

// styleText is a two-variant style value: either a raw style string or a
// structured style object. The canonical textual form is resolved only at
// serialization time.
type styleText struct {
	raw string
	obj interface{ String() string }
}

func rawStyle(s string) styleText { return styleText{raw: s} }

func objStyle(obj interface{ String() string }) styleText { return styleText{obj: obj} }

func (s styleText) render() string {
	if s.obj != nil {
		return s.obj.String()
	}
	return s.raw
}

func (s styleText) present() bool {
	return s.obj != nil || s.raw != ""
}
