package flowchart

import "testing"

func TestNodeStyleString(t *testing.T) {
	tests := []struct {
		name  string
		style NodeStyle
		want  string
	}{
		{"empty", NodeStyle{}, ""},
		{"fill only", NodeStyle{Fill: "#f9f"}, "fill:#f9f"},
		{
			"all fields in fixed order",
			NodeStyle{Fill: "#f9f", Stroke: "#333", StrokeWidth: "4px", Color: "white", StrokeDash: "5 5"},
			"fill:#f9f,stroke:#333,stroke-width:4px,color:white,stroke-dasharray:5 5",
		},
		{
			"gaps are skipped",
			NodeStyle{Stroke: "#333", Color: "red"},
			"stroke:#333,color:red",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLinkStyleString(t *testing.T) {
	s := LinkStyle{Stroke: "red", StrokeWidth: "2px", Color: "blue"}
	want := "stroke:red,stroke-width:2px,color:blue"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got := (&LinkStyle{}).String(); got != "" {
		t.Errorf("empty String() = %q, want empty", got)
	}
}

func TestDashPattern(t *testing.T) {
	if got := DashPattern(5, 5); got != "5 5" {
		t.Errorf("DashPattern(5, 5) = %q, want %q", got, "5 5")
	}
	if got := DashPattern(10); got != "10" {
		t.Errorf("DashPattern(10) = %q, want %q", got, "10")
	}
	if got := DashPattern(); got != "" {
		t.Errorf("DashPattern() = %q, want empty", got)
	}
}

func TestClassDefText(t *testing.T) {
	cd := NewClassDef(&NodeStyle{Fill: "#f9f", Stroke: "#333"}, "class1", "class2")
	want := "classDef class1,class2 fill:#f9f,stroke:#333"
	if got := cd.text(); got != want {
		t.Errorf("text() = %q, want %q", got, want)
	}

	raw := NewRawClassDef("fill:red", "warn")
	if got := raw.text(); got != "classDef warn fill:red" {
		t.Errorf("text() = %q", got)
	}
}

func TestClassAttachmentText(t *testing.T) {
	a := NewClassAttachment("class1", "my-node")
	if got := a.text(); got != "class my-node class1;" {
		t.Errorf("text() = %q", got)
	}

	mixed := NewClassAttachment("c", "a").AddNode(NewNode("node b")).AddID("z")
	if got := mixed.text(); got != "class a,nodeb,z c;" {
		t.Errorf("text() = %q", got)
	}
}
