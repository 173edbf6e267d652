package flowchart

import "testing"

// buildFixtures returns named trees exercising every statement kind.
func buildFixtures(t *testing.T) map[string]*Flowchart {
	t.Helper()

	minimal := NewWithTitle("test1").
		AddNodeWithLabel("user").
		AddNodeWithLabel("client").
		AddNodeWithLabel("server").
		AddNodeWithLabel("database").
		Connect("user", "client").
		Connect("client", "server").
		Connect("server", "database")

	shapes := New().WithDirection(DirectionLR).
		AddNode(NewNode("round")).
		AddNode(NewNode("rect").WithShape(ShapeRect)).
		AddNode(NewNode("stadium").WithShape(ShapeStadium)).
		AddNode(NewNode("subroutine").WithShape(ShapeSubroutine)).
		AddNode(NewNode("circle").WithShape(ShapeCircle)).
		AddNode(NewNode("flag").WithShape(ShapeAsymmetric)).
		AddNode(NewNode("decision").WithShape(ShapeRhombus)).
		AddNode(NewNodeWithID("hex", "prepare {it}").WithShape(ShapeHexagon))

	inner, err := NewSubgraph("inner", "Inner")
	if err != nil {
		t.Fatal(err)
	}
	inner.WithDirection(DirectionLR).
		AddNodeWithLabel("x").
		AddLink(NewLink("x", "y").WithLabel("go").SetStyle(&LinkStyle{Stroke: "red", StrokeWidth: "2px"}))

	deep, err := NewSubgraph("deep", "")
	if err != nil {
		t.Fatal(err)
	}
	deep.Connect("p", "q")
	inner.AddSubgraph(deep)

	nested := NewWithTitle("nested demo").WithDirection(DirectionBT).
		AddNode(NewNode("top").WithClass("main")).
		Connect("top", "x").
		AddSubgraph(inner).
		DefineClass(NewClassDef(&NodeStyle{Fill: "#f9f", Stroke: "#333", StrokeDash: DashPattern(5, 5)}, "main", "alt")).
		AttachClass("main", "top", "x").
		StyleLinkRaw(2, "stroke:green")

	styled := New().
		AddLink(NewLink("a", "b").WithKind(LinkLine)).
		AddLink(NewLink("b", "c").WithKind(LinkInvisible)).
		AddLink(NewLink("c", "d").SetRawStyle("stroke:#00f"))

	return map[string]*Flowchart{
		"minimal": minimal,
		"shapes":  shapes,
		"nested":  nested,
		"styled":  styled,
	}
}

func TestRoundTripIdempotent(t *testing.T) {
	for name, f := range buildFixtures(t) {
		t.Run(name, func(t *testing.T) {
			first := f.Render()

			parsed, err := Parse(first)
			if err != nil {
				t.Fatalf("Parse() error: %v\ninput:\n%s", err, first)
			}

			second := parsed.Render()
			if second != first {
				t.Errorf("round trip not byte-identical:\nfirst:\n%s\nsecond:\n%s", first, second)
			}
		})
	}
}

func TestRoundTripPositionalInlineAmbiguity(t *testing.T) {
	// A positional override targeting the last link of its container is
	// emitted directly after that link when nothing else intervenes. The
	// parser cannot distinguish it from an inline style and re-attributes
	// it to the link. The model representation changes, the rendered text
	// does not.
	f := New().
		Connect("a", "b").
		StyleLinkRaw(0, "stroke:red")

	first := f.Render()
	parsed, err := Parse(first)
	if err != nil {
		t.Fatal(err)
	}

	if !parsed.Links()[0].Styled() {
		t.Error("override adjacent to its link should re-parse as inline style")
	}
	if len(parsed.linkStyles) != 0 {
		t.Errorf("len(linkStyles) = %d, want 0 after re-attribution", len(parsed.linkStyles))
	}

	if second := parsed.Render(); second != first {
		t.Errorf("text must converge despite representation change:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestRoundTripLinkIndexMonotonicity(t *testing.T) {
	// Styling the n-th document-order link positionally must survive a
	// round trip with the same absolute index.
	sg, err := NewSubgraph("grp", "")
	if err != nil {
		t.Fatal(err)
	}
	sg.Connect("c", "d").Connect("d", "e")

	f := New().
		Connect("a", "b").
		AddSubgraph(sg).
		AddNodeWithLabel("tail").
		StyleLinkRaw(1, "stroke:orange")

	first := f.Render()
	parsed, err := Parse(first)
	if err != nil {
		t.Fatal(err)
	}

	if len(parsed.linkStyles) != 1 || parsed.linkStyles[0].index != 1 {
		t.Fatalf("positional override lost or renumbered: %+v", parsed.linkStyles)
	}
	if second := parsed.Render(); second != first {
		t.Errorf("round trip not byte-identical:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}
