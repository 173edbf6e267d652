package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flowmark/flowmark/pkg/flowchart"
)

func exploreFixture(t *testing.T) *flowchart.Flowchart {
	t.Helper()
	sg, err := flowchart.NewSubgraph("", "backend")
	if err != nil {
		t.Fatal(err)
	}
	sg.AddNodeWithLabel("api").AddNodeWithLabel("db").Connect("api", "db")

	return flowchart.NewWithTitle("system").
		AddNodeWithLabel("user").
		Connect("user", "api").
		AddSubgraph(sg)
}

func TestNewExplorerModel(t *testing.T) {
	m := NewExplorerModel(exploreFixture(t))

	if m.Title != "system" {
		t.Errorf("Title = %q, want system", m.Title)
	}
	if len(m.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(m.Entries))
	}
	if len(m.Links) != 2 {
		t.Errorf("len(Links) = %d, want 2", len(m.Links))
	}

	// Root nodes precede subgraph nodes, matching document order
	if m.Entries[0].node.ID() != "user" || m.Entries[0].depth != 0 {
		t.Errorf("Entries[0] = %s depth %d", m.Entries[0].node.ID(), m.Entries[0].depth)
	}
	if m.Entries[1].node.ID() != "api" || m.Entries[1].subgraph != "backend" {
		t.Errorf("Entries[1] = %s in %q", m.Entries[1].node.ID(), m.Entries[1].subgraph)
	}
	if m.Entries[1].depth != 1 {
		t.Errorf("Entries[1].depth = %d, want 1", m.Entries[1].depth)
	}
}

func TestExplorerModelNavigation(t *testing.T) {
	m := NewExplorerModel(exploreFixture(t))

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}

	next, _ := m.Update(down)
	m = next.(ExplorerModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(up)
	m = next.(ExplorerModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after up, want 0", m.Cursor)
	}

	// Up at the top stays put
	next, _ = m.Update(up)
	m = next.(ExplorerModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, should not go negative", m.Cursor)
	}

	// G jumps to the last entry
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	m = next.(ExplorerModel)
	if m.Cursor != len(m.Entries)-1 {
		t.Errorf("Cursor = %d after G, want %d", m.Cursor, len(m.Entries)-1)
	}
}

func TestExplorerModelQuit(t *testing.T) {
	m := NewExplorerModel(exploreFixture(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestExplorerModelView(t *testing.T) {
	m := NewExplorerModel(exploreFixture(t))
	view := m.View()

	for _, want := range []string{"system", "user", "api", "db"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestExplorerModelViewEmpty(t *testing.T) {
	m := NewExplorerModel(flowchart.New())
	if view := m.View(); !strings.Contains(view, "no nodes") {
		t.Error("empty diagram view should say no nodes")
	}
}
