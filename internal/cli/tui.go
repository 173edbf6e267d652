package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/flowmark/flowmark/pkg/flowchart"
	pkgio "github.com/flowmark/flowmark/pkg/io"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the explore command for browsing a diagram in the
// terminal. Nodes are listed in document order with their subgraph nesting
// shown as indentation; the detail pane shows the selected node's links.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "explore [file]",
		Aliases: []string{"tui"},
		Short:   "Browse a diagram interactively in the terminal",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := pkgio.ImportFile(args[0])
			if err != nil {
				return err
			}

			model := NewExplorerModel(f)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// =============================================================================
// ExplorerModel - Interactive diagram browsing
// =============================================================================

// nodeEntry is one row in the explorer list: a node plus where it lives.
type nodeEntry struct {
	node     *flowchart.Node
	subgraph string // enclosing subgraph id, "" at the root
	depth    int    // nesting depth for indentation
}

// ExplorerModel is the bubbletea model for diagram exploration.
type ExplorerModel struct {
	Title     string
	Direction flowchart.Direction
	Entries   []nodeEntry
	Links     []*flowchart.Link
	Cursor    int
	Height    int
	Offset    int
}

// NewExplorerModel flattens the diagram into a navigable list.
func NewExplorerModel(f *flowchart.Flowchart) ExplorerModel {
	m := ExplorerModel{
		Title:     f.Title,
		Direction: f.Direction,
		Height:    15,
	}
	m.collect(f, "", 0)
	return m
}

// collect walks the diagram depth-first, matching serialization order.
func (m *ExplorerModel) collect(f *flowchart.Flowchart, parent string, depth int) {
	for _, n := range f.Nodes() {
		m.Entries = append(m.Entries, nodeEntry{node: n, subgraph: parent, depth: depth})
	}
	m.Links = append(m.Links, f.Links()...)
	for _, sg := range f.Subgraphs() {
		m.collect(sg, sg.ID(), depth+1)
	}
}

func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g":
			m.Cursor = 0
			m.Offset = 0
		case "G":
			m.Cursor = len(m.Entries) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 10
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ExplorerModel) View() string {
	var b strings.Builder

	title := m.Title
	if title == "" {
		title = "Untitled Diagram"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  (%s, %d nodes, %d links)", m.Direction, len(m.Entries), len(m.Links))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G jump  q quit"))
	b.WriteString("\n\n")

	if len(m.Entries) == 0 {
		b.WriteString(listDimStyle.Render("  (no nodes)"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		indent := strings.Repeat("  ", e.depth)
		line := fmt.Sprintf("%s%s%s %s", cursor, indent, e.node.ID(), listDimStyle.Render(e.node.Shape.String()))
		if e.node.Class != "" {
			line += " " + listDimStyle.Render(":::"+e.node.Class)
		}

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailView())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// detailView renders the selected node's label, location, and links.
func (m ExplorerModel) detailView() string {
	e := m.Entries[m.Cursor]
	var b strings.Builder

	b.WriteString(listDimStyle.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", listDimStyle.Render("Label:"), StyleValue.Render(e.node.Label)))
	if e.subgraph != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", listDimStyle.Render("Subgraph:"), StyleValue.Render(e.subgraph)))
	}

	for _, l := range m.Links {
		var line string
		switch e.node.ID() {
		case l.From():
			line = fmt.Sprintf("%s %s %s", iconArrow, l.To(), linkLabel(l))
		case l.To():
			line = fmt.Sprintf("%s %s %s", "←", l.From(), linkLabel(l))
		default:
			continue
		}
		b.WriteString("  " + listDimStyle.Render(strings.TrimSpace(line)) + "\n")
	}

	return b.String()
}

// linkLabel formats a link's label for the detail pane.
func linkLabel(l *flowchart.Link) string {
	if l.Label == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", l.Label)
}
