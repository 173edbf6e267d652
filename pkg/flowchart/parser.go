package flowchart

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors returned by [Parse]. Use errors.Is to distinguish the
// failure modes; the returned error additionally carries the line number
// and offending text where applicable.
var (
	// ErrUnclosedFrontMatter is returned when a front-matter block is
	// opened but never closed.
	ErrUnclosedFrontMatter = errors.New("front matter opened but never closed")

	// ErrMissingHeader is returned when the document's first statement is
	// not a flowchart directive with a known direction token.
	ErrMissingHeader = errors.New("missing or malformed flowchart header")

	// ErrMissingDirection is returned when a subgraph is not immediately
	// followed by a direction line with a known token.
	ErrMissingDirection = errors.New("subgraph missing direction line")

	// ErrMissingEnd is returned when input ends inside an open subgraph.
	ErrMissingEnd = errors.New("subgraph missing closing end")

	// ErrUnexpectedEnd is returned for an end statement at the top level,
	// where no subgraph is open.
	ErrUnexpectedEnd = errors.New("unexpected end outside subgraph")

	// ErrUnsupportedLine is returned for a line that matches none of the
	// known statement grammars.
	ErrUnsupportedLine = errors.New("unsupported line")
)

var (
	headerRe    = regexp.MustCompile(`^flowchart\s+(\S+)$`)
	directionRe = regexp.MustCompile(`^direction\s+(\S+)$`)
	subgraphRe  = regexp.MustCompile(`^subgraph\s+(\S+)(?:\s+\[(.*)\])?$`)
	classDefRe  = regexp.MustCompile(`^classDef\s+(\S+)\s+(.+?);?$`)
	classRe     = regexp.MustCompile(`^class\s+(\S+)\s+(\S+?);?$`)
	linkStyleRe = regexp.MustCompile(`^linkStyle\s+(\d+)\s+(.+?);?$`)
	linkRe      = regexp.MustCompile(`^([A-Za-z0-9\-_!#$]+)\s*(-->|---|~~~)\s*(?:\|([^|]*)\|\s*)?([A-Za-z0-9\-_!#$]+)$`)
)

// parseState is the explicit mutable state threaded through the recursive
// descent. It mirrors the serializer's global link counter so that
// positional linkStyle statements can be attributed correctly.
type parseState struct {
	next        int   // index the next link statement will be assigned
	last        *Link // most recently parsed link, any depth
	lastIndex   int   // index assigned to last
	lastWasLink bool  // whether the immediately preceding statement was a link
}

type parser struct {
	lines []string
	pos   int
	st    parseState
}

// Parse reconstructs a flowchart tree from markup text. It inverts
// [Flowchart.Render] exactly and rejects any input that does not conform,
// returning an error wrapping one of the package sentinels.
func Parse(text string) (*Flowchart, error) {
	p := &parser{lines: strings.Split(text, "\n")}

	f := New()
	title, err := p.frontMatter()
	if err != nil {
		return nil, err
	}
	f.Title = title

	line, n, ok := p.next()
	if !ok {
		return nil, ErrMissingHeader
	}
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("line %d: %w: %q", n, ErrMissingHeader, line)
	}
	dir, known := ParseDirection(m[1])
	if !known {
		return nil, fmt.Errorf("line %d: %w: unknown direction %q", n, ErrMissingHeader, m[1])
	}
	f.Direction = dir

	if err := p.body(f, false); err != nil {
		return nil, err
	}
	return f, nil
}

// next returns the next non-blank line, trimmed, with its 1-based number.
func (p *parser) next() (string, int, bool) {
	for p.pos < len(p.lines) {
		line := strings.TrimSpace(p.lines[p.pos])
		p.pos++
		if line != "" {
			return line, p.pos, true
		}
	}
	return "", 0, false
}

// frontMatter consumes an optional --- delimited block and extracts the
// title. The block body is YAML; when it does not decode cleanly the
// title line is recovered by prefix matching, since serialized titles are
// written verbatim without escaping.
func (p *parser) frontMatter() (string, error) {
	save := p.pos
	line, _, ok := p.next()
	if !ok || line != "---" {
		p.pos = save
		return "", nil
	}

	var body []string
	for p.pos < len(p.lines) {
		raw := p.lines[p.pos]
		p.pos++
		if strings.TrimSpace(raw) == "---" {
			return frontMatterTitle(body), nil
		}
		body = append(body, raw)
	}
	return "", ErrUnclosedFrontMatter
}

func frontMatterTitle(body []string) string {
	var fm struct {
		Title string `yaml:"title"`
	}
	joined := strings.Join(body, "\n")
	if err := yaml.Unmarshal([]byte(joined), &fm); err == nil && fm.Title != "" {
		return fm.Title
	}
	for _, line := range body {
		if t, ok := strings.CutPrefix(strings.TrimSpace(line), "title:"); ok {
			return strings.TrimSpace(t)
		}
	}
	return ""
}

// body parses statements into f until input is exhausted or, when
// stopOnEnd is set, an end statement closes the container. Statements are
// recognized in fixed priority order: end, subgraph, classDef, class,
// linkStyle, link, node.
func (p *parser) body(f *Flowchart, stopOnEnd bool) error {
	for {
		line, n, ok := p.next()
		if !ok {
			if stopOnEnd {
				return fmt.Errorf("subgraph %s: %w", f.id, ErrMissingEnd)
			}
			return nil
		}

		if line == "end" {
			if !stopOnEnd {
				return fmt.Errorf("line %d: %w", n, ErrUnexpectedEnd)
			}
			return nil
		}

		if m := subgraphRe.FindStringSubmatch(line); m != nil {
			sg, err := p.subgraph(m[1], m[2])
			if err != nil {
				return err
			}
			f.subgraphs = append(f.subgraphs, sg)
			p.st.lastWasLink = false
			continue
		}

		if m := classDefRe.FindStringSubmatch(line); m != nil {
			f.DefineClass(NewRawClassDef(m[2], strings.Split(m[1], ",")...))
			p.st.lastWasLink = false
			continue
		}

		if m := classRe.FindStringSubmatch(line); m != nil {
			f.AttachClass(m[2], strings.Split(m[1], ",")...)
			p.st.lastWasLink = false
			continue
		}

		if m := linkStyleRe.FindStringSubmatch(line); m != nil {
			index, _ := strconv.Atoi(m[1])
			p.linkStyle(f, index, m[2])
			p.st.lastWasLink = false
			continue
		}

		if m := linkRe.FindStringSubmatch(line); m != nil {
			l := NewLink(m[1], m[4]).WithKind(LinkKind(m[2]))
			if m[3] != "" {
				l.WithLabel(m[3])
			}
			f.AddLink(l)
			p.st.last = l
			p.st.lastIndex = p.st.next
			p.st.next++
			p.st.lastWasLink = true
			continue
		}

		if node, ok := parseNode(line); ok {
			f.AddNode(node)
			p.st.lastWasLink = false
			continue
		}

		return fmt.Errorf("line %d: %w: %q", n, ErrUnsupportedLine, line)
	}
}

// subgraph parses a nested container: the opening statement has already
// been consumed, the next non-blank line must be its direction, and the
// body runs until a matching end.
func (p *parser) subgraph(id, title string) (*Flowchart, error) {
	line, n, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("subgraph %s: %w", id, ErrMissingDirection)
	}
	m := directionRe.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("line %d: subgraph %s: %w", n, id, ErrMissingDirection)
	}
	dir, known := ParseDirection(m[1])
	if !known {
		return nil, fmt.Errorf("line %d: subgraph %s: %w: unknown direction %q", n, id, ErrMissingDirection, m[1])
	}

	sg := &Flowchart{id: id, sub: true, Title: title, Direction: dir}
	if err := p.body(sg, true); err != nil {
		return nil, err
	}
	return sg, nil
}

// linkStyle attributes a style statement. It is attached inline to the
// most recent link only when that link was the immediately preceding
// statement, the index matches its assigned running index, and the link
// is not already styled; otherwise it is recorded as a positional
// override on the current container. The two emission paths share one
// textual form, so this attribution is an accepted approximation when an
// override happens to target the last-seen link.
func (p *parser) linkStyle(f *Flowchart, index int, style string) {
	if p.st.lastWasLink && p.st.lastIndex == index && !p.st.last.Styled() {
		p.st.last.SetRawStyle(style)
		return
	}
	f.StyleLinkRaw(index, style)
}

// parseNode recognizes an identifier prefix immediately followed by a
// shape-delimited label, with an optional class suffix after the
// rightmost ::: separator. Shapes are tested in fixed priority order,
// most specific first.
func parseNode(line string) (*Node, bool) {
	body := line
	class := ""
	if i := strings.LastIndex(body, classSeparator); i >= 0 {
		class = body[i+len(classSeparator):]
		if class == "" {
			return nil, false
		}
		body = body[:i]
	}

	j := 0
	for j < len(body) && isIDChar(body[j]) {
		j++
	}
	id, rest := body[:j], body[j:]

	for _, s := range shapeParseOrder {
		open, close := s.Delimiters()
		if len(rest) >= len(open)+len(close) &&
			strings.HasPrefix(rest, open) && strings.HasSuffix(rest, close) {
			return &Node{
				id:         id,
				idResolved: true,
				Label:      rest[len(open) : len(rest)-len(close)],
				Shape:      s,
				Class:      class,
			}, true
		}
	}
	return nil, false
}

func isIDChar(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '-', b == '_', b == '!', b == '#', b == '$':
		return true
	}
	return false
}
