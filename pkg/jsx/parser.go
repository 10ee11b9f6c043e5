// Package jsx extracts a best-effort parse tree from the markup snippets
// shown in component documentation demos. It is a tolerant single-pass
// tokenizer, not a real JSX parser: expressions, spread props and
// conditional rendering are passed through opaquely or dropped.
package jsx

import "strings"

// TextName is the tag name sentinel used for literal text children.
const TextName = "#text"

// Node is the parsed representation of a single markup snippet.
type Node struct {
	Name       string            `json:"ComponentName"`
	Props      map[string]string `json:"Props"`
	InnerText  string            `json:"InnerText"`
	Children   []*Node           `json:"Children"`
	StyleRules map[string]string `json:"RawInlineStyleRules"`
}

// Empty reports whether the node is the empty-shell sentinel returned for
// input where no tag could be located.
func (n *Node) Empty() bool {
	return n == nil || n.Name == ""
}

func newNode() *Node {
	return &Node{
		Props:      map[string]string{},
		Children:   []*Node{},
		StyleRules: map[string]string{},
	}
}

func textNode(text string) *Node {
	n := newNode()
	n.Name = TextName
	n.InnerText = text
	return n
}

// Parse parses a text span starting with an opening tag into a Node. Input
// where no tag can be located yields an empty-shell node with no tag name;
// callers must check Empty before use. Malformed markup never produces an
// error, only a partial or empty result.
func Parse(snippet string) *Node {
	n := newNode()

	tag, ok := scanOpenTag(snippet, 0)
	if !ok {
		return n
	}
	n.Name = tag.name
	n.Props["componentTag"] = tag.name

	for _, a := range tag.attrs {
		if !a.hasValue {
			// JSX boolean shorthand, e.g. <Button disabled />.
			n.Props[a.name] = "true"
			continue
		}
		v := strings.TrimSpace(a.value)
		switch {
		case strings.EqualFold(v, "true"):
			n.Props[a.name] = "true"
		case strings.EqualFold(v, "false"):
			n.Props[a.name] = "false"
		case a.name == "sx":
			for k, sv := range ParseStyleObject(v) {
				n.StyleRules[k] = sv
			}
		case a.name == "style":
			for k, sv := range ParseInlineStyle(v) {
				n.StyleRules[k] = sv
			}
		default:
			n.Props[a.name] = v
		}
	}

	if !tag.selfClosing {
		if end := findClosing(snippet, tag.end, tag.name); end >= 0 {
			n.parseInner(snippet[tag.end:end])
		}
	}

	// Icon-only buttons have no text of their own, the generators still
	// need a label placeholder.
	if n.Name == "IconButton" && n.InnerText == "" && len(n.Children) == 0 {
		n.InnerText = "Icon"
	}
	return n
}

func (n *Node) parseInner(inner string) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return
	}
	if !hasTagStart(inner) {
		n.InnerText = inner
		return
	}
	spans := snippetSpans(inner)
	if len(spans) == 0 {
		// Looked like markup but nothing parseable, keep it as text.
		n.InnerText = inner
		return
	}
	last := 0
	for _, sp := range spans {
		if pre := strings.TrimSpace(inner[last:sp.start]); pre != "" {
			n.Children = append(n.Children, textNode(pre))
		}
		child := Parse(inner[sp.start:sp.end])
		if !child.Empty() {
			n.Children = append(n.Children, child)
		}
		last = sp.end
	}
	if post := strings.TrimSpace(inner[last:]); post != "" {
		n.Children = append(n.Children, textNode(post))
	}
}

// Split extracts the top-level snippets from a block of code, each either a
// self-closing tag or an opening tag up to the first matching close. If no
// snippet is found but the text is non-empty, the whole text is returned as
// a single snippet.
func Split(text string) []string {
	spans := snippetSpans(text)
	if len(spans) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}
	out := make([]string, len(spans))
	for i, sp := range spans {
		out[i] = text[sp.start:sp.end]
	}
	return out
}

type span struct {
	start, end int
}

func snippetSpans(text string) []span {
	var spans []span
	i := 0
	for i < len(text) {
		tag, ok := scanOpenTag(text, i)
		if !ok {
			break
		}
		end := tag.end
		if !tag.selfClosing {
			close := findClosing(text, tag.end, tag.name)
			if close < 0 {
				// Unclosed container, skip past its open tag.
				i = tag.end
				continue
			}
			end = close + len(tag.name)
			// Account for "</", optional whitespace and ">".
			for end < len(text) && text[end] != '>' {
				end++
			}
			if end < len(text) {
				end++
			}
		}
		spans = append(spans, span{start: tag.start, end: end})
		i = end
	}
	return spans
}

func hasTagStart(s string) bool {
	for i := 0; i < len(s)-1; i++ {
		if s[i] != '<' {
			continue
		}
		j := i + 1
		for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
			j++
		}
		if j < len(s) && isNameStart(s[j]) {
			return true
		}
	}
	return false
}

// findClosing returns the index of the first "</name>" (whitespace
// tolerated around the name) at or after from, or -1. Matching is not
// nesting aware: a same-named nested container mis-brackets, which is an
// accepted limitation of this extractor.
func findClosing(s string, from int, name string) int {
	for i := from; i+1 < len(s); i++ {
		if s[i] != '<' || s[i+1] != '/' {
			continue
		}
		j := i + 2
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		if !strings.HasPrefix(s[j:], name) {
			continue
		}
		k := j + len(name)
		for k < len(s) && isSpace(s[k]) {
			k++
		}
		if k < len(s) && s[k] == '>' {
			return i
		}
	}
	return -1
}

type attribute struct {
	name     string
	value    string
	hasValue bool
}

type openTag struct {
	start       int // index of '<'
	end         int // index just past the closing '>'
	name        string
	attrs       []attribute
	selfClosing bool
}

// scanOpenTag finds the next opening tag at or after from and tokenizes its
// attribute list. Attribute values are recognized in priority order:
// double-quoted, single-quoted, brace-delimited with an explicit depth
// counter, then bare tokens up to whitespace.
func scanOpenTag(s string, from int) (openTag, bool) {
	for i := from; i < len(s); i++ {
		if s[i] != '<' {
			continue
		}
		j := i + 1
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		if j >= len(s) || !isNameStart(s[j]) {
			continue
		}
		nameStart := j
		for j < len(s) && isNameChar(s[j]) {
			j++
		}
		tag := openTag{start: i, name: s[nameStart:j]}
		if end, ok := scanAttributes(s, j, &tag); ok {
			tag.end = end
			return tag, true
		}
		// Unterminated tag, try the next '<'.
	}
	return openTag{}, false
}

func scanAttributes(s string, i int, tag *openTag) (int, bool) {
	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			return 0, false
		}
		switch {
		case s[i] == '>':
			return i + 1, true
		case s[i] == '/' && i+1 < len(s) && s[i+1] == '>':
			tag.selfClosing = true
			return i + 2, true
		case isNameChar(s[i]):
			start := i
			for i < len(s) && isNameChar(s[i]) {
				i++
			}
			a := attribute{name: s[start:i]}
			for i < len(s) && isSpace(s[i]) {
				i++
			}
			if i < len(s) && s[i] == '=' {
				i++
				for i < len(s) && isSpace(s[i]) {
					i++
				}
				value, next, ok := scanValue(s, i)
				if !ok {
					return 0, false
				}
				a.value = value
				a.hasValue = true
				i = next
			}
			tag.attrs = append(tag.attrs, a)
		default:
			// Opaque junk between attributes, skip it.
			i++
		}
	}
	return 0, false
}

func scanValue(s string, i int) (string, int, bool) {
	if i >= len(s) {
		return "", 0, false
	}
	switch s[i] {
	case '"', '\'':
		quote := s[i]
		for j := i + 1; j < len(s); j++ {
			if s[j] == quote {
				return s[i+1 : j], j + 1, true
			}
		}
		return "", 0, false
	case '{':
		depth := 0
		for j := i; j < len(s); j++ {
			switch s[j] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return s[i+1 : j], j + 1, true
				}
			}
		}
		return "", 0, false
	default:
		j := i
		for j < len(s) && !isSpace(s[j]) && s[j] != '>' {
			if s[j] == '/' && j+1 < len(s) && s[j+1] == '>' {
				break
			}
			j++
		}
		if j == i {
			return "", 0, false
		}
		return s[i:j], j, true
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c >= '0' && c <= '9' || c == '-'
}
