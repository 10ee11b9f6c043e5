// Package match pairs parsed demo snippets with the rendered elements of a
// page section. Pairing is heuristic: a cascade of tie-breaks is tried until
// one yields a candidate, and once an element is claimed it is excluded from
// later rounds.
package match

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/igolaizola/muigen/pkg/infer"
	"github.com/igolaizola/muigen/pkg/jsx"
)

// Element is a rendered DOM element identified by its class names.
type Element struct {
	Classes []string
	Text    string
}

// structuralProps are the snippet attributes compared against class-derived
// properties in the structural tie-break.
var structuralProps = []string{"variant", "color", "size", "loading", "loadingPosition"}

// fuzzyDistance is the maximum Levenshtein distance accepted between
// normalized snippet text and rendered text when no exact match exists.
const fuzzyDistance = 2

// Matcher assigns the rendered elements of one page section to snippets.
type Matcher struct {
	component string
	elements  []Element
	claimed   []bool
}

// New creates a matcher over the rendered elements of one page section for
// the given component kind.
func New(component string, elements []Element) *Matcher {
	return &Matcher{
		component: component,
		elements:  elements,
		claimed:   make([]bool, len(elements)),
	}
}

// Match finds the rendered element most likely corresponding to the parsed
// snippet. index is the snippet's position in document order. The cascade:
// exact inner text, fuzzy inner text, structural attribute agreement,
// positional, then the first unclaimed element. Returns false when every
// element is already claimed or there are none.
func (m *Matcher) Match(index int, node *jsx.Node) (Element, bool) {
	if i, ok := m.byText(node); ok {
		return m.claim(i)
	}
	if i, ok := m.byProps(node); ok {
		return m.claim(i)
	}
	if i, ok := m.byPosition(index); ok {
		return m.claim(i)
	}
	for i := range m.elements {
		if !m.claimed[i] {
			return m.claim(i)
		}
	}
	return Element{}, false
}

func (m *Matcher) claim(i int) (Element, bool) {
	m.claimed[i] = true
	return m.elements[i], true
}

func (m *Matcher) byText(node *jsx.Node) (int, bool) {
	text := strings.TrimSpace(node.InnerText)
	if text == "" {
		return 0, false
	}
	for i, el := range m.elements {
		if !m.claimed[i] && el.Text != "" && el.Text == text {
			return i, true
		}
	}
	// No exact match anywhere: accept the nearest rendered text within a
	// small edit distance to absorb whitespace and ellipsis drift.
	want := normalize(text)
	best, bestDist := -1, fuzzyDistance+1
	for i, el := range m.elements {
		if m.claimed[i] || el.Text == "" {
			continue
		}
		if d := matchr.Levenshtein(want, normalize(el.Text)); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		return best, true
	}
	return 0, false
}

func (m *Matcher) byProps(node *jsx.Node) (int, bool) {
	want := map[string]string{}
	for _, key := range structuralProps {
		if v, ok := node.Props[key]; ok {
			want[key] = v
		}
	}
	if len(want) == 0 {
		return 0, false
	}
	for i, el := range m.elements {
		if m.claimed[i] {
			continue
		}
		inferred := infer.Props(m.component, el.Classes)
		agree := true
		for key, value := range want {
			if inferred[key] != value {
				agree = false
				break
			}
		}
		if agree {
			return i, true
		}
	}
	return 0, false
}

func (m *Matcher) byPosition(index int) (int, bool) {
	n := 0
	for i := range m.elements {
		if m.claimed[i] {
			continue
		}
		if n == index {
			return i, true
		}
		n++
	}
	return 0, false
}

var whitespace = strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "")

func normalize(s string) string {
	return whitespace.Replace(strings.ToLower(s))
}
