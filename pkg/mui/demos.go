package mui

import (
	"fmt"
	stdhtml "html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"github.com/igolaizola/muigen/pkg/infer"
	"github.com/igolaizola/muigen/pkg/jsx"
	"github.com/igolaizola/muigen/pkg/match"
)

// namingProps are the snippet attributes appended to variation names, in
// this order.
var namingProps = []string{"variant", "color", "size", "loading", "loadingPosition"}

// ParseVariations extracts the component variations of a demo page: one per
// snippet/rendered-element pairing, plus rendered-only variations for demo
// sections that expose no source code. Missing page structure degrades to an
// empty result.
func ParseVariations(component, html string) ([]Variation, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("mui: couldn't parse demo page: %w", err)
	}

	sections := doc.Find(`div[id^="demo-"]`)
	if sections.Length() == 0 {
		log.Warn("no demo sections found on demo page", "component", component)
		return nil, nil
	}

	rootClass := fmt.Sprintf("Mui%s-root", component)
	var variations []Variation
	sections.Each(func(i int, section *goquery.Selection) {
		rendered := section.Find(fmt.Sprintf(`[class*=%q]`, rootClass))

		textarea := section.Find("textarea.npm__react-simple-code-editor__textarea")
		if textarea.Length() == 0 {
			log.Warn("no source textarea in demo section", "component", component, "section", i+1)
			variations = append(variations, renderedOnly(component, i, rendered)...)
			return
		}

		raw := stdhtml.UnescapeString(strings.TrimSpace(textarea.Text()))
		snippets := jsx.Split(raw)

		matcher := match.New(component, elements(rendered))
		for j, snippet := range snippets {
			node := jsx.Parse(snippet)

			classes := []string{}
			props := map[string]string{}
			if el, ok := matcher.Match(j, node); ok {
				classes = el.Classes
				props = infer.Props(component, el.Classes)
			} else {
				log.Warn("no rendered element matched snippet",
					"component", component, "section", i+1, "snippet", j+1)
			}

			variations = append(variations, Variation{
				Name:          variationName(node, len(snippets) > 1, i, j),
				RawJSX:        snippet,
				Classes:       classes,
				InferredProps: props,
				Parsed:        node,
			})
		}
	})

	dedupeNames(variations)
	return variations, nil
}

// renderedOnly emits variations for a section without source code, from the
// rendered elements alone.
func renderedOnly(component string, section int, rendered *goquery.Selection) []Variation {
	var variations []Variation
	rendered.Each(func(k int, s *goquery.Selection) {
		classes := classList(s)
		text := flatText(s)
		if text == "" {
			text = fmt.Sprintf("%s Demo %d-%d", component, section+1, k+1)
		}
		variations = append(variations, Variation{
			Name: fmt.Sprintf("%s-%s_RenderedOnly_%d-%d",
				component, strings.ReplaceAll(text, " ", ""), section+1, k+1),
			RawJSX:        "",
			Classes:       classes,
			InferredProps: infer.Props(component, classes),
			Parsed: &jsx.Node{
				Name:       component,
				Props:      map[string]string{},
				InnerText:  text,
				Children:   []*jsx.Node{},
				StyleRules: map[string]string{},
			},
		})
	})
	return variations
}

func variationName(node *jsx.Node, multi bool, section, snippet int) string {
	if node.Empty() {
		return fmt.Sprintf("Unnamed-Demo-%d-%d", section+1, snippet+1)
	}
	text := strings.TrimSpace(node.InnerText)
	if text == "" {
		text = node.Name
	}
	var parts []string
	for _, key := range namingProps {
		if v, ok := node.Props[key]; ok {
			parts = append(parts, key+"-"+v)
		}
	}
	suffix := ""
	if len(parts) > 0 {
		suffix = "_" + strings.Join(parts, "_")
	}
	name := fmt.Sprintf("%s-%s%s", node.Name, strings.ReplaceAll(text, " ", ""), suffix)
	if multi {
		name += fmt.Sprintf("_%d", snippet+1)
	}
	name = strings.ReplaceAll(name, "__", "_")
	return strings.Trim(name, "_")
}

// dedupeNames makes variation names best-effort unique by suffixing an
// index on duplicates.
func dedupeNames(variations []Variation) {
	seen := map[string]int{}
	for i := range variations {
		name := variations[i].Name
		count := seen[name] + 1
		seen[name] = count
		if count > 1 {
			variations[i].Name = fmt.Sprintf("%s_%d", name, count)
		}
	}
}

func elements(rendered *goquery.Selection) []match.Element {
	var els []match.Element
	rendered.Each(func(_ int, s *goquery.Selection) {
		els = append(els, match.Element{
			Classes: classList(s),
			Text:    flatText(s),
		})
	})
	return els
}

func classList(s *goquery.Selection) []string {
	return strings.Fields(s.AttrOr("class", ""))
}

// flatText is the flattened text content of an element, trimmed.
func flatText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
