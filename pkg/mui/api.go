package mui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
)

// Definition scrapes the API documentation page of a component into a
// definition without variations. Missing tables degrade to empty sets, only
// the page fetch itself is fatal to the stage.
func (c *Client) Definition(ctx context.Context, component string) (*ComponentDefinition, error) {
	body, err := c.do(ctx, "GET", fmt.Sprintf("api/%s/", strings.ToLower(component)), nil)
	if err != nil {
		return nil, fmt.Errorf("mui: couldn't get api page: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("mui: couldn't parse api page: %w", err)
	}
	return parseDefinition(component, doc), nil
}

func parseDefinition(component string, doc *goquery.Document) *ComponentDefinition {
	// The h1 carries the component name followed by " API"
	name := component
	if title := strings.TrimSpace(doc.Find("h1").First().Text()); strings.Contains(title, " API") {
		name = strings.TrimSpace(strings.ReplaceAll(title, " API", ""))
	}
	def := newDefinition(name)

	// Prop rows follow the pattern <name>-prop-<prop>
	propPrefix := strings.ToLower(name) + "-prop-"
	doc.Find("tr[id]").Each(func(i int, row *goquery.Selection) {
		id := row.AttrOr("id", "")
		if !strings.HasPrefix(id, propPrefix) {
			return
		}
		cells := row.Find("th, td")
		if cells.Length() < 4 {
			log.Warn("skipping malformed prop row", "component", name, "id", id)
			return
		}
		def.Properties[strings.TrimPrefix(id, propPrefix)] = Property{
			Type:        strings.TrimSpace(cells.Eq(1).Text()),
			Default:     strings.TrimSpace(cells.Eq(2).Text()),
			Description: strings.TrimSpace(cells.Eq(3).Text()),
		}
	})
	if len(def.Properties) == 0 {
		log.Warn("no prop rows found on api page", "component", name, "prefix", propPrefix)
	}

	// CSS class rows follow the pattern <name>-classes-<class>
	classPrefix := strings.ToLower(name) + "-classes-"
	doc.Find("tr[id]").Each(func(i int, row *goquery.Selection) {
		id := row.AttrOr("id", "")
		if !strings.HasPrefix(id, classPrefix) {
			return
		}
		cells := row.Find("td")
		if cells.Length() < 3 {
			log.Warn("skipping malformed css class row", "component", name, "id", id)
			return
		}
		def.CSSClasses = append(def.CSSClasses, CSSClass{
			ClassName:   strings.TrimSpace(cells.Eq(0).Text()),
			RuleName:    strings.TrimSpace(cells.Eq(1).Find("span").First().Text()),
			Description: strings.TrimSpace(cells.Eq(2).Text()),
		})
	})
	if len(def.CSSClasses) == 0 {
		log.Warn("no css class rows found on api page", "component", name, "prefix", classPrefix)
	}
	return def
}
