package mui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/igolaizola/muigen/pkg/jsx"
)

// Property is one entry of the API doc prop table.
type Property struct {
	Type        string `json:"type"`
	Default     string `json:"default"`
	Description string `json:"description"`
}

// CSSClass is one entry of the API doc CSS class table.
type CSSClass struct {
	ClassName   string `json:"className"`
	RuleName    string `json:"ruleName"`
	Description string `json:"description"`
}

// Variation pairs one documented snippet with the rendered element it most
// likely corresponds to and the properties derived from its class names.
type Variation struct {
	Name          string            `json:"VariationName"`
	RawJSX        string            `json:"RawJSXCode"`
	Classes       []string          `json:"AssociatedClasses"`
	InferredProps map[string]string `json:"InferredProps"`
	Parsed        *jsx.Node         `json:"ParsedComponent"`
}

// ComponentDefinition is the root aggregate serialized to the intermediate
// JSON artifact. Field names follow the artifact format consumed by the
// generators.
type ComponentDefinition struct {
	Name       string              `json:"ComponentName"`
	Properties map[string]Property `json:"Properties"`
	CSSClasses []CSSClass          `json:"CssClasses"`
	Variations []Variation         `json:"ComponentVariations"`
	Children   []*jsx.Node         `json:"Children"`
	StyleRules map[string]string   `json:"RawInlineStyleRules"`
	InnerText  string              `json:"InnerText"`
}

func newDefinition(name string) *ComponentDefinition {
	return &ComponentDefinition{
		Name:       name,
		Properties: map[string]Property{},
		CSSClasses: []CSSClass{},
		Variations: []Variation{},
		Children:   []*jsx.Node{},
		StyleRules: map[string]string{},
	}
}

// Filename returns the fixed artifact name for a component.
func Filename(component string) string {
	return strings.ToLower(component) + "_full_details.json"
}

// Load reads a component definition from disk.
func Load(path string) (*ComponentDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mui: couldn't read definition: %w", err)
	}
	var def ComponentDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("mui: couldn't parse definition: %w", err)
	}
	return &def, nil
}

// Save writes the definition to disk as indented JSON.
func (d *ComponentDefinition) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("mui: couldn't encode definition: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("mui: couldn't write definition: %w", err)
	}
	return nil
}
