// Package infer derives component properties (variant, color, size, state)
// from the CSS class names of a rendered element. The knowledge lives in a
// declarative rule table keyed by component kind, so supporting a new kind
// is a rules edit, not a code change.
package infer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	_ "embed"
)

//go:embed rules.yaml
var rulesYAML []byte

// Rule maps a class-name substring to a property value.
type Rule struct {
	Contains string `yaml:"contains"`
	Prop     string `yaml:"prop"`
	Value    string `yaml:"value"`
}

// Kind is the rule set for one component kind.
type Kind struct {
	Rules    []Rule            `yaml:"rules"`
	Defaults map[string]string `yaml:"defaults"`
}

// Table maps lowercase component names to their rule sets.
type Table map[string]Kind

var defaultTable Table

func init() {
	table, err := LoadRules(rulesYAML)
	if err != nil {
		panic(fmt.Sprintf("infer: embedded rules: %v", err))
	}
	defaultTable = table
}

// LoadRules parses a YAML rule table.
func LoadRules(data []byte) (Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("infer: couldn't parse rules: %w", err)
	}
	return table, nil
}

// Props infers properties for the given component kind from a class list
// using the embedded rule table. Unknown kinds infer nothing.
func Props(component string, classes []string) map[string]string {
	return defaultTable.Props(component, classes)
}

// Props infers properties from a class list: the first matching rule wins
// per property, then defaults fill the properties no rule matched.
func (t Table) Props(component string, classes []string) map[string]string {
	props := map[string]string{}
	kind, ok := t[strings.ToLower(component)]
	if !ok {
		return props
	}
	classStr := strings.Join(classes, " ")
	for _, rule := range kind.Rules {
		if _, done := props[rule.Prop]; done {
			continue
		}
		if strings.Contains(classStr, rule.Contains) {
			props[rule.Prop] = rule.Value
		}
	}
	for prop, value := range kind.Defaults {
		if _, done := props[prop]; !done {
			props[prop] = value
		}
	}
	return props
}
