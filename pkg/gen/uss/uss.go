// Package uss emits a Unity Style Sheet translating a component's scraped
// variations (classes, inferred props, raw style rules) into USS rules.
package uss

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/igolaizola/muigen/pkg/mui"
)

// Filename returns the output file name for a definition.
func Filename(def *mui.ComponentDefinition) string {
	return strings.ToLower(def.Name) + "_styles.uss"
}

// Generate renders the stylesheet: the theme variable block, a base rule
// for the component root class and one rule group per variation.
func Generate(def *mui.ComponentDefinition) string {
	var b strings.Builder
	writeThemeVariables(&b)

	name := def.Name
	if name == "" {
		name = "Component"
	}
	fmt.Fprintf(&b, "/* USS Rules for %s Component */\n\n", name)
	writeBaseRule(&b, name)

	for _, variation := range def.Variations {
		writeVariationRules(&b, name, variation)
	}
	return b.String()
}

func writeThemeVariables(b *strings.Builder) {
	b.WriteString(":root {\n")
	b.WriteString("    --primary-color: #1976d2;\n")
	b.WriteString("    --secondary-color: #9c27b0;\n")
	b.WriteString("    --error-color: #d32f2f;\n")
	b.WriteString("    --info-color: #0288d1;\n")
	b.WriteString("    --success-color: #2e7d32;\n")
	b.WriteString("    --warning-color: #ed6c02;\n")
	b.WriteString("    --text-color-light: #ffffff;\n")
	b.WriteString("    --text-color-dark: rgba(0, 0, 0, 0.87);\n")
	b.WriteString("    --disabled-opacity: 0.38;\n")
	b.WriteString("    --spacing-1: 4px;\n")
	b.WriteString("    --spacing-2: 8px;\n")
	b.WriteString("    --spacing-3: 12px;\n")
	b.WriteString("    --spacing-4: 16px;\n")
	b.WriteString("    --font-size-small: 13px;\n")
	b.WriteString("    --font-size-medium: 14px;\n")
	b.WriteString("    --font-size-large: 15px;\n")
	b.WriteString("}\n\n")
}

func writeBaseRule(b *strings.Builder, name string) {
	fmt.Fprintf(b, ".Mui%s-root {\n", name)
	b.WriteString("    -unity-font-definition: var(--unity-font-regular);\n")
	b.WriteString("    -unity-font-style: normal;\n")
	b.WriteString("    -unity-text-align: middle-center;\n")
	b.WriteString("    border-radius: 4px;\n")
	b.WriteString("    cursor: pointer;\n")
	b.WriteString("    transition-property: background-color, border-color, color, opacity, shadow-color, shadow-offset, shadow-blur, shadow-width;\n")
	b.WriteString("    transition-duration: 0.15s;\n")
	b.WriteString("    transition-timing-function: ease-out;\n")
	b.WriteString("    flex-direction: row;\n")
	b.WriteString("    align-items: center;\n")
	b.WriteString("    justify-content: center;\n")
	b.WriteString("    min-width: 64px;\n")
	b.WriteString("    min-height: 36px;\n")
	b.WriteString("}\n\n")
}

func writeVariationRules(b *strings.Builder, name string, variation mui.Variation) {
	selector := variationSelector(name, variation)
	comment := strings.ReplaceAll(variation.Name, " ", "-")
	comment = strings.ReplaceAll(comment, "_", "-")
	if comment == "" {
		comment = "UnnamedVariation"
	}
	fmt.Fprintf(b, "/* %s */\n", comment)
	fmt.Fprintf(b, "%s {\n", selector)

	props := variation.InferredProps
	variant := props["variant"]
	color := props["color"]
	if color == "" {
		color = "primary"
	}

	writeElevation(b, variation)
	writeVariant(b, selector, variant, color, variation)
	writeSize(b, props["size"])
	writeDisabled(b, variant, props["disabled"] == "true")
	if props["loading"] == "true" {
		// Dim the whole button, the spinner child is positioned in UXML.
		b.WriteString("    opacity: 0.7;\n")
	}
	writeRawStyles(b, variation)

	b.WriteString("}\n\n")
}

// variationSelector combines the root class with the variation's specific
// classes, or with an inferred-prop suffix when no specific class exists.
func variationSelector(name string, variation mui.Variation) string {
	root := fmt.Sprintf(".Mui%s-root", name)
	var specific []string
	for _, class := range variation.Classes {
		if class == fmt.Sprintf("Mui%s-root", name) || class == "MuiButtonBase-root" {
			continue
		}
		specific = append(specific, class)
	}

	selector := root
	for _, class := range specific {
		// Hashed utility classes are unstable between builds, keep them
		// out of selectors.
		if strings.HasPrefix(class, "css-") {
			continue
		}
		selector += "." + class
	}
	if len(specific) == 0 && len(variation.InferredProps) > 0 {
		var suffix []string
		for _, key := range []string{"variant", "color", "size"} {
			if v := variation.InferredProps[key]; v != "" {
				suffix = append(suffix, key+"-"+v)
			}
		}
		if len(suffix) > 0 {
			selector += "." + strings.Join(suffix, "-")
		}
	}
	return selector
}

func writeElevation(b *strings.Builder, variation mui.Variation) {
	if variation.Parsed == nil {
		return
	}
	raw, ok := variation.Parsed.Props["elevation"]
	if !ok {
		return
	}
	level, err := strconv.Atoi(raw)
	if err != nil {
		return
	}
	if level > 0 {
		b.WriteString("    shadow-color: rgba(0, 0, 0, 0.2);\n")
		fmt.Fprintf(b, "    shadow-offset: %gpx %gpx;\n", float64(level)*0.5, float64(level)*0.5)
		fmt.Fprintf(b, "    shadow-blur: %gpx;\n", float64(level)*1.5)
		b.WriteString("    shadow-width: 0px;\n")
	} else {
		b.WriteString("    shadow-color: rgba(0, 0, 0, 0);\n")
	}
}

func writeVariant(b *strings.Builder, selector, variant, color string, variation mui.Variation) {
	colorVar := fmt.Sprintf("var(--%s-color, var(--primary-color))", color)
	hasElevation := false
	if variation.Parsed != nil {
		_, hasElevation = variation.Parsed.Props["elevation"]
	}
	switch variant {
	case "contained":
		fmt.Fprintf(b, "    background-color: %s;\n", colorVar)
		b.WriteString("    color: var(--text-color-light);\n")
		b.WriteString("    border-width: 0px;\n")
		b.WriteString("    -unity-background-image-tint-color: rgba(255, 255, 255, 0);\n")
		b.WriteString("}\n")
		fmt.Fprintf(b, "%s:hover {\n", selector)
		fmt.Fprintf(b, "    background-color: color-mix(in srgb, %s 90%%, black);\n", colorVar)
		if hasElevation {
			b.WriteString("    shadow-offset: 1px 1px;\n")
			b.WriteString("    shadow-blur: 3px;\n")
		}
		b.WriteString("}\n")
		fmt.Fprintf(b, "%s:active {\n", selector)
		fmt.Fprintf(b, "    background-color: color-mix(in srgb, %s 80%%, black);\n", colorVar)
		b.WriteString("}\n")
		fmt.Fprintf(b, "%s {\n", selector)
	case "outlined":
		b.WriteString("    background-color: rgba(0, 0, 0, 0);\n")
		fmt.Fprintf(b, "    color: %s;\n", colorVar)
		fmt.Fprintf(b, "    border-color: %s;\n", colorVar)
		b.WriteString("    border-width: 1px;\n")
		b.WriteString("    -unity-background-image-tint-color: rgba(255, 255, 255, 0);\n")
		writeTintStates(b, selector, colorVar)
	case "text":
		b.WriteString("    background-color: rgba(0, 0, 0, 0);\n")
		fmt.Fprintf(b, "    color: %s;\n", colorVar)
		b.WriteString("    border-width: 0px;\n")
		b.WriteString("    -unity-background-image-tint-color: rgba(255, 255, 255, 0);\n")
		writeTintStates(b, selector, colorVar)
	}
}

// writeTintStates closes the current rule, emits hover/active tint rules and
// reopens the rule block for the remaining styles.
func writeTintStates(b *strings.Builder, selector, colorVar string) {
	b.WriteString("}\n")
	fmt.Fprintf(b, "%s:hover {\n", selector)
	fmt.Fprintf(b, "    background-color: color-mix(in srgb, %s 10%%, transparent);\n", colorVar)
	b.WriteString("}\n")
	fmt.Fprintf(b, "%s:active {\n", selector)
	fmt.Fprintf(b, "    background-color: color-mix(in srgb, %s 20%%, transparent);\n", colorVar)
	b.WriteString("}\n")
	fmt.Fprintf(b, "%s {\n", selector)
}

func writeSize(b *strings.Builder, size string) {
	switch size {
	case "small":
		b.WriteString("    padding: var(--spacing-1) var(--spacing-2);\n")
		b.WriteString("    -unity-font-size: var(--font-size-small);\n")
	case "large":
		b.WriteString("    padding: var(--spacing-2) var(--spacing-3);\n")
		b.WriteString("    -unity-font-size: var(--font-size-large);\n")
	default:
		b.WriteString("    padding: var(--spacing-2) var(--spacing-2);\n")
		b.WriteString("    -unity-font-size: var(--font-size-medium);\n")
	}
}

func writeDisabled(b *strings.Builder, variant string, disabled bool) {
	if !disabled {
		return
	}
	b.WriteString("    -unity-pointer-events: none;\n")
	b.WriteString("    opacity: var(--disabled-opacity);\n")
	switch variant {
	case "contained":
		b.WriteString("    background-color: rgba(0, 0, 0, 0.12);\n")
	case "outlined":
		b.WriteString("    border-color: rgba(0, 0, 0, 0.26);\n")
		b.WriteString("    color: rgba(0, 0, 0, 0.26);\n")
	default:
		b.WriteString("    color: rgba(0, 0, 0, 0.26);\n")
	}
}

func writeRawStyles(b *strings.Builder, variation mui.Variation) {
	if variation.Parsed == nil || len(variation.Parsed.StyleRules) == 0 {
		return
	}
	b.WriteString("    /* Raw inline styles from sx prop */\n")
	keys := make([]string, 0, len(variation.Parsed.StyleRules))
	for k := range variation.Parsed.StyleRules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "    %s: %s;\n", k, variation.Parsed.StyleRules[k])
	}
}
