// Package uxml emits one Unity UI Toolkit UXML layout per component
// variation, built from the variation's parsed snippet tree.
package uxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/igolaizola/muigen/pkg/jsx"
	"github.com/igolaizola/muigen/pkg/mui"
)

// element is a minimal XML tree node rendered with 4-space indentation.
type element struct {
	tag      string
	attrs    []attr
	children []*element
}

type attr struct {
	name, value string
}

func (e *element) set(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs[i].value = value
			return
		}
	}
	e.attrs = append(e.attrs, attr{name: name, value: value})
}

func (e *element) get(name string) string {
	for _, a := range e.attrs {
		if a.name == name {
			return a.value
		}
	}
	return ""
}

func (e *element) render(b *strings.Builder, depth int) {
	indent := strings.Repeat("    ", depth)
	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		b.WriteString(" ")
		b.WriteString(a.name)
		b.WriteString(`="`)
		b.WriteString(escape(a.value))
		b.WriteString(`"`)
	}
	if len(e.children) == 0 {
		b.WriteString(" />\n")
		return
	}
	b.WriteString(">\n")
	for _, child := range e.children {
		child.render(b, depth+1)
	}
	b.WriteString(indent)
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteString(">\n")
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Document is one generated UXML file.
type Document struct {
	Filename string
	Content  string
}

// Generate renders one UXML document per variation. Variations whose parsed
// snippet is the empty-shell sentinel are skipped.
func Generate(def *mui.ComponentDefinition) []Document {
	var docs []Document
	for i, variation := range def.Variations {
		name := variation.Name
		if name == "" {
			name = fmt.Sprintf("UnnamedVariation_%d", i+1)
		}
		root := fromNode(variation.Parsed)
		if root == nil {
			continue
		}

		// Merge the rendered element's classes into the root element
		if len(variation.Classes) > 0 {
			classes := strings.Fields(root.get("class"))
			classes = append(classes, variation.Classes...)
			sort.Strings(classes)
			root.set("class", strings.Join(dedupe(classes), " "))
		}
		root.set("name", sanitizeName(name))

		doc := &element{tag: "ui:UXML"}
		doc.set("xmlns:ui", "UnityEngine.UIElements")
		doc.set("xmlns:uie", "UnityEditor.UIElements")
		doc.children = append(doc.children, root)

		var b strings.Builder
		b.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
		doc.render(&b, 0)

		docs = append(docs, Document{
			Filename: filename(name),
			Content:  b.String(),
		})
	}
	return docs
}

// fromNode recursively maps a parsed snippet node to a UXML element.
func fromNode(node *jsx.Node) *element {
	if node.Empty() {
		return nil
	}
	if node.Name == jsx.TextName {
		label := &element{tag: "ui:Label"}
		label.set("text", strings.TrimSpace(node.InnerText))
		return label
	}

	el := &element{tag: uxmlTag(node.Name)}
	for _, key := range sortedKeys(node.Props) {
		if key == "componentTag" {
			continue
		}
		if name, value, ok := uxmlAttribute(key, node.Props[key]); ok {
			el.set(name, value)
		}
	}

	if text := strings.TrimSpace(node.InnerText); text != "" && el.get("text") == "" {
		if el.tag == "ui:Label" || el.tag == "ui:Button" {
			el.set("text", text)
		} else {
			// Other elements carry their text in a named child Label so
			// the C# wrapper can query it.
			label := &element{tag: "ui:Label"}
			label.set("text", text)
			label.set("name", "inner-text-label")
			el.children = append(el.children, label)
		}
	}

	for _, child := range node.Children {
		childEl := fromNode(child)
		if childEl == nil {
			continue
		}
		if strings.Contains(child.Name, "Icon") {
			childEl.set("name", strings.ToLower(child.Name)+"-icon")
		}
		el.children = append(el.children, childEl)
	}
	return el
}

// uxmlTag maps a component name to its UXML tag.
func uxmlTag(name string) string {
	switch strings.ToLower(name) {
	case "button", "iconbutton":
		return "ui:Button"
	case "typography":
		return "ui:Label"
	case "card":
		return "ui:VisualElement"
	}
	return "ui:VisualElement"
}

// uxmlAttribute maps a snippet prop to a UXML attribute. Styling props are
// handled by USS classes and dropped here.
func uxmlAttribute(name, value string) (string, string, bool) {
	switch name {
	case "text":
		return "text", value, true
	case "variant", "color", "size":
		return "", "", false
	case "disabled":
		enabled := "true"
		if value == "true" {
			enabled = "false"
		}
		return "enable-raycast", enabled, true
	case "loading":
		return "loading", value, true
	case "loadingPosition":
		return "loading-position", value, true
	}
	return "", "", false
}

func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, " ", "-")
	return strings.ReplaceAll(name, "_", "-")
}

func filename(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "/", "_")
	return strings.ToLower(name) + ".uxml"
}

func dedupe(sorted []string) []string {
	var out []string
	for i, s := range sorted {
		if i > 0 && sorted[i-1] == s {
			continue
		}
		out = append(out, s)
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
