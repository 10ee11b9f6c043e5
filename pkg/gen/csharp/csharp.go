// Package csharp emits a Unity UI Toolkit C# wrapper class for a scraped
// component definition.
package csharp

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/igolaizola/muigen/pkg/mui"
)

// skipProps are handled by the UXML hierarchy and USS instead of C#
// properties.
var skipProps = map[string]bool{
	"children":  true,
	"sx":        true,
	"component": true,
	"ref":       true,
}

// Filename returns the output file name for a definition.
func Filename(def *mui.ComponentDefinition) string {
	return fmt.Sprintf("Mui%s.cs", def.Name)
}

// Generate renders the C# wrapper class.
func Generate(def *mui.ComponentDefinition) (string, error) {
	data := newClassData(def)
	var b strings.Builder
	if err := classTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("csharp: couldn't render %s: %w", def.Name, err)
	}
	return b.String(), nil
}

type classData struct {
	Name     string
	Base     string
	IsButton bool
	Props    []propData
}

type propData struct {
	Pascal   string
	Field    string
	Kebab    string
	Snake    string
	Type     string // string, bool or float
	UxmlType string // String, Bool or Float
	Kind     string // disabled, loading, loadingPosition or generic
}

func newClassData(def *mui.ComponentDefinition) classData {
	kind := strings.ToLower(def.Name)
	base := "UnityEngine.UIElements.VisualElement"
	switch kind {
	case "button", "iconbutton":
		base = "UnityEngine.UIElements.Button"
	case "typography":
		base = "UnityEngine.UIElements.Label"
	}
	data := classData{
		Name:     def.Name,
		Base:     base,
		IsButton: kind == "button",
	}

	names := make([]string, 0, len(def.Properties))
	for name := range def.Properties {
		if skipProps[strings.ToLower(name)] {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		prop := def.Properties[name]
		csType, uxmlType := "string", "String"
		typeText := strings.ToLower(prop.Type)
		switch {
		case strings.Contains(typeText, "bool"):
			csType, uxmlType = "bool", "Bool"
		case strings.Contains(typeText, "number"):
			csType, uxmlType = "float", "Float"
		}
		pascal := pascalCase(name)
		p := propData{
			Pascal:   pascal,
			Field:    "_" + strings.ToLower(name),
			Kebab:    kebabCase(name),
			Snake:    strings.ReplaceAll(kebabCase(name), "-", "_"),
			Type:     csType,
			UxmlType: uxmlType,
			Kind:     "generic",
		}
		switch {
		case pascal == "Disabled":
			p.Kind = "disabled"
			p.Field = "_disabled"
		case pascal == "Loading" && data.IsButton:
			p.Kind = "loading"
			p.Field = "_loading"
		case pascal == "LoadingPosition" && data.IsButton:
			p.Kind = "loadingPosition"
			p.Field = "_loadingPosition"
		}
		data.Props = append(data.Props, p)
	}
	return data
}

func pascalCase(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case r == '-' || r == '_' || r == ' ':
			upper = true
		case upper:
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			b.WriteRune(r)
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func kebabCase(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + 'a' - 'A')
		} else {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}

var classTemplate = template.Must(template.New("csharp").Parse(`using UnityEngine;
using UnityEngine.UIElements;
using System.Collections.Generic;
using System.Linq;

namespace YourUnityProject.UI.MaterialUI
{
    public class Mui{{.Name}} : {{.Base}}
    {
        // UXML Class Name for this component
        public new static readonly string ussClassName = "Mui{{.Name}}-root";
{{if .IsButton}}
        private VisualElement _loadingSpinner;
        private Label _innerTextLabel;
{{end}}
        public Mui{{.Name}}()
        {
            AddToClassList(ussClassName);
{{- if .IsButton}}
            RegisterCallback<AttachToPanelEvent>(OnAttachToPanel);
            RegisterCallback<DetachFromPanelEvent>(OnDetachFromPanel);
{{- end}}
        }
{{if .IsButton}}
        private void OnAttachToPanel(AttachToPanelEvent evt)
        {
            _loadingSpinner = this.Q<VisualElement>("loading-spinner");
            _innerTextLabel = this.Q<Label>("inner-text-label");
            UpdateLoadingState();
        }

        private void OnDetachFromPanel(DetachFromPanelEvent evt)
        {
            _loadingSpinner = null;
            _innerTextLabel = null;
        }
{{end}}
{{- range .Props}}
{{- if eq .Kind "disabled"}}
        private {{.Type}} _disabled;
        public {{.Type}} Disabled
        {
            get => _disabled;
            set
            {
                if (_disabled == value) return;
                _disabled = value;
                SetEnabled(!value);
                EnableInClassList("Mui-disabled", value);
            }
        }
{{else if eq .Kind "loading"}}
        private bool _loading;
        public bool Loading
        {
            get => _loading;
            set
            {
                if (_loading == value) return;
                _loading = value;
                UpdateLoadingState();
            }
        }
{{else if eq .Kind "loadingPosition"}}
        private string _loadingPosition = "";
        public string LoadingPosition
        {
            get => _loadingPosition;
            set
            {
                if (_loadingPosition == value) return;
                _loadingPosition = value;
                UpdateLoadingState();
            }
        }
{{else}}
        private {{.Type}} {{.Field}};
        public {{.Type}} {{.Pascal}}
        {
            get => {{.Field}};
            set
            {
                if ({{.Field}} == value) return;
                {{.Field}} = value;
            }
        }
{{end}}
{{- end}}
{{- if .IsButton}}
        private void UpdateLoadingState()
        {
            if (_loadingSpinner == null || _innerTextLabel == null) return;

            if (Loading)
            {
                _loadingSpinner.style.display = DisplayStyle.Flex;
                _innerTextLabel.style.display = DisplayStyle.None;
                if (LoadingPosition == "start")
                {
                    style.flexDirection = FlexDirection.Row;
                    style.justifyContent = JustifyContent.FlexStart;
                }
                else if (LoadingPosition == "end")
                {
                    style.flexDirection = FlexDirection.RowReverse;
                    style.justifyContent = JustifyContent.FlexEnd;
                }
                else if (LoadingPosition == "center" || LoadingPosition == "")
                {
                    style.flexDirection = FlexDirection.Row;
                    style.justifyContent = JustifyContent.Center;
                }
            }
            else
            {
                _loadingSpinner.style.display = DisplayStyle.None;
                _innerTextLabel.style.display = DisplayStyle.Flex;
                style.flexDirection = FlexDirection.Row;
                style.justifyContent = JustifyContent.Center;
            }
        }
{{end}}
        public new class UxmlFactory : UxmlFactory<Mui{{.Name}}, UxmlTraits> {}

        public new class UxmlTraits : {{.Base}}.UxmlTraits
        {
{{- range .Props}}
            private Uxml{{.UxmlType}}Attribute _{{.Snake}}Attribute = new Uxml{{.UxmlType}}Attribute { name = "{{.Kebab}}" };
{{- end}}

            public override void Init(VisualElement ve, IUxmlAttributes bag, CreationContext cc)
            {
                base.Init(ve, bag, cc);
                var component = ve as Mui{{.Name}};
                if (component == null) return;
{{range .Props}}
                component.{{.Pascal}} = _{{.Snake}}Attribute.GetValueFromBag(bag);
{{- end}}
            }
        }
    }
}
`))
