package uss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/igolaizola/muigen/pkg/jsx"
	"github.com/igolaizola/muigen/pkg/mui"
)

func TestFilename(t *testing.T) {
	require.Equal(t, "button_styles.uss", Filename(&mui.ComponentDefinition{Name: "Button"}))
}

func TestGenerateBase(t *testing.T) {
	out := Generate(&mui.ComponentDefinition{Name: "Button"})
	require.Contains(t, out, ":root {")
	require.Contains(t, out, "--primary-color: #1976d2;")
	require.Contains(t, out, ".MuiButton-root {")
}

func TestGenerateContainedVariation(t *testing.T) {
	out := Generate(&mui.ComponentDefinition{
		Name: "Button",
		Variations: []mui.Variation{{
			Name:    "Button-Go_variant-contained",
			Classes: []string{"MuiButtonBase-root", "MuiButton-root", "MuiButton-contained", "css-1ujsas3"},
			InferredProps: map[string]string{
				"variant": "contained",
				"color":   "secondary",
				"size":    "small",
			},
		}},
	})

	// Hashed utility classes stay out of selectors
	require.NotContains(t, out, "css-1ujsas3")
	require.Contains(t, out, ".MuiButton-root.MuiButton-contained {")
	require.Contains(t, out, "background-color: var(--secondary-color, var(--primary-color));")
	require.Contains(t, out, ".MuiButton-root.MuiButton-contained:hover {")
	require.Contains(t, out, ".MuiButton-root.MuiButton-contained:active {")
	require.Contains(t, out, "-unity-font-size: var(--font-size-small);")
}

func TestGenerateOutlinedAndDisabled(t *testing.T) {
	out := Generate(&mui.ComponentDefinition{
		Name: "Button",
		Variations: []mui.Variation{{
			Name:    "Button-Off",
			Classes: []string{"MuiButton-root", "MuiButton-outlined", "Mui-disabled"},
			InferredProps: map[string]string{
				"variant":  "outlined",
				"disabled": "true",
			},
		}},
	})
	require.Contains(t, out, ".MuiButton-root.MuiButton-outlined.Mui-disabled {")
	require.Contains(t, out, "border-width: 1px;")
	require.Contains(t, out, "opacity: var(--disabled-opacity);")
	require.Contains(t, out, "-unity-pointer-events: none;")
}

func TestGeneratePropSuffixSelector(t *testing.T) {
	// No specific class, the selector falls back to the inferred props
	out := Generate(&mui.ComponentDefinition{
		Name: "Button",
		Variations: []mui.Variation{{
			Name:          "Button-Text",
			InferredProps: map[string]string{"variant": "text", "size": "medium"},
		}},
	})
	require.Contains(t, out, ".MuiButton-root.variant-text-size-medium {")
}

func TestGenerateElevationAndRawStyles(t *testing.T) {
	out := Generate(&mui.ComponentDefinition{
		Name: "Card",
		Variations: []mui.Variation{{
			Name:   "Card-Elevated",
			Parsed: jsx.Parse(`<Card elevation={4} sx={{ maxWidth: '345px' }}>Content</Card>`),
		}},
	})
	require.Contains(t, out, "shadow-offset: 2px 2px;")
	require.Contains(t, out, "shadow-blur: 6px;")
	require.Contains(t, out, "/* Raw inline styles from sx prop */")
	require.Contains(t, out, "maxWidth: 345px;")
}

func TestGenerateLoading(t *testing.T) {
	out := Generate(&mui.ComponentDefinition{
		Name: "Button",
		Variations: []mui.Variation{{
			Name:          "Button-Loading",
			Classes:       []string{"MuiButton-root", "MuiLoadingButton-loading"},
			InferredProps: map[string]string{"loading": "true"},
		}},
	})
	require.True(t, strings.Contains(out, "opacity: 0.7;"))
}
