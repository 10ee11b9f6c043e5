package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/igolaizola/muigen/pkg/jsx"
)

func TestMatchNoElements(t *testing.T) {
	m := New("Button", nil)
	_, ok := m.Match(0, jsx.Parse("<Button>Hello</Button>"))
	require.False(t, ok)
}

func TestMatchExactText(t *testing.T) {
	m := New("Button", []Element{
		{Classes: []string{"MuiButton-root", "MuiButton-contained"}, Text: "Contained"},
		{Classes: []string{"MuiButton-root", "MuiButton-outlined"}, Text: "Outlined"},
	})
	el, ok := m.Match(0, jsx.Parse(`<Button variant="outlined">Outlined</Button>`))
	require.True(t, ok)
	require.Equal(t, "Outlined", el.Text)
}

func TestMatchFuzzyText(t *testing.T) {
	m := New("Button", []Element{
		{Classes: []string{"MuiButton-root"}, Text: "Saved"},
		{Classes: []string{"MuiButton-root"}, Text: "Deleted"},
	})
	// "SAVE" normalizes to "save", one edit away from "saved"
	el, ok := m.Match(1, jsx.Parse("<Button>SAVE</Button>"))
	require.True(t, ok)
	require.Equal(t, "Saved", el.Text)
}

func TestMatchByProps(t *testing.T) {
	m := New("Button", []Element{
		{Classes: []string{"MuiButton-root", "MuiButton-contained"}, Text: "A"},
		{Classes: []string{"MuiButton-root", "MuiButton-outlined"}, Text: "B"},
	})
	// Text doesn't match anything rendered, the variant attribute decides
	el, ok := m.Match(0, jsx.Parse(`<Button variant="outlined">Completely different</Button>`))
	require.True(t, ok)
	require.Equal(t, "B", el.Text)
}

func TestMatchByPosition(t *testing.T) {
	m := New("Button", []Element{
		{Classes: []string{"MuiButton-root"}},
		{Classes: []string{"MuiButton-root"}},
	})
	// No text and no structural attributes, document order decides
	el, ok := m.Match(1, jsx.Parse("<Button />"))
	require.True(t, ok)
	require.Equal(t, m.elements[1], el)
}

func TestMatchClaimedExcluded(t *testing.T) {
	m := New("Button", []Element{
		{Classes: []string{"MuiButton-root"}, Text: "Same"},
		{Classes: []string{"MuiButton-root", "MuiButton-outlined"}, Text: "Same"},
	})
	first, ok := m.Match(0, jsx.Parse("<Button>Same</Button>"))
	require.True(t, ok)
	second, ok := m.Match(1, jsx.Parse("<Button>Same</Button>"))
	require.True(t, ok)
	require.NotEqual(t, first.Classes, second.Classes)

	// Everything claimed now
	_, ok = m.Match(2, jsx.Parse("<Button>Same</Button>"))
	require.False(t, ok)
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "helloworld", normalize("Hello \n\tWorld"))
}
