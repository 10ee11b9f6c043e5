package mui

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const demoPage = `
<html><body>
<div id="demo-basic-button">
  <button class="MuiButtonBase-root MuiButton-root MuiButton-contained MuiButton-colorPrimary">Contained</button>
  <button class="MuiButtonBase-root MuiButton-root MuiButton-outlined MuiButton-colorPrimary">Outlined</button>
  <textarea class="npm__react-simple-code-editor__textarea">&lt;Button variant="contained"&gt;Contained&lt;/Button&gt;
&lt;Button variant="outlined"&gt;Outlined&lt;/Button&gt;</textarea>
</div>
</body></html>`

func TestParseVariations(t *testing.T) {
	variations, err := ParseVariations("Button", demoPage)
	require.NoError(t, err)
	require.Len(t, variations, 2)

	first := variations[0]
	require.Equal(t, "Button-Contained_variant-contained_1", first.Name)
	require.Equal(t, `<Button variant="contained">Contained</Button>`, first.RawJSX)
	require.Contains(t, first.Classes, "MuiButton-contained")
	require.Equal(t, "contained", first.InferredProps["variant"])
	require.Equal(t, "primary", first.InferredProps["color"])
	require.Equal(t, "Contained", first.Parsed.InnerText)

	second := variations[1]
	require.Equal(t, "Button-Outlined_variant-outlined_2", second.Name)
	require.Contains(t, second.Classes, "MuiButton-outlined")
	require.Equal(t, "outlined", second.InferredProps["variant"])
}

func TestParseVariationsRenderedOnly(t *testing.T) {
	html := `
<html><body>
<div id="demo-loading-button">
  <button class="MuiButtonBase-root MuiButton-root MuiButton-contained">Submit</button>
</div>
</body></html>`

	variations, err := ParseVariations("Button", html)
	require.NoError(t, err)
	require.Len(t, variations, 1)

	v := variations[0]
	require.Equal(t, "Button-Submit_RenderedOnly_1-1", v.Name)
	require.Empty(t, v.RawJSX)
	require.Contains(t, v.Classes, "MuiButton-contained")
	require.Equal(t, "contained", v.InferredProps["variant"])
	require.Equal(t, "Submit", v.Parsed.InnerText)
}

func TestParseVariationsUnmatchedSnippet(t *testing.T) {
	// A snippet with no rendered element to pair with still serializes its
	// class list as an empty array
	html := `
<html><body>
<div id="demo-basic-button">
  <textarea class="npm__react-simple-code-editor__textarea">&lt;Button&gt;Lonely&lt;/Button&gt;</textarea>
</div>
</body></html>`

	variations, err := ParseVariations("Button", html)
	require.NoError(t, err)
	require.Len(t, variations, 1)
	require.NotNil(t, variations[0].Classes)
	require.Empty(t, variations[0].Classes)

	data, err := json.Marshal(variations[0])
	require.NoError(t, err)
	require.Contains(t, string(data), `"AssociatedClasses":[]`)
}

func TestParseVariationsNoSections(t *testing.T) {
	variations, err := ParseVariations("Button", "<html><body><p>nothing here</p></body></html>")
	require.NoError(t, err)
	require.Empty(t, variations)
}

func TestDedupeNames(t *testing.T) {
	variations := []Variation{
		{Name: "Button-Go"},
		{Name: "Button-Go"},
		{Name: "Button-Go"},
		{Name: "Button-Stop"},
	}
	dedupeNames(variations)
	require.Equal(t, "Button-Go", variations[0].Name)
	require.Equal(t, "Button-Go_2", variations[1].Name)
	require.Equal(t, "Button-Go_3", variations[2].Name)
	require.Equal(t, "Button-Stop", variations[3].Name)
}
