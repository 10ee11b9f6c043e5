package mui

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const apiPage = `
<html><body>
<h1>Button API</h1>
<table>
  <tr id="button-prop-variant">
    <th>variant</th>
    <td>'contained' | 'outlined' | 'text'</td>
    <td>'text'</td>
    <td>The variant to use.</td>
  </tr>
  <tr id="button-prop-disabled">
    <th>disabled</th>
    <td>bool</td>
    <td>false</td>
    <td>If true, the component is disabled.</td>
  </tr>
  <tr id="button-prop-broken">
    <th>broken</th>
  </tr>
</table>
<table>
  <tr id="button-classes-root">
    <td>.MuiButton-root</td>
    <td><span>root</span></td>
    <td>Styles applied to the root element.</td>
  </tr>
  <tr id="button-classes-contained">
    <td>.MuiButton-contained</td>
    <td><span>contained</span></td>
    <td>Styles applied when variant="contained".</td>
  </tr>
</table>
</body></html>`

func TestParseDefinition(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(apiPage))
	require.NoError(t, err)

	def := parseDefinition("Button", doc)
	require.Equal(t, "Button", def.Name)

	require.Len(t, def.Properties, 2)
	require.Equal(t, Property{
		Type:        "'contained' | 'outlined' | 'text'",
		Default:     "'text'",
		Description: "The variant to use.",
	}, def.Properties["variant"])
	require.Equal(t, "bool", def.Properties["disabled"].Type)

	require.Len(t, def.CSSClasses, 2)
	require.Equal(t, CSSClass{
		ClassName:   ".MuiButton-root",
		RuleName:    "root",
		Description: "Styles applied to the root element.",
	}, def.CSSClasses[0])
}

func TestParseDefinitionEmptyPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body><p>404</p></body></html>"))
	require.NoError(t, err)

	def := parseDefinition("Button", doc)
	require.Equal(t, "Button", def.Name)
	require.Empty(t, def.Properties)
	require.Empty(t, def.CSSClasses)
}
