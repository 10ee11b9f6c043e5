package jsx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStyleObject(t *testing.T) {
	styles := ParseStyleObject(`{ color: 'red', margin: '8px' }`)
	require.Equal(t, map[string]string{
		"color":  "red",
		"margin": "8px",
	}, styles)
}

func TestParseStyleObjectNumbers(t *testing.T) {
	styles := ParseStyleObject(`{ m: 2, opacity: 0.5 }`)
	require.Equal(t, map[string]string{
		"m":       "2",
		"opacity": "0.5",
	}, styles)
}

func TestParseStyleObjectNestedDropped(t *testing.T) {
	styles := ParseStyleObject(`{ color: 'red', '&:hover': { color: 'blue' } }`)
	require.Equal(t, map[string]string{"color": "red"}, styles)
}

func TestParseStyleObjectFallbackScanner(t *testing.T) {
	// Bare identifiers are not decodable, the flat scanner takes over
	styles := ParseStyleObject("{ width: fit-content, mt: 1 }")
	require.Equal(t, map[string]string{
		"width": "fit-content",
		"mt":    "1",
	}, styles)
}

func TestParseStyleObjectNonObject(t *testing.T) {
	require.Empty(t, ParseStyleObject("red"))
	require.Empty(t, ParseStyleObject(""))
}

func TestParseStyleObjectUnterminated(t *testing.T) {
	require.Empty(t, ParseStyleObject("{"))
	require.Empty(t, ParseStyleObject("{}"))

	// A missing closing brace still yields the pairs scanned so far
	styles := ParseStyleObject("{ color: red")
	require.Equal(t, map[string]string{"color": "red"}, styles)
}

func TestParseInlineStyle(t *testing.T) {
	styles := ParseInlineStyle("color: red; margin-top: 8px;")
	require.Equal(t, map[string]string{
		"color":      "red",
		"margin-top": "8px",
	}, styles)
}
