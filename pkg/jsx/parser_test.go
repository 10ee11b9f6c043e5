package jsx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleTag(t *testing.T) {
	node := Parse(`<Button variant="contained">Hello World</Button>`)
	require.False(t, node.Empty())
	require.Equal(t, "Button", node.Name)
	require.Equal(t, "contained", node.Props["variant"])
	require.Equal(t, "Button", node.Props["componentTag"])
	require.Equal(t, "Hello World", node.InnerText)
	require.Empty(t, node.Children)
}

func TestParseSelfClosing(t *testing.T) {
	node := Parse(`<TextField label="Name" required />`)
	require.Equal(t, "TextField", node.Name)
	require.Equal(t, "Name", node.Props["label"])
	// Valueless shorthand attributes are boolean true
	require.Equal(t, "true", node.Props["required"])
	require.Empty(t, node.InnerText)
	require.Empty(t, node.Children)
}

func TestParseBracedValues(t *testing.T) {
	node := Parse(`<Button disabled={true} loading={false} elevation={3}>Go</Button>`)
	require.Equal(t, "true", node.Props["disabled"])
	require.Equal(t, "false", node.Props["loading"])
	require.Equal(t, "3", node.Props["elevation"])
}

func TestParseSxProp(t *testing.T) {
	node := Parse(`<Box sx={{ color: 'red', margin: '8px' }}>Content</Box>`)
	require.Equal(t, "Box", node.Name)
	require.Equal(t, map[string]string{
		"color":  "red",
		"margin": "8px",
	}, node.StyleRules)
	// sx must not leak into regular props
	require.NotContains(t, node.Props, "sx")
}

func TestParseChildren(t *testing.T) {
	node := Parse(`<Button><SendIcon /> Send</Button>`)
	require.Equal(t, "Button", node.Name)
	require.Len(t, node.Children, 2)
	require.Equal(t, "SendIcon", node.Children[0].Name)
	require.Equal(t, TextName, node.Children[1].Name)
	require.Equal(t, "Send", node.Children[1].InnerText)
	require.Empty(t, node.InnerText)
}

func TestParseNested(t *testing.T) {
	node := Parse(`<Card><CardContent><Typography variant="h5">Title</Typography></CardContent></Card>`)
	require.Equal(t, "Card", node.Name)
	require.Len(t, node.Children, 1)
	content := node.Children[0]
	require.Equal(t, "CardContent", content.Name)
	require.Len(t, content.Children, 1)
	require.Equal(t, "Typography", content.Children[0].Name)
	require.Equal(t, "h5", content.Children[0].Props["variant"])
	require.Equal(t, "Title", content.Children[0].InnerText)
}

func TestParseNoTag(t *testing.T) {
	for _, snippet := range []string{"", "just text", "{expression}"} {
		node := Parse(snippet)
		require.True(t, node.Empty(), "snippet %q", snippet)
	}
}

func TestParseIconButtonPlaceholder(t *testing.T) {
	node := Parse(`<IconButton aria-label="delete" />`)
	require.Equal(t, "IconButton", node.Name)
	require.Equal(t, "delete", node.Props["aria-label"])
	require.Equal(t, "Icon", node.InnerText)

	// A child suppresses the placeholder
	node = Parse(`<IconButton><DeleteIcon /></IconButton>`)
	require.Empty(t, node.InnerText)
	require.Len(t, node.Children, 1)
}

func TestParseMultilineAttributes(t *testing.T) {
	node := Parse("<Button\n  variant=\"outlined\"\n  size=\"small\"\n>\n  Click\n</Button>")
	require.Equal(t, "outlined", node.Props["variant"])
	require.Equal(t, "small", node.Props["size"])
	require.Equal(t, "Click", node.InnerText)
}

func TestSplit(t *testing.T) {
	snippets := Split("<Button>One</Button>\n<Button variant=\"outlined\">Two</Button>\n<Chip label=\"x\" />")
	require.Len(t, snippets, 3)
	require.Equal(t, "<Button>One</Button>", snippets[0])
	require.Equal(t, `<Button variant="outlined">Two</Button>`, snippets[1])
	require.Equal(t, `<Chip label="x" />`, snippets[2])
}

func TestSplitNoTags(t *testing.T) {
	require.Equal(t, []string{"plain text"}, Split("  plain text  "))
	require.Nil(t, Split("   "))
}
