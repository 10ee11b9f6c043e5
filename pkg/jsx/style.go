package jsx

import (
	"strconv"
	"strings"

	"github.com/titanous/json5"
)

// ParseStyleObject parses the free-form style object attribute ("sx") into
// flat key/value pairs. The demo corpus mostly contains simple object
// literals that are valid JSON5 (single quotes, unquoted keys), so a JSON5
// decode is attempted first; anything it cannot decode goes through a flat
// key:value scanner. Nested objects, arrays and functions are silently
// dropped for their key. Non-object input yields an empty map.
func ParseStyleObject(raw string) map[string]string {
	styles := map[string]string{}
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return styles
	}

	var decoded map[string]interface{}
	if err := json5.Unmarshal([]byte(trimmed), &decoded); err == nil {
		for k, v := range decoded {
			switch val := v.(type) {
			case string:
				styles[k] = val
			case float64:
				styles[k] = strconv.FormatFloat(val, 'f', -1, 64)
			case bool:
				styles[k] = strconv.FormatBool(val)
			}
		}
		return styles
	}

	scanStyleObject(trimmed, styles)
	return styles
}

// scanStyleObject is the fallback flat extractor: one key:value pair at a
// time, each value ending at the first top-level comma, newline or closing
// brace. Values that open a brace are skipped whole.
func scanStyleObject(trimmed string, styles map[string]string) {
	// The closing brace may be missing on truncated input
	content := strings.TrimSpace(strings.TrimSuffix(trimmed[1:], "}"))
	i := 0
	for i < len(content) {
		for i < len(content) && (isSpace(content[i]) || content[i] == ',') {
			i++
		}
		start := i
		for i < len(content) && isStyleKeyChar(content[i]) {
			i++
		}
		key := content[start:i]
		for i < len(content) && isSpace(content[i]) {
			i++
		}
		if key == "" || i >= len(content) || content[i] != ':' {
			// Not a recognizable pair, resynchronize at the next comma.
			for i < len(content) && content[i] != ',' && content[i] != '\n' {
				i++
			}
			continue
		}
		i++
		for i < len(content) && (content[i] == ' ' || content[i] == '\t') {
			i++
		}
		if i < len(content) && content[i] == '{' {
			// Nested value, drop the key and skip the whole block.
			depth := 0
			for i < len(content) {
				if content[i] == '{' {
					depth++
				} else if content[i] == '}' {
					depth--
					if depth == 0 {
						i++
						break
					}
				}
				i++
			}
			continue
		}
		start = i
		for i < len(content) && content[i] != ',' && content[i] != '\n' && content[i] != '}' {
			i++
		}
		value := strings.TrimSpace(content[start:i])
		value = strings.Trim(value, `'"`)
		if value != "" {
			styles[key] = value
		}
	}
}

// ParseInlineStyle splits a plain HTML style string on ';' then the first
// ':' of each pair.
func ParseInlineStyle(raw string) map[string]string {
	styles := map[string]string{}
	for _, pair := range strings.Split(raw, ";") {
		key, value, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key != "" && value != "" {
			styles[key] = value
		}
	}
	return styles
}

func isStyleKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '$' || c == '_' || c == '-'
}
