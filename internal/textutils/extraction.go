// Package textutils provides text extraction and normalization utilities for
// model output.
package textutils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var codeFencePattern = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)```")

// StripCodeFences removes markdown code fences from model output. If the
// text contains a fenced block, the content of the first block is returned;
// otherwise the text is returned trimmed.
func StripCodeFences(text string) string {
	if matches := codeFencePattern.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return strings.TrimSpace(text)
}

// ExtractJSON locates the first JSON array or object in free-form text.
// Models frequently wrap JSON in prose or markdown; this finds the payload.
func ExtractJSON(text string) (string, error) {
	text = StripCodeFences(text)

	arrStart := strings.Index(text, "[")
	objStart := strings.Index(text, "{")

	start := -1
	var open, close byte
	switch {
	case arrStart >= 0 && (objStart < 0 || arrStart < objStart):
		start, open, close = arrStart, '[', ']'
	case objStart >= 0:
		start, open, close = objStart, '{', '}'
	default:
		return "", fmt.Errorf("no JSON payload found in text")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("unbalanced JSON payload in text")
}

// NormalizeToArray decodes a JSON payload that may be an array of objects,
// an object wrapping an array under "items", or a single object, and returns
// the elements as raw messages.
func NormalizeToArray(payload string) ([]json.RawMessage, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &arr); err == nil {
		return arr, nil
	}

	var wrapper struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal([]byte(payload), &wrapper); err == nil && len(wrapper.Items) > 0 {
		return wrapper.Items, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &obj); err == nil {
		return []json.RawMessage{json.RawMessage(payload)}, nil
	}

	return nil, fmt.Errorf("payload is neither a JSON array nor an object")
}
