package utils

import (
	"errors"
	"strings"
)

// ErrNoJSONPayload is returned when no JSON value can be located in the text.
var ErrNoJSONPayload = errors.New("no JSON payload found in text")

// ExtractJSONArray pulls a JSON array out of raw model output. Language models
// wrap payloads in markdown fences or prose, so this strips fences and scans
// for the outermost brackets. A bare object is wrapped into a one-element array.
func ExtractJSONArray(text string) (string, error) {
	text = stripFences(text)

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1], nil
	}

	objStart := strings.Index(text, "{")
	objEnd := strings.LastIndex(text, "}")
	if objStart != -1 && objEnd != -1 && objEnd > objStart {
		return "[" + text[objStart:objEnd+1] + "]", nil
	}

	return "", ErrNoJSONPayload
}

func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
