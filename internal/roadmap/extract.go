// internal/roadmap/extract.go
package roadmap

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrParseFailed marks any failure to recover a roadmap document from
// provider text: no JSON object present, unbalanced braces, or a payload
// that does not unmarshal into the roadmap shape.
var ErrParseFailed = errors.New("RESPONSE_PARSE_FAILED")

// ExtractJSON returns the first balanced top-level JSON object embedded
// in free text. Providers often wrap the document in prose or markdown
// fences; a bracket-depth scan that is string- and escape-aware recovers
// the object without the fragility of a greedy regex.
func ExtractJSON(text string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
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
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	if start < 0 {
		return "", fmt.Errorf("%w: no JSON object found in response", ErrParseFailed)
	}
	return "", fmt.Errorf("%w: unbalanced JSON object in response", ErrParseFailed)
}

// ParseRoadmap extracts and unmarshals a roadmap document from raw
// provider text. The result is structurally sound JSON; schema-level
// validation is a separate step (see ValidateRoadmapJSON).
func ParseRoadmap(text string) (*Roadmap, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var rm Roadmap
	if err := json.Unmarshal([]byte(raw), &rm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	return &rm, nil
}
