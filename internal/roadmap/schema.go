// internal/roadmap/schema.go
package roadmap

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// roadmapSchema is the JSON Schema every accepted roadmap document must
// satisfy, whether synthesized locally or recovered from provider text.
const roadmapSchema = `{
  "type": "object",
  "required": ["pillars"],
  "properties": {
    "pillars": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "currentLevel", "targetLevel", "stages", "kpis"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "currentLevel": {"type": "integer", "minimum": 1, "maximum": 5},
          "targetLevel": {"type": "integer", "minimum": 1, "maximum": 5},
          "stages": {
            "type": "array",
            "minItems": 2,
            "maxItems": 4,
            "items": {
              "type": "object",
              "required": ["name", "startQuarter", "endQuarter", "description", "milestones", "status"],
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "startQuarter": {"type": "string", "pattern": "^Q[1-4] [0-9]{4}$"},
                "endQuarter": {"type": "string", "pattern": "^Q[1-4] [0-9]{4}$"},
                "description": {"type": "string"},
                "milestones": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string", "enum": ["in-progress", "planned"]}
              }
            }
          },
          "kpis": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(roadmapSchema)

// ValidateRoadmapJSON validates a raw roadmap document against the
// roadmap schema. Violations are folded into a single ErrParseFailed so
// callers surface one distinct "failed to parse" condition.
func ValidateRoadmapJSON(raw string) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			errs[i] = e.String()
		}
		return fmt.Errorf("%w: schema violations: %s", ErrParseFailed, strings.Join(errs, "; "))
	}
	return nil
}
