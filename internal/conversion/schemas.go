package conversion

import "unit-converter/internal/validation"

var convertSchema = validation.MustCompile("convert", `{
  "type": "object",
  "required": ["category", "from", "to", "input"],
  "properties": {
    "category": {"type": "string", "minLength": 1},
    "from":     {"type": "string", "minLength": 1},
    "to":       {"type": "string", "minLength": 1},
    "input":    {"type": ["string", "number", "null"]}
  }
}`)

var chainSchema = validation.MustCompile("chain", `{
  "type": "object",
  "required": ["category", "input", "path"],
  "properties": {
    "category": {"type": "string", "minLength": 1},
    "input":    {"type": ["string", "number", "null"]},
    "path": {
      "type": "array",
      "minItems": 2,
      "maxItems": 32,
      "items": {"type": "string", "minLength": 1}
    }
  }
}`)
