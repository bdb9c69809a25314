package conversion

import (
	"bytes"
	"encoding/json"
)

// RawInput is the text of the input field. It accepts a JSON string or a
// JSON number so API clients need not quote numbers; null reads as empty.
type RawInput string

func (r *RawInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = RawInput(s)
		return nil
	}
	if string(b) == "null" {
		*r = ""
		return nil
	}
	*r = RawInput(b)
	return nil
}

// ConvertRequest is the JSON body for POST /convert.
type ConvertRequest struct {
	Category string   `json:"category"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Input    RawInput `json:"input"`
}

// ConvertResponse is the JSON response for POST /convert. Result is the
// display string; it is empty and OK is false when the input is not a number.
type ConvertResponse struct {
	Category string   `json:"category"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Input    string   `json:"input"`
	Result   string   `json:"result"`
	Value    *float64 `json:"value"`
	OK       bool     `json:"ok"`
	Message  string   `json:"message,omitempty"`
}

// ChainRequest is the JSON body for POST /convert/chain.
type ChainRequest struct {
	Category string   `json:"category"`
	Input    RawInput `json:"input"`
	Path     []string `json:"path"` // unit ids, converted hop by hop
}

// ChainResponse is the JSON response for POST /convert/chain.
type ChainResponse struct {
	Category string        `json:"category"`
	Input    string        `json:"input"`
	Steps    []ChainResult `json:"steps"`
	Result   string        `json:"result"`
	OK       bool          `json:"ok"`
	Message  string        `json:"message,omitempty"`
}

// ChainResult records one executed hop.
type ChainResult struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Input   float64 `json:"input"`
	Result  float64 `json:"result"`
	Display string  `json:"display"`
}

// UnitView is a unit as listed by GET /units.
type UnitView struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	RatioToBase float64 `json:"ratio_to_base,omitempty"`
	Base        bool    `json:"base,omitempty"`
}

// CategoryView is a category with its units.
type CategoryView struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Units []UnitView `json:"units"`
}

// UnitsResponse is the JSON response for GET /units.
type UnitsResponse struct {
	Locale     string         `json:"locale"`
	Categories []CategoryView `json:"categories"`
}
