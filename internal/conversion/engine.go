package conversion

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"unit-converter/internal/units"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrPathTooShort    = errors.New("conversion path needs at least two units")
)

// ConversionRequest is one UI interaction: a category, a unit pair and the
// raw text typed into the input field.
type ConversionRequest struct {
	Category units.Category
	From     string
	To       string
	Input    string
}

// Result is what the UI displays. OK is false when the input could not be
// read as a number; Display is then empty.
type Result struct {
	Value   float64
	Display string
	OK      bool
}

// Step is one hop of a conversion path.
type Step struct {
	From   string
	To     string
	Input  float64
	Result float64
}

// Convert converts x from one unit to another within category c. Linear
// categories go through the base unit; temperature uses affine formulas with
// Celsius as the pivot.
func Convert(c units.Category, from, to string, x float64) (float64, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}

	fromDef, ok := units.Lookup(c, from)
	if !ok {
		return 0, fmt.Errorf("%w: %q in %s", ErrUnknownUnit, from, c)
	}
	toDef, ok := units.Lookup(c, to)
	if !ok {
		return 0, fmt.Errorf("%w: %q in %s", ErrUnknownUnit, to, c)
	}

	if from == to {
		return x, nil
	}

	if !c.IsLinear() {
		return fromCelsius(to, toCelsius(from, x)), nil
	}

	return x * fromDef.RatioToBase / toDef.RatioToBase, nil
}

func toCelsius(unit string, x float64) float64 {
	switch unit {
	case units.Fahrenheit:
		return (x - 32) * 5 / 9
	case units.Kelvin:
		return x - 273.15
	default:
		return x
	}
}

func fromCelsius(unit string, c float64) float64 {
	switch unit {
	case units.Fahrenheit:
		return c*9/5 + 32
	case units.Kelvin:
		return c + 273.15
	default:
		return c
	}
}

// ParseInput reads a number typed by a user. Surrounding whitespace and
// thousands separators are ignored. NaN and infinities are rejected.
func ParseInput(raw string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Evaluate parses the raw input, converts it and formats the result.
// Unparseable input is not an error: it yields a Result with OK false.
func Evaluate(req ConversionRequest) (Result, error) {
	x, ok := ParseInput(req.Input)
	if !ok {
		// still reject unknown units so callers learn about bad selections
		if _, err := Convert(req.Category, req.From, req.To, 0); err != nil {
			return Result{}, err
		}
		return Result{}, nil
	}

	v, err := Convert(req.Category, req.From, req.To, x)
	if err != nil {
		return Result{}, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Result{}, nil
	}

	return Result{Value: v, Display: Format(v), OK: true}, nil
}

// ConvertPath converts x along path, one hop per adjacent pair of units.
func ConvertPath(c units.Category, x float64, path ...string) ([]Step, error) {
	if len(path) < 2 {
		return nil, ErrPathTooShort
	}

	steps := make([]Step, 0, len(path)-1)
	running := x
	for i := 1; i < len(path); i++ {
		out, err := Convert(c, path[i-1], path[i], running)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i-1, err)
		}
		steps = append(steps, Step{From: path[i-1], To: path[i], Input: running, Result: out})
		running = out
	}
	return steps, nil
}
