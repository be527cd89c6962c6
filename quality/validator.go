// Package quality validates cell values against the field rules of
// each import layout and produces the inconsistency report shown to
// the migration team.
package quality

import (
	"strconv"
	"strings"
	"time"

	"github.com/ImplantacaoMW/datacheckai/layout"
	"github.com/ImplantacaoMW/datacheckai/normalization"
)

// Validator checks individual cell values for one layout. Validate
// answers whether a raw cell is acceptable for the field; Normalize
// rewrites synonyms (e.g. "física" -> "1") into their canonical form
// and returns other values untouched or folded, depending on the
// layout.
type Validator interface {
	LayoutID() string
	Validate(fieldID, value string) bool
	Normalize(fieldID, value string) string
}

var validators = map[string]Validator{
	layout.Mercadorias:       mercadoriasValidator{},
	layout.MercadoriasSaldos: saldosValidator{},
	layout.Pessoas:           pessoasValidator{},
	layout.VeiculosCliente:   veiculosValidator{},
}

// For returns the validator registered for a layout.
func For(layoutID string) (Validator, bool) {
	v, ok := validators[layoutID]
	return v, ok
}

var dateFormats = []string{"02/01/2006", "2006-01-02", "02-01-2006"}

var timestampFormats = []string{"2006-01-02 15:04:05", "02/01/2006 15:04:05"}

// checkBlank applies the shared required/optional rule that precedes
// every field-specific check. handled is true when the value is blank
// and the verdict is already decided.
func checkBlank(spec *layout.FieldSpec, value string) (handled, valid bool) {
	if normalization.IsBlank(value) {
		return true, !spec.Required
	}
	return false, false
}

// parseNumber accepts Brazilian decimal notation, where the comma is
// the decimal separator.
func parseNumber(value string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func validDate(value string) bool {
	s := strings.TrimSpace(value)
	for _, f := range dateFormats {
		if _, err := time.Parse(f, s); err == nil {
			return true
		}
	}
	return false
}

func validTimestamp(value string) bool {
	s := strings.TrimSpace(value)
	for _, f := range timestampFormats {
		if _, err := time.Parse(f, s); err == nil {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func withinMaxLen(spec *layout.FieldSpec, value string) bool {
	if spec.MaxLen <= 0 {
		return true
	}
	return len([]rune(value)) <= spec.MaxLen
}

var boolWords = map[string]bool{
	"1": true, "0": true, "true": true, "false": true,
	"sim": true, "nao": true, "não": true, "yes": true, "no": true,
}

func validBool(value string) bool {
	return boolWords[normalization.Fold(value)]
}
