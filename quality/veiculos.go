package quality

import (
	"strconv"
	"strings"

	"github.com/ImplantacaoMW/datacheckai/layout"
	"github.com/ImplantacaoMW/datacheckai/normalization"
)

type veiculosValidator struct{}

func (veiculosValidator) LayoutID() string { return layout.VeiculosCliente }

func (veiculosValidator) Validate(fieldID, value string) bool {
	l, _ := layout.Get(layout.VeiculosCliente)
	spec := l.Field(fieldID)
	if spec == nil {
		return true
	}
	if handled, valid := checkBlank(spec, value); handled {
		return valid
	}
	v := strings.TrimSpace(value)

	switch fieldID {
	case "cpf_cnpj":
		d := normalization.DigitsOnly(v)
		return d == v && (len(d) == 11 || len(d) == 14)
	case "placa":
		// Both the old AAA-9999 plate and the Mercosul layout fit in
		// seven characters once the dash is removed.
		s := strings.ReplaceAll(strings.ToUpper(v), "-", "")
		return len([]rune(s)) == 7 || len([]rune(s)) == 8
	case "ano_fabricacao", "ano_modelo":
		if !allDigits(v) || len(v) != 4 {
			return false
		}
		year, _ := strconv.Atoi(v)
		return year >= 1900 && year <= 2100
	case "modelo", "cor", "chassi":
		return len([]rune(v)) >= 1 && withinMaxLen(spec, v)
	case "uf_rg", "uf_inscricao_estadual":
		return allDigits(v) && len(v) == 2
	}

	switch spec.Kind {
	case layout.KindDate:
		return validDate(v)
	case layout.KindTimestamp:
		return validTimestamp(v)
	case layout.KindText:
		return withinMaxLen(spec, v)
	}
	return true
}

func (veiculosValidator) Normalize(_, value string) string { return value }
