package quality

import (
	"strings"

	"github.com/ImplantacaoMW/datacheckai/layout"
)

type saldosValidator struct{}

func (saldosValidator) LayoutID() string { return layout.MercadoriasSaldos }

// saldosNumericFields are validated as Brazilian decimals. Negative
// balances are accepted here; the analyzer reports them separately.
var saldosNumericFields = map[string]bool{
	"custo_medio":                  true,
	"custo_medio_contabil":         true,
	"custo_ultima_compra":          true,
	"base_media_icms_st":           true,
	"valor_medio_icms_st":          true,
	"saldo":                        true,
	"custo_contabil_ultima_compra": true,
}

func (saldosValidator) Validate(fieldID, value string) bool {
	l, _ := layout.Get(layout.MercadoriasSaldos)
	spec := l.Field(fieldID)
	if spec == nil {
		return true
	}
	if handled, valid := checkBlank(spec, value); handled {
		return valid
	}
	v := strings.TrimSpace(value)

	switch {
	case fieldID == "codigo":
		return len([]rune(v)) >= 1 && withinMaxLen(spec, v)
	case fieldID == "tipo_localizacao" || fieldID == "localizacao":
		return withinMaxLen(spec, v)
	case saldosNumericFields[fieldID]:
		_, ok := parseNumber(v)
		return ok
	}
	return true
}

func (saldosValidator) Normalize(_, value string) string { return value }
