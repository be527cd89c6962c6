package quality

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ImplantacaoMW/datacheckai/layout"
)

type mercadoriasValidator struct{}

func (mercadoriasValidator) LayoutID() string { return layout.Mercadorias }

// codigoPattern is the character set accepted for product codes.
var codigoPattern = regexp.MustCompile(`(?i)^[A-Z0-9\s\-/.]+$`)

// codigoStopWords are Portuguese filler words. A code containing one
// of them is almost certainly a description pasted into the wrong
// column.
var codigoStopWords = map[string]bool{
	"de": true, "da": true, "do": true, "com": true,
	"para": true, "em": true, "um": true, "uma": true,
}

func (mercadoriasValidator) Validate(fieldID, value string) bool {
	l, _ := layout.Get(layout.Mercadorias)
	spec := l.Field(fieldID)
	if spec == nil {
		return true
	}
	if handled, valid := checkBlank(spec, value); handled {
		return valid
	}
	v := strings.TrimSpace(value)

	switch fieldID {
	case "codigo":
		if n := len([]rune(v)); n < 4 || n > spec.MaxLen {
			return false
		}
		if !codigoPattern.MatchString(v) {
			return false
		}
		for _, word := range strings.Fields(strings.ToLower(v)) {
			if codigoStopWords[word] {
				return false
			}
		}
		return true
	case "nome":
		n := len([]rune(v))
		return n >= 5 && n <= 150
	case "unidade", "marca", "tipo", "tributacao":
		return len([]rune(v)) >= 1 && withinMaxLen(spec, v)
	case "ncm":
		return validFiscalCode(v, 8, 10)
	case "cest":
		return validFiscalCode(v, 7, 9)
	case "preco_venda", "preco_custo_aquisicao", "preco_venda_sugerido", "preco_garantia", "preco_custo_fabrica":
		n, ok := parseNumber(v)
		return ok && n >= 0
	case "original":
		return validBool(v)
	case "curva_abc", "curva_xyz":
		switch strings.ToUpper(v) {
		case "A", "B", "C", "D", "X", "Y", "Z":
			return true
		}
		return false
	case "origem", "qtd_embalagem":
		n, ok := parseNumber(v)
		return ok && n >= 0
	case "anp":
		return validANP(v)
	case "aplicacao", "coeficiente", "cod_original":
		return withinMaxLen(spec, v)
	}
	return true
}

func (mercadoriasValidator) Normalize(_, value string) string { return value }

// validFiscalCode accepts NCM and CEST codes either as plain digits of
// the short length or dotted with the long length (e.g. NCM "84713012"
// or "8471.30.12").
func validFiscalCode(v string, plainLen, dottedLen int) bool {
	n := len([]rune(v))
	if n != plainLen && !(n == dottedLen && strings.Contains(v, ".")) {
		return false
	}
	for _, r := range v {
		if r != '.' && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// validANP accepts the 9-digit ANP fuel code, tolerating spreadsheet
// exports that turned it into a float like "123456789.0".
func validANP(v string) bool {
	if allDigits(v) && len(v) == 9 {
		return true
	}
	f, ok := parseNumber(v)
	if !ok {
		return false
	}
	return len(strconv.FormatInt(int64(f), 10)) == 9
}
