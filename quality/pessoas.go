package quality

import (
	"strings"

	"github.com/ImplantacaoMW/datacheckai/layout"
	"github.com/ImplantacaoMW/datacheckai/normalization"
)

type pessoasValidator struct{}

func (pessoasValidator) LayoutID() string { return layout.Pessoas }

// optionMaps rewrite the synonyms found in legacy exports into the
// numeric codes the ERP expects. Keys are accent-folded lowercase.
var optionMaps = map[string]map[string]string{
	"tipo_pessoa": {
		"pf": "1", "f": "1", "fisica": "1", "1": "1",
		"pj": "2", "j": "2", "juridica": "2", "2": "2",
	},
	"sexo": {
		"f": "1", "feminino": "1", "1": "1",
		"m": "2", "masculino": "2", "2": "2",
	},
	"estado_civil": {
		"casado": "1", "casado(a)": "1", "1": "1",
		"solteiro": "2", "solteiro(a)": "2", "2": "2",
		"separado": "3", "separado(a)": "3", "3": "3",
		"viuvo": "4", "viuvo(a)": "4", "4": "4",
		"desquitado": "5", "desquitado(a)": "5", "5": "5",
		"divorciado": "6", "divorciado(a)": "6", "6": "6",
		"outros": "7", "outro": "7", "outra": "7", "7": "7",
	},
	"tipo_contribuinte": {
		"icms": "1", "contribuinte": "1", "1": "1",
		"isento": "2", "nao contribuinte": "2", "2": "2",
		"9": "9",
	},
	"tipo_endereco": {
		"residencial": "1", "1": "1",
		"comercial": "2", "2": "2",
		"cobranca": "3", "3": "3",
		"secundario": "4", "4": "4",
		"entrega": "5", "5": "5",
		"coleta": "6", "6": "6",
	},
	"tipo_telefone": {
		"celular": "1", "cel": "1", "celular comercial": "1", "1": "1",
		"fixo": "2", "residencial": "2", "telefone fixo": "2", "comercial": "2", "2": "2",
		"fax comercial": "3", "3": "3",
		"fax residencial": "4", "4": "4",
		"nextel": "5", "5": "5",
	},
	"produtor_rural": {
		"1": "1", "true": "1", "sim": "1", "yes": "1",
		"0": "0", "false": "0", "nao": "0", "no": "0",
	},
}

// optionCodes is the closed set of codes an option field may carry
// after normalization.
var optionCodes = map[string]bool{
	"0": true, "1": true, "2": true, "3": true, "4": true,
	"5": true, "6": true, "7": true, "9": true,
}

func (pessoasValidator) Validate(fieldID, value string) bool {
	l, _ := layout.Get(layout.Pessoas)
	spec := l.Field(fieldID)
	if spec == nil {
		return true
	}
	if handled, valid := checkBlank(spec, value); handled {
		return valid
	}
	v := strings.TrimSpace(value)

	if fieldID == "cpf_cnpj" {
		n := len(normalization.DigitsOnly(v))
		return n == 11 || n == 14
	}

	if _, isOption := optionMaps[fieldID]; isOption {
		return optionCodes[v]
	}

	switch spec.Kind {
	case layout.KindNumeric:
		_, ok := parseNumber(v)
		return ok
	case layout.KindBoolean:
		return validBool(v)
	case layout.KindDate:
		return validDate(v)
	case layout.KindText:
		return withinMaxLen(spec, v)
	}
	return true
}

// Normalize folds option-field synonyms into their canonical codes.
// Values with no synonym entry come back folded, other fields pass
// through untouched.
func (pessoasValidator) Normalize(fieldID, value string) string {
	m, ok := optionMaps[fieldID]
	if !ok {
		return value
	}
	folded := normalization.Fold(value)
	if code, found := m[folded]; found {
		return code
	}
	return folded
}
