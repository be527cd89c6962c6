package quality

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ImplantacaoMW/datacheckai/importer"
	"github.com/ImplantacaoMW/datacheckai/layout"
	"github.com/ImplantacaoMW/datacheckai/normalization"
)

// Category classifies an inconsistency record.
type Category string

const (
	CategoryMissingRequired Category = "obrigatorio_nao_mapeado"
	CategoryBlank           Category = "em_branco"
	CategoryDuplicate       Category = "duplicado"
	CategoryExceedsLength   Category = "ultrapassa_tamanho"
	CategoryWrongType       Category = "nao_numerico"
	CategoryOutOfRange      Category = "negativo"
	CategoryZero            Category = "zerado"
	CategorySpaced          Category = "com_espaco"
	CategoryInvalid         Category = "invalido"
)

// sampleCap bounds how many offending values a record carries.
const sampleCap = 8

// Record is one inconsistency found in a dataset, aggregated per field
// and category.
type Record struct {
	Key      string   `json:"chave"`
	Label    string   `json:"label"`
	Category Category `json:"tipo"`
	Message  string   `json:"mensagem"`
	Samples  []string `json:"amostra"`
}

// FieldStat counts valid and invalid cells for one layout field.
type FieldStat struct {
	Field   string `json:"campo"`
	Valid   int    `json:"validos"`
	Invalid int    `json:"invalidos"`
}

// Report is the complete outcome of analyzing a mapped dataset.
type Report struct {
	Records     []Record    `json:"inconsistencias"`
	Stats       []FieldStat `json:"stats"`
	TotalRows   int         `json:"total_registros"`
	ValidRows   int         `json:"validos"`
	InvalidRows int         `json:"invalidos"`
}

// Analyze validates every mapped column of the dataset against the
// layout rules and returns a deterministic report: records sorted by
// lower-cased label, samples sorted and capped.
func Analyze(ds *importer.Dataset, l *layout.Layout, mapping map[string]string) (*Report, error) {
	val, ok := For(l.ID)
	if !ok {
		return nil, fmt.Errorf("quality: layout %q não possui validador registrado", l.ID)
	}

	a := &analysis{
		ds:      ds,
		l:       l,
		mapping: mapping,
		val:     val,
		records: make(map[string]Record),
		rowOK:   make([]bool, ds.RowCount()),
	}
	for i := range a.rowOK {
		a.rowOK[i] = true
	}

	switch l.ID {
	case layout.Mercadorias:
		a.analyzeMercadorias()
	case layout.MercadoriasSaldos:
		a.analyzeSaldos()
	case layout.Pessoas:
		a.analyzePessoas()
	case layout.VeiculosCliente:
		a.analyzeVeiculos()
	}

	return a.report(), nil
}

type analysis struct {
	ds      *importer.Dataset
	l       *layout.Layout
	mapping map[string]string
	val     Validator
	records map[string]Record
	stats   []FieldStat
	rowOK   []bool
}

// column resolves a layout field to its mapped dataset column.
func (a *analysis) column(fieldID string) ([]string, bool) {
	col, ok := a.mapping[fieldID]
	if !ok || col == "" {
		return nil, false
	}
	if a.ds.ColumnIndex(col) < 0 {
		return nil, false
	}
	return a.ds.Column(col), true
}

func (a *analysis) add(key, label string, cat Category, msg string, samples []string) {
	if samples == nil {
		samples = []string{}
	}
	a.records[key] = Record{Key: key, Label: label, Category: cat, Message: msg, Samples: samples}
}

// unmappedField handles a layout field with no usable column. A missing
// required field condemns every row.
func (a *analysis) unmappedField(spec *layout.FieldSpec) {
	if !spec.Required {
		a.stats = append(a.stats, FieldStat{Field: spec.Label})
		return
	}
	a.add(spec.ID, spec.Label, CategoryMissingRequired,
		"Campo obrigatório não mapeado ou não encontrado.", nil)
	a.stats = append(a.stats, FieldStat{Field: spec.Label, Invalid: a.ds.RowCount()})
	for i := range a.rowOK {
		a.rowOK[i] = false
	}
}

func (a *analysis) report() *Report {
	records := make([]Record, 0, len(a.records))
	for _, r := range a.records {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		li, lj := strings.ToLower(records[i].Label), strings.ToLower(records[j].Label)
		if li != lj {
			return li < lj
		}
		return records[i].Key < records[j].Key
	})

	valid := 0
	for _, ok := range a.rowOK {
		if ok {
			valid++
		}
	}

	return &Report{
		Records:     records,
		Stats:       a.stats,
		TotalRows:   a.ds.RowCount(),
		ValidRows:   valid,
		InvalidRows: a.ds.RowCount() - valid,
	}
}

// ---- key column scans ----

// scanCode checks a unique-code column for blanks, repeats, inner
// spaces and values beyond the field limit. Blank cells and every
// repeat after the first occurrence invalidate their rows; a code with
// spaces is reported but keeps its row.
func (a *analysis) scanCode(fieldID string) {
	spec := a.l.Field(fieldID)
	values, ok := a.column(fieldID)
	if spec == nil || !ok {
		return
	}
	label := spec.Label

	seen := make(map[string]bool)
	dups := make(map[string]bool)
	over := make(map[string]bool)
	spaced := make(map[string]bool)
	blanks := 0

	for i, v := range values {
		if normalization.IsBlank(v) {
			blanks++
			a.rowOK[i] = false
			continue
		}
		s := strings.TrimSpace(v)
		if seen[s] {
			dups[s] = true
			a.rowOK[i] = false
		} else {
			seen[s] = true
		}
		if strings.Contains(s, " ") {
			spaced[s] = true
		}
		if spec.MaxLen > 0 && len([]rune(s)) > spec.MaxLen {
			over[s] = true
			a.rowOK[i] = false
		}
	}

	if blanks > 0 {
		a.add(fieldID+"_em_branco", label, CategoryBlank,
			fmt.Sprintf("Em branco: %d registro(s)", blanks), nil)
	}
	if len(dups) > 0 {
		a.add(fieldID+"_duplicado", label, CategoryDuplicate,
			fmt.Sprintf("Duplicados: %d registro(s)", len(dups)), sortedFoldSamples(setToSlice(dups)))
	}
	if len(over) > 0 {
		a.add(fieldID+"_ultrapassa", label, CategoryExceedsLength,
			fmt.Sprintf("Excede o limite de caracteres: %d registro(s)", len(over)), sortedFoldSamples(setToSlice(over)))
	}
	if len(spaced) > 0 {
		a.add(fieldID+"_com_espaco", label, CategorySpaced,
			fmt.Sprintf("Possui espaço(s) indevido(s): %d registro(s)", len(spaced)), sortedFoldSamples(setToSlice(spaced)))
	}
}

// scanUniqueUpper flags repeats in an identifier column compared in
// upper case, skipping blanks. Used for chassis and plate numbers.
func (a *analysis) scanUniqueUpper(fieldID string) {
	spec := a.l.Field(fieldID)
	values, ok := a.column(fieldID)
	if spec == nil || !ok {
		return
	}

	seen := make(map[string]bool)
	dups := make(map[string]bool)

	for i, v := range values {
		if normalization.IsBlank(v) {
			continue
		}
		s := strings.ToUpper(strings.TrimSpace(v))
		if seen[s] {
			dups[s] = true
			a.rowOK[i] = false
		} else {
			seen[s] = true
		}
	}

	if len(dups) > 0 {
		a.add(fieldID+"_duplicado", spec.Label, CategoryDuplicate,
			fmt.Sprintf("Duplicados: %d registro(s)", len(dups)), sortedSamples(setToSlice(dups)))
	}
}

// ---- mercadorias ----

var mercadoriasPriceFields = map[string]bool{
	"preco_venda":           true,
	"preco_custo_aquisicao": true,
	"preco_venda_sugerido":  true,
	"preco_garantia":        true,
	"preco_custo_fabrica":   true,
}

func (a *analysis) analyzeMercadorias() {
	a.scanCode("codigo")

	for i := range a.l.Fields {
		spec := &a.l.Fields[i]
		values, ok := a.column(spec.ID)
		if !ok {
			a.unmappedField(spec)
			continue
		}

		valid, invalid, blanks := 0, 0, 0
		var invalidSamples []string
		var negatives []string
		oversize := make(map[string]bool)

		for row, v := range values {
			isBlank := normalization.IsBlank(v)
			if spec.Kind == layout.KindText && spec.MaxLen > 0 && !isBlank && len([]rune(v)) > spec.MaxLen {
				oversize[v] = true
			}
			negative := false
			if mercadoriasPriceFields[spec.ID] {
				if n, numOK := parseNumber(v); numOK && n < 0 {
					negatives = append(negatives, v)
					negative = true
				}
			}
			if a.val.Validate(spec.ID, v) {
				valid++
				continue
			}
			invalid++
			switch {
			case isBlank:
				blanks++
			case negative:
				// carried by the negative record only
			default:
				invalidSamples = append(invalidSamples, v)
			}
			if spec.Required {
				a.rowOK[row] = false
			}
		}

		a.stats = append(a.stats, FieldStat{Field: spec.Label, Valid: valid, Invalid: invalid})

		if len(negatives) > 0 {
			a.add(spec.ID+"_negativo", spec.Label, CategoryOutOfRange,
				fmt.Sprintf("Valor negativo: %d registro(s)", len(negatives)), sortedNumericSamples(negatives))
		}
		if rest := invalid - blanks - len(negatives); rest > 0 {
			a.add(spec.ID, spec.Label, CategoryInvalid,
				fmt.Sprintf("Valor inválido: %d registro(s)", rest), sortedFoldSamples(invalidSamples))
		}
		if blanks > 0 {
			a.add(spec.ID+"_em_branco", spec.Label, CategoryBlank,
				fmt.Sprintf("Em branco: %d registro(s)", blanks), nil)
		}
		if len(oversize) > 0 {
			a.add(spec.ID+"_ultrapassa", spec.Label, CategoryExceedsLength,
				fmt.Sprintf("Excede o limite de caracteres: %d registro(s)", len(oversize)), sortedFoldSamples(setToSlice(oversize)))
		}
	}
}

// ---- mercadorias saldos ----

func (a *analysis) analyzeSaldos() {
	a.scanCode("codigo")

	for i := range a.l.Fields {
		spec := &a.l.Fields[i]
		values, ok := a.column(spec.ID)
		if !ok {
			a.unmappedField(spec)
			continue
		}

		if saldosNumericFields[spec.ID] || spec.Kind == layout.KindNumeric {
			a.analyzeSaldosNumeric(spec, values)
			continue
		}

		valid, invalid, blanks := 0, 0, 0
		oversize := make(map[string]bool)
		for row, v := range values {
			if normalization.IsBlank(v) {
				blanks++
				valid++
				continue
			}
			if spec.MaxLen > 0 && len([]rune(v)) > spec.MaxLen {
				invalid++
				oversize[v] = true
				if spec.Required {
					a.rowOK[row] = false
				}
				continue
			}
			valid++
		}

		a.stats = append(a.stats, FieldStat{Field: spec.Label, Valid: valid, Invalid: invalid})

		if len(oversize) > 0 {
			a.add(spec.ID+"_ultrapassa", spec.Label, CategoryExceedsLength,
				fmt.Sprintf("Excede o limite de caracteres: %d registro(s)", len(oversize)), sortedFoldSamples(setToSlice(oversize)))
		}
		if blanks > 0 && spec.Required {
			a.add(spec.ID+"_em_branco", spec.Label, CategoryBlank,
				fmt.Sprintf("Em branco: %d registro(s)", blanks), nil)
		}
	}
}

// analyzeSaldosNumeric separates blank, non-numeric, zero and negative
// values of a balance or cost column. Accounting costs may go negative
// on purpose, so custo_contabil_ultima_compra is exempt from the
// negative check.
func (a *analysis) analyzeSaldosNumeric(spec *layout.FieldSpec, values []string) {
	valid, invalid, blanks := 0, 0, 0
	var wrongType, negatives, zeros []string

	for row, v := range values {
		if normalization.IsBlank(v) {
			blanks++
			continue
		}
		n, ok := parseNumber(v)
		if !ok {
			invalid++
			wrongType = append(wrongType, v)
			if spec.Required {
				a.rowOK[row] = false
			}
			continue
		}
		valid++
		if n == 0 {
			zeros = append(zeros, v)
			continue
		}
		if n < 0 && spec.ID != "custo_contabil_ultima_compra" {
			negatives = append(negatives, v)
		}
	}

	a.stats = append(a.stats, FieldStat{Field: spec.Label, Valid: valid, Invalid: invalid})

	if len(wrongType) > 0 {
		a.add(spec.ID+"_nao_numerico", spec.Label, CategoryWrongType,
			fmt.Sprintf("Valor não numérico: %d registro(s)", len(wrongType)), sortedFoldSamples(wrongType))
	}
	if len(negatives) > 0 {
		a.add(spec.ID+"_negativo", spec.Label, CategoryOutOfRange,
			fmt.Sprintf("Valor negativo: %d registro(s)", len(negatives)), sortedNumericSamples(negatives))
	}
	if blanks > 0 {
		a.add(spec.ID+"_em_branco", spec.Label, CategoryBlank,
			fmt.Sprintf("Em branco: %d registro(s)", blanks), nil)
	}
	if len(zeros) > 0 {
		a.add(spec.ID+"_zerado", spec.Label, CategoryZero,
			fmt.Sprintf("Valor zerado: %d registro(s)", len(zeros)), visibleZeroSamples(zeros))
	}
}

// ---- pessoas ----

var cpfCharset = regexp.MustCompile(`^[0-9.\-/]+$`)
var emailAccents = regexp.MustCompile(`(?i)[çãõáéíóúâêîôûàèìòùäëïöü]`)
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
var cepPattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)

func (a *analysis) analyzePessoas() {
	for i := range a.l.Fields {
		spec := &a.l.Fields[i]
		values, ok := a.column(spec.ID)
		if !ok {
			a.unmappedField(spec)
			continue
		}

		// Option columns are rewritten to canonical codes before any
		// further checking, regardless of how the mapping was chosen.
		if _, isOption := optionMaps[spec.ID]; isOption {
			normalized := make([]string, len(values))
			for j, v := range values {
				if normalization.IsBlank(v) {
					normalized[j] = v
					continue
				}
				normalized[j] = a.val.Normalize(spec.ID, v)
			}
			values = normalized
		}

		switch {
		case spec.ID == "cpf_cnpj":
			a.analyzeCPFCNPJ(spec, values)
		case spec.ID == "email":
			a.analyzeEmail(spec, values)
		case spec.ID == "cep":
			a.analyzeCEP(spec, values)
		case spec.Kind == layout.KindText:
			a.analyzePessoasText(spec, values)
		case spec.Kind == layout.KindNumeric:
			a.analyzePessoasNumeric(spec, values)
		case spec.Kind == layout.KindBoolean:
			a.analyzePessoasBool(spec, values)
		case spec.Kind == layout.KindDate:
			a.analyzePessoasDate(spec, values)
		default:
			a.stats = append(a.stats, FieldStat{Field: spec.Label, Valid: len(values)})
		}
	}
}

// analyzeCPFCNPJ validates document numbers and flags duplicates. Two
// documents are the same when their digits match, whatever the
// punctuation.
func (a *analysis) analyzeCPFCNPJ(spec *layout.FieldSpec, values []string) {
	valid, invalid, blanks := 0, 0, 0
	seen := make(map[string]bool)
	badChars := make(map[string]bool)
	badLength := make(map[string]bool)
	dups := make(map[string]bool)

	for row, v := range values {
		s := strings.TrimSpace(v)
		if normalization.IsBlank(s) {
			invalid++
			blanks++
			a.rowOK[row] = false
			continue
		}
		if !cpfCharset.MatchString(s) {
			invalid++
			badChars[v] = true
			a.rowOK[row] = false
			continue
		}
		d := normalization.DigitsOnly(s)
		if len(d) != 11 && len(d) != 14 {
			invalid++
			badLength[v] = true
			a.rowOK[row] = false
			continue
		}
		if seen[d] {
			invalid++
			dups[v] = true
			a.rowOK[row] = false
			continue
		}
		seen[d] = true
		valid++
	}

	a.stats = append(a.stats, FieldStat{Field: spec.Label, Valid: valid, Invalid: invalid})

	if blanks > 0 {
		a.add(spec.ID+"_em_branco", spec.Label, CategoryBlank,
			fmt.Sprintf("Em branco: %d registro(s)", blanks), nil)
	}
	if len(badChars) > 0 {
		a.add(spec.ID+"_caracteres_invalidos", spec.Label, CategoryInvalid,
			fmt.Sprintf("Caracteres inválidos: %d registro(s)", len(badChars)), sortedSamples(setToSlice(badChars)))
	}
	if len(dups) > 0 {
		a.add(spec.ID+"_duplicado", spec.Label, CategoryDuplicate,
			fmt.Sprintf("Duplicados: %d registro(s)", len(dups)), sortedSamples(setToSlice(dups)))
	}
	if len(badLength) > 0 {
		a.add(spec.ID, spec.Label, CategoryInvalid,
			fmt.Sprintf("Fora do padrão (deve ter 11 ou 14 dígitos): %d registro(s)", len(badLength)), sortedSamples(setToSlice(badLength)))
	}
}

func (a *analysis) analyzeEmail(spec *layout.FieldSpec, values []string) {
	valid, invalid, blanks := 0, 0, 0
	badChars := make(map[string]bool)
	badFormat := make(map[string]bool)

	for row, v := range values {
		s := strings.TrimSpace(v)
		if normalization.IsBlank(s) {
			if spec.Required {
				invalid++
				blanks++
				a.rowOK[row] = false
			}
			continue
		}
		if strings.ContainsAny(s, " \t") || emailAccents.MatchString(s) {
			invalid++
			badChars[v] = true
			a.rowOK[row] = false
			continue
		}
		if !emailPattern.MatchString(s) {
			invalid++
			badFormat[v] = true
			a.rowOK[row] = false
			continue
		}
		valid++
	}

	a.stats = append(a.stats, FieldStat{Field: spec.Label, Valid: valid, Invalid: invalid})

	if blanks > 0 {
		a.add(spec.ID+"_em_branco", spec.Label, CategoryBlank,
			fmt.Sprintf("Em branco: %d registro(s)", blanks), nil)
	}
	if len(badChars) > 0 {
		a.add(spec.ID+"_caractere_invalido", spec.Label, CategoryInvalid,
			"Contém espaço ou caractere especial inválido", sortedSamples(setToSlice(badChars)))
	}
	if len(badFormat) > 0 {
		a.add(spec.ID, spec.Label, CategoryInvalid,
			"Fora do padrão de e-mail", sortedSamples(setToSlice(badFormat)))
	}
}

func (a *analysis) analyzeCEP(spec *layout.FieldSpec, values []string) {
	valid, invalid, blanks := 0, 0, 0
	badLength := make(map[string]bool)
	badFormat := make(map[string]bool)

	for row, v := range values {
		s := strings.TrimSpace(v)
		if normalization.IsBlank(s) {
			if spec.Required {
				invalid++
				blanks++
				a.rowOK[row] = false
			}
			continue
		}
		if n := len([]rune(s)); n < 8 || n > 9 {
			invalid++
			badLength[v] = true
			a.rowOK[row] = false
			continue
		}
		if !cepPattern.MatchString(s) {
			invalid++
			badFormat[v] = true
			a.rowOK[row] = false
			continue
		}
		valid++
	}

	a.stats = append(a.stats, FieldStat{Field: spec.Label, Valid: valid, Invalid: invalid})

	if blanks > 0 {
		a.add(spec.ID+"_em_branco", spec.Label, CategoryBlank,
			fmt.Sprintf("Em branco: %d registro(s)", blanks), nil)
	}
	if len(badLength) > 0 {
		a.add(spec.ID+"_tamanho_invalido", spec.Label, CategoryExceedsLength,
			fmt.Sprintf("Tamanho de caracteres inválido. Total: %d registro(s).", len(badLength)), sortedSamples(setToSlice(badLength)))
	}
	if len(badFormat) > 0 {
		a.add(spec.ID, spec.Label, CategoryInvalid,
			fmt.Sprintf("Contém caracteres não numéricos ou hífen fora do lugar. Total: %d registro(s).", len(badFormat)), sortedSamples(setToSlice(badFormat)))
	}
}

func (a *analysis) analyzePessoasText(spec *layout.FieldSpec, values []string) {
	valid, invalid, blanks := 0, 0, 0
	tooLong := make(map[string]bool)

	for row, v := range values {
		if normalization.IsBlank(v) {
			if spec.Required {
				invalid++
				blanks++
				a.rowOK[row] = false
			}
			continue
		}
		if spec.MaxLen > 0 && len([]rune(v)) > spec.MaxLen {
			invalid++
			tooLong[v] = true
			a.rowOK[row] = false
			continue
		}
		valid++
	}

	a.stats = append(a.stats, FieldStat{Field: spec.Label, Valid: valid, Invalid: invalid})

	if blanks > 0 {
		a.add(spec.ID+"_em_branco", spec.Label, CategoryBlank,
			fmt.Sprintf("Em branco: %d registro(s)", blanks), nil)
	}
	if len(tooLong) > 0 {
		a.add(spec.ID, spec.Label, CategoryInvalid,
			fmt.Sprintf("Excede o limite de caracteres. Total: %d registro(s).", len(tooLong)), sortedSamples(setToSlice(tooLong)))
	}
}

func (a *analysis) analyzePessoasNumeric(spec *layout.FieldSpec, values []string) {
	valid, invalid, blanks := 0, 0, 0
	bad := make(map[string]bool)

	for row, v := range values {
		if normalization.IsBlank(v) {
			if spec.Required {
				invalid++
				blanks++
				a.rowOK[row] = false
			}
			continue
		}
		if _, ok := parseNumber(v); !ok {
			invalid++
			bad[v] = true
			a.rowOK[row] = false
			continue
		}
		valid++
	}

	a.stats = append(a.stats, FieldStat{Field: spec.Label, Valid: valid, Invalid: invalid})

	if blanks > 0 {
		a.add(spec.ID+"_em_branco", spec.Label, CategoryBlank,
			fmt.Sprintf("Em branco: %d registro(s)", blanks), nil)
	}
	if len(bad) > 0 {
		a.add(spec.ID, spec.Label, CategoryWrongType,
			fmt.Sprintf("Valor não numérico. Total: %d registro(s).", len(bad)), sortedSamples(setToSlice(bad)))
	}
}

func (a *analysis) analyzePessoasBool(spec *layout.FieldSpec, values []string) {
	valid, invalid, blanks := 0, 0, 0
	bad := make(map[string]bool)

	for row, v := range values {
		if normalization.IsBlank(v) {
			if spec.Required {
				invalid++
				blanks++
				a.rowOK[row] = false
			}
			continue
		}
		if !validBool(v) {
			invalid++
			bad[v] = true
			a.rowOK[row] = false
			continue
		}
		valid++
	}

	a.stats = append(a.stats, FieldStat{Field: spec.Label, Valid: valid, Invalid: invalid})

	if blanks > 0 {
		a.add(spec.ID+"_em_branco", spec.Label, CategoryBlank,
			fmt.Sprintf("Em branco: %d registro(s)", blanks), nil)
	}
	if len(bad) > 0 {
		a.add(spec.ID, spec.Label, CategoryInvalid,
			fmt.Sprintf("Valor fora do padrão booleano (1/0/Sim/Não/True/False). Total: %d registro(s).", len(bad)), sortedSamples(setToSlice(bad)))
	}
}

func (a *analysis) analyzePessoasDate(spec *layout.FieldSpec, values []string) {
	valid, invalid, blanks := 0, 0, 0
	bad := make(map[string]bool)

	for row, v := range values {
		if normalization.IsBlank(v) {
			if spec.Required {
				invalid++
				blanks++
				a.rowOK[row] = false
			}
			continue
		}
		if !validDate(v) {
			invalid++
			bad[v] = true
			a.rowOK[row] = false
			continue
		}
		valid++
	}

	a.stats = append(a.stats, FieldStat{Field: spec.Label, Valid: valid, Invalid: invalid})

	if blanks > 0 {
		a.add(spec.ID+"_em_branco", spec.Label, CategoryBlank,
			fmt.Sprintf("Em branco: %d registro(s)", blanks), nil)
	}
	if len(bad) > 0 {
		a.add(spec.ID, spec.Label, CategoryInvalid,
			fmt.Sprintf("Valor fora do padrão de data esperado (ex: dd/mm/aaaa ou yyyy-mm-dd). Total: %d registro(s).", len(bad)), sortedSamples(setToSlice(bad)))
	}
}

// ---- veículos do cliente ----

func (a *analysis) analyzeVeiculos() {
	a.scanUniqueUpper("chassi")
	a.scanUniqueUpper("placa")

	for i := range a.l.Fields {
		spec := &a.l.Fields[i]
		values, ok := a.column(spec.ID)
		if !ok {
			a.unmappedField(spec)
			continue
		}

		valid, invalid, blanks := 0, 0, 0
		var invalidSamples []string
		oversize := make(map[string]bool)

		for row, v := range values {
			isBlank := normalization.IsBlank(v)
			if spec.Kind == layout.KindText && spec.MaxLen > 0 && !isBlank && len([]rune(v)) > spec.MaxLen {
				oversize[v] = true
			}
			if a.val.Validate(spec.ID, v) {
				valid++
				continue
			}
			invalid++
			if isBlank {
				blanks++
			} else {
				invalidSamples = append(invalidSamples, v)
			}
			if spec.Required {
				a.rowOK[row] = false
			}
		}

		a.stats = append(a.stats, FieldStat{Field: spec.Label, Valid: valid, Invalid: invalid})

		if invalid-blanks > 0 {
			a.add(spec.ID, spec.Label, CategoryInvalid,
				fmt.Sprintf("Valor inválido: %d registro(s)", invalid-blanks), sortedFoldSamples(invalidSamples))
		}
		if blanks > 0 {
			a.add(spec.ID+"_em_branco", spec.Label, CategoryBlank,
				fmt.Sprintf("Em branco: %d registro(s)", blanks), nil)
		}
		if len(oversize) > 0 {
			a.add(spec.ID+"_ultrapassa", spec.Label, CategoryExceedsLength,
				fmt.Sprintf("Excede o limite de caracteres: %d registro(s)", len(oversize)), sortedFoldSamples(setToSlice(oversize)))
		}
	}
}

// ---- sample helpers ----

func setToSlice(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out
}

func capSamples(values []string) []string {
	if len(values) > sampleCap {
		values = values[:sampleCap]
	}
	return values
}

// sortedSamples returns distinct non-blank values in lexicographic
// order, capped.
func sortedSamples(values []string) []string {
	return sortSamplesBy(values, func(a, b string) bool { return a < b })
}

// sortedFoldSamples orders case-insensitively, with the raw value as a
// tie breaker.
func sortedFoldSamples(values []string) []string {
	return sortSamplesBy(values, func(a, b string) bool {
		la, lb := strings.ToLower(a), strings.ToLower(b)
		if la != lb {
			return la < lb
		}
		return a < b
	})
}

// sortedNumericSamples orders by parsed numeric value.
func sortedNumericSamples(values []string) []string {
	return sortSamplesBy(values, func(a, b string) bool {
		na, okA := parseNumber(a)
		nb, okB := parseNumber(b)
		if okA && okB {
			return na < nb
		}
		return a < b
	})
}

func sortSamplesBy(values []string, less func(a, b string) bool) []string {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if !normalization.IsBlank(v) {
			set[v] = true
		}
	}
	distinct := setToSlice(set)
	sort.Slice(distinct, func(i, j int) bool { return less(distinct[i], distinct[j]) })
	return capSamples(distinct)
}

// visibleZeroSamples keeps only zero representations worth showing,
// i.e. anything beyond a plain "0" or "0,00".
func visibleZeroSamples(values []string) []string {
	var out []string
	for _, v := range capSamples(values) {
		stripped := strings.NewReplacer(".", "", ",", "").Replace(v)
		if strings.Trim(stripped, "0") != "" {
			out = append(out, v)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}
