package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrUnparseable indicates that no encoding/delimiter combination
// produced a usable table (more than one column, at least one row).
var ErrUnparseable = errors.New("importer: nenhum encoding ou separador produziu uma tabela válida")

// Result carries the parsed dataset together with what the sniffer
// decided about the file and any warnings raised along the way.
type Result struct {
	Dataset   *Dataset
	Encoding  string
	Delimiter rune
	Alerts    []string
}

var delimiters = []rune{',', ';', '|', '\t'}

// encodingCandidates are tried in order. The first one whose decoded
// text yields a usable table wins. A nil decoder means the bytes are
// taken as UTF-8, guarded by utf8.Valid.
var encodingCandidates = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-8", nil},
	{"windows-1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

// Detect parses an uploaded file by extension. Excel files go through
// the sheet reader, everything else is treated as delimited text.
func Detect(data []byte, filename string) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".xlsx" || ext == ".xls" {
		return ParseExcel(data)
	}
	return DetectCSV(data, filename)
}

// DetectCSV tries every encoding and delimiter candidate and keeps the
// parse that produced the most columns. Rows broken by stray quotes or
// by a column count different from the header are excluded, and each
// exclusion is reported as an alert with its 1-based line numbers.
func DetectCSV(data []byte, filename string) (*Result, error) {
	var best *candidate
	bestEnc := ""
	bestSep := rune(0)

	for _, ec := range encodingCandidates {
		text, ok := decodeAs(data, ec.enc)
		if !ok {
			continue
		}

		for _, sep := range orderedDelimiters(text) {
			cand := parseCandidate(text, sep)
			if cand == nil {
				continue
			}
			cols := len(cand.dataset.Columns)
			if cols <= 1 || cand.dataset.RowCount() < 1 {
				continue
			}
			if best == nil || cols > len(best.dataset.Columns) {
				best = cand
				bestEnc = ec.name
				bestSep = sep
			}
		}
		if best != nil {
			break
		}
	}

	if best == nil {
		return nil, ErrUnparseable
	}

	return &Result{
		Dataset:   best.dataset,
		Encoding:  bestEnc,
		Delimiter: bestSep,
		Alerts:    best.alerts(filename),
	}, nil
}

func decodeAs(data []byte, enc encoding.Encoding) (string, bool) {
	if enc == nil {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// orderedDelimiters decides which delimiter to try first. A structural
// sniff over the first ten lines wins when it finds one; otherwise the
// most frequent delimiter leads. The remaining candidates follow in
// canonical order either way.
func orderedDelimiters(text string) []rune {
	guess, ok := structuralDelimiter(text)
	if !ok {
		lines := strings.Split(text, "\n")
		if len(lines) > 10 {
			lines = lines[:10]
		}
		sample := strings.Join(lines, "\n")

		guess = delimiters[0]
		bestCount := 0
		for _, sep := range delimiters {
			if n := strings.Count(sample, string(sep)); n > bestCount {
				guess = sep
				bestCount = n
			}
		}
	}

	ordered := []rune{guess}
	for _, sep := range delimiters {
		if sep != guess {
			ordered = append(ordered, sep)
		}
	}
	return ordered
}

// structuralDelimiter looks for a candidate that splits every one of
// the first ten non-empty lines into the same number of fields. Decimal
// commas make raw frequency counts lie, so a delimiter with a uniform
// field count (>1) beats the most frequent one. Ties go to the highest
// field count.
func structuralDelimiter(text string) (rune, bool) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == 10 {
			break
		}
	}
	if len(lines) < 2 {
		return 0, false
	}

	best := rune(0)
	bestFields := 1
	for _, sep := range delimiters {
		fields := strings.Count(lines[0], string(sep)) + 1
		if fields <= 1 {
			continue
		}
		uniform := true
		for _, line := range lines[1:] {
			if strings.Count(line, string(sep))+1 != fields {
				uniform = false
				break
			}
		}
		if uniform && fields > bestFields {
			best = sep
			bestFields = fields
		}
	}
	if best == 0 {
		return 0, false
	}
	return best, true
}

// candidate is one parse attempt for a given encoding and delimiter.
type candidate struct {
	dataset   *Dataset
	multiline []int
	malformed []int
}

// parseCandidate splits the text into physical lines, drops the lines
// that belong to multi-line quoted records, then parses each surviving
// line on its own. The first line with any non-blank cell becomes the
// header; later lines whose cell count differs from the header are
// collected as malformed. Line numbers are 1-based file positions.
func parseCandidate(text string, sep rune) *candidate {
	lines := strings.Split(text, "\n")

	multilineSet := make(map[int]bool)
	inQuotes := false
	for i, line := range lines {
		if countBareQuotes(line)%2 == 1 {
			inQuotes = !inQuotes
			multilineSet[i+1] = true
		} else if inQuotes {
			multilineSet[i+1] = true
		}
	}

	var header []string
	var rows [][]string
	var malformed []int

	for i, raw := range lines {
		lineNum := i + 1
		if multilineSet[lineNum] {
			continue
		}
		line := strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields, err := splitLine(line, sep)
		if err != nil {
			malformed = append(malformed, lineNum)
			continue
		}
		if header == nil {
			if allBlank(fields) {
				continue
			}
			header = fields
			continue
		}
		if allBlank(fields) {
			continue
		}
		if len(fields) != len(header) {
			malformed = append(malformed, lineNum)
			continue
		}
		rows = append(rows, fields)
	}

	if header == nil {
		return nil
	}

	var multiline []int
	for n := range multilineSet {
		multiline = append(multiline, n)
	}
	sort.Ints(multiline)

	return &candidate{
		dataset:   &Dataset{Columns: normalizeHeader(header), Rows: rows},
		multiline: multiline,
		malformed: malformed,
	}
}

func (c *candidate) alerts(filename string) []string {
	var alerts []string
	if len(c.multiline) > 0 {
		alerts = append(alerts, fmt.Sprintf(
			"Atenção: O arquivo %q contém %d linha(s) com quebra de linha. Essas linhas foram ignoradas na análise para evitar inconsistências. Linhas: %s.",
			filename, len(c.multiline), sampleLines(c.multiline)))
	}
	if len(c.malformed) > 0 {
		alerts = append(alerts, fmt.Sprintf(
			"Atenção: O arquivo %q contém %d linha(s) com número de colunas diferente do cabeçalho. Essas linhas foram ignoradas. Linhas: %s.",
			filename, len(c.malformed), sampleLines(c.malformed)))
	}
	return alerts
}

func sampleLines(nums []int) string {
	limit := len(nums)
	if limit > 8 {
		limit = 8
	}
	parts := make([]string, limit)
	for i, n := range nums[:limit] {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

// splitLine parses a single physical line as one CSV record.
func splitLine(line string, sep rune) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = sep
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, fmt.Errorf("importer: falha ao ler linha: %w", err)
	}
	return fields, nil
}

// countBareQuotes counts double quotes that are not part of an escaped
// pair, the ones that open or close a quoted field. An odd count means
// the record continues on the next physical line.
func countBareQuotes(line string) int {
	count := 0
	for i := 0; i < len(line); i++ {
		if line[i] != '"' {
			continue
		}
		prevIsQuote := i > 0 && line[i-1] == '"'
		nextIsQuote := i+1 < len(line) && line[i+1] == '"'
		if !prevIsQuote && !nextIsQuote {
			count++
		}
	}
	return count
}
