// Package mapping matches the columns of an uploaded file to the
// fields of an import layout. Headers are tried first by fuzzy name
// similarity; columns that remain unmatched are claimed by comparing
// their content against samples learned from previous imports.
package mapping

import (
	"github.com/ImplantacaoMW/datacheckai/importer"
	"github.com/ImplantacaoMW/datacheckai/layout"
	"github.com/ImplantacaoMW/datacheckai/normalization"
)

// Default acceptance thresholds. Below HeaderThreshold a header name is
// considered a different thing; below ContentThreshold a column's
// values overlap too little with the learned samples to be trusted.
const (
	HeaderThreshold  = 0.82
	ContentThreshold = 0.5
)

// FieldValidator is the slice of quality.Validator the content stage
// needs: a verdict per cell.
type FieldValidator interface {
	Validate(fieldID, value string) bool
}

// Mapper maps dataset columns onto layout fields.
type Mapper struct {
	headerThreshold  float64
	contentThreshold float64
}

// NewMapper creates a Mapper with the given thresholds. Zero values
// fall back to the defaults.
func NewMapper(headerThreshold, contentThreshold float64) *Mapper {
	if headerThreshold <= 0 {
		headerThreshold = HeaderThreshold
	}
	if contentThreshold <= 0 {
		contentThreshold = ContentThreshold
	}
	return &Mapper{headerThreshold: headerThreshold, contentThreshold: contentThreshold}
}

// ByHeader maps fields whose keyword list comes close enough to a
// column header. For each field the best-scoring column wins; ties
// keep the first column seen.
func (m *Mapper) ByHeader(ds *importer.Dataset, l *layout.Layout) map[string]string {
	result := make(map[string]string)
	for _, fieldID := range l.FieldIDs() {
		bestCol := ""
		bestScore := 0.0
		for _, col := range ds.Columns {
			colNorm := normalization.NormalizeName(col)
			for _, key := range l.KeywordsFor(fieldID) {
				score := normalization.Similarity(colNorm, normalization.NormalizeName(key))
				if score >= m.headerThreshold && score > bestScore {
					bestCol = col
					bestScore = score
				}
			}
		}
		if bestCol != "" {
			result[fieldID] = bestCol
		}
	}
	return result
}

// ByContent maps fields by overlap between a column's valid values and
// the samples learned for the field. The score is the intersection
// size over the count of distinct valid values in the column; columns
// with no valid value never qualify.
func (m *Mapper) ByContent(ds *importer.Dataset, l *layout.Layout, samples map[string][]string, val FieldValidator) map[string]string {
	result := make(map[string]string)
	for _, fieldID := range l.FieldIDs() {
		known := samples[fieldID]
		if len(known) == 0 {
			continue
		}
		knownSet := make(map[string]bool, len(known))
		for _, s := range known {
			knownSet[s] = true
		}

		bestCol := ""
		bestScore := 0.0
		for _, col := range ds.Columns {
			validValues := make(map[string]bool)
			for _, v := range ds.Column(col) {
				if normalization.IsBlank(v) {
					continue
				}
				if val.Validate(fieldID, v) {
					validValues[v] = true
				}
			}
			if len(validValues) == 0 {
				continue
			}
			overlap := 0
			for v := range validValues {
				if knownSet[v] {
					overlap++
				}
			}
			score := float64(overlap) / float64(len(validValues))
			if score >= m.contentThreshold && score > bestScore {
				bestCol = col
				bestScore = score
			}
		}
		if bestCol != "" {
			result[fieldID] = bestCol
		}
	}
	return result
}

// Map combines both stages. Header matches take precedence; the
// content stage only fills fields the header stage left open.
func (m *Mapper) Map(ds *importer.Dataset, l *layout.Layout, samples map[string][]string, val FieldValidator) map[string]string {
	result := m.ByHeader(ds, l)
	for fieldID, col := range m.ByContent(ds, l, samples, val) {
		if _, taken := result[fieldID]; !taken {
			result[fieldID] = col
		}
	}
	return result
}

// LearnSamples extracts the distinct valid, non-blank values of every
// mapped column, merged with what is already known. Fields marked
// SkipLearning keep their existing samples untouched, so volatile
// values like prices never enter the store.
func LearnSamples(ds *importer.Dataset, l *layout.Layout, mapping map[string]string, existing map[string][]string, val FieldValidator) map[string][]string {
	learned := make(map[string][]string)
	for _, fieldID := range l.FieldIDs() {
		spec := l.Field(fieldID)
		if spec == nil || spec.SkipLearning {
			continue
		}
		col, ok := mapping[fieldID]
		if !ok || ds.ColumnIndex(col) < 0 {
			continue
		}

		seen := make(map[string]bool)
		for _, s := range existing[fieldID] {
			seen[s] = true
		}

		var fresh []string
		for _, v := range ds.Column(col) {
			if normalization.IsBlank(v) || seen[v] {
				continue
			}
			if !val.Validate(fieldID, v) {
				continue
			}
			seen[v] = true
			fresh = append(fresh, v)
		}
		if len(fresh) > 0 {
			learned[fieldID] = fresh
		}
	}
	return learned
}
