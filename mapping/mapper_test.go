package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImplantacaoMW/datacheckai/importer"
	"github.com/ImplantacaoMW/datacheckai/layout"
	"github.com/ImplantacaoMW/datacheckai/quality"
)

func mercadoriasSetup(t *testing.T) (*layout.Layout, quality.Validator) {
	t.Helper()
	l, ok := layout.Get(layout.Mercadorias)
	require.True(t, ok)
	val, ok := quality.For(layout.Mercadorias)
	require.True(t, ok)
	return l, val
}

func TestByHeaderExactAndFuzzy(t *testing.T) {
	l, _ := mercadoriasSetup(t)
	ds := &importer.Dataset{
		Columns: []string{"Código", "Descricao", "Preço Venda"},
		Rows:    [][]string{{"A1", "x", "1"}},
	}

	m := NewMapper(0, 0)
	got := m.ByHeader(ds, l)

	assert.Equal(t, "Código", got["codigo"])
	assert.Equal(t, "Descricao", got["nome"])
	assert.Equal(t, "Preço Venda", got["preco_venda"])
}

func TestByHeaderRespectsThreshold(t *testing.T) {
	l, _ := mercadoriasSetup(t)
	ds := &importer.Dataset{
		Columns: []string{"coluna_x", "abcdefgh"},
		Rows:    [][]string{{"1", "2"}},
	}

	m := NewMapper(0, 0)
	got := m.ByHeader(ds, l)

	assert.NotContains(t, got, "codigo")
	assert.NotContains(t, got, "nome")
}

func TestByHeaderIdentityScoresOne(t *testing.T) {
	// A header spelled exactly like the field identifier always maps,
	// because every field's keyword list falls back to its own id.
	for _, id := range layout.IDs() {
		l, _ := layout.Get(id)
		for _, fieldID := range l.FieldIDs() {
			ds := &importer.Dataset{Columns: []string{fieldID, "outra"}, Rows: [][]string{{"1", "2"}}}
			got := NewMapper(0, 0).ByHeader(ds, l)
			assert.Equal(t, fieldID, got[fieldID], "layout %s campo %s", id, fieldID)
		}
	}
}

func TestByContentOverlap(t *testing.T) {
	l, val := mercadoriasSetup(t)
	ds := &importer.Dataset{
		Columns: []string{"col_a", "col_b"},
		Rows: [][]string{
			{"ABC-100", "x"},
			{"DEF-200", "y"},
			{"GHI-300", "z"},
			{"JKL-400", "w"},
		},
	}
	samples := map[string][]string{
		"codigo": {"ABC-100", "DEF-200", "GHI-300"},
	}

	m := NewMapper(0, 0)
	got := m.ByContent(ds, l, samples, val)

	// 3 of 4 distinct valid values overlap: 0.75 >= 0.5.
	assert.Equal(t, "col_a", got["codigo"])
}

func TestByContentBelowThreshold(t *testing.T) {
	l, val := mercadoriasSetup(t)
	ds := &importer.Dataset{
		Columns: []string{"col_a"},
		Rows: [][]string{
			{"ABC-100"},
			{"DEF-200"},
			{"GHI-300"},
			{"JKL-400"},
		},
	}
	samples := map[string][]string{
		"codigo": {"ABC-100"},
	}

	got := NewMapper(0, 0).ByContent(ds, l, samples, val)

	// 1 of 4: 0.25 < 0.5.
	assert.NotContains(t, got, "codigo")
}

func TestByContentIgnoresColumnsWithoutValidValues(t *testing.T) {
	l, val := mercadoriasSetup(t)
	ds := &importer.Dataset{
		Columns: []string{"vazia"},
		Rows:    [][]string{{""}, {"  "}, {"nan"}},
	}
	samples := map[string][]string{"codigo": {"ABC-100"}}

	got := NewMapper(0, 0).ByContent(ds, l, samples, val)
	assert.Empty(t, got)
}

func TestMapHeaderWinsOverContent(t *testing.T) {
	l, val := mercadoriasSetup(t)
	ds := &importer.Dataset{
		Columns: []string{"Código", "outra"},
		Rows: [][]string{
			{"ABC-100", "DEF-200"},
			{"GHI-300", "JKL-400"},
		},
	}
	// The learned samples point at the second column, but the header
	// match on the first takes precedence.
	samples := map[string][]string{
		"codigo": {"DEF-200", "JKL-400"},
	}

	got := NewMapper(0, 0).Map(ds, l, samples, val)
	assert.Equal(t, "Código", got["codigo"])
}

func TestLearnSamples(t *testing.T) {
	l, val := mercadoriasSetup(t)
	ds := &importer.Dataset{
		Columns: []string{"Código", "Preço Venda"},
		Rows: [][]string{
			{"ABC-100", "10,00"},
			{"DEF-200", "20,00"},
			{"de", "30,00"},
			{"", "40,00"},
			{"ABC-100", "50,00"},
		},
	}
	mapping := map[string]string{"codigo": "Código", "preco_venda": "Preço Venda"}
	existing := map[string][]string{"codigo": {"DEF-200"}}

	got := LearnSamples(ds, l, mapping, existing, val)

	// Only new, valid, distinct values are learned; "de" fails
	// validation and DEF-200 is already known.
	assert.Equal(t, []string{"ABC-100"}, got["codigo"])

	// Prices are volatile and never learned.
	assert.NotContains(t, got, "preco_venda")
}
