package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImplantacaoMW/datacheckai/layout"
)

func TestForKnowsEveryLayout(t *testing.T) {
	for _, id := range layout.IDs() {
		v, ok := For(id)
		require.True(t, ok, "layout %s", id)
		assert.Equal(t, id, v.LayoutID())
	}

	_, ok := For("inexistente")
	assert.False(t, ok)
}

func TestMercadoriasValidate(t *testing.T) {
	v, _ := For(layout.Mercadorias)

	tests := []struct {
		name  string
		field string
		value string
		want  bool
	}{
		{"codigo valido", "codigo", "ABC-123", true},
		{"codigo com barra", "codigo", "AB/100.X", true},
		{"codigo curto", "codigo", "A1", false},
		{"codigo longo", "codigo", "ABCDEFGHIJ1234567890X", false},
		{"codigo com caractere proibido", "codigo", "AB#1234", false},
		{"codigo parece descricao", "codigo", "CABO DE VELA", false},
		{"codigo em branco", "codigo", "  ", false},
		{"nome valido", "nome", "Filtro de óleo", true},
		{"nome curto", "nome", "Abc", false},
		{"unidade dentro do limite", "unidade", "UN", true},
		{"unidade acima do limite", "unidade", "UNID", false},
		{"ncm com 8 digitos", "ncm", "84713012", true},
		{"ncm pontuado", "ncm", "8471.30.12", true},
		{"ncm tamanho errado", "ncm", "847130", false},
		{"ncm com letra", "ncm", "84713O12", false},
		{"cest com 7 digitos", "cest", "0100100", true},
		{"cest pontuado", "cest", "01.001.00", true},
		{"cest invalido", "cest", "010010", false},
		{"preco decimal com virgula", "preco_venda", "10,50", true},
		{"preco negativo", "preco_venda", "-1,00", false},
		{"preco nao numerico", "preco_venda", "dez reais", false},
		{"original booleano", "original", "Sim", true},
		{"original invalido", "original", "talvez", false},
		{"curva valida", "curva_abc", "a", true},
		{"curva invalida", "curva_abc", "E", false},
		{"origem em branco opcional", "origem", "", true},
		{"origem numerica", "origem", "0", true},
		{"origem negativa", "origem", "-1", false},
		{"anp nove digitos", "anp", "123456789", true},
		{"anp exportado como float", "anp", "123456789.0", true},
		{"anp tamanho errado", "anp", "12345", false},
		{"campo desconhecido aceita tudo", "xyz", "qualquer", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(tt.field, tt.value))
		})
	}
}

func TestSaldosValidate(t *testing.T) {
	v, _ := For(layout.MercadoriasSaldos)

	tests := []struct {
		field string
		value string
		want  bool
	}{
		{"codigo", "A1", true},
		{"codigo", "", false},
		{"saldo", "10,5", true},
		{"saldo", "-3", true},
		{"saldo", "abc", false},
		{"saldo", "", false},
		{"custo_medio", "", false},
		{"custo_medio", "-1,25", true},
		{"tipo_localizacao", "Prateleira A", true},
		{"localizacao", "", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, v.Validate(tt.field, tt.value), "%s=%q", tt.field, tt.value)
	}
}

func TestPessoasValidate(t *testing.T) {
	v, _ := For(layout.Pessoas)

	tests := []struct {
		field string
		value string
		want  bool
	}{
		{"cpf_cnpj", "123.456.789-01", true},
		{"cpf_cnpj", "12.345.678/0001-99", true},
		{"cpf_cnpj", "12345", false},
		{"cpf_cnpj", "", false},
		{"tipo_pessoa", "1", true},
		{"tipo_pessoa", "fisica", false},
		{"tipo_pessoa", "8", false},
		{"tipo_contribuinte", "9", true},
		{"data_nascimento", "01/02/1990", true},
		{"data_nascimento", "1990-02-01", true},
		{"data_nascimento", "01-02-1990", true},
		{"data_nascimento", "02/30/1990", false},
		{"data_nascimento", "", true},
		{"produtor_rural", "1", true},
		{"produtor_rural", "sim", false},
		{"produtor_rural", "talvez", false},
		{"valor_limite_credito", "1500,00", true},
		{"valor_limite_credito", "mil", false},
		{"uf", "SP", true},
		{"uf", "SPO", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, v.Validate(tt.field, tt.value), "%s=%q", tt.field, tt.value)
	}
}

func TestPessoasNormalize(t *testing.T) {
	v, _ := For(layout.Pessoas)

	tests := []struct {
		field string
		in    string
		want  string
	}{
		{"tipo_pessoa", "Física", "1"},
		{"tipo_pessoa", "PJ", "2"},
		{"tipo_pessoa", "2", "2"},
		{"sexo", "Feminino", "1"},
		{"estado_civil", "Viúvo(a)", "4"},
		{"tipo_contribuinte", "Não Contribuinte", "2"},
		{"tipo_telefone", "CELULAR", "1"},
		{"tipo_endereco", "Cobrança", "3"},
		{"produtor_rural", "Sim", "1"},
		{"tipo_pessoa", "alienígena", "alienigena"},
		{"nome_razao", "José", "José"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, v.Normalize(tt.field, tt.in), "%s=%q", tt.field, tt.in)
	}

	// Canonical codes are fixed points.
	for folded, code := range optionMaps["estado_civil"] {
		assert.Equal(t, code, v.Normalize("estado_civil", folded))
	}
}

func TestVeiculosValidate(t *testing.T) {
	v, _ := For(layout.VeiculosCliente)

	tests := []struct {
		field string
		value string
		want  bool
	}{
		{"cpf_cnpj", "12345678901", true},
		{"cpf_cnpj", "12345678000199", true},
		{"cpf_cnpj", "123.456.789-01", false},
		{"cpf_cnpj", "12345678901234", true},
		{"cpf_cnpj", "123456789012", false},
		{"placa", "ABC-1234", true},
		{"placa", "abc1d23", true},
		{"placa", "AB-123", false},
		{"ano_fabricacao", "2020", true},
		{"ano_fabricacao", "1899", false},
		{"ano_fabricacao", "20 20", false},
		{"ano_modelo", "2101", false},
		{"chassi", "9BWZZZ377VT004251", true},
		{"uf_rg", "35", true},
		{"uf_rg", "SP", false},
		{"data_venda", "15/03/2024", true},
		{"data_venda", "2024-03-15", true},
		{"data_venda", "15.03.2024", false},
		{"data_hora_ultima_alteracao", "2024-03-15 10:30:00", true},
		{"data_hora_ultima_alteracao", "15/03/2024 10:30:00", true},
		{"data_hora_ultima_alteracao", "15/03/2024", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, v.Validate(tt.field, tt.value), "%s=%q", tt.field, tt.value)
	}
}
