package layout

import "sort"

// Registered layout identifiers.
const (
	Mercadorias       = "mercadorias"
	MercadoriasSaldos = "mercadorias_saldos"
	Pessoas           = "pessoas"
	VeiculosCliente   = "veiculos_cliente"
)

var mercadoriasLayout = &Layout{
	ID:   Mercadorias,
	Name: "Cadastro de Mercadorias",
	Fields: []FieldSpec{
		{ID: "codigo", Label: "Código *", Kind: KindText, MaxLen: 20, Required: true},
		{ID: "nome", Label: "Descrição *", Kind: KindText, MaxLen: 50, Required: true},
		{ID: "unidade", Label: "Unidade *", Kind: KindText, MaxLen: 2, Required: true},
		{ID: "marca", Label: "Marca *", Kind: KindText, MaxLen: 30, Required: true},
		{ID: "tipo", Label: "Tipo de Mercadoria *", Kind: KindText, MaxLen: 20, Required: true},
		{ID: "ncm", Label: "NCM *", Kind: KindText, MaxLen: 10, Required: true},
		{ID: "tributacao", Label: "Tributação *", Kind: KindText, MaxLen: 50, Required: true},
		{ID: "preco_venda", Label: "Preço Venda *", Kind: KindNumeric, Required: true, SkipLearning: true},
		{ID: "preco_custo_aquisicao", Label: "Preço Custo Aquisição *", Kind: KindNumeric, Required: true, SkipLearning: true},
		{ID: "original", Label: "Original", Kind: KindBoolean},
		{ID: "aplicacao", Label: "Aplicação", Kind: KindText, MaxLen: 50},
		{ID: "origem", Label: "Origem", Kind: KindNumeric, SkipLearning: true},
		{ID: "anp", Label: "ANP", Kind: KindNumeric},
		{ID: "coeficiente", Label: "Coeficiente", Kind: KindText, MaxLen: 30},
		{ID: "qtd_embalagem", Label: "Quantidade Embalagem", Kind: KindNumeric, SkipLearning: true},
		{ID: "curva_abc", Label: "Curva ABC", Kind: KindText, MaxLen: 1},
		{ID: "curva_xyz", Label: "Curva XYZ", Kind: KindText, MaxLen: 1},
		{ID: "cod_original", Label: "Código Original", Kind: KindText, MaxLen: 20},
		{ID: "cest", Label: "CEST", Kind: KindText, MaxLen: 7},
		{ID: "preco_venda_sugerido", Label: "Preço Venda Sugerido", Kind: KindNumeric, SkipLearning: true},
		{ID: "preco_garantia", Label: "Preço Garantia", Kind: KindNumeric, SkipLearning: true},
		{ID: "preco_custo_fabrica", Label: "Preço Custo Fábrica", Kind: KindNumeric, SkipLearning: true},
	},
	Keywords: map[string][]string{
		"codigo":                {"codigo", "código", "sku", "product_code", "ean", "cod", "código_mercadoria", "código mercadoria"},
		"nome":                  {"nome", "descricao", "descrição", "nome_produto", "item"},
		"unidade":               {"unidade", "unid", "unit", "und", "u.m", "um"},
		"marca":                 {"marca", "brand", "fabricante"},
		"tipo":                  {"tipo", "categoria", "grupo", "tipomercadoria", "tipo_mercadoria", "segmento"},
		"ncm":                   {"ncm", "codncm"},
		"tributacao":            {"tributacao", "cst", "trib", "tributação", "trib_estadual", "tributação_estadual", "trib_est", "situacao_tributaria", "sit_trib"},
		"preco_venda":           {"preco_venda", "valorvenda", "venda", "pvenda", "preço", "preco"},
		"preco_custo_aquisicao": {"preco_custo", "custo", "aquisicao", "pcusto", "preco_compra", "custoaquisicao"},
		"original":              {"original", "genuino", "oem"},
		"aplicacao":             {"aplicacao", "aplicação", "uso"},
		"origem":                {"origem", "procedencia"},
		"anp":                   {"anp"},
		"coeficiente":           {"coeficiente", "fator"},
		"qtd_embalagem":         {"qtd_embalagem", "quantidade_embalagem", "qtdembalagem", "caixa"},
		"curva_abc":             {"curva_abc", "abc"},
		"curva_xyz":             {"curva_xyz", "xyz"},
		"cod_original":          {"cod_original", "codigooriginal"},
		"cest":                  {"cest", "codcest"},
		"preco_venda_sugerido":  {"preco_venda_sugerido", "sugerido", "pv_sugerido"},
		"preco_garantia":        {"preco_garantia", "garantia"},
		"preco_custo_fabrica":   {"preco_custo_fabrica", "custo_fabrica", "pcf"},
	},
}

var mercadoriasSaldosLayout = &Layout{
	ID:   MercadoriasSaldos,
	Name: "Saldo de Mercadorias",
	Fields: []FieldSpec{
		{ID: "codigo", Label: "Código *", Kind: KindText, MaxLen: 20, Required: true},
		{ID: "tipo_localizacao", Label: "Tipo de Localização", Kind: KindText, MaxLen: 50},
		{ID: "localizacao", Label: "Localização", Kind: KindText, MaxLen: 50},
		{ID: "custo_medio", Label: "Custo Médio *", Kind: KindNumeric, MaxLen: 17, Required: true, SkipLearning: true},
		{ID: "custo_medio_contabil", Label: "Custo Médio Contábil *", Kind: KindNumeric, MaxLen: 17, Required: true, SkipLearning: true},
		{ID: "custo_ultima_compra", Label: "Custo Última Compra *", Kind: KindNumeric, MaxLen: 17, Required: true, SkipLearning: true},
		{ID: "base_media_icms_st", Label: "Base Média ICMS ST", Kind: KindNumeric, MaxLen: 17, SkipLearning: true},
		{ID: "valor_medio_icms_st", Label: "Valor Médio ICMS ST", Kind: KindNumeric, MaxLen: 17, SkipLearning: true},
		{ID: "saldo", Label: "Saldo *", Kind: KindNumeric, MaxLen: 14, Required: true, SkipLearning: true},
		{ID: "custo_contabil_ultima_compra", Label: "Custo Contábil Última Compra *", Kind: KindNumeric, MaxLen: 17, Required: true, SkipLearning: true},
	},
	Keywords: map[string][]string{
		"codigo":                       {"codigo", "código", "sku", "ean", "product_code", "código mercadoria", "código_mercadoria", "cod_merc"},
		"tipo_localizacao":             {"tipo_localizacao", "tipolocalizacao", "tipo localizacao", "tipo loc", "tipo"},
		"localizacao":                  {"localizacao", "localização", "local", "prateleira", "deposito"},
		"custo_medio":                  {"custo_medio", "custo medio", "medcost", "costavg"},
		"custo_medio_contabil":         {"custo_medio_contabil", "custo medio contabil", "contabil avg cost"},
		"custo_ultima_compra":          {"custo_ultima_compra", "custo ultima compra", "last_cost"},
		"base_media_icms_st":           {"base_media_icms_st", "base media icms st", "icms st base"},
		"valor_medio_icms_st":          {"valor_medio_icms_st", "valor medio icms st", "icms st valor"},
		"saldo":                        {"saldo", "saldo_atual", "quantidade", "qty", "estoque"},
		"custo_contabil_ultima_compra": {"custo_contabil_ultima_compra", "custo contabil ultima compra", "last_cost_contabil"},
	},
}

var pessoasLayout = &Layout{
	ID:   Pessoas,
	Name: "Cadastro de Pessoas",
	Fields: []FieldSpec{
		{ID: "cpf_cnpj", Label: "CPF / CNPJ *", Kind: KindText, MaxLen: 14, Required: true},
		{ID: "nome_razao", Label: "NOME / RAZÃO *", Kind: KindText, MaxLen: 100, Required: true},
		{ID: "apelido_fantasia", Label: "APELIDO / FANTASIA", Kind: KindText, MaxLen: 100},
		{ID: "rg", Label: "RG", Kind: KindText, MaxLen: 17},
		{ID: "uf_rg", Label: "UF RG", Kind: KindNumeric, MaxLen: 2},
		{ID: "inscricao_municipal", Label: "INSCRIÇÃO MUNICIPAL", Kind: KindNumeric, MaxLen: 50},
		{ID: "tipo_pessoa", Label: "TIPO PESSOA *", Kind: KindNumeric, MaxLen: 1, Required: true},
		{ID: "tipo_contribuinte", Label: "TIPO CONTRIBUINTE *", Kind: KindNumeric, MaxLen: 1, Required: true},
		{ID: "sexo", Label: "SEXO", Kind: KindNumeric, MaxLen: 1},
		{ID: "estado_civil", Label: "ESTADO CIVIL", Kind: KindNumeric, MaxLen: 1},
		{ID: "nacionalidade", Label: "NACIONALIDADE *", Kind: KindNumeric, MaxLen: 2},
		{ID: "data_nascimento", Label: "DATA DE NASCIMENTO", Kind: KindDate, MaxLen: 10},
		{ID: "data_emancipacao", Label: "DATA EMANCIPAÇÃO", Kind: KindDate, MaxLen: 10},
		{ID: "tipo_endereco", Label: "TIPO DE ENDEREÇO *", Kind: KindNumeric, MaxLen: 1, Required: true},
		{ID: "cep", Label: "CEP *", Kind: KindText, MaxLen: 10, Required: true},
		{ID: "logradouro", Label: "LOGRADOURO *", Kind: KindText, MaxLen: 50, Required: true},
		{ID: "numero_endereco", Label: "NÚMERO ENDEREÇO *", Kind: KindText, MaxLen: 10, Required: true},
		{ID: "bairro", Label: "BAIRRO *", Kind: KindText, MaxLen: 50, Required: true},
		{ID: "municipio", Label: "MUNICÍPIO *", Kind: KindText, MaxLen: 50, Required: true},
		{ID: "uf", Label: "UF *", Kind: KindText, MaxLen: 2, Required: true},
		{ID: "complemento_endereco", Label: "COMPLEMENTO ENDEREÇO", Kind: KindText, MaxLen: 20},
		{ID: "tipo_telefone", Label: "TIPO DE TELEFONE *", Kind: KindNumeric, MaxLen: 1, Required: true},
		{ID: "ddi_telefone", Label: "DDI  TELEFONE *", Kind: KindText, MaxLen: 3},
		{ID: "ddd_telefone", Label: "DDD TELEFONE *", Kind: KindText, MaxLen: 2, Required: true},
		{ID: "telefone", Label: "TELEFONE *", Kind: KindText, MaxLen: 20, Required: true},
		{ID: "ramal", Label: "RAMAL ", Kind: KindText, MaxLen: 10},
		{ID: "contato", Label: "CONTATO *", Kind: KindText, MaxLen: 20},
		{ID: "email", Label: "E-MAIL ", Kind: KindText, MaxLen: 100},
		{ID: "numero_produtor_rural", Label: "Nº PRODUTOR RURAL", Kind: KindText, MaxLen: 20},
		{ID: "data_limite_credito", Label: "DATA LIMITE DE CRÉDITO", Kind: KindDate, MaxLen: 10},
		{ID: "valor_limite_credito", Label: "VALOR LIMITE DE CRÉDITO", Kind: KindNumeric, MaxLen: 17},
		{ID: "finalidade_contato", Label: "FINALIDADE DO CONTATO", Kind: KindText, MaxLen: 50},
		{ID: "ie", Label: "IE", Kind: KindText, MaxLen: 17},
		{ID: "uf_ie", Label: "UF IE", Kind: KindNumeric, MaxLen: 2},
		{ID: "produtor_rural", Label: "PRODUTOR RURAL", Kind: KindBoolean, MaxLen: 1},
	},
	Keywords: map[string][]string{
		"cpf_cnpj":              {"cpf", "cnpj", "documento", "cpf/cnpj", "cpf_cnpj"},
		"nome_razao":            {"nome", "razão", "razao", "nome_razao", "nome/razao", "razao_social", "nome social"},
		"apelido_fantasia":      {"apelido", "fantasia", "nome fantasia", "nome_fantasia"},
		"rg":                    {"rg", "registro geral"},
		"uf_rg":                 {"uf rg", "uf_rg"},
		"inscricao_municipal":   {"inscricao_municipal", "inscrição municipal", "im"},
		"tipo_pessoa":           {"tipo pessoa", "tipo_pessoa", "tpessoa", "tipo"},
		"tipo_contribuinte":     {"tipo contribuinte", "tipo_contribuinte", "tcontribuinte", "contribuinte", "tipocontribuinte"},
		"sexo":                  {"sexo", "genero"},
		"estado_civil":          {"estado civil", "estado_civil"},
		"nacionalidade":         {"nacionalidade", "pais", "nacao"},
		"data_nascimento":       {"data nascimento", "nascimento", "dt_nasc", "data_nascimento"},
		"data_emancipacao":      {"data emancipacao", "emancipacao", "data_emancipacao"},
		"tipo_endereco":         {"tipo endereco", "tipo_endereco"},
		"cep":                   {"cep", "codigo postal"},
		"logradouro":            {"logradouro", "rua", "endereço"},
		"numero_endereco":       {"numero endereco", "numero", "número", "num_endereco"},
		"bairro":                {"bairro"},
		"municipio":             {"municipio", "cidade", "municipality", "município"},
		"uf":                    {"uf", "estado"},
		"complemento_endereco":  {"complemento", "complemento endereco"},
		"tipo_telefone":         {"tipo telefone", "tipo_telefone"},
		"ddi_telefone":          {"ddi", "DDI  TELEFONE"},
		"ddd_telefone":          {"ddd", "DDD TELEFONE"},
		"telefone":              {"TELEFONE", "celular", "fone celular"},
		"ramal":                 {"ramal"},
		"contato":               {"contato"},
		"email":                 {"email", "e-mail"},
		"numero_produtor_rural": {"nº produtor rural", "numero produtor rural", "rural", "prod_rural"},
		"data_limite_credito":   {"data limite credito", "data_limite_credito"},
		"valor_limite_credito":  {"valor limite credito", "valor_limite_credito"},
		"finalidade_contato":    {"finalidade contato", "finalidade", "motivo contato"},
		"ie":                    {"ie", "inscricao estadual"},
		"uf_ie":                 {"uf ie"},
		"produtor_rural":        {"produtor rural", "produtor_rural"},
	},
}

var veiculosClienteLayout = &Layout{
	ID:   VeiculosCliente,
	Name: "Cadastro de Veículos do Cliente",
	Fields: []FieldSpec{
		{ID: "cpf_cnpj", Label: "CPF/CNPJ *", Kind: KindNumeric, MaxLen: 14, Required: true},
		{ID: "placa", Label: "Placa", Kind: KindText, MaxLen: 8},
		{ID: "modelo", Label: "Modelo *", Kind: KindText, MaxLen: 50, Required: true},
		{ID: "cor", Label: "Cor *", Kind: KindText, MaxLen: 50, Required: true},
		{ID: "ano_fabricacao", Label: "Ano Fabricação *", Kind: KindNumeric, MaxLen: 4, Required: true},
		{ID: "ano_modelo", Label: "Ano Modelo *", Kind: KindNumeric, MaxLen: 4, Required: true},
		{ID: "chassi", Label: "Chassi *", Kind: KindText, MaxLen: 20, Required: true},
		{ID: "motor", Label: "Motor", Kind: KindText, MaxLen: 25},
		{ID: "renavam", Label: "Renavam", Kind: KindText, MaxLen: 11},
		{ID: "crlv", Label: "CRLV", Kind: KindText, MaxLen: 15},
		{ID: "bateria", Label: "Bateria", Kind: KindText, MaxLen: 49},
		{ID: "valor_bem", Label: "Valor do Bem", Kind: KindText, MaxLen: 17},
		{ID: "revendedora", Label: "Revendedora", Kind: KindText, MaxLen: 100},
		{ID: "codigo_revendedora", Label: "Código da Revendedora", Kind: KindText, MaxLen: 10},
		{ID: "ultima_concessionaria_exec", Label: "Última Concessionária Exec.", Kind: KindText, MaxLen: 100},
		{ID: "data_venda", Label: "Data da Venda", Kind: KindDate, MaxLen: 10},
		{ID: "data_inicial_garantia", Label: "Data Inicial Garantia", Kind: KindDate, MaxLen: 10},
		{ID: "data_final_garantia", Label: "Data Final Garantia", Kind: KindDate, MaxLen: 10},
		{ID: "rg", Label: "RG", Kind: KindText, MaxLen: 17},
		{ID: "uf_rg", Label: "UF RG", Kind: KindNumeric, MaxLen: 2},
		{ID: "numero_produtor_rural", Label: "Número do Produtor Rural", Kind: KindText, MaxLen: 20},
		{ID: "id_estrangeiro", Label: "ID Estrangeiro", Kind: KindText, MaxLen: 20},
		{ID: "data_hora_ultima_alteracao", Label: "Data/Hora última alteração", Kind: KindTimestamp, MaxLen: 19},
		{ID: "inscricao_estadual", Label: "Inscrição Estadual", Kind: KindText, MaxLen: 17},
		{ID: "uf_inscricao_estadual", Label: "UF Inscrição estadual", Kind: KindNumeric, MaxLen: 2},
	},
	Keywords: map[string][]string{
		"cpf_cnpj":                   {"cpf", "cnpj", "cpf_cnpj", "cpf/cnpj", "documento"},
		"placa":                      {"placa", "placa_veiculo"},
		"modelo":                     {"modelo", "modelo_veiculo"},
		"cor":                        {"cor"},
		"ano_fabricacao":             {"ano_fabricacao", "ano de fabricacao", "ano fabr", "ano_fabricação"},
		"ano_modelo":                 {"ano_modelo", "ano do modelo"},
		"chassi":                     {"chassi"},
		"motor":                      {"motor"},
		"renavam":                    {"renavam"},
		"crlv":                       {"crlv"},
		"bateria":                    {"bateria"},
		"valor_bem":                  {"valor_bem", "valor do bem", "valor_bem_veiculo"},
		"revendedora":                {"revendedora", "concessionaria", "loja"},
		"codigo_revendedora":         {"codigo_revendedora", "cod_revendedora"},
		"ultima_concessionaria_exec": {"ultima_concessionaria_exec", "última concessionária exec", "ultima concessionaria", "ult_concessionaria"},
		"data_venda":                 {"data_venda", "data da venda", "dt_venda"},
		"data_inicial_garantia":      {"data_inicial_garantia", "data inicial garantia", "dt_ini_garantia"},
		"data_final_garantia":        {"data_final_garantia", "data final garantia", "dt_fim_garantia"},
		"rg":                         {"rg", "registro geral"},
		"uf_rg":                      {"uf_rg", "uf rg"},
		"numero_produtor_rural":      {"numero_produtor_rural", "número produtor rural"},
		"id_estrangeiro":             {"id_estrangeiro", "id estrangeiro"},
		"data_hora_ultima_alteracao": {"data_hora_ultima_alteracao", "data hora ultima alteracao"},
		"inscricao_estadual":         {"inscricao_estadual", "inscrição estadual"},
		"uf_inscricao_estadual":      {"uf_inscricao_estadual", "uf inscricao estadual"},
	},
}

var registry = map[string]*Layout{
	Mercadorias:       mercadoriasLayout,
	MercadoriasSaldos: mercadoriasSaldosLayout,
	Pessoas:           pessoasLayout,
	VeiculosCliente:   veiculosClienteLayout,
}

// Get returns the layout registered under the given id.
func Get(id string) (*Layout, bool) {
	l, ok := registry[id]
	return l, ok
}

// IDs returns all registered layout ids in stable order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns the registered layouts keyed by id.
func All() map[string]*Layout {
	return registry
}
