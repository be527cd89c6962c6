package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImplantacaoMW/datacheckai/database"
	"github.com/ImplantacaoMW/datacheckai/internal/config"
)

func newTestServer(t *testing.T) (*Server, *database.SampleStore) {
	t.Helper()

	store, err := database.NewSampleStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		Port:               "0",
		SampleDatabasePath: ":memory:",
		MaxUploadBytes:     8 << 20,
		SessionTTL:         time.Minute,
		HeaderThreshold:    0.82,
		ContentThreshold:   0.5,
		RateLimitPerSecond: 1000,
		RateLimitBurst:     1000,
	}
	return New(cfg, store), store
}

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func doJSON(t *testing.T, s *Server, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

const mercadoriasCSV = "Codigo;Descricao;Unidade;Marca;Tipo;NCM;Tributacao;Preco Venda;Custo\n" +
	"ABC-123;Parafuso sextavado;UN;Vonder;Ferragem;12345678;Tributado;10,00;5,50\n" +
	"DEF-456;Porca de aco;UN;Vonder;Ferragem;87654321;Isento;3,25;1,10\n"

func uploadMercadorias(t *testing.T, s *Server) UploadResponse {
	t.Helper()

	body, contentType := multipartBody(t, map[string][]byte{
		"estoque.csv": []byte(mercadoriasCSV),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/validador/mercadorias/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	var resp map[string]any
	rec := doJSON(t, s, http.MethodGet, "/api/health", nil, &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp["layouts"], "mercadorias")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestUploadAutoMapsByHeader(t *testing.T) {
	s, _ := newTestServer(t)

	resp := uploadMercadorias(t, s)

	require.NotEmpty(t, resp.Lote)
	assert.Equal(t, "mercadorias", resp.Tipo)
	assert.Equal(t, 2, resp.TotalRegistros)
	require.Len(t, resp.Arquivos, 1)

	file := resp.Arquivos[0]
	assert.Empty(t, file.Erro)
	assert.False(t, file.PedirManual)
	assert.Equal(t, 2, file.NumRegistros)
	assert.Len(t, file.Amostra, 2)
	assert.Equal(t, "Codigo", file.AutoMap["codigo"])
	assert.Equal(t, "Descricao", file.AutoMap["nome"])
	assert.Equal(t, "Preco Venda", file.AutoMap["preco_venda"])
	assert.Equal(t, "Custo", file.AutoMap["preco_custo_aquisicao"])
}

func TestUploadUnknownLayout(t *testing.T) {
	s, _ := newTestServer(t)

	body, contentType := multipartBody(t, map[string][]byte{"a.csv": []byte("x;y\n1;2\n")})
	req := httptest.NewRequest(http.MethodPost, "/api/validador/contratos/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadBadFilesBecomePerFileErrors(t *testing.T) {
	s, _ := newTestServer(t)

	body, contentType := multipartBody(t, map[string][]byte{
		"planilha.pdf": []byte("%PDF-1.4"),
		"vazio.csv":    []byte("so_uma_coluna\n"),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/validador/mercadorias/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Arquivos, 2)

	byName := make(map[string]UploadFileResult)
	for _, f := range resp.Arquivos {
		byName[f.Nome] = f
	}
	assert.Equal(t, "Formato não suportado.", byName["planilha.pdf"].Erro)
	assert.Contains(t, byName["vazio.csv"].Erro, "Erro:")
}

func TestAnalyzeFlowLearnsSamples(t *testing.T) {
	s, store := newTestServer(t)

	up := uploadMercadorias(t, s)
	require.Len(t, up.Arquivos, 1)

	var resp AnalyzeResponse
	rec := doJSON(t, s, http.MethodPost, "/api/validador/mercadorias/analisar", AnalyzeRequest{
		Lote: up.Lote,
		Arquivos: []AnalyzeFileRequest{
			{Nome: "estoque.csv", Mapeamento: up.Arquivos[0].AutoMap},
		},
	}, &resp)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, resp.Arquivos, 1)
	file := resp.Arquivos[0]
	assert.Equal(t, 2, file.TotalRegistros)
	assert.Equal(t, 2, file.TotalValidos)
	assert.Equal(t, 0, file.TotalInvalidos)
	assert.Empty(t, file.Inconsistencias)
	assert.NotEmpty(t, file.Stats)

	// Valid values of mapped text columns are learned; volatile price
	// columns are not.
	learned, err := store.Load("mercadorias")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ABC-123", "DEF-456"}, learned["codigo"])
	assert.Empty(t, learned["preco_venda"])

	// The batch is consumed by the analysis.
	rec = doJSON(t, s, http.MethodPost, "/api/validador/mercadorias/analisar", AnalyzeRequest{
		Lote:     up.Lote,
		Arquivos: []AnalyzeFileRequest{{Nome: "estoque.csv", Mapeamento: up.Arquivos[0].AutoMap}},
	}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalyzeUnknownBatch(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/validador/mercadorias/analisar", AnalyzeRequest{
		Lote: "nao-existe",
	}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSamplesEndpoints(t *testing.T) {
	s, store := newTestServer(t)

	require.NoError(t, store.Append("mercadorias", map[string][]string{
		"marca": {"Vonder", "Bosch", "Makita"},
	}))

	var summary struct {
		Campos []database.FieldSummary `json:"campos"`
		Total  int                     `json:"total"`
	}
	rec := doJSON(t, s, http.MethodGet, "/api/amostras?tipo=mercadorias", nil, &summary)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, summary.Total)
	assert.Equal(t, "marca", summary.Campos[0].FieldID)
	assert.Equal(t, 3, summary.Campos[0].Count)

	var search SearchResponse
	rec = doJSON(t, s, http.MethodPost, "/api/amostras/busca", SearchRequest{
		Tipo: "mercadorias", Campo: "marca", Termo: "bo",
	}, &search)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Bosch"}, search.Amostras)

	var del DeleteResponse
	rec = doJSON(t, s, http.MethodPost, "/api/amostras/excluir", DeleteRequest{
		Tipo: "mercadorias", Campo: "marca", Valor: "Bosch",
	}, &del)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, del.Success)

	rec = doJSON(t, s, http.MethodPost, "/api/amostras/excluir", DeleteRequest{
		Tipo: "mercadorias", Campo: "marca",
	}, &del)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, del.Success)

	learned, err := store.Load("mercadorias")
	require.NoError(t, err)
	assert.Empty(t, learned["marca"])
}

func TestSampleSearchRequiresTipoAndCampo(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/amostras/busca", SearchRequest{Termo: "abc"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimitRejectsBursts(t *testing.T) {
	store, err := database.NewSampleStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		Port:               "0",
		MaxUploadBytes:     1 << 20,
		SessionTTL:         time.Minute,
		RateLimitPerSecond: 1,
		RateLimitBurst:     1,
	}
	s := New(cfg, store)

	first := httptest.NewRecorder()
	s.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	s.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
