package server

import (
	"github.com/ImplantacaoMW/datacheckai/quality"
)

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// UploadFileResult describes one uploaded file after sniffing and
// auto-mapping. Files that could not be parsed carry only Nome and Erro.
type UploadFileResult struct {
	Nome         string              `json:"nome"`
	Erro         string              `json:"erro,omitempty"`
	Colunas      []string            `json:"colunas,omitempty"`
	Amostra      []map[string]string `json:"amostra,omitempty"`
	AutoMap      map[string]string   `json:"auto_map,omitempty"`
	PedirManual  bool                `json:"pedir_manual"`
	NumRegistros int                 `json:"num_registros"`
}

// UploadResponse is the body of POST /api/validador/:tipo/upload.
type UploadResponse struct {
	Tipo           string             `json:"tipo"`
	Lote           string             `json:"lote"`
	TotalRegistros int                `json:"total_registros"`
	Alertas        []string           `json:"alertas,omitempty"`
	Arquivos       []UploadFileResult `json:"arquivos"`
}

// AnalyzeFileRequest carries the user-confirmed mapping for one file of
// the batch. Mapping keys are layout field IDs, values are column names.
type AnalyzeFileRequest struct {
	Nome       string            `json:"nome"`
	Mapeamento map[string]string `json:"mapeamento"`
}

// AnalyzeRequest is the body of POST /api/validador/:tipo/analisar.
type AnalyzeRequest struct {
	Lote     string               `json:"lote"`
	Arquivos []AnalyzeFileRequest `json:"arquivos"`
}

// AnalyzeFileResult is the per-file analysis outcome.
type AnalyzeFileResult struct {
	Nome            string              `json:"nome"`
	Mapeamento      map[string]string   `json:"mapeamento"`
	Inconsistencias []quality.Record    `json:"inconsistencias"`
	Stats           []quality.FieldStat `json:"stats"`
	TotalRegistros  int                 `json:"total_registros"`
	TotalValidos    int                 `json:"total_validos_geral"`
	TotalInvalidos  int                 `json:"total_invalidos_geral"`
}

// AnalyzeResponse is the body of POST /api/validador/:tipo/analisar.
type AnalyzeResponse struct {
	Tipo     string              `json:"tipo"`
	Arquivos []AnalyzeFileResult `json:"arquivos"`
}

// SearchRequest is the body of POST /api/amostras/busca.
type SearchRequest struct {
	Tipo   string `json:"tipo"`
	Campo  string `json:"campo"`
	Termo  string `json:"termo"`
	Limite int    `json:"limite"`
}

// SearchResponse lists the sample values matching a substring search.
type SearchResponse struct {
	Amostras []string `json:"amostras"`
	Total    int      `json:"total"`
}

// DeleteRequest is the body of POST /api/amostras/excluir. An empty Valor
// deletes the whole field.
type DeleteRequest struct {
	Tipo  string `json:"tipo"`
	Campo string `json:"campo"`
	Valor string `json:"valor"`
}

// DeleteResponse reports the outcome of a sample deletion.
type DeleteResponse struct {
	Success  bool   `json:"success"`
	Mensagem string `json:"mensagem"`
}
