package server

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ImplantacaoMW/datacheckai/database"
	"github.com/ImplantacaoMW/datacheckai/importer"
	"github.com/ImplantacaoMW/datacheckai/layout"
	"github.com/ImplantacaoMW/datacheckai/mapping"
	"github.com/ImplantacaoMW/datacheckai/quality"
	"github.com/ImplantacaoMW/datacheckai/server/middleware"
)

const previewRows = 20

// Handler wires the import, mapping, analysis and sample-store packages
// behind the HTTP API.
type Handler struct {
	store    *database.SampleStore
	mapper   *mapping.Mapper
	sessions *sessionStore
	maxBytes int64
}

// sendError sends the uniform JSON error body and logs it with the
// request ID.
func sendError(c *gin.Context, statusCode int, message string) {
	log.Printf("http error: %s status=%d request_id=%s %s %s",
		message, statusCode, middleware.GetRequestIDFromGin(c),
		c.Request.Method, c.Request.URL.Path)
	c.JSON(statusCode, ErrorResponse{Error: true, Message: message})
}

// HandleUpload receives a multipart batch of files for one layout, sniffs
// and auto-maps each, and parks the parsed datasets in a session so the
// client can confirm or adjust the mapping before analysis. Unsupported
// or unreadable files become per-file errors, never a failed request.
func (h *Handler) HandleUpload(c *gin.Context) {
	tipo := c.Param("tipo")
	l, ok := layout.Get(tipo)
	if !ok {
		sendError(c, http.StatusNotFound, fmt.Sprintf("Tipo de layout desconhecido: %q.", tipo))
		return
	}
	val, _ := quality.For(tipo)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	form, err := c.MultipartForm()
	if err != nil {
		sendError(c, http.StatusBadRequest, fmt.Sprintf("Upload inválido: %v.", err))
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		sendError(c, http.StatusBadRequest, "Nenhum arquivo enviado.")
		return
	}

	// Store failures degrade auto-mapping to the header stage only.
	samples, err := h.store.Load(tipo)
	if err != nil {
		log.Printf("sample store unavailable, header-only mapping: %v", err)
		samples = nil
	}

	b := h.sessions.Create(tipo)
	resp := UploadResponse{Tipo: tipo, Lote: b.ID}

	for _, fh := range files {
		name := filepath.Base(fh.Filename)
		result := UploadFileResult{Nome: name}

		ext := strings.ToLower(filepath.Ext(name))
		switch ext {
		case ".csv", ".txt", ".xlsx", ".xls":
		default:
			result.Erro = "Formato não suportado."
			resp.Arquivos = append(resp.Arquivos, result)
			continue
		}

		data, err := readUpload(fh)
		if err != nil {
			result.Erro = fmt.Sprintf("Erro: %v", err)
			resp.Arquivos = append(resp.Arquivos, result)
			continue
		}

		parsed, err := importer.Detect(data, name)
		if err != nil {
			result.Erro = fmt.Sprintf("Erro: %v", err)
			resp.Arquivos = append(resp.Arquivos, result)
			continue
		}
		resp.Alertas = append(resp.Alertas, parsed.Alerts...)

		autoMap := h.mapper.ByHeader(parsed.Dataset, l)
		if missingRequired(l, autoMap) && len(samples) > 0 {
			for fieldID, col := range h.mapper.ByContent(parsed.Dataset, l, samples, val) {
				if _, taken := autoMap[fieldID]; !taken {
					autoMap[fieldID] = col
				}
			}
		}

		b.Files[name] = &batchFile{Name: name, Dataset: parsed.Dataset, AutoMap: autoMap}

		result.Colunas = parsed.Dataset.Columns
		result.Amostra = parsed.Dataset.Preview(previewRows)
		result.AutoMap = autoMap
		result.PedirManual = missingRequired(l, autoMap)
		result.NumRegistros = parsed.Dataset.RowCount()
		resp.TotalRegistros += result.NumRegistros
		resp.Arquivos = append(resp.Arquivos, result)
	}

	c.JSON(http.StatusOK, resp)
}

// HandleAnalyze runs the quality analysis over a previously uploaded
// batch with the user-confirmed mapping, learns new samples from the
// mapped columns and returns the inconsistency report per file.
func (h *Handler) HandleAnalyze(c *gin.Context) {
	tipo := c.Param("tipo")
	l, ok := layout.Get(tipo)
	if !ok {
		sendError(c, http.StatusNotFound, fmt.Sprintf("Tipo de layout desconhecido: %q.", tipo))
		return
	}
	val, _ := quality.For(tipo)

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, fmt.Sprintf("Requisição inválida: %v.", err))
		return
	}

	b := h.sessions.Get(req.Lote)
	if b == nil || b.LayoutID != tipo {
		sendError(c, http.StatusNotFound, "Lote não encontrado ou expirado. Envie os arquivos novamente.")
		return
	}

	existing, err := h.store.Load(tipo)
	if err != nil {
		log.Printf("sample store unavailable, skipping learning: %v", err)
		existing = nil
	}

	resp := AnalyzeResponse{Tipo: tipo}
	toSave := make(map[string][]string)

	for _, fileReq := range req.Arquivos {
		bf := b.Files[fileReq.Nome]
		if bf == nil {
			continue
		}

		userMap := make(map[string]string, len(fileReq.Mapeamento))
		for fieldID, col := range fileReq.Mapeamento {
			if col == "" || l.Field(fieldID) == nil {
				continue
			}
			if bf.Dataset.ColumnIndex(col) < 0 {
				continue
			}
			userMap[fieldID] = col
		}

		for fieldID, fresh := range mapping.LearnSamples(bf.Dataset, l, userMap, existing, val) {
			toSave[fieldID] = append(toSave[fieldID], fresh...)
		}

		report, err := quality.Analyze(bf.Dataset, l, userMap)
		if err != nil {
			sendError(c, http.StatusInternalServerError, fmt.Sprintf("Erro ao analisar %q: %v.", fileReq.Nome, err))
			return
		}

		resp.Arquivos = append(resp.Arquivos, AnalyzeFileResult{
			Nome:            fileReq.Nome,
			Mapeamento:      userMap,
			Inconsistencias: report.Records,
			Stats:           report.Stats,
			TotalRegistros:  report.TotalRows,
			TotalValidos:    report.ValidRows,
			TotalInvalidos:  report.InvalidRows,
		})
	}

	if len(toSave) > 0 {
		if err := h.store.Append(tipo, toSave); err != nil {
			log.Printf("failed to persist learned samples: %v", err)
		}
	}

	h.sessions.Delete(b.ID)
	c.JSON(http.StatusOK, resp)
}

// HandleSamples returns the per-field sample totals of one layout, or of
// every layout when tipo is omitted.
func (h *Handler) HandleSamples(c *gin.Context) {
	tipo := c.Query("tipo")
	if tipo != "" {
		if _, ok := layout.Get(tipo); !ok {
			sendError(c, http.StatusNotFound, fmt.Sprintf("Tipo de layout desconhecido: %q.", tipo))
			return
		}
	}

	limit := 8
	if raw := c.Query("limite"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			sendError(c, http.StatusBadRequest, "Parâmetro limite inválido.")
			return
		}
		limit = n
	}

	summaries, err := h.store.Summary(tipo, limit)
	if err != nil {
		sendError(c, http.StatusInternalServerError, fmt.Sprintf("Erro ao consultar amostras: %v.", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"campos": summaries, "total": len(summaries)})
}

// HandleSampleSearch searches stored sample values by substring.
func (h *Handler) HandleSampleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, fmt.Sprintf("Requisição inválida: %v.", err))
		return
	}
	if req.Tipo == "" || req.Campo == "" {
		sendError(c, http.StatusBadRequest, "Informe tipo e campo para a busca.")
		return
	}

	values, err := h.store.Search(req.Tipo, req.Campo, req.Termo, req.Limite)
	if err != nil {
		sendError(c, http.StatusInternalServerError, fmt.Sprintf("Erro na busca de amostras: %v.", err))
		return
	}
	c.JSON(http.StatusOK, SearchResponse{Amostras: values, Total: len(values)})
}

// HandleSampleDelete removes a whole field or a single value from the
// sample store.
func (h *Handler) HandleSampleDelete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, fmt.Sprintf("Requisição inválida: %v.", err))
		return
	}
	if req.Tipo == "" || req.Campo == "" {
		sendError(c, http.StatusBadRequest, "Informe tipo e campo para a exclusão.")
		return
	}

	var (
		n   int64
		err error
	)
	if req.Valor == "" {
		n, err = h.store.DeleteField(req.Tipo, req.Campo)
	} else {
		n, err = h.store.DeleteValue(req.Tipo, req.Campo, req.Valor)
	}
	if err != nil {
		sendError(c, http.StatusInternalServerError, fmt.Sprintf("Erro ao excluir amostras: %v.", err))
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{
		Success:  true,
		Mensagem: fmt.Sprintf("%d amostra(s) removida(s) do campo %q.", n, req.Campo),
	})
}

// HandleHealth reports process liveness and the registered layouts.
func (h *Handler) HandleHealth(c *gin.Context) {
	ids := layout.IDs()
	sort.Strings(ids)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "layouts": ids})
}

func missingRequired(l *layout.Layout, m map[string]string) bool {
	for _, id := range l.RequiredIDs() {
		if m[id] == "" {
			return true
		}
	}
	return false
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
