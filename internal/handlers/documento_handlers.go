package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/licitafacil/licitafacil/internal/broker"
	"github.com/licitafacil/licitafacil/internal/models"
	"github.com/licitafacil/licitafacil/internal/repository"
	"github.com/licitafacil/licitafacil/internal/storage"
	"github.com/licitafacil/licitafacil/internal/utils"
)

type DocumentoRepo interface {
	Create(ctx context.Context, d *models.Documento) (string, error)
	GetByID(ctx context.Context, id string) (*models.Documento, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]models.Documento, error)
	ListAlertas(ctx context.Context, empresaID string) ([]models.Documento, error)
	Delete(ctx context.Context, id string) error
	ContaPorStatus(ctx context.Context, empresaID string) (models.ResumoDocumentos, error)
}

// Vocabulário servido em GET /api/documentos/tipos. O cliente nunca
// hard-codeia essa lista; taxonomias variam por jurisdição e porte.
var tiposDocumento = []string{
	"CNPJ",
	"CCMEI",
	"Certidão Federal",
	"Certidão Estadual",
	"Certidão Municipal",
	"Certidão FGTS",
	"Certidão Trabalhista",
	"Alvará de Funcionamento",
	"Inscrição Estadual",
	"Inscrição Municipal",
	"Comprovante de Endereço",
	"Contrato Social",
	"Outros",
}

var extensoesPermitidas = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type DocumentoHandler struct {
	Repo           DocumentoRepo
	Empresas       EmpresaRepo
	Store          storage.Storage
	Pub            Publisher
	MaxUploadBytes int64
}

func parseDocumentoPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 3 && parts[0] == "api" && parts[1] == "documentos" && parts[2] != "" {
		return parts[2], true
	}
	return "", false
}

// Documentos atende GET (lista) e POST (upload multipart) em /api/documentos.
func (h *DocumentoHandler) Documentos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {

	case http.MethodGet:
		empresaID := r.URL.Query().Get("empresa_id")
		if empresaID == "" {
			utils.BadRequest(w, "empresa_id é obrigatório")
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		list, err := h.Repo.ListByEmpresa(ctx, empresaID)
		if err != nil {
			utils.InternalError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, list)

	case http.MethodPost:
		h.upload(w, r)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *DocumentoHandler) upload(w http.ResponseWriter, r *http.Request) {
	max := h.MaxUploadBytes
	if max <= 0 {
		max = 16 << 20
	}
	r.Body = http.MaxBytesReader(w, r.Body, max)
	if err := r.ParseMultipartForm(max); err != nil {
		utils.BadRequest(w, "corpo multipart inválido")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.BadRequest(w, "Nenhum arquivo enviado")
		return
	}
	defer file.Close()

	if !extensoesPermitidas[strings.ToLower(filepath.Ext(header.Filename))] {
		utils.BadRequest(w, "Tipo de arquivo não permitido")
		return
	}

	empresaID := r.FormValue("empresa_id")
	tipo := r.FormValue("tipo")
	if empresaID == "" || tipo == "" {
		utils.BadRequest(w, "empresa_id e tipo são obrigatórios")
		return
	}

	dataEmissao, err := utils.ParseData(r.FormValue("data_emissao"))
	if err != nil {
		utils.BadRequest(w, "data_emissao inválida (use AAAA-MM-DD)")
		return
	}
	dataValidade, err := utils.ParseData(r.FormValue("data_validade"))
	if err != nil {
		utils.BadRequest(w, "data_validade inválida (use AAAA-MM-DD)")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if _, err := h.Empresas.GetByID(ctx, empresaID); err != nil {
		utils.NotFound(w, "Empresa não encontrada")
		return
	}

	// chave única no storage; nome original fica no registro
	key := uuid.NewString() + "_" + filepath.Base(header.Filename)
	contentType := header.Header.Get("Content-Type")
	if err := h.Store.Put(ctx, key, file, header.Size, contentType); err != nil {
		utils.InternalError(w, err)
		return
	}

	d := models.Documento{
		ID:             uuid.NewString(),
		EmpresaID:      empresaID,
		Tipo:           tipo,
		NomeArquivo:    header.Filename,
		CaminhoArquivo: key,
		DataEmissao:    dataEmissao,
		DataValidade:   dataValidade,
	}
	if _, err := h.Repo.Create(ctx, &d); err != nil {
		// registro falhou; não deixa o arquivo órfão no bucket
		_ = h.Store.Delete(ctx, key)
		utils.InternalError(w, err)
		return
	}

	h.publishEvento("Cadastro", &d)
	utils.WriteJSON(w, http.StatusCreated, d)
}

// DocumentoByID atende /api/documentos/{id}, além das rotas fixas
// /api/documentos/tipos e /api/documentos/alertas.
func (h *DocumentoHandler) DocumentoByID(w http.ResponseWriter, r *http.Request) {
	seg, ok := parseDocumentoPath(r.URL.Path)
	if !ok {
		utils.NotFound(w, "not found")
		return
	}

	switch seg {
	case "tipos":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		utils.WriteJSON(w, http.StatusOK, tiposDocumento)
		return

	case "alertas":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		empresaID := r.URL.Query().Get("empresa_id")
		if empresaID == "" {
			utils.BadRequest(w, "empresa_id é obrigatório")
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		alertas, err := h.Repo.ListAlertas(ctx, empresaID)
		if err != nil {
			utils.InternalError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, alertas)
		return
	}

	switch r.Method {
	case http.MethodGet:
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		d, err := h.Repo.GetByID(ctx, seg)
		if err != nil {
			utils.NotFound(w, "not found")
			return
		}
		utils.WriteJSON(w, http.StatusOK, d)

	case http.MethodDelete:
		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		d, err := h.Repo.GetByID(ctx, seg)
		if err != nil {
			utils.NotFound(w, "not found")
			return
		}

		// remove o arquivo junto; se o bucket falhar o registro permanece
		if err := h.Store.Delete(ctx, d.CaminhoArquivo); err != nil {
			utils.InternalError(w, err)
			return
		}
		if err := h.Repo.Delete(ctx, seg); err != nil {
			if errors.Is(err, repository.ErrDocumentoNaoEncontrado) {
				utils.NotFound(w, "not found")
				return
			}
			utils.InternalError(w, err)
			return
		}

		h.publishEvento("Exclusão", d)
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *DocumentoHandler) publishEvento(acao string, d *models.Documento) {
	if h.Pub == nil || d == nil {
		return
	}
	msg := fmt.Sprintf("%s de DOCUMENTO %s (%s)", acao, d.Tipo, d.NomeArquivo)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = h.Pub.Publish(ctx, msg, broker.EventoHeaders(acao, "documento", d.ID))
}
