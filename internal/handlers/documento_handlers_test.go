package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/licitafacil/licitafacil/internal/models"
)

func multipartUpload(t *testing.T, filename string, campos map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := w.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		_, _ = fw.Write([]byte("%PDF-1.4 conteudo"))
	}
	for k, v := range campos {
		_ = w.WriteField(k, v)
	}
	_ = w.Close()
	return &buf, w.FormDataContentType()
}

// POST /api/documentos - upload guarda o arquivo no storage e cria o registro
func TestDocumentos_Upload(t *testing.T) {
	var putKey string
	sm := &storeMock{
		PutFn: func(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
			putKey = key
			return nil
		},
	}
	var created *models.Documento
	dm := &documentoRepoMock{
		CreateFn: func(_ context.Context, d *models.Documento) (string, error) {
			created = d
			return d.ID, nil
		},
	}
	em := &empresaRepoMock{
		GetByIDFn: func(_ context.Context, id string) (*models.Empresa, error) {
			return &models.Empresa{ID: id}, nil
		},
	}
	h := &DocumentoHandler{Repo: dm, Empresas: em, Store: sm, Pub: &pubMock{}}

	body, ct := multipartUpload(t, "certidao.pdf", map[string]string{
		"empresa_id":    empresaID,
		"tipo":          "Certidão Federal",
		"data_validade": "2026-12-31",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/documentos", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	h.Documentos(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	if putKey == "" {
		t.Fatalf("arquivo não foi para o storage")
	}
	if created == nil || created.CaminhoArquivo != putKey {
		t.Fatalf("registro não aponta para a chave do storage: %#v", created)
	}
	if created.NomeArquivo != "certidao.pdf" || created.Tipo != "Certidão Federal" {
		t.Fatalf("unexpected registro: %#v", created)
	}
}

// Sem arquivo no multipart → 400 "Nenhum arquivo enviado"
func TestDocumentos_Upload_SemArquivo(t *testing.T) {
	h := &DocumentoHandler{Repo: &documentoRepoMock{}, Empresas: &empresaRepoMock{}, Store: &storeMock{}, Pub: &pubMock{}}

	body, ct := multipartUpload(t, "", map[string]string{"empresa_id": empresaID, "tipo": "CNPJ"})
	req := httptest.NewRequest(http.MethodPost, "/api/documentos", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	h.Documentos(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusBadRequest)
	}
	var e map[string]string
	_ = json.Unmarshal(rr.Body.Bytes(), &e)
	if e["error"] != "Nenhum arquivo enviado" {
		t.Fatalf("body=%v", e)
	}
}

// Extensão fora da lista → 400
func TestDocumentos_Upload_ExtensaoInvalida(t *testing.T) {
	h := &DocumentoHandler{Repo: &documentoRepoMock{}, Empresas: &empresaRepoMock{}, Store: &storeMock{}, Pub: &pubMock{}}

	body, ct := multipartUpload(t, "virus.exe", map[string]string{"empresa_id": empresaID, "tipo": "CNPJ"})
	req := httptest.NewRequest(http.MethodPost, "/api/documentos", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	h.Documentos(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusBadRequest)
	}
	var e map[string]string
	_ = json.Unmarshal(rr.Body.Bytes(), &e)
	if e["error"] != "Tipo de arquivo não permitido" {
		t.Fatalf("body=%v", e)
	}
}

// Falha no registro → o arquivo recém-gravado é removido do bucket
func TestDocumentos_Upload_RegistroFalha_LimpaStorage(t *testing.T) {
	var deletedKey string
	sm := &storeMock{
		DeleteFn: func(_ context.Context, key string) error {
			deletedKey = key
			return nil
		},
	}
	dm := &documentoRepoMock{
		CreateFn: func(_ context.Context, _ *models.Documento) (string, error) {
			return "", context.DeadlineExceeded
		},
	}
	em := &empresaRepoMock{
		GetByIDFn: func(_ context.Context, id string) (*models.Empresa, error) {
			return &models.Empresa{ID: id}, nil
		},
	}
	h := &DocumentoHandler{Repo: dm, Empresas: em, Store: sm, Pub: &pubMock{}}

	body, ct := multipartUpload(t, "alvara.png", map[string]string{"empresa_id": empresaID, "tipo": "Alvará de Funcionamento"})
	req := httptest.NewRequest(http.MethodPost, "/api/documentos", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	h.Documentos(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusInternalServerError)
	}
	if deletedKey == "" {
		t.Fatalf("arquivo órfão ficou no bucket")
	}
}

// GET /api/documentos?empresa_id= - lista vem com status já classificado
func TestDocumentos_List(t *testing.T) {
	dm := &documentoRepoMock{
		ListByEmpresaFn: func(_ context.Context, id string) ([]models.Documento, error) {
			if id != empresaID {
				t.Fatalf("empresa_id=%s want=%s", id, empresaID)
			}
			return []models.Documento{{ID: "d1", Tipo: "CNPJ", Status: models.StatusDocValido}}, nil
		},
	}
	h := &DocumentoHandler{Repo: dm, Empresas: &empresaRepoMock{}, Store: &storeMock{}, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodGet, "/api/documentos?empresa_id="+empresaID, nil)
	rr := httptest.NewRecorder()
	h.Documentos(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusOK)
	}
	var got []models.Documento
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 1 || got[0].Status != models.StatusDocValido {
		t.Fatalf("unexpected payload: %#v", got)
	}
}

// GET /api/documentos/tipos - vocabulário servido pelo servidor
func TestDocumentoByID_Tipos(t *testing.T) {
	h := &DocumentoHandler{Repo: &documentoRepoMock{}, Empresas: &empresaRepoMock{}, Store: &storeMock{}, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodGet, "/api/documentos/tipos", nil)
	rr := httptest.NewRecorder()
	h.DocumentoByID(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusOK)
	}
	var tipos []string
	if err := json.Unmarshal(rr.Body.Bytes(), &tipos); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(tipos) == 0 || tipos[0] != "CNPJ" {
		t.Fatalf("unexpected tipos: %v", tipos)
	}
}

// DELETE /api/documentos/{id} - remove arquivo e registro, 204
func TestDocumentoByID_Delete(t *testing.T) {
	var deletedKey, deletedID string
	sm := &storeMock{
		DeleteFn: func(_ context.Context, key string) error {
			deletedKey = key
			return nil
		},
	}
	dm := &documentoRepoMock{
		GetByIDFn: func(_ context.Context, id string) (*models.Documento, error) {
			return &models.Documento{ID: id, CaminhoArquivo: "abc_certidao.pdf"}, nil
		},
		DeleteFn: func(_ context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	h := &DocumentoHandler{Repo: dm, Empresas: &empresaRepoMock{}, Store: sm, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodDelete, "/api/documentos/d1", nil)
	rr := httptest.NewRecorder()
	h.DocumentoByID(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusNoContent)
	}
	if deletedKey != "abc_certidao.pdf" || deletedID != "d1" {
		t.Fatalf("delete incompleto: key=%q id=%q", deletedKey, deletedID)
	}
}
