package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/licitafacil/licitafacil/internal/models"
)

// POST /api/licitacoes - status em branco vira em_andamento
func TestLicitacoes_Create_StatusDefault(t *testing.T) {
	var created *models.Licitacao
	lm := &licitacaoRepoMock{
		CreateFn: func(_ context.Context, l *models.Licitacao) (string, error) {
			created = l
			return l.ID, nil
		},
	}
	em := &empresaRepoMock{
		GetByIDFn: func(_ context.Context, id string) (*models.Empresa, error) {
			return &models.Empresa{ID: id}, nil
		},
	}
	h := &LicitacaoHandler{Repo: lm, Empresas: em, Pub: &pubMock{}}

	b, _ := json.Marshal(map[string]string{
		"empresa_id":      empresaID,
		"numero_edital":   "PE-001/2026",
		"orgao_licitante": "Prefeitura de Campinas",
		"objeto":          "Fornecimento de pães",
		"data_abertura":   "2026-09-15",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/licitacoes", bytes.NewReader(b))
	rr := httptest.NewRecorder()
	h.Licitacoes(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	if created == nil || created.Status != models.StatusLicEmAndamento {
		t.Fatalf("status default errado: %#v", created)
	}
	if created.ID == "" {
		t.Fatalf("id não gerado")
	}
}

// Empresa inexistente → 404
func TestLicitacoes_Create_EmpresaInexistente(t *testing.T) {
	em := &empresaRepoMock{
		GetByIDFn: func(_ context.Context, _ string) (*models.Empresa, error) {
			return nil, context.DeadlineExceeded
		},
	}
	h := &LicitacaoHandler{Repo: &licitacaoRepoMock{}, Empresas: em, Pub: &pubMock{}}

	b, _ := json.Marshal(map[string]string{
		"empresa_id":      "00000000000000",
		"numero_edital":   "PE-001/2026",
		"orgao_licitante": "Prefeitura",
		"objeto":          "Objeto",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/licitacoes", bytes.NewReader(b))
	rr := httptest.NewRecorder()
	h.Licitacoes(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusNotFound)
	}
}

// Campos obrigatórios ausentes → 400
func TestLicitacoes_Create_CamposObrigatorios(t *testing.T) {
	h := &LicitacaoHandler{Repo: &licitacaoRepoMock{}, Empresas: &empresaRepoMock{}, Pub: &pubMock{}}

	b, _ := json.Marshal(map[string]string{"empresa_id": empresaID})
	req := httptest.NewRequest(http.MethodPost, "/api/licitacoes", bytes.NewReader(b))
	rr := httptest.NewRecorder()
	h.Licitacoes(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusBadRequest)
	}
}

// GET /api/licitacoes/status - vocabulário de status
func TestLicitacaoByID_Status(t *testing.T) {
	h := &LicitacaoHandler{Repo: &licitacaoRepoMock{}, Empresas: &empresaRepoMock{}, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodGet, "/api/licitacoes/status", nil)
	rr := httptest.NewRecorder()
	h.LicitacaoByID(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusOK)
	}
	var opts []string
	if err := json.Unmarshal(rr.Body.Bytes(), &opts); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(opts) != 4 || opts[0] != models.StatusLicEmAndamento {
		t.Fatalf("unexpected status list: %v", opts)
	}
}

// PUT /api/licitacoes/{id} - devolve o registro recarregado
func TestLicitacaoByID_Put(t *testing.T) {
	updated := false
	lm := &licitacaoRepoMock{
		GetByIDFn: func(_ context.Context, id string) (*models.Licitacao, error) {
			st := models.StatusLicEmAndamento
			if updated {
				st = models.StatusLicVencida
			}
			return &models.Licitacao{ID: id, EmpresaID: empresaID, NumeroEdital: "PE-001/2026", Status: st}, nil
		},
		UpdateFn: func(_ context.Context, _ string, _ *models.Licitacao) error {
			updated = true
			return nil
		},
	}
	h := &LicitacaoHandler{Repo: lm, Empresas: &empresaRepoMock{}, Pub: &pubMock{}}

	b, _ := json.Marshal(map[string]string{
		"empresa_id":      empresaID,
		"numero_edital":   "PE-001/2026",
		"orgao_licitante": "Prefeitura de Campinas",
		"objeto":          "Fornecimento de pães",
		"status":          "vencida",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/licitacoes/l1", bytes.NewReader(b))
	rr := httptest.NewRecorder()
	h.LicitacaoByID(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}
	var got models.Licitacao
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Status != models.StatusLicVencida {
		t.Fatalf("resposta não reflete o update: %#v", got)
	}
}

// DELETE /api/licitacoes/{id} → 204
func TestLicitacaoByID_Delete(t *testing.T) {
	var deletedID string
	lm := &licitacaoRepoMock{
		GetByIDFn: func(_ context.Context, id string) (*models.Licitacao, error) {
			return &models.Licitacao{ID: id}, nil
		},
		DeleteFn: func(_ context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	h := &LicitacaoHandler{Repo: lm, Empresas: &empresaRepoMock{}, Pub: &pubMock{}}

	req := httptest.NewRequest(http.MethodDelete, "/api/licitacoes/l1", nil)
	rr := httptest.NewRecorder()
	h.LicitacaoByID(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusNoContent)
	}
	if deletedID != "l1" {
		t.Fatalf("deletedID=%q", deletedID)
	}
}
