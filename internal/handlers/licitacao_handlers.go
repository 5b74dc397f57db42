package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/licitafacil/licitafacil/internal/broker"
	"github.com/licitafacil/licitafacil/internal/models"
	"github.com/licitafacil/licitafacil/internal/repository"
	"github.com/licitafacil/licitafacil/internal/utils"
)

type LicitacaoRepo interface {
	Create(ctx context.Context, l *models.Licitacao) (string, error)
	GetByID(ctx context.Context, id string) (*models.Licitacao, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]models.Licitacao, error)
	Update(ctx context.Context, id string, l *models.Licitacao) error
	Delete(ctx context.Context, id string) error
	ContaPorStatus(ctx context.Context, empresaID string) (models.ResumoLicitacoes, error)
}

type LicitacaoHandler struct {
	Repo     LicitacaoRepo
	Empresas EmpresaRepo
	Pub      Publisher
}

func parseLicitacaoPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 3 && parts[0] == "api" && parts[1] == "licitacoes" && parts[2] != "" {
		return parts[2], true
	}
	return "", false
}

// Licitacoes atende GET (lista) e POST (criação) em /api/licitacoes.
func (h *LicitacaoHandler) Licitacoes(w http.ResponseWriter, r *http.Request) {
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
		var dto LicitacaoDTO
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		if err := validateLicitacaoDTO(dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}

		dataAbertura, err := utils.ParseData(dto.DataAbertura)
		if err != nil {
			utils.BadRequest(w, "data_abertura inválida (use AAAA-MM-DD)")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if _, err := h.Empresas.GetByID(ctx, dto.EmpresaID); err != nil {
			utils.NotFound(w, "Empresa não encontrada")
			return
		}

		status := dto.Status
		if status == "" {
			status = models.StatusLicEmAndamento
		}

		l := models.Licitacao{
			ID:             uuid.NewString(),
			EmpresaID:      dto.EmpresaID,
			NumeroEdital:   dto.NumeroEdital,
			OrgaoLicitante: dto.OrgaoLicitante,
			Objeto:         dto.Objeto,
			DataAbertura:   dataAbertura,
			LinkEdital:     dto.LinkEdital,
			Status:         status,
			Observacoes:    dto.Observacoes,
		}
		if _, err := h.Repo.Create(ctx, &l); err != nil {
			utils.InternalError(w, err)
			return
		}

		h.publishEvento("Cadastro", &l)
		utils.WriteJSON(w, http.StatusCreated, l)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// LicitacaoByID atende /api/licitacoes/{id} e a rota fixa /api/licitacoes/status.
func (h *LicitacaoHandler) LicitacaoByID(w http.ResponseWriter, r *http.Request) {
	seg, ok := parseLicitacaoPath(r.URL.Path)
	if !ok {
		utils.NotFound(w, "not found")
		return
	}

	if seg == "status" {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		utils.WriteJSON(w, http.StatusOK, models.StatusLicitacao)
		return
	}

	switch r.Method {
	case http.MethodGet:
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		l, err := h.Repo.GetByID(ctx, seg)
		if err != nil {
			utils.NotFound(w, "not found")
			return
		}
		utils.WriteJSON(w, http.StatusOK, l)

	case http.MethodPut:
		var dto LicitacaoDTO
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		if err := validateLicitacaoDTO(dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		dataAbertura, err := utils.ParseData(dto.DataAbertura)
		if err != nil {
			utils.BadRequest(w, "data_abertura inválida (use AAAA-MM-DD)")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		atual, err := h.Repo.GetByID(ctx, seg)
		if err != nil {
			utils.NotFound(w, "not found")
			return
		}

		status := dto.Status
		if status == "" {
			status = atual.Status
		}

		upd := models.Licitacao{
			NumeroEdital:   dto.NumeroEdital,
			OrgaoLicitante: dto.OrgaoLicitante,
			Objeto:         dto.Objeto,
			DataAbertura:   dataAbertura,
			LinkEdital:     dto.LinkEdital,
			Status:         status,
			Observacoes:    dto.Observacoes,
		}
		if err := h.Repo.Update(ctx, seg, &upd); err != nil {
			if errors.Is(err, repository.ErrLicitacaoNaoEncontrada) {
				utils.NotFound(w, "not found")
				return
			}
			utils.InternalError(w, err)
			return
		}

		// Retorna o doc atualizado
		l2, err := h.Repo.GetByID(ctx, seg)
		if err != nil {
			utils.WriteJSON(w, http.StatusOK, map[string]string{"id": seg})
			return
		}
		h.publishEvento("Edição", l2)
		utils.WriteJSON(w, http.StatusOK, l2)

	case http.MethodDelete:
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		l, err := h.Repo.GetByID(ctx, seg)
		if err != nil {
			utils.NotFound(w, "not found")
			return
		}
		if err := h.Repo.Delete(ctx, seg); err != nil {
			utils.InternalError(w, err)
			return
		}

		h.publishEvento("Exclusão", l)
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *LicitacaoHandler) publishEvento(acao string, l *models.Licitacao) {
	if h.Pub == nil || l == nil {
		return
	}
	msg := fmt.Sprintf("%s de LICITAÇÃO %s (%s)", acao, l.NumeroEdital, l.OrgaoLicitante)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = h.Pub.Publish(ctx, msg, broker.EventoHeaders(acao, "licitacao", l.ID))
}
