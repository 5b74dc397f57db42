package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/licitafacil/licitafacil/internal/broker"
	"github.com/licitafacil/licitafacil/internal/models"
	"github.com/licitafacil/licitafacil/internal/repository"
	"github.com/licitafacil/licitafacil/internal/utils"
)

type EmpresaRepo interface {
	First(ctx context.Context) (*models.Empresa, error)
	GetByID(ctx context.Context, id string) (*models.Empresa, error)
	Create(ctx context.Context, e *models.Empresa) (string, error)
	Update(ctx context.Context, id string, e *models.Empresa) error
}

type Publisher interface {
	Publish(ctx context.Context, body string, headers amqp.Table) error
	Close() error
}

type EmpresaHandler struct {
	Repo EmpresaRepo
	Docs DocumentoRepo
	Lics LicitacaoRepo
	Pub  Publisher
}

// garante que a requisição venha no padrão /api/empresa/{id}[/dashboard]
func parseEmpresaPath(path string) (id string, dashboard bool, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 || parts[0] != "api" || parts[1] != "empresa" || parts[2] == "" {
		return "", false, false
	}
	if len(parts) == 3 {
		return parts[2], false, true
	}
	if len(parts) == 4 && parts[3] == "dashboard" {
		return parts[2], true, true
	}
	return "", false, false
}

func (h *EmpresaHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Empresa atende GET/POST em /api/empresa. A instância é mono-tenant:
// GET devolve a única empresa cadastrada ou 404.
func (h *EmpresaHandler) Empresa(w http.ResponseWriter, r *http.Request) {
	switch r.Method {

	case http.MethodGet:
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		e, err := h.Repo.First(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrEmpresaNaoEncontrada) {
				utils.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "Empresa não encontrada"})
				return
			}
			utils.InternalError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, e)

	case http.MethodPost:
		var dto EmpresaDTO
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		if err := validateEmpresaDTO(dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}

		e := models.Empresa{
			CNPJ:          utils.SanitizeCNPJ(dto.CNPJ),
			RazaoSocial:   dto.RazaoSocial,
			Endereco:      dto.Endereco,
			Telefone:      dto.Telefone,
			Email:         dto.Email,
			Porte:         dto.Porte,
			CNAEPrincipal: dto.CNAEPrincipal,
		}
		if !utils.ValidateCNPJ(e.CNPJ) {
			utils.BadRequest(w, "cnpj inválido")
			return
		}
		e.ID = e.CNPJ

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if _, err := h.Repo.Create(ctx, &e); err != nil {
			if errors.Is(err, repository.ErrDuplicateCNPJ) {
				utils.WriteJSON(w, http.StatusConflict, map[string]string{"error": "já existe uma empresa com este cnpj"})
				return
			}
			utils.InternalError(w, err)
			return
		}

		h.publishEvento("Cadastro", &e)
		utils.WriteJSON(w, http.StatusCreated, e)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// EmpresaByID atende PUT /api/empresa/{id} e GET /api/empresa/{id}/dashboard.
func (h *EmpresaHandler) EmpresaByID(w http.ResponseWriter, r *http.Request) {
	id, dashboard, ok := parseEmpresaPath(r.URL.Path)
	if !ok {
		utils.NotFound(w, "not found")
		return
	}

	if dashboard {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.dashboard(w, r, id)
		return
	}

	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var dto EmpresaDTO
	if err := utils.DecodeStrict(r.Body, &dto); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}
	if err := validateEmpresaDTO(dto); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Repo.GetByID(ctx, id); err != nil {
		utils.NotFound(w, "Empresa não encontrada")
		return
	}

	cnpj := utils.SanitizeCNPJ(dto.CNPJ)
	if !utils.ValidateCNPJ(cnpj) {
		utils.BadRequest(w, "cnpj inválido")
		return
	}

	upd := models.Empresa{
		CNPJ:          cnpj,
		RazaoSocial:   dto.RazaoSocial,
		Endereco:      dto.Endereco,
		Telefone:      dto.Telefone,
		Email:         dto.Email,
		Porte:         dto.Porte,
		CNAEPrincipal: dto.CNAEPrincipal,
	}
	if err := h.Repo.Update(ctx, id, &upd); err != nil {
		if errors.Is(err, repository.ErrDuplicateCNPJ) {
			utils.WriteJSON(w, http.StatusConflict, map[string]string{"error": "já existe uma empresa com este cnpj"})
			return
		}
		utils.InternalError(w, err)
		return
	}

	// Retorna o doc atualizado
	e2, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"id": id})
		return
	}
	h.publishEvento("Edição", e2)
	utils.WriteJSON(w, http.StatusOK, e2)
}

func (h *EmpresaHandler) dashboard(w http.ResponseWriter, r *http.Request, id string) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	e, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		utils.NotFound(w, "Empresa não encontrada")
		return
	}

	docs, err := h.Docs.ContaPorStatus(ctx, id)
	if err != nil {
		utils.InternalError(w, err)
		return
	}
	lics, err := h.Lics.ContaPorStatus(ctx, id)
	if err != nil {
		utils.InternalError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, models.Dashboard{
		Empresa:    *e,
		Documentos: docs,
		Licitacoes: lics,
	})
}

func (h *EmpresaHandler) publishEvento(acao string, e *models.Empresa) {
	if h.Pub == nil || e == nil {
		return
	}
	nome := e.RazaoSocial
	if nome == "" {
		nome = e.CNPJ
	}
	msg := fmt.Sprintf("%s de EMPRESA %s", acao, nome)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = h.Pub.Publish(ctx, msg, broker.EventoHeaders(acao, "empresa", e.ID))
}
