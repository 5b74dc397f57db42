// Package app é o modelo de estado do cliente: como o estado local é
// semeado a partir do servidor e reconciliado depois de cada mutação.
// Nenhum tipo aqui fala HTTP; tudo passa pela interface API.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/licitafacil/licitafacil/internal/client"
	"github.com/licitafacil/licitafacil/internal/models"
)

// API é o que o núcleo precisa do consumidor REST (internal/client).
type API interface {
	BuscarEmpresa(ctx context.Context) (*models.Empresa, error)
	CriarEmpresa(ctx context.Context, p client.EmpresaPayload) (*models.Empresa, error)
	AtualizarEmpresa(ctx context.Context, id string, p client.EmpresaPayload) (*models.Empresa, error)
	Dashboard(ctx context.Context, empresaID string) (*models.Dashboard, error)
	ListarDocumentos(ctx context.Context, empresaID string) ([]models.Documento, error)
	TiposDocumento(ctx context.Context) ([]string, error)
	EnviarDocumento(ctx context.Context, up client.UploadDocumento) (*models.Documento, error)
	ExcluirDocumento(ctx context.Context, id string) error
	ListarLicitacoes(ctx context.Context, empresaID string) ([]models.Licitacao, error)
	StatusLicitacao(ctx context.Context) ([]string, error)
	CriarLicitacao(ctx context.Context, p client.LicitacaoPayload) (*models.Licitacao, error)
	AtualizarLicitacao(ctx context.Context, id string, p client.LicitacaoPayload) (*models.Licitacao, error)
	ExcluirLicitacao(ctx context.Context, id string) error
}

type Estado int

const (
	EstadoCarregando Estado = iota
	EstadoCadastro          // sem empresa: só o formulário de cadastro é alcançável
	EstadoOperacao          // empresa presente: abas liberadas
)

// Abas disponíveis quando a empresa existe.
var Abas = []string{"dashboard", "empresa", "documentos", "licitacoes"}

// Shell controla qual parte do sistema é alcançável. A existência da
// empresa é o único portão; não há caminho de volta para o cadastro.
type Shell struct {
	api     API
	log     *slog.Logger
	estado  Estado
	empresa *models.Empresa
}

func NewShell(api API, log *slog.Logger) *Shell {
	if log == nil {
		log = slog.Default()
	}
	return &Shell{api: api, log: log, estado: EstadoCarregando}
}

// Carregar faz a ÚNICA leitura inicial da empresa. Qualquer falha
// (rede, 404, status inesperado) degrada para o modo cadastro em vez
// de travar o sistema; só o transporte vai para o log.
func (s *Shell) Carregar(ctx context.Context) {
	e, err := s.api.BuscarEmpresa(ctx)
	if err != nil {
		if !errors.Is(err, client.ErrSemEmpresa) {
			s.log.Warn("empresa_load_falhou", "err", err)
		}
		s.estado = EstadoCadastro
		return
	}
	s.empresa = e
	s.estado = EstadoOperacao
}

func (s *Shell) Estado() Estado { return s.estado }

func (s *Shell) Empresa() *models.Empresa { return s.empresa }

// EmpresaSalva é o callback do formulário: é o único canal pelo qual o
// shell fica sabendo que a empresa passou a existir. Não refaz o fetch.
func (s *Shell) EmpresaSalva(e *models.Empresa) {
	if e == nil {
		return
	}
	s.empresa = e
	s.estado = EstadoOperacao
}

// AbasDisponiveis devolve nil enquanto não há empresa.
func (s *Shell) AbasDisponiveis() []string {
	if s.estado != EstadoOperacao {
		return nil
	}
	return Abas
}
