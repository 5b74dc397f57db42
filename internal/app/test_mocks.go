package app

import (
	"context"
	"errors"

	"github.com/licitafacil/licitafacil/internal/client"
	"github.com/licitafacil/licitafacil/internal/models"
)

// apiMock segue o padrão de mocks por campo de função dos handlers.
type apiMock struct {
	BuscarEmpresaFn      func(ctx context.Context) (*models.Empresa, error)
	CriarEmpresaFn       func(ctx context.Context, p client.EmpresaPayload) (*models.Empresa, error)
	AtualizarEmpresaFn   func(ctx context.Context, id string, p client.EmpresaPayload) (*models.Empresa, error)
	DashboardFn          func(ctx context.Context, empresaID string) (*models.Dashboard, error)
	ListarDocumentosFn   func(ctx context.Context, empresaID string) ([]models.Documento, error)
	TiposDocumentoFn     func(ctx context.Context) ([]string, error)
	EnviarDocumentoFn    func(ctx context.Context, up client.UploadDocumento) (*models.Documento, error)
	ExcluirDocumentoFn   func(ctx context.Context, id string) error
	ListarLicitacoesFn   func(ctx context.Context, empresaID string) ([]models.Licitacao, error)
	StatusLicitacaoFn    func(ctx context.Context) ([]string, error)
	CriarLicitacaoFn     func(ctx context.Context, p client.LicitacaoPayload) (*models.Licitacao, error)
	AtualizarLicitacaoFn func(ctx context.Context, id string, p client.LicitacaoPayload) (*models.Licitacao, error)
	ExcluirLicitacaoFn   func(ctx context.Context, id string) error
}

func (m *apiMock) BuscarEmpresa(ctx context.Context) (*models.Empresa, error) {
	if m.BuscarEmpresaFn == nil {
		return nil, errors.New("BuscarEmpresaFn not set")
	}
	return m.BuscarEmpresaFn(ctx)
}
func (m *apiMock) CriarEmpresa(ctx context.Context, p client.EmpresaPayload) (*models.Empresa, error) {
	if m.CriarEmpresaFn == nil {
		return nil, errors.New("CriarEmpresaFn not set")
	}
	return m.CriarEmpresaFn(ctx, p)
}
func (m *apiMock) AtualizarEmpresa(ctx context.Context, id string, p client.EmpresaPayload) (*models.Empresa, error) {
	if m.AtualizarEmpresaFn == nil {
		return nil, errors.New("AtualizarEmpresaFn not set")
	}
	return m.AtualizarEmpresaFn(ctx, id, p)
}
func (m *apiMock) Dashboard(ctx context.Context, empresaID string) (*models.Dashboard, error) {
	if m.DashboardFn == nil {
		return nil, errors.New("DashboardFn not set")
	}
	return m.DashboardFn(ctx, empresaID)
}
func (m *apiMock) ListarDocumentos(ctx context.Context, empresaID string) ([]models.Documento, error) {
	if m.ListarDocumentosFn == nil {
		return nil, errors.New("ListarDocumentosFn not set")
	}
	return m.ListarDocumentosFn(ctx, empresaID)
}
func (m *apiMock) TiposDocumento(ctx context.Context) ([]string, error) {
	if m.TiposDocumentoFn == nil {
		return nil, errors.New("TiposDocumentoFn not set")
	}
	return m.TiposDocumentoFn(ctx)
}
func (m *apiMock) EnviarDocumento(ctx context.Context, up client.UploadDocumento) (*models.Documento, error) {
	if m.EnviarDocumentoFn == nil {
		return nil, errors.New("EnviarDocumentoFn not set")
	}
	return m.EnviarDocumentoFn(ctx, up)
}
func (m *apiMock) ExcluirDocumento(ctx context.Context, id string) error {
	if m.ExcluirDocumentoFn == nil {
		return errors.New("ExcluirDocumentoFn not set")
	}
	return m.ExcluirDocumentoFn(ctx, id)
}
func (m *apiMock) ListarLicitacoes(ctx context.Context, empresaID string) ([]models.Licitacao, error) {
	if m.ListarLicitacoesFn == nil {
		return nil, errors.New("ListarLicitacoesFn not set")
	}
	return m.ListarLicitacoesFn(ctx, empresaID)
}
func (m *apiMock) StatusLicitacao(ctx context.Context) ([]string, error) {
	if m.StatusLicitacaoFn == nil {
		return nil, errors.New("StatusLicitacaoFn not set")
	}
	return m.StatusLicitacaoFn(ctx)
}
func (m *apiMock) CriarLicitacao(ctx context.Context, p client.LicitacaoPayload) (*models.Licitacao, error) {
	if m.CriarLicitacaoFn == nil {
		return nil, errors.New("CriarLicitacaoFn not set")
	}
	return m.CriarLicitacaoFn(ctx, p)
}
func (m *apiMock) AtualizarLicitacao(ctx context.Context, id string, p client.LicitacaoPayload) (*models.Licitacao, error) {
	if m.AtualizarLicitacaoFn == nil {
		return nil, errors.New("AtualizarLicitacaoFn not set")
	}
	return m.AtualizarLicitacaoFn(ctx, id, p)
}
func (m *apiMock) ExcluirLicitacao(ctx context.Context, id string) error {
	if m.ExcluirLicitacaoFn == nil {
		return errors.New("ExcluirLicitacaoFn not set")
	}
	return m.ExcluirLicitacaoFn(ctx, id)
}
