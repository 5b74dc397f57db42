package handlers

import (
	"context"
	"errors"
	"io"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/licitafacil/licitafacil/internal/models"
)

type empresaRepoMock struct {
	FirstFn   func(ctx context.Context) (*models.Empresa, error)
	GetByIDFn func(ctx context.Context, id string) (*models.Empresa, error)
	CreateFn  func(ctx context.Context, e *models.Empresa) (string, error)
	UpdateFn  func(ctx context.Context, id string, e *models.Empresa) error
}

func (m *empresaRepoMock) First(ctx context.Context) (*models.Empresa, error) {
	if m.FirstFn == nil {
		return nil, errors.New("FirstFn not set")
	}
	return m.FirstFn(ctx)
}
func (m *empresaRepoMock) GetByID(ctx context.Context, id string) (*models.Empresa, error) {
	if m.GetByIDFn == nil {
		return nil, errors.New("GetByIDFn not set")
	}
	return m.GetByIDFn(ctx, id)
}
func (m *empresaRepoMock) Create(ctx context.Context, e *models.Empresa) (string, error) {
	if m.CreateFn == nil {
		return "", errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, e)
}
func (m *empresaRepoMock) Update(ctx context.Context, id string, e *models.Empresa) error {
	if m.UpdateFn == nil {
		return errors.New("UpdateFn not set")
	}
	return m.UpdateFn(ctx, id, e)
}

type documentoRepoMock struct {
	CreateFn         func(ctx context.Context, d *models.Documento) (string, error)
	GetByIDFn        func(ctx context.Context, id string) (*models.Documento, error)
	ListByEmpresaFn  func(ctx context.Context, empresaID string) ([]models.Documento, error)
	ListAlertasFn    func(ctx context.Context, empresaID string) ([]models.Documento, error)
	DeleteFn         func(ctx context.Context, id string) error
	ContaPorStatusFn func(ctx context.Context, empresaID string) (models.ResumoDocumentos, error)
}

func (m *documentoRepoMock) Create(ctx context.Context, d *models.Documento) (string, error) {
	if m.CreateFn == nil {
		return "", errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, d)
}
func (m *documentoRepoMock) GetByID(ctx context.Context, id string) (*models.Documento, error) {
	if m.GetByIDFn == nil {
		return nil, errors.New("GetByIDFn not set")
	}
	return m.GetByIDFn(ctx, id)
}
func (m *documentoRepoMock) ListByEmpresa(ctx context.Context, empresaID string) ([]models.Documento, error) {
	if m.ListByEmpresaFn == nil {
		return nil, errors.New("ListByEmpresaFn not set")
	}
	return m.ListByEmpresaFn(ctx, empresaID)
}
func (m *documentoRepoMock) ListAlertas(ctx context.Context, empresaID string) ([]models.Documento, error) {
	if m.ListAlertasFn == nil {
		return nil, errors.New("ListAlertasFn not set")
	}
	return m.ListAlertasFn(ctx, empresaID)
}
func (m *documentoRepoMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return errors.New("DeleteFn not set")
	}
	return m.DeleteFn(ctx, id)
}
func (m *documentoRepoMock) ContaPorStatus(ctx context.Context, empresaID string) (models.ResumoDocumentos, error) {
	if m.ContaPorStatusFn == nil {
		return models.ResumoDocumentos{}, errors.New("ContaPorStatusFn not set")
	}
	return m.ContaPorStatusFn(ctx, empresaID)
}

type licitacaoRepoMock struct {
	CreateFn         func(ctx context.Context, l *models.Licitacao) (string, error)
	GetByIDFn        func(ctx context.Context, id string) (*models.Licitacao, error)
	ListByEmpresaFn  func(ctx context.Context, empresaID string) ([]models.Licitacao, error)
	UpdateFn         func(ctx context.Context, id string, l *models.Licitacao) error
	DeleteFn         func(ctx context.Context, id string) error
	ContaPorStatusFn func(ctx context.Context, empresaID string) (models.ResumoLicitacoes, error)
}

func (m *licitacaoRepoMock) Create(ctx context.Context, l *models.Licitacao) (string, error) {
	if m.CreateFn == nil {
		return "", errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, l)
}
func (m *licitacaoRepoMock) GetByID(ctx context.Context, id string) (*models.Licitacao, error) {
	if m.GetByIDFn == nil {
		return nil, errors.New("GetByIDFn not set")
	}
	return m.GetByIDFn(ctx, id)
}
func (m *licitacaoRepoMock) ListByEmpresa(ctx context.Context, empresaID string) ([]models.Licitacao, error) {
	if m.ListByEmpresaFn == nil {
		return nil, errors.New("ListByEmpresaFn not set")
	}
	return m.ListByEmpresaFn(ctx, empresaID)
}
func (m *licitacaoRepoMock) Update(ctx context.Context, id string, l *models.Licitacao) error {
	if m.UpdateFn == nil {
		return errors.New("UpdateFn not set")
	}
	return m.UpdateFn(ctx, id, l)
}
func (m *licitacaoRepoMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return errors.New("DeleteFn not set")
	}
	return m.DeleteFn(ctx, id)
}
func (m *licitacaoRepoMock) ContaPorStatus(ctx context.Context, empresaID string) (models.ResumoLicitacoes, error) {
	if m.ContaPorStatusFn == nil {
		return models.ResumoLicitacoes{}, errors.New("ContaPorStatusFn not set")
	}
	return m.ContaPorStatusFn(ctx, empresaID)
}

type pubMock struct {
	PublishFn func(ctx context.Context, body string, headers amqp.Table) error
	CloseFn   func() error
}

func (p *pubMock) Publish(ctx context.Context, body string, headers amqp.Table) error {
	if p.PublishFn == nil {
		return nil
	}
	return p.PublishFn(ctx, body, headers)
}
func (p *pubMock) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}

type storeMock struct {
	PutFn        func(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	DeleteFn     func(ctx context.Context, key string) error
	PresignGetFn func(ctx context.Context, key string, expiry time.Duration) (string, error)
}

func (s *storeMock) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if s.PutFn == nil {
		return nil
	}
	return s.PutFn(ctx, key, r, size, contentType)
}
func (s *storeMock) Delete(ctx context.Context, key string) error {
	if s.DeleteFn == nil {
		return nil
	}
	return s.DeleteFn(ctx, key)
}
func (s *storeMock) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if s.PresignGetFn == nil {
		return "", nil
	}
	return s.PresignGetFn(ctx, key, expiry)
}
