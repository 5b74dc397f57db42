package app

import (
	"context"
	"errors"

	"github.com/licitafacil/licitafacil/internal/client"
	"github.com/licitafacil/licitafacil/internal/models"
	"github.com/licitafacil/licitafacil/internal/utils"
)

// LicitacaoCampos espelha o formulário; datas como string AAAA-MM-DD.
type LicitacaoCampos struct {
	NumeroEdital   string
	OrgaoLicitante string
	Objeto         string
	DataAbertura   string
	LinkEdital     string
	Status         string
	Observacoes    string
}

// LicitacaoRegistry: um único formulário serve criação e edição,
// decidido pelo modo explícito (nunca os dois ao mesmo tempo).
type LicitacaoRegistry struct {
	api       API
	empresaID string

	Licitacoes    []models.Licitacao
	StatusOptions []string

	Campos     LicitacaoCampos
	modo       Modo
	editandoID string
	FormAberto bool

	Confirmar func(msg string) bool

	enviando bool
}

func NewLicitacaoRegistry(api API, empresaID string) *LicitacaoRegistry {
	r := &LicitacaoRegistry{api: api, empresaID: empresaID}
	r.Resetar()
	return r
}

func (r *LicitacaoRegistry) Modo() Modo { return r.modo }

func (r *LicitacaoRegistry) EditandoID() string { return r.editandoID }

// TrocarEmpresa descarta a coleção local ao mudar o escopo.
func (r *LicitacaoRegistry) TrocarEmpresa(empresaID string) {
	if empresaID == r.empresaID {
		return
	}
	r.empresaID = empresaID
	r.Licitacoes = nil
	r.Resetar()
}

func (r *LicitacaoRegistry) Atualizar(ctx context.Context) error {
	list, err := r.api.ListarLicitacoes(ctx, r.empresaID)
	if err != nil {
		return err
	}
	r.Licitacoes = list
	return nil
}

func (r *LicitacaoRegistry) CarregarStatus(ctx context.Context) error {
	status, err := r.api.StatusLicitacao(ctx)
	if err != nil {
		return err
	}
	r.StatusOptions = status
	return nil
}

// Resetar volta ao estado de criação: campos em branco e status padrão.
func (r *LicitacaoRegistry) Resetar() {
	r.Campos = LicitacaoCampos{Status: models.StatusLicEmAndamento}
	r.modo = ModoCriacao
	r.editandoID = ""
	r.FormAberto = false
}

// AbrirCriacao abre o formulário em branco.
func (r *LicitacaoRegistry) AbrirCriacao() {
	r.Resetar()
	r.FormAberto = true
}

// CarregarParaEdicao copia TODOS os campos do registro para o formulário.
// Opcional ausente vira string vazia; nenhum campo fica "solto".
func (r *LicitacaoRegistry) CarregarParaEdicao(l models.Licitacao) {
	r.Campos = LicitacaoCampos{
		NumeroEdital:   l.NumeroEdital,
		OrgaoLicitante: l.OrgaoLicitante,
		Objeto:         l.Objeto,
		DataAbertura:   utils.FormatData(l.DataAbertura),
		LinkEdital:     l.LinkEdital,
		Status:         l.Status,
		Observacoes:    l.Observacoes,
	}
	r.modo = ModoEdicao
	r.editandoID = l.ID
	r.FormAberto = true
}

func (r *LicitacaoRegistry) Validar() error {
	if r.Campos.NumeroEdital == "" {
		return errors.New("número do edital é obrigatório")
	}
	if r.Campos.OrgaoLicitante == "" {
		return errors.New("órgão licitante é obrigatório")
	}
	if r.Campos.Objeto == "" {
		return errors.New("objeto é obrigatório")
	}
	return nil
}

// Payload monta o corpo enviado; sempre o registro completo com o
// empresa_id do escopo (round-trip de todos os campos editáveis).
func (r *LicitacaoRegistry) Payload() client.LicitacaoPayload {
	return client.LicitacaoPayload{
		EmpresaID:      r.empresaID,
		NumeroEdital:   r.Campos.NumeroEdital,
		OrgaoLicitante: r.Campos.OrgaoLicitante,
		Objeto:         r.Campos.Objeto,
		DataAbertura:   r.Campos.DataAbertura,
		LinkEdital:     r.Campos.LinkEdital,
		Status:         r.Campos.Status,
		Observacoes:    r.Campos.Observacoes,
	}
}

// Enviar cria ou atualiza conforme o modo. Sucesso fecha o formulário,
// volta para criação e refaz a lista; falha preserva tudo.
func (r *LicitacaoRegistry) Enviar(ctx context.Context) error {
	if r.enviando {
		return ErrEnvioEmAndamento
	}
	if err := r.Validar(); err != nil {
		return err
	}
	r.enviando = true
	defer func() { r.enviando = false }()

	var err error
	if r.modo == ModoEdicao {
		_, err = r.api.AtualizarLicitacao(ctx, r.editandoID, r.Payload())
	} else {
		_, err = r.api.CriarLicitacao(ctx, r.Payload())
	}
	if err != nil {
		return err
	}

	r.Resetar()
	return r.Atualizar(ctx)
}

// Excluir segue a mesma regra dos documentos: confirmação antes da rede,
// nada otimista, refetch no sucesso.
func (r *LicitacaoRegistry) Excluir(ctx context.Context, id string) error {
	if r.Confirmar != nil && !r.Confirmar("Tem certeza que deseja excluir esta licitação?") {
		return nil
	}
	if err := r.api.ExcluirLicitacao(ctx, id); err != nil {
		return err
	}
	return r.Atualizar(ctx)
}
