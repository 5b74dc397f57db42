package app

import (
	"bytes"
	"context"
	"errors"

	"github.com/licitafacil/licitafacil/internal/client"
	"github.com/licitafacil/licitafacil/internal/models"
)

// ErrValidacaoLocal bloqueia o envio antes de qualquer chamada de rede.
var ErrValidacaoLocal = errors.New("selecione um arquivo e o tipo de documento")

// UploadForm espelha o formulário de upload. Arquivo nil = nada escolhido
// no seletor nativo.
type UploadForm struct {
	Tipo         string
	DataEmissao  string // AAAA-MM-DD ou vazio
	DataValidade string
	NomeArquivo  string
	Arquivo      []byte
}

func (u *UploadForm) limpar() {
	*u = UploadForm{}
}

// DocumentoRegistry mantém a coleção local de documentos de UMA empresa.
// A coleção nunca é editada por palpite: toda mutação é seguida de um
// refetch completo antes de o usuário ver qualquer coisa, porque o status
// vem do servidor e não dá para inseri-lo otimisticamente.
type DocumentoRegistry struct {
	api       API
	empresaID string

	Documentos []models.Documento
	Tipos      []string
	Form       UploadForm

	// Confirmar pergunta antes de excluir; nil = sempre sim.
	Confirmar func(msg string) bool

	enviando bool
}

func NewDocumentoRegistry(api API, empresaID string) *DocumentoRegistry {
	return &DocumentoRegistry{api: api, empresaID: empresaID}
}

// TrocarEmpresa descarta a coleção local; nada de cache entre empresas.
func (r *DocumentoRegistry) TrocarEmpresa(empresaID string) {
	if empresaID == r.empresaID {
		return
	}
	r.empresaID = empresaID
	r.Documentos = nil
}

// Atualizar refaz a lista inteira a partir do servidor.
func (r *DocumentoRegistry) Atualizar(ctx context.Context) error {
	docs, err := r.api.ListarDocumentos(ctx, r.empresaID)
	if err != nil {
		return err
	}
	r.Documentos = docs
	return nil
}

// CarregarTipos busca o vocabulário aberto de tipos no servidor.
func (r *DocumentoRegistry) CarregarTipos(ctx context.Context) error {
	tipos, err := r.api.TiposDocumento(ctx)
	if err != nil {
		return err
	}
	r.Tipos = tipos
	return nil
}

// Enviar faz o upload. Sem tipo ou sem arquivo a submissão é rejeitada
// localmente (nenhuma chamada sai). No sucesso o formulário é limpo,
// inclusive o seletor de arquivo, e a lista refeita; na falha o
// formulário fica como está para correção.
func (r *DocumentoRegistry) Enviar(ctx context.Context) error {
	if r.enviando {
		return ErrEnvioEmAndamento
	}
	if r.Form.Tipo == "" || r.Form.Arquivo == nil {
		return ErrValidacaoLocal
	}
	r.enviando = true
	defer func() { r.enviando = false }()

	_, err := r.api.EnviarDocumento(ctx, client.UploadDocumento{
		EmpresaID:    r.empresaID,
		Tipo:         r.Form.Tipo,
		DataEmissao:  r.Form.DataEmissao,
		DataValidade: r.Form.DataValidade,
		NomeArquivo:  r.Form.NomeArquivo,
		Conteudo:     bytes.NewReader(r.Form.Arquivo),
	})
	if err != nil {
		return err
	}

	r.Form.limpar()
	return r.Atualizar(ctx)
}

// Excluir pede confirmação antes de qualquer rede; recusa não dispara
// nada e a lista fica intacta. Sem remoção otimista: sucesso → refetch.
func (r *DocumentoRegistry) Excluir(ctx context.Context, id string) error {
	if r.Confirmar != nil && !r.Confirmar("Tem certeza que deseja excluir este documento?") {
		return nil
	}
	if err := r.api.ExcluirDocumento(ctx, id); err != nil {
		return err
	}
	return r.Atualizar(ctx)
}
