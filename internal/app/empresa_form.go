package app

import (
	"context"
	"errors"

	"github.com/licitafacil/licitafacil/internal/client"
	"github.com/licitafacil/licitafacil/internal/models"
	"github.com/licitafacil/licitafacil/internal/utils"
)

// Modo do formulário como variante explícita, não como ponteiro-nulo.
// As duas transições: salvar com sucesso entra em edição (empresa) ou
// volta para criação (licitação); clicar em editar entra em edição.
type Modo int

const (
	ModoCriacao Modo = iota
	ModoEdicao
)

var ErrEnvioEmAndamento = errors.New("já existe um envio em andamento")

// EmpresaCampos espelha os inputs do formulário; tudo string, como na tela.
type EmpresaCampos struct {
	RazaoSocial   string
	CNPJ          string // sempre mascarado (XX.XXX.XXX/XXXX-XX progressivo)
	Endereco      string
	Telefone      string
	Email         string
	Porte         string
	CNAEPrincipal string
}

// EmpresaForm cria ou atualiza a empresa. O modo é decidido pelo
// registro carregado no mount; depois do primeiro sucesso o formulário
// permanece em edição.
type EmpresaForm struct {
	api      API
	aoSalvar func(*models.Empresa) // canal único para o shell

	Campos    EmpresaCampos
	modo      Modo
	empresaID string
	enviando  bool
}

func NewEmpresaForm(api API, aoSalvar func(*models.Empresa)) *EmpresaForm {
	return &EmpresaForm{api: api, aoSalvar: aoSalvar, modo: ModoCriacao}
}

func (f *EmpresaForm) Modo() Modo { return f.modo }

func (f *EmpresaForm) Enviando() bool { return f.enviando }

// CarregarExistente semeia o formulário com o registro do servidor;
// campos opcionais ausentes viram string vazia, nunca "indefinido".
func (f *EmpresaForm) CarregarExistente(e *models.Empresa) {
	if e == nil {
		return
	}
	f.Campos = EmpresaCampos{
		RazaoSocial:   e.RazaoSocial,
		CNPJ:          utils.FormatCNPJ(e.CNPJ),
		Endereco:      e.Endereco,
		Telefone:      e.Telefone,
		Email:         e.Email,
		Porte:         e.Porte,
		CNAEPrincipal: e.CNAEPrincipal,
	}
	f.empresaID = e.ID
	f.modo = ModoEdicao
}

// DigitarCNPJ normaliza a cada tecla: mantém só dígitos e reaplica a
// máscara progressiva. Idempotente sobre a própria saída.
func (f *EmpresaForm) DigitarCNPJ(texto string) {
	f.Campos.CNPJ = utils.FormatCNPJ(texto)
}

// Validar cobre os obrigatórios antes de qualquer rede.
func (f *EmpresaForm) Validar() error {
	if f.Campos.RazaoSocial == "" {
		return errors.New("razão social é obrigatória")
	}
	if f.Campos.CNPJ == "" {
		return errors.New("cnpj é obrigatório")
	}
	if f.Campos.Porte == "" {
		return errors.New("porte é obrigatório")
	}
	return nil
}

// Enviar cria ou atualiza conforme o modo. No sucesso do primeiro
// cadastro, o callback leva a empresa (com id do servidor) ao shell.
// Falha devolve a mensagem do servidor como veio; nada de retry.
func (f *EmpresaForm) Enviar(ctx context.Context) error {
	if f.enviando {
		return ErrEnvioEmAndamento
	}
	if err := f.Validar(); err != nil {
		return err
	}
	f.enviando = true
	defer func() { f.enviando = false }()

	payload := client.EmpresaPayload{
		RazaoSocial:   f.Campos.RazaoSocial,
		CNPJ:          f.Campos.CNPJ,
		Endereco:      f.Campos.Endereco,
		Telefone:      f.Campos.Telefone,
		Email:         f.Campos.Email,
		Porte:         f.Campos.Porte,
		CNAEPrincipal: f.Campos.CNAEPrincipal,
	}

	var (
		e   *models.Empresa
		err error
	)
	if f.modo == ModoEdicao {
		e, err = f.api.AtualizarEmpresa(ctx, f.empresaID, payload)
	} else {
		e, err = f.api.CriarEmpresa(ctx, payload)
	}
	if err != nil {
		return err
	}

	f.CarregarExistente(e)
	if f.aoSalvar != nil {
		f.aoSalvar(e)
	}
	return nil
}
