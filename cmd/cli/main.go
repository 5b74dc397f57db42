package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/licitafacil/licitafacil/internal/app"
	"github.com/licitafacil/licitafacil/internal/client"
	"github.com/licitafacil/licitafacil/internal/config"
	"github.com/licitafacil/licitafacil/internal/models"
	"github.com/licitafacil/licitafacil/internal/utils"
)

// cmd/cli/main.go - cliente de terminal do LicitaFácil.
func main() {
	cfg := config.LoadCLIConfig()
	_ = config.InitLogger(cfg.LogLevel)

	api := client.New(cfg.APIBase)
	shell := app.NewShell(api, slog.Default())

	ctx := context.Background()
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("LicitaFácil - gestão de licitações para pequenos negócios")
	fmt.Println("Servidor:", cfg.APIBase)
	fmt.Println()

	shell.Carregar(ctx)

	// Sem empresa só existe um caminho: o cadastro.
	if shell.Estado() == app.EstadoCadastro {
		fmt.Println("Nenhuma empresa cadastrada. Vamos começar pelo cadastro.")
		form := app.NewEmpresaForm(api, shell.EmpresaSalva)
		for shell.Estado() != app.EstadoOperacao {
			if err := preencherEmpresa(in, form); err != nil {
				fmt.Println("encerrado")
				return
			}
			if err := form.Enviar(ctx); err != nil {
				fmt.Println("Erro:", client.Mensagem(err))
				continue
			}
			fmt.Println("Empresa cadastrada com sucesso.")
		}
	}

	empresa := shell.Empresa()
	resumo := app.NewResumo(api, empresa.ID)
	formEmpresa := app.NewEmpresaForm(api, shell.EmpresaSalva)
	formEmpresa.CarregarExistente(empresa)
	docs := app.NewDocumentoRegistry(api, empresa.ID)
	docs.Confirmar = func(msg string) bool { return confirmar(in, msg) }
	lics := app.NewLicitacaoRegistry(api, empresa.ID)
	lics.Confirmar = func(msg string) bool { return confirmar(in, msg) }

	for {
		fmt.Println()
		fmt.Println("Abas:", strings.Join(shell.AbasDisponiveis(), " | "), "| sair")
		aba, ok := ler(in, "> ")
		if !ok {
			return
		}
		switch strings.TrimSpace(aba) {
		case "dashboard":
			abaDashboard(ctx, resumo)
		case "empresa":
			abaEmpresa(ctx, in, formEmpresa)
		case "documentos":
			abaDocumentos(ctx, in, docs)
		case "licitacoes":
			abaLicitacoes(ctx, in, lics)
		case "sair", "q":
			return
		default:
			fmt.Println("aba desconhecida")
		}
	}
}

func abaDashboard(ctx context.Context, r *app.Resumo) {
	r.Atualizar(ctx)
	if r.Estado() != app.ResumoPopulado {
		fmt.Println("Sem dados no momento.")
		return
	}
	d := r.Dados
	fmt.Println()
	fmt.Println("Empresa:", d.Empresa.RazaoSocial, "-", utils.FormatCNPJ(d.Empresa.CNPJ))
	fmt.Printf("Documentos: %d (válidos %d, a vencer %d, vencidos %d)\n",
		d.Documentos.Total, d.Documentos.Validos, d.Documentos.ProximoVencimento, d.Documentos.Vencidos)
	fmt.Printf("Licitações: %d (em andamento %d, vencidas %d, perdidas %d)\n",
		d.Licitacoes.Total, d.Licitacoes.EmAndamento, d.Licitacoes.Vencidas, d.Licitacoes.Perdidas)
	fmt.Println("Situação geral:", r.StatusGeral())
	for _, a := range r.Alertas() {
		prefixo := "[aviso]"
		if a.Nivel == app.AlertaUrgente {
			prefixo = "[URGENTE]"
		}
		fmt.Println(prefixo, a.Mensagem)
	}
}

func abaEmpresa(ctx context.Context, in *bufio.Scanner, f *app.EmpresaForm) {
	fmt.Println()
	fmt.Println("Dados atuais (Enter mantém o valor):")
	if err := preencherEmpresa(in, f); err != nil {
		return
	}
	if err := f.Enviar(ctx); err != nil {
		fmt.Println("Erro:", client.Mensagem(err))
		return
	}
	fmt.Println("Dados salvos.")
}

// preencherEmpresa coleta os campos; entrada vazia preserva o que já está
// no formulário. O CNPJ passa pela máscara a cada entrada.
func preencherEmpresa(in *bufio.Scanner, f *app.EmpresaForm) error {
	var ok bool
	if f.Campos.RazaoSocial, ok = lerOu(in, "Razão social", f.Campos.RazaoSocial); !ok {
		return errAbortado
	}
	cnpj, ok := lerOu(in, "CNPJ", f.Campos.CNPJ)
	if !ok {
		return errAbortado
	}
	f.DigitarCNPJ(cnpj)
	if f.Campos.Endereco, ok = lerOu(in, "Endereço", f.Campos.Endereco); !ok {
		return errAbortado
	}
	if f.Campos.Telefone, ok = lerOu(in, "Telefone", f.Campos.Telefone); !ok {
		return errAbortado
	}
	if f.Campos.Email, ok = lerOu(in, "E-mail", f.Campos.Email); !ok {
		return errAbortado
	}
	if f.Campos.Porte, ok = lerOu(in, "Porte (MEI/ME/EPP)", f.Campos.Porte); !ok {
		return errAbortado
	}
	if f.Campos.CNAEPrincipal, ok = lerOu(in, "CNAE principal", f.Campos.CNAEPrincipal); !ok {
		return errAbortado
	}
	return nil
}

func abaDocumentos(ctx context.Context, in *bufio.Scanner, r *app.DocumentoRegistry) {
	if err := r.Atualizar(ctx); err != nil {
		fmt.Println("Erro:", client.Mensagem(err))
		return
	}
	if len(r.Tipos) == 0 {
		if err := r.CarregarTipos(ctx); err != nil {
			fmt.Println("Erro:", client.Mensagem(err))
		}
	}

	fmt.Println()
	if len(r.Documentos) == 0 {
		fmt.Println("Nenhum documento enviado.")
	}
	for i, d := range r.Documentos {
		b := app.BadgeDocumento(d.Status)
		atencao := ""
		if app.PrecisaAtencao(d) {
			atencao = " (!)"
		}
		fmt.Printf("%2d. %-30s %-22s validade=%s%s\n",
			i+1, d.Tipo, "["+b.Rotulo+"]", utils.FormatData(d.DataValidade), atencao)
	}

	fmt.Println()
	fmt.Println("Ações: enviar | excluir <n> | voltar")
	acao, ok := ler(in, "> ")
	if !ok {
		return
	}
	campos := strings.Fields(acao)
	if len(campos) == 0 {
		return
	}
	switch campos[0] {
	case "enviar":
		enviarDocumento(ctx, in, r)
	case "excluir":
		if len(campos) < 2 {
			fmt.Println("informe o número do documento")
			return
		}
		n, err := strconv.Atoi(campos[1])
		if err != nil || n < 1 || n > len(r.Documentos) {
			fmt.Println("número inválido")
			return
		}
		if err := r.Excluir(ctx, r.Documentos[n-1].ID); err != nil {
			fmt.Println("Erro:", client.Mensagem(err))
			return
		}
	}
}

func enviarDocumento(ctx context.Context, in *bufio.Scanner, r *app.DocumentoRegistry) {
	fmt.Println("Tipos:", strings.Join(r.Tipos, ", "))
	var ok bool
	if r.Form.Tipo, ok = ler(in, "Tipo: "); !ok {
		return
	}
	caminho, ok := ler(in, "Arquivo (caminho): ")
	if !ok {
		return
	}
	if caminho != "" {
		conteudo, err := os.ReadFile(caminho)
		if err != nil {
			fmt.Println("não consegui ler o arquivo:", err)
			return
		}
		r.Form.Arquivo = conteudo
		r.Form.NomeArquivo = filepath.Base(caminho)
	}
	if r.Form.DataEmissao, ok = ler(in, "Data de emissão (AAAA-MM-DD, opcional): "); !ok {
		return
	}
	if r.Form.DataValidade, ok = ler(in, "Data de validade (AAAA-MM-DD, opcional): "); !ok {
		return
	}
	if err := r.Enviar(ctx); err != nil {
		fmt.Println("Erro:", client.Mensagem(err))
		return
	}
	fmt.Println("Documento enviado.")
}

func abaLicitacoes(ctx context.Context, in *bufio.Scanner, r *app.LicitacaoRegistry) {
	if err := r.Atualizar(ctx); err != nil {
		fmt.Println("Erro:", client.Mensagem(err))
		return
	}
	if len(r.StatusOptions) == 0 {
		if err := r.CarregarStatus(ctx); err != nil {
			fmt.Println("Erro:", client.Mensagem(err))
		}
	}

	fmt.Println()
	if len(r.Licitacoes) == 0 {
		fmt.Println("Nenhuma licitação registrada.")
	}
	for i, l := range r.Licitacoes {
		b := app.BadgeLicitacao(l.Status)
		fmt.Printf("%2d. %-16s %-30s %-16s abertura=%s\n",
			i+1, l.NumeroEdital, l.OrgaoLicitante, "["+b.Rotulo+"]", utils.FormatData(l.DataAbertura))
	}

	fmt.Println()
	fmt.Println("Ações: nova | editar <n> | excluir <n> | voltar")
	acao, ok := ler(in, "> ")
	if !ok {
		return
	}
	campos := strings.Fields(acao)
	if len(campos) == 0 {
		return
	}
	switch campos[0] {
	case "nova":
		r.AbrirCriacao()
		editarLicitacao(ctx, in, r)
	case "editar":
		l, ok := escolher(r.Licitacoes, campos)
		if !ok {
			fmt.Println("número inválido")
			return
		}
		r.CarregarParaEdicao(l)
		editarLicitacao(ctx, in, r)
	case "excluir":
		l, ok := escolher(r.Licitacoes, campos)
		if !ok {
			fmt.Println("número inválido")
			return
		}
		if err := r.Excluir(ctx, l.ID); err != nil {
			fmt.Println("Erro:", client.Mensagem(err))
			return
		}
	}
}

func editarLicitacao(ctx context.Context, in *bufio.Scanner, r *app.LicitacaoRegistry) {
	var ok bool
	if r.Campos.NumeroEdital, ok = lerOu(in, "Número do edital", r.Campos.NumeroEdital); !ok {
		return
	}
	if r.Campos.OrgaoLicitante, ok = lerOu(in, "Órgão licitante", r.Campos.OrgaoLicitante); !ok {
		return
	}
	if r.Campos.Objeto, ok = lerOu(in, "Objeto", r.Campos.Objeto); !ok {
		return
	}
	if r.Campos.DataAbertura, ok = lerOu(in, "Data de abertura (AAAA-MM-DD)", r.Campos.DataAbertura); !ok {
		return
	}
	if r.Campos.LinkEdital, ok = lerOu(in, "Link do edital", r.Campos.LinkEdital); !ok {
		return
	}
	if r.Campos.Status, ok = lerOu(in, "Status ("+strings.Join(r.StatusOptions, "/")+")", r.Campos.Status); !ok {
		return
	}
	if r.Campos.Observacoes, ok = lerOu(in, "Observações", r.Campos.Observacoes); !ok {
		return
	}
	if err := r.Enviar(ctx); err != nil {
		fmt.Println("Erro:", client.Mensagem(err))
		return
	}
	fmt.Println("Licitação salva.")
}

func escolher(lics []models.Licitacao, campos []string) (models.Licitacao, bool) {
	if len(campos) < 2 {
		return models.Licitacao{}, false
	}
	n, err := strconv.Atoi(campos[1])
	if err != nil || n < 1 || n > len(lics) {
		return models.Licitacao{}, false
	}
	return lics[n-1], true
}

var errAbortado = fmt.Errorf("entrada encerrada")

func ler(in *bufio.Scanner, prompt string) (string, bool) {
	fmt.Print(prompt)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

// lerOu mantém o valor atual quando o usuário só aperta Enter.
func lerOu(in *bufio.Scanner, label, atual string) (string, bool) {
	sufixo := ""
	if atual != "" {
		sufixo = " [" + atual + "]"
	}
	v, ok := ler(in, label+sufixo+": ")
	if !ok {
		return atual, false
	}
	if v == "" {
		return atual, true
	}
	return v, true
}

func confirmar(in *bufio.Scanner, msg string) bool {
	v, ok := ler(in, msg+" (s/n): ")
	if !ok {
		return false
	}
	v = strings.ToLower(v)
	return v == "s" || v == "sim" || v == "y"
}
