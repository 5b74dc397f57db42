// Package client consome o contrato REST da API. É a única camada que
// fala HTTP no cliente de terminal: o restante (internal/app) trabalha
// em cima destes métodos tipados.
//
// Política de falhas, na ordem em que podem acontecer:
//   - falha de transporte: o erro sobe como veio do http.Client;
//   - não-2xx com corpo {"error": msg}: a mensagem do servidor sobe
//     textualmente via *ErroAPI;
//   - não-2xx sem corpo parseável: *ErroAPI com mensagem genérica.
//
// Nunca há retry nem timeout configurado; cada tentativa é terminal e
// depende do transporte para sinalizar falha.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/licitafacil/licitafacil/internal/models"
)

// MsgErroGenerico cobre falhas sem mensagem estruturada do servidor.
const MsgErroGenerico = "erro inesperado no servidor"

var ErrSemEmpresa = errors.New("nenhuma empresa cadastrada")

// ErroAPI é um não-2xx do servidor; Mensagem é exibida ao usuário como veio.
type ErroAPI struct {
	StatusCode int
	Mensagem   string
}

func (e *ErroAPI) Error() string { return e.Mensagem }

// Mensagem extrai o texto a exibir para qualquer falha do cliente:
// mensagem do servidor quando estruturada, genérica caso contrário.
func Mensagem(err error) string {
	var ae *ErroAPI
	if errors.As(err, &ae) {
		return ae.Mensagem
	}
	return MsgErroGenerico
}

type Client struct {
	base string
	http *http.Client
}

func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{}, // sem timeout, de propósito
	}
}

type EmpresaPayload struct {
	RazaoSocial   string `json:"razao_social"`
	CNPJ          string `json:"cnpj"`
	Endereco      string `json:"endereco"`
	Telefone      string `json:"telefone"`
	Email         string `json:"email"`
	Porte         string `json:"porte"`
	CNAEPrincipal string `json:"cnae_principal"`
}

type LicitacaoPayload struct {
	EmpresaID      string `json:"empresa_id"`
	NumeroEdital   string `json:"numero_edital"`
	OrgaoLicitante string `json:"orgao_licitante"`
	Objeto         string `json:"objeto"`
	DataAbertura   string `json:"data_abertura"`
	LinkEdital     string `json:"link_edital"`
	Status         string `json:"status"`
	Observacoes    string `json:"observacoes"`
}

// UploadDocumento é o corpo multipart de POST /api/documentos.
type UploadDocumento struct {
	EmpresaID    string
	Tipo         string
	DataEmissao  string // AAAA-MM-DD ou vazio
	DataValidade string
	NomeArquivo  string
	Conteudo     io.Reader
}

// BuscarEmpresa devolve ErrSemEmpresa quando o servidor responde 404.
func (c *Client) BuscarEmpresa(ctx context.Context) (*models.Empresa, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/empresa", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrSemEmpresa
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeErro(resp)
	}
	var e models.Empresa
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) CriarEmpresa(ctx context.Context, p EmpresaPayload) (*models.Empresa, error) {
	var e models.Empresa
	if err := c.sendJSON(ctx, http.MethodPost, "/api/empresa", p, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) AtualizarEmpresa(ctx context.Context, id string, p EmpresaPayload) (*models.Empresa, error) {
	var e models.Empresa
	if err := c.sendJSON(ctx, http.MethodPut, "/api/empresa/"+url.PathEscape(id), p, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) Dashboard(ctx context.Context, empresaID string) (*models.Dashboard, error) {
	var d models.Dashboard
	if err := c.getJSON(ctx, "/api/empresa/"+url.PathEscape(empresaID)+"/dashboard", &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) ListarDocumentos(ctx context.Context, empresaID string) ([]models.Documento, error) {
	var list []models.Documento
	if err := c.getJSON(ctx, "/api/documentos?empresa_id="+url.QueryEscape(empresaID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) TiposDocumento(ctx context.Context) ([]string, error) {
	var tipos []string
	if err := c.getJSON(ctx, "/api/documentos/tipos", &tipos); err != nil {
		return nil, err
	}
	return tipos, nil
}

func (c *Client) EnviarDocumento(ctx context.Context, up UploadDocumento) (*models.Documento, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", up.NomeArquivo)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, up.Conteudo); err != nil {
		return nil, err
	}
	campos := map[string]string{
		"empresa_id": up.EmpresaID,
		"tipo":       up.Tipo,
	}
	// datas só entram quando preenchidas, como no formulário original
	if up.DataEmissao != "" {
		campos["data_emissao"] = up.DataEmissao
	}
	if up.DataValidade != "" {
		campos["data_validade"] = up.DataValidade
	}
	for k, v := range campos {
		if err := mw.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/documentos", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeErro(resp)
	}
	var d models.Documento
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) ExcluirDocumento(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/documentos/"+url.PathEscape(id))
}

func (c *Client) ListarLicitacoes(ctx context.Context, empresaID string) ([]models.Licitacao, error) {
	var list []models.Licitacao
	if err := c.getJSON(ctx, "/api/licitacoes?empresa_id="+url.QueryEscape(empresaID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) StatusLicitacao(ctx context.Context) ([]string, error) {
	var status []string
	if err := c.getJSON(ctx, "/api/licitacoes/status", &status); err != nil {
		return nil, err
	}
	return status, nil
}

func (c *Client) CriarLicitacao(ctx context.Context, p LicitacaoPayload) (*models.Licitacao, error) {
	var l models.Licitacao
	if err := c.sendJSON(ctx, http.MethodPost, "/api/licitacoes", p, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) AtualizarLicitacao(ctx context.Context, id string, p LicitacaoPayload) (*models.Licitacao, error) {
	var l models.Licitacao
	if err := c.sendJSON(ctx, http.MethodPut, "/api/licitacoes/"+url.PathEscape(id), p, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) ExcluirLicitacao(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/licitacoes/"+url.PathEscape(id))
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeErro(resp)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, dst any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeErro(resp)
	}
	if dst == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func (c *Client) delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeErro(resp)
	}
	return nil
}

// decodeErro monta o *ErroAPI de uma resposta não-2xx. Corpo sem o campo
// "error" vira mensagem genérica; o status code é preservado em ambos os casos.
func decodeErro(resp *http.Response) error {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := MsgErroGenerico
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err == nil {
		switch {
		case body.Error != "":
			msg = body.Error
		case body.Message != "":
			msg = body.Message
		}
	}
	return &ErroAPI{StatusCode: resp.StatusCode, Mensagem: msg}
}
