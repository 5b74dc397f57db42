package app

import (
	"context"
	"fmt"

	"github.com/licitafacil/licitafacil/internal/models"
)

type EstadoResumo int

const (
	ResumoCarregando EstadoResumo = iota
	ResumoSemDados   // placeholder, não é erro
	ResumoPopulado
)

type NivelAlerta int

const (
	AlertaUrgente NivelAlerta = iota // vencidos: vermelho
	AlertaAviso                      // próximos do vencimento: amarelo
)

type Alerta struct {
	Nivel    NivelAlerta
	Mensagem string
}

// Resumo é a visão somente-leitura do dashboard. Os agregados chegam
// prontos do servidor; nada é recomputado aqui.
type Resumo struct {
	api       API
	empresaID string

	estado EstadoResumo
	Dados  *models.Dashboard
}

func NewResumo(api API, empresaID string) *Resumo {
	return &Resumo{api: api, empresaID: empresaID, estado: ResumoCarregando}
}

func (r *Resumo) Estado() EstadoResumo { return r.estado }

// Atualizar busca o agregado uma vez. Falha vira "sem dados", não erro
// bloqueante; a tela mostra o placeholder.
func (r *Resumo) Atualizar(ctx context.Context) {
	d, err := r.api.Dashboard(ctx, r.empresaID)
	if err != nil {
		r.Dados = nil
		r.estado = ResumoSemDados
		return
	}
	r.Dados = d
	r.estado = ResumoPopulado
}

// Alertas existe se e somente se há vencidos ou próximos do vencimento,
// com urgência separada por nível.
func (r *Resumo) Alertas() []Alerta {
	if r.Dados == nil {
		return nil
	}
	var alertas []Alerta
	if n := r.Dados.Documentos.Vencidos; n > 0 {
		alertas = append(alertas, Alerta{
			Nivel:    AlertaUrgente,
			Mensagem: fmt.Sprintf("%d documento(s) vencido(s) - Renovação urgente necessária", n),
		})
	}
	if n := r.Dados.Documentos.ProximoVencimento; n > 0 {
		alertas = append(alertas, Alerta{
			Nivel:    AlertaAviso,
			Mensagem: fmt.Sprintf("%d documento(s) próximo(s) do vencimento - Planeje a renovação", n),
		})
	}
	return alertas
}

// StatusGeral é binário e depende SÓ dos vencidos; próximo do
// vencimento não derruba o OK.
func (r *Resumo) StatusGeral() string {
	if r.Dados != nil && r.Dados.Documentos.Vencidos > 0 {
		return "atenção"
	}
	return "OK"
}
