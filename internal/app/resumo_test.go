package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/licitafacil/licitafacil/internal/models"
)

func dash(vencidos, proximos int) *models.Dashboard {
	return &models.Dashboard{
		Empresa: models.Empresa{ID: "11222333000181", RazaoSocial: "Padaria"},
		Documentos: models.ResumoDocumentos{
			Total:             vencidos + proximos + 1,
			Validos:           1,
			ProximoVencimento: proximos,
			Vencidos:          vencidos,
		},
		Licitacoes: models.ResumoLicitacoes{Total: 2, EmAndamento: 1, Vencidas: 1},
	}
}

// Falha do agregado vira placeholder "sem dados", nunca erro bloqueante.
func TestResumo_FalhaViraSemDados(t *testing.T) {
	m := &apiMock{
		DashboardFn: func(_ context.Context, _ string) (*models.Dashboard, error) {
			return nil, errors.New("boom")
		},
	}
	r := NewResumo(m, "11222333000181")
	r.Atualizar(context.Background())

	if r.Estado() != ResumoSemDados {
		t.Fatalf("estado=%v want=ResumoSemDados", r.Estado())
	}
	if r.Dados != nil {
		t.Fatalf("dados velhos visíveis após falha")
	}
}

// Alertas existem se e somente se há vencidos ou próximos do vencimento.
func TestResumo_Alertas(t *testing.T) {
	m := &apiMock{
		DashboardFn: func(_ context.Context, _ string) (*models.Dashboard, error) {
			return dash(0, 0), nil
		},
	}
	r := NewResumo(m, "11222333000181")
	r.Atualizar(context.Background())
	if alertas := r.Alertas(); len(alertas) != 0 {
		t.Fatalf("alertas sem motivo: %v", alertas)
	}

	r.Dados = dash(2, 1)
	alertas := r.Alertas()
	if len(alertas) != 2 {
		t.Fatalf("alertas=%v", alertas)
	}
	if alertas[0].Nivel != AlertaUrgente || !strings.Contains(alertas[0].Mensagem, "2 documento(s) vencido(s)") {
		t.Fatalf("alerta urgente=%#v", alertas[0])
	}
	if alertas[1].Nivel != AlertaAviso || !strings.Contains(alertas[1].Mensagem, "próximo(s) do vencimento") {
		t.Fatalf("alerta aviso=%#v", alertas[1])
	}
}

// Próximo do vencimento não derruba o OK; só vencido muda o status geral.
func TestResumo_StatusGeral(t *testing.T) {
	r := NewResumo(&apiMock{}, "11222333000181")

	r.Dados = dash(0, 5)
	if got := r.StatusGeral(); got != "OK" {
		t.Fatalf("StatusGeral=%q want=OK", got)
	}

	r.Dados = dash(1, 0)
	if got := r.StatusGeral(); got != "atenção" {
		t.Fatalf("StatusGeral=%q want=atenção", got)
	}

	r.Dados = nil
	if got := r.StatusGeral(); got != "OK" {
		t.Fatalf("sem dados StatusGeral=%q want=OK", got)
	}
}
