package app

import (
	"testing"

	"github.com/licitafacil/licitafacil/internal/models"
)

func TestBadgeDocumento_Conhecidos(t *testing.T) {
	casos := []struct {
		status string
		rotulo string
		tom    string
	}{
		{models.StatusDocValido, "Válido", TomVerde},
		{models.StatusDocProximoVencimento, "Próx. Vencimento", TomAmarelo},
		{models.StatusDocVencido, "Vencido", TomVermelho},
	}
	for _, c := range casos {
		b := BadgeDocumento(c.status)
		if b.Rotulo != c.rotulo || b.Tom != c.tom {
			t.Fatalf("BadgeDocumento(%q)=%#v", c.status, b)
		}
	}
}

// Status vazio ou desconhecido nunca quebra: rótulo neutro, tom neutro.
func TestBadgeDocumento_Fallback(t *testing.T) {
	b := BadgeDocumento("")
	if b.Rotulo != "Desconhecido" || b.Tom != TomNeutro {
		t.Fatalf("badge vazio=%#v", b)
	}

	// valor novo vindo do servidor é exibido como veio, em tom neutro
	b = BadgeDocumento("cancelado")
	if b.Rotulo != "cancelado" || b.Tom != TomNeutro {
		t.Fatalf("badge desconhecido=%#v", b)
	}
}

func TestBadgeLicitacao_Conhecidos(t *testing.T) {
	casos := []struct {
		status string
		rotulo string
		tom    string
	}{
		{models.StatusLicEmAndamento, "Em Andamento", TomAzul},
		{models.StatusLicFinalizada, "Finalizada", TomNeutro},
		{models.StatusLicVencida, "Vencida", TomVerde},
		{models.StatusLicPerdida, "Perdida", TomVermelho},
	}
	for _, c := range casos {
		b := BadgeLicitacao(c.status)
		if b.Rotulo != c.rotulo || b.Tom != c.tom {
			t.Fatalf("BadgeLicitacao(%q)=%#v", c.status, b)
		}
	}
}

// Status inédito (ex.: "cancelada" lançado no servidor) aparece cru em
// tom neutro, sem derrubar a listagem.
func TestBadgeLicitacao_StatusInedito(t *testing.T) {
	b := BadgeLicitacao("cancelada")
	if b.Rotulo != "cancelada" || b.Tom != TomNeutro {
		t.Fatalf("badge=%#v", b)
	}
}

// O indicador de atenção cobre vencido E próximo do vencimento.
func TestPrecisaAtencao(t *testing.T) {
	if !PrecisaAtencao(models.Documento{Status: models.StatusDocVencido}) {
		t.Fatalf("vencido sem atenção")
	}
	if !PrecisaAtencao(models.Documento{Status: models.StatusDocProximoVencimento}) {
		t.Fatalf("próximo do vencimento sem atenção")
	}
	if PrecisaAtencao(models.Documento{Status: models.StatusDocValido}) {
		t.Fatalf("válido com atenção indevida")
	}
	if PrecisaAtencao(models.Documento{Status: "cancelado"}) {
		t.Fatalf("status desconhecido com atenção indevida")
	}
}
