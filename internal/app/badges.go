package app

import "github.com/licitafacil/licitafacil/internal/models"

// Tons visuais dos badges. O terminal e um eventual front mapeiam cada
// tom para a cor que quiserem.
const (
	TomVerde    = "verde"
	TomAmarelo  = "amarelo"
	TomVermelho = "vermelho"
	TomAzul     = "azul"
	TomNeutro   = "neutro"
)

type Badge struct {
	Rotulo string
	Tom    string
}

// BadgeDocumento traduz o status OPACO vindo do servidor. Valor fora do
// mapa cai no neutro com o texto cru; o conjunto é aberto por contrato.
func BadgeDocumento(status string) Badge {
	switch status {
	case models.StatusDocValido:
		return Badge{Rotulo: "Válido", Tom: TomVerde}
	case models.StatusDocProximoVencimento:
		return Badge{Rotulo: "Próx. Vencimento", Tom: TomAmarelo}
	case models.StatusDocVencido:
		return Badge{Rotulo: "Vencido", Tom: TomVermelho}
	case "":
		return Badge{Rotulo: "Desconhecido", Tom: TomNeutro}
	}
	return Badge{Rotulo: status, Tom: TomNeutro}
}

// BadgeLicitacao idem para o ciclo de vida da licitação.
func BadgeLicitacao(status string) Badge {
	switch status {
	case models.StatusLicEmAndamento:
		return Badge{Rotulo: "Em Andamento", Tom: TomAzul}
	case models.StatusLicFinalizada:
		return Badge{Rotulo: "Finalizada", Tom: TomNeutro}
	case models.StatusLicVencida:
		return Badge{Rotulo: "Vencida", Tom: TomVerde}
	case models.StatusLicPerdida:
		return Badge{Rotulo: "Perdida", Tom: TomVermelho}
	}
	return Badge{Rotulo: status, Tom: TomNeutro}
}

// PrecisaAtencao marca os documentos que levam o ícone de alerta.
func PrecisaAtencao(d models.Documento) bool {
	return d.Status == models.StatusDocVencido || d.Status == models.StatusDocProximoVencimento
}
