package models

import "time"

// Ciclo de vida de uma licitação acompanhada.
const (
	StatusLicEmAndamento = "em_andamento"
	StatusLicFinalizada  = "finalizada"
	StatusLicVencida     = "vencida"
	StatusLicPerdida     = "perdida"
)

// StatusLicitacao é a lista servida em GET /api/licitacoes/status.
// O cliente não deve tratá-la como fechada.
var StatusLicitacao = []string{
	StatusLicEmAndamento,
	StatusLicFinalizada,
	StatusLicVencida,
	StatusLicPerdida,
}

type Licitacao struct {
	ID             string     `bson:"_id,omitempty" json:"id"`
	EmpresaID      string     `bson:"empresa_id" json:"empresa_id"`
	NumeroEdital   string     `bson:"numero_edital" json:"numero_edital"`
	OrgaoLicitante string     `bson:"orgao_licitante" json:"orgao_licitante"`
	Objeto         string     `bson:"objeto" json:"objeto"`
	DataAbertura   *time.Time `bson:"data_abertura,omitempty" json:"data_abertura,omitempty"`
	LinkEdital     string     `bson:"link_edital" json:"link_edital"`
	Status         string     `bson:"status" json:"status"`
	Observacoes    string     `bson:"observacoes" json:"observacoes"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updated_at"`
}
