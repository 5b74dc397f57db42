package models

import "time"

// Status de documento calculado SEMPRE no servidor; o cliente trata
// o valor como classificação opaca.
const (
	StatusDocValido            = "válido"
	StatusDocProximoVencimento = "próximo_vencimento"
	StatusDocVencido           = "vencido"
	StatusDocDesconhecido      = "desconhecido"
)

// Janela de aviso antes do vencimento.
const DiasAvisoVencimento = 30

type Documento struct {
	ID             string     `bson:"_id,omitempty" json:"id"`
	EmpresaID      string     `bson:"empresa_id" json:"empresa_id"`
	Tipo           string     `bson:"tipo" json:"tipo"`
	NomeArquivo    string     `bson:"nome_arquivo" json:"nome_arquivo"`
	CaminhoArquivo string     `bson:"caminho_arquivo" json:"caminho_arquivo"` // chave no object storage
	DataEmissao    *time.Time `bson:"data_emissao,omitempty" json:"data_emissao,omitempty"`
	DataValidade   *time.Time `bson:"data_validade,omitempty" json:"data_validade,omitempty"`
	Status         string     `bson:"status" json:"status"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
}

// ClassificaStatusDocumento reavalia a validade em relação a "hoje".
// Sem data de validade o documento é considerado válido (não expira).
func ClassificaStatusDocumento(validade *time.Time, hoje time.Time) string {
	if validade == nil {
		return StatusDocValido
	}
	dia := hoje.Truncate(24 * time.Hour)
	venc := validade.Truncate(24 * time.Hour)
	if venc.Before(dia) {
		return StatusDocVencido
	}
	if !venc.After(dia.Add(DiasAvisoVencimento * 24 * time.Hour)) {
		return StatusDocProximoVencimento
	}
	return StatusDocValido
}

// AtualizaStatus recalcula o status do documento em relação a "hoje".
func (d *Documento) AtualizaStatus(hoje time.Time) {
	d.Status = ClassificaStatusDocumento(d.DataValidade, hoje)
}
