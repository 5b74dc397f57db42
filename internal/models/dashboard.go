package models

// Agregados pré-computados do dashboard. O cliente nunca deriva esses
// números localmente; apenas exibe o que o servidor entregou.

type ResumoDocumentos struct {
	Total             int `json:"total"`
	Validos           int `json:"validos"`
	ProximoVencimento int `json:"proximo_vencimento"`
	Vencidos          int `json:"vencidos"`
}

type ResumoLicitacoes struct {
	Total       int `json:"total"`
	EmAndamento int `json:"em_andamento"`
	Vencidas    int `json:"vencidas"`
	Perdidas    int `json:"perdidas"`
}

type Dashboard struct {
	Empresa    Empresa          `json:"empresa"`
	Documentos ResumoDocumentos `json:"documentos"`
	Licitacoes ResumoLicitacoes `json:"licitacoes"`
}
