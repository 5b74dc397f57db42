package handlers

//	somente os campos do contrato; id/timestamps são do servidor
type EmpresaDTO struct {
	RazaoSocial   string `json:"razao_social"`
	CNPJ          string `json:"cnpj"`
	Endereco      string `json:"endereco"`
	Telefone      string `json:"telefone"`
	Email         string `json:"email"`
	Porte         string `json:"porte"`
	CNAEPrincipal string `json:"cnae_principal"`
}

// Criação e atualização usam o mesmo shape: o formulário do cliente
// devolve sempre o registro completo.
type LicitacaoDTO struct {
	EmpresaID      string `json:"empresa_id"`
	NumeroEdital   string `json:"numero_edital"`
	OrgaoLicitante string `json:"orgao_licitante"`
	Objeto         string `json:"objeto"`
	DataAbertura   string `json:"data_abertura"` // AAAA-MM-DD ou vazio
	LinkEdital     string `json:"link_edital"`
	Status         string `json:"status"`
	Observacoes    string `json:"observacoes"`
}
