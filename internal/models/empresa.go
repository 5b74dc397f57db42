package models

import "time"

// Portes aceitos pelo sistema (art. 3º da LC 123/2006).
const (
	PorteMEI = "MEI"
	PorteME  = "ME"
	PorteEPP = "EPP"
)

type Empresa struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	CNPJ          string    `bson:"cnpj" json:"cnpj"` // armazenado normalizado (apenas dígitos)
	RazaoSocial   string    `bson:"razao_social" json:"razao_social"`
	Endereco      string    `bson:"endereco" json:"endereco"`
	Telefone      string    `bson:"telefone" json:"telefone"`
	Email         string    `bson:"email" json:"email"`
	Porte         string    `bson:"porte" json:"porte"`
	CNAEPrincipal string    `bson:"cnae_principal" json:"cnae_principal"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

func PorteValido(p string) bool {
	switch p {
	case PorteMEI, PorteME, PorteEPP:
		return true
	}
	return false
}
