package handlers

import (
	"errors"

	"github.com/licitafacil/licitafacil/internal/models"
)

func validateEmpresaDTO(d EmpresaDTO) error {
	if d.RazaoSocial == "" {
		return errors.New("campo razao_social é obrigatório")
	}
	if d.CNPJ == "" {
		return errors.New("campo cnpj é obrigatório")
	}
	if d.Porte == "" {
		return errors.New("campo porte é obrigatório")
	}
	if !models.PorteValido(d.Porte) {
		return errors.New("porte inválido (MEI, ME ou EPP)")
	}
	return nil
}

func validateLicitacaoDTO(d LicitacaoDTO) error {
	if d.EmpresaID == "" {
		return errors.New("campo empresa_id é obrigatório")
	}
	if d.NumeroEdital == "" {
		return errors.New("campo numero_edital é obrigatório")
	}
	if d.OrgaoLicitante == "" {
		return errors.New("campo orgao_licitante é obrigatório")
	}
	if d.Objeto == "" {
		return errors.New("campo objeto é obrigatório")
	}
	return nil
}
