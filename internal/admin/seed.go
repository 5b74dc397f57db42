package admin

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/licitafacil/licitafacil/internal/models"
	"github.com/licitafacil/licitafacil/internal/repository"
	"github.com/licitafacil/licitafacil/internal/utils"
)

//go:embed seeds/demo.json
var demoJSON []byte

type seedLicitacao struct {
	NumeroEdital   string `json:"numero_edital"`
	OrgaoLicitante string `json:"orgao_licitante"`
	Objeto         string `json:"objeto"`
	DataAbertura   string `json:"data_abertura"`
	Status         string `json:"status"`
}

type seedDemo struct {
	Empresa struct {
		RazaoSocial   string `json:"razao_social"`
		CNPJ          string `json:"cnpj"`
		Endereco      string `json:"endereco"`
		Telefone      string `json:"telefone"`
		Email         string `json:"email"`
		Porte         string `json:"porte"`
		CNAEPrincipal string `json:"cnae_principal"`
	} `json:"empresa"`
	Licitacoes []seedLicitacao `json:"licitacoes"`
}

// Idempotente: empresa já cadastrada só ganha as licitações que faltam.
func SeedDemo(ctx context.Context, empresas *repository.EmpresaRepository, lics *repository.LicitacaoRepository, log *slog.Logger) error {
	var demo seedDemo
	if err := json.Unmarshal(demoJSON, &demo); err != nil {
		return err
	}

	cnpj := utils.SanitizeCNPJ(demo.Empresa.CNPJ)
	if !utils.ValidateCNPJ(cnpj) {
		return errors.New("seed: cnpj inválido")
	}

	e := models.Empresa{
		ID:            cnpj,
		CNPJ:          cnpj,
		RazaoSocial:   demo.Empresa.RazaoSocial,
		Endereco:      demo.Empresa.Endereco,
		Telefone:      demo.Empresa.Telefone,
		Email:         demo.Empresa.Email,
		Porte:         demo.Empresa.Porte,
		CNAEPrincipal: demo.Empresa.CNAEPrincipal,
	}

	ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
	_, err := empresas.Create(ictx, &e)
	cancel()
	if err != nil {
		if !errors.Is(err, repository.ErrDuplicateCNPJ) {
			return err
		}
		log.Info("seed_empresa_exists", "cnpj", cnpj)
	} else {
		log.Info("seed_empresa_created", "cnpj", cnpj)
	}

	existentes, err := lics.ListByEmpresa(ctx, cnpj)
	if err != nil {
		return err
	}
	jaTem := make(map[string]bool, len(existentes))
	for _, l := range existentes {
		jaTem[l.NumeroEdital] = true
	}

	for _, s := range demo.Licitacoes {
		if jaTem[s.NumeroEdital] {
			log.Info("seed_licitacao_exists", "numero_edital", s.NumeroEdital)
			continue
		}
		abertura, err := utils.ParseData(s.DataAbertura)
		if err != nil {
			log.Warn("seed_skip_data_invalida", "numero_edital", s.NumeroEdital, "raw", s.DataAbertura)
			continue
		}
		l := models.Licitacao{
			ID:             uuid.NewString(),
			EmpresaID:      cnpj,
			NumeroEdital:   s.NumeroEdital,
			OrgaoLicitante: s.OrgaoLicitante,
			Objeto:         s.Objeto,
			DataAbertura:   abertura,
			Status:         s.Status,
		}
		if l.Status == "" {
			l.Status = models.StatusLicEmAndamento
		}

		ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
		_, err = lics.Create(ictx, &l)
		cancel()
		if err != nil {
			return err
		}
		log.Info("seed_licitacao_created", "numero_edital", s.NumeroEdital)
	}

	log.Info("seed_demo_done", "licitacoes", len(demo.Licitacoes))
	return nil
}
