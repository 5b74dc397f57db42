//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/licitafacil/licitafacil/internal/db"
	"github.com/licitafacil/licitafacil/internal/models"
)

func diaRelativo(dias int) *time.Time {
	t := time.Now().UTC().AddDate(0, 0, dias)
	return &t
}

// O status é recalculado na LEITURA: o que foi gravado ontem pode sair
// vencido hoje sem nenhum write no meio.
func TestDocumentoRepository_Integration_StatusNaLeitura(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mongoC, err := mongodb.RunContainer(ctx, tc.WithImage("mongo:7"))
	if err != nil {
		t.Fatalf("start mongo: %v", err)
	}
	t.Cleanup(func() { _ = mongoC.Terminate(ctx) })

	uri, err := mongoC.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("conn string: %v", err)
	}
	client, err := db.NewMongoClient(uri)
	if err != nil {
		t.Fatalf("mongo client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	repo := NewDocumentoRepository(client.Database("testdb"))
	const empresaID = "11222333000181"

	docs := []models.Documento{
		{ID: "venc", EmpresaID: empresaID, Tipo: "CNPJ", DataValidade: diaRelativo(-10)},
		{ID: "prox", EmpresaID: empresaID, Tipo: "Certidão Federal", DataValidade: diaRelativo(10)},
		{ID: "ok", EmpresaID: empresaID, Tipo: "Contrato Social", DataValidade: diaRelativo(90)},
		{ID: "semval", EmpresaID: empresaID, Tipo: "Outros"},
	}
	for i := range docs {
		if _, err := repo.Create(ctx, &docs[i]); err != nil {
			t.Fatalf("create %s: %v", docs[i].ID, err)
		}
	}

	list, err := repo.ListByEmpresa(ctx, empresaID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := map[string]string{
		"venc":   models.StatusDocVencido,
		"prox":   models.StatusDocProximoVencimento,
		"ok":     models.StatusDocValido,
		"semval": models.StatusDocValido,
	}
	if len(list) != len(want) {
		t.Fatalf("list len=%d want=%d", len(list), len(want))
	}
	for _, d := range list {
		if d.Status != want[d.ID] {
			t.Fatalf("doc %s: status=%q want=%q", d.ID, d.Status, want[d.ID])
		}
	}

	// Alertas = vencidos + próximos, nada além
	alertas, err := repo.ListAlertas(ctx, empresaID)
	if err != nil {
		t.Fatalf("alertas: %v", err)
	}
	if len(alertas) != 2 {
		t.Fatalf("alertas len=%d want=2: %#v", len(alertas), alertas)
	}

	// Contagem coerente com a lista
	resumo, err := repo.ContaPorStatus(ctx, empresaID)
	if err != nil {
		t.Fatalf("conta: %v", err)
	}
	if resumo.Total != 4 || resumo.Vencidos != 1 || resumo.ProximoVencimento != 1 || resumo.Validos != 2 {
		t.Fatalf("resumo=%#v", resumo)
	}

	// Delete remove de verdade
	if err := repo.Delete(ctx, "venc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "venc"); err == nil {
		t.Fatalf("esperava not found após delete")
	}
}
