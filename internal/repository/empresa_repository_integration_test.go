//go:build integration
// +build integration

package repository

/*
	Para Rodar: go test -tags=integration -v ./internal/repository -count=1
*/

import (
	"context"
	"errors"
	"testing"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/licitafacil/licitafacil/internal/db"
	"github.com/licitafacil/licitafacil/internal/models"
)

// Exercita: EnsureIndexes -> Create -> duplicado -> First -> Update
func TestEmpresaRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Sobe Mongo real
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

	database := client.Database("testdb")
	repo := NewEmpresaRepository(database)

	if err := repo.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	// 1) Create (ID = CNPJ sanitizado)
	e := models.Empresa{
		ID:          "11222333000181",
		CNPJ:        "11222333000181",
		RazaoSocial: "Padaria Santa Clara LTDA",
		Porte:       models.PorteME,
	}
	id, err := repo.Create(ctx, &e)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != "11222333000181" {
		t.Fatalf("create: id=%q", id)
	}

	// 2) CNPJ duplicado cai no erro sentinela
	_, err = repo.Create(ctx, &models.Empresa{
		ID:          "11222333000181",
		CNPJ:        "11222333000181",
		RazaoSocial: "Outra Empresa",
		Porte:       models.PorteMEI,
	})
	if !errors.Is(err, ErrDuplicateCNPJ) {
		t.Fatalf("duplicado: err=%v want ErrDuplicateCNPJ", err)
	}

	// 3) First devolve a única cadastrada
	first, err := repo.First(ctx)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if first.ID != id || first.RazaoSocial != "Padaria Santa Clara LTDA" {
		t.Fatalf("first mismatch: %#v", first)
	}

	// 4) Update + releitura
	upd := models.Empresa{
		CNPJ:        "11222333000181",
		RazaoSocial: "Padaria Nova Clara LTDA",
		Porte:       models.PorteEPP,
		Endereco:    "Rua Y, 456",
	}
	if err := repo.Update(ctx, id, &upd); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.RazaoSocial != "Padaria Nova Clara LTDA" || got.Porte != models.PorteEPP {
		t.Fatalf("after update mismatch: %#v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.Before(got.CreatedAt) {
		t.Fatalf("timestamps: created=%v updated=%v", got.CreatedAt, got.UpdatedAt)
	}
}
