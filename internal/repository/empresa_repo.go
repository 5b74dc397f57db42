package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/licitafacil/licitafacil/internal/models"
)

var (
	ErrDuplicateCNPJ        = errors.New("cnpj already exists")
	ErrEmpresaNaoEncontrada = errors.New("empresa not found")
)

type EmpresaRepository struct {
	coll *mongo.Collection
}

func NewEmpresaRepository(db *mongo.Database) *EmpresaRepository {
	return &EmpresaRepository{coll: db.Collection("empresas")}
}

func (r *EmpresaRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{{Key: "cnpj", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_cnpj"),
	}
	_, err := r.coll.Indexes().CreateOne(ctx, model)
	if err == nil {
		return nil
	}
	// Se já existir com outra opção, tenta dropar e recriar
	if ce, ok := err.(mongo.CommandError); ok && ce.Code == 85 { // IndexOptionsConflict
		if _, dropErr := r.coll.Indexes().DropOne(ctx, "uniq_cnpj"); dropErr != nil {
			return fmt.Errorf("drop index uniq_cnpj: %w", dropErr)
		}
		_, createErr := r.coll.Indexes().CreateOne(ctx, model)
		return createErr
	}
	return err
}

// First devolve a única empresa da instância (cadastro mono-tenant).
func (r *EmpresaRepository) First(ctx context.Context) (*models.Empresa, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})
	var e models.Empresa
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEmpresaNaoEncontrada
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmpresaRepository) Create(ctx context.Context, e *models.Empresa) (string, error) {
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	res, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		if we, ok := err.(mongo.WriteException); ok {
			for _, we := range we.WriteErrors {
				if we.Code == 11000 {
					return "", ErrDuplicateCNPJ
				}
			}
		}
		return "", err
	}
	id, _ := res.InsertedID.(string) // _id é o CNPJ sanitizado
	return id, nil
}

func (r *EmpresaRepository) GetByID(ctx context.Context, id string) (*models.Empresa, error) {
	var e models.Empresa
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEmpresaNaoEncontrada
		}
		return nil, err
	}
	return &e, nil
}

// Update parcial: só altera o que veio preenchido.
func (r *EmpresaRepository) Update(ctx context.Context, id string, e *models.Empresa) error {
	set := bson.M{
		"updated_at": time.Now(),
	}
	if e.RazaoSocial != "" {
		set["razao_social"] = e.RazaoSocial
	}
	if e.Endereco != "" {
		set["endereco"] = e.Endereco
	}
	if e.Telefone != "" {
		set["telefone"] = e.Telefone
	}
	if e.Email != "" {
		set["email"] = e.Email
	}
	if e.Porte != "" {
		set["porte"] = e.Porte
	}
	if e.CNAEPrincipal != "" {
		set["cnae_principal"] = e.CNAEPrincipal
	}
	if e.CNPJ != "" {
		set["cnpj"] = e.CNPJ
	}

	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if we, ok := err.(mongo.WriteException); ok {
			for _, we := range we.WriteErrors {
				if we.Code == 11000 {
					return ErrDuplicateCNPJ
				}
			}
		}
	}
	return err
}
