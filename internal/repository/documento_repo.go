package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/licitafacil/licitafacil/internal/models"
)

var ErrDocumentoNaoEncontrado = errors.New("documento not found")

type DocumentoRepository struct {
	coll *mongo.Collection
}

func NewDocumentoRepository(db *mongo.Database) *DocumentoRepository {
	return &DocumentoRepository{coll: db.Collection("documentos")}
}

func (r *DocumentoRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "empresa_id", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("empresa_created"),
	}
	_, err := r.coll.Indexes().CreateOne(ctx, model)
	return err
}

func (r *DocumentoRepository) Create(ctx context.Context, d *models.Documento) (string, error) {
	d.CreatedAt = time.Now()
	d.AtualizaStatus(d.CreatedAt)
	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		return "", err
	}
	id, _ := res.InsertedID.(string)
	return id, nil
}

func (r *DocumentoRepository) GetByID(ctx context.Context, id string) (*models.Documento, error) {
	var d models.Documento
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDocumentoNaoEncontrado
		}
		return nil, err
	}
	d.AtualizaStatus(time.Now())
	return &d, nil
}

// ListByEmpresa devolve os documentos da empresa com o status reavaliado
// em relação a hoje; o valor gravado pode ter envelhecido desde o upload.
func (r *DocumentoRepository) ListByEmpresa(ctx context.Context, empresaID string) ([]models.Documento, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"empresa_id": empresaID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	hoje := time.Now()
	list := []models.Documento{}
	for cur.Next(ctx) {
		var d models.Documento
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		d.AtualizaStatus(hoje)
		list = append(list, d)
	}
	return list, cur.Err()
}

// ListAlertas filtra os documentos que exigem atenção (vencidos ou perto de vencer).
func (r *DocumentoRepository) ListAlertas(ctx context.Context, empresaID string) ([]models.Documento, error) {
	docs, err := r.ListByEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	alertas := []models.Documento{}
	for _, d := range docs {
		if d.Status == models.StatusDocVencido || d.Status == models.StatusDocProximoVencimento {
			alertas = append(alertas, d)
		}
	}
	return alertas, nil
}

func (r *DocumentoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrDocumentoNaoEncontrado
	}
	return nil
}

// ContaPorStatus agrega os contadores do dashboard. As coleções por empresa
// são pequenas; classificar em memória mantém a contagem coerente com a lista.
func (r *DocumentoRepository) ContaPorStatus(ctx context.Context, empresaID string) (models.ResumoDocumentos, error) {
	docs, err := r.ListByEmpresa(ctx, empresaID)
	if err != nil {
		return models.ResumoDocumentos{}, err
	}
	resumo := models.ResumoDocumentos{Total: len(docs)}
	for _, d := range docs {
		switch d.Status {
		case models.StatusDocValido:
			resumo.Validos++
		case models.StatusDocProximoVencimento:
			resumo.ProximoVencimento++
		case models.StatusDocVencido:
			resumo.Vencidos++
		}
	}
	return resumo, nil
}
