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

var ErrLicitacaoNaoEncontrada = errors.New("licitacao not found")

type LicitacaoRepository struct {
	coll *mongo.Collection
}

func NewLicitacaoRepository(db *mongo.Database) *LicitacaoRepository {
	return &LicitacaoRepository{coll: db.Collection("licitacoes")}
}

func (r *LicitacaoRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "empresa_id", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("empresa_created"),
	}
	_, err := r.coll.Indexes().CreateOne(ctx, model)
	return err
}

func (r *LicitacaoRepository) Create(ctx context.Context, l *models.Licitacao) (string, error) {
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	res, err := r.coll.InsertOne(ctx, l)
	if err != nil {
		return "", err
	}
	id, _ := res.InsertedID.(string)
	return id, nil
}

func (r *LicitacaoRepository) GetByID(ctx context.Context, id string) (*models.Licitacao, error) {
	var l models.Licitacao
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLicitacaoNaoEncontrada
		}
		return nil, err
	}
	return &l, nil
}

func (r *LicitacaoRepository) ListByEmpresa(ctx context.Context, empresaID string) ([]models.Licitacao, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"empresa_id": empresaID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	list := []models.Licitacao{}
	for cur.Next(ctx) {
		var l models.Licitacao
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, cur.Err()
}

// Update regrava os campos editáveis; o formulário do cliente sempre
// devolve o registro completo (round-trip), então não há patch parcial aqui.
func (r *LicitacaoRepository) Update(ctx context.Context, id string, l *models.Licitacao) error {
	set := bson.M{
		"numero_edital":   l.NumeroEdital,
		"orgao_licitante": l.OrgaoLicitante,
		"objeto":          l.Objeto,
		"data_abertura":   l.DataAbertura,
		"link_edital":     l.LinkEdital,
		"status":          l.Status,
		"observacoes":     l.Observacoes,
		"updated_at":      time.Now(),
	}
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrLicitacaoNaoEncontrada
	}
	return nil
}

func (r *LicitacaoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrLicitacaoNaoEncontrada
	}
	return nil
}

func (r *LicitacaoRepository) ContaPorStatus(ctx context.Context, empresaID string) (models.ResumoLicitacoes, error) {
	list, err := r.ListByEmpresa(ctx, empresaID)
	if err != nil {
		return models.ResumoLicitacoes{}, err
	}
	resumo := models.ResumoLicitacoes{Total: len(list)}
	for _, l := range list {
		switch l.Status {
		case models.StatusLicEmAndamento:
			resumo.EmAndamento++
		case models.StatusLicVencida:
			resumo.Vencidas++
		case models.StatusLicPerdida:
			resumo.Perdidas++
		}
	}
	return resumo, nil
}
