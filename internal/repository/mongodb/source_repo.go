package mongodb

import (
	"context"
	"errors"

	"fritter-backend/internal/model"
	"fritter-backend/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type sourceRepository struct {
	col *mongo.Collection
}

func NewSourceRepository(db *mongo.Database) *sourceRepository {
	return &sourceRepository{col: db.Collection("sources")}
}

// Create 为新帖子初始化一条空的来源记录
func (r *sourceRepository) Create(ctx context.Context, freetID primitive.ObjectID) (*model.Source, error) {
	source := &model.Source{
		ID:      primitive.NewObjectID(),
		FreetID: freetID,
		Sources: []string{},
	}

	if _, err := r.col.InsertOne(ctx, source); err != nil {
		util.Logger.Error("创建来源记录失败", zap.Error(err), zap.String("freet_id", freetID.Hex()))
		return nil, err
	}
	return source, nil
}

func (r *sourceRepository) FindByFreet(ctx context.Context, freetID primitive.ObjectID) (*model.Source, error) {
	var source model.Source
	err := r.col.FindOne(ctx, bson.M{"freetID": freetID}).Decode(&source)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &source, nil
}

func (r *sourceRepository) Save(ctx context.Context, source *model.Source) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": source.ID}, source)
	if err != nil {
		util.Logger.Error("保存来源记录失败", zap.Error(err), zap.String("freet_id", source.FreetID.Hex()))
	}
	return err
}

func (r *sourceRepository) Delete(ctx context.Context, freetID primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"freetID": freetID})
	return err
}
