package mongodb

import (
	"context"
	"errors"

	"fritter-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// freetRepository 只读访问帖子集合
type freetRepository struct {
	col *mongo.Collection
}

func NewFreetRepository(db *mongo.Database) *freetRepository {
	return &freetRepository{col: db.Collection("freets")}
}

func (r *freetRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Freet, error) {
	var freet model.Freet
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&freet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &freet, nil
}

// FindAllByAuthor 按修改时间倒序返回作者的全部帖子
func (r *freetRepository) FindAllByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]*model.Freet, error) {
	opts := options.Find().SetSort(bson.M{"dateModified": -1})
	cursor, err := r.col.Find(ctx, bson.M{"authorId": authorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var freets []*model.Freet
	if err := cursor.All(ctx, &freets); err != nil {
		return nil, err
	}
	return freets, nil
}
