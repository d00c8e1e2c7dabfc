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

type likeRepository struct {
	col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *likeRepository {
	return &likeRepository{col: db.Collection("likes")}
}

// Create 为新帖子初始化点赞记录，点赞数为 0
func (r *likeRepository) Create(ctx context.Context, freetID primitive.ObjectID) (*model.Like, error) {
	like := &model.Like{
		ID:          primitive.NewObjectID(),
		FreetID:     freetID,
		Likes:       0,
		HiddenLikes: false,
		Likers:      []string{},
	}

	if _, err := r.col.InsertOne(ctx, like); err != nil {
		util.Logger.Error("创建点赞记录失败", zap.Error(err), zap.String("freet_id", freetID.Hex()))
		return nil, err
	}
	return like, nil
}

func (r *likeRepository) FindByFreet(ctx context.Context, freetID primitive.ObjectID) (*model.Like, error) {
	var like model.Like
	err := r.col.FindOne(ctx, bson.M{"freetID": freetID}).Decode(&like)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) Save(ctx context.Context, like *model.Like) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": like.ID}, like)
	if err != nil {
		util.Logger.Error("保存点赞记录失败", zap.Error(err), zap.String("freet_id", like.FreetID.Hex()))
	}
	return err
}

func (r *likeRepository) Delete(ctx context.Context, freetID primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"freetID": freetID})
	return err
}
