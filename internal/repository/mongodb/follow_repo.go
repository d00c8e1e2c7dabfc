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

type followRepository struct {
	col *mongo.Collection
}

func NewFollowRepository(db *mongo.Database) *followRepository {
	return &followRepository{col: db.Collection("follows")}
}

// Create 为用户初始化一条空的关注记录。
// userID 的唯一性由唯一索引保证，重复创建会返回重复键错误。
func (r *followRepository) Create(ctx context.Context, userID primitive.ObjectID) (*model.Follow, error) {
	follow := &model.Follow{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Followers: []string{},
		Following: []string{},
		IsHidden:  false,
	}

	if _, err := r.col.InsertOne(ctx, follow); err != nil {
		util.Logger.Error("创建关注记录失败", zap.Error(err), zap.String("user_id", userID.Hex()))
		return nil, err
	}
	return follow, nil
}

func (r *followRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*model.Follow, error) {
	var follow model.Follow
	err := r.col.FindOne(ctx, bson.M{"userID": userID}).Decode(&follow)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &follow, nil
}

// Save 以整条文档替换的方式持久化修改。
// 关注边涉及两条记录的两次 Save，之间没有事务，部分失败会让两侧列表失去同步。
func (r *followRepository) Save(ctx context.Context, follow *model.Follow) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": follow.ID}, follow)
	if err != nil {
		util.Logger.Error("保存关注记录失败", zap.Error(err), zap.String("user_id", follow.UserID.Hex()))
	}
	return err
}

func (r *followRepository) Delete(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"userID": userID})
	return err
}
