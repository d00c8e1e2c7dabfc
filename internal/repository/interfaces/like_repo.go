package interfaces

import (
	"context"

	"fritter-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeRepository 定义了点赞记录的数据库操作接口
type LikeRepository interface {
	Create(ctx context.Context, freetID primitive.ObjectID) (*model.Like, error)
	FindByFreet(ctx context.Context, freetID primitive.ObjectID) (*model.Like, error)
	Save(ctx context.Context, like *model.Like) error
	Delete(ctx context.Context, freetID primitive.ObjectID) error
}
