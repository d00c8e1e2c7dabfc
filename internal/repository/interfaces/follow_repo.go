package interfaces

import (
	"context"

	"fritter-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FollowRepository 定义了关注记录的数据库操作接口。
// 每个用户只有一条记录，唯一性由存储层的唯一索引保证。
type FollowRepository interface {
	Create(ctx context.Context, userID primitive.ObjectID) (*model.Follow, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*model.Follow, error)
	Save(ctx context.Context, follow *model.Follow) error
	Delete(ctx context.Context, userID primitive.ObjectID) error
}
