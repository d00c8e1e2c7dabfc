package interfaces

import (
	"context"

	"fritter-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository 是用户存储的只读查询契约，用户的增删改由用户服务负责
type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
