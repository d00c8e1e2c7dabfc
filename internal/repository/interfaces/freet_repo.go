package interfaces

import (
	"context"

	"fritter-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FreetRepository 是帖子存储的只读查询契约
type FreetRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Freet, error)
	FindAllByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]*model.Freet, error)
}
