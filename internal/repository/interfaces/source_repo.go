package interfaces

import (
	"context"

	"fritter-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SourceRepository 定义了引用来源记录的数据库操作接口
type SourceRepository interface {
	Create(ctx context.Context, freetID primitive.ObjectID) (*model.Source, error)
	FindByFreet(ctx context.Context, freetID primitive.ObjectID) (*model.Source, error)
	Save(ctx context.Context, source *model.Source) error
	Delete(ctx context.Context, freetID primitive.ObjectID) error
}
