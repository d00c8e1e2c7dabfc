package service

import (
	"context"

	"fritter-backend/internal/model"
	"fritter-backend/internal/repository/interfaces"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockFollowRepository 是 FollowRepository 接口的模拟实现
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(ctx context.Context, userID primitive.ObjectID) (*model.Follow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *MockFollowRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*model.Follow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *MockFollowRepository) Save(ctx context.Context, follow *model.Follow) error {
	args := m.Called(ctx, follow)
	return args.Error(0)
}

func (m *MockFollowRepository) Delete(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockLikeRepository 是 LikeRepository 接口的模拟实现
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, freetID primitive.ObjectID) (*model.Like, error) {
	args := m.Called(ctx, freetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockLikeRepository) FindByFreet(ctx context.Context, freetID primitive.ObjectID) (*model.Like, error) {
	args := m.Called(ctx, freetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockLikeRepository) Save(ctx context.Context, like *model.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, freetID primitive.ObjectID) error {
	args := m.Called(ctx, freetID)
	return args.Error(0)
}

// MockSourceRepository 是 SourceRepository 接口的模拟实现
type MockSourceRepository struct {
	mock.Mock
}

func (m *MockSourceRepository) Create(ctx context.Context, freetID primitive.ObjectID) (*model.Source, error) {
	args := m.Called(ctx, freetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Source), args.Error(1)
}

func (m *MockSourceRepository) FindByFreet(ctx context.Context, freetID primitive.ObjectID) (*model.Source, error) {
	args := m.Called(ctx, freetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Source), args.Error(1)
}

func (m *MockSourceRepository) Save(ctx context.Context, source *model.Source) error {
	args := m.Called(ctx, source)
	return args.Error(0)
}

func (m *MockSourceRepository) Delete(ctx context.Context, freetID primitive.ObjectID) error {
	args := m.Called(ctx, freetID)
	return args.Error(0)
}

// MockUserRepository 是 UserRepository 接口的模拟实现
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockFreetRepository 是 FreetRepository 接口的模拟实现
type MockFreetRepository struct {
	mock.Mock
}

func (m *MockFreetRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Freet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Freet), args.Error(1)
}

func (m *MockFreetRepository) FindAllByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]*model.Freet, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Freet), args.Error(1)
}

// 确保所有模拟类型都实现了对应接口
var (
	_ interfaces.FollowRepository = (*MockFollowRepository)(nil)
	_ interfaces.LikeRepository   = (*MockLikeRepository)(nil)
	_ interfaces.SourceRepository = (*MockSourceRepository)(nil)
	_ interfaces.UserRepository   = (*MockUserRepository)(nil)
	_ interfaces.FreetRepository  = (*MockFreetRepository)(nil)
)
