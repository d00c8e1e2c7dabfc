package service

import (
	"context"

	"fritter-backend/internal/errors"
	"fritter-backend/internal/model"
	"fritter-backend/internal/repository/interfaces"
	"fritter-backend/internal/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// LikeServiceInterface 定义点赞服务的接口，便于在测试中模拟
type LikeServiceInterface interface {
	CreateRecord(ctx context.Context, freetID primitive.ObjectID) (*model.Like, error)
	DeleteRecord(ctx context.Context, freetID primitive.ObjectID) error
	FreetByID(ctx context.Context, freetID string) (*model.Freet, error)
	Record(ctx context.Context, freetID primitive.ObjectID) (*model.Like, error)
	IsAlreadyLiked(ctx context.Context, freetID primitive.ObjectID, viewerID string) error
	CanUnlike(ctx context.Context, freetID primitive.ObjectID, viewerID string) error
	AdjustLike(ctx context.Context, freetID primitive.ObjectID, delta int, viewerID string) (*model.Like, error)
	SetPrivacy(ctx context.Context, freetID primitive.ObjectID, hidden bool) (*model.Like, error)
}

type LikeService struct {
	likeRepo  interfaces.LikeRepository
	userRepo  interfaces.UserRepository
	freetRepo interfaces.FreetRepository
}

func NewLikeService(likeRepo interfaces.LikeRepository, userRepo interfaces.UserRepository, freetRepo interfaces.FreetRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, userRepo: userRepo, freetRepo: freetRepo}
}

// CreateRecord 在帖子创建时由帖子服务调用
func (s *LikeService) CreateRecord(ctx context.Context, freetID primitive.ObjectID) (*model.Like, error) {
	like, err := s.likeRepo.Create(ctx, freetID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to create like record", err)
	}
	return like, nil
}

// DeleteRecord 在帖子删除时由帖子服务调用
func (s *LikeService) DeleteRecord(ctx context.Context, freetID primitive.ObjectID) error {
	if err := s.likeRepo.Delete(ctx, freetID); err != nil {
		return errors.Wrap(errors.ErrDatabase, "Failed to delete like record", err)
	}
	return nil
}

// FreetByID 按ID查找帖子，不存在时返回 404 错误
func (s *LikeService) FreetByID(ctx context.Context, freetID string) (*model.Freet, error) {
	id, err := primitive.ObjectIDFromHex(freetID)
	if err != nil {
		return nil, errors.New(errors.ErrFreetNotFound, "Freet with freet ID "+freetID+" does not exist.")
	}
	freet, err := s.freetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to look up freet", err)
	}
	if freet == nil {
		return nil, errors.New(errors.ErrFreetNotFound, "Freet with freet ID "+freetID+" does not exist.")
	}
	return freet, nil
}

// Record 返回帖子的点赞记录
func (s *LikeService) Record(ctx context.Context, freetID primitive.ObjectID) (*model.Like, error) {
	like, err := s.likeRepo.FindByFreet(ctx, freetID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to look up like record", err)
	}
	if like == nil {
		return nil, errors.New(errors.ErrResourceNotFound, "Like record does not exist.")
	}
	return like, nil
}

// IsAlreadyLiked 拒绝没有取消点赞就再次点赞
func (s *LikeService) IsAlreadyLiked(ctx context.Context, freetID primitive.ObjectID, viewerID string) error {
	like, err := s.Record(ctx, freetID)
	if err != nil {
		return err
	}
	viewer, err := s.viewer(ctx, viewerID)
	if err != nil {
		return err
	}
	if containsString(like.Likers, viewer.Username) {
		return errors.New(errors.ErrAlreadyLiked, "Cannot like a freet more than once.")
	}
	return nil
}

// CanUnlike 拒绝取消一个从未点过的赞
func (s *LikeService) CanUnlike(ctx context.Context, freetID primitive.ObjectID, viewerID string) error {
	like, err := s.Record(ctx, freetID)
	if err != nil {
		return err
	}
	viewer, err := s.viewer(ctx, viewerID)
	if err != nil {
		return err
	}
	if !containsString(like.Likers, viewer.Username) {
		return errors.New(errors.ErrNotLiked, "Cannot unlike a freet that was not previously liked.")
	}
	return nil
}

// AdjustLike 调整点赞数并同步点赞用户列表。
// 点赞数直接加 delta，列表按用户名追加或删除第一个匹配项，
// 二者各自维护，单用户最多点一次赞的约束由前置检查保证。
func (s *LikeService) AdjustLike(ctx context.Context, freetID primitive.ObjectID, delta int, viewerID string) (*model.Like, error) {
	like, err := s.Record(ctx, freetID)
	if err != nil {
		return nil, err
	}
	viewer, err := s.viewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	like.Likes += delta
	if delta == 1 {
		like.Likers = append(like.Likers, viewer.Username)
	} else {
		like.Likers = removeString(like.Likers, viewer.Username)
	}

	if err := s.likeRepo.Save(ctx, like); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to save like record", err)
	}

	util.Logger.Info("更新点赞",
		zap.String("freet_id", freetID.Hex()),
		zap.String("username", viewer.Username),
		zap.Int("delta", delta))
	return like, nil
}

// SetPrivacy 设置点赞信息是否对非作者隐藏
func (s *LikeService) SetPrivacy(ctx context.Context, freetID primitive.ObjectID, hidden bool) (*model.Like, error) {
	like, err := s.Record(ctx, freetID)
	if err != nil {
		return nil, err
	}
	like.HiddenLikes = hidden
	if err := s.likeRepo.Save(ctx, like); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to save like record", err)
	}
	return like, nil
}

func (s *LikeService) viewer(ctx context.Context, viewerID string) (*model.User, error) {
	id, err := primitive.ObjectIDFromHex(viewerID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrBadRequest, "Invalid user ID", err)
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to look up user", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "User does not exist.")
	}
	return user, nil
}
