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

// FollowServiceInterface 定义关注服务的接口，便于在测试中模拟
type FollowServiceInterface interface {
	CreateRecord(ctx context.Context, userID primitive.ObjectID) (*model.Follow, error)
	DeleteRecord(ctx context.Context, userID primitive.ObjectID) error
	UserByName(ctx context.Context, username string) (*model.User, error)
	Record(ctx context.Context, userID primitive.ObjectID) (*model.Follow, error)
	Followers(ctx context.Context, userID primitive.ObjectID) ([]string, error)
	Following(ctx context.Context, userID primitive.ObjectID) ([]string, error)
	FollowedFreets(ctx context.Context, userID primitive.ObjectID) ([]*model.FreetResponse, error)
	CanFollow(ctx context.Context, viewerID string, target *model.User) error
	CanUnfollow(ctx context.Context, viewerID string, target *model.User) error
	Follow(ctx context.Context, viewerID string, target *model.User) (*model.User, error)
	Unfollow(ctx context.Context, viewerID string, target *model.User) (*model.User, error)
	SetPrivacy(ctx context.Context, userID primitive.ObjectID, hidden bool) (*model.Follow, error)
}

type FollowService struct {
	followRepo interfaces.FollowRepository
	userRepo   interfaces.UserRepository
	freetRepo  interfaces.FreetRepository
}

func NewFollowService(followRepo interfaces.FollowRepository, userRepo interfaces.UserRepository, freetRepo interfaces.FreetRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo, freetRepo: freetRepo}
}

// CreateRecord 在用户注册时由用户服务调用，初始化空的关注记录
func (s *FollowService) CreateRecord(ctx context.Context, userID primitive.ObjectID) (*model.Follow, error) {
	follow, err := s.followRepo.Create(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to create follow record", err)
	}
	return follow, nil
}

// DeleteRecord 在用户注销时由用户服务调用
func (s *FollowService) DeleteRecord(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.followRepo.Delete(ctx, userID); err != nil {
		return errors.Wrap(errors.ErrDatabase, "Failed to delete follow record", err)
	}
	return nil
}

// UserByName 按用户名查找用户，不存在时返回 404 错误
func (s *FollowService) UserByName(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to look up user", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "A user with name "+username+" does not exist.")
	}
	return user, nil
}

// Record 返回用户的关注记录
func (s *FollowService) Record(ctx context.Context, userID primitive.ObjectID) (*model.Follow, error) {
	follow, err := s.followRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to look up follow record", err)
	}
	if follow == nil {
		return nil, errors.New(errors.ErrResourceNotFound, "Follow record does not exist.")
	}
	return follow, nil
}

func (s *FollowService) Followers(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	follow, err := s.Record(ctx, userID)
	if err != nil {
		return nil, err
	}
	return follow.Followers, nil
}

func (s *FollowService) Following(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	follow, err := s.Record(ctx, userID)
	if err != nil {
		return nil, err
	}
	return follow.Following, nil
}

// FollowedFreets 聚合用户关注的所有账号的帖子，按关注列表顺序拼接
func (s *FollowService) FollowedFreets(ctx context.Context, userID primitive.ObjectID) ([]*model.FreetResponse, error) {
	follow, err := s.Record(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*model.FreetResponse, 0)
	for _, username := range follow.Following {
		author, err := s.userRepo.FindByUsername(ctx, username)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "Failed to look up user", err)
		}
		if author == nil {
			// 用户名已失效的列表项直接跳过
			continue
		}
		freets, err := s.freetRepo.FindAllByAuthor(ctx, author.ID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "Failed to look up freets", err)
		}
		for _, freet := range freets {
			result = append(result, model.NewFreetResponse(freet, author.Username))
		}
	}
	return result, nil
}

// CanFollow 检查当前用户能否关注目标用户：已关注或自己关注自己都会被拒绝
func (s *FollowService) CanFollow(ctx context.Context, viewerID string, target *model.User) error {
	viewer, err := s.viewer(ctx, viewerID)
	if err != nil {
		return err
	}
	follow, err := s.Record(ctx, viewer.ID)
	if err != nil {
		return err
	}
	if containsString(follow.Following, target.Username) {
		return errors.New(errors.ErrAlreadyFollowing, "Already following the user")
	}
	if viewer.Username == target.Username {
		return errors.New(errors.ErrSelfFollow, "Cannot follow yourself")
	}
	return nil
}

// CanUnfollow 检查当前用户是否确实关注着目标用户
func (s *FollowService) CanUnfollow(ctx context.Context, viewerID string, target *model.User) error {
	viewer, err := s.viewer(ctx, viewerID)
	if err != nil {
		return err
	}
	follow, err := s.Record(ctx, viewer.ID)
	if err != nil {
		return err
	}
	if !containsString(follow.Following, target.Username) {
		return errors.New(errors.ErrNotFollowing, "Cannot unfollow a user that you are currently not following")
	}
	return nil
}

// Follow 建立关注边：把当前用户追加到目标的粉丝列表，把目标追加到当前用户的关注列表。
// 两条记录分别保存，中间没有事务，第二次保存失败会留下单边的关注关系。
func (s *FollowService) Follow(ctx context.Context, viewerID string, target *model.User) (*model.User, error) {
	viewer, err := s.viewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	targetRecord, err := s.Record(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	viewerRecord, err := s.Record(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}

	targetRecord.Followers = append(targetRecord.Followers, viewer.Username)
	viewerRecord.Following = append(viewerRecord.Following, target.Username)

	if err := s.followRepo.Save(ctx, targetRecord); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to save follow record", err)
	}
	if err := s.followRepo.Save(ctx, viewerRecord); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to save follow record", err)
	}

	util.Logger.Info("建立关注关系",
		zap.String("follower", viewer.Username),
		zap.String("followee", target.Username))
	return viewer, nil
}

// Unfollow 删除关注边，两侧各自做线性查找删除，某一侧缺失时静默跳过
func (s *FollowService) Unfollow(ctx context.Context, viewerID string, target *model.User) (*model.User, error) {
	viewer, err := s.viewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	targetRecord, err := s.Record(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	viewerRecord, err := s.Record(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}

	targetRecord.Followers = removeString(targetRecord.Followers, viewer.Username)
	viewerRecord.Following = removeString(viewerRecord.Following, target.Username)

	if err := s.followRepo.Save(ctx, targetRecord); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to save follow record", err)
	}
	if err := s.followRepo.Save(ctx, viewerRecord); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to save follow record", err)
	}

	util.Logger.Info("解除关注关系",
		zap.String("follower", viewer.Username),
		zap.String("followee", target.Username))
	return viewer, nil
}

// SetPrivacy 设置粉丝列表是否对他人隐藏
func (s *FollowService) SetPrivacy(ctx context.Context, userID primitive.ObjectID, hidden bool) (*model.Follow, error) {
	follow, err := s.Record(ctx, userID)
	if err != nil {
		return nil, err
	}
	follow.IsHidden = hidden
	if err := s.followRepo.Save(ctx, follow); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "Failed to save follow record", err)
	}
	return follow, nil
}

// viewer 把会话里的用户ID解析成用户
func (s *FollowService) viewer(ctx context.Context, viewerID string) (*model.User, error) {
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

// containsString 在短列表上做线性查找
func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// removeString 删除第一个匹配项，不存在时原样返回
func removeString(list []string, s string) []string {
	for i, item := range list {
		if item == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
