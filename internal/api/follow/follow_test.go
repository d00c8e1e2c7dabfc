package follow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "fritter-backend/internal/errors"
	"fritter-backend/internal/model"
	"fritter-backend/internal/service"
	"fritter-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	util.InitLogger("error")
}

// MockFollowService 是 FollowServiceInterface 的模拟实现
type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) CreateRecord(ctx context.Context, userID primitive.ObjectID) (*model.Follow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *MockFollowService) DeleteRecord(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockFollowService) UserByName(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockFollowService) Record(ctx context.Context, userID primitive.ObjectID) (*model.Follow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *MockFollowService) Followers(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFollowService) Following(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFollowService) FollowedFreets(ctx context.Context, userID primitive.ObjectID) ([]*model.FreetResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FreetResponse), args.Error(1)
}

func (m *MockFollowService) CanFollow(ctx context.Context, viewerID string, target *model.User) error {
	args := m.Called(ctx, viewerID, target)
	return args.Error(0)
}

func (m *MockFollowService) CanUnfollow(ctx context.Context, viewerID string, target *model.User) error {
	args := m.Called(ctx, viewerID, target)
	return args.Error(0)
}

func (m *MockFollowService) Follow(ctx context.Context, viewerID string, target *model.User) (*model.User, error) {
	args := m.Called(ctx, viewerID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockFollowService) Unfollow(ctx context.Context, viewerID string, target *model.User) (*model.User, error) {
	args := m.Called(ctx, viewerID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockFollowService) SetPrivacy(ctx context.Context, userID primitive.ObjectID, hidden bool) (*model.Follow, error) {
	args := m.Called(ctx, userID, hidden)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

// 确保 MockFollowService 实现了 FollowServiceInterface
var _ service.FollowServiceInterface = (*MockFollowService)(nil)

// newRouter 构造测试路由，用一个假的认证中间件注入当前用户
func newRouter(handler *FollowHandler, viewerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", viewerID)
		c.Next()
	})
	router.GET("/follows/:userName", handler.GetFollowers)
	router.PUT("/followuser/:userName", handler.FollowUser)
	router.PUT("/hidefollow/:userName", handler.HideFollowers)
	return router
}

// TestGetFollowersHidden 非本人访问隐藏的粉丝列表时只能看到占位消息
func TestGetFollowersHidden(t *testing.T) {
	mockService := new(MockFollowService)
	handler := NewFollowHandler(mockService)

	bob := &model.User{ID: primitive.NewObjectID(), Username: "bob"}
	record := &model.Follow{UserID: bob.ID, Followers: []string{"alice"}, IsHidden: true}

	mockService.On("UserByName", mock.Anything, "bob").Return(bob, nil)
	mockService.On("Record", mock.Anything, bob.ID).Return(record, nil)

	viewerID := primitive.NewObjectID().Hex()
	router := newRouter(handler, viewerID)

	req, _ := http.NewRequest("GET", "/follows/bob", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Followers are currently hidden"}`, w.Body.String())
	mockService.AssertExpectations(t)
}

// TestGetFollowersVisible 本人访问自己的隐藏列表时正常返回
func TestGetFollowersVisible(t *testing.T) {
	mockService := new(MockFollowService)
	handler := NewFollowHandler(mockService)

	bob := &model.User{ID: primitive.NewObjectID(), Username: "bob"}
	record := &model.Follow{UserID: bob.ID, Followers: []string{"alice"}, IsHidden: true}

	mockService.On("UserByName", mock.Anything, "bob").Return(bob, nil)
	mockService.On("Record", mock.Anything, bob.ID).Return(record, nil)

	router := newRouter(handler, bob.ID.Hex())

	req, _ := http.NewRequest("GET", "/follows/bob", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response": ["alice"]}`, w.Body.String())
}

// TestGetFollowersUserMissing 用户不存在时返回 404
func TestGetFollowersUserMissing(t *testing.T) {
	mockService := new(MockFollowService)
	handler := NewFollowHandler(mockService)

	mockService.On("UserByName", mock.Anything, "ghost").
		Return(nil, apperrors.New(apperrors.ErrUserNotFound, "A user with name ghost does not exist."))

	router := newRouter(handler, primitive.NewObjectID().Hex())

	req, _ := http.NewRequest("GET", "/follows/ghost", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "A user with name ghost does not exist."}`, w.Body.String())
}

// TestFollowUser 成功关注时返回成功消息
func TestFollowUser(t *testing.T) {
	mockService := new(MockFollowService)
	handler := NewFollowHandler(mockService)

	alice := &model.User{ID: primitive.NewObjectID(), Username: "alice"}
	bob := &model.User{ID: primitive.NewObjectID(), Username: "bob"}

	mockService.On("UserByName", mock.Anything, "bob").Return(bob, nil)
	mockService.On("CanFollow", mock.Anything, alice.ID.Hex(), bob).Return(nil)
	mockService.On("Follow", mock.Anything, alice.ID.Hex(), bob).Return(alice, nil)

	router := newRouter(handler, alice.ID.Hex())

	req, _ := http.NewRequest("PUT", "/followuser/bob", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "alice followed bob successfully"}`, w.Body.String())
	mockService.AssertExpectations(t)
}

// TestFollowUserRejected 前置检查失败时返回 403
func TestFollowUserRejected(t *testing.T) {
	mockService := new(MockFollowService)
	handler := NewFollowHandler(mockService)

	alice := &model.User{ID: primitive.NewObjectID(), Username: "alice"}

	mockService.On("UserByName", mock.Anything, "alice").Return(alice, nil)
	mockService.On("CanFollow", mock.Anything, alice.ID.Hex(), alice).
		Return(apperrors.New(apperrors.ErrSelfFollow, "Cannot follow yourself"))

	router := newRouter(handler, alice.ID.Hex())

	req, _ := http.NewRequest("PUT", "/followuser/alice", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "Cannot follow yourself"}`, w.Body.String())
}

// TestHideFollowersNotOwner 不能修改别人的隐私设置
func TestHideFollowersNotOwner(t *testing.T) {
	mockService := new(MockFollowService)
	handler := NewFollowHandler(mockService)

	bob := &model.User{ID: primitive.NewObjectID(), Username: "bob"}
	mockService.On("UserByName", mock.Anything, "bob").Return(bob, nil)

	router := newRouter(handler, primitive.NewObjectID().Hex())

	req, _ := http.NewRequest("PUT", "/hidefollow/bob", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "Cannot modify other users' follower privacy settings."}`, w.Body.String())
}

// TestHideFollowers 隐藏后返回当前状态
func TestHideFollowers(t *testing.T) {
	mockService := new(MockFollowService)
	handler := NewFollowHandler(mockService)

	bob := &model.User{ID: primitive.NewObjectID(), Username: "bob"}
	record := &model.Follow{UserID: bob.ID, IsHidden: true}

	mockService.On("UserByName", mock.Anything, "bob").Return(bob, nil)
	mockService.On("SetPrivacy", mock.Anything, bob.ID, true).Return(record, nil)

	router := newRouter(handler, bob.ID.Hex())

	req, _ := http.NewRequest("PUT", "/hidefollow/bob", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "You have hidden your followers. The current status is Hidden"}`, w.Body.String())
}
