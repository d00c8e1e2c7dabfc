package follow

import (
	"fmt"
	"net/http"

	"fritter-backend/internal/errors"
	"fritter-backend/internal/service"
	"fritter-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FollowHandler struct {
	followService service.FollowServiceInterface
}

func NewFollowHandler(followService service.FollowServiceInterface) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// GetFollowers 返回用户的粉丝列表。
// 记录被设为隐藏时，非本人只能看到占位消息。
func (h *FollowHandler) GetFollowers(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.followService.UserByName(ctx, c.Param("userName"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	record, err := h.followService.Record(ctx, user.ID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	viewerID := c.GetString("user_id")
	if viewerID != user.ID.Hex() && record.IsHidden {
		c.JSON(http.StatusOK, gin.H{"message": "Followers are currently hidden"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": record.Followers})
}

// GetFollowing 返回用户关注的账号列表
func (h *FollowHandler) GetFollowing(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.followService.UserByName(ctx, c.Param("userName"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	following, err := h.followService.Following(ctx, user.ID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": following})
}

// GetFollowedFreets 返回用户关注的所有账号的帖子聚合
func (h *FollowHandler) GetFollowedFreets(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.followService.UserByName(ctx, c.Param("userName"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	freets, err := h.followService.FollowedFreets(ctx, user.ID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": freets})
}

// FollowUser 关注目标用户
func (h *FollowHandler) FollowUser(c *gin.Context) {
	ctx := c.Request.Context()
	viewerID := c.GetString("user_id")

	target, err := h.followService.UserByName(ctx, c.Param("userName"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.followService.CanFollow(ctx, viewerID, target); err != nil {
		errors.HandleError(c, err)
		return
	}

	viewer, err := h.followService.Follow(ctx, viewerID, target)
	if err != nil {
		util.Logger.Error("关注用户失败", zap.Error(err), zap.String("target", target.Username))
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s followed %s successfully", viewer.Username, c.Param("userName")),
	})
}

// UnfollowUser 取消关注目标用户
func (h *FollowHandler) UnfollowUser(c *gin.Context) {
	ctx := c.Request.Context()
	viewerID := c.GetString("user_id")

	target, err := h.followService.UserByName(ctx, c.Param("userName"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.followService.CanUnfollow(ctx, viewerID, target); err != nil {
		errors.HandleError(c, err)
		return
	}

	viewer, err := h.followService.Unfollow(ctx, viewerID, target)
	if err != nil {
		util.Logger.Error("取消关注失败", zap.Error(err), zap.String("target", target.Username))
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s unfollowed %s successfully", viewer.Username, c.Param("userName")),
	})
}

// HideFollowers 隐藏自己的粉丝列表
func (h *FollowHandler) HideFollowers(c *gin.Context) {
	h.setPrivacy(c, true)
}

// UnhideFollowers 取消隐藏自己的粉丝列表
func (h *FollowHandler) UnhideFollowers(c *gin.Context) {
	h.setPrivacy(c, false)
}

func (h *FollowHandler) setPrivacy(c *gin.Context, hidden bool) {
	ctx := c.Request.Context()
	viewerID := c.GetString("user_id")

	user, err := h.followService.UserByName(ctx, c.Param("userName"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	// 只能修改自己的隐私设置
	if viewerID != user.ID.Hex() {
		errors.HandleError(c, errors.New(errors.ErrNotOwner, "Cannot modify other users' follower privacy settings."))
		return
	}

	record, err := h.followService.SetPrivacy(ctx, user.ID, hidden)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	privateStatus := "Public"
	if record.IsHidden {
		privateStatus = "Hidden"
	}
	action := "unhidden"
	if hidden {
		action = "hidden"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("You have %s your followers. The current status is %s", action, privateStatus),
	})
}
