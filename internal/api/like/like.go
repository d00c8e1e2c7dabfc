package like

import (
	"fmt"
	"net/http"
	"strconv"

	"fritter-backend/internal/errors"
	"fritter-backend/internal/service"
	"fritter-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LikeHandler struct {
	likeService service.LikeServiceInterface
}

func NewLikeHandler(likeService service.LikeServiceInterface) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// GetLikeCount 返回帖子的点赞数。
// 点赞被作者隐藏时，非作者看到的数字被替换成 "Hidden"。
func (h *LikeHandler) GetLikeCount(c *gin.Context) {
	ctx := c.Request.Context()

	freet, err := h.likeService.FreetByID(ctx, c.Param("freetId"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	record, err := h.likeService.Record(ctx, freet.ID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	viewerID := c.GetString("user_id")
	numLikes := strconv.Itoa(record.Likes)
	if viewerID != freet.AuthorID.Hex() && record.HiddenLikes {
		numLikes = "Hidden"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Total number of likes: %s", numLikes),
	})
}

// GetLikeUsers 返回点赞用户名列表
func (h *LikeHandler) GetLikeUsers(c *gin.Context) {
	ctx := c.Request.Context()

	freet, err := h.likeService.FreetByID(ctx, c.Param("freetId"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	record, err := h.likeService.Record(ctx, freet.ID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	viewerID := c.GetString("user_id")
	if viewerID != freet.AuthorID.Hex() && record.HiddenLikes {
		c.JSON(http.StatusOK, gin.H{"message": "Likers are currently hidden"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"names": record.Likers})
}

// LikeFreet 给帖子点赞
func (h *LikeHandler) LikeFreet(c *gin.Context) {
	ctx := c.Request.Context()
	viewerID := c.GetString("user_id")

	freet, err := h.likeService.FreetByID(ctx, c.Param("freetId"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.likeService.IsAlreadyLiked(ctx, freet.ID, viewerID); err != nil {
		errors.HandleError(c, err)
		return
	}

	if _, err := h.likeService.AdjustLike(ctx, freet.ID, 1, viewerID); err != nil {
		util.Logger.Error("点赞失败", zap.Error(err), zap.String("freet_id", freet.ID.Hex()))
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "You liked the freet successfully."})
}

// UnlikeFreet 取消点赞
func (h *LikeHandler) UnlikeFreet(c *gin.Context) {
	ctx := c.Request.Context()
	viewerID := c.GetString("user_id")

	freet, err := h.likeService.FreetByID(ctx, c.Param("freetId"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.likeService.CanUnlike(ctx, freet.ID, viewerID); err != nil {
		errors.HandleError(c, err)
		return
	}

	if _, err := h.likeService.AdjustLike(ctx, freet.ID, -1, viewerID); err != nil {
		util.Logger.Error("取消点赞失败", zap.Error(err), zap.String("freet_id", freet.ID.Hex()))
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "You unliked the freet successfully."})
}

// HideLikes 隐藏帖子的点赞信息
func (h *LikeHandler) HideLikes(c *gin.Context) {
	h.setPrivacy(c, true)
}

// UnhideLikes 取消隐藏帖子的点赞信息
func (h *LikeHandler) UnhideLikes(c *gin.Context) {
	h.setPrivacy(c, false)
}

func (h *LikeHandler) setPrivacy(c *gin.Context, hidden bool) {
	ctx := c.Request.Context()
	viewerID := c.GetString("user_id")

	freet, err := h.likeService.FreetByID(ctx, c.Param("freetId"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	// 只有作者本人能修改点赞的隐私设置
	if viewerID != freet.AuthorID.Hex() {
		errors.HandleError(c, errors.New(errors.ErrNotOwner, "Cannot modify other users' freets."))
		return
	}

	record, err := h.likeService.SetPrivacy(ctx, freet.ID, hidden)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	privateStatus := "Public"
	if record.HiddenLikes {
		privateStatus = "Hidden"
	}
	action := "unhidden"
	if hidden {
		action = "hidden"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("You have %s like count. The current status is %s", action, privateStatus),
	})
}
