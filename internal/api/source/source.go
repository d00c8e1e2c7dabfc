package source

import (
	"net/http"

	"fritter-backend/internal/errors"
	"fritter-backend/internal/service"
	"fritter-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SourceHandler struct {
	sourceService service.SourceServiceInterface
}

func NewSourceHandler(sourceService service.SourceServiceInterface) *SourceHandler {
	return &SourceHandler{sourceService: sourceService}
}

type sourceRequest struct {
	Source string `json:"source" binding:"required,source_url"`
}

// GetSources 返回帖子的全部引用来源
func (h *SourceHandler) GetSources(c *gin.Context) {
	ctx := c.Request.Context()

	freet, err := h.sourceService.FreetByID(ctx, c.Param("freetId"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	sources, err := h.sourceService.Sources(ctx, freet.ID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sources)
}

// AddSource 给帖子添加一条引用来源，必须是可解析的 URL
func (h *SourceHandler) AddSource(c *gin.Context) {
	ctx := c.Request.Context()

	var req sourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInvalidSource, "Source must be a valid link or url.", err))
		return
	}

	freet, err := h.sourceService.FreetByID(ctx, c.Param("freetId"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.sourceService.AddSource(ctx, freet.ID, req.Source); err != nil {
		util.Logger.Error("添加来源失败", zap.Error(err), zap.String("freet_id", freet.ID.Hex()))
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "You added a source successfully."})
}

type removeSourceRequest struct {
	Source string `json:"source" binding:"required"`
}

// RemoveSource 从帖子里删除一条引用来源，只有作者能操作
func (h *SourceHandler) RemoveSource(c *gin.Context) {
	ctx := c.Request.Context()
	viewerID := c.GetString("user_id")

	var req removeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "Source is required.", err))
		return
	}

	freet, err := h.sourceService.FreetByID(ctx, c.Param("freetId"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	if viewerID != freet.AuthorID.Hex() {
		errors.HandleError(c, errors.New(errors.ErrNotOwner, "Cannot modify other users' freets."))
		return
	}

	if err := h.sourceService.SourceExists(ctx, freet.ID, req.Source); err != nil {
		errors.HandleError(c, err)
		return
	}

	if err := h.sourceService.RemoveSource(ctx, freet.ID, req.Source); err != nil {
		util.Logger.Error("删除来源失败", zap.Error(err), zap.String("freet_id", freet.ID.Hex()))
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "You removed the source successfully."})
}
