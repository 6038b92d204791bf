package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"homecollection/internal/entity"
	"homecollection/internal/entity/converter"
	"homecollection/internal/entity/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func (h *HTTPHandler) ListTags(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "tag repository not available")
		return
	}

	params := h.listParams(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	tags, err := h.repo.ListTags(ctx, params)
	if err != nil {
		logrus.WithError(err).Error("failed to list tags")
		InternalError(c, "failed to load tags")
		return
	}

	c.JSON(http.StatusOK, converter.TagsToDTOs(tags))
}

// CreateTag 创建标签；同名标签已存在时原样返回（200），不会修改其颜色。
func (h *HTTPHandler) CreateTag(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "tag repository not available")
		return
	}

	var req dto.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		MissingField(c, "name")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	tag, created, err := h.repo.FindOrCreateTag(ctx, name, req.Color)
	if err != nil {
		logrus.WithError(err).WithField("name", name).Error("failed to create tag")
		InternalError(c, "failed to create tag")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, converter.TagToDTO(tag))
}

func (h *HTTPHandler) UpdateTag(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "tag repository not available")
		return
	}

	tagID, ok := parseID(c)
	if !ok {
		InvalidID(c, "tag")
		return
	}

	var req dto.TagUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	updates := entity.TagUpdates{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			BadRequest(c, ErrCodeInvalidRequest, "tag name must not be empty")
			return
		}
		updates.Name = &name
	}
	if req.Color != nil {
		color := strings.TrimSpace(*req.Color)
		if color == "" {
			color = entity.DefaultTagColor
		}
		updates.Color = &color
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.UpdateTag(ctx, tagID, updates); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			tagNotFound(c)
		case errors.Is(err, gorm.ErrDuplicatedKey):
			Conflict(c, ErrCodeTagNameTaken, "another tag already uses this name")
		default:
			logrus.WithError(err).WithField("id", tagID).Error("failed to update tag")
			InternalError(c, "failed to update tag")
		}
		return
	}

	updated, err := h.repo.GetTag(ctx, tagID)
	if err != nil {
		logrus.WithError(err).WithField("id", tagID).Error("failed to reload tag after update")
		InternalError(c, "failed to load updated tag")
		return
	}

	c.JSON(http.StatusOK, converter.TagToDTO(updated))
}

func (h *HTTPHandler) DeleteTag(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "tag repository not available")
		return
	}

	tagID, ok := parseID(c)
	if !ok {
		InvalidID(c, "tag")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteTag(ctx, tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tagNotFound(c)
			return
		}
		logrus.WithError(err).WithField("id", tagID).Error("failed to delete tag")
		InternalError(c, "failed to delete tag")
		return
	}

	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// bindError 将 binding:"required" 校验失败转为 ERR_MISSING_FIELD，其余解析错误视为无效请求体。
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "required" {
		MissingField(c, strings.ToLower(verrs[0].Field()))
		return
	}
	InvalidPayload(c)
}
