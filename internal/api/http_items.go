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
	"homecollection/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func (h *HTTPHandler) ListItems(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "item repository not available")
		return
	}

	params := h.listParams(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.repo.ListItems(ctx, params)
	if err != nil {
		logrus.WithError(err).Error("failed to list items")
		InternalError(c, "failed to load items")
		return
	}

	c.JSON(http.StatusOK, converter.ItemsToDTOs(items))
}

// CreateItem 创建物品。tags 为标签名列表，不存在的标签会自动创建。
func (h *HTTPHandler) CreateItem(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "item repository not available")
		return
	}

	var req dto.ItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		MissingField(c, "name")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.catalog.CreateItem(ctx, service.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		TagNames:    req.Tags,
	})
	if err != nil {
		if itemWriteError(c, err) {
			return
		}
		logrus.WithError(err).WithField("name", req.Name).Error("failed to create item")
		InternalError(c, "failed to create item")
		return
	}

	c.JSON(http.StatusCreated, converter.ItemToDTO(item))
}

func (h *HTTPHandler) GetItem(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "item repository not available")
		return
	}

	itemID, ok := parseID(c)
	if !ok {
		InvalidID(c, "item")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.repo.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			itemNotFound(c)
			return
		}
		logrus.WithError(err).WithField("id", itemID).Error("failed to load item")
		InternalError(c, "failed to load item")
		return
	}

	c.JSON(http.StatusOK, converter.ItemToDTO(item))
}

// UpdateItem 更新物品字段；请求中带 tags 时整体替换标签集合。
func (h *HTTPHandler) UpdateItem(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "item repository not available")
		return
	}

	itemID, ok := parseID(c)
	if !ok {
		InvalidID(c, "item")
		return
	}

	var req dto.ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		BadRequest(c, ErrCodeInvalidRequest, "item name must not be empty")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.catalog.UpdateItem(ctx, itemID, service.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		TagNames:    req.Tags,
	})
	if err != nil {
		if itemWriteError(c, err) {
			return
		}
		logrus.WithError(err).WithField("id", itemID).Error("failed to update item")
		InternalError(c, "failed to update item")
		return
	}

	c.JSON(http.StatusOK, converter.ItemToDTO(item))
}

// DeleteItem 删除物品及其照片记录和标签关联。已存储的照片文件不会被删除。
func (h *HTTPHandler) DeleteItem(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "item repository not available")
		return
	}

	itemID, ok := parseID(c)
	if !ok {
		InvalidID(c, "item")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			itemNotFound(c)
			return
		}
		logrus.WithError(err).WithField("id", itemID).Error("failed to delete item")
		InternalError(c, "failed to delete item")
		return
	}

	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// itemWriteError 将物品写入时的已知错误映射为 4xx 响应，返回是否已写出响应。
// 标签在解析后被并发删除时返回 409。
func itemWriteError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		itemNotFound(c)
	case errors.Is(err, entity.ErrTagMissing):
		Conflict(c, ErrCodeTagNotFound, "a referenced tag no longer exists")
	default:
		return false
	}
	return true
}
