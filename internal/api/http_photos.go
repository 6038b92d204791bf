package api

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"homecollection/internal/entity/converter"
	"homecollection/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// 上传需要写入远端存储，超时比普通接口长
const uploadTimeout = 2 * time.Minute

// UploadPhotos 接收 multipart 字段 files 中的一个或多个文件并挂到物品下。
func (h *HTTPHandler) UploadPhotos(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "item repository not available")
		return
	}

	itemID, ok := parseID(c)
	if !ok {
		InvalidID(c, "item")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "multipart form with files is required")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		MissingField(c, "files")
		return
	}

	files := make([]service.UploadFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, uploadFile(fh))
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), uploadTimeout)
	defer cancel()

	photos, err := h.catalog.UploadPhotos(ctx, itemID, files)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			itemNotFound(c)
		case errors.Is(err, service.ErrNoFiles):
			MissingField(c, "files")
		default:
			logrus.WithError(err).WithField("item_id", itemID).Error("failed to upload photos")
			InternalError(c, "failed to upload photos")
		}
		return
	}

	c.JSON(http.StatusCreated, converter.PhotosToDTOs(photos))
}

func uploadFile(fh *multipart.FileHeader) service.UploadFile {
	return service.UploadFile{
		Filename: fh.Filename,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
