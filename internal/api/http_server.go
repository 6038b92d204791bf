package api

import (
	"net/http"
	"path/filepath"

	"homecollection/internal/config"
	"homecollection/internal/model"
	"homecollection/internal/service"
	"homecollection/internal/storage"

	"github.com/gin-gonic/gin"
)

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg     config.Config
	repo    model.Repository
	storage storage.Storage

	// 服务层
	catalog *service.CatalogService

	// 列表接口 limit 上限
	maxLimit int
}

// NewHTTPHandler 创建 HTTP 处理器实例。repo 为 nil 时数据接口返回 503。
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage) *HTTPHandler {
	return &HTTPHandler{
		cfg:      cfg,
		repo:     repo,
		storage:  store,
		catalog:  service.NewCatalogService(repo, store, cfg.StoragePublicBaseURL),
		maxLimit: cfg.PageMaxLimit,
	}
}

// RegisterRoutes 注册 API、健康检查和前端静态资源路由
func (h *HTTPHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	apiGroup := r.Group("/api")

	tags := apiGroup.Group("/tags")
	tags.GET("", h.ListTags)
	tags.POST("", h.CreateTag)
	tags.PUT("/:id", h.UpdateTag)
	tags.DELETE("/:id", h.DeleteTag)

	items := apiGroup.Group("/items")
	items.GET("", h.ListItems)
	items.POST("", h.CreateItem)
	items.GET("/:id", h.GetItem)
	items.PUT("/:id", h.UpdateItem)
	items.DELETE("/:id", h.DeleteItem)
	items.POST("/:id/photos", h.UploadPhotos)

	// 本地存储时由本服务直接提供上传文件
	if localProvider, ok := h.storage.(storage.LocalBaseDirProvider); ok {
		publicPrefix := service.NormalisePublicBase(h.cfg.StoragePublicBaseURL)
		if !service.IsAbsoluteURL(publicPrefix) && publicPrefix != "" {
			r.Static(publicPrefix, localProvider.LocalBaseDir())
		}
	}

	//前端资源
	staticDir := h.cfg.StaticDir
	if staticDir == "" {
		staticDir = "static"
	}
	r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	r.StaticFile("/tags", filepath.Join(staticDir, "tags.html"))
	r.Static("/static", staticDir)
}
