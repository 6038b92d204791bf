package storage

import (
	"context"
	"errors"
	"fmt"
	"homecollection/internal/config"
	"strings"
)

const (
	// TypeLocal 表示本地文件系统存储。
	TypeLocal = "local"
	// TypeS3 表示 Amazon S3 或兼容的存储后端。
	TypeS3 = "s3"
	// TypeOSS 表示阿里云 OSS 存储。
	TypeOSS = "oss"
	// TypeCOS 表示腾讯云 COS 存储。
	TypeCOS = "cos"
	// TypeR2 表示 Cloudflare R2 存储。
	TypeR2 = "r2"
)

// ErrObjectExists 表示 Exclusive 写入时目标对象键已被占用。
var ErrObjectExists = errors.New("object already exists")

// SaveOptions 控制存储后端如何持久化文件。
//
// 对象键为 BaseName.Extension，放在存储根目录（或远程存储的前缀）下。
// BaseName 为空时使用纳秒时间戳；Extension 不含前导点，为空时使用 bin。
// Exclusive 为 true 时不会覆盖已存在的对象，而是返回 ErrObjectExists。
type SaveOptions struct {
	Extension string
	BaseName  string
	Exclusive bool
}

// Storage 是持久化二进制数据并返回对象键的抽象（例如本地存储的相对路径）。
// 数据按原样写入，不做任何校验或转换。
type Storage interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
}

// LocalBaseDirProvider 由暴露可通过 HTTP 直接提供服务的本地目录的存储驱动实现。
type LocalBaseDirProvider interface {
	LocalBaseDir() string
}

// NewStorage 根据配置实例化存储后端。
func NewStorage(cfg config.Config) (Storage, error) {
	typeName := strings.ToLower(strings.TrimSpace(cfg.StorageType))
	switch typeName {
	case "", TypeLocal:
		return NewLocalStorage(cfg.StorageLocalDir)
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeOSS:
		return NewOSSStorage(cfg)
	case TypeCOS:
		return NewCOSStorage(cfg)
	case TypeR2:
		return NewR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}
