package service

import (
	"context"
	"errors"
	"fmt"
	"homecollection/internal/entity"
	"homecollection/internal/model"
	"homecollection/internal/storage"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultPhotoExtension 用于原始文件名不带扩展名的上传。
const DefaultPhotoExtension = "jpg"

// maxStoreAttempts 为单个照片文件在键冲突时的最大写入次数。
const maxStoreAttempts = 3

// ErrNoFiles 表示上传请求中没有任何文件。
var ErrNoFiles = errors.New("no files uploaded")

// CatalogService 收藏目录服务，封装物品创建、标签解析与照片上传的业务逻辑
type CatalogService struct {
	repo       model.Repository
	storage    storage.Storage
	publicBase string
}

// NewCatalogService 创建目录服务实例
func NewCatalogService(repo model.Repository, store storage.Storage, publicBase string) *CatalogService {
	return &CatalogService{
		repo:       repo,
		storage:    store,
		publicBase: NormalisePublicBase(publicBase),
	}
}

// CreateItemInput 创建物品参数
type CreateItemInput struct {
	Name        string
	Description string
	TagNames    []string
}

// UpdateItemInput 更新物品参数。TagNames 非 nil 时整体替换标签。
type UpdateItemInput struct {
	Name        *string
	Description *string
	TagNames    *[]string
}

// UploadFile 描述一个待保存的上传文件
type UploadFile struct {
	Filename string
	Open     func() (io.ReadCloser, error)
}

// ResolveTags 将标签名解析为标签 ID：去除首尾空白，跳过空名和重复名，
// 不存在的标签以默认颜色创建。每个标签在返回前均已提交。
func (s *CatalogService) ResolveTags(ctx context.Context, names []string) ([]uint, error) {
	ids := make([]uint, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		tag, created, err := s.repo.FindOrCreateTag(ctx, name, "")
		if err != nil {
			return nil, fmt.Errorf("resolve tag %q: %w", name, err)
		}
		if created {
			logrus.WithFields(logrus.Fields{"tag_id": tag.ID, "name": tag.Name}).Debug("tag created implicitly")
		}
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

// CreateItem 创建物品并关联标签，返回包含标签与照片的完整物品。
func (s *CatalogService) CreateItem(ctx context.Context, input CreateItemInput) (*entity.DbItem, error) {
	tagIDs, err := s.ResolveTags(ctx, input.TagNames)
	if err != nil {
		return nil, err
	}

	item := &entity.DbItem{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}
	if err := s.repo.CreateItem(ctx, item, tagIDs); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	return s.repo.GetItem(ctx, item.ID)
}

// UpdateItem 更新物品字段，并在提供标签列表时替换标签集合。
func (s *CatalogService) UpdateItem(ctx context.Context, id uint, input UpdateItemInput) (*entity.DbItem, error) {
	exists, err := s.repo.ItemExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}

	// 标签先于任何字段写入解析，字段与标签集合随后在同一事务中更新。
	updates := entity.ItemUpdates{Description: input.Description}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		updates.Name = &name
	}
	if input.TagNames != nil {
		tagIDs, err := s.ResolveTags(ctx, *input.TagNames)
		if err != nil {
			return nil, err
		}
		updates.TagIDs = &tagIDs
	}
	if err := s.repo.UpdateItem(ctx, id, updates); err != nil {
		return nil, err
	}

	return s.repo.GetItem(ctx, id)
}

// UploadPhotos 保存一批照片。所有文件先写入存储，全部成功后才在一个事务中
// 写入照片记录；任何一步失败都不会留下照片记录，已写入的文件保留为孤儿文件。
func (s *CatalogService) UploadPhotos(ctx context.Context, itemID uint, files []UploadFile) ([]entity.DbPhoto, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	exists, err := s.repo.ItemExists(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}

	filePaths := make([]string, 0, len(files))
	for _, file := range files {
		key, err := s.storeFile(ctx, file)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"item_id":  itemID,
				"filename": file.Filename,
				"stored":   len(filePaths),
			}).Error("failed to store photo")
			return nil, fmt.Errorf("store photo %q: %w", file.Filename, err)
		}
		filePaths = append(filePaths, PublicURL(s.publicBase, key))
	}

	photos, err := s.repo.CreatePhotos(ctx, itemID, filePaths)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"item_id": itemID,
			"files":   filePaths,
		}).Warn("photo files stored without database records")
		return nil, err
	}
	return photos, nil
}

func (s *CatalogService) storeFile(ctx context.Context, file UploadFile) (string, error) {
	if file.Open == nil {
		return "", errors.New("file has no content")
	}
	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	// 已上传的照片不可被覆盖；键冲突时换一个名字重试。
	ext := PhotoExtension(file.Filename)
	for attempt := 1; ; attempt++ {
		key, err := s.storage.Save(ctx, data, storage.SaveOptions{
			BaseName:  uuid.NewString(),
			Extension: ext,
			Exclusive: true,
		})
		if err == nil || !errors.Is(err, storage.ErrObjectExists) || attempt == maxStoreAttempts {
			return key, err
		}
		logrus.WithError(err).Warn("photo key already taken, retrying with a new name")
	}
}

// PhotoExtension 取原始文件名最后一个 "." 之后的部分作为扩展名，
// 没有 "." 或扩展名不可用时返回 DefaultPhotoExtension。
func PhotoExtension(filename string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	idx := strings.LastIndex(base, ".")
	if idx < 0 {
		return DefaultPhotoExtension
	}
	ext := storage.SanitizeToken(base[idx+1:])
	if ext == "" {
		return DefaultPhotoExtension
	}
	return ext
}
