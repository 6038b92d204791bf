package storage

import (
	"context"
	"fmt"
)

// objectPutter is the per-vendor part of a remote object store.
type objectPutter interface {
	exists(ctx context.Context, key string) (bool, error)
	put(ctx context.Context, key string, data []byte, contentType string) error
}

// remoteStorage implements Storage on top of any bucket-style object store.
type remoteStorage struct {
	putter objectPutter
	prefix string
}

func (s *remoteStorage) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	key := buildObjectPath(opts.BaseName, opts.Extension)
	if s.prefix != "" {
		key = joinPrefix(s.prefix, key)
	}

	// 对象存储没有原子的"不存在才写入"，这里先查后写。
	if opts.Exclusive {
		exists, err := s.putter.exists(ctx, key)
		if err != nil {
			return "", fmt.Errorf("check object: %w", err)
		}
		if exists {
			return "", fmt.Errorf("%s: %w", key, ErrObjectExists)
		}
	}

	if err := s.putter.put(ctx, key, data, detectContentType(opts.Extension)); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return key, nil
}

var _ Storage = (*remoteStorage)(nil)
