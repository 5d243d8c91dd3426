package storage

import "context"

//go:generate mockgen -source=./storage.go -package=storagemocks -destination=mocks/storage.mock.go Storage
type Storage interface {
	// Upload 上传一个对象，返回可公开访问的 URL
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}
