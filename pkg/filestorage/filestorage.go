package filestorage

import "mime/multipart"

// FileStorageInterface определяет контракт для сервиса хранения файлов.
type FileStorageInterface interface {
	Save(fileHeader *multipart.FileHeader) (filePath string, err error)
}
