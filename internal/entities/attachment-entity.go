package entities

import (
	"quotation-system/pkg/types"
)

type Attachment struct {
	ID         uint64 `json:"id" db:"id"`
	InquiryID  uint64 `json:"inquiry_id" db:"inquiry_id"`
	FileName   string `json:"file_name" db:"file_name"`
	FilePath   string `json:"file_path" db:"file_path"`
	FileSize   int64  `json:"file_size" db:"file_size"`
	UploaderID uint64 `json:"uploader_id" db:"uploader_id"`

	types.BaseEntity
}
