package dto

type AttachmentDTO struct {
	ID        uint64 `json:"id"`
	InquiryID uint64 `json:"inquiry_id"`
	FileName  string `json:"file_name"`
	FilePath  string `json:"file_path"`
	FileSize  int64  `json:"file_size"`
	CreatedAt string `json:"created_at"`
}
