package dto

import "github.com/aarondl/null/v8"

type InquiryDTO struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	CustomerID   uint64    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Priority     string    `json:"priority"`
	Comment      *string   `json:"comment,omitempty"`
	Items        []ItemDTO `json:"items,omitempty"`
	CreatedAt    string    `json:"created_at"`
}

type CreateInquiryDTO struct {
	Title      string          `json:"title" validate:"required,min=3,max=255"`
	CustomerID uint64          `json:"customer_id" validate:"required,gt=0"`
	Priority   string          `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Comment    *string         `json:"comment,omitempty" validate:"omitempty,min=3"`
	Items      []CreateItemDTO `json:"items" validate:"required,min=1,dive"`
}

type UpdateInquiryDTO struct {
	Title    null.String `json:"title,omitempty"`
	Priority null.String `json:"priority,omitempty"`
	Comment  null.String `json:"comment,omitempty"`
}

type InquiryListDTO struct {
	List       []InquiryDTO `json:"list"`
	TotalCount uint64       `json:"total_count"`
}
