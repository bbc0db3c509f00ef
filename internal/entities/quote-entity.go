package entities

import (
	"time"

	"quotation-system/pkg/types"
)

// Quote - коммерческое предложение по запросу. Создается, когда все
// позиции запроса утверждены; на один запрос - одно активное предложение.
type Quote struct {
	ID         uint64    `json:"id" db:"id"`
	InquiryID  uint64    `json:"inquiry_id" db:"inquiry_id"`
	Number     string    `json:"number" db:"number"`
	Currency   string    `json:"currency" db:"currency"`
	Total      float64   `json:"total" db:"total"`
	ValidUntil time.Time `json:"valid_until" db:"valid_until"`
	CreatorID  uint64    `json:"creator_id" db:"creator_id"`

	types.BaseEntity
}
