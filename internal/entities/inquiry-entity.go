package entities

import (
	"quotation-system/pkg/types"
)

// Inquiry - запрос клиента, родитель для одной или нескольких позиций.
type Inquiry struct {
	ID         uint64  `json:"id" db:"id"`
	Title      string  `json:"title" db:"title"`
	CustomerID uint64  `json:"customer_id" db:"customer_id"`
	Priority   string  `json:"priority" db:"priority"`
	Comment    *string `json:"comment,omitempty" db:"comment"`
	CreatorID  uint64  `json:"creator_id" db:"creator_id"`

	// Денормализация из JOIN, в таблице inquiries не хранится.
	CustomerName string `json:"customer_name" db:"-"`

	types.BaseEntity
	types.SoftDelete
}
