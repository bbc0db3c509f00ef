package entities

import (
	"quotation-system/pkg/types"
)

type Customer struct {
	ID          uint64  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	ContactFio  *string `json:"contact_fio,omitempty" db:"contact_fio"`
	Email       *string `json:"email,omitempty" db:"email"`
	PhoneNumber *string `json:"phone_number,omitempty" db:"phone_number"`
	IsActive    bool    `json:"is_active" db:"is_active"`

	types.BaseEntity
	types.SoftDelete
}
