package dto

import "github.com/aarondl/null/v8"

type CustomerDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	ContactFio  *string `json:"contact_fio,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	IsActive    bool    `json:"is_active"`
}

type CreateCustomerDTO struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	ContactFio  *string `json:"contact_fio,omitempty" validate:"omitempty,min=3"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// UpdateCustomerDTO - частичное обновление. null-типы различают
// "поле не передали" и "поле передали пустым/false".
type UpdateCustomerDTO struct {
	Name        null.String `json:"name,omitempty"`
	ContactFio  null.String `json:"contact_fio,omitempty"`
	Email       null.String `json:"email,omitempty"`
	PhoneNumber null.String `json:"phone_number,omitempty"`
	IsActive    null.Bool   `json:"is_active,omitempty"`
}
