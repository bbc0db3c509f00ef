// Файл: internal/entities/user-entity.go
package entities

import (
	"quotation-system/pkg/types"
)

type User struct {
	ID       uint64 `json:"id" db:"id"`
	Fio      string `json:"fio" db:"fio"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`

	// Код роли: ADMIN, SALES, VP, VPP. Назначать позиции можно только VP/VPP.
	Role     string `json:"role" db:"role"`
	IsActive bool   `json:"is_active" db:"is_active"`

	types.BaseEntity
	types.SoftDelete
}
