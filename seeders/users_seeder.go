package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"quotation-system/pkg/constants"
	"quotation-system/pkg/utils"
)

type seedUser struct {
	Fio      string
	Email    string
	Password string
	Role     string
}

var usersData = []seedUser{
	{Fio: "Администратор Системы", Email: "admin@example.com", Password: "admin123", Role: constants.RoleAdmin},
	{Fio: "Орлова Мария", Email: "sales@example.com", Password: "sales123", Role: constants.RoleSales},
	{Fio: "Петров Иван", Email: "vp1@example.com", Password: "vp123456", Role: constants.RoleVP},
	{Fio: "Сидоров Алексей", Email: "vp2@example.com", Password: "vp123456", Role: constants.RoleVP},
	{Fio: "Каримов Далер", Email: "vpp@example.com", Password: "vpp12345", Role: constants.RoleVPP},
}

// SeedUsers создает стартовый набор пользователей всех ролей.
// Существующие email пропускаются.
func SeedUsers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'users'...")

	query := `INSERT INTO users (fio, email, password, role)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (email) DO NOTHING`

	for _, u := range usersData {
		hashed, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		if _, err := db.Exec(ctx, query, u.Fio, u.Email, hashed, u.Role); err != nil {
			return err
		}
	}

	log.Println("    - Пользователи проверены/созданы.")
	return nil
}
