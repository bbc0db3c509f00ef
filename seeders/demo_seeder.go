package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"quotation-system/pkg/constants"
)

// SeedDemoData наполняет БД демонстрационными клиентами, запросами и
// позициями для ручной проверки доски назначений. Выполняется только
// на пустой таблице клиентов, чтобы не плодить дубликаты.
func SeedDemoData(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение демонстрационными данными...")

	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Println("    - Клиенты уже есть, демо-данные пропущены.")
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var creatorID uint64
	err = tx.QueryRow(ctx,
		`SELECT id FROM users WHERE role = $1 LIMIT 1`, constants.RoleSales).Scan(&creatorID)
	if err != nil {
		return err
	}

	customers := []struct {
		Name    string
		Contact string
	}{
		{"ООО Акме", "Зарипов Фаррух"},
		{"ЗАО СтройМеталл", "Гафуров Рустам"},
	}

	inquiries := []struct {
		Customer int
		Title    string
		Priority string
		Items    []struct {
			Name     string
			Quantity float64
			Unit     string
		}
	}{
		{0, "Заказ Q3: кронштейны", constants.PriorityHigh, []struct {
			Name     string
			Quantity float64
			Unit     string
		}{
			{"Кронштейн стальной", 120, "шт"},
			{"Пластина крепежная", 240, "шт"},
		}},
		{1, "Металлоконструкции склада", constants.PriorityMedium, []struct {
			Name     string
			Quantity float64
			Unit     string
		}{
			{"Балка двутавровая 20К", 36, "м"},
		}},
	}

	customerIDs := make([]uint64, len(customers))
	for i, c := range customers {
		err := tx.QueryRow(ctx,
			`INSERT INTO customers (name, contact_fio) VALUES ($1, $2) RETURNING id`,
			c.Name, c.Contact).Scan(&customerIDs[i])
		if err != nil {
			return err
		}
	}

	for _, inq := range inquiries {
		var inquiryID uint64
		err := tx.QueryRow(ctx,
			`INSERT INTO inquiries (title, customer_id, priority, creator_id)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			inq.Title, customerIDs[inq.Customer], inq.Priority, creatorID).Scan(&inquiryID)
		if err != nil {
			return err
		}

		for _, item := range inq.Items {
			_, err := tx.Exec(ctx,
				`INSERT INTO items (inquiry_id, name, quantity, unit) VALUES ($1, $2, $3, $4)`,
				inquiryID, item.Name, item.Quantity, item.Unit)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	log.Println("    - Демо-данные созданы.")
	return nil
}
