package entities

import (
	"quotation-system/pkg/types"
)

// Item - единица работы, принадлежащая ровно одному запросу.
// Связь с запросом неизменяема после создания; статус и исполнитель
// мутируются процессами назначения и расчета стоимости.
type Item struct {
	ID          uint64  `json:"id" db:"id"`
	InquiryID   uint64  `json:"inquiry_id" db:"inquiry_id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	Quantity    float64 `json:"quantity" db:"quantity"`
	Unit        string  `json:"unit" db:"unit"`
	Status      string  `json:"status" db:"status"`

	// Слабая ссылка на исполнителя (VP/VPP). nil = позиция не назначена.
	AssignedToID *uint64 `json:"assigned_to_id" db:"assigned_to_id"`

	// Подзапись расчета стоимости. nil до первого сохранения расчета.
	Costing *Costing `json:"costing,omitempty" db:"-"`

	// Денормализация из JOIN для фильтрации и отображения.
	InquiryTitle    string  `json:"inquiry_title" db:"-"`
	InquiryPriority string  `json:"inquiry_priority" db:"-"`
	CustomerID      uint64  `json:"customer_id" db:"-"`
	CustomerName    string  `json:"customer_name" db:"-"`
	AssignedToFio   *string `json:"assigned_to_fio,omitempty" db:"-"`

	types.BaseEntity
	types.SoftDelete
}

// Costing - расчет стоимости позиции.
type Costing struct {
	ItemID       uint64  `json:"item_id" db:"item_id"`
	MaterialCost float64 `json:"material_cost" db:"material_cost"`
	LaborCost    float64 `json:"labor_cost" db:"labor_cost"`
	OverheadCost float64 `json:"overhead_cost" db:"overhead_cost"`
	MarginPct    float64 `json:"margin_pct" db:"margin_pct"`
	UnitCost     float64 `json:"unit_cost" db:"unit_cost"`
	TotalCost    float64 `json:"total_cost" db:"total_cost"`
}
