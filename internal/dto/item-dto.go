package dto

type ItemDTO struct {
	ID              uint64        `json:"id"`
	InquiryID       uint64        `json:"inquiry_id"`
	Name            string        `json:"name"`
	Description     *string       `json:"description,omitempty"`
	Quantity        float64       `json:"quantity"`
	Unit            string        `json:"unit"`
	Status          string        `json:"status"`
	AssignedTo      *ShortUserDTO `json:"assigned_to,omitempty"`
	InquiryTitle    string        `json:"inquiry_title"`
	InquiryPriority string        `json:"inquiry_priority"`
	CustomerID      uint64        `json:"customer_id"`
	CustomerName    string        `json:"customer_name"`
	Costing         *CostingDTO   `json:"costing,omitempty"`
	CreatedAt       string        `json:"created_at"`
}

type CreateItemDTO struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Description *string `json:"description,omitempty"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	Unit        string  `json:"unit" validate:"required,min=1,max=32"`
}

type CostingDTO struct {
	MaterialCost float64 `json:"material_cost"`
	LaborCost    float64 `json:"labor_cost"`
	OverheadCost float64 `json:"overhead_cost"`
	MarginPct    float64 `json:"margin_pct"`
	UnitCost     float64 `json:"unit_cost"`
	TotalCost    float64 `json:"total_cost"`
}

// SaveCostingDTO - входные данные расчета. Итоговые суммы считает сервис.
type SaveCostingDTO struct {
	MaterialCost float64 `json:"material_cost" validate:"gte=0"`
	LaborCost    float64 `json:"labor_cost" validate:"gte=0"`
	OverheadCost float64 `json:"overhead_cost" validate:"gte=0"`
	MarginPct    float64 `json:"margin_pct" validate:"gte=0,lte=100"`
}

type ItemListDTO struct {
	List       []ItemDTO `json:"list"`
	TotalCount uint64    `json:"total_count"`
}
