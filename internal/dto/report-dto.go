package dto

type ReportItemDTO struct {
	ItemID       uint64  `json:"item_id"`
	ItemName     string  `json:"item_name"`
	InquiryTitle string  `json:"inquiry_title"`
	CustomerName string  `json:"customer_name"`
	Priority     string  `json:"priority"`
	Status       string  `json:"status"`
	AssigneeFio  string  `json:"assignee_fio"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	TotalCost    float64 `json:"total_cost"`
	CreatedAt    string  `json:"created_at"`
}
