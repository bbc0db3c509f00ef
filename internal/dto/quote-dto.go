package dto

type CreateQuoteDTO struct {
	InquiryID uint64 `json:"inquiry_id" validate:"required,gt=0"`
}

type QuoteDTO struct {
	ID           uint64  `json:"id"`
	InquiryID    uint64  `json:"inquiry_id"`
	Number       string  `json:"number"`
	Currency     string  `json:"currency"`
	Total        float64 `json:"total"`
	ValidUntil   string  `json:"valid_until"`
	CustomerName string  `json:"customer_name"`
	CreatedAt    string  `json:"created_at"`
}
