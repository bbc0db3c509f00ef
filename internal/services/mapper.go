package services

import (
	"time"

	"quotation-system/internal/dto"
	"quotation-system/internal/entities"
	"quotation-system/pkg/utils"
)

const displayTimeFormat = "02.01.2006 15:04"

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(displayTimeFormat)
}

func mapItemToDTO(item entities.Item) dto.ItemDTO {
	out := dto.ItemDTO{
		ID:              item.ID,
		InquiryID:       item.InquiryID,
		Name:            item.Name,
		Description:     item.Description,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		Status:          item.Status,
		InquiryTitle:    item.InquiryTitle,
		InquiryPriority: item.InquiryPriority,
		CustomerID:      item.CustomerID,
		CustomerName:    item.CustomerName,
		CreatedAt:       formatTime(item.CreatedAt),
	}
	if item.AssignedToID != nil {
		out.AssignedTo = &dto.ShortUserDTO{
			ID:  *item.AssignedToID,
			Fio: utils.SafeDeref(item.AssignedToFio),
		}
	}
	if item.Costing != nil {
		out.Costing = &dto.CostingDTO{
			MaterialCost: item.Costing.MaterialCost,
			LaborCost:    item.Costing.LaborCost,
			OverheadCost: item.Costing.OverheadCost,
			MarginPct:    item.Costing.MarginPct,
			UnitCost:     item.Costing.UnitCost,
			TotalCost:    item.Costing.TotalCost,
		}
	}
	return out
}

func mapItemsToDTO(items []entities.Item) []dto.ItemDTO {
	out := make([]dto.ItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, mapItemToDTO(item))
	}
	return out
}

func mapCustomerToDTO(c entities.Customer) dto.CustomerDTO {
	return dto.CustomerDTO{
		ID:          c.ID,
		Name:        c.Name,
		ContactFio:  c.ContactFio,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		IsActive:    c.IsActive,
	}
}

func mapCustomersToDTO(customers []entities.Customer) []dto.CustomerDTO {
	out := make([]dto.CustomerDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, mapCustomerToDTO(c))
	}
	return out
}

func mapUserToDTO(u entities.User) dto.UserDTO {
	return dto.UserDTO{
		ID:       u.ID,
		Fio:      u.Fio,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func mapInquiryToDTO(inq entities.Inquiry) dto.InquiryDTO {
	return dto.InquiryDTO{
		ID:           inq.ID,
		Title:        inq.Title,
		CustomerID:   inq.CustomerID,
		CustomerName: inq.CustomerName,
		Priority:     inq.Priority,
		Comment:      inq.Comment,
		CreatedAt:    formatTime(inq.CreatedAt),
	}
}
