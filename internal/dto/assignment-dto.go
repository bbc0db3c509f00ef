package dto

import "github.com/aarondl/null/v8"

// AssignItemsDTO - команда назначения. AssigneeID = null означает снятие
// назначения со всех перечисленных позиций одним пакетным запросом.
type AssignItemsDTO struct {
	ItemIDs    []uint64    `json:"item_ids" validate:"required,min=1,dive,gt=0"`
	AssigneeID null.Uint64 `json:"assignee_id"`
}

// BoardFilterDTO - частичное обновление состояния фильтра доски.
// Незаданное поле не меняет текущее значение; пустая строка снимает
// ограничение по измерению.
type BoardFilterDTO struct {
	Search     null.String `json:"search"`
	CustomerID null.String `json:"customer_id"`
	InquiryID  null.String `json:"inquiry_id"`
	Priority   null.String `json:"priority"`
	Status     null.String `json:"status"`
	AssignedTo null.String `json:"assigned_to"`
}

type UserWorkloadDTO struct {
	User      ShortUserDTO `json:"user"`
	Role      string       `json:"role"`
	Pending   int          `json:"pending"`
	Completed int          `json:"completed"`
	Total     int          `json:"total"`
}

type InquiryGroupDTO struct {
	InquiryID         uint64    `json:"inquiry_id"`
	Title             string    `json:"title"`
	CustomerName      string    `json:"customer_name"`
	Priority          string    `json:"priority"`
	EffectivePriority string    `json:"effective_priority"`
	Items             []ItemDTO `json:"items"`
}

// AssignmentBoardDTO - композитная модель чтения доски назначений.
type AssignmentBoardDTO struct {
	UnassignedItems []ItemDTO         `json:"unassigned_items"`
	AssignedItems   []ItemDTO         `json:"assigned_items"`
	Groups          []InquiryGroupDTO `json:"groups"`
	Workloads       []UserWorkloadDTO `json:"workloads"`
	Customers       []CustomerDTO     `json:"customers"`
	Refreshing      bool              `json:"refreshing"`
}
