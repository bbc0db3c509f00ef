package services

import (
	"strconv"
	"strings"

	"quotation-system/internal/dto"
	"quotation-system/internal/entities"
	"quotation-system/pkg/constants"
	"quotation-system/pkg/utils"
)

// ItemFilter - состояние фильтра доски назначений. Все измерения
// независимы и объединяются логическим AND; пустая строка означает
// "измерение не ограничивает выборку".
type ItemFilter struct {
	Search     string
	CustomerID string
	InquiryID  string
	Priority   string
	Status     string

	// Идентификатор исполнителя как строка либо значение-страж
	// constants.UnassignedSentinel ("только позиции без исполнителя").
	AssignedTo string
}

// Merge накладывает частичное обновление на текущее состояние фильтра.
// Непереданные поля сохраняют прежние значения, переданная пустая
// строка снимает ограничение по измерению.
func (f ItemFilter) Merge(patch dto.BoardFilterDTO) ItemFilter {
	if patch.Search.Valid {
		f.Search = patch.Search.String
	}
	if patch.CustomerID.Valid {
		f.CustomerID = patch.CustomerID.String
	}
	if patch.InquiryID.Valid {
		f.InquiryID = patch.InquiryID.String
	}
	if patch.Priority.Valid {
		f.Priority = patch.Priority.String
	}
	if patch.Status.Valid {
		f.Status = patch.Status.String
	}
	if patch.AssignedTo.Valid {
		f.AssignedTo = patch.AssignedTo.String
	}
	return f
}

// Matches проверяет, проходит ли позиция все активные измерения фильтра.
// Функция чистая и тотальная: отсутствующие поля позиции трактуются как
// несовпадение по соответствующему измерению, а не как ошибка.
func (f ItemFilter) Matches(item entities.Item) bool {
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		haystacks := []string{
			item.Name,
			utils.SafeDeref(item.Description),
			item.InquiryTitle,
			item.CustomerName,
		}
		found := false
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), search) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.CustomerID != "" && f.CustomerID != strconv.FormatUint(item.CustomerID, 10) {
		return false
	}
	if f.InquiryID != "" && f.InquiryID != strconv.FormatUint(item.InquiryID, 10) {
		return false
	}
	if f.Priority != "" && f.Priority != item.InquiryPriority {
		return false
	}
	if f.Status != "" && f.Status != item.Status {
		return false
	}

	if f.AssignedTo != "" {
		if f.AssignedTo == constants.UnassignedSentinel {
			return item.AssignedToID == nil
		}
		if f.AssignedTo != utils.PtrToString(item.AssignedToID) {
			return false
		}
	}

	return true
}
