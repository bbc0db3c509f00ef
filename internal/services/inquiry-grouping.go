package services

import (
	"quotation-system/internal/dto"
	"quotation-system/internal/entities"
	"quotation-system/pkg/constants"
)

// GroupItemsByInquiry собирает плоский список позиций в группы по
// родительскому запросу. Группировка стабильна: порядок групп следует
// первому появлению inquiry_id во входной последовательности, порядок
// позиций внутри группы - порядку во входе. Пустой вход дает ноль групп.
func GroupItemsByInquiry(items []entities.Item) []dto.InquiryGroupDTO {
	groups := make([]dto.InquiryGroupDTO, 0)
	index := make(map[uint64]int)

	for _, item := range items {
		i, ok := index[item.InquiryID]
		if !ok {
			i = len(groups)
			index[item.InquiryID] = i
			groups = append(groups, dto.InquiryGroupDTO{
				InquiryID:    item.InquiryID,
				Title:        item.InquiryTitle,
				CustomerName: item.CustomerName,
				Priority:     item.InquiryPriority,
				Items:        make([]dto.ItemDTO, 0, 1),
			})
		}
		groups[i].Items = append(groups[i].Items, mapItemToDTO(item))
	}

	for i := range groups {
		groups[i].EffectivePriority = effectivePriority(groups[i])
	}

	return groups
}

// effectivePriority возвращает самый срочный приоритет среди номинального
// приоритета группы и приоритетов запросов всех ее позиций. В нормальных
// данных все позиции группы ссылаются на один запрос и результат совпадает
// с номинальным; при рассогласовании данных функция не падает, а берет
// максимум по рангу серьезности.
func effectivePriority(group dto.InquiryGroupDTO) string {
	best := group.Priority
	bestRank := constants.PrioritySeverity(best)
	for _, item := range group.Items {
		if rank := constants.PrioritySeverity(item.InquiryPriority); rank > bestRank {
			best = item.InquiryPriority
			bestRank = rank
		}
	}
	return best
}
