package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotation-system/internal/entities"
	"quotation-system/pkg/constants"
)

func groupedItem(id, inquiryID uint64, priority string) entities.Item {
	item := makeItem(id, "Позиция", nil)
	item.InquiryID = inquiryID
	item.InquiryPriority = priority
	return item
}

func TestGroupItemsByInquiry_EmptyInputYieldsZeroGroups(t *testing.T) {
	assert.Empty(t, GroupItemsByInquiry(nil), "пустой вход не должен давать пустых групп")
}

func TestGroupItemsByInquiry_FirstSeenOrder(t *testing.T) {
	items := []entities.Item{
		groupedItem(1, 20, constants.PriorityLow),
		groupedItem(2, 10, constants.PriorityMedium),
		groupedItem(3, 20, constants.PriorityLow),
		groupedItem(4, 30, constants.PriorityHigh),
	}

	groups := GroupItemsByInquiry(items)

	require.Len(t, groups, 3)
	assert.Equal(t, uint64(20), groups[0].InquiryID, "порядок групп - по первому появлению")
	assert.Equal(t, uint64(10), groups[1].InquiryID)
	assert.Equal(t, uint64(30), groups[2].InquiryID)

	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, uint64(1), groups[0].Items[0].ID, "порядок позиций внутри группы - входной")
	assert.Equal(t, uint64(3), groups[0].Items[1].ID)
}

// Объединение всех групп должно быть перестановкой входа: каждая позиция
// попадает ровно в одну группу.
func TestGroupItemsByInquiry_Totality(t *testing.T) {
	items := []entities.Item{
		groupedItem(1, 10, constants.PriorityLow),
		groupedItem(2, 20, constants.PriorityLow),
		groupedItem(3, 10, constants.PriorityLow),
		groupedItem(4, 20, constants.PriorityLow),
		groupedItem(5, 30, constants.PriorityLow),
	}

	groups := GroupItemsByInquiry(items)

	seen := make(map[uint64]int)
	total := 0
	for _, g := range groups {
		for _, item := range g.Items {
			seen[item.ID]++
			total++
		}
	}

	assert.Equal(t, len(items), total)
	for id, n := range seen {
		assert.Equalf(t, 1, n, "позиция %d встречается в группах %d раз", id, n)
	}
}

func TestGroupItemsByInquiry_EffectivePriority(t *testing.T) {
	items := []entities.Item{
		groupedItem(1, 10, constants.PriorityMedium),
		groupedItem(2, 10, constants.PriorityMedium),
	}

	groups := GroupItemsByInquiry(items)
	require.Len(t, groups, 1)
	assert.Equal(t, constants.PriorityMedium, groups[0].EffectivePriority,
		"в согласованных данных эффективный приоритет совпадает с номинальным")
}

// При рассогласованных данных (позиция ссылается на приоритет другого
// запроса) берется самый срочный из увиденных, без паники.
func TestGroupItemsByInquiry_EffectivePriorityDefensive(t *testing.T) {
	items := []entities.Item{
		groupedItem(1, 10, constants.PriorityLow),
		groupedItem(2, 10, constants.PriorityUrgent),
		groupedItem(3, 10, ""),
	}

	groups := GroupItemsByInquiry(items)
	require.Len(t, groups, 1)
	assert.Equal(t, constants.PriorityUrgent, groups[0].EffectivePriority)
}
