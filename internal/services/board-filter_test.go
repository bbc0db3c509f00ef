package services

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"quotation-system/internal/dto"
	"quotation-system/internal/entities"
	"quotation-system/pkg/constants"
	"quotation-system/pkg/utils"
)

func makeItem(id uint64, name string, assignedTo *uint64) entities.Item {
	return entities.Item{
		ID:              id,
		InquiryID:       10,
		Name:            name,
		Quantity:        1,
		Unit:            "шт",
		Status:          constants.ItemStatusPending,
		AssignedToID:    assignedTo,
		InquiryTitle:    "Заказ Q3",
		InquiryPriority: constants.PriorityHigh,
		CustomerID:      7,
		CustomerName:    "ООО Акме",
	}
}

func TestItemFilter_EmptyFilterMatchesEverything(t *testing.T) {
	item := makeItem(1, "Кронштейн стальной", nil)
	assert.True(t, ItemFilter{}.Matches(item), "пустой фильтр должен пропускать любую позицию")
}

func TestItemFilter_SearchAcrossFields(t *testing.T) {
	item := makeItem(1, "Steel Bracket", nil)
	item.InquiryTitle = "Q3 Order"
	item.CustomerName = "Acme"

	cases := []struct {
		search string
		want   bool
	}{
		{"acme", true},
		{"ACME", true},
		{"  q3 ", true},
		{"bracket", true},
		{"bolt", false},
	}
	for _, tc := range cases {
		got := ItemFilter{Search: tc.search}.Matches(item)
		assert.Equalf(t, tc.want, got, "поиск %q", tc.search)
	}
}

func TestItemFilter_SearchLooksIntoDescription(t *testing.T) {
	item := makeItem(1, "Кронштейн", nil)
	item.Description = utils.ToPtr("оцинкованная сталь")

	assert.True(t, ItemFilter{Search: "оцинков"}.Matches(item))
	assert.False(t, ItemFilter{Search: "латунь"}.Matches(item),
		"поиск не должен находить отсутствующий текст")
}

func TestItemFilter_UnassignedSentinel(t *testing.T) {
	free := makeItem(1, "Кронштейн", nil)
	taken := makeItem(2, "Пластина", utils.ToPtr(uint64(42)))

	f := ItemFilter{AssignedTo: constants.UnassignedSentinel}
	assert.True(t, f.Matches(free), "страж должен пропускать позиции без исполнителя")
	assert.False(t, f.Matches(taken), "страж не должен пропускать назначенные позиции")
}

func TestItemFilter_AssignedToExactMatch(t *testing.T) {
	taken := makeItem(1, "Кронштейн", utils.ToPtr(uint64(42)))

	assert.True(t, ItemFilter{AssignedTo: "42"}.Matches(taken))
	assert.False(t, ItemFilter{AssignedTo: "7"}.Matches(taken))
	assert.False(t, ItemFilter{AssignedTo: "42"}.Matches(makeItem(2, "Пластина", nil)),
		"позиция без исполнителя не совпадает с конкретным исполнителем")
}

// Добавление измерения, которому позиция уже удовлетворяет, не должно
// выкидывать ее из выборки: измерения объединяются монотонным AND.
func TestItemFilter_MonotonicAND(t *testing.T) {
	item := makeItem(1, "Кронштейн", nil)

	f := ItemFilter{Status: constants.ItemStatusPending}
	assert.True(t, f.Matches(item))

	f.Priority = constants.PriorityHigh
	assert.True(t, f.Matches(item), "удовлетворенное измерение не должно сужать результат")

	f.CustomerID = "7"
	f.InquiryID = "10"
	f.AssignedTo = constants.UnassignedSentinel
	assert.True(t, f.Matches(item))
}

func TestItemFilter_DimensionMismatch(t *testing.T) {
	item := makeItem(1, "Кронштейн", nil)

	assert.False(t, ItemFilter{Status: constants.ItemStatusCosted}.Matches(item))
	assert.False(t, ItemFilter{Priority: constants.PriorityLow}.Matches(item))
	assert.False(t, ItemFilter{CustomerID: "8"}.Matches(item))
	assert.False(t, ItemFilter{InquiryID: "11"}.Matches(item))
}

func TestItemFilter_MergeKeepsUntouchedDimensions(t *testing.T) {
	f := ItemFilter{Search: "акме", Status: constants.ItemStatusPending}

	merged := f.Merge(dto.BoardFilterDTO{
		Priority: null.StringFrom(constants.PriorityUrgent),
	})

	assert.Equal(t, "акме", merged.Search, "непереданное поле должно сохраниться")
	assert.Equal(t, constants.ItemStatusPending, merged.Status)
	assert.Equal(t, constants.PriorityUrgent, merged.Priority)
}

func TestItemFilter_MergeEmptyStringClearsDimension(t *testing.T) {
	f := ItemFilter{Status: constants.ItemStatusPending}

	merged := f.Merge(dto.BoardFilterDTO{Status: null.StringFrom("")})

	assert.Empty(t, merged.Status, "пустая строка должна снимать ограничение")
	assert.True(t, merged.Matches(makeItem(1, "Кронштейн", nil)))
}
