package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitItemStatus(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"назначение", ItemStatusPending, ItemStatusAssigned, true},
		{"взятие в работу", ItemStatusAssigned, ItemStatusInProgress, true},
		{"расчет из работы", ItemStatusInProgress, ItemStatusCosted, true},
		{"расчет сразу после назначения", ItemStatusAssigned, ItemStatusCosted, true},
		{"утверждение", ItemStatusCosted, ItemStatusApproved, true},
		{"возврат на доработку", ItemStatusCosted, ItemStatusInProgress, true},
		{"включение в КП", ItemStatusApproved, ItemStatusQuoted, true},
		{"закрытие", ItemStatusQuoted, ItemStatusCompleted, true},

		{"перескок через расчет", ItemStatusPending, ItemStatusCosted, false},
		{"утверждение без расчета", ItemStatusAssigned, ItemStatusApproved, false},
		{"откат закрытой позиции", ItemStatusCompleted, ItemStatusQuoted, false},
		{"переход в саму себя", ItemStatusCosted, ItemStatusCosted, false},
		{"неизвестный исходный статус", "DRAFT", ItemStatusPending, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransitItemStatus(tc.from, tc.to))
		})
	}
}

func TestStatusPartition(t *testing.T) {
	assert.True(t, IsPendingStatus(ItemStatusPending))
	assert.True(t, IsPendingStatus(ItemStatusAssigned))
	assert.True(t, IsPendingStatus(ItemStatusInProgress))
	assert.True(t, IsCompletedStatus(ItemStatusCosted))
	assert.True(t, IsCompletedStatus(ItemStatusApproved))
	assert.True(t, IsCompletedStatus(ItemStatusQuoted))

	// COMPLETED не попадает ни в одну из групп загрузки.
	assert.False(t, IsPendingStatus(ItemStatusCompleted))
	assert.False(t, IsCompletedStatus(ItemStatusCompleted))

	assert.False(t, IsPendingStatus(ItemStatusCosted))
	assert.False(t, IsCompletedStatus(ItemStatusAssigned))
}

func TestPrioritySeverity(t *testing.T) {
	assert.Greater(t, PrioritySeverity(PriorityUrgent), PrioritySeverity(PriorityHigh))
	assert.Greater(t, PrioritySeverity(PriorityHigh), PrioritySeverity(PriorityMedium))
	assert.Greater(t, PrioritySeverity(PriorityMedium), PrioritySeverity(PriorityLow))

	// Неизвестный код слабее любого известного приоритета.
	assert.Equal(t, 0, PrioritySeverity("CRITICAL"))
	assert.Equal(t, 0, PrioritySeverity(""))
}

func TestIsAssignableRole(t *testing.T) {
	assert.True(t, IsAssignableRole(RoleVP))
	assert.True(t, IsAssignableRole(RoleVPP))
	assert.False(t, IsAssignableRole(RoleSales))
	assert.False(t, IsAssignableRole(RoleAdmin))
	assert.False(t, IsAssignableRole(""))
}
