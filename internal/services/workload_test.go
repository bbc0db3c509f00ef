package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotation-system/internal/entities"
	"quotation-system/pkg/constants"
	"quotation-system/pkg/utils"
)

func statusItem(id uint64, status string, assignedTo uint64) entities.Item {
	item := makeItem(id, "Позиция", utils.ToPtr(assignedTo))
	item.Status = status
	return item
}

func TestAggregateWorkloads_EntryPerUserEvenWithZeroItems(t *testing.T) {
	users := []entities.User{
		{ID: 1, Fio: "Петров Иван", Role: constants.RoleVP},
		{ID: 2, Fio: "Каримов Далер", Role: constants.RoleVPP},
	}

	workloads := AggregateWorkloads(nil, users)

	require.Len(t, workloads, 2, "запись должна быть у каждого пользователя")
	for _, w := range workloads {
		assert.Zero(t, w.Pending)
		assert.Zero(t, w.Completed)
		assert.Zero(t, w.Total)
	}
	assert.Equal(t, uint64(1), workloads[0].User.ID, "порядок записей следует порядку пользователей")
}

func TestAggregateWorkloads_ThreeWayPartition(t *testing.T) {
	users := []entities.User{{ID: 1, Fio: "Петров Иван", Role: constants.RoleVP}}
	items := []entities.Item{
		statusItem(1, constants.ItemStatusPending, 1),
		statusItem(2, constants.ItemStatusAssigned, 1),
		statusItem(3, constants.ItemStatusInProgress, 1),
		statusItem(4, constants.ItemStatusCosted, 1),
		statusItem(5, constants.ItemStatusApproved, 1),
		statusItem(6, constants.ItemStatusQuoted, 1),
		// COMPLETED входит в total, но не в pending/completed.
		statusItem(7, constants.ItemStatusCompleted, 1),
	}

	workloads := AggregateWorkloads(items, users)

	require.Len(t, workloads, 1)
	w := workloads[0]
	assert.Equal(t, 3, w.Pending)
	assert.Equal(t, 3, w.Completed)
	assert.Equal(t, 7, w.Total)
	assert.LessOrEqual(t, w.Pending+w.Completed, w.Total)
}

func TestAggregateWorkloads_IgnoresOtherUsersAndUnassigned(t *testing.T) {
	users := []entities.User{{ID: 1, Fio: "Петров Иван", Role: constants.RoleVP}}
	items := []entities.Item{
		statusItem(1, constants.ItemStatusPending, 1),
		statusItem(2, constants.ItemStatusPending, 2),
		makeItem(3, "Без исполнителя", nil),
	}

	workloads := AggregateWorkloads(items, users)

	require.Len(t, workloads, 1)
	assert.Equal(t, 1, workloads[0].Total, "чужие и неназначенные позиции не должны учитываться")
}
