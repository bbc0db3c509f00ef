package services

import (
	"quotation-system/internal/dto"
	"quotation-system/internal/entities"
	"quotation-system/pkg/constants"
)

// AggregateWorkloads считает загрузку каждого пользователя по полному
// (нефильтрованному) набору позиций. Для каждого пользователя из users
// всегда возвращается ровно одна запись, даже с нулевыми счетчиками,
// чтобы потребителям не нужна была ветка "пользователь не найден".
//
// Три корзины: pending (PENDING/ASSIGNED/IN_PROGRESS), completed
// (COSTED/APPROVED/QUOTED) и total - размер всего подмножества.
// Позиции в статусах вне обеих корзин (COMPLETED) входят только в total.
func AggregateWorkloads(items []entities.Item, users []entities.User) []dto.UserWorkloadDTO {
	workloads := make([]dto.UserWorkloadDTO, 0, len(users))

	for _, user := range users {
		w := dto.UserWorkloadDTO{
			User: dto.ShortUserDTO{ID: user.ID, Fio: user.Fio},
			Role: user.Role,
		}
		for _, item := range items {
			if item.AssignedToID == nil || *item.AssignedToID != user.ID {
				continue
			}
			w.Total++
			switch {
			case constants.IsPendingStatus(item.Status):
				w.Pending++
			case constants.IsCompletedStatus(item.Status):
				w.Completed++
			}
		}
		workloads = append(workloads, w)
	}

	return workloads
}
