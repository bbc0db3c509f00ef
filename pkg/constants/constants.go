package constants

//============== СТАТУСЫ ПОЗИЦИЙ ==============

// Коды статусов позиции (совпадают со значениями в БД).
// Порядок рабочего процесса: PENDING -> ASSIGNED -> IN_PROGRESS -> COSTED -> APPROVED -> QUOTED -> COMPLETED.
const (
	ItemStatusPending    = "PENDING"
	ItemStatusAssigned   = "ASSIGNED"
	ItemStatusInProgress = "IN_PROGRESS"
	ItemStatusCosted     = "COSTED"
	ItemStatusApproved   = "APPROVED"
	ItemStatusQuoted     = "QUOTED"
	ItemStatusCompleted  = "COMPLETED"
)

// PendingStatuses - статусы, которые считаются "в работе" у исполнителя.
var PendingStatuses = []string{
	ItemStatusPending,
	ItemStatusAssigned,
	ItemStatusInProgress,
}

// CompletedStatuses - статусы, которые считаются "выполненными" исполнителем.
// COMPLETED сюда намеренно не входит: полностью закрытые позиции
// выпадают из обоих счетчиков загрузки (см. WorkloadAggregator).
var CompletedStatuses = []string{
	ItemStatusCosted,
	ItemStatusApproved,
	ItemStatusQuoted,
}

// allowedTransitions описывает допустимые переходы статусов позиции.
var allowedTransitions = map[string][]string{
	ItemStatusPending:    {ItemStatusAssigned},
	ItemStatusAssigned:   {ItemStatusPending, ItemStatusInProgress, ItemStatusCosted},
	ItemStatusInProgress: {ItemStatusCosted, ItemStatusPending},
	ItemStatusCosted:     {ItemStatusApproved, ItemStatusInProgress},
	ItemStatusApproved:   {ItemStatusQuoted},
	ItemStatusQuoted:     {ItemStatusCompleted},
}

// CanTransitItemStatus проверяет, допустим ли переход из статуса from в статус to.
func CanTransitItemStatus(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func IsPendingStatus(code string) bool {
	for _, s := range PendingStatuses {
		if s == code {
			return true
		}
	}
	return false
}

func IsCompletedStatus(code string) bool {
	for _, s := range CompletedStatuses {
		if s == code {
			return true
		}
	}
	return false
}

//============== ПРИОРИТЕТЫ ЗАПРОСОВ ==============

const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// prioritySeverity - ранг серьезности приоритета (чем больше, тем срочнее).
var prioritySeverity = map[string]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
	PriorityUrgent: 4,
}

// PrioritySeverity возвращает ранг серьезности. Неизвестный код = 0,
// то есть слабее любого известного приоритета.
func PrioritySeverity(code string) int {
	return prioritySeverity[code]
}

//============== РОЛИ ПОЛЬЗОВАТЕЛЕЙ ==============

const (
	RoleAdmin = "ADMIN"
	RoleSales = "SALES"
	RoleVP    = "VP"
	RoleVPP   = "VPP"
)

// AssignableRoles - роли, которым можно назначать позиции на расчет.
var AssignableRoles = []string{RoleVP, RoleVPP}

func IsAssignableRole(code string) bool {
	for _, r := range AssignableRoles {
		if r == code {
			return true
		}
	}
	return false
}

//============== ФИЛЬТР НАЗНАЧЕНИЙ ==============

// UnassignedSentinel - зарезервированное значение фильтра assigned_to,
// означающее "позиции без исполнителя".
const UnassignedSentinel = "unassigned"

//============== КЛЮЧИ КЕША ==============

// CacheKeySessionUser - краткий профиль пользователя для сессии.
// Формат: session_user:<userID>.
const CacheKeySessionUser = "session_user:%d"
