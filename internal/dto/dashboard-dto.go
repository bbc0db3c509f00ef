package dto

type CountByGroupDTO struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type DashboardStatsDTO struct {
	TotalItems      int64             `json:"total_items"`
	UnassignedItems int64             `json:"unassigned_items"`
	CountByStatus   []CountByGroupDTO `json:"count_by_status"`
	CountByPriority []CountByGroupDTO `json:"count_by_priority"`
	CountByAssignee []CountByGroupDTO `json:"count_by_assignee"`
	Workloads       []UserWorkloadDTO `json:"workloads"`
}
