package domain

// AssignmentRef 派遣的只读快照，记工时前做归属与状态校验用
type AssignmentRef struct {
	ID            int64
	ApplicationID int64
	StudentID     int64
	ProjectID     int64
	Status        string
	StartDate     int64
}

// ProjectRef 项目的只读快照
type ProjectRef struct {
	ID            int64
	CompanyID     int64
	Status        string
	RequiredHours int
}
