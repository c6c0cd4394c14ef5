package web

type CreateProjectReq struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Requirements     string `json:"requirements"`
	TRL              int    `json:"trl"`
	APILevel         int    `json:"apiLevel"`
	MinAPILevel      int    `json:"minApiLevel"`
	RequiredHours    int    `json:"requiredHours"`
	HoursPerWeek     int    `json:"hoursPerWeek"`
	DurationWeeks    int    `json:"durationWeeks"`
	MaxStudents      int    `json:"maxStudents"`
	StartDate        int64  `json:"startDate"`
	EstimatedEndDate int64  `json:"estimatedEndDate"`
}

type UpdateProjectReq struct {
	Id               int64  `json:"id"`
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Requirements     *string `json:"requirements"`
	TRL              *int    `json:"trl"`
	MinAPILevel      *int    `json:"minApiLevel"`
	RequiredHours    *int    `json:"requiredHours"`
	HoursPerWeek     *int    `json:"hoursPerWeek"`
	DurationWeeks    *int    `json:"durationWeeks"`
	MaxStudents      *int    `json:"maxStudents"`
	StartDate        *int64  `json:"startDate"`
	EstimatedEndDate *int64  `json:"estimatedEndDate"`
}

type TransitionReq struct {
	Id int64 `json:"id"`
	// Target 接受英文规范值或西语旧值
	Target string `json:"target"`
	Note   string `json:"note"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ProjectVO struct {
	ID                int64  `json:"id"`
	CompanyID         int64  `json:"companyId"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Requirements      string `json:"requirements"`
	Status            string `json:"status"`
	TRL               int    `json:"trl"`
	APILevel          int    `json:"apiLevel"`
	MinAPILevel       int    `json:"minApiLevel"`
	RequiredHours     int    `json:"requiredHours"`
	HoursPerWeek      int    `json:"hoursPerWeek"`
	DurationWeeks     int    `json:"durationWeeks"`
	MaxStudents       int    `json:"maxStudents"`
	CurrentStudents   int    `json:"currentStudents"`
	StartDate         int64  `json:"startDate,omitempty"`
	EstimatedEndDate  int64  `json:"estimatedEndDate,omitempty"`
	RealEndDate       int64  `json:"realEndDate,omitempty"`
	ApplicationsCount int64  `json:"applicationsCount"`
	ViewsCount        int64  `json:"viewsCount"`
	PublishedAt       int64  `json:"publishedAt,omitempty"`
	Utime             int64  `json:"utime"`
}

type ListProjectResp struct {
	List  []ProjectVO `json:"list"`
	Total int64       `json:"total"`
}

type AuditVO struct {
	From      string `json:"from"`
	To        string `json:"to"`
	ActorID   int64  `json:"actorId"`
	ActorRole string `json:"actorRole"`
	Note      string `json:"note,omitempty"`
	At        int64  `json:"at"`
}
