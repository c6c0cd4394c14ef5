package web

type SubmitReq struct {
	ProjectID          int64  `json:"projectId"`
	CompatibilityScore int    `json:"compatibilityScore"`
	CoverLetter        string `json:"coverLetter"`
	StudentNotes       string `json:"studentNotes"`
	PortfolioURL       string `json:"portfolioUrl"`
	GithubURL          string `json:"githubUrl"`
	LinkedinURL        string `json:"linkedinUrl"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type TransitionReq struct {
	Id     int64  `json:"id"`
	Target string `json:"target"`
	Note   string `json:"note"`
}

type EligibilityReq struct {
	ProjectID int64 `json:"projectId"`
}

type ListByProjectReq struct {
	ProjectID int64 `json:"projectId"`
	Offset    int   `json:"offset"`
	Limit     int   `json:"limit"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ApplicationVO struct {
	ID                 int64  `json:"id"`
	ProjectID          int64  `json:"projectId"`
	StudentID          int64  `json:"studentId"`
	Status             string `json:"status"`
	CompatibilityScore int    `json:"compatibilityScore"`
	CoverLetter        string `json:"coverLetter"`
	StudentNotes       string `json:"studentNotes"`
	CompanyNotes       string `json:"companyNotes"`
	PortfolioURL       string `json:"portfolioUrl,omitempty"`
	GithubURL          string `json:"githubUrl,omitempty"`
	LinkedinURL        string `json:"linkedinUrl,omitempty"`
	AppliedAt          int64  `json:"appliedAt"`
	ReviewedAt         int64  `json:"reviewedAt,omitempty"`
	RespondedAt        int64  `json:"respondedAt,omitempty"`
}

type AssignmentVO struct {
	ID             int64  `json:"id"`
	ApplicationID  int64  `json:"applicationId"`
	StudentID      int64  `json:"studentId"`
	ProjectID      int64  `json:"projectId"`
	Status         string `json:"status"`
	StartDate      int64  `json:"startDate"`
	EndDate        int64  `json:"endDate,omitempty"`
	HoursWorked    int64  `json:"hoursWorked"`
	TasksCompleted int64  `json:"tasksCompleted"`
}

type EligibilityVO struct {
	OK      bool     `json:"ok"`
	Reasons []string `json:"reasons,omitempty"`
}

type ListApplicationResp struct {
	List  []ApplicationVO `json:"list"`
	Total int64           `json:"total"`
}
