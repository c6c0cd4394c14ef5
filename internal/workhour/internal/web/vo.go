package web

type LogReq struct {
	AssignmentID int64  `json:"assignmentId"`
	Date         int64  `json:"date"`
	Hours        int    `json:"hours"`
	Description  string `json:"description"`
}

type VerifyReq struct {
	Id       int64 `json:"id"`
	Approved bool  `json:"approved"`
}

type ReverseReq struct {
	Id     int64  `json:"id"`
	Reason string `json:"reason"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListByProjectReq struct {
	ProjectID int64 `json:"projectId"`
	Offset    int   `json:"offset"`
	Limit     int   `json:"limit"`
}

type WorkHourVO struct {
	ID                  int64  `json:"id"`
	StudentID           int64  `json:"studentId"`
	ProjectID           int64  `json:"projectId"`
	AssignmentID        int64  `json:"assignmentId"`
	Date                int64  `json:"date"`
	Hours               int    `json:"hours"`
	Description         string `json:"description"`
	IsVerified          bool   `json:"isVerified"`
	VerifiedBy          int64  `json:"verifiedBy,omitempty"`
	VerifiedAt          int64  `json:"verifiedAt,omitempty"`
	RejectedBy          int64  `json:"rejectedBy,omitempty"`
	RejectedAt          int64  `json:"rejectedAt,omitempty"`
	IsProjectCompletion bool   `json:"isProjectCompletion"`
	ReversalOf          int64  `json:"reversalOf,omitempty"`
	Ctime               int64  `json:"ctime"`
}

type ListWorkHourResp struct {
	List  []WorkHourVO `json:"list"`
	Total int64        `json:"total"`
}
