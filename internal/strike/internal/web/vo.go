package web

type IssueReq struct {
	StudentID int64  `json:"studentId"`
	ProjectID int64  `json:"projectId"`
	Reason    string `json:"reason"`
	Severity  string `json:"severity"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type ListByStudentReq struct {
	StudentID int64 `json:"studentId"`
	Offset    int   `json:"offset"`
	Limit     int   `json:"limit"`
}

type StrikeVO struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"studentId"`
	CompanyID int64  `json:"companyId,omitempty"`
	ProjectID int64  `json:"projectId,omitempty"`
	Reason    string `json:"reason"`
	Severity  string `json:"severity"`
	IsActive  bool   `json:"isActive"`
	IssuedAt  int64  `json:"issuedAt"`
}

type ListStrikeResp struct {
	List []StrikeVO `json:"list"`
}
