package web

type SubmitReq struct {
	ProjectID           int64   `json:"projectId"`
	StudentID           int64   `json:"studentId"`
	Type                string  `json:"type"`
	Score               float64 `json:"score"`
	Comments            string  `json:"comments"`
	Strengths           string  `json:"strengths"`
	AreasForImprovement string  `json:"areasForImprovement"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type ListByProjectReq struct {
	ProjectID int64 `json:"projectId"`
	Offset    int   `json:"offset"`
	Limit     int   `json:"limit"`
}

type ListByStudentReq struct {
	StudentID int64 `json:"studentId"`
	Offset    int   `json:"offset"`
	Limit     int   `json:"limit"`
}

type RecomputeReq struct {
	CompanyID int64 `json:"companyId"`
	StudentID int64 `json:"studentId"`
}

type EvaluationVO struct {
	ID                  int64   `json:"id"`
	ProjectID           int64   `json:"projectId"`
	StudentID           int64   `json:"studentId"`
	EvaluatorID         int64   `json:"evaluatorId"`
	EvaluatorRole       string  `json:"evaluatorRole"`
	Type                string  `json:"type"`
	Score               float64 `json:"score"`
	Comments            string  `json:"comments"`
	Strengths           string  `json:"strengths,omitempty"`
	AreasForImprovement string  `json:"areasForImprovement,omitempty"`
	Status              string  `json:"status"`
	EvaluationDate      int64   `json:"evaluationDate"`
	Ctime               int64   `json:"ctime"`
}

type ListEvaluationResp struct {
	List []EvaluationVO `json:"list"`
}

type RecomputeResp struct {
	Companies int64 `json:"companies"`
	Students  int64 `json:"students"`
}
