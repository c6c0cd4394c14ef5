package web

type SaveStudentReq struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	Name     string `json:"name"`
	APILevel int    `json:"apiLevel"`
	TRLLevel int    `json:"trlLevel"`
}

type StudentVO struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	APILevel          int     `json:"apiLevel"`
	TRLLevel          int     `json:"trlLevel"`
	Strikes           int     `json:"strikes"`
	GPA               float64 `json:"gpa"`
	CompletedProjects int64   `json:"completedProjects"`
	TotalHours        int64   `json:"totalHours"`
	Status            string  `json:"status"`
	Ctime             int64   `json:"ctime"`
	Utime             int64   `json:"utime"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type UpdateStatusReq struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListStudentResp struct {
	List  []StudentVO `json:"list"`
	Total int64       `json:"total"`
}
