package web

type SaveCompanyReq struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
}

type CompanyVO struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Rating            float64 `json:"rating"`
	TotalProjects     int64   `json:"totalProjects"`
	ProjectsCompleted int64   `json:"projectsCompleted"`
	TotalHoursOffered int64   `json:"totalHoursOffered"`
	Verified          bool    `json:"verified"`
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

type ListCompanyResp struct {
	List  []CompanyVO `json:"list"`
	Total int64       `json:"total"`
}
