// Copyright 2023 leanmaker
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

// CompanyStatus 公司状态
type CompanyStatus string

const (
	CompanyStatusActive    CompanyStatus = "active"
	CompanyStatusInactive  CompanyStatus = "inactive"
	CompanyStatusSuspended CompanyStatus = "suspended"
)

func (s CompanyStatus) IsValid() bool {
	switch s {
	case CompanyStatusActive, CompanyStatusInactive, CompanyStatusSuspended:
		return true
	default:
		return false
	}
}

func (s CompanyStatus) String() string {
	return string(s)
}

// Company 是公司聚合。
// Rating 与各项计数器是冗余在主行上的聚合值，
// 由评价与项目模块在各自的事务里维护，并可通过对账任务重算。
type Company struct {
	ID     int64
	UserID int64
	Name   string
	// Rating 等于该公司名下项目全部已完成 student_to_company 评价的平均分，保留两位小数
	Rating            float64
	TotalProjects     int64
	ProjectsCompleted int64
	TotalHoursOffered int64
	Verified          bool
	Status            CompanyStatus
	Ctime             int64
	Utime             int64
}
