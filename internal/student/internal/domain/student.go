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

// StudentStatus 学生状态
type StudentStatus string

const (
	StudentStatusPending   StudentStatus = "pending"
	StudentStatusApproved  StudentStatus = "approved"
	StudentStatusSuspended StudentStatus = "suspended"
	StudentStatusRejected  StudentStatus = "rejected"
	StudentStatusBlocked   StudentStatus = "blocked"
)

func (s StudentStatus) IsValid() bool {
	switch s {
	case StudentStatusPending, StudentStatusApproved, StudentStatusSuspended,
		StudentStatusRejected, StudentStatusBlocked:
		return true
	default:
		return false
	}
}

func (s StudentStatus) String() string {
	return string(s)
}

// MaxActiveStrikes 学生累计三次有效违规即被停用
const MaxActiveStrikes = 3

// Student 是学生聚合。
// Strikes/GPA/TotalHours/CompletedProjects 是冗余在主行上的聚合值，
// 分别由违规、评价、工时、项目模块在各自的事务里维护。
type Student struct {
	ID       int64
	UserID   int64
	Name     string
	APILevel int
	// TRLLevel 学生自报的 TRL 熟悉度，可以为 0 表示未填写
	TRLLevel int
	Strikes  int
	// GPA 等于全部已完成 company_to_student 评价的平均分，两位小数
	GPA               float64
	CompletedProjects int64
	TotalHours        int64
	Status            StudentStatus
	Ctime             int64
	Utime             int64
}

func (s Student) IsApproved() bool {
	return s.Status == StudentStatusApproved
}

// IsStruckOut 是否已经触达违规上限
func (s Student) IsStruckOut() bool {
	return s.Strikes >= MaxActiveStrikes
}
