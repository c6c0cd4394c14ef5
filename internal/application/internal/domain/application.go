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

type Application struct {
	ID        int64
	ProjectID int64
	StudentID int64
	Status    Status
	// CompatibilityScore 0..100，由外部匹配程序算出，这里只存不算
	CompatibilityScore int
	CoverLetter        string
	StudentNotes       string
	CompanyNotes       string
	PortfolioURL       string
	GithubURL          string
	LinkedinURL        string
	AppliedAt          int64
	ReviewedAt         int64
	RespondedAt        int64
	Ctime              int64
	Utime              int64
}

// AssignmentStatus 派遣状态
type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusActive    AssignmentStatus = "active"
	AssignmentStatusCompleted AssignmentStatus = "completed"
	AssignmentStatusCancelled AssignmentStatus = "cancelled"
)

func (s AssignmentStatus) String() string {
	return string(s)
}

// Assignment 申请被接受后一比一生成的派遣
type Assignment struct {
	ID            int64
	ApplicationID int64
	StudentID     int64
	ProjectID     int64
	Status        AssignmentStatus
	StartDate     int64
	EndDate       int64
	HoursWorked   int64
	TasksCompleted int64
	Ctime          int64
	Utime          int64
}

// Eligibility 报名资格核验结果，Reasons 为空表示可以申请
type Eligibility struct {
	OK      bool
	Reasons []string
}
