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

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrUnknownType  = errors.New("未知的评价类型")
	ErrInvalidScore = errors.New("评分必须在 1.0 到 5.0 之间")
)

// Type 评价方向。企业评学生影响学生 GPA，学生评企业影响企业评分
type Type string

const (
	TypeCompanyToStudent Type = "company_to_student"
	TypeStudentToCompany Type = "student_to_company"
)

func ParseType(raw string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(raw))) {
	case TypeCompanyToStudent:
		return TypeCompanyToStudent, nil
	case TypeStudentToCompany:
		return TypeStudentToCompany, nil
	default:
		return "", ErrUnknownType
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFlagged   Status = "flagged"
)

type Evaluation struct {
	ID          int64
	ProjectID   int64
	StudentID   int64
	EvaluatorID int64
	// 提交时操作者的角色，admin 代提交时与 Type 解耦
	EvaluatorRole       string
	Type                Type
	Score               float64
	Comments            string
	Strengths           string
	AreasForImprovement string
	Status              Status
	EvaluationDate      int64
	Ctime               int64
	Utime               int64
}

// Normalize 评分收敛到一位小数，越界的直接报错
func (e *Evaluation) Normalize() error {
	if e.Type != TypeCompanyToStudent && e.Type != TypeStudentToCompany {
		return ErrUnknownType
	}
	e.Score = Round1(e.Score)
	if e.Score < 1.0 || e.Score > 5.0 {
		return ErrInvalidScore
	}
	return nil
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 聚合值（企业评分、学生 GPA）统一两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
