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

import "fmt"

type Project struct {
	ID           int64
	CompanyID    int64
	Title        string
	Description  string
	Requirements string
	Status       Status
	// TRL 技术成熟度 1..9，APILevel 由 TRL 推导
	TRL         int
	APILevel    int
	MinAPILevel int
	// RequiredHours 必须落在 TRL 对应的工时档位内
	RequiredHours int
	HoursPerWeek  int
	DurationWeeks int
	MaxStudents   int
	CurrentStudents   int
	StartDate         int64
	EstimatedEndDate  int64
	RealEndDate       int64
	ApplicationsCount int64
	ViewsCount        int64
	PublishedAt       int64
	Ctime             int64
	Utime             int64
}

// ValidationError 字段级校验失败
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("字段 %s 校验失败: %s", e.Field, e.Reason)
}

// Validate 校验与状态无关的字段不变式
func (p Project) Validate() error {
	if p.Title == "" {
		return ValidationError{Field: "title", Reason: "不能为空"}
	}
	if p.TRL < 1 || p.TRL > 9 {
		return ValidationError{Field: "trl", Reason: "必须在 1..9"}
	}
	if p.HoursPerWeek <= 0 {
		return ValidationError{Field: "hoursPerWeek", Reason: "必须大于 0"}
	}
	if p.DurationWeeks <= 0 {
		return ValidationError{Field: "durationWeeks", Reason: "必须大于 0"}
	}
	if p.RequiredHours < 0 {
		return ValidationError{Field: "requiredHours", Reason: "不能为负数"}
	}
	// 总工时与每周工时×周数允许一周的误差
	diff := p.RequiredHours - p.HoursPerWeek*p.DurationWeeks
	if diff < 0 {
		diff = -diff
	}
	if diff > p.HoursPerWeek {
		return ValidationError{Field: "requiredHours", Reason: "与每周工时×周数不一致"}
	}
	if p.MaxStudents < 1 {
		return ValidationError{Field: "maxStudents", Reason: "至少为 1"}
	}
	if p.StartDate > 0 && p.EstimatedEndDate > 0 && p.EstimatedEndDate < p.StartDate {
		return ValidationError{Field: "estimatedEndDate", Reason: "不能早于开始日期"}
	}
	return nil
}
