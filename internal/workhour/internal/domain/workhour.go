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

import "time"

// MaxHoursPerEntry 单条流水最多 24 小时
const MaxHoursPerEntry = 24

// WorkHour 是工时台账的一条流水。
// 台账只追加不修改，更正通过负数的冲正流水完成。
type WorkHour struct {
	ID           int64
	StudentID    int64
	ProjectID    int64
	AssignmentID int64
	// Date 工作日期，UnixMilli
	Date int64
	// HoursWorked 正数为正常流水，负数为冲正流水
	HoursWorked int
	Description string
	IsVerified  bool
	VerifiedBy  int64
	VerifiedAt  int64
	// RejectedBy/RejectedAt 最近一次驳回的印记，复核通过后清空
	RejectedBy int64
	RejectedAt int64
	// IsProjectCompletion 项目结项时铸造的结项流水
	IsProjectCompletion bool
	// ReversalOf 冲正流水指向的原始流水ID
	ReversalOf int64
	Ctime      int64
	Utime      int64
}

// IsReversal 是否为冲正流水
func (w WorkHour) IsReversal() bool {
	return w.ReversalOf > 0
}

// ValidateEntry 校验一条待追加的正常流水
func (w WorkHour) ValidateEntry(now time.Time) error {
	if w.HoursWorked <= 0 || w.HoursWorked > MaxHoursPerEntry {
		return ErrInvalidHours
	}
	if w.Date > now.UnixMilli() {
		return ErrFutureDate
	}
	return nil
}
