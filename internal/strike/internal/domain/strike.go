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
	"strings"
)

var ErrUnknownSeverity = errors.New("未知的记过严重度")

// MaxActiveStrikes 生效记过达到该数学生被停用
const MaxActiveStrikes = 3

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func ParseSeverity(raw string) (Severity, error) {
	switch Severity(strings.ToLower(strings.TrimSpace(raw))) {
	case SeverityLow:
		return SeverityLow, nil
	case SeverityMedium:
		return SeverityMedium, nil
	case SeverityHigh:
		return SeverityHigh, nil
	default:
		return "", ErrUnknownSeverity
	}
}

type Strike struct {
	ID        int64
	StudentID int64
	// 企业签发时记录签发企业，admin 签发时为 0
	CompanyID int64
	// 可选关联到具体项目
	ProjectID int64
	Reason    string
	Severity  Severity
	IsActive  bool
	IssuedAt  int64
	Ctime     int64
	Utime     int64
}
