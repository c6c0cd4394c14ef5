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

// Package capability 维护 TRL(技术成熟度) 到 API 等级与工时区间的映射。
// 项目的 api_level 与 required_hours 必须与项目的 trl 推导结果一致。
package capability

import "errors"

var ErrInvalidTRL = errors.New("无效的 TRL，合法范围是 1-9")

// Band 是一个 TRL 区间对应的能力档位
type Band struct {
	APILevel   int
	MinHours   int
	MaxHours   int
	Descriptor string
}

// bands 按 TRL 升序排列，TRL 1-2 / 3-4 / 5-6 / 7-9 共四档
var bands = []struct {
	minTRL int
	maxTRL int
	band   Band
}{
	{1, 2, Band{APILevel: 1, MinHours: 20, MaxHours: 40, Descriptor: "principles / concept"}},
	{3, 4, Band{APILevel: 2, MinHours: 40, MaxHours: 80, Descriptor: "proof-of-concept / lab"}},
	{5, 6, Band{APILevel: 3, MinHours: 80, MaxHours: 160, Descriptor: "relevant-env validation"}},
	{7, 9, Band{APILevel: 4, MinHours: 160, MaxHours: 320, Descriptor: "operational / full system"}},
}

// FromTRL 返回 trl 对应的档位
func FromTRL(trl int) (Band, error) {
	for _, b := range bands {
		if trl >= b.minTRL && trl <= b.maxTRL {
			return b.band, nil
		}
	}
	return Band{}, ErrInvalidTRL
}

// APILevelForTRL 只取 API 等级，trl 非法时返回 0
func APILevelForTRL(trl int) int {
	b, err := FromTRL(trl)
	if err != nil {
		return 0
	}
	return b.APILevel
}

// Contains 判断工时是否落在档位区间内
func (b Band) Contains(hours int) bool {
	return hours >= b.MinHours && hours <= b.MaxHours
}

// Clamp 把工时收敛到档位区间内，autorepair 策略下使用
func (b Band) Clamp(hours int) int {
	if hours < b.MinHours {
		return b.MinHours
	}
	if hours > b.MaxHours {
		return b.MaxHours
	}
	return hours
}
