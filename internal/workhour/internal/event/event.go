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

package event

const WorkHourVerifiedEventName = "work_hour_verified_events"

// WorkHourVerifiedEvent 工时核验结果落库后发出
type WorkHourVerifiedEvent struct {
	WorkHourID int64 `json:"workHourId"`
	StudentID  int64 `json:"studentId"`
	ProjectID  int64 `json:"projectId"`
	Hours      int   `json:"hours"`
	Approved   bool  `json:"approved"`
	VerifiedBy int64 `json:"verifiedBy"`
	VerifiedAt int64 `json:"verifiedAt"`
}
