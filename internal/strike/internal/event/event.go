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

const StudentSuspendedEventName = "student_suspended_events"

// StudentSuspendedEvent 第三次生效记过把学生停用后发出
type StudentSuspendedEvent struct {
	Key           string `json:"key"`
	StudentID     int64  `json:"studentId"`
	StrikeID      int64  `json:"strikeId"`
	ActiveStrikes int64  `json:"activeStrikes"`
	SuspendedAt   int64  `json:"suspendedAt"`
}
