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

const ApplicationAcceptedEventName = "application_accepted_events"

// ApplicationAcceptedEvent 申请接受事务提交后发出
type ApplicationAcceptedEvent struct {
	Key           string `json:"key"`
	ApplicationID int64  `json:"applicationId"`
	ProjectID     int64  `json:"projectId"`
	StudentID     int64  `json:"studentId"`
	AssignmentID  int64  `json:"assignmentId"`
	// CascadeRejected 满员时被顺带拒绝的申请数
	CascadeRejected  int64 `json:"cascadeRejected"`
	ProjectActivated bool  `json:"projectActivated"`
	AcceptedAt       int64 `json:"acceptedAt"`
}
