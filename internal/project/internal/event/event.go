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

const (
	ProjectStateChangedEventName = "project_state_changed_events"
	ProjectRepairedEventName     = "project_repaired_events"
)

// ProjectStateChangedEvent 项目每次状态流转后发出
type ProjectStateChangedEvent struct {
	Key       string `json:"key"`
	ProjectID int64  `json:"projectId"`
	From      string `json:"from"`
	To        string `json:"to"`
	ActorID   int64  `json:"actorId"`
	ActorRole string `json:"actorRole"`
	Note      string `json:"note,omitempty"`
	ChangedAt int64  `json:"changedAt"`
}

// ProjectRepairedEvent 能力档位自动修复时发出
type ProjectRepairedEvent struct {
	Key               string `json:"key"`
	ProjectID         int64  `json:"projectId"`
	TRL               int    `json:"trl"`
	OldAPILevel       int    `json:"oldApiLevel"`
	NewAPILevel       int    `json:"newApiLevel"`
	OldRequiredHours  int    `json:"oldRequiredHours"`
	NewRequiredHours  int    `json:"newRequiredHours"`
	RepairedAt        int64  `json:"repairedAt"`
}
