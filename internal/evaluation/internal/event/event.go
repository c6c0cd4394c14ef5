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
	EvaluationCompletedEventName = "evaluation_completed_events"
	RatingRecomputedEventName    = "rating_recomputed_events"
)

// EvaluationCompletedEvent 评价落为 completed 后发出
type EvaluationCompletedEvent struct {
	EvaluationID int64   `json:"evaluationId"`
	ProjectID    int64   `json:"projectId"`
	StudentID    int64   `json:"studentId"`
	EvaluatorID  int64   `json:"evaluatorId"`
	Type         string  `json:"type"`
	Score        float64 `json:"score"`
	SubmittedAt  int64   `json:"submittedAt"`
}

// RatingRecomputedEvent 企业评分或学生 GPA 重算落库后发出
type RatingRecomputedEvent struct {
	Key string `json:"key"`
	// company 或 student
	SubjectType  string  `json:"subjectType"`
	SubjectID    int64   `json:"subjectId"`
	Aggregate    float64 `json:"aggregate"`
	RecomputedAt int64   `json:"recomputedAt"`
}
