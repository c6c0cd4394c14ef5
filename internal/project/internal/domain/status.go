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

	"github.com/leanmaker/leanmaker/internal/pkg/actor"
)

var (
	ErrUnknownStatus     = errors.New("未知的项目状态")
	ErrInvalidTransition = errors.New("项目状态不允许该流转")
	ErrTransitionDenied  = errors.New("当前角色不允许该状态流转")
)

// Status 项目状态，内部只用英文规范值
type Status string

const (
	StatusDraft      Status = "draft"
	StatusPublished  Status = "published"
	StatusActive     Status = "active"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusSuspended  Status = "suspended"
	StatusDeleted    Status = "deleted"
	StatusOpen       Status = "open"
	StatusOverdue    Status = "overdue"
	StatusClosed     Status = "closed"
	StatusTerminated Status = "terminated"
)

func (s Status) String() string {
	return string(s)
}

var canonical = map[Status]struct{}{
	StatusDraft: {}, StatusPublished: {}, StatusActive: {}, StatusInProgress: {},
	StatusCompleted: {}, StatusCancelled: {}, StatusSuspended: {}, StatusDeleted: {},
	StatusOpen: {}, StatusOverdue: {}, StatusClosed: {}, StatusTerminated: {},
}

// 历史数据里残留的西语状态，只在入口做归一化，业务逻辑永远不碰这些值
var legacyAliases = map[string]Status{
	"borrador":    StatusDraft,
	"publicado":   StatusPublished,
	"activo":      StatusActive,
	"en-progreso": StatusInProgress,
	"en_progreso": StatusInProgress,
	"completado":  StatusCompleted,
	"cancelado":   StatusCancelled,
	"suspendido":  StatusSuspended,
	"eliminado":   StatusDeleted,
	"abierto":     StatusOpen,
	"atrasado":    StatusOverdue,
	"cerrado":     StatusClosed,
	"terminado":   StatusTerminated,
}

// ParseStatus 把外部输入归一化为规范状态。
// 规范值本身的归一化是恒等的，所以重复归一化无副作用
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := canonical[s]; ok {
		return s, nil
	}
	if cs, ok := legacyAliases[string(s)]; ok {
		return cs, nil
	}
	return "", ErrUnknownStatus
}

// IsFinalized 终态：不再接受任何业务动作
func (s Status) IsFinalized() bool {
	switch s {
	case StatusCompleted, StatusDeleted, StatusCancelled, StatusClosed, StatusTerminated:
		return true
	default:
		return false
	}
}

// IsActive 项目处于对外可见的进行中状态
func (s Status) IsActive() bool {
	switch s {
	case StatusActive, StatusPublished, StatusOpen, StatusInProgress:
		return true
	default:
		return false
	}
}

// RequiresAssignedStudents 该状态要求至少有一名在派学生
func (s Status) RequiresAssignedStudents() bool {
	return s == StatusActive
}

// ShowsAllApplicants 该状态下企业可见全部申请人
func (s Status) ShowsAllApplicants() bool {
	return s == StatusPublished
}

// AcceptsApplications 该状态下接受新申请
func (s Status) AcceptsApplications() bool {
	return s == StatusPublished
}

type edge struct {
	from Status
	to   Status
}

// transitions 项目状态机。未列出的边一律禁止。
// active → in-progress 是第一条工时落账时由系统自动触发的，不开放给任何角色
var transitions = map[edge][]actor.Role{
	{StatusDraft, StatusPublished}:      {actor.RoleCompany},
	{StatusPublished, StatusActive}:     {actor.RoleCompany},
	{StatusPublished, StatusCancelled}:  {actor.RoleCompany},
	{StatusPublished, StatusDeleted}:    {actor.RoleAdmin},
	{StatusActive, StatusInProgress}:    {},
	{StatusActive, StatusCompleted}:     {actor.RoleCompany, actor.RoleAdmin},
	{StatusInProgress, StatusCompleted}: {actor.RoleCompany, actor.RoleAdmin},
	{StatusActive, StatusSuspended}:     {actor.RoleAdmin},
	{StatusPublished, StatusSuspended}:  {actor.RoleAdmin},
	{StatusOpen, StatusSuspended}:       {actor.RoleAdmin},
	{StatusInProgress, StatusSuspended}: {actor.RoleAdmin},
	{StatusSuspended, StatusPublished}:  {actor.RoleAdmin},
}

// CanTransition 校验一条人工触发的状态流转
func CanTransition(from, to Status, role actor.Role) error {
	roles, ok := transitions[edge{from: from, to: to}]
	if !ok {
		return ErrInvalidTransition
	}
	for _, r := range roles {
		if r == role {
			return nil
		}
	}
	return ErrTransitionDenied
}
