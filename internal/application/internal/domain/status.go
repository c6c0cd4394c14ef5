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
	ErrUnknownStatus     = errors.New("未知的申请状态")
	ErrInvalidTransition = errors.New("申请状态不允许该流转")
	ErrTransitionDenied  = errors.New("当前角色不允许该申请流转")
)

// Status 申请状态
type Status string

const (
	StatusPending     Status = "pending"
	StatusReviewing   Status = "reviewing"
	StatusInterviewed Status = "interviewed"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
	StatusWithdrawn   Status = "withdrawn"
	StatusActive      Status = "active"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// IsTerminal 终态申请允许学生重新申请同一项目
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusWithdrawn, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

var appCanonical = map[Status]struct{}{
	StatusPending: {}, StatusReviewing: {}, StatusInterviewed: {},
	StatusAccepted: {}, StatusRejected: {}, StatusWithdrawn: {},
	StatusActive: {}, StatusCompleted: {}, StatusCancelled: {},
}

var appLegacyAliases = map[string]Status{
	"pendiente":    StatusPending,
	"revisando":    StatusReviewing,
	"entrevistado": StatusInterviewed,
	"aceptado":     StatusAccepted,
	"rechazado":    StatusRejected,
	"retirado":     StatusWithdrawn,
	"activo":       StatusActive,
	"completado":   StatusCompleted,
	"cancelado":    StatusCancelled,
}

// ParseStatus 归一化外部输入，西语旧值只在这里处理
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := appCanonical[s]; ok {
		return s, nil
	}
	if cs, ok := appLegacyAliases[string(s)]; ok {
		return cs, nil
	}
	return "", ErrUnknownStatus
}

type edge struct {
	from Status
	to   Status
}

// transitions 申请状态机。接受与拒绝对 pending 也开放：
// 容量级联会直接拒绝 pending 的申请，人工接受同样不强制先走 reviewing。
// accepted → active 与 active → completed 由工时/结项流程自动触发，管理员可手工兜底
var transitions = map[edge][]actor.Role{
	{StatusPending, StatusReviewing}:      {actor.RoleCompany},
	{StatusPending, StatusWithdrawn}:      {actor.RoleStudent},
	{StatusPending, StatusAccepted}:       {actor.RoleCompany},
	{StatusPending, StatusRejected}:       {actor.RoleCompany},
	{StatusReviewing, StatusInterviewed}:  {actor.RoleCompany},
	{StatusReviewing, StatusAccepted}:     {actor.RoleCompany},
	{StatusReviewing, StatusRejected}:     {actor.RoleCompany},
	{StatusReviewing, StatusWithdrawn}:    {actor.RoleStudent},
	{StatusInterviewed, StatusAccepted}:   {actor.RoleCompany},
	{StatusInterviewed, StatusRejected}:   {actor.RoleCompany},
	{StatusInterviewed, StatusWithdrawn}:  {actor.RoleStudent},
	{StatusAccepted, StatusActive}:        {actor.RoleAdmin},
	{StatusAccepted, StatusCancelled}:     {actor.RoleAdmin},
	{StatusActive, StatusCompleted}:       {actor.RoleAdmin},
	{StatusActive, StatusCancelled}:       {actor.RoleAdmin},
}

// CanTransition 校验一条人工触发的申请流转
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

// AcceptableFrom 可以被接受的起始状态
func AcceptableFrom(s Status) bool {
	return s == StatusPending || s == StatusReviewing || s == StatusInterviewed
}
