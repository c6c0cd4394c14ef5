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

// Package actor 定义了业务操作的发起者。
// 认证由接入层完成，这里只消费会话里已经确认过的身份。
package actor

import "github.com/ecodeclub/ginx/session"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCompany Role = "company"
	RoleStudent Role = "student"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCompany, RoleStudent:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// Actor 是一次操作的发起者，ID 是对应角色实体的主键：
// company 角色对应 company.ID，student 角色对应 student.ID，admin 对应用户ID
type Actor struct {
	ID   int64
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsCompany() bool {
	return a.Role == RoleCompany
}

func (a Actor) IsStudent() bool {
	return a.Role == RoleStudent
}

// FromSession 从会话声明里还原 Actor，角色在登录时写入 claims
func FromSession(sess session.Session) Actor {
	claims := sess.Claims()
	return Actor{
		ID:   claims.Uid,
		Role: Role(claims.Get("role").StringOrDefault("")),
	}
}
