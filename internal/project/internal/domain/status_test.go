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
	"testing"

	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		raw     string
		want    Status
		wantErr error
	}{
		{name: "规范值原样通过", raw: "published", want: StatusPublished},
		{name: "大小写与空白被归一化", raw: "  Published ", want: StatusPublished},
		{name: "西语publicado", raw: "publicado", want: StatusPublished},
		{name: "西语completado", raw: "completado", want: StatusCompleted},
		{name: "西语activo", raw: "activo", want: StatusActive},
		{name: "西语en-progreso", raw: "en-progreso", want: StatusInProgress},
		{name: "西语下划线变体", raw: "en_progreso", want: StatusInProgress},
		{name: "西语eliminado", raw: "eliminado", want: StatusDeleted},
		{name: "未知值报错", raw: "whatever", wantErr: ErrUnknownStatus},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStatus(tc.raw)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// 规范值二次归一化是恒等的
func TestParseStatusIdempotent(t *testing.T) {
	t.Parallel()
	for s := range canonical {
		got, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	for raw, want := range legacyAliases {
		first, err := ParseStatus(raw)
		require.NoError(t, err)
		second, err := ParseStatus(first.String())
		require.NoError(t, err)
		assert.Equal(t, want, second)
	}
}

func TestStatusPredicates(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusCompleted.IsFinalized())
	assert.True(t, StatusDeleted.IsFinalized())
	assert.True(t, StatusCancelled.IsFinalized())
	assert.True(t, StatusClosed.IsFinalized())
	assert.True(t, StatusTerminated.IsFinalized())
	assert.False(t, StatusSuspended.IsFinalized())
	assert.False(t, StatusInProgress.IsFinalized())

	assert.True(t, StatusActive.IsActive())
	assert.True(t, StatusPublished.IsActive())
	assert.True(t, StatusOpen.IsActive())
	assert.True(t, StatusInProgress.IsActive())
	assert.False(t, StatusDraft.IsActive())
	assert.False(t, StatusCompleted.IsActive())

	assert.True(t, StatusActive.RequiresAssignedStudents())
	assert.False(t, StatusPublished.RequiresAssignedStudents())

	assert.True(t, StatusPublished.ShowsAllApplicants())
	assert.True(t, StatusPublished.AcceptsApplications())
	assert.False(t, StatusActive.AcceptsApplications())
}

func TestCanTransition(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		from    Status
		to      Status
		role    actor.Role
		wantErr error
	}{
		{name: "企业发布草稿", from: StatusDraft, to: StatusPublished, role: actor.RoleCompany},
		{name: "管理员不能替企业发布", from: StatusDraft, to: StatusPublished, role: actor.RoleAdmin, wantErr: ErrTransitionDenied},
		{name: "企业启动项目", from: StatusPublished, to: StatusActive, role: actor.RoleCompany},
		{name: "企业取消已发布项目", from: StatusPublished, to: StatusCancelled, role: actor.RoleCompany},
		{name: "只有管理员能删除", from: StatusPublished, to: StatusDeleted, role: actor.RoleCompany, wantErr: ErrTransitionDenied},
		{name: "管理员删除已发布项目", from: StatusPublished, to: StatusDeleted, role: actor.RoleAdmin},
		{name: "进入in-progress不开放人工触发", from: StatusActive, to: StatusInProgress, role: actor.RoleAdmin, wantErr: ErrTransitionDenied},
		{name: "企业结项", from: StatusInProgress, to: StatusCompleted, role: actor.RoleCompany},
		{name: "管理员结项", from: StatusActive, to: StatusCompleted, role: actor.RoleAdmin},
		{name: "管理员冻结进行中项目", from: StatusInProgress, to: StatusSuspended, role: actor.RoleAdmin},
		{name: "企业不能冻结", from: StatusActive, to: StatusSuspended, role: actor.RoleCompany, wantErr: ErrTransitionDenied},
		{name: "管理员解冻回到published", from: StatusSuspended, to: StatusPublished, role: actor.RoleAdmin},
		{name: "草稿不能直接结项", from: StatusDraft, to: StatusCompleted, role: actor.RoleAdmin, wantErr: ErrInvalidTransition},
		{name: "终态不可再流转", from: StatusCompleted, to: StatusPublished, role: actor.RoleAdmin, wantErr: ErrInvalidTransition},
		{name: "取消是终态", from: StatusCancelled, to: StatusPublished, role: actor.RoleAdmin, wantErr: ErrInvalidTransition},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to, tc.role)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
