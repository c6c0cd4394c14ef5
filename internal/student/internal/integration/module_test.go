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

//go:build e2e

package integration

import (
	"context"
	"testing"

	"github.com/ego-component/egorm"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/leanmaker/leanmaker/internal/student"
	"github.com/leanmaker/leanmaker/internal/student/internal/domain"
	"github.com/leanmaker/leanmaker/internal/student/internal/integration/startup"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc student.Service
}

func TestModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

func (s *ModuleTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.svc = m.Svc
	s.db = testioc.InitDB()
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `students`").Error
	s.NoError(err)
}

func (s *ModuleTestSuite) TestSaveAndGet() {
	t := s.T()
	id, err := s.svc.Save(context.Background(), domain.Student{
		UserID:   2001,
		Name:     "张三",
		APILevel: 3,
		TRLLevel: 5,
	})
	require.NoError(t, err)

	st, err := s.svc.GetById(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "张三", st.Name)
	require.Equal(t, 3, st.APILevel)
	// 新学生默认待审核，聚合值为零
	require.Equal(t, domain.StudentStatusPending, st.Status)
	require.Equal(t, 0, st.Strikes)
	require.Equal(t, int64(0), st.TotalHours)
	require.Equal(t, 0.0, st.GPA)
}

func (s *ModuleTestSuite) TestUpdateStatus() {
	t := s.T()
	id, err := s.svc.Save(context.Background(), domain.Student{UserID: 2002, Name: "李四", APILevel: 2})
	require.NoError(t, err)

	admin := actor.Actor{ID: 1, Role: actor.RoleAdmin}
	testCases := []struct {
		name    string
		opr     actor.Actor
		status  domain.StudentStatus
		wantErr bool
	}{
		{name: "管理员审核通过", opr: admin, status: domain.StudentStatusApproved},
		{name: "管理员停用", opr: admin, status: domain.StudentStatusSuspended},
		{name: "非法状态被拒绝", opr: admin, status: domain.StudentStatus("activo"), wantErr: true},
		{name: "学生自己不能改状态", opr: actor.Actor{ID: id, Role: actor.RoleStudent}, status: domain.StudentStatusApproved, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.svc.UpdateStatus(context.Background(), tc.opr, id, tc.status)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			st, err := s.svc.GetById(context.Background(), id)
			require.NoError(t, err)
			require.Equal(t, tc.status, st.Status)
		})
	}
}
