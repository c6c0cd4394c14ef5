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
	"github.com/leanmaker/leanmaker/internal/company"
	"github.com/leanmaker/leanmaker/internal/company/internal/domain"
	"github.com/leanmaker/leanmaker/internal/company/internal/integration/startup"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc company.Service
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
	err := s.db.Exec("TRUNCATE TABLE `companies`").Error
	s.NoError(err)
}

func (s *ModuleTestSuite) TestSaveAndGet() {
	t := s.T()
	id, err := s.svc.Save(context.Background(), domain.Company{
		UserID: 1001,
		Name:   "联创科技",
	})
	require.NoError(t, err)
	require.True(t, id > 0)

	c, err := s.svc.GetById(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "联创科技", c.Name)
	require.Equal(t, int64(1001), c.UserID)
	// 新公司默认状态与聚合值
	require.Equal(t, domain.CompanyStatusActive, c.Status)
	require.Equal(t, 0.0, c.Rating)
	require.False(t, c.Verified)
}

func (s *ModuleTestSuite) TestUpdateStatus() {
	t := s.T()
	id, err := s.svc.Save(context.Background(), domain.Company{UserID: 1002, Name: "甲方有限公司"})
	require.NoError(t, err)

	admin := actor.Actor{ID: 1, Role: actor.RoleAdmin}
	testCases := []struct {
		name    string
		opr     actor.Actor
		status  domain.CompanyStatus
		wantErr bool
	}{
		{name: "管理员可以停用", opr: admin, status: domain.CompanyStatusSuspended},
		{name: "管理员可以恢复", opr: admin, status: domain.CompanyStatusActive},
		{name: "公司自己不能改状态", opr: actor.Actor{ID: id, Role: actor.RoleCompany}, status: domain.CompanyStatusInactive, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.svc.UpdateStatus(context.Background(), tc.opr, id, tc.status)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			c, err := s.svc.GetById(context.Background(), id)
			require.NoError(t, err)
			require.Equal(t, tc.status, c.Status)
		})
	}
}

func (s *ModuleTestSuite) TestVerify() {
	t := s.T()
	id, err := s.svc.Save(context.Background(), domain.Company{UserID: 1003, Name: "未核验公司"})
	require.NoError(t, err)

	err = s.svc.Verify(context.Background(), actor.Actor{ID: 1, Role: actor.RoleAdmin}, id)
	require.NoError(t, err)

	c, err := s.svc.GetById(context.Background(), id)
	require.NoError(t, err)
	require.True(t, c.Verified)
}
