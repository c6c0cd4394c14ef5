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
	"time"

	"github.com/ego-component/egorm"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/leanmaker/leanmaker/internal/strike"
	"github.com/leanmaker/leanmaker/internal/strike/internal/domain"
	"github.com/leanmaker/leanmaker/internal/strike/internal/integration/startup"
	"github.com/leanmaker/leanmaker/internal/strike/internal/repository"
	"github.com/leanmaker/leanmaker/internal/strike/internal/service"
	studentstartup "github.com/leanmaker/leanmaker/internal/student/internal/integration/startup"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const theStudentId = int64(91)

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc strike.Service
}

func TestModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

func (s *ModuleTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.svc = m.Svc
	s.db = testioc.InitDB()
	_, err = studentstartup.InitModule()
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{"strikes", "students"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

func (s *ModuleTestSuite) seedStudent(id int64) {
	now := time.Now().UnixMilli()
	err := s.db.Exec("INSERT INTO `students` (id, user_id, name, api_level, status, ctime, utime) VALUES (?, ?, ?, 3, 'approved', ?, ?)",
		id, id, "学生", now, now).Error
	s.NoError(err)
}

func (s *ModuleTestSuite) studentRow(id int64) (int64, string) {
	var row struct {
		Strikes int64
		Status  string
	}
	err := s.db.Raw("SELECT strikes, status FROM `students` WHERE id = ?", id).Scan(&row).Error
	s.NoError(err)
	return row.Strikes, row.Status
}

func (s *ModuleTestSuite) issue(opr actor.Actor, severity domain.Severity) (int64, error) {
	return s.svc.Issue(context.Background(), opr, domain.Strike{
		StudentID: theStudentId,
		Reason:    "缺勤",
		Severity:  severity,
	})
}

// 三次生效记过在签发事务里直接停用学生
func (s *ModuleTestSuite) TestThreeStrikesSuspend() {
	t := s.T()
	s.seedStudent(theStudentId)
	company := actor.Actor{ID: 31, Role: actor.RoleCompany}

	id1, err := s.issue(company, domain.SeverityLow)
	require.NoError(t, err)
	require.True(t, id1 > 0)
	strikes, status := s.studentRow(theStudentId)
	require.Equal(t, int64(1), strikes)
	require.Equal(t, "approved", status)

	// 企业签发会带上企业 id
	st, err := s.svc.GetById(context.Background(), id1)
	require.NoError(t, err)
	require.Equal(t, int64(31), st.CompanyID)
	require.True(t, st.IsActive)

	_, err = s.issue(actor.Actor{ID: 1, Role: actor.RoleAdmin}, domain.SeverityMedium)
	require.NoError(t, err)
	_, err = s.issue(company, domain.SeverityHigh)
	require.NoError(t, err)

	strikes, status = s.studentRow(theStudentId)
	require.Equal(t, int64(3), strikes)
	require.Equal(t, "suspended", status)

	list, err := s.svc.ListByStudent(context.Background(), theStudentId, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	active, err := s.svc.CountActive(context.Background(), theStudentId)
	require.NoError(t, err)
	require.Equal(t, int64(3), active)
}

// 撤销只回退计数，停用状态不自动恢复
func (s *ModuleTestSuite) TestDeactivateDoesNotReinstate() {
	t := s.T()
	s.seedStudent(theStudentId)
	admin := actor.Actor{ID: 1, Role: actor.RoleAdmin}
	var lastId int64
	for i := 0; i < 3; i++ {
		id, err := s.issue(admin, domain.SeverityLow)
		require.NoError(t, err)
		lastId = id
	}
	_, status := s.studentRow(theStudentId)
	require.Equal(t, "suspended", status)

	err := s.svc.Deactivate(context.Background(), admin, lastId)
	require.NoError(t, err)
	strikes, status := s.studentRow(theStudentId)
	require.Equal(t, int64(2), strikes)
	require.Equal(t, "suspended", status)

	// 重复撤销被挡住
	err = s.svc.Deactivate(context.Background(), admin, lastId)
	require.ErrorIs(t, err, repository.ErrStrikeNotActive)
}

func (s *ModuleTestSuite) TestPermissions() {
	t := s.T()
	s.seedStudent(theStudentId)
	_, err := s.issue(actor.Actor{ID: theStudentId, Role: actor.RoleStudent}, domain.SeverityLow)
	require.ErrorIs(t, err, service.ErrForbidden)

	admin := actor.Actor{ID: 1, Role: actor.RoleAdmin}
	id, err := s.issue(admin, domain.SeverityLow)
	require.NoError(t, err)

	err = s.svc.Deactivate(context.Background(), actor.Actor{ID: 31, Role: actor.RoleCompany}, id)
	require.ErrorIs(t, err, service.ErrForbidden)
}
