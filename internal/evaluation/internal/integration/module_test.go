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
	companystartup "github.com/leanmaker/leanmaker/internal/company/internal/integration/startup"
	"github.com/leanmaker/leanmaker/internal/evaluation"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/domain"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/integration/startup"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/repository"
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/service"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	theCompanyId = int64(21)
	theStudentId = int64(61)
)

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc evaluation.Service
}

func TestModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

func (s *ModuleTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.svc = m.Svc
	s.db = testioc.InitDB()
	_, err = companystartup.InitModule()
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{"evaluations", "assignments", "applications", "projects", "students", "companies", "status_audits", "work_hours"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

func (s *ModuleTestSuite) seedCompany(id int64) {
	now := time.Now().UnixMilli()
	err := s.db.Exec("INSERT INTO `companies` (id, user_id, name, status, ctime, utime) VALUES (?, ?, ?, 'active', ?, ?)",
		id, id, "企业", now, now).Error
	s.NoError(err)
}

func (s *ModuleTestSuite) seedStudent(id int64) {
	now := time.Now().UnixMilli()
	err := s.db.Exec("INSERT INTO `students` (id, user_id, name, api_level, status, ctime, utime) VALUES (?, ?, ?, 3, 'approved', ?, ?)",
		id, id, "学生", now, now).Error
	s.NoError(err)
}

// seedParticipation 项目 + 派遣一把造出来，学生即项目参与方
func (s *ModuleTestSuite) seedParticipation(projectId, companyId, studentId int64, status string) {
	now := time.Now().UnixMilli()
	err := s.db.Exec(`INSERT INTO projects
		(id, company_id, title, status, trl, api_level, min_api_level, required_hours,
		 hours_per_week, duration_weeks, max_students, current_students, ctime, utime)
		VALUES (?, ?, ?, ?, 5, 3, 1, 120, 10, 12, 2, 1, ?, ?)`,
		projectId, companyId, "样例项目", status, now, now).Error
	s.NoError(err)
	err = s.db.Exec(`INSERT INTO assignments
		(application_id, student_id, project_id, status, start_date, ctime, utime)
		VALUES (?, ?, ?, 'completed', ?, ?, ?)`,
		projectId*100+studentId, studentId, projectId, now, now, now).Error
	s.NoError(err)
}

func (s *ModuleTestSuite) companyRating(id int64) float64 {
	var rating float64
	err := s.db.Raw("SELECT rating FROM `companies` WHERE id = ?", id).Scan(&rating).Error
	s.NoError(err)
	return rating
}

func (s *ModuleTestSuite) studentGpa(id int64) float64 {
	var gpa float64
	err := s.db.Raw("SELECT gpa FROM `students` WHERE id = ?", id).Scan(&gpa).Error
	s.NoError(err)
	return gpa
}

// 双向评价互不串线：学生提交影响企业评分，企业提交影响学生 GPA
func (s *ModuleTestSuite) TestSubmitBothDirections() {
	t := s.T()
	s.seedCompany(theCompanyId)
	s.seedStudent(theStudentId)
	s.seedParticipation(71, theCompanyId, theStudentId, "completed")

	studentActor := actor.Actor{ID: theStudentId, Role: actor.RoleStudent}
	id, err := s.svc.Submit(context.Background(), studentActor, domain.Evaluation{
		ProjectID: 71,
		StudentID: theStudentId,
		Type:      domain.TypeStudentToCompany,
		Score:     5.0,
		Comments:  "合作顺畅",
	})
	require.NoError(t, err)
	require.True(t, id > 0)
	require.Equal(t, 5.0, s.companyRating(theCompanyId))
	require.Equal(t, 0.0, s.studentGpa(theStudentId))

	companyActor := actor.Actor{ID: theCompanyId, Role: actor.RoleCompany}
	_, err = s.svc.Submit(context.Background(), companyActor, domain.Evaluation{
		ProjectID: 71,
		StudentID: theStudentId,
		Type:      domain.TypeCompanyToStudent,
		Score:     4.0,
		Comments:  "表现不错",
	})
	require.NoError(t, err)
	require.Equal(t, 4.0, s.studentGpa(theStudentId))
	require.Equal(t, 5.0, s.companyRating(theCompanyId))

	// 同方向重复提交被唯一索引挡住
	_, err = s.svc.Submit(context.Background(), studentActor, domain.Evaluation{
		ProjectID: 71,
		StudentID: theStudentId,
		Type:      domain.TypeStudentToCompany,
		Score:     1.0,
	})
	require.ErrorIs(t, err, repository.ErrDuplicateEvaluation)
	require.Equal(t, 5.0, s.companyRating(theCompanyId))
}

func (s *ModuleTestSuite) TestSubmitPreconditions() {
	t := s.T()
	s.seedCompany(theCompanyId)
	s.seedStudent(theStudentId)
	s.seedStudent(theStudentId + 1)
	s.seedParticipation(71, theCompanyId, theStudentId, "in-progress")

	studentActor := actor.Actor{ID: theStudentId, Role: actor.RoleStudent}
	// 项目还没收尾
	_, err := s.svc.Submit(context.Background(), studentActor, domain.Evaluation{
		ProjectID: 71, StudentID: theStudentId,
		Type: domain.TypeStudentToCompany, Score: 4.0,
	})
	require.ErrorIs(t, err, service.ErrProjectNotFinalized)

	// 管理员不受收尾限制
	_, err = s.svc.Submit(context.Background(), actor.Actor{ID: 1, Role: actor.RoleAdmin}, domain.Evaluation{
		ProjectID: 71, StudentID: theStudentId,
		Type: domain.TypeStudentToCompany, Score: 4.0,
	})
	require.NoError(t, err)

	// 没有派遣的学生不是参与方
	_, err = s.svc.Submit(context.Background(), actor.Actor{ID: theStudentId + 1, Role: actor.RoleStudent}, domain.Evaluation{
		ProjectID: 71, StudentID: theStudentId + 1,
		Type: domain.TypeStudentToCompany, Score: 4.0,
	})
	require.ErrorIs(t, err, service.ErrForbidden)

	// 学生不能替企业评学生
	_, err = s.svc.Submit(context.Background(), studentActor, domain.Evaluation{
		ProjectID: 71, StudentID: theStudentId,
		Type: domain.TypeCompanyToStudent, Score: 4.0,
	})
	require.ErrorIs(t, err, service.ErrForbidden)
}

// 评分重算全程从评价全集推导：新增、标记、全量重算都收敛到同一个值
func (s *ModuleTestSuite) TestFlagAndRecompute() {
	t := s.T()
	s.seedCompany(theCompanyId)
	s.seedStudent(theStudentId)
	s.seedParticipation(71, theCompanyId, theStudentId, "completed")
	s.seedParticipation(72, theCompanyId, theStudentId+1, "completed")
	s.seedStudent(theStudentId + 1)
	s.seedParticipation(73, theCompanyId, theStudentId+2, "completed")
	s.seedStudent(theStudentId + 2)

	submit := func(projectId, studentId int64, score float64) int64 {
		id, err := s.svc.Submit(context.Background(),
			actor.Actor{ID: studentId, Role: actor.RoleStudent},
			domain.Evaluation{
				ProjectID: projectId,
				StudentID: studentId,
				Type:      domain.TypeStudentToCompany,
				Score:     score,
			})
		require.NoError(t, err)
		return id
	}
	submit(71, theStudentId, 3.0)
	flaggedId := submit(72, theStudentId+1, 5.0)
	require.Equal(t, 4.0, s.companyRating(theCompanyId))

	submit(73, theStudentId+2, 4.0)
	require.Equal(t, 4.0, s.companyRating(theCompanyId))

	admin := actor.Actor{ID: 1, Role: actor.RoleAdmin}
	err := s.svc.Flag(context.Background(), admin, flaggedId)
	require.NoError(t, err)
	// flagged 被排除，剩 3 和 4
	require.Equal(t, 3.5, s.companyRating(theCompanyId))
	err = s.svc.Flag(context.Background(), admin, flaggedId)
	require.ErrorIs(t, err, repository.ErrAlreadyFlagged)

	// 全量重算幂等，跑两遍结果不变
	for i := 0; i < 2; i++ {
		stats, err := s.svc.RecomputeAggregates(context.Background(), service.RecomputeScope{})
		require.NoError(t, err)
		require.Equal(t, int64(1), stats.Companies)
		require.Equal(t, int64(3), stats.Students)
		require.Equal(t, 3.5, s.companyRating(theCompanyId))
	}

	// 单企业重算
	stats, err := s.svc.RecomputeAggregates(context.Background(), service.RecomputeScope{Company: theCompanyId})
	require.NoError(t, err)
	require.Equal(t, int64(1), stats.Companies)
	require.Equal(t, 3.5, s.companyRating(theCompanyId))
}

func (s *ModuleTestSuite) TestFlagIsAdminOnly() {
	t := s.T()
	s.seedCompany(theCompanyId)
	s.seedStudent(theStudentId)
	s.seedParticipation(71, theCompanyId, theStudentId, "completed")
	id, err := s.svc.Submit(context.Background(),
		actor.Actor{ID: theStudentId, Role: actor.RoleStudent},
		domain.Evaluation{
			ProjectID: 71, StudentID: theStudentId,
			Type: domain.TypeStudentToCompany, Score: 4.0,
		})
	require.NoError(t, err)
	err = s.svc.Flag(context.Background(), actor.Actor{ID: theCompanyId, Role: actor.RoleCompany}, id)
	require.ErrorIs(t, err, service.ErrForbidden)
}
