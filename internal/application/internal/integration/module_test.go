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
	"github.com/leanmaker/leanmaker/internal/application"
	"github.com/leanmaker/leanmaker/internal/application/internal/domain"
	"github.com/leanmaker/leanmaker/internal/application/internal/integration/startup"
	"github.com/leanmaker/leanmaker/internal/application/internal/repository"
	"github.com/leanmaker/leanmaker/internal/application/internal/service"
	companystartup "github.com/leanmaker/leanmaker/internal/company/internal/integration/startup"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	theCompanyId = int64(11)
	theProjectId = int64(41)
)

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc application.Service
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
	for _, table := range []string{"applications", "assignments", "projects", "students", "companies", "status_audits", "work_hours"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

// seedStudent 造一个可报名的学生，id 即主键
func (s *ModuleTestSuite) seedStudent(id int64, status string, apiLevel, strikes int) {
	now := time.Now().UnixMilli()
	err := s.db.Exec("INSERT INTO `students` (id, user_id, name, api_level, strikes, status, ctime, utime) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		id, id, "学生", apiLevel, strikes, status, now, now).Error
	s.NoError(err)
}

// seedProject 造一个项目行，其余字段取典型值
func (s *ModuleTestSuite) seedProject(id int64, status string, minAPILevel, maxStudents, currentStudents int) {
	now := time.Now().UnixMilli()
	err := s.db.Exec(`INSERT INTO projects
		(id, company_id, title, status, trl, api_level, min_api_level, required_hours,
		 hours_per_week, duration_weeks, max_students, current_students, ctime, utime)
		VALUES (?, ?, ?, ?, 5, 3, ?, 120, 10, 12, ?, ?, ?, ?)`,
		id, theCompanyId, "样例项目", status, minAPILevel, maxStudents, currentStudents, now, now).Error
	s.NoError(err)
}

func (s *ModuleTestSuite) submit(studentId int64) (int64, error) {
	return s.svc.Submit(context.Background(),
		actor.Actor{ID: studentId, Role: actor.RoleStudent},
		domain.Application{ProjectID: theProjectId, CompatibilityScore: 77, CoverLetter: "很想参与"})
}

func (s *ModuleTestSuite) TestSubmitEligibility() {
	t := s.T()
	s.seedProject(theProjectId, "published", 3, 2, 0)
	s.seedStudent(101, "approved", 3, 0)
	s.seedStudent(102, "pending", 3, 0)
	s.seedStudent(103, "approved", 2, 0)
	s.seedStudent(104, "approved", 4, 3)

	testCases := []struct {
		name      string
		studentId int64
		wantOK    bool
	}{
		{name: "符合条件", studentId: 101, wantOK: true},
		{name: "未审核通过", studentId: 102},
		{name: "能力等级不够", studentId: 103},
		{name: "记过满三次", studentId: 104},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			eli, err := s.svc.Eligibility(context.Background(), tc.studentId, theProjectId)
			require.NoError(t, err)
			require.Equal(t, tc.wantOK, eli.OK)
			if tc.wantOK {
				id, err := s.submit(tc.studentId)
				require.NoError(t, err)
				require.True(t, id > 0)
			} else {
				_, err := s.submit(tc.studentId)
				var ie service.IneligibleError
				require.ErrorAs(t, err, &ie)
			}
		})
	}

	// 提交成功会累加项目的申请数
	var count int64
	err := s.db.Raw("SELECT applications_count FROM `projects` WHERE id = ?", theProjectId).Scan(&count).Error
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	// 未完结的申请挡住重复提交，错误种类是重复申请而非一般的资格不符
	_, err = s.submit(101)
	require.ErrorIs(t, err, repository.ErrDuplicateApplication)
	var after int64
	err = s.db.Raw("SELECT applications_count FROM `projects` WHERE id = ?", theProjectId).Scan(&after).Error
	require.NoError(t, err)
	require.Equal(t, int64(1), after)
}

func (s *ModuleTestSuite) TestDraftProjectRejectsApplications() {
	t := s.T()
	s.seedProject(theProjectId, "draft", 1, 2, 0)
	s.seedStudent(101, "approved", 3, 0)
	eli, err := s.svc.Eligibility(context.Background(), 101, theProjectId)
	require.NoError(t, err)
	require.False(t, eli.OK)
}

// 容量级联：接受一个申请后其余申请被顺带拒绝，项目自动进入 active
func (s *ModuleTestSuite) TestAcceptCapacityCascade() {
	t := s.T()
	s.seedProject(theProjectId, "published", 1, 1, 0)
	ids := make([]int64, 0, 4)
	for i := int64(0); i < 4; i++ {
		s.seedStudent(101+i, "approved", 3, 0)
		id, err := s.submit(101 + i)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	owner := actor.Actor{ID: theCompanyId, Role: actor.RoleCompany}
	asg, err := s.svc.Accept(context.Background(), owner, ids[0])
	require.NoError(t, err)
	require.Equal(t, domain.AssignmentStatusPending, asg.Status)
	require.Equal(t, int64(101), asg.StudentID)

	// 项目占满一个名额并自动进入 active
	var prj struct {
		CurrentStudents int
		Status          string
	}
	err = s.db.Raw("SELECT current_students, status FROM `projects` WHERE id = ?", theProjectId).Scan(&prj).Error
	require.NoError(t, err)
	require.Equal(t, 1, prj.CurrentStudents)
	require.Equal(t, "active", prj.Status)

	// 其余三个申请全部被容量策略拒绝
	for _, id := range ids[1:] {
		app, err := s.svc.GetById(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, domain.StatusRejected, app.Status)
		require.Equal(t, "auto:capacity", app.CompanyNotes)
	}
	var audits int64
	err = s.db.Raw("SELECT COUNT(*) FROM `status_audits` WHERE subject_type = 'application' AND note = 'auto:capacity'").Scan(&audits).Error
	require.NoError(t, err)
	require.Equal(t, int64(3), audits)

	// 名额已满，再接受直接失败
	s.seedStudent(105, "approved", 3, 0)
	// 项目已经 active 不接受新申请了，直接塞一条 pending 的旧申请模拟并发窗口
	now := time.Now().UnixMilli()
	err = s.db.Exec("INSERT INTO `applications` (project_id, student_id, status, active_key, applied_at, ctime, utime) VALUES (?, 105, 'pending', 1, ?, ?, ?)",
		theProjectId, now, now, now).Error
	require.NoError(t, err)
	var lateId int64
	err = s.db.Raw("SELECT id FROM `applications` WHERE student_id = 105").Scan(&lateId).Error
	require.NoError(t, err)
	_, err = s.svc.Accept(context.Background(), owner, lateId)
	require.ErrorIs(t, err, repository.ErrCapacityExceeded)
}

func (s *ModuleTestSuite) TestWithdrawAndReapply() {
	t := s.T()
	s.seedProject(theProjectId, "published", 1, 2, 0)
	s.seedStudent(101, "approved", 3, 0)
	id, err := s.submit(101)
	require.NoError(t, err)

	studentActor := actor.Actor{ID: 101, Role: actor.RoleStudent}
	// 别的学生不能撤回
	err = s.svc.Transition(context.Background(), actor.Actor{ID: 102, Role: actor.RoleStudent},
		id, domain.StatusWithdrawn, "")
	require.ErrorIs(t, err, service.ErrForbidden)

	err = s.svc.Transition(context.Background(), studentActor, id, domain.StatusWithdrawn, "另有安排")
	require.NoError(t, err)

	// 撤回进入终态，可以重新申请
	newId, err := s.submit(101)
	require.NoError(t, err)
	require.NotEqual(t, id, newId)
}

func (s *ModuleTestSuite) TestReviewFlow() {
	t := s.T()
	s.seedProject(theProjectId, "published", 1, 2, 0)
	s.seedStudent(101, "approved", 3, 0)
	id, err := s.submit(101)
	require.NoError(t, err)

	owner := actor.Actor{ID: theCompanyId, Role: actor.RoleCompany}
	outsider := actor.Actor{ID: theCompanyId + 1, Role: actor.RoleCompany}

	err = s.svc.Transition(context.Background(), outsider, id, domain.StatusReviewing, "")
	require.ErrorIs(t, err, service.ErrForbidden)

	require.NoError(t, s.svc.Transition(context.Background(), owner, id, domain.StatusReviewing, ""))
	require.NoError(t, s.svc.Transition(context.Background(), owner, id, domain.StatusInterviewed, ""))

	app, err := s.svc.GetById(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInterviewed, app.Status)
	require.True(t, app.ReviewedAt > 0)

	// 面试后接受，生成派遣
	asg, err := s.svc.Accept(context.Background(), owner, id)
	require.NoError(t, err)
	require.True(t, asg.ID > 0)
	app, err = s.svc.GetById(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, domain.StatusAccepted, app.Status)
	require.True(t, app.RespondedAt > 0)

	// 接受是一次性的
	_, err = s.svc.Accept(context.Background(), owner, id)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}
