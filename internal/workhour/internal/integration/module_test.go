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
	studentstartup "github.com/leanmaker/leanmaker/internal/student/internal/integration/startup"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/leanmaker/leanmaker/internal/workhour"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/domain"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/integration/startup"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/repository"
	"github.com/leanmaker/leanmaker/internal/workhour/internal/service"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// 本套件独立于项目/申请模块运行，所以派遣、项目、申请表在这里自建
type testProject struct {
	Id            int64
	CompanyId     int64
	Status        string
	RequiredHours int
	Ctime         int64
	Utime         int64
}

func (testProject) TableName() string { return "projects" }

type testApplication struct {
	Id     int64
	Status string
	Ctime  int64
	Utime  int64
}

func (testApplication) TableName() string { return "applications" }

type testAssignment struct {
	Id            int64
	ApplicationId int64
	StudentId     int64
	ProjectId     int64
	Status        string
	StartDate     int64
	Ctime         int64
	Utime         int64
}

func (testAssignment) TableName() string { return "assignments" }

type testStatusAudit struct {
	Id          int64
	SubjectType string
	SubjectId   int64
	FromStatus  string
	ToStatus    string
	ActorId     int64
	ActorRole   string
	Note        string
	Ctime       int64
}

func (testStatusAudit) TableName() string { return "status_audits" }

type testStudent struct {
	Id                int64
	TotalHours        int64
	CompletedProjects int64
}

func (testStudent) TableName() string { return "students" }

const (
	testStudentId = int64(21)
	testCompanyId = int64(31)
	testProjectId = int64(41)
)

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc workhour.Service
}

func TestModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

func (s *ModuleTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.svc = m.Svc
	s.db = testioc.InitDB()
	// students 表由学生模块建
	_, err = studentstartup.InitModule()
	require.NoError(s.T(), err)
	err = s.db.AutoMigrate(&testProject{}, &testApplication{}, &testAssignment{}, &testStatusAudit{})
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{"work_hours", "projects", "applications", "assignments", "status_audits", "students"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

// seedPipeline 造一条「已接受申请 + 待开工派遣 + active 项目」的链路
func (s *ModuleTestSuite) seedPipeline(projectStatus, assignmentStatus string) int64 {
	t := s.T()
	now := time.Now().UnixMilli()
	err := s.db.Exec("INSERT INTO `students` (id, user_id, name, status, ctime, utime) VALUES (?, ?, ?, ?, ?, ?)",
		testStudentId, testStudentId, "王五", "approved", now, now).Error
	require.NoError(t, err)
	err = s.db.Create(&testProject{
		Id: testProjectId, CompanyId: testCompanyId,
		Status: projectStatus, RequiredHours: 120,
		Ctime: now, Utime: now,
	}).Error
	require.NoError(t, err)
	app := testApplication{Status: "accepted", Ctime: now, Utime: now}
	err = s.db.Create(&app).Error
	require.NoError(t, err)
	asg := testAssignment{
		ApplicationId: app.Id,
		StudentId:     testStudentId,
		ProjectId:     testProjectId,
		Status:        assignmentStatus,
		StartDate:     now - int64(24*time.Hour/time.Millisecond),
		Ctime:         now,
		Utime:         now,
	}
	err = s.db.Create(&asg).Error
	require.NoError(t, err)
	return asg.Id
}

func (s *ModuleTestSuite) TestLogActivatesPipeline() {
	t := s.T()
	asgId := s.seedPipeline("active", "pending")
	student := actor.Actor{ID: testStudentId, Role: actor.RoleStudent}

	id, err := s.svc.Log(context.Background(), student, domain.WorkHour{
		AssignmentID: asgId,
		Date:         time.Now().UnixMilli(),
		HoursWorked:  5,
		Description:  "搭建原型",
	})
	require.NoError(t, err)
	require.True(t, id > 0)

	// 第一条流水把整条链路推进到工作中
	var asg testAssignment
	require.NoError(t, s.db.Where("id = ?", asgId).First(&asg).Error)
	require.Equal(t, "active", asg.Status)
	var app testApplication
	require.NoError(t, s.db.Where("id = ?", asg.ApplicationId).First(&app).Error)
	require.Equal(t, "active", app.Status)
	var prj testProject
	require.NoError(t, s.db.Where("id = ?", testProjectId).First(&prj).Error)
	require.Equal(t, "in-progress", prj.Status)
	var audit testStatusAudit
	require.NoError(t, s.db.Where("subject_type = 'project' AND subject_id = ?", testProjectId).First(&audit).Error)
	require.Equal(t, "auto:first-workhour", audit.Note)

	// 未核验前不进累计工时
	var st testStudent
	require.NoError(t, s.db.Where("id = ?", testStudentId).First(&st).Error)
	require.Equal(t, int64(0), st.TotalHours)
}

func (s *ModuleTestSuite) TestLogRejectsBadEntries() {
	t := s.T()
	asgId := s.seedPipeline("active", "pending")
	student := actor.Actor{ID: testStudentId, Role: actor.RoleStudent}

	testCases := []struct {
		name    string
		opr     actor.Actor
		entry   domain.WorkHour
		wantErr error
	}{
		{
			name: "超过24小时",
			opr:  student,
			entry: domain.WorkHour{
				AssignmentID: asgId, Date: time.Now().UnixMilli(), HoursWorked: 25,
			},
			wantErr: domain.ErrInvalidHours,
		},
		{
			name: "零小时",
			opr:  student,
			entry: domain.WorkHour{
				AssignmentID: asgId, Date: time.Now().UnixMilli(), HoursWorked: 0,
			},
			wantErr: domain.ErrInvalidHours,
		},
		{
			name: "未来日期",
			opr:  student,
			entry: domain.WorkHour{
				AssignmentID: asgId,
				Date:         time.Now().Add(48 * time.Hour).UnixMilli(),
				HoursWorked:  3,
			},
			wantErr: domain.ErrFutureDate,
		},
		{
			name: "别的学生不能在我的派遣上记工时",
			opr:  actor.Actor{ID: testStudentId + 1, Role: actor.RoleStudent},
			entry: domain.WorkHour{
				AssignmentID: asgId, Date: time.Now().UnixMilli(), HoursWorked: 3,
			},
			wantErr: service.ErrForbidden,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.svc.Log(context.Background(), tc.opr, tc.entry)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func (s *ModuleTestSuite) TestVerify() {
	t := s.T()
	asgId := s.seedPipeline("active", "pending")
	student := actor.Actor{ID: testStudentId, Role: actor.RoleStudent}
	owner := actor.Actor{ID: testCompanyId, Role: actor.RoleCompany}

	id, err := s.svc.Log(context.Background(), student, domain.WorkHour{
		AssignmentID: asgId, Date: time.Now().UnixMilli(), HoursWorked: 6,
	})
	require.NoError(t, err)

	// 无关企业不能核验
	err = s.svc.Verify(context.Background(), actor.Actor{ID: testCompanyId + 1, Role: actor.RoleCompany}, id, true)
	require.ErrorIs(t, err, service.ErrForbidden)

	err = s.svc.Verify(context.Background(), owner, id, true)
	require.NoError(t, err)

	wh, err := s.svc.GetById(context.Background(), id)
	require.NoError(t, err)
	require.True(t, wh.IsVerified)
	require.Equal(t, testCompanyId, wh.VerifiedBy)

	// 核验生效后才进累计工时
	var st testStudent
	require.NoError(t, s.db.Where("id = ?", testStudentId).First(&st).Error)
	require.Equal(t, int64(6), st.TotalHours)

	// 重复核验被拒绝
	err = s.svc.Verify(context.Background(), owner, id, true)
	require.ErrorIs(t, err, repository.ErrAlreadyVerified)
}

func (s *ModuleTestSuite) TestVerifyReject() {
	t := s.T()
	asgId := s.seedPipeline("active", "active")
	student := actor.Actor{ID: testStudentId, Role: actor.RoleStudent}
	owner := actor.Actor{ID: testCompanyId, Role: actor.RoleCompany}

	id, err := s.svc.Log(context.Background(), student, domain.WorkHour{
		AssignmentID: asgId, Date: time.Now().UnixMilli(), HoursWorked: 4,
	})
	require.NoError(t, err)

	err = s.svc.Verify(context.Background(), owner, id, false)
	require.NoError(t, err)

	// 驳回落在单独的驳回印记上，核验印记保持空白，也不进累计工时
	wh, err := s.svc.GetById(context.Background(), id)
	require.NoError(t, err)
	require.False(t, wh.IsVerified)
	require.Zero(t, wh.VerifiedBy)
	require.Zero(t, wh.VerifiedAt)
	require.Equal(t, testCompanyId, wh.RejectedBy)
	require.True(t, wh.RejectedAt > 0)
	var st testStudent
	require.NoError(t, s.db.Where("id = ?", testStudentId).First(&st).Error)
	require.Equal(t, int64(0), st.TotalHours)

	// 复核通过后换成核验印记，驳回印记清掉
	err = s.svc.Verify(context.Background(), owner, id, true)
	require.NoError(t, err)
	wh, err = s.svc.GetById(context.Background(), id)
	require.NoError(t, err)
	require.True(t, wh.IsVerified)
	require.Equal(t, testCompanyId, wh.VerifiedBy)
	require.Zero(t, wh.RejectedBy)
	require.Zero(t, wh.RejectedAt)
	require.NoError(t, s.db.Where("id = ?", testStudentId).First(&st).Error)
	require.Equal(t, int64(4), st.TotalHours)
}

func (s *ModuleTestSuite) TestReverse() {
	t := s.T()
	asgId := s.seedPipeline("active", "active")
	student := actor.Actor{ID: testStudentId, Role: actor.RoleStudent}
	owner := actor.Actor{ID: testCompanyId, Role: actor.RoleCompany}

	id, err := s.svc.Log(context.Background(), student, domain.WorkHour{
		AssignmentID: asgId, Date: time.Now().UnixMilli(), HoursWorked: 8,
	})
	require.NoError(t, err)

	// 未核验的流水不能冲正
	_, err = s.svc.Reverse(context.Background(), owner, id, "记错了")
	require.ErrorIs(t, err, repository.ErrNotVerified)

	require.NoError(t, s.svc.Verify(context.Background(), owner, id, true))
	revId, err := s.svc.Reverse(context.Background(), owner, id, "记错了")
	require.NoError(t, err)

	rev, err := s.svc.GetById(context.Background(), revId)
	require.NoError(t, err)
	require.Equal(t, -8, rev.HoursWorked)
	require.True(t, rev.IsReversal())
	require.Equal(t, id, rev.ReversalOf)

	// 累计工时回退，净额归零
	var st testStudent
	require.NoError(t, s.db.Where("id = ?", testStudentId).First(&st).Error)
	require.Equal(t, int64(0), st.TotalHours)
	total, err := s.svc.VerifiedTotal(context.Background(), testStudentId, testProjectId)
	require.NoError(t, err)
	require.Equal(t, int64(0), total)

	// 一条流水只能冲正一次
	_, err = s.svc.Reverse(context.Background(), owner, id, "再冲一次")
	require.ErrorIs(t, err, repository.ErrAlreadyReversed)
}

func (s *ModuleTestSuite) TestMintCompletionIdempotent() {
	t := s.T()
	s.seedPipeline("completed", "completed")

	minted, err := s.svc.MintProjectCompletion(context.Background(), testProjectId, 120, testCompanyId)
	require.NoError(t, err)
	require.Equal(t, int64(1), minted)

	var st testStudent
	require.NoError(t, s.db.Where("id = ?", testStudentId).First(&st).Error)
	require.Equal(t, int64(120), st.TotalHours)
	require.Equal(t, int64(1), st.CompletedProjects)

	// 重复结项不会二次铸造
	minted, err = s.svc.MintProjectCompletion(context.Background(), testProjectId, 120, testCompanyId)
	require.NoError(t, err)
	require.Equal(t, int64(0), minted)
	require.NoError(t, s.db.Where("id = ?", testStudentId).First(&st).Error)
	require.Equal(t, int64(120), st.TotalHours)
	require.Equal(t, int64(1), st.CompletedProjects)
}
