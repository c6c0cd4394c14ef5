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
	"database/sql"
	"testing"
	"time"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	companystartup "github.com/leanmaker/leanmaker/internal/company/internal/integration/startup"
	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/leanmaker/leanmaker/internal/project"
	"github.com/leanmaker/leanmaker/internal/project/internal/domain"
	"github.com/leanmaker/leanmaker/internal/project/internal/integration/startup"
	"github.com/leanmaker/leanmaker/internal/project/internal/repository"
	"github.com/leanmaker/leanmaker/internal/project/internal/service"
	studentstartup "github.com/leanmaker/leanmaker/internal/student/internal/integration/startup"
	testioc "github.com/leanmaker/leanmaker/internal/test/ioc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type testApplication struct {
	Id        int64
	ProjectId int64
	StudentId int64
	Status    string
	ActiveKey sql.Null[uint8]
	Ctime     int64
	Utime     int64
}

func (testApplication) TableName() string { return "applications" }

type testAssignment struct {
	Id            int64
	ApplicationId int64
	StudentId     int64
	ProjectId     int64
	Status        string
	StartDate     int64
	EndDate       sql.Null[int64]
	Ctime         int64
	Utime         int64
}

func (testAssignment) TableName() string { return "assignments" }

const (
	ownerCompanyId = int64(11)
	otherCompanyId = int64(12)
	theStudentId   = int64(51)
)

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc project.Service
}

func TestModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

func (s *ModuleTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.svc = m.Svc
	s.db = testioc.InitDB()
	// companies / students 表由各自模块建
	_, err = companystartup.InitModule()
	require.NoError(s.T(), err)
	_, err = studentstartup.InitModule()
	require.NoError(s.T(), err)
	err = s.db.AutoMigrate(&testApplication{}, &testAssignment{})
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) SetupTest() {
	now := time.Now().UnixMilli()
	err := s.db.Exec("INSERT INTO `companies` (id, user_id, name, status, ctime, utime) VALUES (?, ?, ?, 'active', ?, ?), (?, ?, ?, 'active', ?, ?)",
		ownerCompanyId, ownerCompanyId, "猎户座科技", now, now,
		otherCompanyId, otherCompanyId, "别家公司", now, now).Error
	s.NoError(err)
	err = s.db.Exec("INSERT INTO `students` (id, user_id, name, status, ctime, utime) VALUES (?, ?, ?, 'approved', ?, ?)",
		theStudentId, theStudentId, "赵六", now, now).Error
	s.NoError(err)
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{"projects", "status_audits", "companies", "students", "applications", "assignments", "work_hours"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

func (s *ModuleTestSuite) owner() actor.Actor {
	return actor.Actor{ID: ownerCompanyId, Role: actor.RoleCompany}
}

func (s *ModuleTestSuite) createProject(hours int) project.Project {
	p, err := s.svc.Create(context.Background(), s.owner(), domain.Project{
		Title:         "水质监测浮标",
		Description:   "部署于水库的物联网浮标",
		TRL:           5,
		RequiredHours: hours,
		HoursPerWeek:  10,
		DurationWeeks: hours / 10,
		MaxStudents:   2,
	})
	require.NoError(s.T(), err)
	return p
}

func (s *ModuleTestSuite) TestCreate() {
	t := s.T()
	p := s.createProject(120)
	// TRL 5 推导出 API 3，门槛默认随之
	require.Equal(t, 3, p.APILevel)
	require.Equal(t, 3, p.MinAPILevel)
	require.Equal(t, domain.StatusDraft, p.Status)

	var totalProjects int64
	err := s.db.Raw("SELECT total_projects FROM `companies` WHERE id = ?", ownerCompanyId).Scan(&totalProjects).Error
	require.NoError(t, err)
	require.Equal(t, int64(1), totalProjects)
}

func (s *ModuleTestSuite) TestCreateStrictMismatch() {
	t := s.T()
	// TRL 5 的档位是 [80,160]，30 小时不符，strict 策略直接拒绝
	_, err := s.svc.Create(context.Background(), s.owner(), domain.Project{
		Title:         "太小的项目",
		TRL:           5,
		RequiredHours: 30,
		HoursPerWeek:  10,
		DurationWeeks: 3,
		MaxStudents:   1,
	})
	require.ErrorIs(t, err, service.ErrCapabilityMismatch)
}

func (s *ModuleTestSuite) TestStudentCannotCreate() {
	t := s.T()
	_, err := s.svc.Create(context.Background(),
		actor.Actor{ID: theStudentId, Role: actor.RoleStudent}, domain.Project{
			Title: "学生不能建项目", TRL: 1, RequiredHours: 20,
			HoursPerWeek: 5, DurationWeeks: 4, MaxStudents: 1,
		})
	require.ErrorIs(t, err, service.ErrForbidden)
}

func (s *ModuleTestSuite) TestPublish() {
	t := s.T()
	p := s.createProject(120)

	// 非归属企业不能发布
	err := s.svc.Publish(context.Background(), actor.Actor{ID: otherCompanyId, Role: actor.RoleCompany}, p.ID)
	require.ErrorIs(t, err, service.ErrForbidden)

	err = s.svc.Publish(context.Background(), s.owner(), p.ID)
	require.NoError(t, err)

	got, err := s.svc.GetById(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPublished, got.Status)
	require.True(t, got.PublishedAt > 0)

	// 发布把项目工时计入企业的总供给
	var offered int64
	err = s.db.Raw("SELECT total_hours_offered FROM `companies` WHERE id = ?", ownerCompanyId).Scan(&offered).Error
	require.NoError(t, err)
	require.Equal(t, int64(120), offered)

	// 重复发布不是合法流转
	err = s.svc.Publish(context.Background(), s.owner(), p.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func (s *ModuleTestSuite) TestPublishedToActiveNeedsAcceptedApplication() {
	t := s.T()
	p := s.createProject(120)
	require.NoError(t, s.svc.Publish(context.Background(), s.owner(), p.ID))

	err := s.svc.Transition(context.Background(), s.owner(), p.ID, domain.StatusActive, "")
	require.ErrorIs(t, err, repository.ErrNoAcceptedApplications)

	now := time.Now().UnixMilli()
	err = s.db.Create(&testApplication{
		ProjectId: p.ID, StudentId: theStudentId, Status: "accepted",
		ActiveKey: sql.Null[uint8]{V: 1, Valid: true}, Ctime: now, Utime: now,
	}).Error
	require.NoError(t, err)

	err = s.svc.Transition(context.Background(), s.owner(), p.ID, domain.StatusActive, "")
	require.NoError(t, err)
	got, err := s.svc.GetById(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, got.Status)
}

func (s *ModuleTestSuite) TestCompleteCascade() {
	t := s.T()
	p := s.createProject(120)
	now := time.Now().UnixMilli()
	// 直接把项目推到 in-progress，并挂上在岗的申请与派遣
	err := s.db.Exec("UPDATE `projects` SET status = 'in-progress', published_at = ? WHERE id = ?", now, p.ID).Error
	require.NoError(t, err)
	app := testApplication{
		ProjectId: p.ID, StudentId: theStudentId, Status: "active",
		ActiveKey: sql.Null[uint8]{V: 1, Valid: true}, Ctime: now, Utime: now,
	}
	require.NoError(t, s.db.Create(&app).Error)
	asg := testAssignment{
		ApplicationId: app.Id, StudentId: theStudentId, ProjectId: p.ID,
		Status: "active", StartDate: now, Ctime: now, Utime: now,
	}
	require.NoError(t, s.db.Create(&asg).Error)

	err = s.svc.Transition(context.Background(), s.owner(), p.ID, domain.StatusCompleted, "验收通过")
	require.NoError(t, err)

	got, err := s.svc.GetById(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, got.Status)
	require.True(t, got.RealEndDate > 0)

	// 派遣与申请随项目收口
	var gotAsg testAssignment
	require.NoError(t, s.db.Where("id = ?", asg.Id).First(&gotAsg).Error)
	require.Equal(t, "completed", gotAsg.Status)
	require.True(t, gotAsg.EndDate.Valid)
	var gotApp testApplication
	require.NoError(t, s.db.Where("id = ?", app.Id).First(&gotApp).Error)
	require.Equal(t, "completed", gotApp.Status)
	require.False(t, gotApp.ActiveKey.Valid)

	// 企业完成数 +1
	var completed int64
	err = s.db.Raw("SELECT projects_completed FROM `companies` WHERE id = ?", ownerCompanyId).Scan(&completed).Error
	require.NoError(t, err)
	require.Equal(t, int64(1), completed)

	// 结项流水已铸造，学生累计工时拿到 required_hours
	var minted int64
	err = s.db.Raw("SELECT COUNT(*) FROM `work_hours` WHERE project_id = ? AND completion_key IS NOT NULL", p.ID).Scan(&minted).Error
	require.NoError(t, err)
	require.Equal(t, int64(1), minted)
	var totalHours int64
	err = s.db.Raw("SELECT total_hours FROM `students` WHERE id = ?", theStudentId).Scan(&totalHours).Error
	require.NoError(t, err)
	require.Equal(t, int64(120), totalHours)

	// 审计表记下了这次流转
	audits, err := s.svc.Audits(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, "completed", audits[len(audits)-1].To)
	require.Equal(t, "验收通过", audits[len(audits)-1].Note)
}

func (s *ModuleTestSuite) TestSuspendIsAdminOnly() {
	t := s.T()
	p := s.createProject(120)
	require.NoError(t, s.svc.Publish(context.Background(), s.owner(), p.ID))

	err := s.svc.Transition(context.Background(), s.owner(), p.ID, domain.StatusSuspended, "")
	require.ErrorIs(t, err, domain.ErrTransitionDenied)

	admin := actor.Actor{ID: 1, Role: actor.RoleAdmin}
	require.NoError(t, s.svc.Transition(context.Background(), admin, p.ID, domain.StatusSuspended, "涉嫌违规"))
	require.NoError(t, s.svc.Transition(context.Background(), admin, p.ID, domain.StatusPublished, "复核通过"))
}

func (s *ModuleTestSuite) TestUpdateFields() {
	t := s.T()
	p := s.createProject(120)
	err := s.db.Exec("UPDATE `projects` SET current_students = 2 WHERE id = ?", p.ID).Error
	require.NoError(t, err)

	one := 1
	err = s.svc.UpdateFields(context.Background(), s.owner(), p.ID, service.Patch{MaxStudents: &one})
	require.ErrorIs(t, err, repository.ErrCapacityBelowCurrent)

	title := "水质监测浮标二期"
	trl := 7
	hours := 200
	weeks := 20
	err = s.svc.UpdateFields(context.Background(), s.owner(), p.ID, service.Patch{
		Title: &title, TRL: &trl, RequiredHours: &hours, DurationWeeks: &weeks,
	})
	require.NoError(t, err)
	got, err := s.svc.GetById(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, title, got.Title)
	// TRL 改成 7 档位升到 API 4
	require.Equal(t, 4, got.APILevel)
	require.Equal(t, 200, got.RequiredHours)
}

func (s *ModuleTestSuite) TestUpdateFieldsStrictMismatch() {
	t := s.T()
	p := s.createProject(120)
	// TRL 不动光改工时也要重过档位校验：TRL 5 的档位是 [80,160]
	hours := 50
	err := s.svc.UpdateFields(context.Background(), s.owner(), p.ID, service.Patch{RequiredHours: &hours})
	require.ErrorIs(t, err, service.ErrCapabilityMismatch)

	got, err := s.svc.GetById(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, 120, got.RequiredHours)
}

func (s *ModuleTestSuite) TestMintPendingCompletions() {
	t := s.T()
	p := s.createProject(120)
	now := time.Now().UnixMilli()
	// 项目已结项但结项流水没铸上，比如当时铸造报错
	err := s.db.Exec("UPDATE `projects` SET status = 'completed' WHERE id = ?", p.ID).Error
	require.NoError(t, err)
	app := testApplication{ProjectId: p.ID, StudentId: theStudentId, Status: "completed", Ctime: now, Utime: now}
	require.NoError(t, s.db.Create(&app).Error)
	asg := testAssignment{
		ApplicationId: app.Id, StudentId: theStudentId, ProjectId: p.ID,
		Status: "completed", StartDate: now,
		EndDate: sql.Null[int64]{V: now, Valid: true}, Ctime: now, Utime: now,
	}
	require.NoError(t, s.db.Create(&asg).Error)

	minted, err := s.svc.MintPendingCompletions(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), minted)
	var totalHours int64
	err = s.db.Raw("SELECT total_hours FROM `students` WHERE id = ?", theStudentId).Scan(&totalHours).Error
	require.NoError(t, err)
	require.Equal(t, int64(120), totalHours)

	// 幂等：再补账一遍不会二次铸造
	minted, err = s.svc.MintPendingCompletions(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(0), minted)
	err = s.db.Raw("SELECT total_hours FROM `students` WHERE id = ?", theStudentId).Scan(&totalHours).Error
	require.NoError(t, err)
	require.Equal(t, int64(120), totalHours)
}

func (s *ModuleTestSuite) TestAutoRepairPolicy() {
	t := s.T()
	econf.Set("plpe.capabilityPolicy", "autorepair")
	defer econf.Set("plpe.capabilityPolicy", "strict")
	m, err := startup.InitModule()
	require.NoError(t, err)

	p, err := m.Svc.Create(context.Background(), s.owner(), domain.Project{
		Title:         "工时不足的项目",
		TRL:           5,
		APILevel:      2,
		RequiredHours: 75,
		HoursPerWeek:  8,
		DurationWeeks: 10,
		MaxStudents:   1,
	})
	require.NoError(t, err)
	// 自动修复把能力等级对齐到 3，工时钳到档位下限 80
	require.Equal(t, 3, p.APILevel)
	require.Equal(t, 80, p.RequiredHours)

	// 更新工时同样走修复，30 被钳回档位下限
	hours := 30
	err = m.Svc.UpdateFields(context.Background(), s.owner(), p.ID, service.Patch{RequiredHours: &hours})
	require.NoError(t, err)
	got, err := m.Svc.GetById(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, 80, got.RequiredHours)
}
