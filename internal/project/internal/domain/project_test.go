package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectValidate(t *testing.T) {
	t.Parallel()
	valid := Project{
		Title:         "固件原型开发",
		TRL:           5,
		RequiredHours: 120,
		HoursPerWeek:  10,
		DurationWeeks: 12,
		MaxStudents:   2,
	}
	testCases := []struct {
		name      string
		mutate    func(p *Project)
		wantField string
	}{
		{name: "合法项目", mutate: func(p *Project) {}},
		{name: "空标题", mutate: func(p *Project) { p.Title = "" }, wantField: "title"},
		{name: "TRL越界", mutate: func(p *Project) { p.TRL = 10 }, wantField: "trl"},
		{name: "每周工时为零", mutate: func(p *Project) { p.HoursPerWeek = 0 }, wantField: "hoursPerWeek"},
		{name: "周数为零", mutate: func(p *Project) { p.DurationWeeks = 0 }, wantField: "durationWeeks"},
		{name: "总工时为负", mutate: func(p *Project) { p.RequiredHours = -1 }, wantField: "requiredHours"},
		{
			// 120 vs 10×12，偏差 0，正好一周的容差内
			name:   "总工时在一周容差内",
			mutate: func(p *Project) { p.RequiredHours = 130 },
		},
		{
			name:      "总工时超出一周容差",
			mutate:    func(p *Project) { p.RequiredHours = 131 },
			wantField: "requiredHours",
		},
		{name: "名额为零", mutate: func(p *Project) { p.MaxStudents = 0 }, wantField: "maxStudents"},
		{
			name: "预计结束早于开始",
			mutate: func(p *Project) {
				p.StartDate = 2000
				p.EstimatedEndDate = 1000
			},
			wantField: "estimatedEndDate",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}
			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantField, ve.Field)
		})
	}
}
