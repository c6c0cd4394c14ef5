package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	t.Parallel()
	got, err := ParseType(" Company_To_Student ")
	require.NoError(t, err)
	assert.Equal(t, TypeCompanyToStudent, got)
	got, err = ParseType("student_to_company")
	require.NoError(t, err)
	assert.Equal(t, TypeStudentToCompany, got)
	_, err = ParseType("peer_to_peer")
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		eval      Evaluation
		wantScore float64
		wantErr   error
	}{
		{
			name:      "正常评分保留一位小数",
			eval:      Evaluation{Type: TypeStudentToCompany, Score: 4.44},
			wantScore: 4.4,
		},
		{
			name:      "四舍五入后恰好到上界",
			eval:      Evaluation{Type: TypeCompanyToStudent, Score: 4.96},
			wantScore: 5.0,
		},
		{
			name:    "超过上界",
			eval:    Evaluation{Type: TypeCompanyToStudent, Score: 5.06},
			wantErr: ErrInvalidScore,
		},
		{
			name:    "低于下界",
			eval:    Evaluation{Type: TypeStudentToCompany, Score: 0.9},
			wantErr: ErrInvalidScore,
		},
		{
			name:    "类型缺失",
			eval:    Evaluation{Score: 4.0},
			wantErr: ErrUnknownType,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.eval.Normalize()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantScore, tc.eval.Score)
		})
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4.0, Round2(4.0))
	assert.Equal(t, 4.33, Round2(13.0/3.0))
	assert.Equal(t, 4.67, Round2(14.0/3.0))
	assert.Equal(t, 0.0, Round2(0))
}
