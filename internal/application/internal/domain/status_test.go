package domain

import (
	"testing"

	"github.com/leanmaker/leanmaker/internal/pkg/actor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()
	got, err := ParseStatus(" Pendiente ")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got)
	got, err = ParseStatus("aceptado")
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, got)
	got, err = ParseStatus("withdrawn")
	require.NoError(t, err)
	assert.Equal(t, StatusWithdrawn, got)
	_, err = ParseStatus("nope")
	require.ErrorIs(t, err, ErrUnknownStatus)
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	for _, s := range []Status{StatusRejected, StatusWithdrawn, StatusCompleted, StatusCancelled} {
		assert.True(t, s.IsTerminal(), s)
	}
	for _, s := range []Status{StatusPending, StatusReviewing, StatusInterviewed, StatusAccepted, StatusActive} {
		assert.False(t, s.IsTerminal(), s)
	}
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
		{name: "企业开始审阅", from: StatusPending, to: StatusReviewing, role: actor.RoleCompany},
		{name: "学生撤回pending", from: StatusPending, to: StatusWithdrawn, role: actor.RoleStudent},
		{name: "企业不能替学生撤回", from: StatusPending, to: StatusWithdrawn, role: actor.RoleCompany, wantErr: ErrTransitionDenied},
		{name: "企业面试后拒绝", from: StatusInterviewed, to: StatusRejected, role: actor.RoleCompany},
		{name: "学生面试后撤回", from: StatusInterviewed, to: StatusWithdrawn, role: actor.RoleStudent},
		{name: "管理员兜底取消accepted", from: StatusAccepted, to: StatusCancelled, role: actor.RoleAdmin},
		{name: "企业不能取消accepted", from: StatusAccepted, to: StatusCancelled, role: actor.RoleCompany, wantErr: ErrTransitionDenied},
		{name: "终态不可再动", from: StatusRejected, to: StatusPending, role: actor.RoleAdmin, wantErr: ErrInvalidTransition},
		{name: "completed是终态", from: StatusCompleted, to: StatusActive, role: actor.RoleAdmin, wantErr: ErrInvalidTransition},
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

func TestAcceptableFrom(t *testing.T) {
	t.Parallel()
	assert.True(t, AcceptableFrom(StatusPending))
	assert.True(t, AcceptableFrom(StatusReviewing))
	assert.True(t, AcceptableFrom(StatusInterviewed))
	assert.False(t, AcceptableFrom(StatusAccepted))
	assert.False(t, AcceptableFrom(StatusRejected))
}
