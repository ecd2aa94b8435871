package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPeriodStatusTransitions(t *testing.T) {
	require.True(t, PeriodStatusOpen.CanTransition(PeriodStatusSubmitted))
	require.True(t, PeriodStatusSubmitted.CanTransition(PeriodStatusApproved))
	require.True(t, PeriodStatusApproved.CanTransition(PeriodStatusLocked))

	// переходы только на один шаг вперед
	require.False(t, PeriodStatusOpen.CanTransition(PeriodStatusApproved))
	require.False(t, PeriodStatusOpen.CanTransition(PeriodStatusLocked))
	require.False(t, PeriodStatusSubmitted.CanTransition(PeriodStatusLocked))

	// возвратов нет
	require.False(t, PeriodStatusSubmitted.CanTransition(PeriodStatusOpen))
	require.False(t, PeriodStatusApproved.CanTransition(PeriodStatusSubmitted))
	require.False(t, PeriodStatusLocked.CanTransition(PeriodStatusApproved))
	require.False(t, PeriodStatusLocked.CanTransition(PeriodStatusOpen))

	// повторная сдача невозможна
	require.False(t, PeriodStatusSubmitted.CanTransition(PeriodStatusSubmitted))
}

func TestPayrollStatusTransitions(t *testing.T) {
	require.True(t, PayrollStatusDraft.CanTransition(PayrollStatusCalculated))
	require.True(t, PayrollStatusCalculated.CanTransition(PayrollStatusApproved))
	require.True(t, PayrollStatusApproved.CanTransition(PayrollStatusPaid))
	require.True(t, PayrollStatusApproved.CanTransition(PayrollStatusLocked))

	require.False(t, PayrollStatusDraft.CanTransition(PayrollStatusApproved))
	require.False(t, PayrollStatusCalculated.CanTransition(PayrollStatusPaid))
	require.False(t, PayrollStatusPaid.CanTransition(PayrollStatusApproved))
	require.False(t, PayrollStatusLocked.CanTransition(PayrollStatusDraft))
}

func TestPayrollAllowCalculation(t *testing.T) {
	require.True(t, PayrollStatusDraft.AllowCalculation())
	require.True(t, PayrollStatusCalculated.AllowCalculation())
	require.False(t, PayrollStatusApproved.AllowCalculation())
	require.False(t, PayrollStatusPaid.AllowCalculation())
	require.False(t, PayrollStatusLocked.AllowCalculation())
}

func TestWorksiteStatusIsValid(t *testing.T) {
	require.True(t, WorksiteStatusActive.IsValid())
	require.True(t, WorksiteStatusSuspended.IsValid())
	require.True(t, WorksiteStatusClosed.IsValid())
	require.False(t, WorksiteStatus("UNKNOWN").IsValid())
}
