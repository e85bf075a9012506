package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to SessionStatus
		want     bool
	}{
		{SessionStatusPending, SessionStatusConducted, true},
		{SessionStatusPending, SessionStatusHoliday, true},
		{SessionStatusPending, SessionStatusCancelled, true},

		{SessionStatusHoliday, SessionStatusConducted, true},
		{SessionStatusHoliday, SessionStatusCancelled, true},
		{SessionStatusHoliday, SessionStatusHoliday, false},
		{SessionStatusHoliday, SessionStatusPending, false},

		// terminal: tidak ada jalan keluar
		{SessionStatusConducted, SessionStatusPending, false},
		{SessionStatusConducted, SessionStatusHoliday, false},
		{SessionStatusConducted, SessionStatusCancelled, false},
		{SessionStatusConducted, SessionStatusConducted, false},
		{SessionStatusCancelled, SessionStatusPending, false},
		{SessionStatusCancelled, SessionStatusConducted, false},
		{SessionStatusCancelled, SessionStatusHoliday, false},
		{SessionStatusCancelled, SessionStatusCancelled, false},

		{SessionStatusPending, SessionStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, CanTransition(tc.from, tc.to), "%s → %s", tc.from, tc.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, SessionStatusPending.IsTerminal())
	assert.False(t, SessionStatusHoliday.IsTerminal())
	assert.True(t, SessionStatusConducted.IsTerminal())
	assert.True(t, SessionStatusCancelled.IsTerminal())
}

func TestCancellationReasonValid(t *testing.T) {
	for _, r := range []CancellationReason{
		CancellationReasonSchoolShutdown,
		CancellationReasonSyllabusChange,
		CancellationReasonExamPeriod,
		CancellationReasonDuplicateSession,
		CancellationReasonEmergency,
	} {
		assert.Truef(t, r.Valid(), "reason %s", r)
	}

	assert.False(t, CancellationReason("").Valid())
	assert.False(t, CancellationReason("teacher_sick").Valid())
	assert.False(t, CancellationReason("SCHOOL_SHUTDOWN").Valid())
}
