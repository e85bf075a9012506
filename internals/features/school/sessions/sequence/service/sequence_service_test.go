package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	seqModel "clasku_backend/internals/features/school/sessions/sequence/model"
)

func TestGetNextPendingSession_FreshSection(t *testing.T) {
	db := newTestDB(t)
	_, sectionID := seedSection(t, db)

	seq := NewSequenceService()
	next, err := seq.GetNextPendingSession(db, sectionID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, 1, next.PlannedSessionDayNumber)
}

// Skenario campuran: conducted & cancelled dilewati, holiday TIDAK dilewati.
func TestGetNextPendingSession_MixedStatuses(t *testing.T) {
	db := newTestDB(t)
	_, sectionID := seedSection(t, db)

	tr := NewTransitionService()
	seq := NewSequenceService()
	facilitator := uuid.New()
	admin := uuid.New()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// Hari 1-3 conducted
	for d := 1; d <= 3; d++ {
		p := plannedByDay(t, db, sectionID, d)
		_, err := tr.ConductSession(db, p.PlannedSessionID, facilitator, day.AddDate(0, 0, d))
		require.NoError(t, err)
	}

	next, err := seq.GetNextPendingSession(db, sectionID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, 4, next.PlannedSessionDayNumber)

	// Hari 4 holiday → MASIH jadi next (belum selesai)
	p4 := plannedByDay(t, db, sectionID, 4)
	_, err = tr.MarkHoliday(db, p4.PlannedSessionID, day.AddDate(0, 0, 4), "Libur nasional")
	require.NoError(t, err)

	next, err = seq.GetNextPendingSession(db, sectionID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, 4, next.PlannedSessionDayNumber)

	// Hari 4 cancelled → terminal, next maju ke 5
	_, err = tr.CancelSession(db, p4.PlannedSessionID, day.AddDate(0, 0, 5), seqModel.CancellationReasonExamPeriod, admin)
	require.NoError(t, err)

	next, err = seq.GetNextPendingSession(db, sectionID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, 5, next.PlannedSessionDayNumber)
}

// Seluruh 150 hari terminal → kurikulum selesai, next = nil tanpa error.
func TestGetNextPendingSession_CurriculumComplete(t *testing.T) {
	db := newTestDB(t)
	schoolID, sectionID := seedSection(t, db)

	markAllConducted(t, db, schoolID, sectionID)

	seq := NewSequenceService()
	next, err := seq.GetNextPendingSession(db, sectionID)
	require.NoError(t, err)
	assert.Nil(t, next)

	prog, err := seq.CalculateProgress(db, sectionID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, prog.CompletionPercentage)
	assert.Nil(t, prog.NextDayNumber)
}

func TestCalculateProgress_CountsAndRounding(t *testing.T) {
	db := newTestDB(t)
	_, sectionID := seedSection(t, db)

	tr := NewTransitionService()
	seq := NewSequenceService()
	facilitator := uuid.New()
	admin := uuid.New()
	base := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	// 2 conducted + 1 cancelled + 1 holiday
	for d := 1; d <= 2; d++ {
		p := plannedByDay(t, db, sectionID, d)
		_, err := tr.ConductSession(db, p.PlannedSessionID, facilitator, base.AddDate(0, 0, d))
		require.NoError(t, err)
	}
	p3 := plannedByDay(t, db, sectionID, 3)
	_, err := tr.CancelSession(db, p3.PlannedSessionID, base.AddDate(0, 0, 3), seqModel.CancellationReasonSyllabusChange, admin)
	require.NoError(t, err)
	p4 := plannedByDay(t, db, sectionID, 4)
	_, err = tr.MarkHoliday(db, p4.PlannedSessionID, base.AddDate(0, 0, 4), "Cuti bersama")
	require.NoError(t, err)

	prog, err := seq.CalculateProgress(db, sectionID)
	require.NoError(t, err)

	assert.Equal(t, 2, prog.ConductedCount)
	assert.Equal(t, 1, prog.CancelledCount)
	assert.Equal(t, 1, prog.HolidayCount)
	assert.Equal(t, 146, prog.PendingCount)

	// (2+2)/150*100 = 2.666..% → 2.7 (holiday TIDAK dihitung selesai)
	assert.Equal(t, 2.7, prog.CompletionPercentage)

	require.NotNil(t, prog.NextDayNumber)
	assert.Equal(t, 4, *prog.NextDayNumber) // holiday = hari tertunda, bukan terlewati
}

// Progress tidak pernah turun: tiap transisi terminal menaikkan/menahan persentase.
func TestCalculateProgress_Monotonic(t *testing.T) {
	db := newTestDB(t)
	_, sectionID := seedSection(t, db)

	tr := NewTransitionService()
	seq := NewSequenceService()
	facilitator := uuid.New()
	base := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	last := -1.0
	for d := 1; d <= 10; d++ {
		p := plannedByDay(t, db, sectionID, d)
		_, err := tr.ConductSession(db, p.PlannedSessionID, facilitator, base.AddDate(0, 0, d))
		require.NoError(t, err)

		prog, err := seq.CalculateProgress(db, sectionID)
		require.NoError(t, err)
		assert.Greater(t, prog.CompletionPercentage, last)
		last = prog.CompletionPercentage
	}
}

// Sequence bolong (hard delete) → semua operasi read menolak dengan ErrDataIntegrity.
func TestSequence_IncompleteSetRejected(t *testing.T) {
	db := newTestDB(t)
	_, sectionID := seedSection(t, db)

	p42 := plannedByDay(t, db, sectionID, 42)
	require.NoError(t, db.Unscoped().Delete(p42).Error)

	seq := NewSequenceService()

	_, err := seq.GetNextPendingSession(db, sectionID)
	require.ErrorIs(t, err, ErrDataIntegrity)

	_, err = seq.CalculateProgress(db, sectionID)
	require.ErrorIs(t, err, ErrDataIntegrity)

	_, err = seq.UpcomingPendingSessions(db, sectionID, 5)
	require.ErrorIs(t, err, ErrDataIntegrity)
}

func TestUpcomingPendingSessions_WindowAndOrder(t *testing.T) {
	db := newTestDB(t)
	_, sectionID := seedSection(t, db)

	tr := NewTransitionService()
	seq := NewSequenceService()
	facilitator := uuid.New()
	base := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)

	// Hari 1-2 conducted → window mulai dari hari 3
	for d := 1; d <= 2; d++ {
		p := plannedByDay(t, db, sectionID, d)
		_, err := tr.ConductSession(db, p.PlannedSessionID, facilitator, base.AddDate(0, 0, d))
		require.NoError(t, err)
	}

	upcoming, err := seq.UpcomingPendingSessions(db, sectionID, 5)
	require.NoError(t, err)
	require.Len(t, upcoming, 5)
	for i, p := range upcoming {
		assert.Equal(t, 3+i, p.PlannedSessionDayNumber)
	}

	// limit <= 0 → default 7
	upcoming, err = seq.UpcomingPendingSessions(db, sectionID, 0)
	require.NoError(t, err)
	assert.Len(t, upcoming, 7)
}

// markAllConducted menulis baris conducted langsung (tanpa engine) utk seluruh section
func markAllConducted(t *testing.T, db *gorm.DB, schoolID, sectionID uuid.UUID) {
	t.Helper()

	var planned []seqModel.PlannedSessionModel
	require.NoError(t, db.
		Where("planned_session_section_id = ?", sectionID).
		Order("planned_session_day_number ASC").
		Find(&planned).Error)

	now := time.Now()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]seqModel.ActualSessionModel, 0, len(planned))
	for i := range planned {
		rows = append(rows, seqModel.ActualSessionModel{
			ActualSessionSchoolID:    schoolID,
			ActualSessionSectionID:   sectionID,
			ActualSessionPlannedID:   planned[i].PlannedSessionID,
			ActualSessionDate:        base.AddDate(0, 0, i),
			ActualSessionStatus:      seqModel.SessionStatusConducted,
			ActualSessionConductedAt: &now,
		})
	}
	require.NoError(t, db.Create(&rows).Error)
}
