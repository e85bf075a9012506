package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	attModel "clasku_backend/internals/features/school/attendance/model"
	seqModel "clasku_backend/internals/features/school/sessions/sequence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&seqModel.ActualSessionModel{},
		&attModel.AttendanceModel{},
	))
	return db
}

func seedSession(t *testing.T, db *gorm.DB, status seqModel.SessionStatus) *seqModel.ActualSessionModel {
	t.Helper()

	now := time.Now()
	row := seqModel.ActualSessionModel{
		ActualSessionSchoolID:  uuid.New(),
		ActualSessionSectionID: uuid.New(),
		ActualSessionPlannedID: uuid.New(),
		ActualSessionDate:      time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		ActualSessionStatus:    status,
	}
	if status == seqModel.SessionStatusConducted {
		row.ActualSessionConductedAt = &now
	}
	require.NoError(t, db.Create(&row).Error)
	return &row
}

func TestMarkSessionAttendance_ConductedSession(t *testing.T) {
	db := newTestDB(t)
	session := seedSession(t, db, seqModel.SessionStatusConducted)

	svc := NewAttendanceService()
	facilitator := uuid.New()
	note := "Datang terlambat 10 menit"
	students := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	saved, err := svc.MarkSessionAttendance(db, session.ActualSessionID, facilitator, []AttendanceEntry{
		{StudentID: students[0], Status: attModel.AttendanceStatusPresent},
		{StudentID: students[1], Status: attModel.AttendanceStatusLate, Note: &note},
		{StudentID: students[2], Status: attModel.AttendanceStatusAbsent},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, saved)

	rows, err := svc.ListSessionAttendance(db, session.ActualSessionID)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// sesi conducted kini closed: attendance_marked naik true
	var reloaded seqModel.ActualSessionModel
	require.NoError(t, db.First(&reloaded, "actual_session_id = ?", session.ActualSessionID).Error)
	assert.True(t, reloaded.ActualSessionAttendanceMarked)
}

// Re-mark siswa yang sama → update status, bukan baris baru.
func TestMarkSessionAttendance_RemarkUpserts(t *testing.T) {
	db := newTestDB(t)
	session := seedSession(t, db, seqModel.SessionStatusConducted)

	svc := NewAttendanceService()
	facilitator := uuid.New()
	student := uuid.New()

	_, err := svc.MarkSessionAttendance(db, session.ActualSessionID, facilitator, []AttendanceEntry{
		{StudentID: student, Status: attModel.AttendanceStatusAbsent},
	})
	require.NoError(t, err)

	// ternyata hadir, cuma telat
	_, err = svc.MarkSessionAttendance(db, session.ActualSessionID, facilitator, []AttendanceEntry{
		{StudentID: student, Status: attModel.AttendanceStatusLate},
	})
	require.NoError(t, err)

	rows, err := svc.ListSessionAttendance(db, session.ActualSessionID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, attModel.AttendanceStatusLate, rows[0].AttendanceStatus)
}

func TestMarkSessionAttendance_RejectsNonConducted(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService()

	for _, status := range []seqModel.SessionStatus{
		seqModel.SessionStatusHoliday,
		seqModel.SessionStatusCancelled,
	} {
		session := seedSession(t, db, status)
		_, err := svc.MarkSessionAttendance(db, session.ActualSessionID, uuid.New(), []AttendanceEntry{
			{StudentID: uuid.New(), Status: attModel.AttendanceStatusPresent},
		})
		require.ErrorIs(t, err, ErrSessionNotConducted)

		rows, err := svc.ListSessionAttendance(db, session.ActualSessionID)
		require.NoError(t, err)
		assert.Empty(t, rows)
	}
}

func TestMarkSessionAttendance_InvalidStatusRejected(t *testing.T) {
	db := newTestDB(t)
	session := seedSession(t, db, seqModel.SessionStatusConducted)

	svc := NewAttendanceService()
	_, err := svc.MarkSessionAttendance(db, session.ActualSessionID, uuid.New(), []AttendanceEntry{
		{StudentID: uuid.New(), Status: attModel.AttendanceStatus("bolos")},
	})
	require.Error(t, err)

	// ditolak sebelum menyentuh store
	rows, listErr := svc.ListSessionAttendance(db, session.ActualSessionID)
	require.NoError(t, listErr)
	assert.Empty(t, rows)
}

func TestMarkSessionAttendance_EmptyEntriesNoop(t *testing.T) {
	db := newTestDB(t)
	session := seedSession(t, db, seqModel.SessionStatusConducted)

	svc := NewAttendanceService()
	saved, err := svc.MarkSessionAttendance(db, session.ActualSessionID, uuid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, saved)
}
