package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	seqModel "clasku_backend/internals/features/school/sessions/sequence/model"
)

// newTestDB: sqlite in-memory, satu koneksi supaya semua tx lihat DB yang sama
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
		&seqModel.PlannedSessionModel{},
		&seqModel.ActualSessionModel{},
	))
	return db
}

// seedSection: section baru dengan set lengkap 1..150
func seedSection(t *testing.T, db *gorm.DB) (schoolID, sectionID uuid.UUID) {
	t.Helper()

	schoolID = uuid.New()
	sectionID = uuid.New()

	gen := NewGeneratorService()
	res, err := gen.GenerateSessionsForClass(db, schoolID, sectionID)
	require.NoError(t, err)
	require.Equal(t, seqModel.TotalCurriculumDays, res.Created)
	return schoolID, sectionID
}

// plannedByDay mengambil planned session sebuah hari tertentu
func plannedByDay(t *testing.T, db *gorm.DB, sectionID uuid.UUID, day int) *seqModel.PlannedSessionModel {
	t.Helper()

	var p seqModel.PlannedSessionModel
	require.NoError(t, db.
		Where("planned_session_section_id = ? AND planned_session_day_number = ?", sectionID, day).
		First(&p).Error)
	return &p
}
