package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seqModel "clasku_backend/internals/features/school/sessions/sequence/model"
)

func TestGenerateSessionsForClass_FreshSection(t *testing.T) {
	db := newTestDB(t)

	gen := NewGeneratorService()
	schoolID := uuid.New()
	sectionID := uuid.New()

	res, err := gen.GenerateSessionsForClass(db, schoolID, sectionID)
	require.NoError(t, err)
	assert.Equal(t, seqModel.TotalCurriculumDays, res.Created)
	assert.Equal(t, 0, res.AlreadyPresent)

	report, err := gen.ValidateSequenceIntegrity(db, sectionID)
	require.NoError(t, err)
	assert.True(t, report.Complete)
	assert.Equal(t, seqModel.TotalCurriculumDays, report.TotalRows)
	assert.Empty(t, report.MissingDays)
	assert.Empty(t, report.DuplicateDays)

	// day_number = sequence_position = 1..150, semua required & aktif
	var planned []seqModel.PlannedSessionModel
	require.NoError(t, db.
		Where("planned_session_section_id = ?", sectionID).
		Order("planned_session_day_number ASC").
		Find(&planned).Error)
	require.Len(t, planned, seqModel.TotalCurriculumDays)
	for i := range planned {
		assert.Equal(t, i+1, planned[i].PlannedSessionDayNumber)
		assert.Equal(t, i+1, planned[i].PlannedSessionSequencePosition)
		assert.True(t, planned[i].PlannedSessionIsRequired)
		assert.True(t, planned[i].PlannedSessionIsActive)
		assert.Equal(t, schoolID, planned[i].PlannedSessionSchoolID)
	}
}

func TestGenerateSessionsForClass_Idempotent(t *testing.T) {
	db := newTestDB(t)
	schoolID, sectionID := seedSection(t, db)

	gen := NewGeneratorService()
	res, err := gen.GenerateSessionsForClass(db, schoolID, sectionID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, seqModel.TotalCurriculumDays, res.AlreadyPresent)

	var count int64
	require.NoError(t, db.Model(&seqModel.PlannedSessionModel{}).
		Where("planned_session_section_id = ?", sectionID).
		Count(&count).Error)
	assert.EqualValues(t, seqModel.TotalCurriculumDays, count)
}

func TestValidateSequenceIntegrity_ReportsGaps(t *testing.T) {
	db := newTestDB(t)
	_, sectionID := seedSection(t, db)

	require.NoError(t, db.Unscoped().
		Where("planned_session_section_id = ? AND planned_session_day_number IN ?", sectionID, []int{10, 20, 150}).
		Delete(&seqModel.PlannedSessionModel{}).Error)

	gen := NewGeneratorService()
	report, err := gen.ValidateSequenceIntegrity(db, sectionID)
	require.NoError(t, err)
	assert.False(t, report.Complete)
	assert.Equal(t, seqModel.TotalCurriculumDays-3, report.TotalRows)
	assert.Equal(t, []int{10, 20, 150}, report.MissingDays)
	assert.Empty(t, report.DuplicateDays)
}

// Repair mengisi gap TANPA menyentuh baris lama (id & status history aman).
func TestRepairSessionSequence_FillsGapsOnly(t *testing.T) {
	db := newTestDB(t)
	schoolID, sectionID := seedSection(t, db)

	// Catat id baris yang akan bertahan
	before := make(map[int]uuid.UUID)
	var planned []seqModel.PlannedSessionModel
	require.NoError(t, db.Where("planned_session_section_id = ?", sectionID).Find(&planned).Error)
	for i := range planned {
		before[planned[i].PlannedSessionDayNumber] = planned[i].PlannedSessionID
	}

	require.NoError(t, db.Unscoped().
		Where("planned_session_section_id = ? AND planned_session_day_number IN ?", sectionID, []int{7, 77}).
		Delete(&seqModel.PlannedSessionModel{}).Error)

	gen := NewGeneratorService()
	res, err := gen.RepairSessionSequence(db, schoolID, sectionID)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 77}, res.CreatedDays)

	report, err := gen.ValidateSequenceIntegrity(db, sectionID)
	require.NoError(t, err)
	assert.True(t, report.Complete)

	// Baris yang tidak dihapus tetap identitas lama
	var after []seqModel.PlannedSessionModel
	require.NoError(t, db.Where("planned_session_section_id = ?", sectionID).Find(&after).Error)
	for i := range after {
		day := after[i].PlannedSessionDayNumber
		if day == 7 || day == 77 {
			assert.NotEqual(t, before[day], after[i].PlannedSessionID)
			continue
		}
		assert.Equal(t, before[day], after[i].PlannedSessionID)
	}
}

func TestRepairSessionSequence_NoopWhenComplete(t *testing.T) {
	db := newTestDB(t)
	schoolID, sectionID := seedSection(t, db)

	gen := NewGeneratorService()
	res, err := gen.RepairSessionSequence(db, schoolID, sectionID)
	require.NoError(t, err)
	assert.Empty(t, res.CreatedDays)
}
