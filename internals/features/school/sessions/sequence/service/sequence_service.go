package service

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	seqModel "clasku_backend/internals/features/school/sessions/sequence/model"
)

/* ---------------------------------------------------
   Sequence Calculator (read-only)
   Menentukan "sesi hari ini" sebuah section: day_number
   terkecil yang belum terminal. Tidak pernah menulis.
--------------------------------------------------- */

type SequenceService struct{}

func NewSequenceService() *SequenceService { return &SequenceService{} }

type ProgressResult struct {
	SectionID            uuid.UUID `json:"section_id"`
	CompletionPercentage float64   `json:"completion_percentage"`
	ConductedCount       int       `json:"conducted_count"`
	CancelledCount       int       `json:"cancelled_count"`
	HolidayCount         int       `json:"holiday_count"`
	PendingCount         int       `json:"pending_count"`
	NextDayNumber        *int      `json:"next_day_number,omitempty"`
}

// loadOrderedPlanned mengambil planned sessions ascending day_number
// sekaligus memvalidasi invariannya (set lengkap 1..150 tanpa duplikat).
func (s *SequenceService) loadOrderedPlanned(tx *gorm.DB, sectionID uuid.UUID) ([]seqModel.PlannedSessionModel, error) {
	var planned []seqModel.PlannedSessionModel
	if err := tx.
		Where("planned_session_section_id = ?", sectionID).
		Order("planned_session_day_number ASC").
		Find(&planned).Error; err != nil {
		return nil, err
	}

	if len(planned) != seqModel.TotalCurriculumDays {
		return nil, fmt.Errorf("%w: section %s punya %d hari (harus %d), jalankan repair",
			ErrDataIntegrity, sectionID, len(planned), seqModel.TotalCurriculumDays)
	}
	for i := range planned {
		if planned[i].PlannedSessionDayNumber != i+1 {
			return nil, fmt.Errorf("%w: day_number %d hilang/duplikat di section %s, jalankan repair",
				ErrDataIntegrity, i+1, sectionID)
		}
	}
	return planned, nil
}

// StatusBySection memetakan planned_id → status turunan (untuk listing/dashboard)
func (s *SequenceService) StatusBySection(tx *gorm.DB, sectionID uuid.UUID) (map[uuid.UUID]seqModel.SessionStatus, error) {
	return statusBySection(tx, sectionID)
}

// GetNextPendingSession mengembalikan planned session pertama (day_number terkecil)
// yang statusnya belum terminal. HOLIDAY tetap dihitung pending. Mengembalikan
// (nil, nil) kalau seluruh 150 hari sudah conducted/cancelled (kurikulum selesai).
func (s *SequenceService) GetNextPendingSession(tx *gorm.DB, sectionID uuid.UUID) (*seqModel.PlannedSessionModel, error) {
	planned, err := s.loadOrderedPlanned(tx, sectionID)
	if err != nil {
		return nil, err
	}

	statuses, err := statusBySection(tx, sectionID)
	if err != nil {
		return nil, err
	}

	for i := range planned {
		st, ok := statuses[planned[i].PlannedSessionID]
		if !ok {
			st = seqModel.SessionStatusPending
		}
		if !st.IsTerminal() {
			return &planned[i], nil
		}
	}
	return nil, nil // kurikulum selesai
}

// CalculateProgress: completion = (conducted + cancelled) / 150 * 100, 1 desimal.
// HOLIDAY tidak dihitung selesai (masih pending work).
func (s *SequenceService) CalculateProgress(tx *gorm.DB, sectionID uuid.UUID) (*ProgressResult, error) {
	planned, err := s.loadOrderedPlanned(tx, sectionID)
	if err != nil {
		return nil, err
	}

	statuses, err := statusBySection(tx, sectionID)
	if err != nil {
		return nil, err
	}

	res := &ProgressResult{SectionID: sectionID}
	for i := range planned {
		st, ok := statuses[planned[i].PlannedSessionID]
		if !ok {
			st = seqModel.SessionStatusPending
		}
		switch st {
		case seqModel.SessionStatusConducted:
			res.ConductedCount++
		case seqModel.SessionStatusCancelled:
			res.CancelledCount++
		case seqModel.SessionStatusHoliday:
			res.HolidayCount++
		default:
			res.PendingCount++
		}
		if res.NextDayNumber == nil && !st.IsTerminal() {
			day := planned[i].PlannedSessionDayNumber
			res.NextDayNumber = &day
		}
	}

	done := res.ConductedCount + res.CancelledCount
	pct := float64(done) / float64(seqModel.TotalCurriculumDays) * 100
	res.CompletionPercentage = math.Round(pct*10) / 10
	return res, nil
}

// UpcomingPendingSessions: daftar sesi belum terminal, ascending, maksimal limit baris.
// Dipakai dashboard (projection), bukan bagian write path.
func (s *SequenceService) UpcomingPendingSessions(tx *gorm.DB, sectionID uuid.UUID, limit int) ([]seqModel.PlannedSessionModel, error) {
	if limit <= 0 {
		limit = 7
	}

	planned, err := s.loadOrderedPlanned(tx, sectionID)
	if err != nil {
		return nil, err
	}
	statuses, err := statusBySection(tx, sectionID)
	if err != nil {
		return nil, err
	}

	out := make([]seqModel.PlannedSessionModel, 0, limit)
	for i := range planned {
		st, ok := statuses[planned[i].PlannedSessionID]
		if !ok {
			st = seqModel.SessionStatusPending
		}
		if !st.IsTerminal() {
			out = append(out, planned[i])
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}
