package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	seqModel "clasku_backend/internals/features/school/sessions/sequence/model"
)

/* ---------------------------------------------------
   Status Transition Engine (write path)
   Satu-satunya komponen yang boleh mengubah status sesi.
   Cek status + tulis SELALU di dalam transaksi yang sama
   (guarded update / ON CONFLICT), anti lost-update.
--------------------------------------------------- */

type TransitionService struct{}

func NewTransitionService() *TransitionService { return &TransitionService{} }

// ValidateStatusChange: predikat murni atas tabel transisi.
// Dipakai engine sendiri dan caller yang mau pre-check (mis. tampilkan tombol Cancel).
func (s *TransitionService) ValidateStatusChange(current, next seqModel.SessionStatus) error {
	if !seqModel.CanTransition(current, next) {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, current, next)
	}
	return nil
}

// ConductSession menandai planned session sebagai CONDUCTED pada tanggal date.
// Precondition: status turunan saat ini pending/holiday. Tanggal dipercaya dari
// caller (kebijakan "harus hari ini" milik workflow facilitator, bukan engine).
// attendance_marked di-reset false; subsistem attendance yang menaikkannya.
func (s *TransitionService) ConductSession(db *gorm.DB, plannedID, facilitatorID uuid.UUID, date time.Time) (*seqModel.ActualSessionModel, error) {
	var out *seqModel.ActualSessionModel

	err := db.Transaction(func(tx *gorm.DB) error {
		planned, current, err := s.lockAndDerive(tx, plannedID)
		if err != nil {
			return err
		}
		if err := s.ValidateStatusChange(current, seqModel.SessionStatusConducted); err != nil {
			return err
		}

		now := time.Now()
		day := normalizeDate(date)
		patch := map[string]any{
			"actual_session_status":             seqModel.SessionStatusConducted,
			"actual_session_facilitator_id":     facilitatorID,
			"actual_session_conducted_at":       now,
			"actual_session_attendance_marked":  false,
			"actual_session_can_be_rescheduled": false,
		}

		row, err := s.applyTransition(tx, planned, day, seqModel.SessionStatusConducted, patch, func(m *seqModel.ActualSessionModel) {
			m.ActualSessionFacilitatorID = &facilitatorID
			m.ActualSessionConductedAt = &now
			m.ActualSessionAttendanceMarked = false
			m.ActualSessionCanBeRescheduled = false
		})
		if err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkHoliday menandai sesi sebagai HOLIDAY (alasan bebas, bukan enum).
// Sesi tetap pending bagi calculator dan masih bisa di-conduct kemudian.
func (s *TransitionService) MarkHoliday(db *gorm.DB, plannedID uuid.UUID, date time.Time, reason string) (*seqModel.ActualSessionModel, error) {
	var out *seqModel.ActualSessionModel

	err := db.Transaction(func(tx *gorm.DB) error {
		planned, current, err := s.lockAndDerive(tx, plannedID)
		if err != nil {
			return err
		}
		if err := s.ValidateStatusChange(current, seqModel.SessionStatusHoliday); err != nil {
			return err
		}

		day := normalizeDate(date)
		patch := map[string]any{
			"actual_session_status":                    seqModel.SessionStatusHoliday,
			"actual_session_holiday_reason":            reason,
			"actual_session_can_be_rescheduled":        true,
			"actual_session_is_permanent_cancellation": false,
		}

		row, err := s.applyTransition(tx, planned, day, seqModel.SessionStatusHoliday, patch, func(m *seqModel.ActualSessionModel) {
			m.ActualSessionHolidayReason = &reason
			m.ActualSessionCanBeRescheduled = true
			m.ActualSessionIsPermanentCancel = false
		})
		if err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CancelSession membatalkan sesi secara permanen (irreversible by design).
// reasonCode WAJIB dari enum tertutup; ditolak sebelum menyentuh store.
// Jalur pemulihan satu-satunya adalah repair administratif (planned baru),
// tidak pernah menghidupkan kembali yang cancelled.
func (s *TransitionService) CancelSession(db *gorm.DB, plannedID uuid.UUID, date time.Time, reasonCode seqModel.CancellationReason, performedBy uuid.UUID) (*seqModel.ActualSessionModel, error) {
	if !reasonCode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCancellationReason, string(reasonCode))
	}

	var out *seqModel.ActualSessionModel

	err := db.Transaction(func(tx *gorm.DB) error {
		planned, current, err := s.lockAndDerive(tx, plannedID)
		if err != nil {
			return err
		}
		if err := s.ValidateStatusChange(current, seqModel.SessionStatusCancelled); err != nil {
			return err
		}

		now := time.Now()
		day := normalizeDate(date)
		patch := map[string]any{
			"actual_session_status":                    seqModel.SessionStatusCancelled,
			"actual_session_cancellation_reason":       reasonCode,
			"actual_session_is_permanent_cancellation": true,
			"actual_session_can_be_rescheduled":        false,
			"actual_session_cancelled_by":              performedBy,
			"actual_session_cancelled_at":              now,
		}

		row, err := s.applyTransition(tx, planned, day, seqModel.SessionStatusCancelled, patch, func(m *seqModel.ActualSessionModel) {
			m.ActualSessionCancellationReason = &reasonCode
			m.ActualSessionIsPermanentCancel = true
			m.ActualSessionCanBeRescheduled = false
			m.ActualSessionCancelledBy = &performedBy
			m.ActualSessionCancelledAt = &now
		})
		if err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

/* ---------------------------------------------------
   Internal
--------------------------------------------------- */

// lockAndDerive mengunci planned row (FOR UPDATE di postgres) lalu menurunkan
// status sekarang DI DALAM transaksi yang sama dengan penulisan.
func (s *TransitionService) lockAndDerive(tx *gorm.DB, plannedID uuid.UUID) (*seqModel.PlannedSessionModel, seqModel.SessionStatus, error) {
	var planned seqModel.PlannedSessionModel
	if err := forUpdate(tx).
		Where("planned_session_id = ?", plannedID).
		First(&planned).Error; err != nil {
		return nil, "", err
	}

	current, err := currentStatusOf(tx, plannedID)
	if err != nil {
		return nil, "", err
	}
	return &planned, current, nil
}

// applyTransition menulis hasil transisi:
//   - sudah ada baris (planned, date) → guarded UPDATE dengan predikat status
//     non-terminal di WHERE; RowsAffected==0 berarti writer lain menang.
//   - belum ada → INSERT dengan ON CONFLICT DO NOTHING pada unique
//     (planned, date); RowsAffected==0 berarti writer lain menang.
func (s *TransitionService) applyTransition(
	tx *gorm.DB,
	planned *seqModel.PlannedSessionModel,
	day time.Time,
	target seqModel.SessionStatus,
	patch map[string]any,
	fill func(*seqModel.ActualSessionModel),
) (*seqModel.ActualSessionModel, error) {
	nonTerminal := []seqModel.SessionStatus{seqModel.SessionStatusPending, seqModel.SessionStatusHoliday}

	var existing seqModel.ActualSessionModel
	err := tx.
		Where("actual_session_planned_id = ? AND actual_session_date = ?", planned.PlannedSessionID, day).
		First(&existing).Error

	switch {
	case err == nil:
		res := tx.Model(&seqModel.ActualSessionModel{}).
			Where("actual_session_id = ? AND actual_session_status IN ?", existing.ActualSessionID, nonTerminal).
			Updates(patch)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("%w (planned %s)", ErrConcurrentModification, planned.PlannedSessionID)
		}
		var updated seqModel.ActualSessionModel
		if err := tx.Where("actual_session_id = ?", existing.ActualSessionID).First(&updated).Error; err != nil {
			return nil, err
		}
		return &updated, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		row := seqModel.ActualSessionModel{
			ActualSessionSchoolID:  planned.PlannedSessionSchoolID,
			ActualSessionSectionID: planned.PlannedSessionSectionID,
			ActualSessionPlannedID: planned.PlannedSessionID,
			ActualSessionDate:      day,
			ActualSessionStatus:    target,
			ActualSessionSectionSnapshot: datatypes.JSONMap{
				"section_id": planned.PlannedSessionSectionID.String(),
				"school_id":  planned.PlannedSessionSchoolID.String(),
				"day_number": planned.PlannedSessionDayNumber,
			},
		}
		if fill != nil {
			fill(&row)
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("%w (planned %s)", ErrConcurrentModification, planned.PlannedSessionID)
		}
		return &row, nil

	default:
		return nil, err
	}
}
