// file: internals/features/school/sessions/sequence/dto/sessions_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "clasku_backend/internals/features/school/sessions/sequence/model"
)

/* =========================================================
   ==================  R E Q U E S T S  ==================
========================================================= */

/* ----------------- CONDUCT ----------------- */

type ConductSessionRequest struct {
	// Tanggal pelaksanaan (YYYY-MM-DD); kosong = hari ini.
	// Validasi "harus hari ini" adalah kebijakan workflow facilitator, bukan engine.
	SessionDate string `json:"session_date" form:"session_date" validate:"omitempty,datetime=2006-01-02"`
}

/* ----------------- HOLIDAY ----------------- */

type MarkHolidayRequest struct {
	SessionDate string `json:"session_date" form:"session_date" validate:"omitempty,datetime=2006-01-02"`
	// Alasan bebas (bukan enum)
	Reason string `json:"reason" form:"reason" validate:"required,min=1,max=255"`
}

/* ----------------- CANCEL ----------------- */

type CancelSessionRequest struct {
	SessionDate string `json:"session_date" form:"session_date" validate:"omitempty,datetime=2006-01-02"`
	// Wajib dari enum tertutup: school_shutdown | syllabus_change | exam_period | duplicate_session | emergency
	ReasonCode string `json:"reason_code" form:"reason_code" validate:"required"`
}

// ParseDate mengubah "YYYY-MM-DD" → time.Time (zero kalau kosong; engine pakai hari ini)
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

/* =========================================================
   ==================  R E S P O N S E S  ==================
========================================================= */

type PlannedSessionResponse struct {
	PlannedSessionID               uuid.UUID `json:"planned_session_id"`
	PlannedSessionSectionID        uuid.UUID `json:"planned_session_section_id"`
	PlannedSessionDayNumber        int       `json:"planned_session_day_number"`
	PlannedSessionSequencePosition int       `json:"planned_session_sequence_position"`
	PlannedSessionIsRequired       bool      `json:"planned_session_is_required"`
	PlannedSessionIsActive         bool      `json:"planned_session_is_active"`

	// Status turunan (dihitung dari actual sessions, bukan kolom)
	CurrentStatus m.SessionStatus `json:"current_status"`
}

func NewPlannedSessionResponse(p *m.PlannedSessionModel, status m.SessionStatus) *PlannedSessionResponse {
	if p == nil {
		return nil
	}
	return &PlannedSessionResponse{
		PlannedSessionID:               p.PlannedSessionID,
		PlannedSessionSectionID:        p.PlannedSessionSectionID,
		PlannedSessionDayNumber:        p.PlannedSessionDayNumber,
		PlannedSessionSequencePosition: p.PlannedSessionSequencePosition,
		PlannedSessionIsRequired:       p.PlannedSessionIsRequired,
		PlannedSessionIsActive:         p.PlannedSessionIsActive,
		CurrentStatus:                  status,
	}
}

type ActualSessionResponse struct {
	ActualSessionID               uuid.UUID       `json:"actual_session_id"`
	ActualSessionPlannedID        uuid.UUID       `json:"actual_session_planned_id"`
	ActualSessionSectionID        uuid.UUID       `json:"actual_session_section_id"`
	ActualSessionDate             string          `json:"actual_session_date"`
	ActualSessionStatus           m.SessionStatus `json:"actual_session_status"`
	ActualSessionFacilitatorID    *uuid.UUID      `json:"actual_session_facilitator_id,omitempty"`
	ActualSessionConductedAt      *time.Time      `json:"actual_session_conducted_at,omitempty"`
	ActualSessionAttendanceMarked bool            `json:"actual_session_attendance_marked"`

	ActualSessionHolidayReason      *string               `json:"actual_session_holiday_reason,omitempty"`
	ActualSessionCancellationReason *m.CancellationReason `json:"actual_session_cancellation_reason,omitempty"`
	ActualSessionIsPermanentCancel  bool                  `json:"actual_session_is_permanent_cancellation"`
	ActualSessionCanBeRescheduled   bool                  `json:"actual_session_can_be_rescheduled"`
}

func NewActualSessionResponse(a *m.ActualSessionModel) *ActualSessionResponse {
	if a == nil {
		return nil
	}
	return &ActualSessionResponse{
		ActualSessionID:                 a.ActualSessionID,
		ActualSessionPlannedID:          a.ActualSessionPlannedID,
		ActualSessionSectionID:          a.ActualSessionSectionID,
		ActualSessionDate:               a.ActualSessionDate.Format("2006-01-02"),
		ActualSessionStatus:             a.ActualSessionStatus,
		ActualSessionFacilitatorID:      a.ActualSessionFacilitatorID,
		ActualSessionConductedAt:        a.ActualSessionConductedAt,
		ActualSessionAttendanceMarked:   a.ActualSessionAttendanceMarked,
		ActualSessionHolidayReason:      a.ActualSessionHolidayReason,
		ActualSessionCancellationReason: a.ActualSessionCancellationReason,
		ActualSessionIsPermanentCancel:  a.ActualSessionIsPermanentCancel,
		ActualSessionCanBeRescheduled:   a.ActualSessionCanBeRescheduled,
	}
}
