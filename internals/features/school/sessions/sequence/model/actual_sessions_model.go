package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusConducted SessionStatus = "conducted"
	SessionStatusHoliday   SessionStatus = "holiday"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// IsTerminal: conducted & cancelled tidak boleh ditransisikan lagi
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusConducted || s == SessionStatusCancelled
}

// allowedTransitions: tabel transisi status (from → to yang diizinkan)
var allowedTransitions = map[SessionStatus][]SessionStatus{
	SessionStatusPending: {SessionStatusConducted, SessionStatusHoliday, SessionStatusCancelled},
	SessionStatusHoliday: {SessionStatusConducted, SessionStatusCancelled},
	// conducted & cancelled terminal, tanpa transisi keluar
}

// CanTransition mengecek apakah perubahan from → to diizinkan state machine
func CanTransition(from, to SessionStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type CancellationReason string

const (
	CancellationReasonSchoolShutdown   CancellationReason = "school_shutdown"
	CancellationReasonSyllabusChange   CancellationReason = "syllabus_change"
	CancellationReasonExamPeriod       CancellationReason = "exam_period"
	CancellationReasonDuplicateSession CancellationReason = "duplicate_session"
	CancellationReasonEmergency        CancellationReason = "emergency"
)

// Valid: alasan pembatalan wajib dari enum tertutup
func (r CancellationReason) Valid() bool {
	switch r {
	case CancellationReasonSchoolShutdown,
		CancellationReasonSyllabusChange,
		CancellationReasonExamPeriod,
		CancellationReasonDuplicateSession,
		CancellationReasonEmergency:
		return true
	}
	return false
}

/* =========================================
   Model: actual_sessions
   Eksekusi nyata sebuah planned session pada tanggal tertentu.
   Maks. satu baris per (planned_session, date); maks. satu baris
   terminal per planned session (dijaga oleh transition engine).
========================================= */

type ActualSessionModel struct {
	// PK
	ActualSessionID uuid.UUID `gorm:"type:uuid;primaryKey;column:actual_session_id" json:"actual_session_id"`

	// Tenant & relasi utama
	ActualSessionSchoolID  uuid.UUID `gorm:"type:uuid;not null;index;column:actual_session_school_id" json:"actual_session_school_id"`
	ActualSessionSectionID uuid.UUID `gorm:"type:uuid;not null;index;column:actual_session_section_id" json:"actual_session_section_id"`
	ActualSessionPlannedID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_actual_sessions_planned_date;column:actual_session_planned_id" json:"actual_session_planned_id"`

	// Occurrence
	ActualSessionDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_actual_sessions_planned_date;column:actual_session_date" json:"actual_session_date"`

	// Lifecycle
	ActualSessionStatus SessionStatus `gorm:"type:text;not null;column:actual_session_status" json:"actual_session_status"`

	// Conduct
	ActualSessionFacilitatorID    *uuid.UUID `gorm:"type:uuid;column:actual_session_facilitator_id" json:"actual_session_facilitator_id,omitempty"`
	ActualSessionConductedAt      *time.Time `gorm:"column:actual_session_conducted_at" json:"actual_session_conducted_at,omitempty"`
	ActualSessionAttendanceMarked bool       `gorm:"not null;default:false;column:actual_session_attendance_marked" json:"actual_session_attendance_marked"`

	// Holiday / cancel
	ActualSessionHolidayReason          *string             `gorm:"type:text;column:actual_session_holiday_reason" json:"actual_session_holiday_reason,omitempty"`
	ActualSessionCancellationReason     *CancellationReason `gorm:"type:text;column:actual_session_cancellation_reason" json:"actual_session_cancellation_reason,omitempty"`
	ActualSessionIsPermanentCancel      bool                `gorm:"not null;default:false;column:actual_session_is_permanent_cancellation" json:"actual_session_is_permanent_cancellation"`
	ActualSessionCanBeRescheduled       bool                `gorm:"not null;default:true;column:actual_session_can_be_rescheduled" json:"actual_session_can_be_rescheduled"`
	ActualSessionCancelledBy            *uuid.UUID          `gorm:"type:uuid;column:actual_session_cancelled_by" json:"actual_session_cancelled_by,omitempty"`
	ActualSessionCancelledAt            *time.Time          `gorm:"column:actual_session_cancelled_at" json:"actual_session_cancelled_at,omitempty"`

	/* ==========================
	   SNAPSHOT (raw JSONB)
	========================== */
	ActualSessionSectionSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:actual_session_section_snapshot" json:"actual_session_section_snapshot,omitempty"`

	// Audit
	ActualSessionCreatedAt time.Time      `gorm:"autoCreateTime;column:actual_session_created_at" json:"actual_session_created_at"`
	ActualSessionUpdatedAt time.Time      `gorm:"autoUpdateTime;column:actual_session_updated_at" json:"actual_session_updated_at"`
	ActualSessionDeletedAt gorm.DeletedAt `gorm:"column:actual_session_deleted_at;index" json:"actual_session_deleted_at,omitempty"`
}

func (ActualSessionModel) TableName() string { return "actual_sessions" }

func (m *ActualSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ActualSessionID == uuid.Nil {
		m.ActualSessionID = uuid.New()
	}
	return nil
}
