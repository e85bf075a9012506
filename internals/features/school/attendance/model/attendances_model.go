package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusExcused:
		return true
	}
	return false
}

/* =========================================
   Model: attendances
   Satu baris per (actual_session, student); hanya dibuat
   untuk sesi berstatus conducted.
========================================= */

type AttendanceModel struct {
	// PK
	AttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`

	// Tenant & relasi utama
	AttendanceSchoolID        uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_school_id" json:"attendance_school_id"`
	AttendanceActualSessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendances_session_student;column:attendance_actual_session_id" json:"attendance_actual_session_id"`
	AttendanceStudentID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendances_session_student;column:attendance_student_id" json:"attendance_student_id"`

	// Isi
	AttendanceStatus   AttendanceStatus `gorm:"type:text;not null;column:attendance_status" json:"attendance_status"`
	AttendanceNote     *string          `gorm:"type:text;column:attendance_note" json:"attendance_note,omitempty"`
	AttendanceMarkedBy *uuid.UUID       `gorm:"type:uuid;column:attendance_marked_by" json:"attendance_marked_by,omitempty"`

	// Audit
	AttendanceCreatedAt time.Time      `gorm:"autoCreateTime;column:attendance_created_at" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"autoUpdateTime;column:attendance_updated_at" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
