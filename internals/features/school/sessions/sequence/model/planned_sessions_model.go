package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TotalCurriculumDays: setiap section wajib punya day_number lengkap 1..150
const TotalCurriculumDays = 150

/* =========================================
   Model: planned_sessions
   Satu baris per (section, day_number 1..150).
========================================= */

type PlannedSessionModel struct {
	// PK
	PlannedSessionID uuid.UUID `gorm:"type:uuid;primaryKey;column:planned_session_id" json:"planned_session_id"`

	// Tenant & relasi utama
	PlannedSessionSchoolID  uuid.UUID `gorm:"type:uuid;not null;index;column:planned_session_school_id" json:"planned_session_school_id"`
	PlannedSessionSectionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_planned_sessions_section_day;column:planned_session_section_id" json:"planned_session_section_id"`

	// Urutan kurikulum (1..150, unik per section)
	PlannedSessionDayNumber        int `gorm:"not null;uniqueIndex:uq_planned_sessions_section_day;column:planned_session_day_number" json:"planned_session_day_number"`
	PlannedSessionSequencePosition int `gorm:"not null;column:planned_session_sequence_position" json:"planned_session_sequence_position"`

	// Flags
	PlannedSessionIsRequired bool `gorm:"not null;default:true;column:planned_session_is_required" json:"planned_session_is_required"`
	PlannedSessionIsActive   bool `gorm:"not null;default:true;column:planned_session_is_active" json:"planned_session_is_active"`

	// Audit
	PlannedSessionCreatedAt time.Time      `gorm:"autoCreateTime;column:planned_session_created_at" json:"planned_session_created_at"`
	PlannedSessionUpdatedAt time.Time      `gorm:"autoUpdateTime;column:planned_session_updated_at" json:"planned_session_updated_at"`
	PlannedSessionDeletedAt gorm.DeletedAt `gorm:"column:planned_session_deleted_at;index" json:"planned_session_deleted_at,omitempty"`
}

func (PlannedSessionModel) TableName() string { return "planned_sessions" }

func (m *PlannedSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.PlannedSessionID == uuid.Nil {
		m.PlannedSessionID = uuid.New()
	}
	return nil
}
