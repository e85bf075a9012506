package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================================
   Model: class_calendars
   Satu slot kalender bisa dipakai bersama beberapa section
   (grouped sessions). Set planned session tiap section TIDAK
   tersentuh oleh penggabungan slot.
========================================= */

type ClassCalendarModel struct {
	// PK
	ClassCalendarID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_calendar_id" json:"class_calendar_id"`

	// Tenant & slot
	ClassCalendarSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_calendars_school_date_slot;column:class_calendar_school_id" json:"class_calendar_school_id"`
	ClassCalendarDate     time.Time `gorm:"type:date;not null;uniqueIndex:uq_class_calendars_school_date_slot;column:class_calendar_date" json:"class_calendar_date"`
	ClassCalendarSlot     string    `gorm:"type:varchar(40);not null;uniqueIndex:uq_class_calendars_school_date_slot;column:class_calendar_slot" json:"class_calendar_slot"`

	// Section peserta slot (set, tanpa duplikat)
	ClassCalendarSectionIDs pq.StringArray `gorm:"type:text[];column:class_calendar_section_ids" json:"class_calendar_section_ids"`

	// Audit
	ClassCalendarCreatedAt time.Time      `gorm:"autoCreateTime;column:class_calendar_created_at" json:"class_calendar_created_at"`
	ClassCalendarUpdatedAt time.Time      `gorm:"autoUpdateTime;column:class_calendar_updated_at" json:"class_calendar_updated_at"`
	ClassCalendarDeletedAt gorm.DeletedAt `gorm:"column:class_calendar_deleted_at;index" json:"class_calendar_deleted_at,omitempty"`
}

func (ClassCalendarModel) TableName() string { return "class_calendars" }

func (m *ClassCalendarModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassCalendarID == uuid.Nil {
		m.ClassCalendarID = uuid.New()
	}
	return nil
}
