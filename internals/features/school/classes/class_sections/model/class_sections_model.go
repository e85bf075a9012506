package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: class_sections
   Pemilik eksklusif set planned session 1..150.
========================================= */

type ClassSectionModel struct {
	// PK
	ClassSectionID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_section_id" json:"class_section_id"`

	// Tenant
	ClassSectionSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_sections_school_slug;column:class_section_school_id" json:"class_section_school_id"`

	// Identitas
	ClassSectionSlug string  `gorm:"type:varchar(160);not null;uniqueIndex:uq_class_sections_school_slug;column:class_section_slug" json:"class_section_slug"`
	ClassSectionName string  `gorm:"type:varchar(100);not null;column:class_section_name" json:"class_section_name"`
	ClassSectionCode *string `gorm:"type:varchar(40);column:class_section_code" json:"class_section_code,omitempty"`

	// Kuota & status
	ClassSectionCapacity *int `gorm:"column:class_section_capacity" json:"class_section_capacity,omitempty"`
	ClassSectionIsActive bool `gorm:"not null;default:true;column:class_section_is_active" json:"class_section_is_active"`

	// Audit
	ClassSectionCreatedAt time.Time      `gorm:"autoCreateTime;column:class_section_created_at" json:"class_section_created_at"`
	ClassSectionUpdatedAt time.Time      `gorm:"autoUpdateTime;column:class_section_updated_at" json:"class_section_updated_at"`
	ClassSectionDeletedAt gorm.DeletedAt `gorm:"column:class_section_deleted_at;index" json:"class_section_deleted_at,omitempty"`
}

func (ClassSectionModel) TableName() string { return "class_sections" }

func (m *ClassSectionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassSectionID == uuid.Nil {
		m.ClassSectionID = uuid.New()
	}
	return nil
}
