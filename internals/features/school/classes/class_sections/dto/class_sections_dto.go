// file: internals/features/school/classes/class_sections/dto/class_sections_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "clasku_backend/internals/features/school/classes/class_sections/model"
)

/* ----------------- CREATE REQUEST ----------------- */

type ClassSectionCreateRequest struct {
	// Wajib
	ClassSectionSlug string `json:"class_section_slug" form:"class_section_slug" validate:"required,min=1,max=160"`
	ClassSectionName string `json:"class_section_name" form:"class_section_name" validate:"required,min=1,max=100"`

	// Opsional
	ClassSectionCode     *string `json:"class_section_code" form:"class_section_code" validate:"omitempty,max=40"`
	ClassSectionCapacity *int    `json:"class_section_capacity" form:"class_section_capacity" validate:"omitempty,min=0"`
}

func (r *ClassSectionCreateRequest) ToModel(schoolID uuid.UUID) *m.ClassSectionModel {
	return &m.ClassSectionModel{
		ClassSectionSchoolID: schoolID,
		ClassSectionSlug:     strings.ToLower(strings.TrimSpace(r.ClassSectionSlug)),
		ClassSectionName:     strings.TrimSpace(r.ClassSectionName),
		ClassSectionCode:     r.ClassSectionCode,
		ClassSectionCapacity: r.ClassSectionCapacity,
		ClassSectionIsActive: true,
	}
}

/* ----------------- RESPONSE ----------------- */

type ClassSectionResponse struct {
	ClassSectionID       uuid.UUID `json:"class_section_id"`
	ClassSectionSchoolID uuid.UUID `json:"class_section_school_id"`
	ClassSectionSlug     string    `json:"class_section_slug"`
	ClassSectionName     string    `json:"class_section_name"`
	ClassSectionCode     *string   `json:"class_section_code,omitempty"`
	ClassSectionCapacity *int      `json:"class_section_capacity,omitempty"`
	ClassSectionIsActive bool      `json:"class_section_is_active"`
	ClassSectionCreated  time.Time `json:"class_section_created_at"`
}

func NewClassSectionResponse(s *m.ClassSectionModel) *ClassSectionResponse {
	if s == nil {
		return nil
	}
	return &ClassSectionResponse{
		ClassSectionID:       s.ClassSectionID,
		ClassSectionSchoolID: s.ClassSectionSchoolID,
		ClassSectionSlug:     s.ClassSectionSlug,
		ClassSectionName:     s.ClassSectionName,
		ClassSectionCode:     s.ClassSectionCode,
		ClassSectionCapacity: s.ClassSectionCapacity,
		ClassSectionIsActive: s.ClassSectionIsActive,
		ClassSectionCreated:  s.ClassSectionCreatedAt,
	}
}
