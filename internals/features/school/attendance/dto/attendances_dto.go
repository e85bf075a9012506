// file: internals/features/school/attendance/dto/attendances_dto.go
package dto

import (
	"github.com/google/uuid"

	m "clasku_backend/internals/features/school/attendance/model"
)

/* ----------------- MARK REQUEST ----------------- */

type AttendanceEntryRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent late excused"`
	Note      *string   `json:"note,omitempty" validate:"omitempty,max=255"`
}

type MarkAttendanceRequest struct {
	Entries []AttendanceEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

/* ----------------- RESPONSE ----------------- */

type AttendanceResponse struct {
	AttendanceID              uuid.UUID          `json:"attendance_id"`
	AttendanceActualSessionID uuid.UUID          `json:"attendance_actual_session_id"`
	AttendanceStudentID       uuid.UUID          `json:"attendance_student_id"`
	AttendanceStatus          m.AttendanceStatus `json:"attendance_status"`
	AttendanceNote            *string            `json:"attendance_note,omitempty"`
}

func NewAttendanceResponse(a *m.AttendanceModel) *AttendanceResponse {
	if a == nil {
		return nil
	}
	return &AttendanceResponse{
		AttendanceID:              a.AttendanceID,
		AttendanceActualSessionID: a.AttendanceActualSessionID,
		AttendanceStudentID:       a.AttendanceStudentID,
		AttendanceStatus:          a.AttendanceStatus,
		AttendanceNote:            a.AttendanceNote,
	}
}
