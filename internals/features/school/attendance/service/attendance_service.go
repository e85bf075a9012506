package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attModel "clasku_backend/internals/features/school/attendance/model"
	seqModel "clasku_backend/internals/features/school/sessions/sequence/model"
)

/* ---------------------------------------------------
   Attendance (konsumen downstream sequence engine)
   Kontrak: baris attendance hanya dibuat utk sesi conducted;
   setelah tercatat, attendance_marked sesi dinaikkan true
   (sesi conducted baru dianggap benar-benar closed).
--------------------------------------------------- */

var ErrSessionNotConducted = errors.New("attendance hanya bisa dicatat untuk sesi conducted")

type AttendanceService struct{}

func NewAttendanceService() *AttendanceService { return &AttendanceService{} }

type AttendanceEntry struct {
	StudentID uuid.UUID                 `json:"student_id"`
	Status    attModel.AttendanceStatus `json:"status"`
	Note      *string                   `json:"note,omitempty"`
}

// MarkSessionAttendance meng-upsert baris attendance per siswa utk satu actual
// session conducted, lalu set attendance_marked=true, semua dalam satu transaksi.
func (s *AttendanceService) MarkSessionAttendance(db *gorm.DB, actualSessionID, markedBy uuid.UUID, entries []AttendanceEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	for _, e := range entries {
		if !e.Status.Valid() {
			return 0, fmt.Errorf("status attendance %q tidak dikenal", string(e.Status))
		}
	}

	saved := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		var session seqModel.ActualSessionModel
		if err := tx.Where("actual_session_id = ?", actualSessionID).First(&session).Error; err != nil {
			return err
		}
		if session.ActualSessionStatus != seqModel.SessionStatusConducted {
			return fmt.Errorf("%w (status sekarang: %s)", ErrSessionNotConducted, session.ActualSessionStatus)
		}

		rows := make([]attModel.AttendanceModel, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, attModel.AttendanceModel{
				AttendanceSchoolID:        session.ActualSessionSchoolID,
				AttendanceActualSessionID: session.ActualSessionID,
				AttendanceStudentID:       e.StudentID,
				AttendanceStatus:          e.Status,
				AttendanceNote:            e.Note,
				AttendanceMarkedBy:        &markedBy,
			})
		}

		// re-mark aman: konflik (session, student) → update status/note terbaru
		res := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_actual_session_id"},
				{Name: "attendance_student_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_status",
				"attendance_note",
				"attendance_marked_by",
			}),
		}).Create(&rows)
		if res.Error != nil {
			return res.Error
		}
		saved = len(rows)

		// tutup sesi: flag hanya naik utk sesi yang masih conducted
		return tx.Model(&seqModel.ActualSessionModel{}).
			Where("actual_session_id = ? AND actual_session_status = ?", session.ActualSessionID, seqModel.SessionStatusConducted).
			Update("actual_session_attendance_marked", true).Error
	})
	if err != nil {
		return 0, err
	}
	return saved, nil
}

// ListSessionAttendance membaca daftar attendance sebuah sesi (read-only)
func (s *AttendanceService) ListSessionAttendance(db *gorm.DB, actualSessionID uuid.UUID) ([]attModel.AttendanceModel, error) {
	var rows []attModel.AttendanceModel
	if err := db.
		Where("attendance_actual_session_id = ?", actualSessionID).
		Order("attendance_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
