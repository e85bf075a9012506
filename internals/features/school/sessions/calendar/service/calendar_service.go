package service

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	calModel "clasku_backend/internals/features/school/sessions/calendar/model"
)

/* ---------------------------------------------------
   Class Calendar (grouped sessions)
   Merge slot = set-union section peserta. Tidak pernah
   menghapus/mengganti planned session milik section manapun.
--------------------------------------------------- */

type CalendarService struct{}

func NewCalendarService() *CalendarService { return &CalendarService{} }

// MergeSectionIDs: union dua himpunan section id (dedup + sorted, deterministik)
func MergeSectionIDs(existing pq.StringArray, incoming []uuid.UUID) pq.StringArray {
	set := make(map[string]struct{}, len(existing)+len(incoming))
	for _, s := range existing {
		if s != "" {
			set[s] = struct{}{}
		}
	}
	for _, id := range incoming {
		if id != uuid.Nil {
			set[id.String()] = struct{}{}
		}
	}

	out := make(pq.StringArray, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// AssignSectionsToSlot meng-upsert slot (school, date, slot) dan men-set-union
// section pesertanya dalam satu transaksi.
func (s *CalendarService) AssignSectionsToSlot(db *gorm.DB, schoolID uuid.UUID, date time.Time, slot string, sectionIDs []uuid.UUID) (*calModel.ClassCalendarModel, error) {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var out *calModel.ClassCalendarModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var row calModel.ClassCalendarModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("class_calendar_school_id = ? AND class_calendar_date = ? AND class_calendar_slot = ?", schoolID, day, slot).
			First(&row).Error

		switch {
		case err == nil:
			row.ClassCalendarSectionIDs = MergeSectionIDs(row.ClassCalendarSectionIDs, sectionIDs)
			if err := tx.Save(&row).Error; err != nil {
				return err
			}

		case errors.Is(err, gorm.ErrRecordNotFound):
			row = calModel.ClassCalendarModel{
				ClassCalendarSchoolID:   schoolID,
				ClassCalendarDate:       day,
				ClassCalendarSlot:       slot,
				ClassCalendarSectionIDs: MergeSectionIDs(nil, sectionIDs),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}

		default:
			return err
		}

		out = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
