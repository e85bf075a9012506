package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	seqModel "clasku_backend/internals/features/school/sessions/sequence/model"
)

/* =========================================
   Derivasi status & util bersama
   "Status sekarang" sebuah planned session SELALU diturunkan
   dari baris actual-nya, tidak pernah di-cache di planned row.
========================================= */

// deriveStatus: baris terminal menang; kalau tidak ada, holiday; sisanya pending
func deriveStatus(rows []seqModel.ActualSessionModel) seqModel.SessionStatus {
	status := seqModel.SessionStatusPending
	for i := range rows {
		if rows[i].ActualSessionStatus.IsTerminal() {
			return rows[i].ActualSessionStatus
		}
		if rows[i].ActualSessionStatus == seqModel.SessionStatusHoliday {
			status = seqModel.SessionStatusHoliday
		}
	}
	return status
}

// currentStatusOf membaca semua baris actual sebuah planned session dan menurunkan statusnya
func currentStatusOf(tx *gorm.DB, plannedID uuid.UUID) (seqModel.SessionStatus, error) {
	var rows []seqModel.ActualSessionModel
	if err := tx.
		Where("actual_session_planned_id = ?", plannedID).
		Find(&rows).Error; err != nil {
		return "", err
	}
	return deriveStatus(rows), nil
}

// statusBySection memetakan planned_id → status turunan untuk satu section (2 query + map, tanpa N+1)
func statusBySection(tx *gorm.DB, sectionID uuid.UUID) (map[uuid.UUID]seqModel.SessionStatus, error) {
	var rows []seqModel.ActualSessionModel
	if err := tx.
		Where("actual_session_section_id = ?", sectionID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	byPlanned := make(map[uuid.UUID][]seqModel.ActualSessionModel, len(rows))
	for i := range rows {
		id := rows[i].ActualSessionPlannedID
		byPlanned[id] = append(byPlanned[id], rows[i])
	}

	out := make(map[uuid.UUID]seqModel.SessionStatus, len(byPlanned))
	for id, group := range byPlanned {
		out[id] = deriveStatus(group)
	}
	return out, nil
}

// forUpdate: row lock di Postgres; dialek lain (sqlite test) jalan tanpa lock
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// normalizeDate memotong komponen jam (kolom bertipe date)
func normalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
