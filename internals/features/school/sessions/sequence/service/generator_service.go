package service

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	seqModel "clasku_backend/internals/features/school/sessions/sequence/model"
)

/* ---------------------------------------------------
   Bulk Generator / Integrity Repairer
   Satu-satunya komponen yang boleh mengubah BENTUK set
   planned session (bukan statusnya). Tidak pernah delete.
--------------------------------------------------- */

type GeneratorService struct{}

func NewGeneratorService() *GeneratorService { return &GeneratorService{} }

type GenerateResult struct {
	SectionID      uuid.UUID `json:"section_id"`
	Created        int       `json:"created"`
	AlreadyPresent int       `json:"already_present"`
}

type IntegrityReport struct {
	SectionID     uuid.UUID `json:"section_id"`
	TotalRows     int       `json:"total_rows"`
	MissingDays   []int     `json:"missing_days"`
	DuplicateDays []int     `json:"duplicate_days"`
	Complete      bool      `json:"complete"`
}

type RepairResult struct {
	SectionID   uuid.UUID `json:"section_id"`
	CreatedDays []int     `json:"created_days"`
}

// GenerateSessionsForClass membuat set lengkap 1..150 untuk sebuah section,
// atomik dalam SATU transaksi (semua-atau-tidak-sama-sekali). Idempotent:
// hari yang sudah ada dilewati (ON CONFLICT DO NOTHING), tidak pernah
// menghapus/mengubah baris lama beserta actual/attendance turunannya.
func (s *GeneratorService) GenerateSessionsForClass(db *gorm.DB, schoolID, sectionID uuid.UUID) (*GenerateResult, error) {
	res := &GenerateResult{SectionID: sectionID}

	err := db.Transaction(func(tx *gorm.DB) error {
		created, err := s.insertMissingDays(tx, schoolID, sectionID)
		if err != nil {
			return err
		}
		res.Created = len(created)
		res.AlreadyPresent = seqModel.TotalCurriculumDays - res.Created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ValidateSequenceIntegrity melaporkan hari hilang (gap) & day_number duplikat.
// Read-only; dipakai tooling admin dan sebagai precondition calculator.
func (s *GeneratorService) ValidateSequenceIntegrity(db *gorm.DB, sectionID uuid.UUID) (*IntegrityReport, error) {
	var days []int
	if err := db.Model(&seqModel.PlannedSessionModel{}).
		Where("planned_session_section_id = ?", sectionID).
		Order("planned_session_day_number ASC").
		Pluck("planned_session_day_number", &days).Error; err != nil {
		return nil, err
	}

	report := &IntegrityReport{
		SectionID:     sectionID,
		TotalRows:     len(days),
		MissingDays:   []int{},
		DuplicateDays: []int{},
	}

	seen := make(map[int]int, len(days))
	for _, d := range days {
		seen[d]++
	}
	for day := 1; day <= seqModel.TotalCurriculumDays; day++ {
		switch {
		case seen[day] == 0:
			report.MissingDays = append(report.MissingDays, day)
		case seen[day] > 1:
			report.DuplicateDays = append(report.DuplicateDays, day)
		}
	}
	report.Complete = len(report.MissingDays) == 0 && len(report.DuplicateDays) == 0
	return report, nil
}

// RepairSessionSequence mengisi hari yang hilang dari range 1..150 tanpa
// menyentuh baris yang sudah ada. Idempotent & aman dipanggil berulang;
// insert dalam satu transaksi supaya reader hanya melihat state sebelum
// atau sesudah repair, tidak pernah state transien yang lebih buruk.
func (s *GeneratorService) RepairSessionSequence(db *gorm.DB, schoolID, sectionID uuid.UUID) (*RepairResult, error) {
	res := &RepairResult{SectionID: sectionID, CreatedDays: []int{}}

	err := db.Transaction(func(tx *gorm.DB) error {
		created, err := s.insertMissingDays(tx, schoolID, sectionID)
		if err != nil {
			return err
		}
		res.CreatedDays = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// insertMissingDays: inti generate & repair: hitung hari yang belum ada
// lalu insert batch dengan ON CONFLICT DO NOTHING pada unique (section, day).
func (s *GeneratorService) insertMissingDays(tx *gorm.DB, schoolID, sectionID uuid.UUID) ([]int, error) {
	var existing []int
	if err := tx.Model(&seqModel.PlannedSessionModel{}).
		Where("planned_session_section_id = ?", sectionID).
		Pluck("planned_session_day_number", &existing).Error; err != nil {
		return nil, err
	}

	have := make(map[int]struct{}, len(existing))
	for _, d := range existing {
		have[d] = struct{}{}
	}

	rows := make([]seqModel.PlannedSessionModel, 0, seqModel.TotalCurriculumDays-len(have))
	createdDays := make([]int, 0, cap(rows))
	for day := 1; day <= seqModel.TotalCurriculumDays; day++ {
		if _, ok := have[day]; ok {
			continue
		}
		rows = append(rows, seqModel.PlannedSessionModel{
			PlannedSessionSchoolID:         schoolID,
			PlannedSessionSectionID:        sectionID,
			PlannedSessionDayNumber:        day,
			PlannedSessionSequencePosition: day,
			PlannedSessionIsRequired:       true,
			PlannedSessionIsActive:         true,
		})
		createdDays = append(createdDays, day)
	}
	if len(rows) == 0 {
		return []int{}, nil
	}

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return nil, err
	}

	sort.Ints(createdDays)
	return createdDays, nil
}
