// file: internals/features/school/sessions/sequence/controller/admin_session_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "clasku_backend/internals/helpers"
	helperAuth "clasku_backend/internals/helpers/auth"

	seqDTO "clasku_backend/internals/features/school/sessions/sequence/dto"
	seqModel "clasku_backend/internals/features/school/sessions/sequence/model"
	seqService "clasku_backend/internals/features/school/sessions/sequence/service"
)

type AdminSessionController struct {
	DB        *gorm.DB
	Sequence  *seqService.SequenceService
	Generator *seqService.GeneratorService
}

func NewAdminSessionController(db *gorm.DB) *AdminSessionController {
	return &AdminSessionController{
		DB:        db,
		Sequence:  seqService.NewSequenceService(),
		Generator: seqService.NewGeneratorService(),
	}
}

/* ================= Handlers (ADMIN) ================= */

// POST /api/a/sections/:id/sessions/generate
// Membuat set lengkap 1..150 (idempotent, satu transaksi).
func (ctrl *AdminSessionController) GenerateSessions(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan dalam token")
	}

	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID section tidak valid")
	}

	res, err := ctrl.Generator.GenerateSessionsForClass(ctrl.DB, schoolID, sectionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate sesi")
	}
	return helper.JsonCreated(c, "Generate selesai", res)
}

// GET /api/a/sections/:id/sessions/integrity
// Laporan gap/duplikat day_number (read-only, diagnostik admin).
func (ctrl *AdminSessionController) GetSequenceIntegrity(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID section tidak valid")
	}

	report, err := ctrl.Generator.ValidateSequenceIntegrity(ctrl.DB, sectionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa urutan sesi")
	}
	return helper.JsonOK(c, "OK", report)
}

// POST /api/a/sections/:id/sessions/repair
// Mengisi hari yang hilang tanpa menyentuh data lama (idempotent).
func (ctrl *AdminSessionController) RepairSequence(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan dalam token")
	}

	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID section tidak valid")
	}

	res, err := ctrl.Generator.RepairSessionSequence(ctrl.DB, schoolID, sectionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal repair urutan sesi")
	}
	return helper.JsonOK(c, "Repair selesai", res)
}

// GET /api/a/sections/:id/sessions
// Listing planned sessions + status turunan (paginated by day_number).
func (ctrl *AdminSessionController) ListSessions(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID section tidak valid")
	}

	paging := helper.ResolvePaging(c, 30, 150)

	var total int64
	if err := ctrl.DB.Model(&seqModel.PlannedSessionModel{}).
		Where("planned_session_section_id = ?", sectionID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sesi")
	}

	var planned []seqModel.PlannedSessionModel
	if err := ctrl.DB.
		Where("planned_session_section_id = ?", sectionID).
		Order("planned_session_day_number ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&planned).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sesi")
	}

	statuses, err := ctrl.Sequence.StatusBySection(ctrl.DB, sectionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menurunkan status sesi")
	}

	list := make([]*seqDTO.PlannedSessionResponse, 0, len(planned))
	for i := range planned {
		st, ok := statuses[planned[i].PlannedSessionID]
		if !ok {
			st = seqModel.SessionStatusPending
		}
		list = append(list, seqDTO.NewPlannedSessionResponse(&planned[i], st))
	}

	return helper.JsonList(c, "OK", list, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
