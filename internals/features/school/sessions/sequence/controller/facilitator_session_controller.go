// file: internals/features/school/sessions/sequence/controller/facilitator_session_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "clasku_backend/internals/helpers"
	helperAuth "clasku_backend/internals/helpers/auth"

	seqDTO "clasku_backend/internals/features/school/sessions/sequence/dto"
	seqModel "clasku_backend/internals/features/school/sessions/sequence/model"
	seqService "clasku_backend/internals/features/school/sessions/sequence/service"
)

type FacilitatorSessionController struct {
	DB         *gorm.DB
	Sequence   *seqService.SequenceService
	Transition *seqService.TransitionService
}

func NewFacilitatorSessionController(db *gorm.DB) *FacilitatorSessionController {
	return &FacilitatorSessionController{
		DB:         db,
		Sequence:   seqService.NewSequenceService(),
		Transition: seqService.NewTransitionService(),
	}
}

// mapSequenceError menerjemahkan error engine ke response HTTP yang actionable
func mapSequenceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, seqService.ErrInvalidTransition):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, seqService.ErrInvalidCancellationReason):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, seqService.ErrConcurrentModification):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, seqService.ErrDataIntegrity):
		// diagnostik khusus admin; facilitator tidak perlu lihat detail urutan
		return helper.JsonError(c, fiber.StatusInternalServerError, "Urutan sesi section tidak konsisten. Hubungi admin untuk menjalankan repair.")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}
}

/* ================= Handlers (FACILITATOR) ================= */

// GET /api/u/sections/:id/next-session
// "Sesi hari ini": day_number terkecil yang belum terminal.
func (ctrl *FacilitatorSessionController) GetNextPendingSession(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID section tidak valid")
	}

	next, err := ctrl.Sequence.GetNextPendingSession(ctrl.DB, sectionID)
	if err != nil {
		return mapSequenceError(c, err)
	}
	if next == nil {
		return helper.JsonOK(c, "Kurikulum section sudah selesai (150 hari terminal)", nil)
	}

	status, err := ctrl.currentStatus(next.PlannedSessionID)
	if err != nil {
		return mapSequenceError(c, err)
	}
	return helper.JsonOK(c, "OK", seqDTO.NewPlannedSessionResponse(next, status))
}

// GET /api/u/sections/:id/progress
func (ctrl *FacilitatorSessionController) GetProgress(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID section tidak valid")
	}

	progress, err := ctrl.Sequence.CalculateProgress(ctrl.DB, sectionID)
	if err != nil {
		return mapSequenceError(c, err)
	}

	// Jendela "akan datang" opsional utk dashboard (?upcoming=7)
	limit := c.QueryInt("upcoming", 0)
	if limit <= 0 {
		return helper.JsonOK(c, "OK", progress)
	}

	upcoming, err := ctrl.Sequence.UpcomingPendingSessions(ctrl.DB, sectionID, limit)
	if err != nil {
		return mapSequenceError(c, err)
	}
	statuses, err := ctrl.Sequence.StatusBySection(ctrl.DB, sectionID)
	if err != nil {
		return mapSequenceError(c, err)
	}

	list := make([]*seqDTO.PlannedSessionResponse, 0, len(upcoming))
	for i := range upcoming {
		st, ok := statuses[upcoming[i].PlannedSessionID]
		if !ok {
			st = seqModel.SessionStatusPending
		}
		list = append(list, seqDTO.NewPlannedSessionResponse(&upcoming[i], st))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"progress": progress,
		"upcoming": list,
	})
}

// POST /api/u/planned-sessions/:id/conduct
func (ctrl *FacilitatorSessionController) ConductSession(c *fiber.Ctx) error {
	plannedID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	facilitatorID, err := helperAuth.GetFacilitatorIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Facilitator ID tidak ditemukan dalam token")
	}

	// body opsional (tanpa body = conduct hari ini)
	var req seqDTO.ConductSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.Transition.ConductSession(ctrl.DB, plannedID, facilitatorID, seqDTO.ParseDate(req.SessionDate))
	if err != nil {
		return mapSequenceError(c, err)
	}
	// attendance_marked masih false; subsistem attendance yang menutup sesi
	return helper.JsonOK(c, "Sesi berhasil ditandai conducted", seqDTO.NewActualSessionResponse(row))
}

// POST /api/u/planned-sessions/:id/holiday
func (ctrl *FacilitatorSessionController) MarkHoliday(c *fiber.Ctx) error {
	plannedID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var req seqDTO.MarkHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.Transition.MarkHoliday(ctrl.DB, plannedID, seqDTO.ParseDate(req.SessionDate), req.Reason)
	if err != nil {
		return mapSequenceError(c, err)
	}
	return helper.JsonOK(c, "Sesi ditandai holiday (masih bisa di-conduct nanti)", seqDTO.NewActualSessionResponse(row))
}

// POST /api/u/planned-sessions/:id/cancel
func (ctrl *FacilitatorSessionController) CancelSession(c *fiber.Ctx) error {
	plannedID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID tidak ditemukan dalam token")
	}

	var req seqDTO.CancelSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.Transition.CancelSession(
		ctrl.DB,
		plannedID,
		seqDTO.ParseDate(req.SessionDate),
		seqModel.CancellationReason(req.ReasonCode),
		userID,
	)
	if err != nil {
		return mapSequenceError(c, err)
	}
	return helper.JsonOK(c, "Sesi dibatalkan permanen", seqDTO.NewActualSessionResponse(row))
}

/* ================= Internal ================= */

func (ctrl *FacilitatorSessionController) currentStatus(plannedID uuid.UUID) (seqModel.SessionStatus, error) {
	var rows []seqModel.ActualSessionModel
	if err := ctrl.DB.
		Where("actual_session_planned_id = ?", plannedID).
		Find(&rows).Error; err != nil {
		return "", err
	}
	status := seqModel.SessionStatusPending
	for i := range rows {
		if rows[i].ActualSessionStatus.IsTerminal() {
			return rows[i].ActualSessionStatus, nil
		}
		if rows[i].ActualSessionStatus == seqModel.SessionStatusHoliday {
			status = seqModel.SessionStatusHoliday
		}
	}
	return status, nil
}
