// file: internals/features/school/sessions/calendar/controller/calendar_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "clasku_backend/internals/helpers"
	helperAuth "clasku_backend/internals/helpers/auth"

	calService "clasku_backend/internals/features/school/sessions/calendar/service"
)

type CalendarController struct {
	DB      *gorm.DB
	Service *calService.CalendarService
}

func NewCalendarController(db *gorm.DB) *CalendarController {
	return &CalendarController{DB: db, Service: calService.NewCalendarService()}
}

type assignSlotRequest struct {
	Date       string      `json:"date" validate:"required,datetime=2006-01-02"`
	Slot       string      `json:"slot" validate:"required,min=1,max=40"`
	SectionIDs []uuid.UUID `json:"section_ids" validate:"required,min=1"`
}

/* ================= Handlers (ADMIN) ================= */

// POST /api/a/calendar/assign
// Set-union section peserta pada slot kalender bersama.
func (ctrl *CalendarController) AssignSectionsToSlot(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan dalam token")
	}

	var req assignSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}

	row, err := ctrl.Service.AssignSectionsToSlot(ctrl.DB, schoolID, date, req.Slot, req.SectionIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan slot kalender")
	}
	return helper.JsonOK(c, "Slot kalender tersimpan", row)
}
