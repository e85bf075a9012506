// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "clasku_backend/internals/helpers"
	helperAuth "clasku_backend/internals/helpers/auth"

	attDTO "clasku_backend/internals/features/school/attendance/dto"
	attModel "clasku_backend/internals/features/school/attendance/model"
	attService "clasku_backend/internals/features/school/attendance/service"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *attService.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Service: attService.NewAttendanceService()}
}

/* ================= Handlers (FACILITATOR) ================= */

// POST /api/u/actual-sessions/:id/attendance
func (ctrl *AttendanceController) MarkSessionAttendance(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID tidak ditemukan dalam token")
	}

	var req attDTO.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	entries := make([]attService.AttendanceEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, attService.AttendanceEntry{
			StudentID: e.StudentID,
			Status:    attModel.AttendanceStatus(e.Status),
			Note:      e.Note,
		})
	}

	saved, err := ctrl.Service.MarkSessionAttendance(ctrl.DB, sessionID, userID, entries)
	if err != nil {
		switch {
		case errors.Is(err, attService.ErrSessionNotConducted):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat attendance")
		}
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance tercatat", fiber.Map{"saved": saved})
}

// GET /api/u/actual-sessions/:id/attendance
func (ctrl *AttendanceController) ListSessionAttendance(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	rows, err := ctrl.Service.ListSessionAttendance(ctrl.DB, sessionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil attendance")
	}

	list := make([]*attDTO.AttendanceResponse, 0, len(rows))
	for i := range rows {
		list = append(list, attDTO.NewAttendanceResponse(&rows[i]))
	}
	return helper.Success(c, "OK", list)
}
