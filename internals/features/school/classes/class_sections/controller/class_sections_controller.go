// file: internals/features/school/classes/class_sections/controller/class_sections_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "clasku_backend/internals/helpers"
	helperAuth "clasku_backend/internals/helpers/auth"

	secDTO "clasku_backend/internals/features/school/classes/class_sections/dto"
	secModel "clasku_backend/internals/features/school/classes/class_sections/model"
	seqService "clasku_backend/internals/features/school/sessions/sequence/service"
)

type ClassSectionController struct {
	DB        *gorm.DB
	Generator *seqService.GeneratorService
}

func NewClassSectionController(db *gorm.DB) *ClassSectionController {
	return &ClassSectionController{DB: db, Generator: seqService.NewGeneratorService()}
}

/* ================= Handlers (ADMIN) ================= */

// POST /api/a/class-sections
// Section baru langsung dibuatkan set lengkap 1..150 planned session
// dalam transaksi yang sama (section tanpa sequence = invariant rusak).
func (ctrl *ClassSectionController) CreateClassSection(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan dalam token")
	}

	var req secDTO.ClassSectionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	section := req.ToModel(schoolID)
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(section).Error; err != nil {
			return err
		}
		_, err := ctrl.Generator.GenerateSessionsForClass(tx, schoolID, section.ClassSectionID)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug section sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat section")
	}

	return helper.JsonCreated(c, "Section dibuat beserta 150 hari sesi", secDTO.NewClassSectionResponse(section))
}

// GET /api/a/class-sections/:id
func (ctrl *ClassSectionController) GetClassSectionByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan dalam token")
	}

	sectionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var section secModel.ClassSectionModel
	if err := ctrl.DB.
		Where("class_section_id = ? AND class_section_school_id = ?", sectionID, schoolID).
		First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data section")
	}

	return helper.JsonOK(c, "OK", secDTO.NewClassSectionResponse(&section))
}

// GET /api/a/class-sections
func (ctrl *ClassSectionController) ListClassSections(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan dalam token")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&secModel.ClassSectionModel{}).
		Where("class_section_school_id = ?", schoolID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data section")
	}

	var sections []secModel.ClassSectionModel
	if err := ctrl.DB.
		Where("class_section_school_id = ?", schoolID).
		Order("class_section_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data section")
	}

	list := make([]*secDTO.ClassSectionResponse, 0, len(sections))
	for i := range sections {
		list = append(list, secDTO.NewClassSectionResponse(&sections[i]))
	}

	return helper.JsonList(c, "OK", list, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
