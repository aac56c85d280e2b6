package http

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/zentraqms/zentra-api/internal/application/dto"
	appreps "github.com/zentraqms/zentra-api/internal/application/reps"
	infrareps "github.com/zentraqms/zentra-api/internal/infrastructure/reps"
)

// RepsHandler maneja la importación y consulta del Registro Especial de
// Prestadores de Servicios de Salud (REPS).
type RepsHandler struct {
	importUC    *appreps.ImportUseCase
	listUC      *appreps.ListUseCase
	encoding    string // "latin1" | "utf8", para archivos CSV
	maxUploadMB int
}

// NewRepsHandler construye el handler inyectando los casos de uso.
func NewRepsHandler(importUC *appreps.ImportUseCase, listUC *appreps.ListUseCase, encoding string, maxUploadMB int) *RepsHandler {
	return &RepsHandler{importUC: importUC, listUC: listUC, encoding: encoding, maxUploadMB: maxUploadMB}
}

// Import godoc
// @Summary      Importar archivo REPS (CSV o XML)
// @Tags         reps
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Export REPS (.csv separado por ';' o .xml)"
// @Success      200   {object}  dto.RepsImportReport
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Router       /api/reps/import [post]
func (h *RepsHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' es requerido"})
	}
	if fileHeader.Size > int64(h.maxUploadMB)*1024*1024 {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera el tamaño máximo permitido"})
	}

	var parser appreps.FileParser
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv", ".txt":
		parser = infrareps.NewCSVParser(h.encoding)
	case ".xml":
		parser = infrareps.NewXMLParser()
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: "solo se aceptan archivos .csv o .xml"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	report, err := h.importUC.Import(c.UserContext(), f, parser)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PARSE_ERROR", Message: err.Error()})
	}
	return c.JSON(report)
}

// List godoc
// @Summary      Listar registros REPS importados
// @Tags         reps
// @Produce      json
// @Param        departamento  query  string  false  "Filtra por departamento (sin tildes, minúsculas)"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200           {object}  dto.RepsRecordListResponse
// @Router       /api/reps [get]
func (h *RepsHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	departamento := infrareps.Fold(c.Query("departamento"))
	out, err := h.listUC.List(c.UserContext(), departamento, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
