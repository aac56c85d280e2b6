package reps

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/zentraqms/zentra-api/internal/application/dto"
	"github.com/zentraqms/zentra-api/internal/domain/entity"
	"github.com/zentraqms/zentra-api/internal/domain/repository"
	"github.com/zentraqms/zentra-api/pkg/nit"
)

// naturalezas aceptadas en el export REPS (ya normalizadas por el parser).
var naturalezasValidas = map[string]bool{
	entity.NaturalezaPublica: true,
	entity.NaturalezaPrivada: true,
	entity.NaturalezaMixta:   true,
}

// ImportUseCase orquesta la importación del Registro Especial de Prestadores:
// parsear el archivo, validar fila por fila y hacer upsert de las válidas.
// Una fila mala nunca aborta la importación: se acumula en el reporte.
type ImportUseCase struct {
	repo repository.RepsRepository
	// El motor permisivo [8,15]: el registro nacional arrastra NITs históricos
	// cortos que el rango estricto de organizaciones rechazaría.
	validator *nit.Validator
}

// NewImportUseCase construye el caso de uso de importación.
func NewImportUseCase(repo repository.RepsRepository) *ImportUseCase {
	return &ImportUseCase{repo: repo, validator: nit.NewValidator()}
}

// Import parsea el archivo con el parser indicado y aplica las filas válidas.
// El error de retorno es solo para fallas de archivo completo (no se pudo
// parsear); los rechazos por fila van en el reporte.
func (uc *ImportUseCase) Import(ctx context.Context, r io.Reader, parser FileParser) (*dto.RepsImportReport, error) {
	rows, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsear archivo REPS: %w", err)
	}

	report := &dto.RepsImportReport{Total: len(rows)}
	now := time.Now()

	for i, row := range rows {
		fila := i + 1 // 1 = primera fila de datos
		if campo, msg := uc.validarFila(row); msg != "" {
			report.Failed++
			report.Errors = append(report.Errors, dto.RepsImportError{Fila: fila, Campo: campo, Mensaje: msg})
			continue
		}
		record := &entity.RepsRecord{
			ID:                 uuid.New().String(),
			CodigoHabilitacion: row.CodigoHabilitacion,
			NIT:                nit.Normalize(row.NIT),
			DigitoVerificacion: nit.Normalize(row.DigitoVerificacion),
			RazonSocial:        row.RazonSocial,
			TipoPrestador:      row.TipoPrestador,
			Departamento:       row.Departamento,
			Municipio:          row.Municipio,
			Naturaleza:         row.Naturaleza,
			Email:              row.Email,
			ImportedAt:         now,
			UpdatedAt:          now,
		}
		inserted, err := uc.repo.Upsert(ctx, record)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, dto.RepsImportError{Fila: fila, Campo: "db", Mensaje: err.Error()})
			continue
		}
		if inserted {
			report.Inserted++
		} else {
			report.Updated++
		}
	}
	return report, nil
}

// validarFila aplica las reglas de negocio por fila. Retorna (campo, mensaje);
// mensaje vacío significa fila válida.
func (uc *ImportUseCase) validarFila(row Row) (string, string) {
	codigo := nit.Normalize(row.CodigoHabilitacion)
	if len(codigo) != entity.CodigoPrestadorLen || codigo != row.CodigoHabilitacion {
		return "codigo_habilitacion", fmt.Sprintf("se esperan %d dígitos, llegó %q", entity.CodigoPrestadorLen, row.CodigoHabilitacion)
	}
	if row.RazonSocial == "" {
		return "razon_social", "razón social vacía"
	}
	digits := nit.Normalize(row.NIT)
	dv := nit.Normalize(row.DigitoVerificacion)
	if res := uc.validator.Validate(digits, dv); !res.IsValid {
		return "nit", fmt.Sprintf("dígito de verificación inválido para NIT %s (calculado %q, llegó %q)",
			digits, res.ComputedDigit, row.DigitoVerificacion)
	}
	if row.Naturaleza != "" && !naturalezasValidas[row.Naturaleza] {
		return "naturaleza", fmt.Sprintf("naturaleza desconocida %q", row.Naturaleza)
	}
	if row.Departamento == "" {
		return "departamento", "departamento vacío"
	}
	return "", ""
}

// ListUseCase consulta de registros REPS importados.
type ListUseCase struct {
	repo repository.RepsRepository
}

// NewListUseCase construye el caso de uso de consulta.
func NewListUseCase(repo repository.RepsRepository) *ListUseCase {
	return &ListUseCase{repo: repo}
}

// List lista registros REPS, opcionalmente filtrados por departamento
// (el filtro se normaliza igual que en la importación).
func (uc *ListUseCase) List(ctx context.Context, departamento string, limit, offset int) (*dto.RepsRecordListResponse, error) {
	list, err := uc.repo.List(ctx, departamento, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, departamento)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RepsRecordResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, dto.RepsRecordResponse{
			ID:                 rec.ID,
			CodigoHabilitacion: rec.CodigoHabilitacion,
			NIT:                rec.NIT,
			DigitoVerificacion: rec.DigitoVerificacion,
			RazonSocial:        rec.RazonSocial,
			TipoPrestador:      rec.TipoPrestador,
			Departamento:       rec.Departamento,
			Municipio:          rec.Municipio,
			Naturaleza:         rec.Naturaleza,
			Email:              rec.Email,
			ImportedAt:         rec.ImportedAt,
			UpdatedAt:          rec.UpdatedAt,
		})
	}
	return &dto.RepsRecordListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}
