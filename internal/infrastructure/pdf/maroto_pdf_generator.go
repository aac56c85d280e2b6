// Package pdf implementa la generación de la Ficha de la Organización:
// un PDF imprimible con los datos de identificación del prestador y sus
// sedes habilitadas, pensado para anexar a trámites ante la secretaría
// de salud.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + NIT-DV  │  Naturaleza + Estado      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTACTO: Dirección / Tel / Email                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA SEDES: Código Hab. | Nombre | Depto | Mpio | Principal│
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el NIT completo + fecha de generación        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/zentraqms/zentra-api/internal/application/usecase"
	"github.com/zentraqms/zentra-api/internal/domain/entity"
	"github.com/zentraqms/zentra-api/pkg/nit"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Asegura que MarotoPDFGenerator implementa usecase.FichaPDFGenerator.
var _ usecase.FichaPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.FichaPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateFichaPDF genera la ficha y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateFichaPDF(
	_ context.Context,
	org *entity.Organization,
	sedes []*entity.Sede,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de la Organización", true).
		WithAuthor(org.RazonSocial, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(org))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contactoRow(org))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de sedes
	m.AddRows(sedesTitleRow(len(sedes)))
	m.AddRows(sedesHeaderRow())
	for _, r := range sedesDetailRows(sedes) {
		m.AddRows(r)
	}

	// Footer con QR
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(org)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: Razón social + NIT con DV (izq) y naturaleza + estado (der).
func headerRow(org *entity.Organization) core.Row {
	nitCompleto := nit.Format(org.NIT) + "-" + org.DigitoVerificacion

	return row.New(18).Add(
		col.New(7).Add(
			text.New(org.RazonSocial, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+nitCompleto, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FICHA DE LA ORGANIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Naturaleza: "+nonEmpty(org.Naturaleza, "—"), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New("Estado: "+org.Estado, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// contactoRow: datos de contacto de la organización.
func contactoRow(org *entity.Organization) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DE CONTACTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(org.Direccion, "—"),
				nonEmpty(org.Telefono, "—"),
				nonEmpty(org.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// sedesTitleRow: título de la sección de sedes con el conteo.
func sedesTitleRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("SEDES HABILITADAS (%d)", total), props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// sedesHeaderRow: cabecera de la tabla de sedes.
func sedesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código Habilitación", 3, align.Left),
		h("Nombre de la sede", 5, align.Left),
		h("Depto", 1, align.Center),
		h("Mpio", 1, align.Center),
		h("Principal", 2, align.Center),
	)
}

// sedesDetailRows: una fila por sede.
func sedesDetailRows(sedes []*entity.Sede) []core.Row {
	result := make([]core.Row, 0, len(sedes))
	for _, s := range sedes {
		principal := ""
		if s.EsPrincipal {
			principal = "SÍ"
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				s.CodigoHabilitacion,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				s.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				s.Departamento,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				s.Municipio,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				principal,
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(8).Add(col.New(12).Add(
			text.New("Sin sedes registradas.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	return result
}

// footerRows: QR con el NIT completo + fecha de generación.
func footerRows(org *entity.Organization) []core.Row {
	nitCompleto := org.NIT + "-" + org.DigitoVerificacion
	generada := time.Now().Format("02/01/2006 15:04")

	return []core.Row{
		row.New(40).Add(
			col.New(4).Add(code.NewQr(nitCompleto, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("El código QR contiene el NIT con su\ndígito de verificación.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("FICHA DE LA ORGANIZACIÓN\nZentraQMS", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 18,
					Left: 3, Color: colorPrimary,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Documento informativo generado el "+generada+". "+
					"Los datos de habilitación provienen del Registro Especial de "+
					"Prestadores de Servicios de Salud (REPS).",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
