package reps

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	appreps "github.com/zentraqms/zentra-api/internal/application/reps"
)

// XMLParser parsea el export XML del REPS. Estructura esperada:
//
//	<prestadores>
//	  <prestador>
//	    <codigo_habilitacion>0500100001</codigo_habilitacion>
//	    <nit>900123456</nit>
//	    <dv>8</dv>
//	    <razon_social>IPS Ejemplo S.A.S.</razon_social>
//	    ...
//	  </prestador>
//	</prestadores>
//
// Implementa appreps.FileParser.
type XMLParser struct{}

// NewXMLParser construye el parser XML.
func NewXMLParser() *XMLParser { return &XMLParser{} }

// Parse lee todos los elementos <prestador> del documento. etree respeta la
// declaración de charset del documento, así que no se fuerza decodificación.
func (p *XMLParser) Parse(r io.Reader) ([]appreps.Row, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("leer documento XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("documento XML sin raíz")
	}

	prestadores := root.SelectElements("prestador")
	rows := make([]appreps.Row, 0, len(prestadores))
	for _, el := range prestadores {
		rows = append(rows, appreps.Row{
			CodigoHabilitacion: childText(el, "codigo_habilitacion"),
			NIT:                childText(el, "nit"),
			DigitoVerificacion: childText(el, "dv"),
			RazonSocial:        childText(el, "razon_social"),
			TipoPrestador:      childText(el, "clase_prestador"),
			Departamento:       Fold(childText(el, "departamento")),
			Municipio:          Fold(childText(el, "municipio")),
			Naturaleza:         Fold(childText(el, "naturaleza")),
			Email:              childText(el, "email"),
		})
	}
	return rows, nil
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return child.Text()
}
