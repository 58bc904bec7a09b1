// Package pdf genera la representación impresa de facturas CFDI y recibos de
// nómina con Maroto v2. El layout es fijo; solo cambian los datos, los sellos
// ilustrativos y la fecha.
package pdf

import (
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 128, Green: 0, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// sealChunk ancho de línea con el que se parten los sellos.
const sealChunk = 50

const dateLayout = "02/01/2006 15:04"

// newDocument crea un documento A4 con márgenes y fuente comunes.
func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

// generate construye el PDF y devuelve sus bytes.
func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones comunes ─────────────────────────────────────────────────────────

// issuerHeaderRow: nombre de la empresa, RFC y régimen (izq) y tipo de documento (der).
func issuerHeaderRow(company, rfc, regime, docTitle, folio string, issuedAt string) core.Row {
	return row.New(22).Add(
		col.New(8).Add(
			text.New(company, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("RFC Emisor: "+rfc, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(regime, props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(docTitle, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Folio: "+folio, props.Text{
				Size: 7, Align: align.Right, Top: 8,
			}),
			text.New(issuedAt, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// infoCol: título en negritas seguido de una línea por dato.
func infoCol(size int, title string, lines ...string) core.Col {
	c := col.New(size).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
	}))
	for i, l := range lines {
		c = c.Add(text.New(l, props.Text{
			Size: 7.5, Top: float64(6 + i*4), Left: 1,
		}))
	}
	return c
}

// infoHeight alto de fila para n líneas de infoCol.
func infoHeight(n int) float64 {
	return float64(8 + n*4)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
	})))
}

func separator() core.Row {
	return line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3})
}

// headerCells fila de cabecera de tabla; sizes debe sumar 12.
func headerCells(labels []string, sizes []int) core.Row {
	r := row.New(7)
	for i, l := range labels {
		r.Add(col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: align.Center,
			Color: colorWhite, Top: 1.5,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary}))
	}
	return r
}

func valueCells(values []string, sizes []int) core.Row {
	r := row.New(7)
	for i, v := range values {
		r.Add(col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 7.5, Align: align.Center, Top: 1.5,
		})))
	}
	return r
}

// totalRow etiqueta y valor alineados a la derecha.
func totalRow(label, value string, grand bool) core.Row {
	size := 9.0
	color := &props.Color{}
	if grand {
		size = 10
		color = colorPrimary
	}
	return row.New(6).Add(
		col.New(6),
		col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: size, Align: align.Right, Right: 2, Color: color,
		})),
		col.New(3).Add(text.New(value, props.Text{
			Size: size, Align: align.Right, Right: 1, Color: color,
		})),
	)
}

func inWordsRow(words string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(words, props.Text{
		Style: fontstyle.BoldItalic, Size: 8, Align: align.Right, Top: 2, Right: 1,
	})))
}

// sealsRows: los tres sellos partidos en líneas de ancho fijo junto al QR.
func sealsRows(seals entity.Seals, qr string) []core.Row {
	blocks := []struct {
		label string
		value string
	}{
		{"Sello Digital del CFDI:", seals.CFDI},
		{"Sello Digital del SAT:", seals.SAT},
		{"Cadena Original del Complemento de Certificación Digital del SAT:", seals.CertificationChain},
	}

	left := col.New(8)
	top := 1.0
	for _, b := range blocks {
		left = left.Add(text.New(b.label, props.Text{Style: fontstyle.Bold, Size: 7, Top: top}))
		top += 4
		for _, chunk := range splitEvery(b.value, sealChunk) {
			left = left.Add(text.New(chunk, props.Text{Size: 6.5, Color: colorGray, Top: top, Left: 2}))
			top += 3.5
		}
		top += 1.5
	}

	height := top + 2
	if height < 50 {
		height = 50
	}
	right := col.New(4)
	if qr != "" {
		right = right.Add(code.NewQr(qr, props.Rect{Percent: 95, Center: true}))
	}

	return []core.Row{
		sectionTitleRow("Sellos Digitales"),
		row.New(height).Add(left, right),
	}
}

func legendRow(legend string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(legend, props.Text{
		Size: 6.5, Color: colorGray, Top: 2, Align: align.Center,
	})))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney da formato "$1,234.56" (dos decimales, comas de miles).
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + "$" + string(buf) + frac
}

// splitEvery divide s en trozos de max n caracteres.
func splitEvery(s string, n int) []string {
	var parts []string
	for len(s) > n {
		parts = append(parts, s[:n])
		s = s[n:]
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}
