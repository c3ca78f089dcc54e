// Package pdf implementa la representación impresa del plan de pagos de una
// venta a crédito.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Camposanto  │  PLAN DE PAGOS + Fecha de venta      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Cédula                                    │
//	│  TERRENO: Sección-Manzana-Lote + Precio + Condiciones        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cuota | Vencimiento | Monto | Interés | Estado       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Interés total / TOTAL A PAGAR                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/montesagrado/camposanto-api/internal/application/sales"
	"github.com/montesagrado/camposanto-api/internal/domain/credit"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
	"github.com/montesagrado/camposanto-api/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 80, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.SchedulePDFGenerator = (*MarotoScheduleGenerator)(nil)

// MarotoScheduleGenerator implementa sales.SchedulePDFGenerator usando Maroto v2.
type MarotoScheduleGenerator struct {
	companyName string
	money       *money.Formatter
}

// NewMarotoScheduleGenerator construye el generador con el nombre comercial
// que encabeza el documento y el formateador de moneda de la app.
func NewMarotoScheduleGenerator(companyName string, formatter *money.Formatter) *MarotoScheduleGenerator {
	return &MarotoScheduleGenerator{companyName: companyName, money: formatter}
}

// GenerateSchedulePDF genera el PDF del plan de cuotas y devuelve sus bytes.
func (g *MarotoScheduleGenerator) GenerateSchedulePDF(_ context.Context, data sales.SchedulePDFData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Plan de Pagos", true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data.Sale.SaleDate))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.clientRow(data))
	m.AddRows(g.plotRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	now := time.Now()
	for _, r := range g.installmentRows(data.Installments, now) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(data.Installments))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del camposanto (izq) y título + fecha de venta (der).
func (g *MarotoScheduleGenerator) headerRow(saleDate time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Administración de ventas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PLAN DE PAGOS", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha de venta: "+saleDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente titular del crédito.
func (g *MarotoScheduleGenerator) clientRow(data sales.SchedulePDFData) core.Row {
	s := data.Sale
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s %s   |   Cédula: %s",
				s.ClientFirstName, s.ClientLastName, s.ClientNationalID,
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

// plotRow: ubicación del terreno y condiciones del crédito.
func (g *MarotoScheduleGenerator) plotRow(data sales.SchedulePDFData) core.Row {
	s := data.Sale
	terms := "—"
	if s.NumInstallments != nil && s.InterestRate != nil {
		terms = fmt.Sprintf("%d cuotas al %s%% anual", *s.NumInstallments, s.InterestRate.String())
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("TERRENO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Ubicación: %s-%s-%s   |   Precio: %s   |   %s",
				s.PlotSection, s.PlotBlock, s.PlotLotNumber,
				g.money.Format(s.TotalPrice), terms,
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de cuotas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cuota", 2, align.Center),
		h("Vencimiento", 3, align.Center),
		h("Monto", 3, align.Right),
		h("Interés", 2, align.Right),
		h("Estado", 2, align.Center),
	)
}

// installmentRows: una fila por cuota con su estado visual a la fecha.
func (g *MarotoScheduleGenerator) installmentRows(installments []*entity.Installment, now time.Time) []core.Row {
	result := make([]core.Row, 0, len(installments))
	for _, inst := range installments {
		interest := "—"
		if inst.AppliedInterest.Valid {
			interest = g.money.Format(inst.AppliedInterest.Decimal)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", inst.Number),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				inst.DueDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				g.money.Format(inst.AmountDue),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				interest,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				string(credit.Classify(inst.Status, inst.DueDate, now)),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// totalsRow: interés total y total a pagar del plan.
func (g *MarotoScheduleGenerator) totalsRow(installments []*entity.Installment) core.Row {
	total := decimal.Zero
	interest := decimal.Zero
	for _, inst := range installments {
		total = total.Add(inst.AmountDue)
		if inst.AppliedInterest.Valid {
			interest = interest.Add(inst.AppliedInterest.Decimal)
		}
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 6,
		})
	}
	return row.New(16).Add(
		col.New(4),
		col.New(4).Add(
			label("Interés total:"),
			grandLabel("TOTAL A PAGAR:"),
		),
		col.New(4).Add(
			text.New(g.money.Format(interest), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New(g.money.Format(total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 6,
			}),
		),
	)
}
