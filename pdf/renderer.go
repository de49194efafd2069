// Package pdf renders a generated weekly recipe plan into a downloadable
// PDF document.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/MauItu/inventario-alimentos/entity"
)

// Render produces the PDF bytes for a weekly recipe plan.
func Render(recipes []entity.Recipe) ([]byte, error) {
	if len(recipes) == 0 {
		return nil, fmt.Errorf("no recipes to render")
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, tr("Recetas de la semana"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	for _, recipe := range recipes {
		doc.SetFont("Helvetica", "B", 14)
		doc.MultiCell(0, 8, tr(fmt.Sprintf("%s: %s", recipe.Day, recipe.Title)), "", "L", false)

		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(0, 7, tr("Ingredientes:"), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		for _, ingredient := range recipe.Ingredients {
			doc.MultiCell(0, 5, tr("- "+ingredient), "", "L", false)
		}
		doc.Ln(2)

		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(0, 7, tr("Preparación:"), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		for i, step := range recipe.Steps {
			doc.MultiCell(0, 5, tr(fmt.Sprintf("%d. %s", i+1, step)), "", "L", false)
		}
		doc.Ln(6)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render recipe document: %w", err)
	}
	return buf.Bytes(), nil
}
