package services

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const reportFooter = "Generated using NutriVision App"

// cleanReportText prepares analysis text for layout. Markup-significant
// characters are escaped first, then the model's emphasis markers are
// stripped. The order matters: escaping after stripping would re-expose
// entities the stripping produced.
func cleanReportText(text string) string {
	text = html.EscapeString(text)
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "*", "")
	return text
}

// RenderReport lays the raw analysis text out as a downloadable PDF:
// title, generation timestamp, one paragraph per non-blank line, footer.
// Empty input still yields a valid document with just title and footer.
func RenderReport(rawText string, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(40, 50, 40)
	pdf.SetAutoPageBreak(true, 40)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, "NutriVision - Nutrition Report", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 14, "Generated on: "+now.Format(HistoryDateLayout), "", 1, "L", false, 0, "")
	pdf.Ln(14)

	for _, line := range strings.Split(cleanReportText(rawText), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		pdf.MultiCell(0, 14, line, "", "L", false)
		pdf.Ln(6)
	}

	pdf.Ln(20)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, 14, reportFooter, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
