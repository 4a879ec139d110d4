package planner

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

func renderPDF(user UserMetrics, plan *GeneratedPlan) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(18, 18, 18)
	doc.SetAutoPageBreak(true, 18)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 22)
	doc.CellFormat(0, 12, "30-Day Workout & Nutrition Plan", "", 1, "C", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 6, fmt.Sprintf("For: %s (%s)", user.Name, user.Email), "", 1, "L", false, 0, "")
	if user.HeightCm != nil && user.WeightKg != nil {
		doc.CellFormat(0, 6, fmt.Sprintf("Height: %d cm, Weight: %.1f kg", *user.HeightCm, round1(*user.WeightKg)), "", 1, "L", false, 0, "")
		if plan.BMI != nil {
			doc.CellFormat(0, 6, fmt.Sprintf("BMI: %.1f", round1(*plan.BMI)), "", 1, "L", false, 0, "")
		}
	}
	doc.CellFormat(0, 6, "Plan Type: "+strings.ReplaceAll(string(plan.Type), "_", " "), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 9, "General Recommendations", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	for _, r := range plan.Recommendations {
		doc.CellFormat(0, 6, "  - "+r, "", 1, "L", false, 0, "")
	}
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 9, "30-Day Schedule", "", 1, "L", false, 0, "")
	for _, d := range plan.WorkoutsByDay {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(0, 6, fmt.Sprintf("Day %d: %s", d.Day, d.Focus), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		for _, line := range d.Details {
			doc.CellFormat(0, 5, "- "+line, "", 1, "L", false, 0, "")
		}
		doc.Ln(2)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
