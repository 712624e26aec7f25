package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"energy-flow/internal/circuit"
)

// WriteXLSX saves a Summary sheet and a Waveform sheet.
func WriteXLSX(filename string, cfg circuit.Config, samples []Sample) error {
	f := excelize.NewFile()
	defer f.Close()

	summary := "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return err
	}
	sum := Summarize(samples)
	rows := [][2]any{
		{"Mode", cfg.Mode.String()},
		{"Voltage [V]", cfg.Voltage},
		{"Resistance [Ω]", cfg.Resistance},
		{"Frequency [Hz]", cfg.Frequency},
		{"Samples", sum.Samples},
		{"Mean power [W]", sum.MeanPower},
		{"Peak power [W]", sum.PeakPower},
		{"Peak current [A]", sum.PeakCurrent},
	}
	for i, r := range rows {
		if err := f.SetCellValue(summary, fmt.Sprintf("A%d", i+1), r[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(summary, fmt.Sprintf("B%d", i+1), r[1]); err != nil {
			return err
		}
	}

	sheet := "Waveform"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for c, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for i, s := range samples {
		for c, v := range row(i, s) {
			cell, _ := excelize.CoordinatesToCellName(c+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(filename)
}
