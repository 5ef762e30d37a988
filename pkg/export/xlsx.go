package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Mikanister/baloon-calc-sub001/pkg/geo"
	"github.com/Mikanister/baloon-calc-sub001/pkg/pattern"
)

// Sheet names of the XLSX workbook.
const (
	SheetSummary = "Summary"
	SheetPattern = "Pattern"
	SheetProfile = "Profile"
)

// XLSX writes r as a workbook with a Summary sheet, a Pattern sheet of
// outline points and, when r.Profile is set, a Profile sheet of heights.
func XLSX(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	n := 1
	writeRow := func(sheet string, values ...interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, n)
		if err != nil {
			return err
		}
		n++
		return f.SetSheetRow(sheet, cell, &values)
	}

	if r.Title != "" {
		if err := writeRow(SheetSummary, r.Title); err != nil {
			return err
		}
	}
	for _, s := range sections(r) {
		if err := writeRow(SheetSummary, s.title); err != nil {
			return err
		}
		for _, rw := range s.rows {
			if err := writeRow(SheetSummary, rw.label, cellValue(rw.value)); err != nil {
				return err
			}
		}
		n++
	}
	if err := f.SetColWidth(SheetSummary, "A", "A", 32); err != nil {
		return err
	}

	if r.Pattern != nil {
		if _, err := f.NewSheet(SheetPattern); err != nil {
			return err
		}
		n = 1
		if err := writePatternRows(r.Pattern, func(v ...interface{}) error { return writeRow(SheetPattern, v...) }); err != nil {
			return err
		}
	}

	if len(r.Profile) > 0 {
		if _, err := f.NewSheet(SheetProfile); err != nil {
			return err
		}
		n = 1
		if err := writeRow(SheetProfile, "height_m", "temperature_c", "pressure_pa", "rho_air", "rho_gas",
			"net_lift_per_m3", "lift_kg", "payload_kg", "required_volume_m3"); err != nil {
			return err
		}
		for _, p := range r.Profile {
			if err := writeRow(SheetProfile, p.HeightM, p.TemperatureC, p.PressurePa, p.AirDensity, p.GasDensity,
				p.NetLiftPerM3, p.LiftKg, p.PayloadKg, p.RequiredVolumeM3); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func writePatternRows(p pattern.Pattern, write func(...interface{}) error) error {
	switch pt := p.(type) {
	case *pattern.GorePattern:
		if err := write("x_m", "y_m", "cut_x_m", "cut_y_m"); err != nil {
			return err
		}
		for i, v := range pt.Points {
			c := pt.CutPoints[i]
			if err := write(v.X, v.Y, c.X, c.Y); err != nil {
				return err
			}
		}
	case *pattern.PanelPattern:
		if err := write("x_m", "y_m", "panel"); err != nil {
			return err
		}
		for i, panel := range pt.Panels {
			for _, v := range panel.Outline.Vertices {
				if err := write(v.X, v.Y, i+1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// cellValue stores numeric summary values as numbers.
func cellValue(s string) interface{} {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}

// ReadPatternPoints reads the x/y columns of a workbook's Pattern sheet, as
// written by XLSX, skipping the header row.
func ReadPatternPoints(r io.Reader) ([]geo.Point2D, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetPattern, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read %s sheet: %w", SheetPattern, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s sheet has no points", SheetPattern)
	}

	points := make([]geo.Point2D, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: x: %w", i+1, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: y: %w", i+1, err)
		}
		points = append(points, geo.Pt(x, y))
	}
	return points, nil
}
