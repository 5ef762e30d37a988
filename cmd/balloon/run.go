package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	apperrors "github.com/Mikanister/baloon-calc-sub001/internal/errors"
	"github.com/Mikanister/baloon-calc-sub001/internal/logging"
	"github.com/Mikanister/baloon-calc-sub001/internal/pipeline"
	"github.com/Mikanister/baloon-calc-sub001/internal/server"
	"github.com/Mikanister/baloon-calc-sub001/pkg/analytics"
	"github.com/Mikanister/baloon-calc-sub001/pkg/export"
	"github.com/Mikanister/baloon-calc-sub001/pkg/material"
	"github.com/Mikanister/baloon-calc-sub001/pkg/spec"
	"github.com/Mikanister/baloon-calc-sub001/pkg/validation"
)

// loadDesign reads a design file, or the design file of a directory.
func loadDesign(path string) (*spec.Design, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.TypeInput, "opening design", err)
	}
	var d *spec.Design
	if info.IsDir() {
		d, err = spec.LoadProject(path)
	} else {
		d, err = spec.Load(path)
	}
	if err != nil {
		return nil, apperrors.Parsing("loading design", err)
	}
	if d.Name == "" {
		d.Name = designName(path, info.IsDir())
	}
	logging.Debug("design loaded", zap.String("path", path), zap.String("name", d.Name))
	return d, nil
}

func designName(path string, dir bool) string {
	if dir {
		return filepath.Base(filepath.Clean(path))
	}
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// solve runs the pipeline and prints the report when the design is
// rejected before solving.
func solve(path string, mode spec.Mode) (*spec.Design, *pipeline.Result, error) {
	d, err := loadDesign(path)
	if err != nil {
		return nil, nil, err
	}
	res, err := pipeline.Solve(d, mode, settings())
	if err != nil {
		if res != nil && !res.Validation.Valid && !jsonOut {
			printValidationReport(res.Validation)
		}
		return d, res, err
	}
	return d, res, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runSolve(path string, mode spec.Mode) error {
	_, res, err := solve(path, mode)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(res)
	}
	printState(res)
	if len(res.Validation.Warnings) > 0 {
		fmt.Println()
		printValidationReport(res.Validation)
	}
	return nil
}

func runPattern(path, format string) error {
	d, res, err := solve(path, "")
	if err != nil {
		return err
	}
	if err := res.AddPattern(d, settings()); err != nil {
		return err
	}
	if jsonOut || format == "json" {
		return printJSON(res.Pattern)
	}
	if format != "table" {
		return apperrors.Newf(apperrors.TypeNotSupported, "unknown pattern format %q (want table or json)", format)
	}
	printPattern(res.Pattern)
	return nil
}

func runValidate(path string) error {
	d, err := loadDesign(path)
	if err != nil {
		return err
	}
	res, err := pipeline.Solve(d, "", settings())
	report := res.Validation
	if err != nil && report.Valid {
		report.AddError(validation.Result{
			Level:   validation.LevelAnalytical,
			Message: err.Error(),
		})
	}

	if jsonOut {
		if err := printJSON(report); err != nil {
			return err
		}
	} else {
		printValidationReport(report)
	}
	if !report.Valid {
		return fmt.Errorf("design %s is invalid", d.Name)
	}
	return nil
}

func runAnalyze(path string, kind pipeline.AnalysisKind, opts pipeline.AnalysisOptions) error {
	d, err := loadDesign(path)
	if err != nil {
		return err
	}
	v, err := pipeline.Analyze(d, kind, opts, settings())
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(v)
	}

	switch r := v.(type) {
	case []analytics.HeightPoint:
		printProfile(r)
	case *analytics.Optimum:
		printOptimum(r)
	case *analytics.FlightTime:
		printFlightTime(r)
	case []analytics.MaterialResult:
		printMaterialComparison(r)
	}
	return nil
}

func runCost(path string) error {
	d, res, err := solve(path, "")
	if err != nil {
		return err
	}
	if err := res.AddCost(d, settings()); err != nil {
		return err
	}
	if jsonOut {
		return printJSON(res.Cost)
	}
	printCost(res.Cost)
	return nil
}

func runExport(path, format, output string, withProfile bool) error {
	if format == "" {
		format = filepath.Ext(output)
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}

	d, err := loadDesign(path)
	if err != nil {
		return err
	}
	s := settings()
	res, err := pipeline.Full(d, s)
	if err != nil {
		if res != nil && !res.Validation.Valid {
			printValidationReport(res.Validation)
		}
		return err
	}

	var profile []analytics.HeightPoint
	if withProfile {
		v, err := pipeline.Analyze(d, pipeline.AnalysisProfile, pipeline.AnalysisOptions{}, s)
		if err != nil {
			return err
		}
		profile = v.([]analytics.HeightPoint)
	}

	out, err := os.Create(output)
	if err != nil {
		return apperrors.Wrap(apperrors.TypeInput, "creating output file", err)
	}
	if err := export.Write(out, f, res.Report(profile)); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	logging.Info("export written", zap.String("format", string(f)), zap.String("path", output))
	if !jsonOut {
		fmt.Printf("Wrote %s (%s)\n", output, f)
	}
	return nil
}

func runMaterials() error {
	mats := material.All()
	if jsonOut {
		return printJSON(mats)
	}
	printMaterials(mats)
	return nil
}

func runServe() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(appConfig, logging.Logger)
	fmt.Printf("Balloon API listening on %s\n", appConfig.Server.Addr)
	return srv.Run(ctx)
}
