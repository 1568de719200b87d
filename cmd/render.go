/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/glucolens/glucolens/charts"
	"github.com/glucolens/glucolens/risk"
)

var CmdRender = &cli.Command{
	Name:  "render",
	Usage: "Render the analysis charts of an assessment to PNG files",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   ".",
			Usage:   "directory the images are written to",
		},
		&cli.BoolFlag{
			Name:  "print",
			Usage: "use print dimensions",
		},
		&cli.BoolFlag{
			Name:    "risk-pie",
			Sources: cli.EnvVars("GLUCOLENS_RISK_PIE"),
			Usage:   "also render the risk category pie",
		},
		&cli.FloatFlag{Name: "probability", Value: risk.DefaultProbability, Usage: "diabetes probability in percent"},
		&cli.FloatFlag{Name: "bmi", Value: risk.DefaultBMI, Usage: "body mass index"},
		&cli.FloatFlag{Name: "glucose", Value: risk.DefaultGlucose, Usage: "plasma glucose (mg/dL)"},
		&cli.FloatFlag{Name: "age", Value: risk.DefaultAge, Usage: "age in years"},
		&cli.FloatFlag{Name: "insulin", Value: risk.DefaultInsulin, Usage: "serum insulin (μU/mL)"},
		&cli.FloatFlag{Name: "pregnancies", Value: risk.DefaultPregnancies, Usage: "number of pregnancies"},
		&cli.FloatFlag{Name: "blood-pressure", Value: risk.DefaultBloodPressure, Usage: "blood pressure (mmHg)"},
		&cli.FloatFlag{Name: "skin-thickness", Value: risk.DefaultSkinThickness, Usage: "skin fold thickness (mm)"},
	},
	Action: renderCharts,
}

type chartFile struct {
	name  string
	kind  charts.Kind
	write func(io.Writer, charts.Size) error
}

func renderCharts(_ context.Context, cmd *cli.Command) error {
	dir := cmd.String("out")
	if dir == "" {
		return errOutputDirRequired
	}

	a := risk.Assessment{
		Probability: cmd.Float("probability"),
		Measurements: risk.Measurements{
			BMI:           cmd.Float("bmi"),
			Glucose:       cmd.Float("glucose"),
			Age:           cmd.Float("age"),
			Insulin:       cmd.Float("insulin"),
			Pregnancies:   cmd.Float("pregnancies"),
			BloodPressure: cmd.Float("blood-pressure"),
			SkinThickness: cmd.Float("skin-thickness"),
		},
		DPF: risk.DefaultDPF,
	}

	sizes := charts.DefaultSizes()
	if cmd.Bool("print") {
		sizes = charts.PrintSizes()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, file := range chartFiles(a, cmd.Bool("risk-pie")) {
		path := filepath.Join(dir, file.name)
		if err := writeChartFile(path, file, sizes.For(file.kind)); err != nil {
			return err
		}

		appLogger.Info("Rendered chart", "kind", file.kind, "path", path)
	}

	return nil
}

func chartFiles(a risk.Assessment, includePie bool) []chartFile {
	files := []chartFile{
		{name: "gauge.png", kind: charts.KindGauge, write: func(w io.Writer, s charts.Size) error {
			return charts.WriteGaugePNG(w, a.Probability, s)
		}},
		{name: "features.png", kind: charts.KindFeatures, write: func(w io.Writer, s charts.Size) error {
			return charts.WriteFeaturesPNG(w, a.Measurements, s)
		}},
	}

	if includePie {
		files = append(files, chartFile{name: "pie.png", kind: charts.KindRiskPie, write: func(w io.Writer, s charts.Size) error {
			return charts.WriteRiskPiePNG(w, a.Probability, s)
		}})
	}

	return files
}

func writeChartFile(path string, file chartFile, size charts.Size) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := file.write(out, size); err != nil {
		return fmt.Errorf("failed to render %s: %w", file.name, err)
	}

	return nil
}
