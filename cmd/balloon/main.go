package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mikanister/baloon-calc-sub001/internal/config"
	"github.com/Mikanister/baloon-calc-sub001/internal/logging"
	"github.com/Mikanister/baloon-calc-sub001/internal/pipeline"
)

var (
	cfgFile string
	verbose bool
	jsonOut bool

	appConfig = config.Default()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "balloon",
		Short: "Balloon envelope geometry, lift and cutting-pattern solver",
		Long: `balloon sizes gas and hot-air balloons from a design file.

A design is a balloon.yaml, balloon.hcl or balloon.json file, or a directory
holding one.

Examples:
  balloon solve examples/weather-balloon
  balloon payload examples/cigar-payload --json
  balloon export examples/hot-air --format pdf -o hot-air.pdf`,
		SilenceUsage: true,
	}

	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .balloon/config.yaml or $HOME/.balloon/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")

	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(payloadCmd())
	rootCmd.AddCommand(patternCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(costCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(materialsCmd())
	rootCmd.AddCommand(serveCmd())

	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	appConfig = cfg

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	if cfg.File != "" {
		logging.Sugar.Debugf("using config file %s", cfg.File)
	}
}

func settings() pipeline.Settings {
	return pipeline.SettingsFrom(appConfig)
}

func solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [design]",
		Short: "Solve a design in the mode it declares",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSolve(args[0], "")
		},
	}
}

func payloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payload [design]",
		Short: "Find the gas volume that lifts the design's target payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSolve(args[0], "payload")
		},
	}
}

func patternCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "pattern [design]",
		Short: "Generate the gore or panel cutting pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPattern(args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [design]",
		Short: "Check a design and its solved state",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func analyzeCmd() *cobra.Command {
	var (
		kind string
		opts pipeline.AnalysisOptions
	)

	cmd := &cobra.Command{
		Use:   "analyze [design]",
		Short: "Run a height profile, optimum height, flight time or material comparison",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAnalyze(args[0], pipeline.AnalysisKind(kind), opts)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", string(pipeline.AnalysisProfile), "analysis (profile, optimal, flight, materials)")
	cmd.Flags().Float64Var(&opts.MaxHeightM, "max-height", 0, "highest height to scan in metres (default 50000)")
	cmd.Flags().Float64Var(&opts.StepM, "step", 0, "profile step in metres (default 500)")
	cmd.Flags().Float64Var(&opts.MinPayloadKg, "min-payload", 0, "payload the flight must keep in kg")
	return cmd
}

func costCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cost [design]",
		Short: "Estimate material and gas cost",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCost(args[0])
		},
	}
}

func exportCmd() *cobra.Command {
	var (
		format  string
		output  string
		profile bool
	)

	cmd := &cobra.Command{
		Use:   "export [design]",
		Short: "Write the pattern or a report as SVG, DXF, PDF or XLSX",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], format, output, profile)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "svg, dxf, pdf or xlsx (default from the output extension)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().BoolVar(&profile, "profile", false, "include the height profile in PDF and XLSX reports")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func materialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List envelope materials",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runMaterials()
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if addr != "" {
				appConfig.Server.Addr = addr
			}
			return runServe()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config, :8080)")
	return cmd
}
