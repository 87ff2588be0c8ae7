package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/quadsim/internal/config"
	"github.com/san-kum/quadsim/internal/engine"
	"github.com/san-kum/quadsim/internal/sensor"
	"github.com/san-kum/quadsim/internal/storage"
	"github.com/san-kum/quadsim/internal/viz"
)

var (
	dataDir    string
	steps      int
	dt         float64
	seed       int64
	goalX      float64
	goalY      float64
	goalZ      float64
	velX       float64
	velY       float64
	velZ       float64
	samples    int
	scanRange  float64
	threshold  float64
	tolerance  float64
	gain       float64
	scanEvery  int
	historyCap int
	legs       int
	parallel   bool
	maxSteps   int
	energyRate float64
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quadsim",
		Short: "legged robot control-loop simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".quadsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a walk simulation",
		RunE:  runWalk,
	}
	addRunFlags(runCmd)

	walkCmd := &cobra.Command{
		Use:   "walk",
		Short: "run a walk with live visualization",
		RunE:  runLive,
	}
	addRunFlags(walkCmd)

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "plan a path from the origin to the goal",
		RunE:  runPlan,
	}
	addRunFlags(planCmd)

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "run one environment scan and report obstacles",
		RunE:  runScan,
	}
	addRunFlags(scanCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark step throughput",
		RunE:  benchSteps,
	}
	addRunFlags(benchCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run history to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, walkCmd, planCmd, scanCmd, benchCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of simulation steps")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	cmd.Flags().Float64Var(&goalX, "goal-x", 10.0, "goal x")
	cmd.Flags().Float64Var(&goalY, "goal-y", 10.0, "goal y")
	cmd.Flags().Float64Var(&goalZ, "goal-z", 0.0, "goal z")
	cmd.Flags().Float64Var(&velX, "vel-x", 1.0, "velocity x")
	cmd.Flags().Float64Var(&velY, "vel-y", 0.5, "velocity y")
	cmd.Flags().Float64Var(&velZ, "vel-z", 0.0, "velocity z")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultScanSamples, "readings per scan")
	cmd.Flags().Float64Var(&scanRange, "range", config.DefaultScanRange, "reading magnitude upper bound")
	cmd.Flags().Float64Var(&threshold, "threshold", config.DefaultThreshold, "obstacle threshold")
	cmd.Flags().Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "goal tolerance")
	cmd.Flags().Float64Var(&gain, "gain", config.DefaultGain, "plan gain")
	cmd.Flags().IntVar(&scanEvery, "scan-every", config.DefaultScanEvery, "steps between scans")
	cmd.Flags().IntVar(&historyCap, "history", config.DefaultHistoryCapacity, "movement history capacity")
	cmd.Flags().IntVar(&legs, "legs", config.DefaultLegCount, "leg count")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "parallel per-leg kinematics")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 1000, "path plan step budget")
	cmd.Flags().Float64Var(&energyRate, "energy-rate", config.DefaultEnergyRate, "energy units per displacement unit")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file and CLI flags, flags
// winning, as in: preset < file < changed flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flagSets := []struct {
		name  string
		apply func()
	}{
		{"steps", func() { cfg.Steps = steps }},
		{"dt", func() { cfg.Dt = dt }},
		{"seed", func() { cfg.Seed = seed }},
		{"goal-x", func() { cfg.Goal.X = goalX }},
		{"goal-y", func() { cfg.Goal.Y = goalY }},
		{"goal-z", func() { cfg.Goal.Z = goalZ }},
		{"vel-x", func() { cfg.Velocity.X = velX }},
		{"vel-y", func() { cfg.Velocity.Y = velY }},
		{"vel-z", func() { cfg.Velocity.Z = velZ }},
		{"samples", func() { cfg.Scan.Samples = samples }},
		{"range", func() { cfg.Scan.Range = scanRange }},
		{"threshold", func() { cfg.Scan.Threshold = threshold }},
		{"tolerance", func() { cfg.Plan.Tolerance = tolerance }},
		{"gain", func() { cfg.Plan.Gain = gain }},
		{"scan-every", func() { cfg.Scan.Every = scanEvery }},
		{"history", func() { cfg.HistoryCapacity = historyCap }},
		{"legs", func() { cfg.LegCount = legs }},
		{"parallel", func() { cfg.ParallelLegs = parallel }},
		{"max-steps", func() { cfg.Plan.MaxSteps = maxSteps }},
		{"energy-rate", func() { cfg.EnergyRate = energyRate }},
	}
	for _, f := range flagSets {
		if cmd.Flags().Changed(f.name) {
			f.apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	e, err := engine.New(cfg.ToEngine())
	if err != nil {
		return nil, err
	}
	e.AddMetric(engine.NewDistanceToGoal(cfg.Goal.Vec3()))
	e.AddMetric(engine.NewEnergyPerStep())
	e.AddMetric(engine.NewScanRate())
	return e, nil
}

func runWalk(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	e, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("walking %d steps toward (%.1f, %.1f, %.1f)...\n", cfg.Steps, cfg.Goal.X, cfg.Goal.Y, cfg.Goal.Z)
	start := time.Now()

	result, err := e.Simulate(context.Background(), cfg.Steps, cfg.Dt)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Name, cfg.Dt, cfg.Seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("final pose: (%.3f, %.3f, %.3f)\n", result.FinalPose.X, result.FinalPose.Y, result.FinalPose.Z)
	fmt.Printf("steps: %d  scans: %d  arrived: %v\n", result.Steps, result.Scans, result.Arrived)
	fmt.Printf("energy total: %.2f\n", result.EnergyTotal)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ec := cfg.ToEngine()
	e, err := engine.New(ec)
	if err != nil {
		return err
	}

	m := viz.NewModel(e, ec, cfg.Dt)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	e, err := engine.New(cfg.ToEngine())
	if err != nil {
		return err
	}

	start := time.Now()
	plan, err := e.PlanToGoal(cfg.Plan.MaxSteps)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("status: %s\n", plan.Status)
	fmt.Printf("steps: %d\n", plan.Steps())
	fmt.Printf("final distance: %.4f\n", plan.FinalDist)
	fmt.Printf("planned in %v\n", elapsed)
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	scanner, err := sensor.NewScanner(cfg.Scan.Samples, cfg.Scan.Range, cfg.Seed)
	if err != nil {
		return err
	}

	readings := scanner.Scan()
	obstacles := sensor.Detect(readings, cfg.Scan.Threshold)

	fmt.Printf("readings: %d\n", len(readings))
	fmt.Printf("threshold: %.1f\n", cfg.Scan.Threshold)
	fmt.Printf("obstacles: %d\n\n", obstacles.Len())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE")
	for _, v := range obstacles.Values() {
		fmt.Fprintf(w, "%.3f\n", v)
	}
	return w.Flush()
}

func benchSteps(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	stepCounts := []int{1000, 10000, 100000}
	intervals := []int{1, 10, 100}

	fmt.Println("benchmarking walk engine")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPS\tSCAN_EVERY\tSCANS\tTIME\tSTEPS/SEC")

	for _, n := range stepCounts {
		for _, k := range intervals {
			runCfg := *cfg
			runCfg.Scan.Every = k

			e, err := engine.New(runCfg.ToEngine())
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := e.Simulate(context.Background(), n, runCfg.Dt)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.Steps) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\n", result.Steps, k, result.Scans, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSTEPS\tSCANS\tENERGY\tARRIVED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.2f\t%v\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Scans,
			run.EnergyTotal,
			run.Arrived,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	history, err := st.LoadHistory(runID)
	if err != nil {
		return err
	}

	if len(history) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(history))

	captions := []string{"x vs step", "y vs step", "z vs step"}
	for axis := 0; axis < 3; axis++ {
		fmt.Println(viz.PlotSeries(viz.Axis(history, axis), captions[axis]))
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, nil)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	history, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}

	if len(history) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"index", "x", "y", "z"}); err != nil {
		return err
	}

	for i, p := range history {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	history, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, history)
}
