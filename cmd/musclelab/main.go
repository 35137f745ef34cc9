package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/musclelab/internal/config"
	"github.com/san-kum/musclelab/internal/dynamo"
	"github.com/san-kum/musclelab/internal/experiment"
	"github.com/san-kum/musclelab/internal/export"
	"github.com/san-kum/musclelab/internal/storage"
	"github.com/san-kum/musclelab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	pulseDur   float64
	amplitude  float64
	integrator string
	excitation string
	muscleName string
	configFile string
	preset     string
	pngOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "musclelab",
		Short: "hill-type muscle excitation-activation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive slider TUI when no command given
			return viz.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".musclelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one scenario and save the traces",
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive slider TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run traces in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run traces to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and traces as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [run_id]",
		Short: "render a multi-panel PNG figure for a run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	exportPNGCmd.Flags().StringVar(&pngOut, "out", "run.png", "output file")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrators on the same scenario",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareIntegrators,
	}
	addScenarioFlags(compareCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the activation solve",
		RunE:  benchSolve,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, exportPNGCmd, compareCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "total duration")
	cmd.Flags().Float64Var(&pulseDur, "pulse", config.DefaultPulseDuration, "pulse duration")
	cmd.Flags().Float64Var(&amplitude, "amp", config.DefaultAmplitude, "pulse amplitude")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	cmd.Flags().StringVar(&excitation, "excitation", "pulse", "excitation signal")
	cmd.Flags().StringVar(&muscleName, "muscle", "linear", "muscle model")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig layers preset, then config file, then explicit CLI flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
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
		*cfg = *loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("pulse") {
		cfg.Stimulus.Duration = pulseDur
	}
	if cmd.Flags().Changed("amp") {
		cfg.Stimulus.Amplitude = amplitude
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("excitation") {
		cfg.Excitation = excitation
	}
	if cmd.Flags().Changed("muscle") {
		cfg.Muscle = muscleName
	}

	return cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	reg := experiment.NewRegistry()
	exp := experiment.New(cfg)
	if err := exp.Setup(reg); err != nil {
		return err
	}

	fmt.Printf("solving activation dynamics (%s, dt=%g)...\n", cfg.Integrator, cfg.Dt)
	start := time.Now()

	out, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Excitation:    cfg.Excitation,
		Integrator:    cfg.Integrator,
		Muscle:        cfg.Muscle,
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		Amplitude:     cfg.Stimulus.Amplitude,
		PulseDuration: cfg.Stimulus.Duration,
	}, out)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(out.Activation.Times))
	fmt.Println("\nmetrics:")
	for name, val := range out.Activation.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
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
	fmt.Fprintln(w, "ID\tTIME\tEXCITATION\tAMP\tPULSE\tDURATION\tDT\tINTEG")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.3fs\t%.2fs\t%g\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Excitation,
			run.Amplitude,
			run.PulseDuration,
			run.Duration,
			run.Dt,
			run.Integrator,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	tr, err := st.LoadTraces(args[0])
	if err != nil {
		return err
	}

	if len(tr.Times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("excitation: %s (amp %.2f, pulse %.3fs)\n\n", meta.Excitation, meta.Amplitude, meta.PulseDuration)

	panels := []struct {
		name string
		data []float64
	}{
		{"excitation u(t)", tr.Drive},
		{"activation a(t)", tr.Activation},
		{"musculotendon force", tr.Force},
		{"SEE length", tr.SEELength},
	}

	for _, p := range panels {
		graph := asciigraph.Plot(thin(p.data, 160),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

// thin reduces a fine-grid trace to at most n points for terminal plotting.
func thin(data []float64, n int) []float64 {
	if len(data) <= n {
		return data
	}
	stride := len(data) / n
	out := make([]float64, 0, n)
	for i := 0; i < len(data); i += stride {
		out = append(out, data[i])
	}
	return out
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTraces(args[0])
	if err != nil {
		return err
	}

	if len(tr.Times) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "u", "a", "force", "ce_force", "see_force", "see_length", "ce_velocity"}); err != nil {
		return err
	}

	for i := range tr.Times {
		row := []string{
			strconv.FormatFloat(tr.Times[i], 'f', 6, 64),
			strconv.FormatFloat(tr.Drive[i], 'f', 6, 64),
			strconv.FormatFloat(tr.Activation[i], 'f', 8, 64),
			strconv.FormatFloat(tr.Force[i], 'f', 6, 64),
			strconv.FormatFloat(tr.CEForce[i], 'f', 6, 64),
			strconv.FormatFloat(tr.SEEForce[i], 'f', 6, 64),
			strconv.FormatFloat(tr.SEELength[i], 'f', 6, 64),
			strconv.FormatFloat(tr.CEVelocity[i], 'f', 6, 64),
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

	tr, err := st.LoadTraces(args[0])
	if err != nil {
		return err
	}

	payload := struct {
		Meta       *storage.RunMetadata `json:"meta"`
		Times      []float64            `json:"times"`
		Drive      []float64            `json:"u"`
		Activation []float64            `json:"a"`
		Force      []float64            `json:"force"`
	}{meta, tr.Times, tr.Drive, tr.Activation, tr.Force}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func exportPNG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTraces(args[0])
	if err != nil {
		return err
	}

	if err := export.PNG(tr, pngOut); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", pngOut)
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	reg := experiment.NewRegistry()

	fmt.Printf("comparing integrators (amp=%.2f, pulse=%.3fs, dt=%g, duration=%.1fs)\n\n",
		cfg.Stimulus.Amplitude, cfg.Stimulus.Duration, cfg.Dt, cfg.Duration)
	fmt.Printf("%-10s  %-14s  %-14s  %-12s  %-10s\n", "integrator", "final_a", "peak_a", "vs_first", "time_ms")
	fmt.Println(strings.Repeat("-", 68))

	var baseline dynamo.State

	for _, name := range args {
		runCfg := *cfg
		runCfg.Integrator = name

		exp := experiment.New(&runCfg)
		if err := exp.Setup(reg); err != nil {
			fmt.Printf("%-10s  error: %v\n", name, err)
			continue
		}

		start := time.Now()
		out, err := exp.Run(context.Background())
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("%-10s  error: %v\n", name, err)
			continue
		}

		final := out.Activation.States[len(out.Activation.States)-1]
		drift := 0.0
		if baseline == nil {
			baseline = final.Clone()
		} else {
			drift = final.Sub(baseline).Norm()
		}

		fmt.Printf("%-10s  %14.8f  %14.8f  %12.2e  %10.2f\n",
			name, final[0], out.Activation.Metrics["peak_activation"], drift, float64(elapsed.Microseconds())/1000)
	}

	return nil
}

func benchSolve(cmd *cobra.Command, args []string) error {
	reg := experiment.NewRegistry()

	durations := []float64{0.5, 1.0, 2.0}
	dts := []float64{0.0001, 0.0005, 0.001}

	fmt.Println("benchmarking activation solve")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, step := range dts {
			cfg := config.DefaultConfig()
			cfg.Duration = dur
			cfg.Dt = step

			exp := experiment.New(cfg)
			if err := exp.Setup(reg); err != nil {
				return err
			}

			start := time.Now()
			out, err := exp.Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			steps := out.Activation.StepsTaken
			stepsPerSec := float64(steps) / elapsed.Seconds()

			fmt.Fprintf(w, "%.1fs\t%g\t%d\t%v\t%.0f\n", dur, step, steps, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}
