package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/phaniraghava1234/propeller-model/internal/config"
	"github.com/phaniraghava1234/propeller-model/internal/disk"
	"github.com/phaniraghava1234/propeller-model/internal/export"
	"github.com/phaniraghava1234/propeller-model/internal/loading"
	"github.com/phaniraghava1234/propeller-model/internal/metrics"
	"github.com/phaniraghava1234/propeller-model/internal/optim"
	"github.com/phaniraghava1234/propeller-model/internal/rotor"
	"github.com/phaniraghava1234/propeller-model/internal/store"
	"github.com/phaniraghava1234/propeller-model/internal/validate"
	"github.com/phaniraghava1234/propeller-model/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	diameter float64
	blades   int
	hubRatio float64
	velocity float64
	rpm      float64
	rho      float64
	stations int
	tipLoss  float64
	swirl    float64
	shape    string
	order    int
	coeffs   []float64
	// Sweep range
	sweepFrom float64
	sweepTo   float64
	sweepStep float64
	live      bool
	// Optimization parameters
	objective    string
	thrustTarget float64
	powerLimit   float64
	optOrder     int
	lower        float64
	upper        float64
	method       string
	initial      []float64
	// Plot selection
	what string
	// Export destination
	outFile string
	asSVG   bool
	// Persist results
	save bool
	// Config file
	configFile string
	// Preset name
	preset string
)

// main is the entry point for the propmodel CLI; it registers commands and
// flags and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "propmodel",
		Short: "propeller aerodynamic performance lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".propmodel", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "evaluate a single operating point",
		RunE:  runPoint,
	}
	runCmd.Flags().Float64Var(&diameter, "diameter", config.DefaultDiameter, "rotor diameter (m)")
	runCmd.Flags().IntVar(&blades, "blades", config.DefaultBlades, "blade count")
	runCmd.Flags().Float64Var(&hubRatio, "hub-ratio", config.DefaultHubRatio, "hub radius / tip radius")
	runCmd.Flags().Float64Var(&velocity, "velocity", config.DefaultVelocity, "freestream velocity (m/s)")
	runCmd.Flags().Float64Var(&rpm, "rpm", config.DefaultRPM, "rotational speed")
	runCmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "air density (kg/m^3)")
	runCmd.Flags().IntVar(&stations, "stations", config.DefaultStations, "radial stations")
	runCmd.Flags().Float64Var(&tipLoss, "tip-loss", config.DefaultTipLoss, "tip loss factor")
	runCmd.Flags().Float64Var(&swirl, "swirl", config.DefaultSwirl, "swirl torque factor")
	runCmd.Flags().StringVar(&shape, "shape", config.DefaultPreset, "loading shape preset")
	runCmd.Flags().IntVar(&order, "order", config.DefaultOrder, "loading polynomial order")
	runCmd.Flags().Float64SliceVar(&coeffs, "coeffs", nil, "explicit loading coefficients (overrides shape)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep an rpm range",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&diameter, "diameter", config.DefaultDiameter, "rotor diameter (m)")
	sweepCmd.Flags().IntVar(&blades, "blades", config.DefaultBlades, "blade count")
	sweepCmd.Flags().Float64Var(&hubRatio, "hub-ratio", config.DefaultHubRatio, "hub radius / tip radius")
	sweepCmd.Flags().Float64Var(&velocity, "velocity", config.DefaultVelocity, "freestream velocity (m/s)")
	sweepCmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "air density (kg/m^3)")
	sweepCmd.Flags().IntVar(&stations, "stations", config.DefaultStations, "radial stations")
	sweepCmd.Flags().Float64Var(&tipLoss, "tip-loss", config.DefaultTipLoss, "tip loss factor")
	sweepCmd.Flags().Float64Var(&swirl, "swirl", config.DefaultSwirl, "swirl torque factor")
	sweepCmd.Flags().StringVar(&shape, "shape", config.DefaultPreset, "loading shape preset")
	sweepCmd.Flags().IntVar(&order, "order", config.DefaultOrder, "loading polynomial order")
	sweepCmd.Flags().Float64SliceVar(&coeffs, "coeffs", nil, "explicit loading coefficients (overrides shape)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", config.DefaultSweepFrom, "sweep start rpm")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", config.DefaultSweepTo, "sweep end rpm")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", config.DefaultSweepStep, "sweep step rpm")
	sweepCmd.Flags().BoolVar(&live, "live", false, "interactive live view")
	sweepCmd.Flags().BoolVar(&save, "save", false, "persist the sweep")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "optimize loading coefficients",
		RunE:  runOptimize,
	}
	optimizeCmd.Flags().Float64Var(&diameter, "diameter", config.DefaultDiameter, "rotor diameter (m)")
	optimizeCmd.Flags().IntVar(&blades, "blades", config.DefaultBlades, "blade count")
	optimizeCmd.Flags().Float64Var(&hubRatio, "hub-ratio", config.DefaultHubRatio, "hub radius / tip radius")
	optimizeCmd.Flags().Float64Var(&velocity, "velocity", config.DefaultVelocity, "freestream velocity (m/s)")
	optimizeCmd.Flags().Float64Var(&rpm, "rpm", config.DefaultRPM, "rotational speed")
	optimizeCmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "air density (kg/m^3)")
	optimizeCmd.Flags().IntVar(&stations, "stations", config.DefaultStations, "radial stations")
	optimizeCmd.Flags().Float64Var(&tipLoss, "tip-loss", config.DefaultTipLoss, "tip loss factor")
	optimizeCmd.Flags().Float64Var(&swirl, "swirl", config.DefaultSwirl, "swirl torque factor")
	optimizeCmd.Flags().StringVar(&objective, "objective", optim.MinPower, "min_power or max_thrust")
	optimizeCmd.Flags().Float64Var(&thrustTarget, "thrust", 15.0, "thrust target (N, min_power)")
	optimizeCmd.Flags().Float64Var(&powerLimit, "power", 0.0, "power limit (W, max_thrust)")
	optimizeCmd.Flags().IntVar(&optOrder, "order", 5, "optimized polynomial order")
	optimizeCmd.Flags().Float64Var(&lower, "lower", 0.0, "coefficient lower bound")
	optimizeCmd.Flags().Float64Var(&upper, "upper", 8.0, "coefficient upper bound")
	optimizeCmd.Flags().StringVar(&method, "method", optim.DefaultMethod, "solver backend")
	optimizeCmd.Flags().Float64SliceVar(&initial, "initial", nil, "starting coefficients")
	optimizeCmd.Flags().BoolVar(&save, "save", false, "persist the result")
	optimizeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	optimizeCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets and loading shapes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("configuration presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			fmt.Println()
			fmt.Println("loading shapes:")
			for _, s := range loading.Names() {
				fmt.Printf("  %s\n", s)
			}
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate [csv_file]",
		Short: "compare predictions against measurements",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	validateCmd.Flags().Float64Var(&diameter, "diameter", config.DefaultDiameter, "rotor diameter (m)")
	validateCmd.Flags().IntVar(&blades, "blades", config.DefaultBlades, "blade count")
	validateCmd.Flags().Float64Var(&hubRatio, "hub-ratio", config.DefaultHubRatio, "hub radius / tip radius")
	validateCmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "air density (kg/m^3)")
	validateCmd.Flags().IntVar(&stations, "stations", config.DefaultStations, "radial stations")
	validateCmd.Flags().Float64Var(&tipLoss, "tip-loss", config.DefaultTipLoss, "tip loss factor")
	validateCmd.Flags().Float64Var(&swirl, "swirl", config.DefaultSwirl, "swirl torque factor")
	validateCmd.Flags().StringVar(&shape, "shape", config.DefaultPreset, "loading shape preset")
	validateCmd.Flags().IntVar(&order, "order", config.DefaultOrder, "loading polynomial order")
	validateCmd.Flags().Float64SliceVar(&coeffs, "coeffs", nil, "explicit loading coefficients (overrides shape)")
	validateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	validateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (stdout when empty)")
	exportCmd.Flags().BoolVar(&asSVG, "svg", false, "write an svg chart instead of json")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&what, "what", "sweep", "sweep, loading, or induced")
	plotCmd.Flags().Float64Var(&rpm, "rpm", config.DefaultRPM, "rpm for radial plots when the run has none")

	rootCmd.AddCommand(runCmd, sweepCmd, optimizeCmd, presetsCmd, validateCmd, listCmd, exportCmd, plotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyConfig layers the preset and the config file under the CLI flags.
func applyConfig(cmd *cobra.Command) error {
	// Load preset if specified
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyPreset(cfg)
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFile(cmd, cfg)
	}

	return nil
}

func applyPreset(cfg *config.Config) {
	// Apply preset values
	diameter = cfg.Geometry.Diameter
	blades = cfg.Geometry.Blades
	hubRatio = cfg.Geometry.HubRatio
	velocity = cfg.Flow.Velocity
	rpm = cfg.Flow.RPM
	rho = cfg.Flow.Rho
	stations = cfg.Disk.Stations
	tipLoss = cfg.Disk.TipLoss
	swirl = cfg.Disk.Swirl
	if cfg.Loading.Preset != "" {
		shape = cfg.Loading.Preset
	}
	order = cfg.Loading.Order
	if len(cfg.Loading.Coeffs) > 0 {
		coeffs = cfg.Loading.Coeffs
	}
	sweepFrom = cfg.Sweep.From
	sweepTo = cfg.Sweep.To
	sweepStep = cfg.Sweep.Step
	if cfg.Optimize.Objective != "" {
		objective = cfg.Optimize.Objective
	}
	thrustTarget = cfg.Optimize.ThrustTarget
	powerLimit = cfg.Optimize.PowerLimit
	optOrder = cfg.Optimize.Order
	lower = cfg.Optimize.Lower
	upper = cfg.Optimize.Upper
	if cfg.Optimize.Method != "" {
		method = cfg.Optimize.Method
	}
}

func applyFile(cmd *cobra.Command, cfg *config.Config) {
	// Apply config values (CLI flags override config)
	if !cmd.Flags().Changed("diameter") {
		diameter = cfg.Geometry.Diameter
	}
	if !cmd.Flags().Changed("blades") {
		blades = cfg.Geometry.Blades
	}
	if !cmd.Flags().Changed("hub-ratio") {
		hubRatio = cfg.Geometry.HubRatio
	}
	if !cmd.Flags().Changed("velocity") {
		velocity = cfg.Flow.Velocity
	}
	if !cmd.Flags().Changed("rpm") {
		rpm = cfg.Flow.RPM
	}
	if !cmd.Flags().Changed("rho") {
		rho = cfg.Flow.Rho
	}
	if !cmd.Flags().Changed("stations") {
		stations = cfg.Disk.Stations
	}
	if !cmd.Flags().Changed("tip-loss") {
		tipLoss = cfg.Disk.TipLoss
	}
	if !cmd.Flags().Changed("swirl") {
		swirl = cfg.Disk.Swirl
	}
	if !cmd.Flags().Changed("shape") {
		shape = cfg.Loading.Preset
	}
	if !cmd.Flags().Changed("order") {
		order = cfg.Loading.Order
		optOrder = cfg.Optimize.Order
	}
	if len(cfg.Loading.Coeffs) > 0 && !cmd.Flags().Changed("coeffs") {
		coeffs = cfg.Loading.Coeffs
	}
	if !cmd.Flags().Changed("from") {
		sweepFrom = cfg.Sweep.From
	}
	if !cmd.Flags().Changed("to") {
		sweepTo = cfg.Sweep.To
	}
	if !cmd.Flags().Changed("step") {
		sweepStep = cfg.Sweep.Step
	}
	if !cmd.Flags().Changed("objective") {
		objective = cfg.Optimize.Objective
	}
	if cfg.Optimize.ThrustTarget != 0 && !cmd.Flags().Changed("thrust") {
		thrustTarget = cfg.Optimize.ThrustTarget
	}
	if cfg.Optimize.PowerLimit != 0 && !cmd.Flags().Changed("power") {
		powerLimit = cfg.Optimize.PowerLimit
	}
	if !cmd.Flags().Changed("lower") {
		lower = cfg.Optimize.Lower
	}
	if !cmd.Flags().Changed("upper") {
		upper = cfg.Optimize.Upper
	}
	if !cmd.Flags().Changed("method") {
		method = cfg.Optimize.Method
	}
}

func buildModel() (*disk.Model, error) {
	geom, err := rotor.NewGeometry(diameter, blades, hubRatio)
	if err != nil {
		return nil, err
	}
	return disk.NewWithConfig(geom, disk.Config{
		Stations: stations,
		TipLoss:  tipLoss,
		Swirl:    swirl,
	})
}

func loadingCoeffs() ([]float64, error) {
	if len(coeffs) > 0 {
		return coeffs, nil
	}
	return loading.Preset(shape, order)
}

func runPoint(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	m, err := buildModel()
	if err != nil {
		return err
	}
	c, err := loadingCoeffs()
	if err != nil {
		return err
	}
	flow, err := rotor.NewFlowConditions(velocity, rpm, rho)
	if err != nil {
		return err
	}

	for _, warn := range rotor.CheckOperatingRange(m.Geometry(), flow) {
		fmt.Printf("warning: %s\n", warn)
	}

	perf, err := m.ComputePerformance(c, flow)
	if err != nil {
		return err
	}
	coef, err := metrics.Compute(perf.Thrust, perf.Power, m.Geometry(), flow)
	if err != nil {
		return err
	}

	fmt.Printf("thrust:      %.4f N\n", perf.Thrust)
	fmt.Printf("torque:      %.4f N*m\n", perf.Torque)
	fmt.Printf("power:       %.4f W\n", perf.Power)
	fmt.Printf("advance j:   %.4f\n", coef.J)
	fmt.Printf("ct:          %.6f\n", coef.CT)
	fmt.Printf("cp:          %.6f\n", coef.CP)
	fmt.Printf("efficiency:  %.4f\n", coef.Eta)

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	m, err := buildModel()
	if err != nil {
		return err
	}
	c, err := loadingCoeffs()
	if err != nil {
		return err
	}
	rpms, err := metrics.RPMRange(sweepFrom, sweepTo, sweepStep)
	if err != nil {
		return err
	}

	if live {
		p := tea.NewProgram(viz.NewModel(m, c, rpms, velocity, rho))
		if _, err := p.Run(); err != nil {
			return err
		}
		return nil
	}

	fmt.Printf("sweeping %d points from %.0f to %.0f rpm...\n", len(rpms), sweepFrom, sweepTo)
	start := time.Now()

	res, err := metrics.Sweep(context.Background(), m, c, rpms, velocity, rho)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	fmt.Printf("completed in %v\n", elapsed)
	if n := res.Failed(); n > 0 {
		fmt.Printf("failed points: %d\n", n)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RPM\tTHRUST\tTORQUE\tPOWER\tJ\tCT\tCP\tETA")
	for i := 0; i < res.Len(); i++ {
		pt := res.Point(i)
		if pt.Err != nil {
			fmt.Fprintf(w, "%.0f\terror: %v\n", pt.RPM, pt.Err)
			continue
		}
		fmt.Fprintf(w, "%.0f\t%.4f\t%.4f\t%.2f\t%.4f\t%.6f\t%.6f\t%.4f\n",
			pt.RPM, pt.Thrust, pt.Torque, pt.Power, pt.J, pt.CT, pt.CP, pt.Eta)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.SweepPlot(res.Eta, "efficiency vs rpm"))

	if save {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveSweep("sweep", m.Geometry(), velocity, rho, c, res)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	m, err := buildModel()
	if err != nil {
		return err
	}
	flow, err := rotor.NewFlowConditions(velocity, rpm, rho)
	if err != nil {
		return err
	}

	prob := optim.Problem{
		Objective:    objective,
		ThrustTarget: thrustTarget,
		PowerLimit:   powerLimit,
		Order:        optOrder,
		Lower:        lower,
		Upper:        upper,
		Method:       method,
		Initial:      initial,
	}

	fmt.Printf("optimizing %s...\n", objective)
	start := time.Now()

	res, err := optim.Loading(context.Background(), m, flow, prob)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	fmt.Printf("completed in %v\n\n", elapsed)

	fmt.Printf("status:      %s\n", res.Status)
	fmt.Printf("converged:   %v\n", res.Converged)
	fmt.Printf("feasible:    %v\n", res.Feasible)
	fmt.Printf("iterations:  %d\n", res.Iterations)
	fmt.Printf("evaluations: %d\n", res.Evaluations)
	fmt.Printf("thrust:      %.4f N\n", res.Thrust)
	fmt.Printf("power:       %.4f W\n", res.Power)
	fmt.Print("coeffs:     ")
	for _, v := range res.Coeffs {
		fmt.Printf(" %.4f", v)
	}
	fmt.Println()

	if save {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveOptimization(m.Geometry(), flow, res)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}

	m, err := buildModel()
	if err != nil {
		return err
	}
	c, err := loadingCoeffs()
	if err != nil {
		return err
	}
	ds, err := validate.LoadCSV(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("loaded %d measurement points\n\n", ds.Len())

	cmp, err := validate.Compare(m, c, ds, rho)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tRMSE\tMAE\tR2")
	fmt.Fprintf(w, "thrust\t%.6f\t%.6f\t%.4f\n", cmp.Thrust.RMSE, cmp.Thrust.MAE, cmp.Thrust.R2)
	fmt.Fprintf(w, "torque\t%.6f\t%.6f\t%.4f\n", cmp.Torque.RMSE, cmp.Torque.MAE, cmp.Torque.R2)
	if cmp.CT != nil {
		fmt.Fprintf(w, "ct\t%.6f\t%.6f\t%.4f\n", cmp.CT.RMSE, cmp.CT.MAE, cmp.CT.R2)
	}
	if cmp.CP != nil {
		fmt.Fprintf(w, "cp\t%.6f\t%.6f\t%.4f\n", cmp.CP.RMSE, cmp.CP.MAE, cmp.CP.R2)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tDIAMETER\tBLADES\tVELOCITY\tPOINTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3f\t%d\t%.1f\t%.0f\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Geometry.Diameter,
			run.Geometry.Blades,
			run.Flow.Velocity,
			run.Summary["points"],
		)
	}

	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	points, err := st.LoadPoints(runID)
	if err != nil {
		points = nil // optimization runs carry no points file
	}

	if asSVG {
		if outFile != "" {
			return export.WriteSweepSVG(outFile, points, 640, 360)
		}
		svg := export.SweepSVG(points, 640, 360)
		if svg == "" {
			return export.ErrNoData
		}
		fmt.Println(svg)
		return nil
	}

	if outFile != "" {
		return store.ExportJSON(outFile, meta, points)
	}
	return store.ExportJSONStdout(meta, points)
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("kind: %s\n", meta.Kind)

	if what == "loading" || what == "induced" {
		return plotRadial(cmd, meta)
	}

	points, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}
	if points.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}
	fmt.Printf("samples: %d\n\n", points.Len())

	series := []struct {
		data    []float64
		caption string
	}{
		{points.Thrust, "thrust (N) vs rpm"},
		{points.Power, "power (W) vs rpm"},
		{points.Eta, "efficiency vs rpm"},
		{points.CT, "ct vs rpm"},
		{points.CP, "cp vs rpm"},
	}
	for _, s := range series {
		fmt.Println(viz.SweepPlot(s.data, s.caption))
		fmt.Println()
	}

	return nil
}

// plotRadial re-evaluates the stored run and plots a radial distribution.
func plotRadial(cmd *cobra.Command, meta *store.RunMetadata) error {
	geom, err := rotor.NewGeometry(meta.Geometry.Diameter, meta.Geometry.Blades, meta.Geometry.HubRatio)
	if err != nil {
		return err
	}
	m, err := disk.New(geom)
	if err != nil {
		return err
	}

	r := meta.Flow.RPM
	if r == 0 || cmd.Flags().Changed("rpm") {
		r = rpm // sweep runs span many speeds, so pick one
	}
	flow, err := rotor.NewFlowConditions(meta.Flow.Velocity, r, meta.Flow.Rho)
	if err != nil {
		return err
	}

	perf, err := m.ComputePerformance(meta.Coeffs, flow)
	if err != nil {
		return err
	}

	fmt.Printf("rpm: %.0f\n\n", r)
	if what == "induced" {
		fmt.Println(viz.RadialPlot(perf.Induced, "induced velocity (m/s), hub to tip"))
		return nil
	}
	fmt.Println(viz.RadialPlot(perf.Loading, "loading dT/dr (N/m), hub to tip"))
	return nil
}
