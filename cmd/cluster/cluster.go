package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/banshee-data/cluster.report/internal/agglo"
	"github.com/banshee-data/cluster.report/internal/config"
	"github.com/banshee-data/cluster.report/internal/db"
	"github.com/banshee-data/cluster.report/internal/monitor"
)

var (
	methodAvg  = flag.Bool("avg", false, "Use average linkage (default)")
	methodMin  = flag.Bool("min", false, "Use nearest-neighbor (single) linkage")
	methodMax  = flag.Bool("max", false, "Use farthest-neighbor (complete) linkage")
	configPath = flag.String("config", "", "Optional tuning config JSON file")
	dbPath     = flag.String("db", "", "Optional SQLite path; persists the run when set")
	plotPNG    = flag.String("plot-png", "", "Optional PNG scatter plot output path")
	plotHTML   = flag.String("plot-html", "", "Optional HTML scatter chart output path")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage: %s [flags] FILE [N] [--avg|--min|--max]\n\n"+
			"Agglomeratively clusters the points in FILE down to N clusters\n"+
			"(default 1) and prints the result. Method flags may also trail\n"+
			"the positional arguments.\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
}

// splitArgs partitions the raw arguments after flag parsing into positional
// arguments and trailing method selectors. The original tool accepted the
// method flag after FILE and N; stdlib flag stops at the first positional,
// so trailing --avg/--min/--max tokens are picked back up here.
func splitArgs(args []string) (positionals, methods []string, err error) {
	for _, arg := range args {
		switch arg {
		case "--avg", "-avg":
			methods = append(methods, "avg")
		case "--min", "-min":
			methods = append(methods, "min")
		case "--max", "-max":
			methods = append(methods, "max")
		default:
			if len(arg) > 0 && arg[0] == '-' {
				return nil, nil, fmt.Errorf("unknown flag %q", arg)
			}
			positionals = append(positionals, arg)
		}
	}
	return positionals, methods, nil
}

// resolveMethod combines flag-style and trailing method selectors with the
// configured default. Selecting more than one distinct method is an error.
func resolveMethod(cfg *config.TuningConfig, trailing []string) (agglo.Method, error) {
	selected := append([]string(nil), trailing...)
	if *methodAvg {
		selected = append(selected, "avg")
	}
	if *methodMin {
		selected = append(selected, "min")
	}
	if *methodMax {
		selected = append(selected, "max")
	}

	distinct := make(map[string]bool)
	for _, name := range selected {
		distinct[name] = true
	}
	if len(distinct) > 1 {
		return agglo.Average, fmt.Errorf("conflicting method flags: %v", selected)
	}

	name := cfg.GetDefaultMethod()
	if len(selected) > 0 {
		name = selected[0]
	}
	return agglo.ParseMethod(name)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	positionals, trailing, err := splitArgs(flag.Args())
	if err != nil {
		log.Fatalf("invalid arguments: %v", err)
	}
	if len(positionals) < 1 || len(positionals) > 2 {
		usage()
		os.Exit(2)
	}

	sourceFile := positionals[0]
	target := agglo.DefaultTargetClusters
	if len(positionals) == 2 {
		target, err = strconv.Atoi(positionals[1])
		if err != nil {
			log.Fatalf("invalid cluster count %q: %v", positionals[1], err)
		}
	}

	cfg := config.EmptyTuningConfig()
	if *configPath != "" {
		cfg, err = config.LoadTuningConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	method, err := resolveMethod(cfg, trailing)
	if err != nil {
		log.Fatalf("failed to select linkage method: %v", err)
	}

	coll, err := agglo.LoadPoints(sourceFile)
	if err != nil {
		log.Fatalf("failed to load points: %v", err)
	}
	pointCount := coll.TotalPoints()

	start := time.Now()
	iterations, err := agglo.NewAgglomerator(method, target).Reduce(coll)
	if err != nil {
		log.Fatalf("clustering failed: %v", err)
	}
	duration := time.Since(start)

	if err := agglo.WriteClusters(os.Stdout, coll); err != nil {
		log.Fatalf("failed to write clusters: %v", err)
	}

	if *dbPath != "" {
		if err := persistRun(coll, sourceFile, pointCount, target, method, iterations, duration, cfg); err != nil {
			log.Fatalf("failed to persist run: %v", err)
		}
	}

	if *plotPNG != "" {
		if err := monitor.WriteScatterPNG(*plotPNG, coll, cfg.GetPlotWidthPx(), cfg.GetPlotHeightPx()); err != nil {
			log.Fatalf("failed to write PNG plot: %v", err)
		}
		log.Printf("wrote scatter plot to %s", *plotPNG)
	}

	if *plotHTML != "" {
		if err := monitor.WriteScatterHTML(*plotHTML, coll, cfg.GetPlotWidthPx(), cfg.GetPlotHeightPx()); err != nil {
			log.Fatalf("failed to write HTML chart: %v", err)
		}
		log.Printf("wrote scatter chart to %s", *plotHTML)
	}
}

// persistRun records the finished run and its final clusters in SQLite.
func persistRun(coll *agglo.Collection, sourceFile string, pointCount, target int,
	method agglo.Method, iterations int, duration time.Duration, cfg *config.TuningConfig) error {

	database, err := db.Open(*dbPath, cfg.GetDBBusyTimeoutMs())
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.MigrateUp(); err != nil {
		return err
	}

	run := &db.Run{
		SourceFile:     sourceFile,
		PointCount:     pointCount,
		TargetClusters: target,
		Method:         method.String(),
		Iterations:     iterations,
		DurationNanos:  duration.Nanoseconds(),
	}

	clusters := make([]*db.RunCluster, 0, coll.Len())
	for i := 0; i < coll.Len(); i++ {
		cluster := coll.Cluster(i)
		s := agglo.Summarize(cluster)
		clusters = append(clusters, &db.RunCluster{
			ClusterIndex: i,
			Size:         s.Size,
			CentroidX:    s.CentroidX,
			CentroidY:    s.CentroidY,
			MinX:         s.MinX,
			MaxX:         s.MaxX,
			MinY:         s.MinY,
			MaxY:         s.MaxY,
			RadialSpread: s.RadialSpread,
			Members:      agglo.FormatCluster(cluster),
		})
	}

	store := db.NewRunStore(database)
	if err := store.InsertRun(run, clusters); err != nil {
		return err
	}

	log.Printf("recorded run %s (%d clusters, %d iterations, %v)",
		run.RunID, coll.Len(), iterations, duration)
	return nil
}
