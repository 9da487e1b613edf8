package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"runtime"
	"time"

	"particles/internal/app"
	"particles/internal/core"
	"particles/internal/render"
	"particles/internal/settle"
	"particles/internal/sims/sand"
	"particles/internal/telemetry"
)

func main() {
	sim := flag.String("sim", "sand", "registered simulation to settle")
	seeds := flag.Int("seeds", 8, "number of seeds to run, starting at -first")
	first := flag.Int64("first", 1, "first seed")
	rain := flag.Int("rain", 200, "ticks of sand rain")
	maxTicks := flag.Int("max-ticks", 5000, "tick cap per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	snapshot := flag.String("png", "", "write the settled world of the first seed to this PNG file")
	overrides := app.Overrides{"scenario": sand.ScenarioDunes}
	flag.Var(overrides, "set", "override a world setting as key=value (repeatable)")
	flag.Parse()

	if _, ok := core.Sims()[*sim]; !ok {
		log.Fatalf("unknown sim %q (available: %v)", *sim, core.Names())
	}

	jobs := make([]settle.Job, 0, *seeds)
	for i := 0; i < *seeds; i++ {
		jobs = append(jobs, settle.Job{
			Seed:      *first + int64(i),
			Overrides: overrides,
			RainTicks: *rain,
			MaxTicks:  *maxTicks,
		})
	}

	fmt.Printf("Settling %d seeds of %q (%d workers, %d rain ticks, cap %d)\n", len(jobs), *sim, *workers, *rain, *maxTicks)
	metrics := telemetry.New()
	start := time.Now()
	results := settle.Pool(*sim, jobs, *workers, metrics)

	unsettled := 0
	for _, res := range results {
		if res.Err != nil {
			log.Fatalf("seed %d: %v", res.Seed, res.Err)
		}
		status := "settled"
		if !res.Settled {
			status = "still moving"
			unsettled++
		}
		fmt.Printf("seed %-6d %-12s ticks=%-6d moves=%-8d sand=%-5d water=%-5d stone=%d\n",
			res.Seed, status, res.Ticks, res.Moves,
			res.Particles[sand.Sand], res.Particles[sand.Water], res.Particles[sand.Stone])
	}
	fmt.Printf("Finished in %s, %d unsettled\n\n", time.Since(start).Round(time.Millisecond), unsettled)

	if err := metrics.WriteText(os.Stdout); err != nil {
		log.Fatal(err)
	}

	if *snapshot != "" && len(jobs) > 0 {
		if err := writeSnapshot(*sim, jobs[0], *snapshot); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		log.Printf("wrote %s", *snapshot)
	}
}

// writeSnapshot replays job on a fresh world and saves its final display.
func writeSnapshot(sim string, job settle.Job, path string) error {
	w, err := settle.Build(sim, job)
	if err != nil {
		return err
	}
	settle.Drive(w, job, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, render.Snapshot(w.Cells(), w.Size(), w.Palette()))
}
