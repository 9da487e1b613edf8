package settle

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"particles/internal/core"
	"particles/internal/sims/sand"
	"particles/internal/telemetry"
)

// Job describes one settle run.
type Job struct {
	Seed      int64
	Overrides map[string]string
	// RainTicks is how many ticks sand is dropped along the top row.
	RainTicks int
	// MaxTicks caps the run; a world still moving at the cap is unsettled.
	MaxTicks int
}

// Result is the outcome of one Job.
type Result struct {
	Seed      int64
	Settled   bool
	Ticks     uint64
	Moves     int
	Particles map[sand.Material]int
	Err       error
}

// quietTicks is how many consecutive motionless ticks count as settled. A
// grain stopped by a neighbour that then fell away has zero velocity and
// sits out one tick before it accelerates again.
const quietTicks = 2

// Build constructs the world for job through the registry.
func Build(sim string, job Job) (*sand.World, error) {
	factory, ok := core.Sims()[sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", sim)
	}
	cfg := make(map[string]string, len(job.Overrides)+1)
	for k, v := range job.Overrides {
		cfg[k] = v
	}
	cfg["seed"] = strconv.FormatInt(job.Seed, 10)
	w, ok := factory(cfg).(*sand.World)
	if !ok {
		return nil, fmt.Errorf("sim %q is not a sand world", sim)
	}
	return w, nil
}

// Run builds a world, rains sand onto it and ticks it until it stops
// moving.
func Run(sim string, job Job, metrics *telemetry.Metrics) Result {
	w, err := Build(sim, job)
	if err != nil {
		return Result{Seed: job.Seed, Err: err}
	}
	return Drive(w, job, metrics)
}

// Drive rains sand along the top row of w for job.RainTicks ticks, then
// ticks until the world is quiet or the cap is reached. A nil metrics
// disables recording.
func Drive(w *sand.World, job Job, metrics *telemetry.Metrics) Result {
	res := Result{Seed: job.Seed}
	rng := core.NewRNG(job.Seed)
	limit := w.State().Grid.Limit()
	quiet := 0
	for int(w.Ticks()) < job.MaxTicks {
		if int(w.Ticks()) < job.RainTicks {
			x := rng.IntN(2*limit+1) - limit
			ps := w.PaintAt(float64(x), float64(limit))
			if metrics != nil {
				metrics.ObservePaint(ps)
			}
		}
		st := w.Tick()
		res.Moves += st.GravityMoves + st.FluidMoves
		if metrics != nil {
			metrics.ObserveMoves(st)
		}
		if int(w.Ticks()) <= job.RainTicks || !st.Settled() {
			quiet = 0
			continue
		}
		if quiet++; quiet >= quietTicks {
			res.Settled = true
			break
		}
	}
	res.Ticks = w.Ticks()
	res.Particles = w.State().Particles.CountByMaterial()
	if res.Settled && metrics != nil {
		metrics.ObserveSettle(res.Ticks, res.Particles)
	}
	return res
}

// Pool runs jobs on workers goroutines and returns the results ordered by
// seed.
func Pool(sim string, jobs []Job, workers int, metrics *telemetry.Metrics) []Result {
	if workers <= 0 {
		workers = 1
	}
	queue := make(chan Job)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				results <- Run(sim, job, metrics)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, job := range jobs {
			queue <- job
		}
		close(queue)
	}()

	all := make([]Result, 0, len(jobs))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all
}
