package telemetry

import (
	"fmt"
	"io"

	"particles/internal/sims/sand"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "sand"

// Metrics holds the collectors fed by the tick driver and the brush.
type Metrics struct {
	reg *prometheus.Registry

	ticks     prometheus.Counter
	moves     *prometheus.CounterVec
	particles *prometheus.GaugeVec
	painted   *prometheus.CounterVec
	settle    prometheus.Histogram
	remaining *prometheus.CounterVec
}

// New creates the collectors and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Ticks run.",
		}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Particle moves by step.",
		}, []string{"step"}),
		particles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "particles",
			Help:      "Live particles by material after the last tick.",
		}, []string{"material"}),
		painted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "brush_cells_total",
			Help:      "Cells touched by the brush by outcome.",
		}, []string{"outcome"}),
		settle: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settle_ticks",
			Help:      "Ticks until a world stopped moving.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 10),
		}),
		remaining: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settled_particles_total",
			Help:      "Particles left in settled worlds, summed over runs.",
		}, []string{"material"}),
	}
	m.reg.MustRegister(m.ticks, m.moves, m.particles, m.painted, m.settle, m.remaining)
	return m
}

// Registry exposes the private registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Observe records one tick of a single interactive world, including the
// live particle gauge.
func (m *Metrics) Observe(st sand.TickStats) {
	m.ObserveMoves(st)
	for _, mat := range particleMaterials() {
		m.particles.WithLabelValues(mat.String()).Set(float64(st.Particles[mat]))
	}
}

// ObserveMoves records the tick and move counters only. Runs that share
// one Metrics across worlds use it so the gauge is not overwritten by
// whichever world ticked last.
func (m *Metrics) ObserveMoves(st sand.TickStats) {
	m.ticks.Inc()
	m.moves.WithLabelValues("gravity").Add(float64(st.GravityMoves))
	m.moves.WithLabelValues("fluid").Add(float64(st.FluidMoves))
}

func particleMaterials() []sand.Material {
	var out []sand.Material
	for _, mat := range sand.Materials() {
		if mat.Kind() == sand.KindEmpty || mat.Kind() == sand.KindImmovable {
			continue
		}
		out = append(out, mat)
	}
	return out
}

// ObservePaint records one brush application.
func (m *Metrics) ObservePaint(ps sand.PaintStats) {
	m.painted.WithLabelValues("placed").Add(float64(ps.Placed))
	m.painted.WithLabelValues("erased").Add(float64(ps.Erased))
	m.painted.WithLabelValues("skipped").Add(float64(ps.Skipped))
}

// ObserveSettle records how many ticks a world needed to come to rest and
// adds its remaining particles to the batch totals.
func (m *Metrics) ObserveSettle(ticks uint64, particles map[sand.Material]int) {
	m.settle.Observe(float64(ticks))
	for _, mat := range particleMaterials() {
		m.remaining.WithLabelValues(mat.String()).Add(float64(particles[mat]))
	}
}

// WriteText writes every gathered family in the text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, fam := range families {
		if _, err := expfmt.MetricFamilyToText(w, fam); err != nil {
			return fmt.Errorf("write %s: %w", fam.GetName(), err)
		}
	}
	return nil
}
