package settle

import (
	"bytes"
	"fmt"
	"testing"

	"particles/internal/core"
	"particles/internal/sims/sand"
	"particles/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallJob(seed int64) Job {
	return Job{
		Seed:      seed,
		Overrides: map[string]string{"boundary": "8", "scenario": sand.ScenarioDunes},
		RainTicks: 12,
		MaxTicks:  600,
	}
}

func TestRunSettles(t *testing.T) {
	res := Run("sand", smallJob(3), nil)
	require.NoError(t, res.Err)
	assert.True(t, res.Settled)
	assert.Greater(t, res.Ticks, uint64(12))
	assert.Less(t, res.Ticks, uint64(600))

	grains := res.Particles[sand.Sand]
	assert.Greater(t, grains, 0)
	assert.LessOrEqual(t, grains, 12, "one small brush stroke per rain tick")
	assert.Greater(t, res.Particles[sand.Stone], 0, "dunes raise a stone ridge")
}

func TestRunIsDeterministic(t *testing.T) {
	a := Run("sand", smallJob(5), nil)
	b := Run("sand", smallJob(5), nil)
	assert.Equal(t, a, b)
}

func TestRunHitsCap(t *testing.T) {
	job := smallJob(1)
	job.MaxTicks = 5
	res := Run("sand", job, nil)
	assert.False(t, res.Settled)
	assert.Equal(t, uint64(5), res.Ticks)
}

type fakeSim struct{}

func (fakeSim) Name() string { return "fake" }
func (fakeSim) Size() core.Size { return core.Size{} }
func (fakeSim) Reset(int64) {}
func (fakeSim) Step() {}
func (fakeSim) Cells() []uint8 { return nil }

func TestRunRejectsUnknownSims(t *testing.T) {
	res := Run("no-such-sim", smallJob(1), nil)
	assert.ErrorContains(t, res.Err, "unknown sim")

	core.Register("settle-fake", func(map[string]string) core.Sim { return fakeSim{} })
	res = Run("settle-fake", smallJob(1), nil)
	assert.ErrorContains(t, res.Err, "not a sand world")
}

func TestPoolMatchesSequentialRuns(t *testing.T) {
	jobs := []Job{smallJob(4), smallJob(2), smallJob(3), smallJob(1)}
	m := telemetry.New()
	results := Pool("sand", jobs, 3, m)
	require.Len(t, results, 4)
	for i, res := range results {
		assert.Equal(t, int64(i+1), res.Seed)
		assert.Equal(t, Run("sand", smallJob(res.Seed), nil), res)
	}

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	assert.Contains(t, buf.String(), "sand_settle_ticks_count 4")
}

func TestPoolSumsParticlesInsteadOfGauging(t *testing.T) {
	jobs := []Job{smallJob(1), smallJob(2)}
	m := telemetry.New()
	results := Pool("sand", jobs, 2, m)
	sandTotal := 0
	for _, res := range results {
		require.NoError(t, res.Err)
		sandTotal += res.Particles[sand.Sand]
	}

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	out := buf.String()
	assert.NotContains(t, out, "sand_particles{", "shared runs do not set the live gauge")
	assert.Contains(t, out, fmt.Sprintf(`sand_settled_particles_total{material="sand"} %d`, sandTotal))
}
