package sand

import (
	"strconv"

	"particles/internal/core"
)

// Parameters reports the current tunables for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	phys := w.state.Physics
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("boundary", "Boundary", w.cfg.Boundary),
				int64Param("seed", "Seed", w.rng.SeedValue()),
				stringParam("scenario", "Scenario", w.cfg.Scenario),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("brush", "Brush size", int(w.state.Brush)),
				stringParam("material", "Material", w.state.Placing.String()),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				intParam("dispersion", "Water dispersion", phys.Dispersion),
				floatParam("thinning_chance", "Sand density", phys.ThinningChance),
				floatParam("terminal_velocity", "Terminal velocity", phys.TerminalVelocity),
				floatParam("gravity", "Gravity", phys.Gravity),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "brush", Label: "Brush size", Type: core.ParamTypeInt, Step: 1, Min: float64(BrushSmall), Max: float64(BrushXXLarge)},
		{Key: "dispersion", Label: "Water dispersion", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 16},
		{Key: "thinning_chance", Label: "Sand density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "terminal_velocity", Label: "Terminal velocity", Type: core.ParamTypeFloat, Step: 1, Min: 1, Max: 8},
	}
}

// SetIntParameter updates an integer tunable, clamping to its range.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "brush":
		w.state.Brush = BrushSize(clampInt(value, int(BrushSmall), int(BrushXXLarge)))
	case "dispersion":
		d := clampInt(value, 1, 16)
		w.state.Physics.Dispersion = d
		w.cfg.Params.Dispersion = d
		w.state.Particles.Each(KindFluid, func(p *Particle) { p.Dispersion = d })
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float tunable, clamping to its range.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "thinning_chance":
		v := clampFloat(value, 0, 1)
		w.state.Physics.ThinningChance = v
		w.cfg.Params.ThinningChance = v
	case "terminal_velocity":
		v := clampFloat(value, 1, 8)
		w.state.Physics.TerminalVelocity = v
		w.cfg.Params.TerminalVelocity = v
		w.state.Particles.Each(KindFalling, func(p *Particle) { w.state.clampVelocity(p) })
	default:
		return false
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
