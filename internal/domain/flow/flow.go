// Package flow holds the pure arithmetic that turns a building's configuration
// and observed input rates into output rates. Every function here is free of
// side effects; ratios stay in floating point and only final rates are rounded.
package flow

import (
	"math"

	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/pkg/utils"
)

const (
	// MinSpeed and MaxSpeed bound the overclock percentage
	MinSpeed     = 0.0
	MaxSpeed     = 250.0
	DefaultSpeed = 100.0

	// powerExponent shapes the overclock power curve
	powerExponent = 1.321928
)

// Round rounds a rate to the nearest whole unit, halves away from zero.
// Rates are never negative, so this is "half rounds up".
func Round(rate float64) float64 {
	return math.Round(rate)
}

// ClampSpeed bounds an overclock percentage to [MinSpeed, MaxSpeed]
func ClampSpeed(speed float64) float64 {
	if math.IsNaN(speed) {
		return MinSpeed
	}
	return utils.Clamp(speed, MinSpeed, MaxSpeed)
}

// AmplifierFactor returns the output multiplier for occupied amplifier slots.
// A fully occupied building doubles its output; a building without slots is
// never amplified.
func AmplifierFactor(occupied, slots int) float64 {
	if slots <= 0 || occupied <= 0 {
		return 1
	}
	if occupied > slots {
		occupied = slots
	}
	return 1 + float64(occupied)/float64(slots)
}

// ThroughputFactor returns the fraction (0..1) of nominal throughput a recipe
// can sustain given the rates observed on its input ports.
//
// amounts holds the recipe's per-cycle amount for each input port (zero for
// ports the recipe does not use) and actual the per-minute rate observed on
// each port. A required port reading exactly zero starves the building.
func ThroughputFactor(duration float64, amounts, actual []float64) float64 {
	factor := 1.0
	for port, amount := range amounts {
		if amount <= 0 {
			continue
		}
		var rate float64
		if port < len(actual) {
			rate = actual[port]
		}
		if rate <= 0 {
			return 0
		}
		perCycle := rate * (duration / 60)
		factor = math.Min(factor, math.Min(1, perCycle/amount))
	}
	return factor
}

// RecipeOutputs computes the realized output rate of every output port.
// A nil recipe yields zero on every port of the given count.
func RecipeOutputs(recipe *catalog.Recipe, ports int, actual []float64, speed, amplifier float64) []float64 {
	outputs := make([]float64, ports)
	if recipe == nil || recipe.Duration <= 0 {
		return outputs
	}
	factor := ThroughputFactor(recipe.Duration, recipe.InputAmounts(), actual)
	return scaleOutputs(recipe, outputs, factor, speed, amplifier)
}

// MaxOutputs computes the nominal output rate of every output port when all
// inputs are fully supplied
func MaxOutputs(recipe *catalog.Recipe, ports int, speed, amplifier float64) []float64 {
	outputs := make([]float64, ports)
	if recipe == nil || recipe.Duration <= 0 {
		return outputs
	}
	return scaleOutputs(recipe, outputs, 1, speed, amplifier)
}

// MaxInputs computes the rate each input port consumes at full throughput.
// Amplifiers never raise consumption.
func MaxInputs(recipe *catalog.Recipe, ports int, speed float64) []float64 {
	inputs := make([]float64, ports)
	if recipe == nil || recipe.Duration <= 0 {
		return inputs
	}
	for port, amount := range recipe.InputAmounts() {
		if port < ports {
			inputs[port] = Round(recipe.CyclesPerMinute() * amount * speed / 100)
		}
	}
	return inputs
}

func scaleOutputs(recipe *catalog.Recipe, outputs []float64, factor, speed, amplifier float64) []float64 {
	perMinute := recipe.CyclesPerMinute()
	for port, amount := range recipe.OutputAmounts() {
		if port >= len(outputs) {
			break
		}
		nominal := perMinute * factor * amount
		outputs[port] = Round(nominal * (speed / 100) * amplifier)
	}
	return outputs
}

// ExtractorOutput computes the output of a building that pulls resources out
// of the ground. capacity is the rate limit of the attached belt or pipe; a
// nil capacity means no transport is assigned and nothing leaves the building.
func ExtractorOutput(baseRate float64, purity catalog.Purity, speed float64, capacity *float64) float64 {
	if capacity == nil {
		return 0
	}
	rate := purity.Multiplier() * baseRate * (speed / 100)
	return Round(math.Min(rate, *capacity))
}

// Split divides a rate evenly across the connected output ports
func Split(rate float64, connected int) float64 {
	if connected <= 0 {
		return 0
	}
	return Round(rate / float64(connected))
}

// MergeResult is the combined flow at a merge point
type MergeResult struct {
	Resource catalog.Resource
	Speed    float64
	// Valid is false when inputs of different resources met at the merge
	// point. Speed then only counts inputs of the first resource seen.
	Valid bool
	// Empty is true when no input carried any resource
	Empty bool
}

// Merge sums the inputs that share the resource of the first non-empty input
func Merge(inputs []*catalog.Input) MergeResult {
	result := MergeResult{Valid: true, Empty: true}
	for _, in := range inputs {
		if in == nil || in.Resource.IsZero() {
			continue
		}
		if result.Empty {
			result.Resource = in.Resource
			result.Empty = false
		}
		if in.Resource != result.Resource {
			result.Valid = false
			continue
		}
		result.Speed += in.Speed
	}
	return result
}

// PowerDraw estimates the power draw in MW of a building running at speed
// with the given amplifier factor
func PowerDraw(basePowerMW, speed, amplifier float64) float64 {
	if basePowerMW <= 0 || speed <= 0 {
		return 0
	}
	return basePowerMW * math.Pow(speed/100, powerExponent) * amplifier * amplifier
}
