package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/andrescamacho/factoryplan-go/internal/application/planner"
)

// FlowFormatter renders a flow report as a tree of buildings and their ports
type FlowFormatter struct {
	useColors bool
}

// NewFlowFormatter creates a new flow formatter
func NewFlowFormatter(useColors bool) *FlowFormatter {
	return &FlowFormatter{useColors: useColors}
}

// FormatReport renders every building followed by a summary
func (f *FlowFormatter) FormatReport(report *planner.FlowReport) string {
	if report == nil || len(report.Buildings) == 0 {
		return "(empty plan)\n"
	}

	var builder strings.Builder
	for _, b := range report.Buildings {
		f.formatBuilding(&builder, b)
	}
	builder.WriteString("\n")
	builder.WriteString(f.FormatSummary(report))
	return builder.String()
}

func (f *FlowFormatter) formatBuilding(builder *strings.Builder, b planner.BuildingReport) {
	header := fmt.Sprintf("%s %s (%s)", f.statusIcon(b), b.ID, b.Name)
	if b.Recipe != "" {
		header += fmt.Sprintf(" [%s%s%s]", f.color(colorCyan), b.Recipe, f.colorReset())
	}
	if b.Speed > 0 {
		header += fmt.Sprintf(" @ %s%%", formatRate(b.Speed))
	}
	if b.Amplifiers > 0 {
		header += fmt.Sprintf(" x%d amp", b.Amplifiers)
	}
	builder.WriteString(header + "\n")

	lines := make([]string, 0, len(b.Inputs)+len(b.Outputs)+1)
	for _, in := range b.Inputs {
		lines = append(lines, "in  "+f.portText(in))
	}
	for _, out := range b.Outputs {
		lines = append(lines, "out "+f.portText(out))
	}
	if b.Recipe != "" || b.PowerMW > 0 {
		lines = append(lines, fmt.Sprintf("utilization %.0f%%, power %s MW", b.Utilization*100, formatPower(b.PowerMW)))
	}

	for i, line := range lines {
		if i == len(lines)-1 {
			builder.WriteString("└── " + line + "\n")
		} else {
			builder.WriteString("├── " + line + "\n")
		}
	}
}

func (f *FlowFormatter) portText(p planner.PortFlow) string {
	resource := "-"
	if !p.Resource.IsZero() {
		resource = p.Resource.Name()
	}

	rate := "-"
	if p.Present {
		rate = formatRate(p.Speed) + "/min"
	}
	if p.Max > 0 {
		rate += fmt.Sprintf(" of %s", formatRate(p.Max))
	}

	text := fmt.Sprintf("%d: %s %s", p.Port, resource, rate)
	if !p.Connected {
		text += fmt.Sprintf(" %s(unconnected)%s", f.color(colorGrey), f.colorReset())
	}
	return text
}

// statusIcon marks invalid merges and starved machines
func (f *FlowFormatter) statusIcon(b planner.BuildingReport) string {
	switch {
	case !b.Valid:
		return f.color(colorRed) + "[!]" + f.colorReset()
	case b.Recipe != "" && b.Utilization == 0:
		return f.color(colorYellow) + "[-]" + f.colorReset()
	default:
		return f.color(colorGreen) + "[✓]" + f.colorReset()
	}
}

// FormatSummary creates a compact summary of the report
func (f *FlowFormatter) FormatSummary(report *planner.FlowReport) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Buildings:   %d\n", len(report.Buildings)))
	builder.WriteString(fmt.Sprintf("Total power: %s MW\n", formatPower(report.TotalPowerMW)))

	for _, id := range report.Sinks {
		b, ok := report.Building(id)
		if !ok {
			continue
		}
		for _, out := range b.Outputs {
			if out.Present && out.Speed > 0 {
				builder.WriteString(fmt.Sprintf("Produces:    %s/min %s (%s)\n", formatRate(out.Speed), out.Resource.Name(), id))
			}
		}
	}
	if len(report.Invalid) > 0 {
		builder.WriteString(fmt.Sprintf("%sMixed inputs: %s%s\n", f.color(colorRed), strings.Join(report.Invalid, ", "), f.colorReset()))
	}
	if len(report.Starved) > 0 {
		builder.WriteString(fmt.Sprintf("%sIdle:        %s%s\n", f.color(colorYellow), strings.Join(report.Starved, ", "), f.colorReset()))
	}
	return builder.String()
}

type jsonPort struct {
	Port      int     `json:"port"`
	Resource  string  `json:"resource,omitempty"`
	Speed     float64 `json:"speed"`
	Max       float64 `json:"max,omitempty"`
	Connected bool    `json:"connected"`
}

type jsonBuilding struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	Recipe      string     `json:"recipe,omitempty"`
	Speed       float64    `json:"speed,omitempty"`
	Amplifiers  int        `json:"amplifiers,omitempty"`
	Inputs      []jsonPort `json:"inputs"`
	Outputs     []jsonPort `json:"outputs"`
	Utilization float64    `json:"utilization"`
	Valid       bool       `json:"valid"`
	PowerMW     float64    `json:"power_mw"`
}

type jsonReport struct {
	Buildings    []jsonBuilding `json:"buildings"`
	TotalPowerMW float64        `json:"total_power_mw"`
	Sinks        []string       `json:"sinks"`
	Invalid      []string       `json:"invalid"`
	Starved      []string       `json:"starved"`
}

// FormatJSON renders the report for scripts
func (f *FlowFormatter) FormatJSON(report *planner.FlowReport) (string, error) {
	out := jsonReport{
		TotalPowerMW: report.TotalPowerMW,
		Sinks:        nonNil(report.Sinks),
		Invalid:      nonNil(report.Invalid),
		Starved:      nonNil(report.Starved),
		Buildings:    make([]jsonBuilding, 0, len(report.Buildings)),
	}
	for _, b := range report.Buildings {
		out.Buildings = append(out.Buildings, jsonBuilding{
			ID:          b.ID,
			Kind:        string(b.Kind),
			Recipe:      b.Recipe,
			Speed:       b.Speed,
			Amplifiers:  b.Amplifiers,
			Inputs:      toJSONPorts(b.Inputs),
			Outputs:     toJSONPorts(b.Outputs),
			Utilization: b.Utilization,
			Valid:       b.Valid,
			PowerMW:     b.PowerMW,
		})
	}

	bytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(bytes) + "\n", nil
}

func toJSONPorts(ports []planner.PortFlow) []jsonPort {
	out := make([]jsonPort, 0, len(ports))
	for _, p := range ports {
		jp := jsonPort{Port: p.Port, Speed: p.Speed, Max: p.Max, Connected: p.Connected}
		if !p.Resource.IsZero() {
			jp.Resource = p.Resource.ID()
		}
		out = append(out, jp)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

const (
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGrey   = "\033[90m"
)

func (f *FlowFormatter) color(code string) string {
	if !f.useColors {
		return ""
	}
	return code
}

// colorReset returns ANSI reset code
func (f *FlowFormatter) colorReset() string {
	if !f.useColors {
		return ""
	}
	return "\033[0m"
}

// formatRate drops the fraction from whole rates
func formatRate(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func formatPower(mw float64) string {
	return fmt.Sprintf("%.1f", mw)
}
