// Package planfile reads and writes plan documents as HCL.
//
//	variable "speed" {
//	  default = 150
//	}
//
//	name = "iron plates"
//
//	building "miner" {
//	  kind     = "miner"
//	  resource = "iron_ore"
//	  belt     = "mk2"
//	  speed    = var.speed
//	}
//
//	connection {
//	  from = "miner"
//	  to   = "smelter"
//	}
package planfile

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
)

// variableFile is the first decoding pass: variables only, everything else
// is kept for the second pass once var.* can be evaluated
type variableFile struct {
	Variables []*variableBlock `hcl:"variable,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

type variableBlock struct {
	Name        string    `hcl:"name,label"`
	Default     cty.Value `hcl:"default,optional"`
	Description string    `hcl:"description,optional"`
}

type planFile struct {
	Name        string             `hcl:"name,optional"`
	Description string             `hcl:"description,optional"`
	Buildings   []*buildingBlock   `hcl:"building,block"`
	Connections []*connectionBlock `hcl:"connection,block"`
}

type buildingBlock struct {
	ID         string   `hcl:"id,label"`
	Kind       string   `hcl:"kind"`
	Recipe     string   `hcl:"recipe,optional"`
	Speed      *float64 `hcl:"speed,optional"`
	Amplifiers int      `hcl:"amplifiers,optional"`
	Resource   string   `hcl:"resource,optional"`
	Purity     string   `hcl:"purity,optional"`
	Tier       string   `hcl:"tier,optional"`
	Belt       string   `hcl:"belt,optional"`
	Pipe       string   `hcl:"pipe,optional"`
}

type connectionBlock struct {
	From   string `hcl:"from"`
	Output int    `hcl:"output,optional"`
	To     string `hcl:"to"`
	Input  int    `hcl:"input,optional"`
}

// Load parses the plan file at path. overrides replace variable defaults and
// are converted to the type of the default.
func Load(path string, overrides map[string]string) (*plan.Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", path, diags)
	}
	return decode(file, path, overrides)
}

// Parse decodes plan file source. filename is used in diagnostics and as the
// plan name when the file sets none.
func Parse(src []byte, filename string, overrides map[string]string) (*plan.Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", filename, diags)
	}
	return decode(file, filename, overrides)
}

func decode(file *hcl.File, filename string, overrides map[string]string) (*plan.Document, error) {
	var vf variableFile
	if diags := gohcl.DecodeBody(file.Body, nil, &vf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode variables in %s: %w", filename, diags)
	}

	evalCtx, err := evalContext(vf.Variables, overrides)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	var pf planFile
	if diags := gohcl.DecodeBody(vf.Remain, evalCtx, &pf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode plan file %s: %w", filename, diags)
	}

	doc := &plan.Document{
		Name:        pf.Name,
		Description: pf.Description,
		Buildings:   make([]plan.BuildingSpec, 0, len(pf.Buildings)),
		Connections: make([]plan.ConnectionSpec, 0, len(pf.Connections)),
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	for _, b := range pf.Buildings {
		doc.Buildings = append(doc.Buildings, plan.BuildingSpec{
			ID:         b.ID,
			Kind:       b.Kind,
			Recipe:     b.Recipe,
			Speed:      b.Speed,
			Amplifiers: b.Amplifiers,
			Resource:   b.Resource,
			Purity:     b.Purity,
			Tier:       b.Tier,
			Belt:       b.Belt,
			Pipe:       b.Pipe,
		})
	}
	for _, c := range pf.Connections {
		doc.Connections = append(doc.Connections, plan.ConnectionSpec{
			From:   c.From,
			Output: c.Output,
			To:     c.To,
			Input:  c.Input,
		})
	}
	return doc, nil
}

// evalContext exposes every variable as var.<name>
func evalContext(variables []*variableBlock, overrides map[string]string) (*hcl.EvalContext, error) {
	declared := make(map[string]bool, len(variables))
	values := make(map[string]cty.Value, len(variables))

	for _, v := range variables {
		if declared[v.Name] {
			return nil, fmt.Errorf("variable %q is declared twice", v.Name)
		}
		declared[v.Name] = true

		raw, overridden := overrides[v.Name]
		switch {
		case overridden:
			val, err := convertOverride(v, raw)
			if err != nil {
				return nil, err
			}
			values[v.Name] = val
		case v.Default.IsNull():
			return nil, fmt.Errorf("variable %q has no default and no value was given", v.Name)
		default:
			values[v.Name] = v.Default
		}
	}

	var unknown []string
	for name := range overrides {
		if !declared[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("values given for undeclared variables: %s", strings.Join(unknown, ", "))
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": cty.ObjectVal(values)},
	}, nil
}

func convertOverride(v *variableBlock, raw string) (cty.Value, error) {
	val := cty.StringVal(raw)
	if v.Default.IsNull() {
		return val, nil
	}
	converted, err := convert.Convert(val, v.Default.Type())
	if err != nil {
		return cty.NilVal, fmt.Errorf("variable %q: cannot use %q as %s: %w", v.Name, raw, v.Default.Type().FriendlyName(), err)
	}
	return converted, nil
}

// ParseOverrides turns "name=value" pairs into an override map
func ParseOverrides(pairs []string) (map[string]string, error) {
	overrides := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid variable %q, expected name=value", pair)
		}
		overrides[strings.TrimSpace(name)] = value
	}
	return overrides, nil
}
