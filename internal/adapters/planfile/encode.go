package planfile

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
)

// Encode renders a document as a plan file. Variables are not preserved;
// every value is written as a literal.
func Encode(doc *plan.Document) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("name", cty.StringVal(doc.Name))
	if doc.Description != "" {
		root.SetAttributeValue("description", cty.StringVal(doc.Description))
	}

	for _, b := range doc.Buildings {
		root.AppendNewline()
		body := root.AppendNewBlock("building", []string{b.ID}).Body()
		body.SetAttributeValue("kind", cty.StringVal(b.Kind))
		setString(body, "recipe", b.Recipe)
		if b.Speed != nil {
			body.SetAttributeValue("speed", cty.NumberFloatVal(*b.Speed))
		}
		if b.Amplifiers > 0 {
			body.SetAttributeValue("amplifiers", cty.NumberIntVal(int64(b.Amplifiers)))
		}
		setString(body, "resource", b.Resource)
		setString(body, "purity", b.Purity)
		setString(body, "tier", b.Tier)
		setString(body, "belt", b.Belt)
		setString(body, "pipe", b.Pipe)
	}

	for _, c := range doc.Connections {
		root.AppendNewline()
		body := root.AppendNewBlock("connection", nil).Body()
		body.SetAttributeValue("from", cty.StringVal(c.From))
		body.SetAttributeValue("output", cty.NumberIntVal(int64(c.Output)))
		body.SetAttributeValue("to", cty.StringVal(c.To))
		body.SetAttributeValue("input", cty.NumberIntVal(int64(c.Input)))
	}

	return f.Bytes()
}

// Write encodes doc into the file at path
func Write(path string, doc *plan.Document) error {
	if err := os.WriteFile(path, Encode(doc), 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}

func setString(body *hclwrite.Body, name, value string) {
	if value != "" {
		body.SetAttributeValue(name, cty.StringVal(value))
	}
}
