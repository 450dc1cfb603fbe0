package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/cubecount/internal/config"
	"github.com/vk/cubecount/internal/ctxlog"
	"github.com/vk/cubecount/internal/game"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// bagFileSchema lists the top-level blocks a bag file may contain.
var bagFileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "bag"},
	},
}

// hclBag holds the raw color expressions of a `bag` block. Missing
// attributes decode to a null expression.
type hclBag struct {
	Red   hcl.Expression `hcl:"red,optional"`
	Green hcl.Expression `hcl:"green,optional"`
	Blue  hcl.Expression `hcl:"blue,optional"`
}

// Load reads the bag file at path and translates it into a config.Model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading bag file.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bag file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse bag file %s: %w", path, diags)
	}

	content, diags := file.Body.Content(bagFileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode bag file %s: %w", path, diags)
	}

	model := config.NewModel()
	block, diags := findUniqueBlock(content.Blocks, "bag")
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode bag file %s: %w", path, diags)
	}
	if block == nil {
		logger.Warn("No bag block found in file, using the default capacity.", "path", path)
		return model, nil
	}

	var parsed hclBag
	diags = gohcl.DecodeBody(block.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode bag block in %s: %w", path, diags)
	}

	capacity, diags := decodeCapacity(&parsed, model.Capacity)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid bag in %s: %w", path, diags)
	}

	model.Capacity = capacity
	model.Source = path
	logger.Debug("Bag file loaded.", "path", path, "red", capacity.Red, "green", capacity.Green, "blue", capacity.Blue)
	return model, nil
}

// decodeCapacity evaluates the bag's color expressions. Colors without an
// attribute keep the value from defaults.
func decodeCapacity(b *hclBag, defaults game.CubeSet) (game.CubeSet, hcl.Diagnostics) {
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default": capacityToCty(defaults),
		},
	}

	var diags hcl.Diagnostics
	capacity := defaults
	fields := []struct {
		color game.Color
		expr  hcl.Expression
	}{
		{game.Red, b.Red},
		{game.Green, b.Green},
		{game.Blue, b.Blue},
	}
	for _, f := range fields {
		n, set, countDiags := decodeCount(f.color.String(), f.expr, evalCtx)
		diags = append(diags, countDiags...)
		if set {
			capacity = capacity.With(f.color, n)
		}
	}
	return capacity, diags
}
