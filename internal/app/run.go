package app

import (
	"bytes"
	"context"
	"fmt"

	"github.com/vk/cubecount/internal/bag"
	"github.com/vk/cubecount/internal/config"
	"github.com/vk/cubecount/internal/ctxlog"
	"github.com/vk/cubecount/internal/fsutil"
	"github.com/vk/cubecount/internal/game"
	"github.com/vk/cubecount/internal/report"
)

// Run executes the main application logic based on the App's configuration.
// Any failure aborts the run and nothing is written to the output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loadModel(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Bag capacity resolved.", "source", model.Source, "red", model.Capacity.Red, "green", model.Capacity.Green, "blue", model.Capacity.Blue)

	data, err := fsutil.ReadInput(a.config.InputPath)
	if err != nil {
		return err
	}

	parser := game.Parser{StrictColors: a.config.StrictColors}
	games, err := parser.ParseAll(ctx, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", a.config.InputPath, err)
	}

	evaluator := bag.NewEvaluator(model.Capacity, a.config.Policy)
	res, err := evaluator.Evaluate(games)
	if err != nil {
		return fmt.Errorf("failed to evaluate %s: %w", a.config.InputPath, err)
	}
	a.logger.Info("Games evaluated.", "games", res.Games, "feasible", len(res.FeasibleIDs), "policy", res.Policy, "sum", res.Sum)

	if err := report.Write(a.outW, res, a.config.Output); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// loadModel returns the built-in model unless a bag file is configured.
func (a *App) loadModel(ctx context.Context) (*config.Model, error) {
	if a.config.BagPath == "" {
		return config.NewModel(), nil
	}
	if a.loader == nil {
		return nil, fmt.Errorf("bag file %s given but no loader is configured", a.config.BagPath)
	}

	model, err := a.loader.Load(ctx, a.config.BagPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return model, nil
}
