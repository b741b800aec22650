package app

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vk/hclview/internal/ctxlog"
)

// Run executes the inspection workflow for the configured view document.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Info("🔍 Inspecting view document.", "path", a.config.ViewPath)
	report, err := a.engine.Inspect(ctx, a.config.ViewPath)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	if a.config.Dump {
		out, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to render inspection report: %w", err)
		}
		if _, err := a.outW.Write(out); err != nil {
			return fmt.Errorf("failed to write inspection report: %w", err)
		}
	} else {
		a.logger.Info("✅ View document is valid.",
			"path", report.Path, "root", report.Root, "nodes", report.NodeCount,
			"directives", len(report.Directives), "synthesized", len(report.Synthesized),
			"controllers", len(report.Controllers))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
