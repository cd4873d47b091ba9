package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"parley/internal/config"
	"parley/internal/services"
	"parley/internal/templates"
	"parley/internal/usagetracker"
	"parley/pkg/categorizer"
)

type App struct {
	Config *config.Config

	Rules             *categorizer.RuleSet
	Templates         *templates.Library
	CompletionService services.CompletionService
	UsageTracker      usagetracker.Tracker
	ResponseService   *services.ResponseService
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initRules(); err != nil {
		return nil, err
	}
	if err := app.initTemplates(); err != nil {
		return nil, err
	}
	if err := app.initCompletionService(); err != nil {
		return nil, err
	}
	app.initResponseService()

	log.Debug("Application initialization complete.")
	return app, nil
}

// --- Private Helper Methods ---

func (a *App) initRules() error {
	rules := categorizer.Default()

	if extras := a.Config.Categorization.ExtraKeywords; len(extras) > 0 {
		byCategory := make(map[categorizer.Category][]string, len(extras))
		for label, keywords := range extras {
			cat, err := categorizer.ParseCategory(label)
			if err != nil {
				return fmt.Errorf("categorization.extra_keywords: %w", err)
			}
			byCategory[cat] = keywords
		}
		rules = rules.Extend(byCategory)
		log.Infof("Extended rule set with keywords for %d categories", len(byCategory))
	}

	a.Rules = rules
	return nil
}

func (a *App) initTemplates() error {
	byCategory := templates.DefaultTemplates()

	// Config templates replace the built-in list for their category;
	// selection stays deterministic (first template wins).
	for label, tpls := range a.Config.Templates {
		cat, err := categorizer.ParseCategory(label)
		if err != nil {
			return fmt.Errorf("templates: %w", err)
		}
		byCategory[cat] = tpls
	}

	library, err := templates.New(byCategory)
	if err != nil {
		return fmt.Errorf("init template library: %w", err)
	}
	a.Templates = library
	return nil
}

func (a *App) initCompletionService() error {
	cfg := a.Config.Completion

	switch cfg.Provider {
	case "openai", "":
		a.CompletionService = services.NewOpenAIProvider(cfg.OpenaiApiKey, cfg.Model)
	case "gemini":
		provider, err := services.NewGeminiProvider(context.Background(), cfg.GoogleApiKey, cfg.Model)
		if err != nil {
			return fmt.Errorf("init gemini provider: %w", err)
		}
		a.CompletionService = provider
	case "none":
		log.Info("External completion disabled by configuration")
		a.CompletionService = nil
	default:
		// Validate() already rejects this; keep the guard for direct callers.
		return fmt.Errorf("unknown completion provider %q", cfg.Provider)
	}
	return nil
}

func (a *App) initResponseService() {
	a.UsageTracker = usagetracker.New()
	timeout := time.Duration(a.Config.Completion.TimeoutSeconds) * time.Second
	a.ResponseService = services.NewResponseService(a.Rules, a.Templates, a.CompletionService, a.UsageTracker, timeout)
}
