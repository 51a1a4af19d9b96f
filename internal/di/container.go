package di

import (
	"fmt"

	"yuki/internal/agent"
	"yuki/internal/application/port/input"
	"yuki/internal/application/port/output"
	"yuki/internal/application/service"
	"yuki/internal/desktop"
	"yuki/internal/detect"
	"yuki/internal/domain/entity"
	"yuki/internal/infrastructure/config"
	"yuki/internal/infrastructure/llm/openrouter"
	"yuki/internal/infrastructure/logger"
	"yuki/internal/infrastructure/platform"
	"yuki/internal/infrastructure/screenshot"
	"yuki/internal/tools"
)

type Container struct {
	Logger  output.LoggerPort
	Oracle  output.OraclePort
	Tools   output.ToolRegistry
	Desktop *desktop.Desktop
	Agent   input.AgentPort
}

type Config struct {
	OpenRouterAPIKey string
	OpenRouterModel  string
	UseVision        bool
	LogLevel         string
	LogJSON          bool
	Settings         config.Settings
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewZapAdapter(logger.Config{Level: cfg.LogLevel, JSON: cfg.LogJSON})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	provider, err := platform.NewProvider(log)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to create platform provider: %w", err)
	}

	settings := cfg.Settings

	walkCfg := detect.DefaultWalkConfig()
	walkCfg.MaxDepth = settings.Detection.MaxDepth
	walkCfg.MaxVisited = settings.Detection.MaxVisited
	walkCfg.MaxInteractive = settings.Detection.MaxInteractive
	walker := detect.NewWalker(walkCfg, provider.Windows.Screen(), log)

	scanCfg := detect.DefaultScanConfig()
	scanCfg.Workers = settings.Detection.Workers
	scanCfg.WindowTimeout = settings.Detection.WindowTimeout()
	scanCfg.BatchTimeout = settings.Detection.BatchTimeout()
	scanCfg.ExcludedApps = settings.Detection.ExcludedApps
	scanner := detect.NewScanner(walker, provider.UITree, scanCfg, log)

	shots := screenshot.NewService(provider.Screenshot, log)

	desktopCfg := desktop.DefaultConfig()
	desktopCfg.AppsCacheTTL = settings.Cache.AppsTTL()
	desktopCfg.ScreenshotTTL = settings.Cache.ScreenshotTTL()
	desktopCfg.TreeCacheTTL = settings.Cache.TreeTTL()
	d := desktop.New(
		provider.Windows,
		provider.UITree,
		provider.Input,
		provider.Shell,
		shots,
		scanner,
		walker,
		desktopCfg,
		log,
	)

	oracleCfg := openrouter.DefaultConfig(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
	oracleCfg.Logger = log
	oracle := openrouter.NewOpenRouterAdapter(oracleCfg)

	registry := service.NewToolRegistry(log)
	tools.RegisterAll(registry, d, log)

	agentCfg := agent.DefaultConfig()
	agentCfg.MaxSteps = settings.MaxSteps
	agentCfg.UseVision = cfg.UseVision || settings.UseVision
	if len(settings.NoRefreshActions) > 0 {
		agentCfg.NoRefreshActions = toToolNames(settings.NoRefreshActions)
	}
	a := agent.New(d, oracle, registry, agentCfg, log)

	return &Container{
		Logger:  log,
		Oracle:  oracle,
		Tools:   registry,
		Desktop: d,
		Agent:   a,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func toToolNames(names []string) []entity.ToolName {
	out := make([]entity.ToolName, 0, len(names))
	for _, n := range names {
		out = append(out, entity.ToolName(n))
	}
	return out
}
