package tools

import (
	"yuki/internal/application/port/output"
	"yuki/internal/desktop"
)

// RegisterAll wires the full tool set for one Desktop into a registry.
func RegisterAll(registry output.ToolRegistry, d *desktop.Desktop, log output.LoggerPort) {
	registry.Register(NewClickTool(d, log))
	registry.Register(NewTypeTool(d, log))
	registry.Register(NewLaunchTool(d, log))
	registry.Register(NewSwitchTool(d, log))
	registry.Register(NewScrollTool(d, log))
	registry.Register(NewDragTool(d, log))
	registry.Register(NewMoveTool(d, log))
	registry.Register(NewShortcutTool(d, log))
	registry.Register(NewShellTool(d, log))
	registry.Register(NewWaitTool(log))
	registry.Register(NewDoneTool(log))
	registry.Register(NewHumanTool(log))
}
