package tab

import (
	"context"

	"speedtab/core/markup"
	"speedtab/core/proxy"

	"go.uber.org/zap"
)

const (
	// ReloadCommandName is the command operators run to reload the configuration.
	ReloadCommandName = "speedtabreload"
	// ReloadPermission is required to run ReloadCommandName.
	ReloadPermission = "speedtab.reload"

	msgPermissionDenied = "You do not have permission to execute this command."
	msgReloaded         = "SpeedTab configuration reloaded!"
)

// Reloader reloads the tab configuration.
type Reloader interface {
	Reload(ctx context.Context) ReloadReport
}

// ReloadCommand implements the speedtabreload command.
type ReloadCommand struct {
	reloader Reloader
	perms    proxy.PermissionChecker
	logger   *zap.Logger
}

// NewReloadCommand creates the reload command.
func NewReloadCommand(reloader Reloader, perms proxy.PermissionChecker, logger *zap.Logger) *ReloadCommand {
	return &ReloadCommand{reloader: reloader, perms: perms, logger: logger}
}

// Execute implements proxy.Command.
func (c *ReloadCommand) Execute(ctx context.Context, source proxy.CommandSource) {
	if !c.perms.HasPermission(source.Name(), ReloadPermission) {
		c.logger.Warn("Command execution denied",
			zap.String("source", source.Name()),
			zap.String("command", ReloadCommandName),
			zap.String("permission", ReloadPermission))
		source.SendMessage(markup.Plain(msgPermissionDenied))
		return
	}

	c.logger.Info("Executing command", zap.String("source", source.Name()), zap.String("command", ReloadCommandName))
	c.reloader.Reload(ctx)
	source.SendMessage(markup.Plain(msgReloaded))
}
