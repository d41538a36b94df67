package app

import (
	"github.com/solenne/mailwright/internal/commands"
)

// registerAppCommands wires the built-in command set to the API adapter.
// The adapter satisfies both the composer API and the theme command API,
// so it is passed in both roles.
func registerAppCommands(app *App) {
	commands.RegisterAppCommands(app.composerAPI, app.composerAPI)
}
