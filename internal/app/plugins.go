package app

import (
	"fmt" // For error wrapping

	"github.com/solenne/mailwright/internal/logger"
	"github.com/solenne/mailwright/internal/plugin"

	// Import desired plugin packages here
	"github.com/solenne/mailwright/plugins/maillimit"
	"github.com/solenne/mailwright/plugins/wordcount"
)

// registerPlugins initializes and registers all known plugins with the manager.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	// List of plugin constructors
	// Adding a new plugin means adding its constructor here.
	pluginConstructors := []func() plugin.Plugin{
		wordcount.New,
		maillimit.New,
	}

	var finalErr error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		pluginName := p.Name() // Get name for logging

		logger.Debugf("Registering plugin: %s", pluginName)
		err := pm.Register(p)
		if err != nil {
			// Log the error but continue registering others
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", pluginName, err)
			logger.Errorf(wrappedErr.Error())
			if finalErr == nil {
				finalErr = wrappedErr // Store the first error encountered
			}
		}
	}

	return finalErr // Return the first error encountered, or nil
}
