// internal/plugin/manager.go
package plugin

import (
	"fmt"
	"sync"

	"github.com/solenne/mailwright/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
type Manager struct {
	mu      sync.RWMutex
	plugins map[string]Plugin // Loaded plugins by name
	api     ComposerAPI       // The API instance passed to plugins during init
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin instance to the manager.
// This should be called before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	logger.Debugf("Plugin Manager: Registered plugin '%s'", name)
	return nil
}

// InitializePlugins iterates through registered plugins and calls their
// Initialize method with the provided ComposerAPI.
func (m *Manager) InitializePlugins(api ComposerAPI) {
	m.mu.Lock()
	m.api = api
	pluginsToInit := make([]Plugin, 0, len(m.plugins))
	for _, p := range m.plugins {
		pluginsToInit = append(pluginsToInit, p)
	}
	m.mu.Unlock() // Unlock before calling plugin Initialize methods

	logger.Debugf("Plugin Manager: Initializing %d plugins...", len(pluginsToInit))
	for _, plugin := range pluginsToInit {
		err := plugin.Initialize(api)
		if err != nil {
			// Log and continue so one broken plugin doesn't take the rest down.
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", plugin.Name(), err)
		} else {
			logger.Debugf("Plugin Manager: Initialized plugin '%s'", plugin.Name())
		}
	}
}

// ShutdownPlugins calls Shutdown on all registered plugins.
func (m *Manager) ShutdownPlugins() {
	m.mu.RLock()
	pluginsToShutdown := make([]Plugin, 0, len(m.plugins))
	for _, p := range m.plugins {
		pluginsToShutdown = append(pluginsToShutdown, p)
	}
	m.mu.RUnlock() // Unlock before calling Shutdown

	logger.Debugf("Plugin Manager: Shutting down %d plugins...", len(pluginsToShutdown))
	for _, plugin := range pluginsToShutdown {
		err := plugin.Shutdown()
		if err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", plugin.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name (e.g., for inter-plugin
// communication). Use cautiously.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}
