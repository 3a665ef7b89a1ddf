// internal/plugin/manager.go
package plugin

import (
	"fmt"

	"github.com/bethropolis/resolver/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of
// plugins. Plugins are initialized and shut down in registration order.
type Manager struct {
	plugins map[string]Plugin
	order   []string
	api     EditorAPI
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin. Call it before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	m.order = append(m.order, name)
	logger.Debugf("Plugin Manager: Registered plugin '%s'", name)
	return nil
}

// InitializePlugins calls Initialize on every plugin. A failing plugin is
// logged and the rest still initialize; the first error is returned.
func (m *Manager) InitializePlugins(api EditorAPI) error {
	m.api = api
	logger.Infof("Plugin Manager: Initializing %d plugins...", len(m.order))

	var firstErr error
	for _, name := range m.order {
		if err := m.plugins[name].Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", name, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("initializing plugin '%s': %w", name, err)
			}
			continue
		}
		logger.Debugf("Plugin Manager: Successfully initialized plugin '%s'", name)
	}
	return firstErr
}

// ShutdownPlugins calls Shutdown on all registered plugins.
func (m *Manager) ShutdownPlugins() {
	logger.Debugf("Plugin Manager: Shutting down %d plugins...", len(m.order))
	for _, name := range m.order {
		if err := m.plugins[name].Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", name, err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	p, exists := m.plugins[name]
	return p, exists
}

// Names returns the registered plugin names in registration order.
func (m *Manager) Names() []string {
	return append([]string(nil), m.order...)
}
