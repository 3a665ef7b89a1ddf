// internal/app/plugins.go
package app

import (
	"fmt"

	"github.com/bethropolis/resolver/internal/logger"
	"github.com/bethropolis/resolver/internal/plugin"
	"github.com/bethropolis/resolver/plugins/autosave"
	"github.com/bethropolis/resolver/plugins/stats"
)

// pluginConstructors lists the built-in plugins in initialization order.
var pluginConstructors = []func() plugin.Plugin{
	stats.New,
	autosave.New,
}

// registerPlugins registers every built-in plugin with the manager.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	var finalErr error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr
			}
		}
	}
	return finalErr
}
