// Package autosave saves the document after a number of modifications.
package autosave

import (
	"github.com/bethropolis/resolver/internal/event"
	"github.com/bethropolis/resolver/internal/logger"
	"github.com/bethropolis/resolver/internal/plugin"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const (
	defaultEnabled = false
	defaultEvery   = 20
)

// AutoSave counts buffer modifications and saves the document every
// `every` of them. It runs on the event loop; there is no timer.
type AutoSave struct {
	api plugin.EditorAPI

	enabled bool
	every   int
	pending int // modifications since the last save
}

// New creates a new instance of the AutoSave plugin.
func New() plugin.Plugin {
	return &AutoSave{
		enabled: defaultEnabled,
		every:   defaultEvery,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads the [plugins.autosave] table and subscribes to buffer
// events when enabled.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	pluginName := p.Name()

	if enabledVal, ok := api.GetPluginConfigValue(pluginName, "enabled"); ok {
		if boolVal, isBool := enabledVal.(bool); isBool {
			p.enabled = boolVal
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", pluginName, enabledVal, p.enabled)
		}
	}

	if everyVal, ok := api.GetPluginConfigValue(pluginName, "every"); ok {
		// TOML integers decode as int64.
		switch n := everyVal.(type) {
		case int64:
			if n > 0 {
				p.every = int(n)
			} else {
				logger.Warnf("%s: 'every' must be positive (%d), using default (%d)", pluginName, n, p.every)
			}
		default:
			logger.Warnf("%s: Invalid type for 'every' config (%T), using default (%d)", pluginName, everyVal, p.every)
		}
	}

	logger.Infof("%s initialized. Enabled: %v, Every: %d modifications", pluginName, p.enabled, p.every)
	if !p.enabled {
		return nil
	}

	api.SubscribeEvent(event.TypeBufferModified, p.handleModified)
	api.SubscribeEvent(event.TypeBufferSaved, p.handleSaved)
	api.SubscribeEvent(event.TypeBufferLoaded, p.handleSaved)
	api.SetStatusSegment(pluginName, "autosave")
	return nil
}

// Shutdown saves outstanding modifications.
func (p *AutoSave) Shutdown() error {
	if p.enabled && p.pending > 0 {
		p.saveIfModified()
	}
	return nil
}

func (p *AutoSave) handleModified(e event.Event) bool {
	p.pending++
	if p.pending >= p.every {
		p.saveIfModified()
	}
	return false
}

func (p *AutoSave) handleSaved(e event.Event) bool {
	p.pending = 0
	return false
}

// saveIfModified saves the document when it has a path and changes.
func (p *AutoSave) saveIfModified() {
	if !p.api.IsBufferModified() {
		logger.Debugf("%s: Buffer not modified, skipping auto-save.", p.Name())
		return
	}
	filePath := p.api.GetBufferFilePath()
	if filePath == "" {
		logger.Debugf("%s: Buffer is modified but has no name, skipping auto-save.", p.Name())
		return
	}

	logger.Infof("%s: Auto-saving modified buffer: %s", p.Name(), filePath)
	if err := p.api.SaveBuffer(); err != nil {
		logger.Errorf("%s: Auto-save failed for '%s': %v", p.Name(), filePath, err)
		p.api.SetStatusMessage("%s: save failed: %v", p.Name(), err)
		return
	}
	p.pending = 0
}
