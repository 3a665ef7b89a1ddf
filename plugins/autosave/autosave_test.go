package autosave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/resolver/internal/event"
	"github.com/bethropolis/resolver/internal/plugin"
)

// fakeAPI implements the parts of plugin.EditorAPI the plugin uses.
type fakeAPI struct {
	plugin.EditorAPI
	events   *event.Manager
	config   map[string]any
	path     string
	modified bool
	saves    int
	segments map[string]string
}

func newFakeAPI(config map[string]any) *fakeAPI {
	return &fakeAPI{
		events:   event.NewManager(),
		config:   config,
		path:     "sheet.txt",
		segments: map[string]string{},
	}
}

func (f *fakeAPI) GetPluginConfigValue(pluginName, key string) (any, bool) {
	v, ok := f.config[key]
	return v, ok
}

func (f *fakeAPI) SubscribeEvent(t event.Type, h event.Handler) { f.events.Subscribe(t, h) }
func (f *fakeAPI) SetStatusSegment(name, text string)           { f.segments[name] = text }
func (f *fakeAPI) SetStatusMessage(format string, args ...any)  {}
func (f *fakeAPI) IsBufferModified() bool                       { return f.modified }
func (f *fakeAPI) GetBufferFilePath() string                    { return f.path }

func (f *fakeAPI) SaveBuffer() error {
	f.saves++
	f.modified = false
	f.events.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: f.path})
	return nil
}

func (f *fakeAPI) edit() {
	f.modified = true
	f.events.Dispatch(event.TypeBufferModified, event.BufferModifiedData{})
}

func TestAutoSave_DisabledByDefault(t *testing.T) {
	api := newFakeAPI(nil)
	require.NoError(t, New().Initialize(api))

	for i := 0; i < 50; i++ {
		api.edit()
	}
	assert.Zero(t, api.saves)
	assert.Empty(t, api.segments)
}

func TestAutoSave_EveryN(t *testing.T) {
	api := newFakeAPI(map[string]any{"enabled": true, "every": int64(3)})
	p := New()
	require.NoError(t, p.Initialize(api))
	assert.Equal(t, "autosave", api.segments["autosave"])

	api.edit()
	api.edit()
	assert.Zero(t, api.saves)
	api.edit()
	assert.Equal(t, 1, api.saves)

	// A manual save restarts the count.
	api.edit()
	api.edit()
	require.NoError(t, api.SaveBuffer())
	api.edit()
	api.edit()
	assert.Equal(t, 2, api.saves)

	// Outstanding changes are saved on shutdown.
	require.NoError(t, p.Shutdown())
	assert.Equal(t, 3, api.saves)
}

func TestAutoSave_NoPath(t *testing.T) {
	api := newFakeAPI(map[string]any{"enabled": true, "every": int64(1)})
	api.path = ""
	require.NoError(t, New().Initialize(api))

	api.edit()
	assert.Zero(t, api.saves)
}

func TestAutoSave_BadConfig(t *testing.T) {
	api := newFakeAPI(map[string]any{"enabled": "yes", "every": "often"})
	p := New().(*AutoSave)
	require.NoError(t, p.Initialize(api))
	assert.False(t, p.enabled)
	assert.Equal(t, defaultEvery, p.every)

	api = newFakeAPI(map[string]any{"enabled": true, "every": int64(-2)})
	p = New().(*AutoSave)
	require.NoError(t, p.Initialize(api))
	assert.Equal(t, defaultEvery, p.every)
}
