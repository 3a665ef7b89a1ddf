// Package stats shows the line, result and unparsed clause counts of the
// latest render pass in a status bar segment.
package stats

import (
	"fmt"

	"github.com/bethropolis/resolver/internal/event"
	"github.com/bethropolis/resolver/internal/plugin"
)

// Ensure Stats implements plugin.Plugin
var _ plugin.Plugin = (*Stats)(nil)

// Stats keeps a status bar segment in sync with the latest render pass.
type Stats struct {
	api plugin.EditorAPI
}

// New creates a new instance of the Stats plugin.
func New() plugin.Plugin {
	return &Stats{}
}

// Name returns the unique name of the plugin.
func (p *Stats) Name() string {
	return "stats"
}

// Initialize shows the stats of the loaded document and follows every
// later evaluation.
func (p *Stats) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if sheet := api.GetSheet(); sheet != nil {
		ok, failed := sheet.Stats()
		api.SetStatusSegment(p.Name(), Summary(len(sheet.Paragraphs), ok, failed))
	}
	api.SubscribeEvent(event.TypeSheetEvaluated, p.handleEvaluated)
	return nil
}

// Shutdown removes the segment.
func (p *Stats) Shutdown() error {
	if p.api != nil {
		p.api.SetStatusSegment(p.Name(), "")
	}
	return nil
}

func (p *Stats) handleEvaluated(e event.Event) bool {
	data, ok := e.Data.(event.SheetEvaluatedData)
	if !ok {
		return false
	}
	p.api.SetStatusSegment(p.Name(), Summary(data.Paragraphs, data.Clauses-data.Failed, data.Failed))
	return false
}

// Summary formats the segment text.
func Summary(lines, results, failed int) string {
	s := fmt.Sprintf("%d %s, %d %s", lines, plural(lines, "line"), results, plural(results, "result"))
	if failed > 0 {
		s += fmt.Sprintf(", %d unparsed", failed)
	}
	return s
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
