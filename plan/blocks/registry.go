package blocks

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"growthplan-backend/plan/view"
)

// registry maps every block to its parsed per-page templates. The template
// context is the view model; page chrome and numbering are the assembler's
// job.
var registry = map[ID][]*template.Template{}

func register(id ID, pages ...string) {
	parsed := make([]*template.Template, 0, len(pages))
	for i, body := range pages {
		name := fmt.Sprintf("%s#%d", id, i+1)
		parsed = append(parsed, template.Must(template.New(name).Parse(body)))
	}
	registry[id] = parsed
}

// Render executes the block's templates against the view model and returns
// one markup string per page. ok is false for unregistered ids; the
// assembler treats that as a no-op, and the registry test ensures it cannot
// happen for ids the selector emits.
func Render(id ID, m view.Model) (pages []string, ok bool) {
	templates, found := registry[id]
	if !found {
		return nil, false
	}
	out := make([]string, 0, len(templates))
	for _, t := range templates {
		var b strings.Builder
		if err := t.Execute(&b, m); err != nil {
			// Templates are static and the context is a value type; an
			// execute error here is a programming bug surfaced by tests.
			return nil, false
		}
		out = append(out, b.String())
	}
	return out, true
}

// Registered reports whether a block id has templates.
func Registered(id ID) bool {
	_, ok := registry[id]
	return ok
}

// All returns every registered block id in stable order.
func All() []ID {
	out := make([]ID, 0, len(registry))
	for id := range registry {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
