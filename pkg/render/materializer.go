package render

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/goliatone/go-projection/pkg/model"
	rendertemplate "github.com/goliatone/go-projection/pkg/render/template"
)

// defaultLoopVar is used when a TemplateRef omits its loop variable name.
const defaultLoopVar = "item"

// Materializer evaluates a TemplateRef once per item of an identity-keyed
// sequence. Renderings are cached by (ref, item key): re-materializing after
// a sequence change reuses the output of unchanged items and creates/destroys
// the rest, mirroring stable-identity tracking in component runtimes. A
// cached rendering is only reused when everything it was produced from still
// matches: the item value, the template body, and the render-scoped globals.
// Renderers share one materializer across requests, so anything less would
// leak one request's output into the next.
type Materializer struct {
	engine rendertemplate.TemplateRenderer

	mu        sync.Mutex
	instances map[string]instance
}

type instance struct {
	value   any
	content string
	globals map[string]any
	output  string
}

func (i instance) current(value any, content string, globals map[string]any) bool {
	return i.content == content &&
		reflect.DeepEqual(i.value, value) &&
		reflect.DeepEqual(i.globals, globals)
}

// NewMaterializer wires a materializer to the given template engine.
func NewMaterializer(engine rendertemplate.TemplateRenderer) *Materializer {
	return &Materializer{
		engine:    engine,
		instances: make(map[string]instance),
	}
}

// Materialize renders ref once per item, in sequence order, with the loop
// variable bound to the item value on top of the supplied globals. An empty
// ref name or nil engine is a configuration fault; an empty item sequence
// yields no renderings and clears any instances the ref held before.
func (m *Materializer) Materialize(ref model.TemplateRef, items []model.Item, globals map[string]any) ([]string, error) {
	if m == nil || m.engine == nil {
		return nil, errors.New("render: materializer engine is nil")
	}
	if strings.TrimSpace(ref.Name) == "" {
		return nil, errors.New("render: template ref name is required")
	}

	loopVar := strings.TrimSpace(ref.Var)
	if loopVar == "" {
		loopVar = defaultLoopVar
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	live := make(map[string]struct{}, len(items))
	outputs := make([]string, 0, len(items))

	for _, item := range items {
		cacheKey := ref.Name + "\x00" + item.Key
		live[cacheKey] = struct{}{}

		if cached, ok := m.instances[cacheKey]; ok && cached.current(item.Value, ref.Content, globals) {
			outputs = append(outputs, cached.output)
			continue
		}

		data := make(map[string]any, len(globals)+1)
		for key, value := range globals {
			data[key] = value
		}
		data[loopVar] = item.Value

		rendered, err := m.engine.RenderString(ref.Content, data)
		if err != nil {
			return nil, fmt.Errorf("render: materialize %q item %q: %w", ref.Name, item.Key, err)
		}

		m.instances[cacheKey] = instance{
			value:   item.Value,
			content: ref.Content,
			globals: cloneGlobals(globals),
			output:  rendered,
		}
		outputs = append(outputs, rendered)
	}

	// Tear down instances whose keys left this ref's sequence.
	prefix := ref.Name + "\x00"
	for cacheKey := range m.instances {
		if !strings.HasPrefix(cacheKey, prefix) {
			continue
		}
		if _, ok := live[cacheKey]; !ok {
			delete(m.instances, cacheKey)
		}
	}

	return outputs, nil
}

func cloneGlobals(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

// InstanceCount reports the number of live renderings for a TemplateRef.
func (m *Materializer) InstanceCount(refName string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefix := refName + "\x00"
	count := 0
	for cacheKey := range m.instances {
		if strings.HasPrefix(cacheKey, prefix) {
			count++
		}
	}
	return count
}
