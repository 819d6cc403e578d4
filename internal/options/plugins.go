package options

import (
	"sort"

	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
)

// Plugins holds the options of every plugin of a chart, stored under
// "plugins" by plugin id. A plugin whose options are false is disabled.
type Plugins struct {
	options  *Options
	node     *native.Node
	entities map[string]*Entity
}

// Entity returns the options of plugin id. They resolve through the
// instance defaults, the chart type overrides for the plugin, the plugin
// layer, then global and builtin. Options set while the plugin is
// disabled are not stored.
func (p *Plugins) Entity(id string) *Entity {
	k := key.Name(id)
	if e, ok := p.entities[id]; ok {
		if current := p.node.Object().GetObject(k); current == nil || current == e.Object() {
			return e
		}
	}
	chain := p.options.ctx.PluginChain(p.options.chartType, id)
	if p.options.instance != nil {
		instance := defaults.NewChain(defaults.ObjectProvider("instance", p.options.instance))
		chain = chain.Prepend(instance.Sub(keyPlugins).Sub(k).Providers()...)
	}
	e := NewEntity(native.NewChildNode(p.node, k, nil), chain)
	if p.entities == nil {
		p.entities = make(map[string]*Entity)
	}
	p.entities[id] = e
	return e
}

// IDs returns the ids of the plugins configured on the chart, sorted.
func (p *Plugins) IDs() []string {
	ids := p.node.Object().Keys()
	sort.Strings(ids)
	return ids
}

// Has reports whether plugin id is configured on the chart.
func (p *Plugins) Has(id string) bool {
	return p.node.Has(key.Name(id))
}

// IsEnabled reports whether plugin id is enabled for the chart.
func (p *Plugins) IsEnabled(id string) bool {
	v, ok := p.node.Object().Get(key.Name(id))
	if !ok {
		return true
	}
	b, isBool := v.AsBool()
	return !isBool || b
}

// SetEnabled enables or disables plugin id. Disabling replaces its options
// with false; enabling a disabled plugin removes that marker.
func (p *Plugins) SetEnabled(id string, enabled bool) {
	k := key.Name(id)
	if !enabled {
		p.node.SetAndAddToParent(k, native.Bool(false))
		delete(p.entities, id)
		return
	}
	if !p.IsEnabled(id) {
		p.node.Remove(k)
	}
}

// Remove deletes the options of plugin id.
func (p *Plugins) Remove(id string) {
	p.node.Remove(key.Name(id))
	delete(p.entities, id)
}
