package controls

import (
	"iter"
	"log/slog"
)

// PanelOption configures a Panel.
type PanelOption func(*Panel)

// WithLogger sets the logger used by the panel and every group it creates.
func WithLogger(l *slog.Logger) PanelOption {
	return func(p *Panel) { p.logger = l }
}

// WithGroupOptions sets options applied to every group the panel creates.
func WithGroupOptions(opts ...GroupOption) PanelOption {
	return func(p *Panel) { p.groupOpts = append(p.groupOpts, opts...) }
}

// Panel organizes groups and action groups into named, ordered sections.
//
// Usage:
//
//	panel := controls.NewPanel()
//	panel.Group("lighting", func(g *controls.Group) {
//	    g.Float("intensity", 1, controls.Range{Min: 0, Max: 10}, nil)
//	    g.Vec3("color", [3]float32{1, 1, 1}, rgb, nil)
//	})
//	upload(panel.Get("lighting").Bytes())
type Panel struct {
	groups    *OrderedMap[string, *Group]
	actions   *OrderedMap[string, *ActionGroup]
	groupOpts []GroupOption
	logger    *slog.Logger
}

// NewPanel creates an empty panel.
func NewPanel(opts ...PanelOption) *Panel {
	p := &Panel{
		groups:  NewOrderedMap[string, *Group](),
		actions: NewOrderedMap[string, *ActionGroup](),
		logger:  defaultLogger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Group runs build against the named group, creating it on first use, and
// returns p for chaining. build may be nil.
func (p *Panel) Group(name string, build func(g *Group)) *Panel {
	var g *Group
	if existing := p.groups.GetMut(name); existing != nil {
		g = *existing
	} else {
		opts := append([]GroupOption{WithGroupLogger(p.logger)}, p.groupOpts...)
		g = NewGroup(name, opts...)
		p.groups.Insert(name, g)
		p.logger.Debug("group registered", "group", name, "index", p.groups.Len()-1)
	}
	if build != nil {
		build(g)
	}
	return p
}

// Get returns the named group. A name that was never registered panics
// with *MissingError.
func (p *Panel) Get(name string) *Group {
	g, ok := p.Lookup(name)
	if !ok {
		panic(newMissing("group", name, p.groups.Keys()))
	}
	return g
}

// Lookup returns the named group and whether it exists.
func (p *Panel) Lookup(name string) (*Group, bool) {
	return p.groups.Get(name)
}

// Groups yields groups in registration order.
func (p *Panel) Groups() iter.Seq2[string, *Group] {
	return p.groups.All()
}

// Actions runs build against the named action group, creating it on first
// use, and returns p for chaining.
func (p *Panel) Actions(name string, build func(a *ActionGroup)) *Panel {
	var a *ActionGroup
	if existing := p.actions.GetMut(name); existing != nil {
		a = *existing
	} else {
		a = newActionGroup(name)
		p.actions.Insert(name, a)
	}
	if build != nil {
		build(a)
	}
	return p
}

// LookupActions returns the named action group and whether it exists.
func (p *Panel) LookupActions(name string) (*ActionGroup, bool) {
	return p.actions.Get(name)
}

// ActionGroups yields action groups in registration order.
func (p *Panel) ActionGroups() iter.Seq2[string, *ActionGroup] {
	return p.actions.All()
}

// Trigger executes the named button if its condition allows it and
// reports whether it ran. Unknown names panic with *MissingError.
func (p *Panel) Trigger(group, name string) bool {
	a, ok := p.actions.Get(group)
	if !ok {
		panic(newMissing("action group", group, p.actions.Keys()))
	}
	b := a.lookup(name)
	if b.condition != nil && !b.condition() {
		p.logger.Debug("action blocked", "group", group, "button", name)
		return false
	}
	p.logger.Debug("action triggered", "group", group, "button", name)
	if b.action != nil {
		b.action.Execute(p)
	}
	return true
}

// Reset drops every group and action group, in registration order, and
// returns the names of the groups that were removed.
func (p *Panel) Reset() []string {
	var dropped []string
	for name := range p.groups.Drain() {
		dropped = append(dropped, name)
	}
	for range p.actions.Drain() {
	}
	p.logger.Debug("panel reset", "groups", len(dropped))
	return dropped
}
