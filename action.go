package controls

import "iter"

// Action is a command bound to a panel button.
type Action interface {
	Execute(p *Panel)
}

// ActionFunc adapts a plain function to Action.
type ActionFunc func(p *Panel)

// Execute calls f(p).
func (f ActionFunc) Execute(p *Panel) { f(p) }

// ActionCondition returns true if the action can be executed.
type ActionCondition func() bool

// button holds a registered action and its optional condition.
type button struct {
	action    Action
	condition ActionCondition // nil = always enabled
}

// ActionGroup is a named, ordered set of buttons.
type ActionGroup struct {
	name    string
	buttons *OrderedMap[string, *button]
}

func newActionGroup(name string) *ActionGroup {
	return &ActionGroup{
		name:    name,
		buttons: NewOrderedMap[string, *button](),
	}
}

// Name returns the group name.
func (a *ActionGroup) Name() string { return a.name }

// Len returns the number of buttons.
func (a *ActionGroup) Len() int { return a.buttons.Len() }

// Button registers a button. Registering an existing name replaces its
// action but keeps its position and condition.
func (a *ActionGroup) Button(name string, act Action) *ActionGroup {
	if b := a.buttons.GetMut(name); b != nil {
		(*b).action = act
		return a
	}
	a.buttons.Insert(name, &button{action: act})
	return a
}

// Condition attaches an enable condition to a registered button.
func (a *ActionGroup) Condition(name string, cond ActionCondition) *ActionGroup {
	a.lookup(name).condition = cond
	return a
}

// Has reports whether a button is registered under name.
func (a *ActionGroup) Has(name string) bool {
	return a.buttons.Contains(name)
}

// Enabled reports whether the named button may run now.
func (a *ActionGroup) Enabled(name string) bool {
	b := a.lookup(name)
	return b.condition == nil || b.condition()
}

// Buttons yields button names in registration order.
func (a *ActionGroup) Buttons() iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range a.buttons.All() {
			if !yield(name) {
				return
			}
		}
	}
}

func (a *ActionGroup) lookup(name string) *button {
	b := a.buttons.GetMut(name)
	if b == nil {
		err := newMissing("button", name, a.buttons.Keys())
		err.Name = a.name + "." + name
		panic(err)
	}
	return *b
}
