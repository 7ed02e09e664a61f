package core

// Layer is an ordered slice of app behavior. OnAttach runs when the layer
// enters the engine's stack and OnDetach when it leaves; update/render/event
// hooks only fire between those two.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

// LayerStack holds attached layers bottom-to-top. Mutation goes through the
// Engine so the lifecycle hooks always fire.
type LayerStack struct{ list []Layer }

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			break
		}
	}
}

// PushLayer attaches l on top of the stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.list = append(e.Layers.list, l)
	l.OnAttach(e)
}

// PopLayer detaches and removes the top layer.
func (e *Engine) PopLayer() (Layer, bool) {
	n := len(e.Layers.list)
	if n == 0 {
		return nil, false
	}
	l := e.Layers.list[n-1]
	e.Layers.list = e.Layers.list[:n-1]
	l.OnDetach(e)
	return l, true
}

// detachLayers pops every layer, top first. Run calls it on the way out so
// layers holding resources (watchers, GPU objects) get their OnDetach.
func (e *Engine) detachLayers() {
	for {
		if _, ok := e.PopLayer(); !ok {
			return
		}
	}
}
