package twig

// Inject queues a synthetic event. One queued event is delivered per frame,
// ahead of host events.
func (l *Loop) Inject(e Event) {
	l.injectQueue = append(l.injectQueue, e)
}

// InjectKeyDown queues a key press for a named key ("left", "space") or a
// single character. Unknown names are ignored.
func (l *Loop) InjectKeyDown(name string) {
	if k, r, ok := parseKey(name); ok {
		l.Inject(Event{Type: EventKeyDown, Key: k, Rune: r})
	}
}

// InjectKeyUp queues a key release. Unknown names are ignored.
func (l *Loop) InjectKeyUp(name string) {
	if k, r, ok := parseKey(name); ok {
		l.Inject(Event{Type: EventKeyUp, Key: k, Rune: r})
	}
}

// InjectPress is a convenience that queues a key press followed by a
// release. Consumes two frames.
func (l *Loop) InjectPress(name string) {
	l.InjectKeyDown(name)
	l.InjectKeyUp(name)
}

// InjectQuit queues a quit request.
func (l *Loop) InjectQuit() {
	l.Inject(Event{Type: EventQuit})
}

// processInjected pops one event from the inject queue and delivers it.
// Returns true if an event was consumed.
func (l *Loop) processInjected() bool {
	if len(l.injectQueue) == 0 {
		return false
	}
	e := l.injectQueue[0]
	copy(l.injectQueue, l.injectQueue[1:])
	l.injectQueue = l.injectQueue[:len(l.injectQueue)-1]
	l.deliver(e)
	return true
}
