package mindweaver

// Injected events use screen coordinates, exactly like real input, and are
// dispatched one per Update call.

// InjectPress queues a left-button press at the given screen coordinates.
func (s *Session) InjectPress(x, y float64) {
	s.inject(Event{Kind: EventPointerDown, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectMove queues a pointer move. Use it between InjectPress and
// InjectRelease to simulate a drag.
func (s *Session) InjectMove(x, y float64) {
	s.inject(Event{Kind: EventPointerMove, X: x, Y: y})
}

// InjectRelease queues a pointer release.
func (s *Session) InjectRelease(x, y float64) {
	s.inject(Event{Kind: EventPointerUp, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (s *Session) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDoubleClick queues a full double click: two clicks and the
// double-click event. Consumes five frames.
func (s *Session) InjectDoubleClick(x, y float64) {
	s.InjectClick(x, y)
	s.InjectClick(x, y)
	s.inject(Event{Kind: EventDoubleClick, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectContextMenu queues a secondary click.
func (s *Session) InjectContextMenu(x, y float64) {
	s.inject(Event{Kind: EventContextMenu, X: x, Y: y, Button: MouseButtonRight})
}

// InjectWheel queues a wheel event. deltaY < 0 zooms in.
func (s *Session) InjectWheel(x, y, deltaY float64) {
	s.inject(Event{Kind: EventWheel, X: x, Y: y, DeltaY: deltaY})
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves and a release at (toX, toY). The final move lands on
// (toX, toY) so the release point matches. Minimum frames is 3.
func (s *Session) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// Pending reports how many injected events are still queued.
func (s *Session) Pending() int {
	return len(s.injectQueue)
}

// Flush dispatches every queued event immediately.
func (s *Session) Flush() {
	for s.processInjected() {
	}
}

func (s *Session) inject(ev Event) {
	s.injectQueue = append(s.injectQueue, ev)
}

// processInjected pops and dispatches one queued event. Returns true if an
// event was consumed (real input should be skipped this frame).
func (s *Session) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	ev := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.Dispatch(ev)
	return true
}

// Screenshot queues a labeled screenshot. Front ends capture and write the
// queued labels after drawing, via TakeScreenshots.
func (s *Session) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// TakeScreenshots returns and clears the queued screenshot labels.
func (s *Session) TakeScreenshots() []string {
	if len(s.screenshotQueue) == 0 {
		return nil
	}
	labels := s.screenshotQueue
	s.screenshotQueue = nil
	return labels
}
