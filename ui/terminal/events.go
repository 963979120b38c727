package terminal

import "github.com/gdamore/tcell/v2"

// PollEvents forwards screen events to events until the screen is finalized,
// then closes events.
func PollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}
