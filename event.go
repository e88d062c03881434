package endesga

// EventKind identifies the kind of a window event.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventResize
	EventKeyDown
)

// Key represents a keyboard key. Only keys the loop reacts to are named.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
)

// Event is a platform event delivered by a Window.
type Event struct {
	Kind EventKind

	// Resize
	Width, Height int

	// KeyDown
	Key Key
}

// QuitEvent returns a quit event.
func QuitEvent() Event { return Event{Kind: EventQuit} }

// ResizeEvent returns a resize event for the new drawable size.
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// KeyDownEvent returns a key press event.
func KeyDownEvent(key Key) Event { return Event{Kind: EventKeyDown, Key: key} }

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventResize:
		return "resize"
	case EventKeyDown:
		return "key down"
	default:
		return "none"
	}
}
