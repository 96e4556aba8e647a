package pad

import "image"

// EventType identifies the kind of input event.
type EventType int

const (
	EventButtonDown EventType = iota + 1
	EventButtonUp
	EventMove
	EventKey
)

type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonRight
	ButtonMiddle
)

type Key int

const (
	KeyClear Key = iota + 1
	KeyOther
)

// Event is a pointer or keyboard event. Pos is in screen space.
type Event struct {
	Type   EventType
	Pos    image.Point
	Button Button
	Key    Key
}

func Down(b Button, x, y int) Event {
	return Event{Type: EventButtonDown, Button: b, Pos: image.Pt(x, y)}
}

func Up(b Button) Event {
	return Event{Type: EventButtonUp, Button: b}
}

func Move(x, y int) Event {
	return Event{Type: EventMove, Pos: image.Pt(x, y)}
}

func Press(k Key) Event {
	return Event{Type: EventKey, Key: k}
}
