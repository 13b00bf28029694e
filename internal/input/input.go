// Package input carries host input as plain events so the core never polls the framework.
package input

import "fmt"

// Code is a host key code. The driver converts ebiten.Key values into Codes.
type Code int

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta is the unit vector for d in screen space (y grows downward).
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	MouseDown
	MouseWheel
)

func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "key-down"
	case KeyUp:
		return "key-up"
	case MouseDown:
		return "mouse-down"
	case MouseWheel:
		return "mouse-wheel"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is one discrete input. Only the fields for its Kind are set.
type Event struct {
	Kind   Kind
	Code   Code    // KeyDown, KeyUp
	X, Y   float64 // MouseDown
	Button int     // MouseDown
	WheelY float64 // MouseWheel
}

func KeyDownEvent(c Code) Event { return Event{Kind: KeyDown, Code: c} }
func KeyUpEvent(c Code) Event   { return Event{Kind: KeyUp, Code: c} }
func WheelEvent(dy float64) Event {
	return Event{Kind: MouseWheel, WheelY: dy}
}
func MouseDownEvent(x, y float64, button int) Event {
	return Event{Kind: MouseDown, X: x, Y: y, Button: button}
}

// Bindings maps key codes to pan directions.
type Bindings map[Code]Direction
