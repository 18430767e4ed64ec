// Package input models the two 8-bit gamepad bytes the host exposes each frame.
package input

// Buttons is one gamepad byte.
type Buttons uint8

// Button bits of one gamepad byte.
const (
	ButtonX     Buttons = 1
	ButtonZ     Buttons = 2
	ButtonLeft  Buttons = 16
	ButtonRight Buttons = 32
	ButtonUp    Buttons = 64
	ButtonDown  Buttons = 128

	Directions = ButtonLeft | ButtonRight | ButtonUp | ButtonDown
)

// Has reports whether every bit in mask is held.
func (b Buttons) Has(mask Buttons) bool {
	return b&mask == mask
}

// Axes turns the directional bits into a (horizontal, vertical) intent where
// right and up are positive. Opposite buttons cancel.
func (b Buttons) Axes() (h, v float64) {
	if b.Has(ButtonLeft) {
		h--
	}
	if b.Has(ButtonRight) {
		h++
	}
	if b.Has(ButtonUp) {
		v++
	}
	if b.Has(ButtonDown) {
		v--
	}
	return h, v
}

// Pad tracks one gamepad across frames so actions fire on the press edge.
type Pad struct {
	prev, cur Buttons
}

// Update records this frame's state.
func (p *Pad) Update(b Buttons) {
	p.prev = p.cur
	p.cur = b
}

// Held returns the current state.
func (p *Pad) Held() Buttons {
	return p.cur
}

// Pressed reports whether mask went from released to pressed this frame.
func (p *Pad) Pressed(mask Buttons) bool {
	return p.cur.Has(mask) && !p.prev.Has(mask)
}

// State is everything the host hands the game for one frame.
type State struct {
	Pad1 Buttons // look and actions
	Pad2 Buttons // movement
}
