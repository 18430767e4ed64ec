package main

import (
	"sync"
	"time"

	"github.com/taigrr/voxcast/pkg/input"
)

// binding maps terminal keys to a button on one of the two pads.
type binding struct {
	keys []string
	pad  int // 1 or 2
	btn  input.Buttons
}

var bindings = []binding{
	{[]string{"up"}, 1, input.ButtonUp},
	{[]string{"down"}, 1, input.ButtonDown},
	{[]string{"left"}, 1, input.ButtonLeft},
	{[]string{"right"}, 1, input.ButtonRight},
	{[]string{"x", "space"}, 1, input.ButtonX},
	{[]string{"z", "enter"}, 1, input.ButtonZ},
	{[]string{"w"}, 2, input.ButtonUp},
	{[]string{"s"}, 2, input.ButtonDown},
	{[]string{"a"}, 2, input.ButtonLeft},
	{[]string{"d"}, 2, input.ButtonRight},
}

// holdTTL is how long a key counts as held after its last press event.
// Most terminals never report releases, so a held key is a stream of
// repeated presses and a key with no recent press has been let go. It
// outlasts the usual 500ms delay before auto-repeat starts, so holding an
// action key fires it once.
const holdTTL = 600 * time.Millisecond

// keyState turns key events from the terminal goroutine into per-frame pad
// bytes for the game loop.
type keyState struct {
	mu   sync.Mutex
	ttl  time.Duration
	held map[int]time.Time // binding index -> last press
}

func newKeyState(ttl time.Duration) *keyState {
	return &keyState{ttl: ttl, held: make(map[int]time.Time)}
}

// match returns the binding index for a key, or -1.
func match(matches func(keys ...string) bool) int {
	for i, b := range bindings {
		if matches(b.keys...) {
			return i
		}
	}
	return -1
}

func (k *keyState) press(i int, now time.Time) {
	if i < 0 {
		return
	}
	k.mu.Lock()
	k.held[i] = now
	k.mu.Unlock()
}

func (k *keyState) release(i int) {
	if i < 0 {
		return
	}
	k.mu.Lock()
	delete(k.held, i)
	k.mu.Unlock()
}

// State returns the pads as of now, forgetting keys that went quiet.
func (k *keyState) State(now time.Time) input.State {
	k.mu.Lock()
	defer k.mu.Unlock()

	var st input.State
	for i, last := range k.held {
		if now.Sub(last) > k.ttl {
			delete(k.held, i)
			continue
		}
		b := bindings[i]
		if b.pad == 1 {
			st.Pad1 |= b.btn
		} else {
			st.Pad2 |= b.btn
		}
	}
	return st
}
