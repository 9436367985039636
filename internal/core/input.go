package core

// Button identifies one of the device's four buttons.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonA
	ButtonB
	buttonCount
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of buttons held down during one simulation tick.
// The platform builds one per tick from keyboard events; game code consumes
// it through a Buttons tracker without knowing the input source.
type InputFrame struct {
	held [buttonCount]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a button as held for this frame.
func (f *InputFrame) Set(b Button) {
	if b >= 0 && b < buttonCount {
		f.held[b] = true
	}
}

// Has reports whether the button is held in this frame.
func (f InputFrame) Has(b Button) bool {
	return b >= 0 && b < buttonCount && f.held[b]
}

// Clear releases all buttons for the next frame.
func (f *InputFrame) Clear() {
	f.held = [buttonCount]bool{}
}

// Buttons tracks button state across ticks so game code can distinguish a
// held button from a fresh press. Poll once per tick, then query.
type Buttons struct {
	cur  InputFrame
	prev InputFrame
}

// NewButtons creates an empty button tracker.
func NewButtons() *Buttons {
	return &Buttons{}
}

// Poll records this tick's input frame and shifts the previous one.
func (bt *Buttons) Poll(f InputFrame) {
	bt.prev = bt.cur
	bt.cur = f
}

// Pressed reports whether the button is currently held (level query).
func (bt *Buttons) Pressed(b Button) bool {
	return bt.cur.Has(b)
}

// JustPressed reports whether the button went down this tick (edge query).
func (bt *Buttons) JustPressed(b Button) bool {
	return bt.cur.Has(b) && !bt.prev.Has(b)
}

// Reset forgets all button state.
func (bt *Buttons) Reset() {
	bt.cur.Clear()
	bt.prev.Clear()
}
