package sim

//go:generate go tool stringer -type=Button -trimprefix=Button
//go:generate go tool mockgen -destination=./mocks/input_mock.go -package=mocks . Input

// Button is a digital input.
type Button int

const (
	ButtonStart Button = iota
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
)

// Input is the per-tick button snapshot.
type Input interface {
	// Held reports whether the button is currently down.
	Held(button Button) bool
	// Pressed reports whether the button went down since the previous tick.
	Pressed(button Button) bool
}

// ButtonMask is a set of buttons.
type ButtonMask uint8

func Mask(buttons ...Button) ButtonMask {
	var m ButtonMask
	for _, b := range buttons {
		m |= 1 << b
	}
	return m
}

func (m ButtonMask) Has(b Button) bool {
	return m&(1<<b) != 0
}

// Buttons is an Input backed by two masks.
type Buttons struct {
	HeldMask    ButtonMask
	PressedMask ButtonMask
}

func (b Buttons) Held(button Button) bool    { return b.HeldMask.Has(button) }
func (b Buttons) Pressed(button Button) bool { return b.PressedMask.Has(button) }

// Controls is the singleton through which systems read the current input.
type Controls struct {
	Input Input
}

func (c *Controls) held(b Button) bool {
	return c.Input != nil && c.Input.Held(b)
}
