package sim

//go:generate go tool stringer -type=Mode -trimprefix=Mode

// Mode is the overall state of a game.
type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
	// ModeLost is terminal.
	ModeLost
)

// Game is the singleton holding session state.
type Game struct {
	Mode  Mode
	Score int
}
