package strut

// ============================================================================
// Input Events
// ============================================================================
//
// Events arrive from the external input collaborator as ordinary synchronous
// callbacks. The substrate defines only the value types; delivery and
// platform key mapping are the collaborator's concern.

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on Mac, Win on Windows
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Named keys as delivered by the input collaborator. Printable input arrives
// through KeyEvent.Rune instead.
const (
	KeyEnter      = "Enter"
	KeyBackspace  = "Backspace"
	KeyDelete     = "Delete"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyEscape     = "Escape"
	KeyTab        = "Tab"
	KeySpace      = "Space"
)

// KeyEvent is a single keyboard event. Key holds the named key for
// non-printable input; Rune holds the character for printable input
// (zero when the key is non-printable).
type KeyEvent struct {
	Key  string
	Rune rune
	Mods Modifiers
}

// PointerPhase is the stage of a pointer gesture.
type PointerPhase uint8

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

// PointerEvent is a single pointer (mouse/touch) event in window space.
type PointerEvent struct {
	X     float32
	Y     float32
	Phase PointerPhase
	Mods  Modifiers
}
