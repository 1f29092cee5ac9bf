package w4

// Buttons is the state of a gamepad, one bit per button.
type Buttons uint8

const (
	ButtonX     Buttons = 1 << 0
	ButtonZ     Buttons = 1 << 1
	ButtonLeft  Buttons = 1 << 4
	ButtonRight Buttons = 1 << 5
	ButtonUp    Buttons = 1 << 6
	ButtonDown  Buttons = 1 << 7
)

// Has reports whether all of the buttons in mask are held.
func (b Buttons) Has(mask Buttons) bool { return b&mask == mask }

// Gamepad returns the buttons held on the gamepad of the given player (0-3).
func Gamepad(player int) Buttons {
	if player < 0 || player > 3 {
		panic("w4: gamepad index out of range")
	}
	return Buttons(reg8(GamepadAddr + player))
}

// MouseButtons is the state of the mouse buttons, one bit per button.
type MouseButtons uint8

const (
	MouseLeft   MouseButtons = 1 << 0
	MouseRight  MouseButtons = 1 << 1
	MouseMiddle MouseButtons = 1 << 2
)

func (b MouseButtons) Has(mask MouseButtons) bool { return b&mask == mask }

// Mouse returns the pointer position in screen coordinates and the
// buttons held. The position may lie outside the screen.
func Mouse() (x, y int16, buttons MouseButtons) {
	return int16(reg16(MouseXAddr)),
		int16(reg16(MouseYAddr)),
		MouseButtons(reg8(MouseButtonsAddr))
}

// SystemFlags configures host behaviour.
type SystemFlags uint8

const (
	// SystemPreserveFramebuffer stops the host clearing the
	// framebuffer before each update.
	SystemPreserveFramebuffer SystemFlags = 1 << 0
	// SystemHideGamepadOverlay hides the on-screen gamepad on
	// touch devices.
	SystemHideGamepadOverlay SystemFlags = 1 << 1
)

func GetSystemFlags() SystemFlags  { return SystemFlags(reg8(SystemFlagsAddr)) }
func SetSystemFlags(f SystemFlags) { setReg8(SystemFlagsAddr, byte(f)) }

// NetPlay is the read-only netplay register.
type NetPlay uint8

// PlayerIndex returns the local player's index (0-3).
func (n NetPlay) PlayerIndex() int { return int(n & 0x3) }

// Active reports whether a netplay session is in progress.
func (n NetPlay) Active() bool { return n&0x4 != 0 }

func GetNetPlay() NetPlay { return NetPlay(reg8(NetPlayAddr)) }
