package zoom

// Mode is the set of axes a zoom or pan applies to.
type Mode string

func (m Mode) Value() string  { return string(m) }
func (m Mode) String() string { return string(m) }

const (
	ModeX  Mode = "x"
	ModeY  Mode = "y"
	ModeXY Mode = "xy"
)

// Modes lists every mode.
var Modes = []Mode{ModeX, ModeY, ModeXY}

// ModifierKey is the keyboard key that must be held to start an
// interaction.
type ModifierKey string

func (k ModifierKey) Value() string  { return string(k) }
func (k ModifierKey) String() string { return string(k) }

const (
	ModifierNone  ModifierKey = ""
	ModifierCtrl  ModifierKey = "ctrl"
	ModifierAlt   ModifierKey = "alt"
	ModifierShift ModifierKey = "shift"
	ModifierMeta  ModifierKey = "meta"
)

// ModifierKeys lists every modifier key.
var ModifierKeys = []ModifierKey{ModifierCtrl, ModifierAlt, ModifierShift, ModifierMeta}
