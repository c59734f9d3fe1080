package mode

type ModeDef string

const (
	NormalMode       ModeDef = "normal"
	ConfirmResetMode ModeDef = "confirm-reset"
	ConfirmClearMode ModeDef = "confirm-clear"
)

// Confirming reports whether the mode is waiting on a yes/no answer.
func (m ModeDef) Confirming() bool {
	return m == ConfirmResetMode || m == ConfirmClearMode
}
