package mode

import (
	"testing"

	"github.com/MarvinJWendt/testza"
)

func TestModeStack(t *testing.T) {
	m := NewDefaultMode()
	testza.AssertEqual(t, NormalMode, m.Current())

	m.Set(ConfirmResetMode)
	testza.AssertEqual(t, ConfirmResetMode, m.Current())
	testza.AssertTrue(t, m.Current().Confirming())
	testza.AssertEqual(t, NormalMode, m.First())

	m.Reset()
	testza.AssertEqual(t, NormalMode, m.Current())
	testza.AssertFalse(t, m.Current().Confirming())

	m.Set(ConfirmClearMode)
	m.Set(ConfirmResetMode)
	m.Reset()
	testza.AssertEqual(t, NormalMode, m.Current())
}
