package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazter/pkg/engine/input"
)

// keyCodes maps keys to binding codes
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyF9, "f9"},
}

// gamepadCodes maps standard-layout gamepad buttons to binding codes
var gamepadCodes = []struct {
	button ebiten.StandardGamepadButton
	code   string
}{
	{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
	{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
	{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
	{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
	{ebiten.StandardGamepadButtonRightRight, "gamepad_b"},
}

func resolve(device engineinput.Device, code string) engineinput.Intent {
	return engineinput.Resolve(engineinput.RawInput{Device: device, Code: code, Timestamp: time.Now()})
}

// checkInput returns the intent of the first key just pressed
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		return resolve(engineinput.DeviceKeyboard, "?")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		return resolve(engineinput.DeviceKeyboard, "ctrl_c")
	}
	for _, kc := range keyCodes {
		if inpututil.IsKeyJustPressed(kc.key) {
			return resolve(engineinput.DeviceKeyboard, kc.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkGamepadInput returns the intent of the first gamepad button just pressed
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, gc := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, gc.button) {
				return resolve(engineinput.DeviceGamepad, gc.code)
			}
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

func (e *EbitenRenderer) quitRequested() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) &&
		(inpututil.IsKeyJustPressed(ebiten.KeyC) || inpututil.IsKeyJustPressed(ebiten.KeyQ))
}

func (e *EbitenRenderer) anyKeyJustPressed() bool {
	if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if len(inpututil.AppendJustPressedStandardGamepadButtons(id, nil)) > 0 {
			return true
		}
	}
	return false
}
