package ui

import (
	"fyne.io/fyne"

	"github.com/55utah/yane/nes"
)

// 键盘映射
// J: A  K: B  U: Select  I: Start  W/S/A/D: 上下左右
var keyMap = map[fyne.KeyName]nes.Button{
	fyne.KeyJ: nes.ButtonA,
	fyne.KeyK: nes.ButtonB,
	fyne.KeyU: nes.ButtonSelect,
	fyne.KeyI: nes.ButtonStart,
	fyne.KeyW: nes.ButtonUp,
	fyne.KeyS: nes.ButtonDown,
	fyne.KeyA: nes.ButtonLeft,
	fyne.KeyD: nes.ButtonRight,
}

func keyParse(ev *fyne.KeyEvent) (nes.Button, bool) {
	b, ok := keyMap[ev.Name]
	return b, ok
}
