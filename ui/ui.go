/*
负责ui渲染，接受控制的模块
模拟在单独的goroutine里跑，和窗口之间只通过frames/events两个有界channel通信
*/

package ui

import (
	"context"
	"image"

	"fyne.io/fyne"
	"fyne.io/fyne/app"
	"fyne.io/fyne/canvas"
	"fyne.io/fyne/driver/desktop"

	"github.com/55utah/yane/logger"
	"github.com/55utah/yane/nes"
)

const (
	frameBuffer = 2
	eventBuffer = 32
)

// OpenWindow shows the console output scaled by scale and blocks until the
// window is closed or emulation stops with an error.
func OpenWindow(console *nes.Console, scale int) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := make(chan *image.RGBA, frameBuffer)
	events := make(chan nes.InputEvent, eventBuffer)

	myApp := app.New()
	w := myApp.NewWindow("yane")
	w.Resize(fyne.NewSize(nes.ScreenWidth*scale, nes.ScreenHeight*scale))
	w.SetFixedSize(true)

	screen := canvas.NewImageFromImage(Resize(console.Buffer(), scale))
	screen.FillMode = canvas.ImageFillOriginal
	w.SetContent(screen)

	if deskCanvas, ok := w.Canvas().(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			sendKey(events, ev, true)
		})
		deskCanvas.SetOnKeyUp(func(ev *fyne.KeyEvent) {
			sendKey(events, ev, false)
		})
	}

	runErr := make(chan error, 1)
	go func() {
		err := RunView(ctx, console, frames, events)
		runErr <- err
		if err != nil {
			myApp.Quit()
		}
	}()

	go changeContent(ctx, screen, frames, scale)

	w.ShowAndRun()
	cancel()
	return <-runErr
}

// 键盘事件不能阻塞ui线程，channel满了就丢弃
func sendKey(events chan<- nes.InputEvent, ev *fyne.KeyEvent, pressed bool) {
	b, ok := keyParse(ev)
	if !ok {
		return
	}
	select {
	case events <- nes.InputEvent{Button: b, Pressed: pressed}:
	default:
		logger.Logf("ui", "input queue full, dropped %v", b)
	}
}

func changeContent(ctx context.Context, screen *canvas.Image, frames <-chan *image.RGBA, scale int) {
	for {
		select {
		case <-ctx.Done():
			return
		case frame := <-frames:
			screen.Image = Resize(frame, scale)
			canvas.Refresh(screen)
		}
	}
}
