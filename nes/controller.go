package nes

/*
bit:	0	1	2	3	4	5	6	7
button:	A	B	Select	Start	Up	Down	Left	Right
*/

/*
	写 $4016 的 bit0 作为选通(strobe)：
	strobe 为 1 时，移位寄存器持续从当前按键状态重新装载；
	读 $4016 每次返回移位寄存器最低位，然后右移一位，最高位补1，
	所以读满8次以后都返回1
*/

// Button identifies one of the eight controller buttons.
type Button byte

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

var buttonNames = [8]string{"A", "B", "Select", "Start", "Up", "Down", "Left", "Right"}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "Unknown"
}

// Controller is the standard pad behind 0x4016.
type Controller struct {
	buttons  byte // 当前按下的键
	register byte // 移位寄存器
	strobe   bool
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) KeyDown(b Button) {
	c.buttons |= 1 << (b & 7)
	c.reload()
}

func (c *Controller) KeyUp(b Button) {
	c.buttons &^= 1 << (b & 7)
	c.reload()
}

// Buttons returns the live state, one bit per button.
func (c *Controller) Buttons() byte {
	return c.buttons
}

func (c *Controller) reload() {
	if c.strobe {
		c.register = c.buttons
	}
}

func (c *Controller) read() byte {
	value := c.register & 1
	c.register = c.register>>1 | 0x80
	return value
}

func (c *Controller) write(value byte) {
	c.strobe = value&1 == 1
	c.reload()
}

// OnRegisterRead implements the Device interface.
func (c *Controller) OnRegisterRead(addr uint16, raw byte) byte {
	return c.read()
}

// OnRegisterWrite implements the Device interface.
func (c *Controller) OnRegisterWrite(addr uint16, value byte) {
	c.write(value)
}
