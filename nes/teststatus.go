package nes

/*
blargg的测试ROM把结果写到$6000开始的SRAM里：
$6000       状态，0x80 运行中，0x81 需要按复位，其他值是结果码(0 通过)
$6001-$6003 签名 DE B0 61，有签名才说明数据有效
$6004-      以0结尾的文本
*/

const (
	testStatusAddr = 0x6000
	testTextAddr   = 0x6004
	testTextEnd    = 0x8000
)

var testSignature = [3]byte{0xde, 0xb0, 0x61}

const (
	TestRunning    = 0x80
	TestNeedsReset = 0x81
)

// Status is the result area of a blargg test ROM.
type Status struct {
	Code byte
	Text string
}

func (s Status) Running() bool {
	return s.Code == TestRunning
}

func (s Status) Passed() bool {
	return s.Code == 0
}

// TestStatus reads the blargg result area. ok is false until the ROM has
// written its signature.
func TestStatus(m Peeker) (status Status, ok bool) {
	for i, b := range testSignature {
		if m.Peek(uint16(testStatusAddr+1+i)) != b {
			return Status{}, false
		}
	}

	var text []byte
	for addr := testTextAddr; addr < testTextEnd; addr++ {
		b := m.Peek(uint16(addr))
		if b == 0 {
			break
		}
		text = append(text, b)
	}
	return Status{Code: m.Peek(testStatusAddr), Text: string(text)}, true
}
