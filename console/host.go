//go:build !(tinygo && wasm)

package console

import (
	"os"

	"github.com/jmchacon/wasm4/w4"
	"github.com/spf13/afero"
)

var _ = w4.Host(&Console{})

// Call is one w4 function call recorded during a frame.
type Call struct {
	Name string
	Args []int64
	Data []byte // Copy of any sprite or string passed in.
}

func (c *Console) record(name string, data []byte, args ...int64) {
	var d []byte
	if data != nil {
		d = append([]byte{}, data...)
	}
	c.calls = append(c.calls, Call{Name: name, Args: args, Data: d})
}

// Calls returns the w4 calls made since the last Tick().
func (c *Console) Calls() []Call {
	return c.calls
}

// Blit implements the interface for w4.Host.
func (c *Console) Blit(sprite []byte, x, y int32, width, height, flags uint32) {
	c.record("blit", sprite, int64(x), int64(y), int64(width), int64(height), int64(flags))
}

// BlitSub implements the interface for w4.Host.
func (c *Console) BlitSub(sprite []byte, x, y int32, width, height, srcX, srcY, stride, flags uint32) {
	c.record("blitSub", sprite, int64(x), int64(y), int64(width), int64(height), int64(srcX), int64(srcY), int64(stride), int64(flags))
}

// Line implements the interface for w4.Host.
func (c *Console) Line(x1, y1, x2, y2 int32) {
	c.record("line", nil, int64(x1), int64(y1), int64(x2), int64(y2))
}

// HLine implements the interface for w4.Host.
func (c *Console) HLine(x, y int32, length uint32) {
	c.record("hline", nil, int64(x), int64(y), int64(length))
}

// VLine implements the interface for w4.Host.
func (c *Console) VLine(x, y int32, length uint32) {
	c.record("vline", nil, int64(x), int64(y), int64(length))
}

// Oval implements the interface for w4.Host.
func (c *Console) Oval(x, y int32, width, height uint32) {
	c.record("oval", nil, int64(x), int64(y), int64(width), int64(height))
}

// Rect implements the interface for w4.Host.
func (c *Console) Rect(x, y int32, width, height uint32) {
	c.record("rect", nil, int64(x), int64(y), int64(width), int64(height))
}

// Text implements the interface for w4.Host.
func (c *Console) Text(s string, x, y int32) {
	c.record("text", []byte(s), int64(x), int64(y))
}

// Tone implements the interface for w4.Host. Nothing is synthesized.
func (c *Console) Tone(frequency, duration, volume, flags uint32) {
	c.record("tone", nil, int64(frequency), int64(duration), int64(volume), int64(flags))
	if c.debug {
		c.logger.Printf("tone: freq %.8X duration %.8X volume %.4X flags %.2X", frequency, duration, volume, flags)
	}
}

// Trace implements the interface for w4.Host.
func (c *Console) Trace(s string) {
	c.record("trace", []byte(s))
	c.logger.Print(s)
}

// DiskR implements the interface for w4.Host. It returns the number of bytes
// read which is 0 if nothing has been saved yet.
func (c *Console) DiskR(dst []byte) int {
	if c.disk == nil {
		return 0
	}
	b, err := afero.ReadFile(c.disk, c.diskPath)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Printf("diskr: %v", err)
		}
		return 0
	}
	if len(b) > w4.DISK_SIZE {
		b = b[:w4.DISK_SIZE]
	}
	return copy(dst, b)
}

// DiskW implements the interface for w4.Host. Anything past w4.DISK_SIZE is
// dropped and the short count returned.
func (c *Console) DiskW(src []byte) int {
	if c.disk == nil {
		return 0
	}
	if len(src) > w4.DISK_SIZE {
		src = src[:w4.DISK_SIZE]
	}
	if err := afero.WriteFile(c.disk, c.diskPath, src, 0644); err != nil {
		c.logger.Printf("diskw: %v", err)
		return 0
	}
	return len(src)
}
