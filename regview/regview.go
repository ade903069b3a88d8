// regview opens an SDL window onto the WASM-4 register region and runs a
// small viewer cart against it. Arrow keys plus X/Z drive gamepad 1 and the
// mouse drives the mouse registers. Every register change is traced to stderr.
//
// The bottom of the screen shows the 4 palette swatches. X rotates the palette,
// Z saves it to disk (if -disk is given) and it's restored on the next start.
package main

import (
	"flag"
	"image/draw"
	"log"
	"sync"
	"time"

	"github.com/jmchacon/wasm4/console"
	"github.com/jmchacon/wasm4/gamepad"
	"github.com/jmchacon/wasm4/io"
	"github.com/jmchacon/wasm4/w4"
	"github.com/spf13/afero"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	scale = flag.Int("scale", 3, "Window scale factor for the 160x160 screen")
	disk  = flag.String("disk", "", "If set diskr/diskw persist to this file")
	debug = flag.Bool("debug", false, "If true will emit a register dump every frame")
)

// key reads one scancode from the SDL keyboard state.
type key struct {
	code sdl.Scancode
}

func (k *key) Input() bool {
	return sdl.GetKeyboardState()[k.code] != 0
}

// pointer is sampled from SDL once per frame and scaled back to screen pixels.
type pointer struct {
	x, y    int16
	buttons uint8
}

func (p *pointer) Position() (int16, int16) {
	return p.x, p.y
}

func (p *pointer) Input() uint8 {
	return p.buttons
}

func (p *pointer) update() {
	x, y, state := sdl.GetMouseState()
	p.x = int16(x / int32(*scale))
	p.y = int16(y / int32(*scale))
	p.buttons = 0x00
	// SDL numbers buttons left, middle, right.
	if state&(1<<(sdl.BUTTON_LEFT-1)) != 0 {
		p.buttons |= 0x01
	}
	if state&(1<<(sdl.BUTTON_RIGHT-1)) != 0 {
		p.buttons |= 0x02
	}
	if state&(1<<(sdl.BUTTON_MIDDLE-1)) != 0 {
		p.buttons |= 0x04
	}
}

var window *sdl.Window
var surface *sdl.Surface

func main() {
	flag.Parse()
	if *scale < 1 {
		log.Fatal("-scale must be at least 1")
	}
	sdl.Main(func() {
		var wg sync.WaitGroup
		wg.Add(1)
		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
				log.Fatalf("Can't init SDL: %v", err)
			}

			var err error
			size := int32(w4.SCREEN_SIZE * *scale)
			window, err = sdl.CreateWindow("regview", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, size, size, sdl.WINDOW_SHOWN)
			if err != nil {
				log.Fatalf("Can't create window: %v", err)
			}
			surface, err = window.GetSurface()
			if err != nil {
				log.Fatalf("Can't get window surface: %v", err)
			}
			wg.Done()
		})
		wg.Wait()
		defer func() {
			sdl.Do(func() {
				window.Destroy()
				sdl.Quit()
			})
		}()

		p1 := &io.Buttons{}
		for bit, code := range map[gamepad.Button]sdl.Scancode{
			gamepad.X:     sdl.SCANCODE_X,
			gamepad.Z:     sdl.SCANCODE_Z,
			gamepad.Left:  sdl.SCANCODE_LEFT,
			gamepad.Right: sdl.SCANCODE_RIGHT,
			gamepad.Up:    sdl.SCANCODE_UP,
			gamepad.Down:  sdl.SCANCODE_DOWN,
		} {
			p1[bitIndex(bit)] = &key{code}
		}
		ptr := &pointer{}

		def := &console.Def{
			Gamepads:     [4]io.Port8{p1},
			Mouse:        ptr,
			MouseButtons: ptr,
			Image:        surface,
			FrameDone: func(draw.Image) {
				sdl.Do(func() {
					window.UpdateSurface()
				})
			},
			Debug: *debug,
		}
		if *disk != "" {
			def.Disk = afero.NewOsFs()
			def.DiskPath = *disk
		}
		c, err := console.Init(def)
		if err != nil {
			log.Fatalf("Can't init console: %v", err)
		}

		v := newViewer()
		tick := time.NewTicker(time.Second / 60)
		defer tick.Stop()
		for range tick.C {
			quit := false
			sdl.Do(func() {
				for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
					if _, ok := e.(*sdl.QuitEvent); ok {
						quit = true
					}
				}
				ptr.update()
				if err := c.Tick(); err != nil {
					log.Fatalf("Tick error: %v", err)
				}
			})
			if quit {
				return
			}
			v.update()
			if d := c.Debug(); d != "" {
				log.Print(d)
			}
			c.TickDone()
		}
	})
}

// bitIndex returns the bit number of a single bit button.
func bitIndex(b gamepad.Button) int {
	i := 0
	for b > 1 {
		b >>= 1
		i++
	}
	return i
}
