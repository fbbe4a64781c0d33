package memview

import (
    "context"
    "image/color"
    "sync"

    nes "github.com/kazzmir/nescore/lib"

    "github.com/hajimehoshi/ebiten/v2"
    "github.com/hajimehoshi/ebiten/v2/inpututil"
)

/* the 64k address space drawn as a 256x256 image, one pixel per byte with
 * page 0 at the top
 */
const Width = 256
const Height = 256

/* MemoryView is an ebiten game that shows whatever memory the cpu goroutine
 * last published. The cpu side calls Publish between batches of steps.
 */
type MemoryView struct {
    lock sync.Mutex
    memory nes.Memory
    pc uint16
    dirty bool

    pixels []byte
    image *ebiten.Image
    quit context.Context
}

func MakeMemoryView(quit context.Context) *MemoryView {
    return &MemoryView{
        pixels: make([]byte, Width * Height * 4),
        quit: quit,
        dirty: true,
    }
}

func (view *MemoryView) Publish(cpu *nes.CPU){
    view.lock.Lock()
    defer view.lock.Unlock()
    view.memory = cpu.Memory
    view.pc = cpu.PC
    view.dirty = true
}

/* zero is black, everything else gets a colour that depends on the value so
 * code and data stand out from each other
 */
func byteColor(value byte) color.RGBA {
    if value == 0 {
        return color.RGBA{A: 255}
    }
    return color.RGBA{
        R: value,
        G: (value << 3) | 0x20,
        B: 255 - value,
        A: 255,
    }
}

/* fill pixels from the last published memory, the byte at pc is drawn white */
func (view *MemoryView) render() bool {
    view.lock.Lock()
    defer view.lock.Unlock()

    if !view.dirty {
        return false
    }

    for address := 0; address < nes.MemorySize; address++ {
        pixel := byteColor(view.memory[address])
        if uint16(address) == view.pc {
            pixel = color.RGBA{R: 255, G: 255, B: 255, A: 255}
        }
        view.pixels[address * 4 + 0] = pixel.R
        view.pixels[address * 4 + 1] = pixel.G
        view.pixels[address * 4 + 2] = pixel.B
        view.pixels[address * 4 + 3] = pixel.A
    }

    view.dirty = false
    return true
}

func (view *MemoryView) Update() error {
    select {
        case <-view.quit.Done():
            return ebiten.Termination
        default:
    }

    keys := inpututil.AppendJustPressedKeys(nil)
    for _, key := range keys {
        switch key {
            case ebiten.KeyEscape, ebiten.KeyCapsLock:
                return ebiten.Termination
        }
    }

    return nil
}

func (view *MemoryView) Draw(screen *ebiten.Image) {
    if view.image == nil {
        view.image = ebiten.NewImage(Width, Height)
    }

    if view.render() {
        view.image.WritePixels(view.pixels)
    }

    var options ebiten.DrawImageOptions
    bounds := screen.Bounds()
    options.GeoM.Scale(float64(bounds.Dx()) / Width, float64(bounds.Dy()) / Height)
    screen.DrawImage(view.image, &options)
}

func (view *MemoryView) Layout(outsideWidth, outsideHeight int) (int, int) {
    return outsideWidth, outsideHeight
}

/* Run opens the window and blocks until it is closed or quit is cancelled */
func Run(view *MemoryView, title string) error {
    ebiten.SetWindowTitle(title)
    ebiten.SetWindowSize(Width * 3, Height * 3)
    ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

    return ebiten.RunGame(view)
}
