package memview

import (
    "context"
    "testing"

    nes "github.com/kazzmir/nescore/lib"
)

func TestRender(test *testing.T){
    view := MakeMemoryView(context.Background())

    cpu := nes.NewCPU(nes.Options{})
    cpu.WriteByte(0x0001, 0x80)
    cpu.PC = 0x0002
    view.Publish(cpu)

    if !view.render() {
        test.Fatalf("expected a render after publishing")
    }

    if view.render() {
        test.Fatalf("nothing changed so there should be nothing to render")
    }

    /* byte 0 is zero so it is black */
    if view.pixels[0] != 0 || view.pixels[1] != 0 || view.pixels[2] != 0 || view.pixels[3] != 255 {
        test.Fatalf("expected black for address 0 but got %v", view.pixels[0:4])
    }

    expected := byteColor(0x80)
    if view.pixels[4] != expected.R || view.pixels[5] != expected.G || view.pixels[6] != expected.B {
        test.Fatalf("unexpected colour for address 1: %v", view.pixels[4:8])
    }

    if view.pixels[8] != 255 || view.pixels[9] != 255 || view.pixels[10] != 255 {
        test.Fatalf("expected the pc to be drawn white: %v", view.pixels[8:12])
    }
}
