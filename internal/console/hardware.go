package console

import (
	"unsafe"

	"github.com/contin-os/kernel/internal/ioport"
)

const framebufferPhysAddr = 0xB8000

// crtcCursor drives the VGA CRTC's cursor-location registers over ports
// 0x3D4/0x3D5, mirroring vga.rs's update_cursor.
type crtcCursor struct{}

func (crtcCursor) SetCursor(pos uint16) {
	ioport.Out8(0x3D4, 0x0F)
	ioport.Out8(0x3D5, uint8(pos&0xFF))
	ioport.Out8(0x3D4, 0x0E)
	ioport.Out8(0x3D5, uint8((pos>>8)&0xFF))
}

// NewHardware returns a Terminal backed by the real memory-mapped text
// framebuffer at physical 0xB8000 and the CRTC cursor ports. This is the
// constructor internal/kernel's boot sequencer uses; New (console.go)
// stays hardware-free for host tests.
func NewHardware() *Terminal {
	buffer := unsafe.Slice((*uint16)(unsafe.Pointer(uintptr(framebufferPhysAddr))), Width*Height)
	return New(buffer, crtcCursor{})
}
