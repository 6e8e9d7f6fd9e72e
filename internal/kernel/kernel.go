// Package kernel ties every subsystem package together into the boot
// sequence: console, GDT, IDT, PIC, timer, frame allocator, heap,
// filesystem, paging, keyboard, shell. Grounded on kernel.go's KernelMain
// for the "narrate every init step, then fall into a loop" shape, and on
// rust_main (lib.rs) for the exact subsystem ordering.
package kernel

import (
	"github.com/contin-os/kernel/internal/console"
	"github.com/contin-os/kernel/internal/gdt"
	"github.com/contin-os/kernel/internal/heap"
	"github.com/contin-os/kernel/internal/idt"
	"github.com/contin-os/kernel/internal/isr"
	"github.com/contin-os/kernel/internal/keyboard"
	"github.com/contin-os/kernel/internal/klog"
	"github.com/contin-os/kernel/internal/pic"
	"github.com/contin-os/kernel/internal/pmm"
	"github.com/contin-os/kernel/internal/ramfs"
	"github.com/contin-os/kernel/internal/shell"
	"github.com/contin-os/kernel/internal/timer"
	"github.com/contin-os/kernel/internal/vmm"
)

// Config collects the boot-time parameters that would otherwise be
// scattered literals in a single subsystem's const block (timer_qemu.go's
// PIT divisor, mmu.go's memory-layout constants). A from-scratch kernel
// has no config file to load these from, so the defaults below are fixed
// constants matching rust_kernel's literals.
type Config struct {
	// TimerHz is the PIT channel 0 rate. Defaults to 1000.
	TimerHz uint32
	// HeapSize is the kmalloc/kfree arena size in bytes. Defaults to 8 MiB.
	HeapSize uint32
}

// DefaultConfig returns the standard boot parameters.
func DefaultConfig() Config {
	return Config{
		TimerHz:  1000,
		HeapSize: 8 * 1024 * 1024,
	}
}

// Kernel holds every subsystem handle created during Boot. Global mutable
// state (rust_kernel's `static mut` TERMINAL/ACTIVE/BUFFER) becomes fields
// on this struct instead.
type Kernel struct {
	Term   *console.Terminal
	Frames *pmm.Allocator
	Heap   *heap.Heap
	FS     *ramfs.FileSystem
	Pages  *vmm.Directory
	Shell  *shell.Shell
	Editor *shell.Editor
}

// active is the one kernel-wide handle Panic needs to reach the console
// without every call site threading a *Kernel through. It is set once at
// the end of Boot and never mutated afterward.
var active *Kernel

// Boot brings the machine up in order: console init, GDT, IDT, PIC
// remap, timer arm, frame allocator zero, heap init, filesystem init,
// paging fill + enable, keyboard install, then interrupts on. It runs
// the boot-time self-tests (grounded on tests/mod.rs) before installing
// the shell, panicking on the first failure exactly as rust_main does.
func Boot(cfg Config) *Kernel {
	term := console.NewHardware()
	term.Initialize()
	klog.SetTerminal(term)
	for _, row := range console.Banner {
		term.WriteLine(row)
	}
	term.WriteLine("Hello from ContinuumOS!")
	klog.Success("Terminal initialized")

	gdt.Init()
	klog.Success("GDT loaded")

	idt.Init()
	klog.Success("IDT loaded")

	pic.Remap()
	isr.SendEOI = pic.SendEOI
	klog.Success("PIC remapped")

	timer.Init(cfg.TimerHz)
	klog.Success("Timer armed")

	frames := pmm.New()
	klog.Success("Frame allocator ready")

	heapArena := heap.New(cfg.HeapSize)
	klog.Success("Heap initialized")

	fs := ramfs.New()
	klog.Success("Filesystem initialized")

	pages := vmm.New()
	pages.Enable()
	klog.Success("Paging enabled")

	k := &Kernel{
		Term:   term,
		Frames: frames,
		Heap:   heapArena,
		FS:     fs,
		Pages:  pages,
	}
	active = k

	runSelfTests(k)

	sh := shell.New(term)
	k.Shell = sh
	k.Editor = shell.NewEditor(term, func() { keyboard.SetActive(sh) })

	keyboard.SetActive(sh)
	keyboard.Install()
	klog.Success("Keyboard installed")

	sh.Init()

	enableInterrupts()
	klog.Success("Interrupts enabled")

	return k
}
