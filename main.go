// Command kernel is the freestanding entry point: whatever bootstrap
// assembly loads the kernel image transfers control here after switching
// to protected mode. Grounded on kernel.go's KernelMain/main() split:
// KernelMain does the real work, and a never-executed main() exists only
// so the Go compiler doesn't prune KernelMain as unreachable from a
// package main with no other entry point.
package main

import "github.com/contin-os/kernel/internal/kernel"

// KernelMain is called directly by the boot stub. It never returns.
//
//go:nosplit
//go:noinline
func KernelMain() {
	k := kernel.Boot(kernel.DefaultConfig())
	for {
		_ = k
	}
}

// main is never called in the freestanding binary; it exists so
// KernelMain is reachable from a build that still requires a package
// main entry point.
func main() {
	KernelMain()
}
