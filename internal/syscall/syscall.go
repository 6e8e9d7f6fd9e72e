// Package syscall is the kernel's numeric opcode dispatcher, mapping a
// small fixed set of opcodes onto ramfs operations. Grounded on
// syscalls.rs.
package syscall

import "github.com/contin-os/kernel/internal/ramfs"

// Opcodes recognized by Dispatch.
const (
	Open  = 0
	Read  = 1
	Write = 2
	Close = 3
)

// Dispatch is a pure function of its arguments plus filesystem state.
// Argument interpretation depends on the opcode: Open takes a node id;
// Read/Write take (fd, buf); Close takes fd. Unrecognized opcodes return
// -1.
func Dispatch(fs *ramfs.FileSystem, num uint32, arg1 ramfs.NodeID, fd int, buf []byte) int {
	switch num {
	case Open:
		return fs.Open(arg1)
	case Read:
		return fs.Read(fd, buf)
	case Write:
		return fs.Write(fd, buf)
	case Close:
		fs.Close(fd)
		return 0
	default:
		return -1
	}
}
