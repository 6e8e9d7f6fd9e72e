package syscall

import (
	"testing"

	"github.com/contin-os/kernel/internal/ramfs"
)

func TestDispatchOpenReadWriteClose(t *testing.T) {
	fs := ramfs.New()
	file := fs.Touch("a")

	fd := Dispatch(fs, Open, file, 0, nil)
	if fd < 0 {
		t.Fatal("open failed")
	}

	n := Dispatch(fs, Write, 0, fd, []byte("hi"))
	if n != 2 {
		t.Fatalf("write = %d, want 2", n)
	}

	if rc := Dispatch(fs, Close, 0, fd, nil); rc != 0 {
		t.Fatalf("close = %d, want 0", rc)
	}

	fd = Dispatch(fs, Open, file, 0, nil)
	if fd < 0 {
		t.Fatal("reopen failed")
	}
	buf := make([]byte, 2)
	if n := Dispatch(fs, Read, 0, fd, buf); n != 2 || string(buf) != "hi" {
		t.Fatalf("read = %d, %q, want 2, %q", n, buf, "hi")
	}
}

func TestDispatchUnknownOpcode(t *testing.T) {
	fs := ramfs.New()
	if n := Dispatch(fs, 99, 0, 0, nil); n != -1 {
		t.Errorf("unknown opcode = %d, want -1", n)
	}
}
