package bitfield

import "testing"

type gdtAccess struct {
	Accessed    bool   `bitfield:",1"`
	ReadWrite   bool   `bitfield:",1"`
	Direction   bool   `bitfield:",1"`
	Executable  bool   `bitfield:",1"`
	DescType    bool   `bitfield:",1"`
	Privilege   uint32 `bitfield:",2"`
	Present     bool   `bitfield:",1"`
}

func TestPackRejectsOversizedField(t *testing.T) {
	x := gdtAccess{Privilege: 7}
	if _, err := Pack(x, &Config{NumBits: 8}); err == nil {
		t.Fatalf("expected error for out-of-range field")
	}
}

func TestPackRejectsNonStruct(t *testing.T) {
	if _, err := Pack(42, nil); err == nil {
		t.Fatalf("expected error packing a non-struct")
	}
}

func TestPackOrdersFieldsLowBitFirst(t *testing.T) {
	x := gdtAccess{Present: true}
	packed, err := Pack(x, &Config{NumBits: 8})
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if packed != 1<<7 {
		t.Errorf("Pack() = 0x%x, want 0x%x", packed, 1<<7)
	}
}
