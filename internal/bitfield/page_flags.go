package bitfield

// PageFlags represents the low bits of a page-table or page-directory
// entry that aren't part of the physical frame address.
type PageFlags struct {
	Present bool `bitfield:",1"`
	Write   bool `bitfield:",1"`
	// Reserved covers the remaining flag and frame-address bits of a PDE/PTE.
	Reserved uint32 `bitfield:",30"`
}

// PackPageFlags packs a PageFlags into the low bits of a page-table entry.
func PackPageFlags(flags PageFlags) (uint32, error) {
	packed, err := Pack(flags, &Config{NumBits: 32})
	if err != nil {
		return 0, err
	}
	return uint32(packed), nil
}

// UnpackPageFlags is the inverse of PackPageFlags.
func UnpackPageFlags(packed uint32) PageFlags {
	var flags PageFlags
	_ = Unpack(uint64(packed), &flags)
	return flags
}
