package wasmhost

import (
	"github.com/localekit/resbridge"
)

// lowerString copies text into guest memory and stores the (ptr, len) pair
// at the 8-byte return area. Empty strings store (0, 0) without allocating.
func lowerString(mem resbridge.Memory, alloc resbridge.Allocator, retptr uint32, text string) error {
	data := []byte(text)

	var ptr uint32
	if len(data) > 0 {
		p, err := alloc.Alloc(uint32(len(data)), 1)
		if err != nil {
			return err
		}
		if err := mem.Write(p, data); err != nil {
			return err
		}
		ptr = p
	}

	if err := mem.WriteU32(retptr, ptr); err != nil {
		return err
	}
	return mem.WriteU32(retptr+4, uint32(len(data)))
}
