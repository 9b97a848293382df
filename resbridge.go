package resbridge

// StringResolver resolves an integer resource identifier to localized text.
// Identifier validity is defined entirely by the implementation; callers do
// not pre-validate.
type StringResolver interface {
	String(id uint32) (string, error)
}

// ResourceProvider is implemented by application contexts that can hand out
// their resource resolution capability.
type ResourceProvider interface {
	Resources() StringResolver
}

// Memory represents guest linear memory as seen from the host side.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	ReadU32(offset uint32) (uint32, error)
	WriteU32(offset uint32, value uint32) error
}

// Allocator allocates memory inside the guest's linear memory.
type Allocator interface {
	Alloc(size, align uint32) (uint32, error)
}
