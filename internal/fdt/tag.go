package fdt

import "fmt"

// Tag is the 4-byte big-endian discriminator preceding each record in the
// structure block. The magic word is modeled as a tag because it occupies the
// same wire slot at the start of the blob.
type Tag uint32

const (
	TagBeginNode Tag = 0x1
	TagEndNode   Tag = 0x2
	TagProp      Tag = 0x3
	TagEnd       Tag = 0x9
	TagMagic     Tag = 0xd00dfeed
)

// TagFromUint32 validates a wire value against the recognized tag set.
func TagFromUint32(v uint32) (Tag, error) {
	switch t := Tag(v); t {
	case TagBeginNode, TagEndNode, TagProp, TagEnd, TagMagic:
		return t, nil
	default:
		return 0, fmt.Errorf("%#08x: %w", v, ErrInvalidTag)
	}
}

func (t Tag) String() string {
	switch t {
	case TagBeginNode:
		return "BEGIN_NODE"
	case TagEndNode:
		return "END_NODE"
	case TagProp:
		return "PROP"
	case TagEnd:
		return "END"
	case TagMagic:
		return "MAGIC"
	default:
		return fmt.Sprintf("unknown(%#08x)", uint32(t))
	}
}
