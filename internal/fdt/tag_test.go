package fdt

import (
	"errors"
	"testing"
)

func TestTagFromUint32(t *testing.T) {
	valid := map[uint32]Tag{
		0x1:        TagBeginNode,
		0x2:        TagEndNode,
		0x3:        TagProp,
		0x9:        TagEnd,
		0xd00dfeed: TagMagic,
	}
	for v, want := range valid {
		got, err := TagFromUint32(v)
		if err != nil {
			t.Errorf("TagFromUint32(%#x): %v", v, err)
			continue
		}
		if got != want {
			t.Errorf("TagFromUint32(%#x) = %v, want %v", v, got, want)
		}
	}

	invalid := []uint32{0x0, 0x4, 0x5, 0x8, 0xa, 0x10, 0xd00dfeee, 0xfeedd00d, 0xffffffff}
	for _, v := range invalid {
		if _, err := TagFromUint32(v); !errors.Is(err, ErrInvalidTag) {
			t.Errorf("TagFromUint32(%#x) error = %v, want ErrInvalidTag", v, err)
		}
	}
}

func TestTagString(t *testing.T) {
	if got := TagBeginNode.String(); got != "BEGIN_NODE" {
		t.Errorf("TagBeginNode.String() = %q", got)
	}
	if got := Tag(0x42).String(); got != "unknown(0x00000042)" {
		t.Errorf("Tag(0x42).String() = %q", got)
	}
}
