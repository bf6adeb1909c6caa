package fdt

import "encoding/binary"

// Test blob construction helpers. Layout is header | structure | strings,
// with offsets computed from the version-gated header length.

func be32(vals ...uint32) []byte {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint32(b[i*4:], v)
	}
	return b
}

// nodeName encodes a node name as it appears after BEGIN_NODE: the bytes,
// a NUL terminator, then zero padding to a 4-byte boundary.
func nodeName(name string) []byte {
	b := append([]byte(name), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

// prop encodes a PROP record with payload padding.
func prop(nameOff uint32, value []byte) []byte {
	b := be32(uint32(TagProp), uint32(len(value)), nameOff)
	b = append(b, value...)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

func headerLen(version uint32) int {
	n := 28
	if version > 2 {
		n += 4
	}
	if version > 3 {
		n += 4
	}
	if version > 17 {
		n += 4
	}
	return n
}

// buildBlob assembles a complete blob. boot_cpuid_phys is 0xaa when the
// version carries it, and the size fields hold the real block sizes.
func buildBlob(version uint32, structure, stringsBlk []byte) []byte {
	offStruct := headerLen(version)
	offStrings := offStruct + len(structure)
	total := offStrings + len(stringsBlk)

	lastComp := version
	if lastComp > 16 {
		lastComp = 16
	}

	blob := be32(uint32(TagMagic), uint32(total), uint32(offStruct), uint32(offStrings), 0, version, lastComp)
	if version > 2 {
		blob = append(blob, be32(0xaa)...)
	}
	if version > 3 {
		blob = append(blob, be32(uint32(len(stringsBlk)))...)
	}
	if version > 17 {
		blob = append(blob, be32(uint32(len(structure)))...)
	}
	blob = append(blob, structure...)
	blob = append(blob, stringsBlk...)
	return blob
}

// minimalStructure is a root node with one property and no children:
// compatible = "test\0", name offset 0.
func minimalStructure() []byte {
	var s []byte
	s = append(s, be32(uint32(TagBeginNode))...)
	s = append(s, nodeName("")...)
	s = append(s, prop(0, []byte("test\x00"))...)
	s = append(s, be32(uint32(TagEndNode), uint32(TagEnd))...)
	return s
}

func minimalBlob(version uint32) []byte {
	return buildBlob(version, minimalStructure(), []byte("compatible\x00"))
}
