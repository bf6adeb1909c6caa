package fdt

import "fmt"

// MaxDepth caps node nesting. Real device trees are a handful of levels
// deep; the limit only exists so a hostile blob cannot exhaust the stack.
const MaxDepth = 1024

// Decoder walks a blob's structure block with a bounds-checked cursor,
// resolving property names through the strings block as it goes. A Decoder
// is single-use; create one per parse.
type Decoder struct {
	cur        *cursor
	stringsOff int
}

// NewDecoder prepares a decoder over buf. The buffer is borrowed read-only
// for the duration of the parse and never retained by the resulting tree.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{cur: newCursor(buf)}
}

// Pos returns the decoder's current byte offset in the blob.
func (d *Decoder) Pos() int {
	return d.cur.Pos()
}

// Parse decodes buf into a tree. On failure the returned error is an
// *OffsetError wrapping one of the sentinel errors, positioned at the byte
// offset where decoding stopped.
func Parse(buf []byte) (*Tree, error) {
	d := NewDecoder(buf)
	t, err := d.Parse()
	if err != nil {
		return nil, &OffsetError{Offset: d.Pos(), Err: err}
	}
	return t, nil
}

// Parse runs the decode. Most callers want the package-level Parse, which
// also attaches the failure offset.
func (d *Decoder) Parse() (*Tree, error) {
	hdr, err := d.header()
	if err != nil {
		return nil, err
	}

	if err := d.cur.seek(int(hdr.OffDTStruct)); err != nil {
		return nil, err
	}

	root, err := d.node(0)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrNoRootFound
	}

	t := &Tree{Header: hdr, Root: root}

	// A trailing END tag is consumed when present but never required;
	// Verify reports its absence.
	if v, err := d.cur.peekUint32(); err == nil && Tag(v) == TagEnd {
		_, _ = d.cur.readUint32()
		t.Terminated = true
	}

	return t, nil
}

// header consumes the fixed fields plus whichever version-gated fields the
// blob's version includes, and records the strings-block base for property
// name resolution.
func (d *Decoder) header() (Header, error) {
	var hdr Header

	tag, err := d.readTag()
	if err != nil {
		return hdr, err
	}
	if tag != TagMagic {
		return hdr, ErrInvalidMagic
	}

	if hdr.TotalSize, err = d.cur.readUint32(); err != nil {
		return hdr, err
	}
	if hdr.OffDTStruct, err = d.cur.readUint32(); err != nil {
		return hdr, err
	}
	if hdr.OffDTStrings, err = d.cur.readUint32(); err != nil {
		return hdr, err
	}
	d.stringsOff = int(hdr.OffDTStrings)
	if hdr.OffMemRsvmap, err = d.cur.readUint32(); err != nil {
		return hdr, err
	}
	if hdr.Version, err = d.cur.readUint32(); err != nil {
		return hdr, err
	}
	if hdr.LastCompVersion, err = d.cur.readUint32(); err != nil {
		return hdr, err
	}

	if hdr.Version > 2 {
		if hdr.BootCpuidPhys, err = d.cur.readUint32(); err != nil {
			return hdr, err
		}
	}
	if hdr.Version > 3 {
		if hdr.SizeDTStrings, err = d.cur.readUint32(); err != nil {
			return hdr, err
		}
	}
	if hdr.Version > 17 {
		if hdr.SizeDTStruct, err = d.cur.readUint32(); err != nil {
			return hdr, err
		}
	}

	return hdr, nil
}

func (d *Decoder) readTag() (Tag, error) {
	v, err := d.cur.readUint32()
	if err != nil {
		return 0, err
	}
	return TagFromUint32(v)
}

func (d *Decoder) peekTag() (Tag, error) {
	v, err := d.cur.peekUint32()
	if err != nil {
		return 0, err
	}
	return TagFromUint32(v)
}

// acceptTag consumes the next tag only if it matches. The lookahead lets the
// recursive descent branch between properties, children, and node end
// without committing.
func (d *Decoder) acceptTag(want Tag) (bool, error) {
	t, err := d.peekTag()
	if err != nil {
		return false, err
	}
	if t != want {
		return false, nil
	}
	_, _ = d.cur.readUint32()
	return true, nil
}

func (d *Decoder) expectTag(want Tag) error {
	ok, err := d.acceptTag(want)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("want %v: %w", want, ErrUnexpectedTag)
	}
	return nil
}

// node decodes one node and its subtree. Returns (nil, nil) when the next
// tag does not open a node, which is how a caller detects the end of a
// sibling list.
func (d *Decoder) node(depth int) (*Node, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("deeper than %d: %w", MaxDepth, ErrMaxDepth)
	}

	ok, err := d.acceptTag(TagBeginNode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	name, err := d.blockString0()
	if err != nil {
		return nil, err
	}
	n := &Node{Name: name}

	for {
		ok, err := d.acceptTag(TagProp)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		prop, err := d.property()
		if err != nil {
			return nil, err
		}
		n.Properties = append(n.Properties, prop)
	}

	for {
		child, err := d.node(depth + 1)
		if err != nil {
			return nil, err
		}
		if child == nil {
			break
		}
		n.Children = append(n.Children, child)
	}

	if err := d.expectTag(TagEndNode); err != nil {
		return nil, err
	}

	return n, nil
}

// property decodes the body of a PROP record (the tag is already consumed):
// payload length, name offset, payload, then realignment. Pad bytes are
// skipped, never returned.
func (d *Decoder) property() (Property, error) {
	length, err := d.cur.readUint32()
	if err != nil {
		return Property{}, err
	}
	nameOff, err := d.cur.readUint32()
	if err != nil {
		return Property{}, err
	}

	data, err := d.cur.readBytes(int(length))
	if err != nil {
		return Property{}, err
	}
	value := append([]byte(nil), data...)

	if err := d.cur.align(); err != nil {
		return Property{}, err
	}

	name, err := d.farString0(int(nameOff))
	if err != nil {
		return Property{}, err
	}

	return Property{Name: name, Value: value, NameOff: nameOff}, nil
}

// farString0 resolves a NUL-terminated string at the given offset into the
// strings block, then restores the cursor so structure parsing resumes
// exactly where it left off.
func (d *Decoder) farString0(offset int) ([]byte, error) {
	save := d.cur.Pos()

	if err := d.cur.seek(d.stringsOff + offset); err != nil {
		return nil, err
	}
	s, err := d.cur.readString0()
	if err != nil {
		return nil, err
	}
	name := append([]byte(nil), s...)

	if err := d.cur.seek(save); err != nil {
		return nil, err
	}
	return name, nil
}

// blockString0 reads a node name, which occupies whole 4-byte blocks with
// NUL padding. The terminator can land anywhere in the final block, so the
// name is located block by block, then re-read as one aligned span with the
// padding run trimmed. Distinct from readString0, which is byte-granular and
// only used inside the strings block.
func (d *Decoder) blockString0() ([]byte, error) {
	start := d.cur.Pos()
	blocks := 0
	trim := 0

search:
	for {
		blk, err := d.cur.readBytes(4)
		if err != nil {
			return nil, err
		}
		blocks++
		for i, b := range blk {
			if b == 0 {
				trim = 4 - i
				break search
			}
		}
	}

	if err := d.cur.seek(start); err != nil {
		return nil, err
	}
	data, err := d.cur.readBytes(blocks * 4)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), data[:len(data)-trim]...), nil
}
