// Package fdt decodes Flattened Device Tree (FDT/DTB) blobs.
//
// A DTB is the binary hardware description handed to an operating system by
// its boot loader. The blob is fully loaded into memory by the caller and
// decoded in one pass into an immutable tree of nodes and properties.
//
// # Blob Layout
//
// All multi-byte integers on the wire are big-endian. The blob starts with a
// header:
//   - magic: 4 bytes, 0xd00dfeed
//   - totalsize, off_dt_struct, off_dt_strings, off_mem_rsvmap: 4 bytes each
//   - version, last_comp_version: 4 bytes each
//   - boot_cpuid_phys: 4 bytes, only if version > 2
//   - size_dt_strings: 4 bytes, only if version > 3
//   - size_dt_struct: 4 bytes, only if version > 17
//
// The structure block at off_dt_struct is a sequence of tagged records
// (BEGIN_NODE, END_NODE, PROP, END) encoding node nesting. Property names are
// not stored inline; each PROP record carries a byte offset into the strings
// block at off_dt_strings, which holds concatenated NUL-terminated names.
//
// # Usage
//
//	buf, err := os.ReadFile("board.dtb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tree, err := fdt.Parse(buf)
//	if err != nil {
//	    log.Fatal(err) // "invalid tag @ 0x5c"
//	}
//	for _, p := range tree.Root.Properties {
//	    fmt.Printf("%s: %d bytes\n", p.Name, len(p.Value))
//	}
//
// # Error Handling
//
// Parse failures are sentinel errors (ErrInvalidMagic, ErrReadPastEnd,
// ErrInvalidTag, ErrUnexpectedTag, ErrNoRootFound, ErrMaxDepth) wrapped in an
// *OffsetError carrying the byte offset where decoding stopped. Match kinds
// with errors.Is. There is no partial result: a failed parse yields no tree.
//
// Parse is deliberately lenient about trailing structure: the blob is accepted
// once the root node closes, whether or not an END tag follows. Verify runs
// the stricter structural checks separately so that blobs real boot loaders
// accept still decode.
//
// # Thread Safety
//
// Parse is a pure function over its input buffer. The returned tree owns
// copies of all names and payloads, so the input buffer may be reused or
// freed immediately. Trees are never mutated after Parse returns and are safe
// for concurrent reads.
package fdt
