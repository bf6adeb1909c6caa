package fdt

import (
	"strings"
	"testing"
)

func verifyBlob(t *testing.T, blob []byte) []Problem {
	t.Helper()
	tree, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return Verify(blob, tree)
}

func hasProblem(probs []Problem, check string) bool {
	for _, p := range probs {
		if p.Check == check {
			return true
		}
	}
	return false
}

func TestVerifyCleanBlob(t *testing.T) {
	if probs := verifyBlob(t, minimalBlob(17)); len(probs) != 0 {
		t.Errorf("clean blob reported problems: %v", probs)
	}
}

func TestVerifyTotalSizeMismatch(t *testing.T) {
	blob := minimalBlob(17)
	blob = append(blob, 0, 0, 0, 0) // trailing junk the header does not cover

	probs := verifyBlob(t, blob)
	if !hasProblem(probs, "totalsize") {
		t.Errorf("no totalsize problem in %v", probs)
	}
}

func TestVerifyMissingEndTag(t *testing.T) {
	var s []byte
	s = append(s, be32(uint32(TagBeginNode))...)
	s = append(s, nodeName("")...)
	s = append(s, be32(uint32(TagEndNode))...)

	probs := verifyBlob(t, buildBlob(17, s, nil))
	if !hasProblem(probs, "structure") {
		t.Errorf("no structure problem in %v", probs)
	}
}

func TestVerifyLastCompVersion(t *testing.T) {
	blob := minimalBlob(17)
	// last_comp_version sits at offset 24; bump it past version.
	copy(blob[24:], be32(99))

	probs := verifyBlob(t, blob)
	if !hasProblem(probs, "last_comp_version") {
		t.Errorf("no last_comp_version problem in %v", probs)
	}
}

func TestVerifyNameOffsetOutsideStringsBlock(t *testing.T) {
	blob := minimalBlob(17)
	tree, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Shrink the declared strings-block size below what "compatible\0"
	// needs; the offset check must notice.
	tree.Header.SizeDTStrings = 5

	probs := Verify(blob, tree)
	if !hasProblem(probs, "strings") {
		t.Errorf("no strings problem in %v", probs)
	}
	for _, p := range probs {
		if p.Check == "strings" && !strings.Contains(p.Detail, "compatible") {
			t.Errorf("strings problem does not name the property: %s", p.Detail)
		}
	}
}
