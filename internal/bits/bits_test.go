package bits

import (
    "testing"
)

func TestWrap(t *testing.T) {
    chunks := Wrap("abcdefg", 3)
    expected := []string{"abc", "def", "g"}
    if len(chunks) != len(expected) {
        t.Fatalf("got %d chunks, expected %d", len(chunks), len(expected))
    }
    for i := range expected {
        if chunks[i] != expected[i] {
            t.Errorf("chunk %d: got %q, expected %q", i, chunks[i], expected[i])
        }
    }
}

func TestWrapExact(t *testing.T) {
    chunks := Wrap("abcdef", 3)
    if len(chunks) != 2 || chunks[0] != "abc" || chunks[1] != "def" {
        t.Errorf("got %v", chunks)
    }
}

func TestWrapEmpty(t *testing.T) {
    if chunks := Wrap("", 4); len(chunks) != 0 {
        t.Errorf("empty input produced %v", chunks)
    }
}

func TestWrapRestartable(t *testing.T) {
    first := Wrap("110011", 2)
    second := Wrap("110011", 2)
    for i := range first {
        if first[i] != second[i] {
            t.Errorf("chunk %d differs between runs", i)
        }
    }
}

func TestToBinaryBytes(t *testing.T) {
    if got := ToBinaryBytes("A"); got != "01000001" {
        t.Errorf("got %q", got)
    }
    if got := ToBinaryBytes("Go"); got != "0100011101101111" {
        t.Errorf("got %q", got)
    }
}

func TestChunkToByte(t *testing.T) {
    char, err := ChunkToByte("01000001")
    if err != nil {
        t.Fatal(err)
    }
    if char != 'A' {
        t.Errorf("got %q", char)
    }
    // short chunks come up when the block length is not a multiple of 8
    char, err = ChunkToByte("0100")
    if err != nil {
        t.Fatal(err)
    }
    if char != 4 {
        t.Errorf("got %d", char)
    }
    if _, err := ChunkToByte("010000011"); err == nil {
        t.Error("nine bits accepted")
    }
    if _, err := ChunkToByte(""); err == nil {
        t.Error("empty chunk accepted")
    }
}

func TestVectorRoundTrip(t *testing.T) {
    vec, err := ToVector("10110")
    if err != nil {
        t.Fatal(err)
    }
    expected := []uint8{1, 0, 1, 1, 0}
    for i := range expected {
        if vec[i] != expected[i] {
            t.Errorf("bit %d: got %d", i, vec[i])
        }
    }
    if back := FromVector(vec); back != "10110" {
        t.Errorf("got %q", back)
    }
}

func TestToVectorRejectsNonBinary(t *testing.T) {
    if _, err := ToVector("10x01"); err == nil {
        t.Error("non-binary byte accepted")
    }
}
