package layout

import (
    "testing"
)

func TestControlBitsDefaultBlock(t *testing.T) {
    positions := ControlBits(8)
    expected := []int{1, 2, 4, 8}
    if len(positions) != len(expected) {
        t.Fatalf("got %v, expected %v", positions, expected)
    }
    for i := range expected {
        if positions[i] != expected[i] {
            t.Errorf("position %d: got %d, expected %d", i, positions[i], expected[i])
        }
    }
}

func TestControlBitsCount(t *testing.T) {
    cases := map[int]int{
        1:  2,
        4:  3,
        8:  4,
        11: 4,
        12: 5,
        16: 5,
        26: 5,
        27: 6,
        64: 7,
    }
    for blockLength, k := range cases {
        if got := len(ControlBits(blockLength)); got != k {
            t.Errorf("blockLength %d: got k=%d, expected %d", blockLength, got, k)
        }
    }
}

// k is the smallest count with 2^k >= n+k+1
func TestControlBitsMinimal(t *testing.T) {
    for n := 1; n <= 128; n++ {
        k := len(ControlBits(n))
        if (1 << uint(k)) < n+k+1 {
            t.Errorf("n=%d: k=%d does not address the codeword", n, k)
        }
        if k > 0 && (1<<uint(k-1)) >= n+(k-1)+1 {
            t.Errorf("n=%d: k=%d is not minimal", n, k)
        }
    }
}

func TestControlBitsDeterministic(t *testing.T) {
    first := ControlBits(24)
    second := ControlBits(24)
    if len(first) != len(second) {
        t.Fatal("length differs between calls")
    }
    for i := range first {
        if first[i] != second[i] {
            t.Errorf("position %d differs between calls", i)
        }
    }
}

func TestControlBitsMonotonic(t *testing.T) {
    prev := 0
    for n := 1; n <= 256; n++ {
        k := len(ControlBits(n))
        if k < prev {
            t.Errorf("k dropped from %d to %d at n=%d", prev, k, n)
        }
        prev = k
    }
}

func TestControlBitsAscendingPowers(t *testing.T) {
    positions := ControlBits(57)
    for i, pos := range positions {
        if pos != 1<<uint(i) {
            t.Errorf("position %d: got %d, expected %d", i, pos, 1<<uint(i))
        }
    }
}
