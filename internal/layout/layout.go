package layout

// ControlBits computes the check-bit positions for a block of blockLength
// data bits. k is the smallest count with 2^k >= blockLength + k + 1: the
// check bits themselves have to be addressable inside the codeword, so k
// sits on both sides and we search the fixed point with integer arithmetic
// instead of float log2.
func ControlBits(blockLength int) []int {
    k := 0
    for (1 << uint(k)) < blockLength+k+1 {
        k++
    }
    positions := make([]int, k)
    for i := 0; i < k; i++ {
        positions[i] = 1 << uint(i)
    }
    return positions
}
