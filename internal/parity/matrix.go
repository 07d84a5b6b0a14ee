package parity

// Matrix is the k x (blockLength+k) binary parity-check matrix. Column j
// (1-indexed codeword position) holds the binary digits of j with the least
// significant bit in row 0, so the column at every power-of-two position is
// a unit vector and the syndrome of a single flipped bit reads back as its
// position.
type Matrix [][]uint8

// NewMatrix builds the transform for blockLength data bits and k check
// bits. Rows of index bits first, then transposed, same construction for
// encoding and decoding.
func NewMatrix(blockLength int, k int) Matrix {
    total := blockLength + k
    rows := make([][]uint8, total)
    for index := 1; index <= total; index++ {
        row := make([]uint8, k)
        for bit := 0; bit < k; bit++ {
            row[bit] = uint8((index >> uint(bit)) & 1)
        }
        rows[index-1] = row
    }
    return transpose(rows)
}

func transpose(rows [][]uint8) Matrix {
    if len(rows) == 0 {
        return Matrix{}
    }
    out := make(Matrix, len(rows[0]))
    for i := range out {
        out[i] = make([]uint8, len(rows))
        for j := range rows {
            out[i][j] = rows[j][i]
        }
    }
    return out
}

// Rows returns k, Cols the codeword length.
func (self Matrix) Rows() int {
    return len(self)
}

func (self Matrix) Cols() int {
    if len(self) == 0 {
        return 0
    }
    return len(self[0])
}

// Mul is the mod-2 matrix-vector product. code must have Cols() entries of
// 0/1 values.
func (self Matrix) Mul(code []uint8) []uint8 {
    out := make([]uint8, len(self))
    for i, row := range self {
        var acc uint8
        for j, cell := range row {
            acc ^= cell & code[j]
        }
        out[i] = acc
    }
    return out
}

// Syndrome folds Mul into an unsigned integer, product bit 0 being the
// least significant. Zero means clean, anything else names the flipped
// 1-indexed position (when it names a position at all).
func (self Matrix) Syndrome(code []uint8) uint {
    var syndrome uint
    for i, bit := range self.Mul(code) {
        syndrome |= uint(bit) << uint(i)
    }
    return syndrome
}
