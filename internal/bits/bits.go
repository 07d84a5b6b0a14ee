package bits

import (
    "bytes"
    "fmt"
    "strconv"
)

const ONE byte = 49
const ZERO byte = 48

// Wrap splits s into chunks of size characters each. The last chunk is
// shorter when len(s) is not a multiple of size; no padding happens here.
// size must be positive, anything else is a broken caller.
func Wrap(s string, size int) []string {
    if size <= 0 {
        panic("bits: wrap size must be positive")
    }
    out := make([]string, 0, (len(s)+size-1)/size)
    for index := 0; index < len(s); index += size {
        end := index + size
        if end > len(s) {
            end = len(s)
        }
        out = append(out, s[index:end])
    }
    return out
}

// ToBinaryBytes expands every character of s to its 8-bit representation,
// most significant bit first.
func ToBinaryBytes(s string) string {
    var buffer bytes.Buffer
    for i := 0; i < len(s); i++ {
        fmt.Fprintf(&buffer, "%.8b", s[i])
    }
    return buffer.String()
}

// ChunkToByte parses a chunk of up to 8 '0'/'1' characters back into the
// byte it came from.
func ChunkToByte(chunk string) (byte, error) {
    if len(chunk) == 0 || len(chunk) > 8 {
        return 0, fmt.Errorf("bits: bad chunk length %d", len(chunk))
    }
    val, err := strconv.ParseUint(chunk, 2, 8)
    if err != nil {
        return 0, err
    }
    return byte(val), nil
}

// ToVector turns a '0'/'1' string into a 0/1 byte vector.
func ToVector(s string) ([]uint8, error) {
    vec := make([]uint8, len(s))
    for i := 0; i < len(s); i++ {
        switch s[i] {
        case ZERO:
            vec[i] = 0
        case ONE:
            vec[i] = 1
        default:
            return nil, fmt.Errorf("bits: byte %q at offset %d is not binary", s[i], i)
        }
    }
    return vec, nil
}

// FromVector is the inverse of ToVector.
func FromVector(vec []uint8) string {
    out := make([]byte, len(vec))
    for i, bit := range vec {
        if bit == 0 {
            out[i] = ZERO
        } else {
            out[i] = ONE
        }
    }
    return string(out)
}
