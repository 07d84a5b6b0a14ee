package hamcode

import (
    "bytes"
    "errors"
    "fmt"
    "strings"

    "github.com/harlequix/hamcode/internal/bits"
    "github.com/harlequix/hamcode/internal/layout"
    "github.com/harlequix/hamcode/internal/parity"
    log "github.com/harlequix/hamcode/log"
    "github.com/jinzhu/copier"
)

var ErrBlockLength = errors.New("hamcode: block length must be at least 8")
var ErrBlockShape = errors.New("hamcode: encoded length is not a multiple of the codeword length")
var ErrNotBinary = errors.New("hamcode: encoded input contains a byte that is not '0' or '1'")

// Encoder turns text into Hamming-protected '0'/'1' strings. Control-bit
// layout and the parity-check matrix are fixed by BlockLength and computed
// once, then shared read-only across every block.
type Encoder struct {
    config      Config
    controlBits []int
    matrix      parity.Matrix
    log         *log.Logger
}

func NewEncoder() (*Encoder, error) {
    return NewEncoderConfig(loadConfig())
}

func NewEncoderConfig(cfg Config) (*Encoder, error) {
    config, err := snapshot(cfg)
    if err != nil {
        return nil, err
    }
    controlBits := layout.ControlBits(config.BlockLength)
    return &Encoder{
        config:      config,
        controlBits: controlBits,
        matrix:      parity.NewMatrix(config.BlockLength, len(controlBits)),
        log:         log.NewLogger("encoder"),
    }, nil
}

// Encode encodes text block by block. Each block takes BlockLength/8
// characters, expands them MSB-first to BlockLength data bits (left
// zero-padded when the tail of text runs short, so a short tail decodes
// back with leading NULs), interleaves the control bits and overwrites
// them with the matrix product.
func (self *Encoder) Encode(text string) (string, error) {
    delta := self.config.BlockLength / 8
    var buffer bytes.Buffer
    for _, chars := range bits.Wrap(text, delta) {
        binChar := bits.ToBinaryBytes(chars)
        if len(binChar) != self.config.BlockLength {
            binChar = strings.Repeat("0", self.config.BlockLength-len(binChar)) + binChar
        }
        code, _ := bits.ToVector(binChar)
        for _, pos := range self.controlBits {
            code = insertBit(code, pos)
        }
        coeffs := self.matrix.Mul(code)
        for i, pos := range self.controlBits {
            code[pos-1] = coeffs[i]
        }
        buffer.WriteString(bits.FromVector(code))
    }
    return buffer.String(), nil
}

// Decoder reverses Encoder, correcting at most one flipped bit per block
// and reporting the outcome for every block.
type Decoder struct {
    config      Config
    controlBits []int
    matrix      parity.Matrix
    log         *log.Logger
}

func NewDecoder() (*Decoder, error) {
    return NewDecoderConfig(loadConfig())
}

func NewDecoderConfig(cfg Config) (*Decoder, error) {
    config, err := snapshot(cfg)
    if err != nil {
        return nil, err
    }
    controlBits := layout.ControlBits(config.BlockLength)
    logger := log.NewLogger("decoder")
    if config.ReportFile != "" {
        log.AddReportFile(logger, config.ReportFile)
    }
    return &Decoder{
        config:      config,
        controlBits: controlBits,
        matrix:      parity.NewMatrix(config.BlockLength, len(controlBits)),
        log:         logger,
    }, nil
}

// Decode decodes a '0'/'1' string produced with the same BlockLength.
// Syndrome zero passes the block through, a syndrome below the codeword
// length flips that position, anything from the codeword length up is
// detected but left untouched and handed through best-effort. The reports
// carry one entry per block in input order.
func (self *Decoder) Decode(encoded string) (string, []BlockReport, error) {
    total := self.config.BlockLength + len(self.controlBits)
    if len(encoded)%total != 0 {
        return "", nil, fmt.Errorf("%w: got %d bits, codewords are %d", ErrBlockShape, len(encoded), total)
    }
    blocks := bits.Wrap(encoded, total)
    reports := make([]BlockReport, 0, len(blocks))
    var decoded bytes.Buffer
    for i, block := range blocks {
        code, err := bits.ToVector(block)
        if err != nil {
            return "", nil, fmt.Errorf("block %d: %w", i+1, ErrNotBinary)
        }
        syndrome := int(self.matrix.Syndrome(code))
        report := BlockReport{Block: i + 1, Status: StatusClean}
        switch {
        case syndrome == 0:
            self.log.WithField("block", i+1).Debug("no errors found")
        case syndrome < total:
            code[syndrome-1] ^= 1
            report.Status = StatusCorrected
            report.Position = syndrome
            self.log.WithField("block", i+1).WithField("position", syndrome).Info("found error, corrected")
        default:
            report.Status = StatusUncorrectable
            self.log.WithField("block", i+1).WithField("syndrome", syndrome).Warn("found an error that cannot be corrected")
        }
        reports = append(reports, report)
        for idx := len(self.controlBits) - 1; idx >= 0; idx-- {
            pos := self.controlBits[idx]
            code = append(code[:pos-1], code[pos:]...)
        }
        for _, chunk := range bits.Wrap(bits.FromVector(code), 8) {
            char, _ := bits.ChunkToByte(chunk)
            decoded.WriteByte(char)
        }
    }
    return decoded.String(), reports, nil
}

// Encode is the one-shot form of Encoder for a given block length, with
// everything else at package defaults.
func Encode(text string, blockLength int) (string, error) {
    cfg := loadConfig()
    cfg.BlockLength = blockLength
    encoder, err := NewEncoderConfig(cfg)
    if err != nil {
        return "", err
    }
    return encoder.Encode(text)
}

// Decode is the one-shot form of Decoder.
func Decode(encoded string, blockLength int) (string, []BlockReport, error) {
    cfg := loadConfig()
    cfg.BlockLength = blockLength
    decoder, err := NewDecoderConfig(cfg)
    if err != nil {
        return "", nil, err
    }
    return decoder.Decode(encoded)
}

// snapshot copies the caller's config so later viper or caller mutations
// never leak into a live codec.
func snapshot(cfg Config) (Config, error) {
    var config Config
    if err := copier.Copy(&config, &cfg); err != nil {
        return Config{}, err
    }
    if config.BlockLength < 8 {
        return Config{}, ErrBlockLength
    }
    return config, nil
}

func insertBit(code []uint8, pos int) []uint8 {
    code = append(code, 0)
    copy(code[pos:], code[pos-1:])
    code[pos-1] = 0
    return code
}
