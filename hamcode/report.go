package hamcode

import (
    "fmt"
)

type BlockStatus int

const (
    StatusClean BlockStatus = iota
    StatusCorrected
    StatusUncorrectable
)

func (self BlockStatus) String() string {
    switch self {
    case StatusClean:
        return "clean"
    case StatusCorrected:
        return "corrected"
    case StatusUncorrectable:
        return "uncorrectable"
    default:
        return "unknown"
    }
}

// BlockReport is the per-block outcome of a decode. Block counts from 1 in
// input order; Position is the 1-indexed bit that was flipped back, set
// only for StatusCorrected.
type BlockReport struct {
    Block    int
    Status   BlockStatus
    Position int
}

func (self BlockReport) String() string {
    switch self.Status {
    case StatusCorrected:
        return fmt.Sprintf("found error in %d block on position %d", self.Block, self.Position)
    case StatusUncorrectable:
        return fmt.Sprintf("found an error that cannot be corrected (%d block)", self.Block)
    default:
        return fmt.Sprintf("no errors found in %d block", self.Block)
    }
}
