package remap

import "fmt"

// Stage identifies one step of the pipeline.
type Stage int

const (
	StageWaveshape Stage = iota
	StagePower
	StageHarmonics
	StageBit
	StageFold

	// NumStages is the number of distinct stages.
	NumStages = int(StageFold) + 1
)

// OrderLen is the number of slots in an Order.
const OrderLen = 5

// Order is the sequence in which stages run. Repetition is allowed.
type Order [OrderLen]Stage

// DefaultOrder is waveshape, power, harmonics, bit, fold.
var DefaultOrder = Order{StageWaveshape, StagePower, StageHarmonics, StageBit, StageFold}

var stageNames = [NumStages]string{
	StageWaveshape: "waveshape",
	StagePower:     "power",
	StageHarmonics: "harmonics",
	StageBit:       "bit",
	StageFold:      "fold",
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	return s >= 0 && int(s) < NumStages
}

func (s Stage) String() string {
	if !s.Valid() {
		return fmt.Sprintf("stage(%d)", int(s))
	}

	return stageNames[s]
}

// ParseStage resolves a stage by name.
func ParseStage(name string) (Stage, error) {
	for i, n := range stageNames {
		if n == name {
			return Stage(i), nil
		}
	}

	return 0, fmt.Errorf("remap: unknown stage %q", name)
}

// Validate reports the first unknown stage in o.
func (o Order) Validate() error {
	for i, s := range o {
		if !s.Valid() {
			return fmt.Errorf("remap: order slot %d holds invalid stage %d", i, int(s))
		}
	}

	return nil
}
