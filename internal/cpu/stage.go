package cpu

import "fmt"

// StageKind is the step of an instruction the CPU will perform next.
type StageKind uint8

const (
	// StageFetch reads the opcode at PC. It is both the initial stage
	// and the stage every instruction returns to.
	StageFetch StageKind = iota
	// StageFetchPrefixed reads the opcode following 0xCB.
	StageFetchPrefixed
	// StageRead resolves a Source, one bus read per cycle.
	StageRead
	// StageWait idles for one cycle before writing.
	StageWait
	// StageWrite resolves a Destination, one bus write per cycle.
	StageWrite
)

var stageNames = [...]string{"fetch", "fetch-cb", "read", "wait", "write"}

func (k StageKind) String() string {
	if int(k) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", uint8(k))
	}
	return stageNames[k]
}

// Stage is the resumable position of the CPU within an instruction.
// Together with the register file and the current opcode it captures
// everything needed to continue after any cycle.
type Stage struct {
	Kind StageKind
	src  Source
	dst  Destination
}

func fetchStage() Stage { return Stage{Kind: StageFetch} }

func fetchPrefixedStage() Stage { return Stage{Kind: StageFetchPrefixed} }

func readStage(src Source) Stage { return Stage{Kind: StageRead, src: src} }

func waitStage(dst Destination) Stage { return Stage{Kind: StageWait, dst: dst} }

func writeStage(dst Destination) Stage { return Stage{Kind: StageWrite, dst: dst} }

// idleStage spends one cycle without touching the bus, for internal
// work such as a 16-bit increment or loading PC.
func idleStage() Stage { return writeStage(NoDestination()) }

func (s Stage) String() string {
	switch s.Kind {
	case StageRead:
		return fmt.Sprintf("%s %s", s.Kind, s.src)
	case StageWait, StageWrite:
		return fmt.Sprintf("%s %s", s.Kind, s.dst)
	}
	return s.Kind.String()
}
