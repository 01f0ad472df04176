package domain

import "fmt"

// ResearchStage classifies one deep-research iteration.
type ResearchStage string

const (
	// StageFirst is the opening iteration: research plan plus initial findings.
	StageFirst ResearchStage = "first"

	// StageIntermediate deepens the investigation between first and final.
	StageIntermediate ResearchStage = "intermediate"

	// StageFinal synthesizes the transcript into the final conclusion.
	StageFinal ResearchStage = "final"
)

// Research iteration bounds. Requested counts outside the closed range
// are clamped, never rejected.
const (
	MinResearchIterations = 1
	MaxResearchIterations = 5
)

// ClampIterations forces a requested iteration count into the supported
// range [MinResearchIterations, MaxResearchIterations].
func ClampIterations(n int) int {
	if n < MinResearchIterations {
		return MinResearchIterations
	}
	if n > MaxResearchIterations {
		return MaxResearchIterations
	}
	return n
}

// StageForIteration returns the stage of the 1-indexed iteration i in a
// run of maxIterations total. A single-iteration run is classified as
// final: its only output is the answer.
func StageForIteration(i, maxIterations int) ResearchStage {
	switch {
	case i == maxIterations:
		return StageFinal
	case i == 1:
		return StageFirst
	default:
		return StageIntermediate
	}
}

// IterationLabel returns the fixed human-readable heading for the
// 1-indexed iteration i at the given stage.
func IterationLabel(stage ResearchStage, i int) string {
	switch stage {
	case StageFirst:
		return fmt.Sprintf("## Research Plan (iteration %d)", i)
	case StageFinal:
		return fmt.Sprintf("## Final Conclusion (iteration %d)", i)
	default:
		return fmt.Sprintf("## Research Update (%d)", i)
	}
}

// ResearchIteration is one entry of a research transcript. The transcript
// is an append-only log: entries are never mutated after being recorded.
type ResearchIteration struct {
	Stage   ResearchStage `json:"stage"`
	Label   string        `json:"label"`
	Content string        `json:"content"`
}

// ResearchResult is the outcome of one full research run. The orchestrator
// holds no state across runs; the final answer and the transcript are all
// that survives a run.
type ResearchResult struct {
	FinalAnswer string              `json:"final_answer"`
	Iterations  []ResearchIteration `json:"iterations"`
}
