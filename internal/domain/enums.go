package domain

// Technique identifies one deduction rule, in solver priority order.
type Technique int

const (
	NakedSingle  Technique = iota // cell with a single remaining candidate
	HiddenSingle                  // value with a single home in a unit
	Pointing                      // box candidates confined to one row/column
	NakedPair                     // two cells sharing an identical candidate pair
)

func (t Technique) String() string {
	switch t {
	case NakedSingle:
		return "Naked Single"
	case HiddenSingle:
		return "Hidden Single"
	case Pointing:
		return "Pointing Pair/Triple"
	case NakedPair:
		return "Naked Pair"
	}
	return "Unknown"
}

// Outcome is the terminal state of a solve run.
type Outcome int

const (
	Solved Outcome = iota // board complete, all unit invariants hold
	Stuck                 // no implemented technique makes progress
)

func (o Outcome) String() string {
	if o == Solved {
		return "solved"
	}
	return "stuck"
}

// Difficulty labels stored puzzles. No grading is performed; the label is
// caller-supplied metadata used for storage bucketing.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}
