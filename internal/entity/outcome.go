package entity

type OutcomeKind int

const (
	OutcomeUndecided OutcomeKind = iota
	OutcomeTie
	OutcomeWon
)

// Outcome is the result of a round: undecided, a tie, or a win by Winner.
type Outcome struct {
	kind   OutcomeKind
	winner *Player
}

func Undecided() Outcome {
	return Outcome{kind: OutcomeUndecided}
}

func Tie() Outcome {
	return Outcome{kind: OutcomeTie}
}

func WonBy(player *Player) Outcome {
	return Outcome{kind: OutcomeWon, winner: player}
}

func (that Outcome) Kind() OutcomeKind {
	return that.kind
}

// Winner - nil unless the outcome is OutcomeWon.
func (that Outcome) Winner() *Player {
	return that.winner
}

func (that Outcome) IsDecided() bool {
	return that.kind != OutcomeUndecided
}

func (that Outcome) String() string {
	switch that.kind {
	case OutcomeTie:
		return "tie"
	case OutcomeWon:
		if that.winner == nil {
			return "won"
		}
		return "won by " + that.winner.Name()
	default:
		return "undecided"
	}
}
