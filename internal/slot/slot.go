// Package slot defines the slot machine outcome table: the closed set of
// reel symbols, each with a declared point value and display text. Adding
// an outcome is a one-line table edit.
package slot

// MaxRaw is the highest raw reel value the machine can produce. The three
// reels encode to a single value in [1, MaxRaw]; only the four
// three-of-a-kind values score.
const MaxRaw = 64

// Outcome is a slot machine symbol
type Outcome string

const (
	// OutcomeBars indicates three bars
	OutcomeBars Outcome = "bars"

	// OutcomeGrapes indicates three grapes
	OutcomeGrapes Outcome = "grapes"

	// OutcomeLemons indicates three lemons
	OutcomeLemons Outcome = "lemons"

	// OutcomeSevens indicates three sevens
	OutcomeSevens Outcome = "sevens"

	// OutcomeNothing indicates a non-scoring spin
	OutcomeNothing Outcome = "nothing"
)

type tableEntry struct {
	points  int
	display string
}

// table is the single authority on what an outcome is worth and how it
// renders. Unknown outcomes score zero, never an error.
var table = map[Outcome]tableEntry{
	OutcomeBars:   {points: 1, display: "Bars 🍫"},
	OutcomeGrapes: {points: 2, display: "Grapes 🍇"},
	OutcomeLemons: {points: 3, display: "Lemons 🍋"},
	OutcomeSevens: {points: 5, display: "Sevens 7️⃣"},
}

// rawValues maps the reel collaborator's raw spin value to a symbol. The
// encoding matches the chat platform's slot machine dice: three-of-a-kind
// lands on 1, 22, 43 and 64.
var rawValues = map[int]Outcome{
	1:  OutcomeBars,
	22: OutcomeGrapes,
	43: OutcomeLemons,
	64: OutcomeSevens,
}

// FromRaw maps a raw reel value to its outcome. Values outside the known
// set map to OutcomeNothing.
func FromRaw(value int) Outcome {
	if outcome, ok := rawValues[value]; ok {
		return outcome
	}
	return OutcomeNothing
}

// Points returns the point value of the outcome, zero for anything
// outside the table.
func (o Outcome) Points() int {
	return table[o].points
}

// Display returns the display text of the outcome, empty for anything
// outside the table.
func (o Outcome) Display() string {
	return table[o].display
}

// Scoring reports whether the outcome is worth any points.
func (o Outcome) Scoring() bool {
	return table[o].points > 0
}
