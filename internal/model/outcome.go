package model

// Outcome classifies a position as terminal or not
type Outcome string

const (
	OutcomeComputerWins Outcome = "computer_wins"
	OutcomeHumanWins    Outcome = "human_wins"
	OutcomeDraw         Outcome = "draw"
	OutcomeOngoing      Outcome = "ongoing"
)

// IsTerminal returns true for any outcome that ends the game
func (o Outcome) IsTerminal() bool {
	return o != OutcomeOngoing
}

// Outcome scans every line (N rows, N columns, both diagonals) and
// classifies the position. The first uniform non-empty line found in
// scan order wins; if no line won and every line is complete the game
// is drawn; otherwise play continues.
func (p *Position) Outcome() Outcome {
	allComplete := true

	check := func(line []Mark) (Mark, bool) {
		complete := true
		first := line[0]
		uniform := first != MarkEmpty
		for _, m := range line {
			if m == MarkEmpty {
				complete = false
				uniform = false
			} else if m != first {
				uniform = false
			}
		}
		if !complete {
			allComplete = false
		}
		if uniform {
			return first, true
		}
		return MarkEmpty, false
	}

	line := make([]Mark, p.Size)

	// Rows
	for row := 0; row < p.Size; row++ {
		if winner, won := check(p.Cells[row]); won {
			return winOutcome(winner)
		}
	}

	// Columns
	for col := 0; col < p.Size; col++ {
		for row := 0; row < p.Size; row++ {
			line[row] = p.Cells[row][col]
		}
		if winner, won := check(line); won {
			return winOutcome(winner)
		}
	}

	// Main diagonal
	for i := 0; i < p.Size; i++ {
		line[i] = p.Cells[i][i]
	}
	if winner, won := check(line); won {
		return winOutcome(winner)
	}

	// Anti-diagonal
	for i := 0; i < p.Size; i++ {
		line[i] = p.Cells[i][p.Size-1-i]
	}
	if winner, won := check(line); won {
		return winOutcome(winner)
	}

	if allComplete {
		return OutcomeDraw
	}
	return OutcomeOngoing
}

func winOutcome(winner Mark) Outcome {
	if winner == MarkComputer {
		return OutcomeComputerWins
	}
	return OutcomeHumanWins
}
