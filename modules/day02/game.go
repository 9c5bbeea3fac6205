package day02

// Shape is a hand shape. Its value is the shape score.
type Shape int

const (
	Rock     Shape = 1
	Paper    Shape = 2
	Scissors Shape = 3
)

func (s Shape) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "unknown"
}

// beats returns the shape s wins against.
func (s Shape) beats() Shape {
	switch s {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	}
	return Paper
}

// Outcome is the result of a round from our side. Its value is the outcome
// score.
type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

func (o Outcome) String() string {
	switch o {
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	case Win:
		return "win"
	}
	return "unknown"
}

// Play returns the outcome of us playing mine against theirs.
func Play(mine, theirs Shape) Outcome {
	switch {
	case mine == theirs:
		return Draw
	case mine.beats() == theirs:
		return Win
	}
	return Loss
}

// Respond returns the shape that reaches want against theirs.
func Respond(theirs Shape, want Outcome) Shape {
	switch want {
	case Draw:
		return theirs
	case Loss:
		return theirs.beats()
	}
	// The shape that theirs loses to.
	return theirs.beats().beats()
}

// Score is the score of a single round.
func Score(mine, theirs Shape) int {
	return int(mine) + int(Play(mine, theirs))
}
