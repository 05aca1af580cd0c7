package model

// Phase represents the lifecycle phase of a philosopher.
type Phase string

const (
	// PhaseThinking indicates the philosopher holds no chopsticks and is busy
	// with an unsynchronised activity.
	PhaseThinking Phase = "thinking"

	// PhaseHungry indicates the philosopher is acquiring chopsticks.
	PhaseHungry Phase = "hungry"

	// PhaseEating indicates the philosopher holds both chopsticks.
	PhaseEating Phase = "eating"
)

// Side identifies one of the two chopsticks adjacent to a seat.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// LeftStick returns the index of the chopstick to the left of seat.
func LeftStick(seat, seats int) int {
	return seat
}

// RightStick returns the index of the chopstick to the right of seat.
func RightStick(seat, seats int) int {
	return (seat + 1) % seats
}

// FirstStick returns the side a philosopher at the given seat must acquire
// first. Even seats reach right first, odd seats left first; the asymmetry
// breaks the circular wait around the ring.
func FirstStick(seat int) Side {
	if seat%2 == 0 {
		return SideRight
	}
	return SideLeft
}

// SecondStick returns the side acquired after FirstStick.
func SecondStick(seat int) Side {
	if FirstStick(seat) == SideRight {
		return SideLeft
	}
	return SideRight
}

// StickAt resolves a side to a chopstick index for the given seat.
func StickAt(seat, seats int, side Side) int {
	if side == SideLeft {
		return LeftStick(seat, seats)
	}
	return RightStick(seat, seats)
}
