package game

// Stats tallies what happened during a play session.
type Stats struct {
	Frames    int
	Seconds   float64
	Jumps     int
	Landings  int // Airborne to grounded transitions
	HeadBumps int
	WallHits  int
	Resets    int
}

// record folds one player's frame into the tally.
func (s *Stats) record(wasGrounded, grounded bool, contacts []Contact) {
	if grounded && !wasGrounded {
		s.Landings++
	}
	for _, c := range contacts {
		switch c.Side {
		case SideBottom:
			s.HeadBumps++
		case SideLeft, SideRight:
			s.WallHits++
		}
	}
}
