package forum

// ThumbState is the derived state of a vote record.
type ThumbState int

// Vote record states. ThumbNone also stands for a reset request.
const (
	ThumbNone ThumbState = iota
	ThumbUp
	ThumbDown
)

func (s ThumbState) String() string {
	switch s {
	case ThumbUp:
		return "up"
	case ThumbDown:
		return "down"
	default:
		return "none"
	}
}

// StateOf derives the state of a (possibly freshly prepared) record.
func StateOf(t Thumb) ThumbState {
	switch {
	case t.IsUp():
		return ThumbUp
	case t.IsDown():
		return ThumbDown
	default:
		return ThumbNone
	}
}

// ThumbDelta is the change applied to a post's like and dislike counters.
type ThumbDelta struct {
	Likes    int
	Dislikes int
}

// Transition returns the counter delta for moving a record from s to want.
// It reports false when the move is not allowed: voting the current
// direction again, or resetting a record that holds no vote.
func (s ThumbState) Transition(want ThumbState) (ThumbDelta, bool) {
	if s == want {
		return ThumbDelta{}, false
	}

	var d ThumbDelta
	switch s {
	case ThumbUp:
		d.Likes--
	case ThumbDown:
		d.Dislikes--
	}
	switch want {
	case ThumbUp:
		d.Likes++
	case ThumbDown:
		d.Dislikes++
	}
	return d, true
}
