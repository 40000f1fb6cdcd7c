package entity

// Mark is the content of a single board cell.
type Mark string

const (
	MarkCross  Mark = "X"
	MarkCircle Mark = "O"
	MarkEmpty  Mark = "-"
)

// IsPlayable reports whether the mark can be assigned to a player.
func (that Mark) IsPlayable() bool {
	return that == MarkCross || that == MarkCircle
}

func (that Mark) IsValid() bool {
	return that.IsPlayable() || that == MarkEmpty
}

// Opposite returns the other player's mark. MarkEmpty has no opposite.
func (that Mark) Opposite() Mark {
	switch that {
	case MarkCross:
		return MarkCircle
	case MarkCircle:
		return MarkCross
	default:
		return MarkEmpty
	}
}
