package model

// Action is a human-friendly label for a year's cash-flow direction.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionInvesting Action = "INVESTING"
	ActionBreakEven Action = "BREAK_EVEN"
	ActionDrawdown  Action = "DRAWDOWN"
)

func ActionFromSurplus(surplus float64) Action {
	switch {
	case surplus > 0:
		return ActionInvesting
	case surplus < 0:
		return ActionDrawdown
	default:
		return ActionBreakEven
	}
}
