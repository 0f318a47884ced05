package timesheet

// Action is the persistence decision for a daily-expense write. The
// emptiness rule is re-checked on every upsert: an incoming record with
// all fields at their zero values deletes the stored row instead of
// updating it to zeros.
type Action int

const (
	ActionNoOp Action = iota
	ActionInsert
	ActionUpdate
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	default:
		return "noop"
	}
}

// Reconcile decides what to do with an incoming daily expense given the
// currently stored row (nil when absent).
func Reconcile(existing *DailyExpense, incoming DailyExpense) Action {
	if incoming.IsEmpty() {
		if existing == nil {
			return ActionNoOp
		}
		return ActionDelete
	}
	if existing == nil {
		return ActionInsert
	}
	return ActionUpdate
}
