package lr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ActionType is the kind of an entry in the ACTION table.
type ActionType uint8

// Kinds of actions.
const (
	NoAction ActionType = iota
	ShiftAction
	ReduceAction
	AcceptAction
	ConflictAction
)

var actionTypeNames = [...]string{"none", "shift", "reduce", "accept", "conflict"}

func (t ActionType) String() string {
	if int(t) < len(actionTypeNames) {
		return actionTypeNames[t]
	}
	return fmt.Sprintf("ActionType(%d)", t)
}

func actionTypeFromString(s string) (ActionType, bool) {
	for i, name := range actionTypeNames {
		if name == s {
			return ActionType(i), true
		}
	}
	return NoAction, false
}

// Action is an entry in the ACTION table.
//
// Shift carries the successor state, Reduce and Accept carry a production.
// A Conflict holds the competing actions in the order they have been
// discovered, without duplicates.
type Action struct {
	Type      ActionType
	State     int
	Prod      *Production
	Conflicts []Action
}

// Shift creates a shift action to state.
func Shift(state int) Action {
	return Action{Type: ShiftAction, State: state}
}

// Reduce creates a reduce action for production p.
func Reduce(p *Production) Action {
	return Action{Type: ReduceAction, Prod: p}
}

// Accept creates an accept action for start production p.
func Accept(p *Production) Action {
	return Action{Type: AcceptAction, Prod: p}
}

// IsNone is true for the zero action.
func (a Action) IsNone() bool {
	return a.Type == NoAction
}

// Equals compares actions structurally.
func (a Action) Equals(b Action) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ShiftAction:
		return a.State == b.State
	case ReduceAction, AcceptAction:
		return a.Prod.Equals(b.Prod)
	case ConflictAction:
		if len(a.Conflicts) != len(b.Conflicts) {
			return false
		}
		for i := range a.Conflicts {
			if !a.Conflicts[i].Equals(b.Conflicts[i]) {
				return false
			}
		}
	}
	return true
}

// Candidates returns the competing actions of a conflict, or the action itself.
func (a Action) Candidates() []Action {
	if a.Type == ConflictAction {
		return a.Conflicts
	}
	return []Action{a}
}

func (a Action) contains(b Action) bool {
	for _, c := range a.Candidates() {
		if c.Equals(b) {
			return true
		}
	}
	return false
}

func (a Action) String() string {
	switch a.Type {
	case ShiftAction:
		return fmt.Sprintf("s%d", a.State)
	case ReduceAction:
		return fmt.Sprintf("r(%v)", a.Prod)
	case AcceptAction:
		return "acc"
	case ConflictAction:
		parts := make([]string, len(a.Conflicts))
		for i, c := range a.Conflicts {
			parts[i] = c.String()
		}
		return strings.Join(parts, " / ")
	}
	return ""
}

// mergeAction writes act into a table cell already holding cell.
//
// Accept always wins and is never part of a conflict. Equal actions collapse.
// In loose mode a shift wins over a reduce. Everything else turns into, or
// extends, a conflict.
func mergeAction(cell, act Action, loose bool) Action {
	switch {
	case cell.IsNone():
		return act
	case cell.Type == AcceptAction:
		return cell
	case act.Type == AcceptAction:
		return act
	case cell.contains(act):
		return cell
	case loose && cell.Type == ShiftAction && act.Type == ReduceAction:
		return cell
	case loose && cell.Type == ReduceAction && act.Type == ShiftAction:
		return act
	case cell.Type == ConflictAction:
		conflicts := make([]Action, len(cell.Conflicts), len(cell.Conflicts)+1)
		copy(conflicts, cell.Conflicts)
		return Action{Type: ConflictAction, Conflicts: append(conflicts, act)}
	}
	return Action{Type: ConflictAction, Conflicts: []Action{cell, act}}
}

// --- Serialization ---------------------------------------------------------

type actionJSON struct {
	Type       string      `json:"type"`
	State      *int        `json:"state,omitempty"`
	Production *Production `json:"production,omitempty"`
	Actions    []Action    `json:"actions,omitempty"`
}

// MarshalJSON encodes an action, including the full production for reduce
// and accept actions.
func (a Action) MarshalJSON() ([]byte, error) {
	aj := actionJSON{Type: a.Type.String()}
	switch a.Type {
	case ShiftAction:
		state := a.State
		aj.State = &state
	case ReduceAction, AcceptAction:
		aj.Production = a.Prod
	case ConflictAction:
		aj.Actions = a.Conflicts
	}
	return json.Marshal(aj)
}

// UnmarshalJSON is the inverse of MarshalJSON. Productions are re-created and
// compare equal to the originals.
func (a *Action) UnmarshalJSON(data []byte) error {
	var aj actionJSON
	if err := json.Unmarshal(data, &aj); err != nil {
		return err
	}
	t, ok := actionTypeFromString(aj.Type)
	if !ok {
		return fmt.Errorf("unknown action type %q", aj.Type)
	}
	*a = Action{Type: t}
	switch t {
	case ShiftAction:
		if aj.State == nil {
			return fmt.Errorf("shift action without target state")
		}
		a.State = *aj.State
	case ReduceAction, AcceptAction:
		if aj.Production == nil {
			return fmt.Errorf("%s action without production", t)
		}
		a.Prod = aj.Production
	case ConflictAction:
		a.Conflicts = aj.Actions
	}
	return nil
}
