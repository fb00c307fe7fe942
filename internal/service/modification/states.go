package modification

import "fmt"

// State tracks where a modification workflow is. Everything up to and
// including the audit write runs inside one vehicle-database transaction;
// the insurance step runs after that transaction committed, so Aborted is
// only reachable before StateVehicleCommitted.
type State string

const (
	StateIdle               State = "idle"
	StateLookupsResolving   State = "lookups_resolving"
	StateCategoryResolving  State = "category_resolving"
	StateVehicleUpdating    State = "vehicle_updating"
	StateAuditWriting       State = "audit_writing"
	StateVehicleCommitted   State = "vehicle_committed"
	StateInsuranceUpserting State = "insurance_upserting"
	StateDone               State = "done"
	StateAborted            State = "aborted"
)

// AllowTransition is the directed graph of legal workflow transitions.
var AllowTransition = map[State][]State{
	StateIdle:               {StateLookupsResolving, StateAborted},
	StateLookupsResolving:   {StateCategoryResolving, StateAborted},
	StateCategoryResolving:  {StateVehicleUpdating, StateAborted},
	StateVehicleUpdating:    {StateAuditWriting, StateAborted},
	StateAuditWriting:       {StateVehicleCommitted, StateAborted},
	StateVehicleCommitted:   {StateInsuranceUpserting},
	StateInsuranceUpserting: {StateDone},
	// terminal: done / aborted
	StateDone:    {},
	StateAborted: {},
}

// CanTransition reports whether from -> to is a legal workflow transition.
func CanTransition(from, to State) bool {
	if from == to {
		return true
	}
	for _, s := range AllowTransition[from] {
		if s == to {
			return true
		}
	}
	return false
}

// workflow is the per-request state holder. It is not safe for concurrent
// use; each request owns exactly one.
type workflow struct {
	state State
}

func newWorkflow() *workflow {
	return &workflow{state: StateIdle}
}

func (w *workflow) to(s State) error {
	if !CanTransition(w.state, s) {
		return fmt.Errorf("invalid workflow transition: %s -> %s", w.state, s)
	}
	w.state = s
	return nil
}

func (w *workflow) abort() {
	// Aborted is unreachable after commit; keep the committed state instead
	// of losing it.
	if CanTransition(w.state, StateAborted) {
		w.state = StateAborted
	}
}
