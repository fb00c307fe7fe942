package modification

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to State
		want     bool
	}{
		{StateIdle, StateLookupsResolving, true},
		{StateLookupsResolving, StateCategoryResolving, true},
		{StateCategoryResolving, StateVehicleUpdating, true},
		{StateVehicleUpdating, StateAuditWriting, true},
		{StateAuditWriting, StateVehicleCommitted, true},
		{StateVehicleCommitted, StateInsuranceUpserting, true},
		{StateInsuranceUpserting, StateDone, true},

		// Aborted is reachable from every pre-commit state only.
		{StateIdle, StateAborted, true},
		{StateLookupsResolving, StateAborted, true},
		{StateAuditWriting, StateAborted, true},
		{StateVehicleCommitted, StateAborted, false},
		{StateInsuranceUpserting, StateAborted, false},

		// No skipping and no going back.
		{StateIdle, StateVehicleUpdating, false},
		{StateVehicleUpdating, StateLookupsResolving, false},
		{StateDone, StateIdle, false},
		{StateAborted, StateLookupsResolving, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestWorkflowAbortAfterCommitKeepsState(t *testing.T) {
	wf := newWorkflow()
	for _, s := range []State{
		StateLookupsResolving, StateCategoryResolving, StateVehicleUpdating,
		StateAuditWriting, StateVehicleCommitted,
	} {
		if err := wf.to(s); err != nil {
			t.Fatalf("transition to %s: %v", s, err)
		}
	}

	wf.abort()
	if wf.state != StateVehicleCommitted {
		t.Fatalf("abort after commit changed state to %s", wf.state)
	}
}
