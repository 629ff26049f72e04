package analyze

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDeadlockSafeState(t *testing.T) {
	result := Deadlock(acyclicChain())

	if result.HasDeadlock {
		t.Error("HasDeadlock = true for an acyclic graph")
	}
	if result.CycleInfo != nil {
		t.Errorf("CycleInfo = %+v, want nil when no deadlock", result.CycleInfo)
	}
	if want := "✓ No deadlock detected. System is in a safe state."; result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
	if got := result.WaitForGraph["P1"]; !reflect.DeepEqual(got, []string{"P2"}) {
		t.Errorf("WaitForGraph[P1] = %v, want [P2]", got)
	}
	if _, err := time.Parse(time.RFC3339, result.Timestamp); err != nil {
		t.Errorf("Timestamp %q is not RFC 3339: %v", result.Timestamp, err)
	}
}

func TestDeadlockDetected(t *testing.T) {
	result := Deadlock(classicCycle())

	if !result.HasDeadlock {
		t.Fatal("HasDeadlock = false for the classic circular wait")
	}
	if result.CycleInfo == nil || !result.CycleInfo.Exists {
		t.Fatal("CycleInfo missing on a deadlocked result")
	}
	if !strings.HasPrefix(result.Message, "⚠️ Deadlock detected! Cycle involves: ") {
		t.Errorf("Message = %q, want deadlock prefix", result.Message)
	}
	for _, id := range result.CycleInfo.AffectedNodes {
		if !strings.Contains(result.Message, id) {
			t.Errorf("Message %q does not name cycle node %q", result.Message, id)
		}
	}
}

func TestDeadlockIdempotent(t *testing.T) {
	state := classicCycle()

	first := Deadlock(state)
	second := Deadlock(state)

	// Timestamps may differ; everything structural must not.
	first.Timestamp, second.Timestamp = "", ""
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis diverged:\n first = %+v\nsecond = %+v", first, second)
	}
}
