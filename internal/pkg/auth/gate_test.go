package auth

import "testing"

func TestGateStartsResolving(t *testing.T) {
	g := NewGate()
	if !g.Resolving() || g.Authenticated() {
		t.Fatalf("unexpected initial gate state: %+v", g)
	}
	if d := g.Decide(); d != DecisionLoading {
		t.Fatalf("expected loading, got %s", d)
	}
}

func TestGateTransitions(t *testing.T) {
	tests := []struct {
		name   string
		events []SessionEvent
		want   Decision
	}{
		{name: "signed in", events: []SessionEvent{SessionSignedIn}, want: DecisionProceed},
		{name: "signed out", events: []SessionEvent{SessionSignedOut}, want: DecisionLogin},
		{name: "sign out after sign in", events: []SessionEvent{SessionSignedIn, SessionSignedOut}, want: DecisionLogin},
		{name: "sign in after sign out", events: []SessionEvent{SessionSignedOut, SessionSignedIn}, want: DecisionProceed},
		{name: "unknown event ignored", events: []SessionEvent{SessionEvent(99)}, want: DecisionLoading},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate()
			for _, e := range tt.events {
				g.Apply(e)
			}
			if got := g.Decide(); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDecisionString(t *testing.T) {
	if DecisionProceed.String() != "proceed" || Decision(42).String() != "unknown" {
		t.Fatalf("unexpected decision names")
	}
}
