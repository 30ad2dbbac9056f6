package auth

// Paths the gate sends visitors to.
const (
	LoginPath = "/admin/login"
	HomePath  = "/"
)

// SessionEvent is a change reported by the session source.
type SessionEvent int

const (
	SessionSignedIn SessionEvent = iota + 1
	SessionSignedOut
)

// Decision is what the gate allows for the current visitor.
type Decision int

const (
	DecisionLoading Decision = iota
	DecisionLogin
	DecisionProceed
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionLogin:
		return "login"
	case DecisionProceed:
		return "proceed"
	default:
		return "unknown"
	}
}

// Gate guards admin views. It starts resolving and holds no credentials;
// session events alone move it.
type Gate struct {
	authenticated bool
	resolving     bool
}

// NewGate returns a gate still resolving the initial session.
func NewGate() *Gate {
	return &Gate{resolving: true}
}

// Apply consumes a session event. The first event resolves the gate.
func (g *Gate) Apply(event SessionEvent) {
	switch event {
	case SessionSignedIn:
		g.authenticated = true
	case SessionSignedOut:
		g.authenticated = false
	default:
		return
	}
	g.resolving = false
}

// Authenticated reports whether the last event signed the visitor in.
func (g *Gate) Authenticated() bool {
	return g.authenticated
}

// Resolving reports whether no session event has arrived yet.
func (g *Gate) Resolving() bool {
	return g.resolving
}

// Decide returns loading while resolving, then login or proceed.
func (g *Gate) Decide() Decision {
	switch {
	case g.resolving:
		return DecisionLoading
	case !g.authenticated:
		return DecisionLogin
	default:
		return DecisionProceed
	}
}
