// Package monitor implements the liveness-token idiom from spec.md §9: a
// way for code that is about to invoke a user callback to notice, on
// return, whether that callback tore down the object the code was in the
// middle of operating on.
package monitor

// Token is held by an object that may be destroyed from within a user
// callback invoked on its behalf (a Channel closed from inside its own
// error callback, for instance).
type Token struct {
	dead bool
}

// NewToken returns a live token.
func NewToken() *Token { return &Token{} }

// Kill marks the owning object as destroyed. Idempotent; a nil token is
// ignored, just as Alive treats one as not alive.
func (t *Token) Kill() {
	if t != nil {
		t.dead = true
	}
}

// Alive reports whether the owning object is still usable.
func (t *Token) Alive() bool { return t != nil && !t.dead }

// Guard snapshots a token before a reentrant call and reports, after the
// call returns, whether the guarded object survived it.
type Guard struct {
	tok *Token
}

// Watch begins observing tok.
func Watch(tok *Token) Guard { return Guard{tok: tok} }

// Survived reports whether the watched object is still alive.
func (g Guard) Survived() bool { return g.tok.Alive() }
