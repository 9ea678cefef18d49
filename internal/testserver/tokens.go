package testserver

import (
	"sync"

	"shramikadmin/internal/apiclient"
	"shramikadmin/internal/domain"
)

// Tokens is an in-memory token source for tests.
type Tokens struct {
	mu      sync.Mutex
	token   string
	cleared int
}

// NewTokens returns a source holding token.
func NewTokens(token string) *Tokens { return &Tokens{token: token} }

// Token returns the held token.
func (t *Tokens) Token() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.token
}

// Clear drops the token.
func (t *Tokens) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = ""
	t.cleared++
	return nil
}

// Cleared reports how many times Clear was called.
func (t *Tokens) Cleared() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cleared
}

var _ domain.TokenSource = (*Tokens)(nil)

// Client returns an adapter pointed at the server and authenticated with a
// freshly issued token.
func (s *Server) Client(opts ...apiclient.Option) (*apiclient.Client, *Tokens) {
	tokens := NewTokens(s.IssueToken())
	c, err := apiclient.New(s.URL(), tokens, opts...)
	if err != nil {
		panic(err)
	}
	return c, tokens
}
