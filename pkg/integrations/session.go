package integrations

import (
	"context"
	"fmt"
	"sync"

	supabase "github.com/nedpals/supabase-go"

	"github.com/mublin/mublin-web/pkg/domain"
)

// SupabaseSessionProvider implements domain.SessionProvider over the hosted
// auth service. Login and logout notify all subscribers so views can react
// without reloading; subscriptions are released through the returned
// unsubscribe function.
type SupabaseSessionProvider struct {
	client *supabase.Client

	mu     sync.Mutex
	nextID int
	subs   map[int]func(*domain.Session)
}

func NewSupabaseSessionProvider(client *supabase.Client) *SupabaseSessionProvider {
	return &SupabaseSessionProvider{
		client: client,
		subs:   make(map[int]func(*domain.Session)),
	}
}

// CurrentSession validates an access token against the auth service. An empty
// or rejected token means guest, reported as ErrSessionNotFound.
func (p *SupabaseSessionProvider) CurrentSession(ctx context.Context, accessToken string) (*domain.Session, error) {
	if accessToken == "" {
		return nil, domain.ErrSessionNotFound
	}

	user, err := p.client.Auth.User(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("token validation: %v: %w", err, domain.ErrSessionNotFound)
	}

	return &domain.Session{
		AccessToken: accessToken,
		UserID:      user.ID,
		Email:       user.Email,
	}, nil
}

func (p *SupabaseSessionProvider) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidRequest
	}

	details, err := p.client.Auth.SignIn(ctx, supabase.UserCredentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("sign in: %v: %w", err, domain.ErrSessionNotFound)
	}

	session := &domain.Session{
		AccessToken: details.AccessToken,
		UserID:      details.User.ID,
		Email:       details.User.Email,
	}
	p.broadcast(session)
	return session, nil
}

func (p *SupabaseSessionProvider) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return domain.ErrSessionNotFound
	}

	if err := p.client.Auth.SignOut(ctx, accessToken); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	p.broadcast(nil)
	return nil
}

// OnSessionChange registers a callback for login/logout notifications. The
// returned function removes the subscription; calling it more than once is
// harmless.
func (p *SupabaseSessionProvider) OnSessionChange(fn func(*domain.Session)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subs[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

func (p *SupabaseSessionProvider) broadcast(session *domain.Session) {
	p.mu.Lock()
	callbacks := make([]func(*domain.Session), 0, len(p.subs))
	for _, fn := range p.subs {
		callbacks = append(callbacks, fn)
	}
	p.mu.Unlock()

	for _, fn := range callbacks {
		fn(session)
	}
}
