package domain

import (
	"context"
)

// GigGateway is the read surface of the hosted data backend. Every call maps
// to one parameterized selection: equality/range filters, ordering with
// direction, result limiting and nested-relationship expansion are the only
// capabilities the core depends on.
type GigGateway interface {
	ListGigs(ctx context.Context, req GigListRequest) ([]Gig, error)
	GigBySlug(ctx context.Context, slug string) (*Gig, error)
	RolesByGig(ctx context.Context, gigID string, limit int) ([]GigRole, error)
	PlaylistByGig(ctx context.Context, gigID string) ([]PlaylistTrack, error)
	RecentMusicians(ctx context.Context, limit int) ([]Musician, error)
	ProjectRoleOptions(ctx context.Context) ([]RoleOption, error)
}

// GigService aggregates gateway reads into normalized view data.
type GigService interface {
	ListGigs(ctx context.Context, req GigListRequest) (*GigListResponse, error)
	GigDetail(ctx context.Context, slug string) (*GigDetailResponse, error)
	TrendingMusicians(ctx context.Context, limit int) ([]Musician, error)
	ProjectRoleOptions(ctx context.Context) ([]RoleOption, error)
}

// SessionProvider exposes current-session presence and a change-notification
// stream. OnSessionChange returns an unsubscribe function; callers must invoke
// it on view teardown.
type SessionProvider interface {
	CurrentSession(ctx context.Context, accessToken string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
	OnSessionChange(fn func(*Session)) (unsubscribe func())
}
