package interfaces

import (
	"context"

	"github.com/mublin/mublin-web/pkg/domain"
)

type mockGigGateway struct {
	listGigsFunc           func(ctx context.Context, req domain.GigListRequest) ([]domain.Gig, error)
	gigBySlugFunc          func(ctx context.Context, slug string) (*domain.Gig, error)
	rolesByGigFunc         func(ctx context.Context, gigID string, limit int) ([]domain.GigRole, error)
	playlistByGigFunc      func(ctx context.Context, gigID string) ([]domain.PlaylistTrack, error)
	recentMusiciansFunc    func(ctx context.Context, limit int) ([]domain.Musician, error)
	projectRoleOptionsFunc func(ctx context.Context) ([]domain.RoleOption, error)
}

func (m *mockGigGateway) ListGigs(ctx context.Context, req domain.GigListRequest) ([]domain.Gig, error) {
	if m.listGigsFunc != nil {
		return m.listGigsFunc(ctx, req)
	}
	return []domain.Gig{}, nil
}

func (m *mockGigGateway) GigBySlug(ctx context.Context, slug string) (*domain.Gig, error) {
	if m.gigBySlugFunc != nil {
		return m.gigBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrGigNotFound
}

func (m *mockGigGateway) RolesByGig(ctx context.Context, gigID string, limit int) ([]domain.GigRole, error) {
	if m.rolesByGigFunc != nil {
		return m.rolesByGigFunc(ctx, gigID, limit)
	}
	return []domain.GigRole{}, nil
}

func (m *mockGigGateway) PlaylistByGig(ctx context.Context, gigID string) ([]domain.PlaylistTrack, error) {
	if m.playlistByGigFunc != nil {
		return m.playlistByGigFunc(ctx, gigID)
	}
	return []domain.PlaylistTrack{}, nil
}

func (m *mockGigGateway) RecentMusicians(ctx context.Context, limit int) ([]domain.Musician, error) {
	if m.recentMusiciansFunc != nil {
		return m.recentMusiciansFunc(ctx, limit)
	}
	return []domain.Musician{}, nil
}

func (m *mockGigGateway) ProjectRoleOptions(ctx context.Context) ([]domain.RoleOption, error) {
	if m.projectRoleOptionsFunc != nil {
		return m.projectRoleOptionsFunc(ctx)
	}
	return []domain.RoleOption{}, nil
}

type mockGigService struct {
	listGigsFunc           func(ctx context.Context, req domain.GigListRequest) (*domain.GigListResponse, error)
	gigDetailFunc          func(ctx context.Context, slug string) (*domain.GigDetailResponse, error)
	trendingMusiciansFunc  func(ctx context.Context, limit int) ([]domain.Musician, error)
	projectRoleOptionsFunc func(ctx context.Context) ([]domain.RoleOption, error)
}

func (m *mockGigService) ListGigs(ctx context.Context, req domain.GigListRequest) (*domain.GigListResponse, error) {
	if m.listGigsFunc != nil {
		return m.listGigsFunc(ctx, req)
	}
	return &domain.GigListResponse{Gigs: []domain.Gig{}}, nil
}

func (m *mockGigService) GigDetail(ctx context.Context, slug string) (*domain.GigDetailResponse, error) {
	if m.gigDetailFunc != nil {
		return m.gigDetailFunc(ctx, slug)
	}
	return nil, domain.ErrGigNotFound
}

func (m *mockGigService) TrendingMusicians(ctx context.Context, limit int) ([]domain.Musician, error) {
	if m.trendingMusiciansFunc != nil {
		return m.trendingMusiciansFunc(ctx, limit)
	}
	return []domain.Musician{}, nil
}

func (m *mockGigService) ProjectRoleOptions(ctx context.Context) ([]domain.RoleOption, error) {
	if m.projectRoleOptionsFunc != nil {
		return m.projectRoleOptionsFunc(ctx)
	}
	return []domain.RoleOption{}, nil
}

type mockSessionProvider struct {
	currentSessionFunc func(ctx context.Context, accessToken string) (*domain.Session, error)
	signInFunc         func(ctx context.Context, email, password string) (*domain.Session, error)
	signOutFunc        func(ctx context.Context, accessToken string) error
}

func (m *mockSessionProvider) CurrentSession(ctx context.Context, accessToken string) (*domain.Session, error) {
	if m.currentSessionFunc != nil {
		return m.currentSessionFunc(ctx, accessToken)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *mockSessionProvider) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if m.signInFunc != nil {
		return m.signInFunc(ctx, email, password)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *mockSessionProvider) SignOut(ctx context.Context, accessToken string) error {
	if m.signOutFunc != nil {
		return m.signOutFunc(ctx, accessToken)
	}
	return nil
}

func (m *mockSessionProvider) OnSessionChange(func(*domain.Session)) func() {
	return func() {}
}
