package interfaces

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/mublin/mublin-web/pkg/domain"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestGigFeedService_ListGigs(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("featured gigs sort before newer regular gigs", func(t *testing.T) {
		gateway := &mockGigGateway{
			listGigsFunc: func(ctx context.Context, req domain.GigListRequest) ([]domain.Gig, error) {
				return []domain.Gig{
					{ID: "1", CreatedAt: base.Add(2 * time.Hour)},
					{ID: "2", Featured: true, CreatedAt: base},
					{ID: "3", CreatedAt: base.Add(time.Hour)},
					{ID: "4", Featured: true, CreatedAt: base.Add(time.Hour)},
				}, nil
			},
		}
		service := NewGigFeedService(gateway, testLogger())

		resp, err := service.ListGigs(context.Background(), domain.GigListRequest{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		want := []string{"4", "2", "1", "3"}
		if len(resp.Gigs) != len(want) {
			t.Fatalf("expected %d gigs, got %d", len(want), len(resp.Gigs))
		}
		for i, id := range want {
			if resp.Gigs[i].ID != id {
				t.Errorf("position %d: expected gig %s, got %s", i, id, resp.Gigs[i].ID)
			}
		}
	})

	t.Run("caps the page at the requested limit", func(t *testing.T) {
		gateway := &mockGigGateway{
			listGigsFunc: func(ctx context.Context, req domain.GigListRequest) ([]domain.Gig, error) {
				gigs := make([]domain.Gig, 15)
				for i := range gigs {
					gigs[i] = domain.Gig{ID: "g", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
				}
				return gigs, nil
			},
		}
		service := NewGigFeedService(gateway, testLogger())

		resp, err := service.ListGigs(context.Background(), domain.GigListRequest{Limit: 10})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(resp.Gigs) != 10 {
			t.Errorf("expected 10 gigs, got %d", len(resp.Gigs))
		}
		if resp.Total != 10 {
			t.Errorf("expected total 10, got %d", resp.Total)
		}
	})

	t.Run("defaults the limit when unset", func(t *testing.T) {
		var seen domain.GigListRequest
		gateway := &mockGigGateway{
			listGigsFunc: func(ctx context.Context, req domain.GigListRequest) ([]domain.Gig, error) {
				seen = req
				return nil, nil
			},
		}
		service := NewGigFeedService(gateway, testLogger())

		if _, err := service.ListGigs(context.Background(), domain.GigListRequest{}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if seen.Limit != DefaultPageSize {
			t.Errorf("expected default limit %d, got %d", DefaultPageSize, seen.Limit)
		}
	})

	t.Run("propagates gateway failure", func(t *testing.T) {
		gateway := &mockGigGateway{
			listGigsFunc: func(ctx context.Context, req domain.GigListRequest) ([]domain.Gig, error) {
				return nil, domain.ErrFetchFailed
			},
		}
		service := NewGigFeedService(gateway, testLogger())

		if _, err := service.ListGigs(context.Background(), domain.GigListRequest{}); !errors.Is(err, domain.ErrFetchFailed) {
			t.Errorf("expected ErrFetchFailed, got %v", err)
		}
	})
}

func TestGigFeedService_GigDetail(t *testing.T) {
	t.Run("assembles gig with roles and playlist", func(t *testing.T) {
		gateway := &mockGigGateway{
			gigBySlugFunc: func(ctx context.Context, slug string) (*domain.Gig, error) {
				return &domain.Gig{ID: "7", Slug: slug}, nil
			},
			rolesByGigFunc: func(ctx context.Context, gigID string, limit int) ([]domain.GigRole, error) {
				if gigID != "7" {
					t.Errorf("expected roles lookup for gig 7, got %s", gigID)
				}
				if limit != DefaultRolesLimit {
					t.Errorf("expected roles limit %d, got %d", DefaultRolesLimit, limit)
				}
				return []domain.GigRole{{ID: "r1", GigID: gigID}}, nil
			},
			playlistByGigFunc: func(ctx context.Context, gigID string) ([]domain.PlaylistTrack, error) {
				return []domain.PlaylistTrack{{ID: "t1", SongTitle: "Garota de Ipanema"}}, nil
			},
		}
		service := NewGigFeedService(gateway, testLogger())

		detail, err := service.GigDetail(context.Background(), "noite-de-jazz")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if detail.Gig.ID != "7" {
			t.Errorf("expected gig 7, got %s", detail.Gig.ID)
		}
		if len(detail.Roles) != 1 || detail.Roles[0].ID != "r1" {
			t.Errorf("unexpected roles %+v", detail.Roles)
		}
		if len(detail.Playlist) != 1 || detail.Playlist[0].SongTitle != "Garota de Ipanema" {
			t.Errorf("unexpected playlist %+v", detail.Playlist)
		}
	})

	t.Run("missing gig propagates not found", func(t *testing.T) {
		gateway := &mockGigGateway{
			gigBySlugFunc: func(ctx context.Context, slug string) (*domain.Gig, error) {
				return nil, domain.ErrGigNotFound
			},
		}
		service := NewGigFeedService(gateway, testLogger())

		if _, err := service.GigDetail(context.Background(), "inexistente"); !errors.Is(err, domain.ErrGigNotFound) {
			t.Errorf("expected ErrGigNotFound, got %v", err)
		}
	})

	t.Run("empty slug is invalid", func(t *testing.T) {
		service := NewGigFeedService(&mockGigGateway{}, testLogger())
		if _, err := service.GigDetail(context.Background(), ""); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("failed dependent fetches degrade to empty collections", func(t *testing.T) {
		gateway := &mockGigGateway{
			gigBySlugFunc: func(ctx context.Context, slug string) (*domain.Gig, error) {
				return &domain.Gig{ID: "7", Slug: slug}, nil
			},
			rolesByGigFunc: func(ctx context.Context, gigID string, limit int) ([]domain.GigRole, error) {
				return nil, domain.ErrFetchFailed
			},
			playlistByGigFunc: func(ctx context.Context, gigID string) ([]domain.PlaylistTrack, error) {
				return nil, domain.ErrFetchFailed
			},
		}
		service := NewGigFeedService(gateway, testLogger())

		detail, err := service.GigDetail(context.Background(), "noite-de-jazz")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if detail.Roles == nil || len(detail.Roles) != 0 {
			t.Errorf("expected empty non-nil roles, got %+v", detail.Roles)
		}
		if detail.Playlist == nil || len(detail.Playlist) != 0 {
			t.Errorf("expected empty non-nil playlist, got %+v", detail.Playlist)
		}
	})
}

func TestGigFeedService_TrendingMusicians(t *testing.T) {
	t.Run("samples from the recent pool", func(t *testing.T) {
		var requested int
		gateway := &mockGigGateway{
			recentMusiciansFunc: func(ctx context.Context, limit int) ([]domain.Musician, error) {
				requested = limit
				musicians := make([]domain.Musician, limit)
				for i := range musicians {
					musicians[i] = domain.Musician{ID: "m", MainRole: "Baterista"}
				}
				return musicians, nil
			},
		}
		service := NewGigFeedService(gateway, testLogger())

		musicians, err := service.TrendingMusicians(context.Background(), 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if requested != 20 {
			t.Errorf("expected pool of 20, got %d", requested)
		}
		if len(musicians) != 3 {
			t.Errorf("expected 3 musicians, got %d", len(musicians))
		}
	})

	t.Run("small pool returns everyone", func(t *testing.T) {
		gateway := &mockGigGateway{
			recentMusiciansFunc: func(ctx context.Context, limit int) ([]domain.Musician, error) {
				return []domain.Musician{{ID: "1"}, {ID: "2"}}, nil
			},
		}
		service := NewGigFeedService(gateway, testLogger())

		musicians, err := service.TrendingMusicians(context.Background(), 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(musicians) != 2 {
			t.Errorf("expected 2 musicians, got %d", len(musicians))
		}
	})
}
