package interfaces

import (
	"context"
	"log"
	"math/rand"
	"sort"
	"sync"

	"github.com/mublin/mublin-web/pkg/domain"
)

// Feed defaults observed across the gig views.
const (
	DefaultPageSize   = 10
	DefaultRolesLimit = 20
)

// GigFeedService implements domain.GigService. Each view maps to one
// composite read; dependent detail collections are fetched only after the
// primary record's identifier is known.
type GigFeedService struct {
	gateway    domain.GigGateway
	logger     *log.Logger
	pageSize   int
	rolesLimit int
}

func NewGigFeedService(gateway domain.GigGateway, logger *log.Logger) *GigFeedService {
	if logger == nil {
		logger = log.Default()
	}
	return &GigFeedService{
		gateway:    gateway,
		logger:     logger,
		pageSize:   DefaultPageSize,
		rolesLimit: DefaultRolesLimit,
	}
}

// ListGigs returns one page of the feed, featured entries first and newest
// first within each group. The ordering is enforced here as well, so the
// contract holds even when the backend's ordering guarantees change.
func (s *GigFeedService) ListGigs(ctx context.Context, req domain.GigListRequest) (*domain.GigListResponse, error) {
	if req.Limit <= 0 {
		req.Limit = s.pageSize
	}

	gigs, err := s.gateway.ListGigs(ctx, req)
	if err != nil {
		return nil, err
	}

	sortGigs(gigs)
	if len(gigs) > req.Limit {
		gigs = gigs[:req.Limit]
	}

	return &domain.GigListResponse{
		Gigs:  gigs,
		Total: len(gigs),
	}, nil
}

// GigDetail fetches the primary gig record, then its roster and playlist
// concurrently. The dependent fetches tolerate failure: the page renders
// with an empty roster or setlist rather than failing outright.
func (s *GigFeedService) GigDetail(ctx context.Context, slug string) (*domain.GigDetailResponse, error) {
	if slug == "" {
		return nil, domain.ErrInvalidRequest
	}

	gig, err := s.gateway.GigBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	var (
		wg          sync.WaitGroup
		roles       []domain.GigRole
		playlist    []domain.PlaylistTrack
		rolesErr    error
		playlistErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		roles, rolesErr = s.gateway.RolesByGig(ctx, gig.ID, s.rolesLimit)
	}()

	go func() {
		defer wg.Done()
		playlist, playlistErr = s.gateway.PlaylistByGig(ctx, gig.ID)
	}()

	wg.Wait()

	if rolesErr != nil {
		s.logger.Printf("gig %s: roles fetch failed: %v", gig.ID, rolesErr)
		roles = []domain.GigRole{}
	}
	if playlistErr != nil {
		s.logger.Printf("gig %s: playlist fetch failed: %v", gig.ID, playlistErr)
		playlist = []domain.PlaylistTrack{}
	}

	return &domain.GigDetailResponse{
		Gig:      *gig,
		Roles:    roles,
		Playlist: playlist,
	}, nil
}

// TrendingMusicians draws a random handful from the most recent
// main-activity profiles, keeping the sidebar fresh between visits.
func (s *GigFeedService) TrendingMusicians(ctx context.Context, limit int) ([]domain.Musician, error) {
	if limit <= 0 {
		limit = 3
	}

	musicians, err := s.gateway.RecentMusicians(ctx, 20)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(musicians), func(i, j int) {
		musicians[i], musicians[j] = musicians[j], musicians[i]
	})
	if len(musicians) > limit {
		musicians = musicians[:limit]
	}
	return musicians, nil
}

func (s *GigFeedService) ProjectRoleOptions(ctx context.Context) ([]domain.RoleOption, error) {
	return s.gateway.ProjectRoleOptions(ctx)
}

func sortGigs(gigs []domain.Gig) {
	sort.SliceStable(gigs, func(i, j int) bool {
		if gigs[i].Featured != gigs[j].Featured {
			return gigs[i].Featured
		}
		return gigs[i].CreatedAt.After(gigs[j].CreatedAt)
	})
}
