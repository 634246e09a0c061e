package interfaces

import (
	"context"
	"errors"
	"sync"

	"github.com/mublin/mublin-web/pkg/domain"
)

// ViewState tracks the lifecycle of a single data-backed view.
type ViewState string

const (
	ViewIdle     ViewState = "idle"
	ViewLoading  ViewState = "loading"
	ViewReady    ViewState = "ready"
	ViewNotFound ViewState = "not_found"
	ViewError    ViewState = "error"
)

// GigDetailView drives the gig page for one slug at a time. Once a load
// settles in ready, not_found or error, the state is terminal for that slug:
// only a different slug starts a new load, there is no automatic retry.
type GigDetailView struct {
	service domain.GigService

	mu     sync.Mutex
	state  ViewState
	slug   string
	loadID int
	detail *domain.GigDetailResponse
	err    error
}

func NewGigDetailView(service domain.GigService) *GigDetailView {
	return &GigDetailView{service: service, state: ViewIdle}
}

// Load resolves the gig for the given slug. A repeated call with the slug of
// a settled load returns the settled result without refetching. A call with
// a new slug supersedes any in-flight load: the older load's result is
// dropped when it arrives.
func (v *GigDetailView) Load(ctx context.Context, slug string) (ViewState, *domain.GigDetailResponse, error) {
	v.mu.Lock()
	if slug == v.slug && v.state != ViewIdle && v.state != ViewLoading {
		state, detail, err := v.state, v.detail, v.err
		v.mu.Unlock()
		return state, detail, err
	}

	v.loadID++
	id := v.loadID
	v.slug = slug
	v.state = ViewLoading
	v.detail = nil
	v.err = nil
	v.mu.Unlock()

	detail, err := v.service.GigDetail(ctx, slug)

	v.mu.Lock()
	defer v.mu.Unlock()

	// A newer load or a cancelled context makes this result stale.
	if id != v.loadID || ctx.Err() != nil {
		return v.state, v.detail, v.err
	}

	switch {
	case err == nil:
		v.state = ViewReady
		v.detail = detail
	case errors.Is(err, domain.ErrGigNotFound):
		v.state = ViewNotFound
		v.err = err
	default:
		v.state = ViewError
		v.err = err
	}
	return v.state, v.detail, v.err
}

// State reports the current lifecycle state without triggering a load.
func (v *GigDetailView) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// GigListView drives the feed view. The feed has no route parameter, so a
// settled state is terminal until Reset is called.
type GigListView struct {
	service domain.GigService

	mu     sync.Mutex
	state  ViewState
	loadID int
	list   *domain.GigListResponse
	err    error
}

func NewGigListView(service domain.GigService) *GigListView {
	return &GigListView{service: service, state: ViewIdle}
}

func (v *GigListView) Load(ctx context.Context, req domain.GigListRequest) (ViewState, *domain.GigListResponse, error) {
	v.mu.Lock()
	if v.state == ViewReady || v.state == ViewError {
		state, list, err := v.state, v.list, v.err
		v.mu.Unlock()
		return state, list, err
	}

	v.loadID++
	id := v.loadID
	v.state = ViewLoading
	v.mu.Unlock()

	list, err := v.service.ListGigs(ctx, req)

	v.mu.Lock()
	defer v.mu.Unlock()

	if id != v.loadID || ctx.Err() != nil {
		return v.state, v.list, v.err
	}

	if err != nil {
		v.state = ViewError
		v.err = err
	} else {
		v.state = ViewReady
		v.list = list
	}
	return v.state, v.list, v.err
}

// Reset returns the view to idle so the next Load refetches.
func (v *GigListView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loadID++
	v.state = ViewIdle
	v.list = nil
	v.err = nil
}

func (v *GigListView) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}
