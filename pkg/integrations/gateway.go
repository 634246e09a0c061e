package integrations

import (
	"context"
	"fmt"
	"strconv"
	"time"

	supabase "github.com/nedpals/supabase-go"

	"github.com/mublin/mublin-web/pkg/domain"
)

// Column sets for the composite gig reads. Nested segments are the backend's
// eager-join syntax; the aliased count entries fetch child-row counts without
// the rows.
const (
	gigListSelect = "id,created_at,slug,title,description,stage_name," +
		"date_start,date_end,time_event_start,time_event_end,time_stage_start,time_stage_end," +
		"has_remuneration,featured,iteration_id,venue_name," +
		"gig_iterations(name_ptbr)," +
		"projects(id,name,picture,on_tour,genres(name),project_types(name_ptbr))," +
		"profiles!gigs_posted_by_fkey(username,full_name,avatar)," +
		"cities(id,name,regions(id,uf),countries(id,code))," +
		"venue_types(id,name)," +
		"events(name,description,date_start,date_end,event_types(name),venues(name,cities(name,regions(id,uf),countries(id,code))))," +
		"applications_count:gig_applications(count)," +
		"roles_count:gig_roles(count)," +
		"gig_roles(id,gig_id,created_at,fee,is_filled,is_sub,description,roles(name_ptbr,description_ptbr),experience_levels(id,name_pt))"

	gigDetailSelect = gigListSelect + ",dress_code_types(name)"

	gigRoleSelect = "id,gig_id,created_at,description,fee,is_filled,is_sub," +
		"profiles(username,avatar)," +
		"roles(name_ptbr,description_ptbr)," +
		"experience_levels(id,name_pt)"

	playlistSelect = "id,order_index,song_title,artist_name,track_url,is_original"

	musicianSelect = "id,full_name,username,avatar," +
		"profile_roles!inner(main_activity,roles(name_ptbr))"
)

// SupabaseGateway implements domain.GigGateway against the hosted backend:
// composite reads go through the RestClient, plain equality reads through the
// SDK's bundled builder.
type SupabaseGateway struct {
	rest *RestClient
	sdk  *supabase.Client
}

func NewSupabaseGateway(rest *RestClient, sdk *supabase.Client) *SupabaseGateway {
	return &SupabaseGateway{
		rest: rest,
		sdk:  sdk,
	}
}

type countRow struct {
	Count int `json:"count"`
}

type nameRow struct {
	Name string `json:"name"`
}

type namePTRow struct {
	NamePTBR string `json:"name_ptbr"`
}

type regionRow struct {
	ID int64  `json:"id"`
	UF string `json:"uf"`
}

type countryRow struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

type cityRow struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Regions   *regionRow  `json:"regions"`
	Countries *countryRow `json:"countries"`
}

type projectRow struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Picture      string     `json:"picture"`
	OnTour       bool       `json:"on_tour"`
	Genres       *nameRow   `json:"genres"`
	ProjectTypes *namePTRow `json:"project_types"`
}

type profileRow struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

type venueRow struct {
	Name   string   `json:"name"`
	Cities *cityRow `json:"cities"`
}

type eventRow struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DateStart   string    `json:"date_start"`
	DateEnd     string    `json:"date_end"`
	EventTypes  *nameRow  `json:"event_types"`
	Venues      *venueRow `json:"venues"`
}

type experienceRow struct {
	ID     int    `json:"id"`
	NamePT string `json:"name_pt"`
}

type roleRefRow struct {
	NamePTBR        string `json:"name_ptbr"`
	DescriptionPTBR string `json:"description_ptbr"`
}

type gigRoleRow struct {
	ID               int64          `json:"id"`
	GigID            int64          `json:"gig_id"`
	CreatedAt        string         `json:"created_at"`
	Description      string         `json:"description"`
	Fee              *float64       `json:"fee"`
	IsFilled         bool           `json:"is_filled"`
	IsSub            bool           `json:"is_sub"`
	Profiles         *profileRow    `json:"profiles"`
	Roles            *roleRefRow    `json:"roles"`
	ExperienceLevels *experienceRow `json:"experience_levels"`
}

type gigRow struct {
	ID                int64        `json:"id"`
	CreatedAt         string       `json:"created_at"`
	Slug              string       `json:"slug"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	StageName         string       `json:"stage_name"`
	DateStart         string       `json:"date_start"`
	DateEnd           string       `json:"date_end"`
	TimeEventStart    string       `json:"time_event_start"`
	TimeEventEnd      string       `json:"time_event_end"`
	TimeStageStart    string       `json:"time_stage_start"`
	TimeStageEnd      string       `json:"time_stage_end"`
	HasRemuneration   bool         `json:"has_remuneration"`
	Featured          bool         `json:"featured"`
	IterationID       int          `json:"iteration_id"`
	VenueName         string       `json:"venue_name"`
	GigIterations     *namePTRow   `json:"gig_iterations"`
	Projects          *projectRow  `json:"projects"`
	Profiles          *profileRow  `json:"profiles"`
	Cities            *cityRow     `json:"cities"`
	VenueTypes        *nameRow     `json:"venue_types"`
	DressCodeTypes    *nameRow     `json:"dress_code_types"`
	Events            *eventRow    `json:"events"`
	ApplicationsCount []countRow   `json:"applications_count"`
	RolesCount        []countRow   `json:"roles_count"`
	GigRoles          []gigRoleRow `json:"gig_roles"`
}

type playlistRow struct {
	ID         int64  `json:"id"`
	OrderIndex int    `json:"order_index"`
	SongTitle  string `json:"song_title"`
	ArtistName string `json:"artist_name"`
	TrackURL   string `json:"track_url"`
	IsOriginal bool   `json:"is_original"`
}

type profileRoleRow struct {
	MainActivity bool        `json:"main_activity"`
	Roles        *roleNameRow `json:"roles"`
}

type roleNameRow struct {
	NamePTBR string `json:"name_ptbr"`
}

type musicianRow struct {
	ID           string           `json:"id"`
	FullName     string           `json:"full_name"`
	Username     string           `json:"username"`
	Avatar       string           `json:"avatar"`
	ProfileRoles []profileRoleRow `json:"profile_roles"`
}

type roleOptionRow struct {
	ID              int64  `json:"id"`
	DescriptionPTBR string `json:"description_ptbr"`
}

// ListGigs runs the one composite feed read: active gigs since the creation
// floor, featured first, newest first, bounded to the requested page size.
func (g *SupabaseGateway) ListGigs(ctx context.Context, req domain.GigListRequest) ([]domain.Gig, error) {
	query := Query{
		Table:  "gigs",
		Select: gigListSelect,
		Order: []Order{
			{Column: "featured", Descending: true},
			{Column: "created_at", Descending: true},
		},
		Limit: req.Limit,
	}
	if req.ActiveOnly {
		query.Filters = append(query.Filters, Filter{Column: "active", Operator: "eq", Value: "true"})
	}
	if !req.CreatedSince.IsZero() {
		query.Filters = append(query.Filters, Filter{
			Column:   "created_at",
			Operator: "gte",
			Value:    req.CreatedSince.Format("2006-01-02"),
		})
	}

	var rows []gigRow
	if err := g.rest.Execute(ctx, query, &rows); err != nil {
		return nil, err
	}

	gigs := make([]domain.Gig, 0, len(rows))
	for _, row := range rows {
		gigs = append(gigs, toGig(row))
	}
	return gigs, nil
}

// GigBySlug fetches exactly one gig. A slug matching zero rows is NotFound,
// which callers must keep distinct from a failed fetch.
func (g *SupabaseGateway) GigBySlug(ctx context.Context, slug string) (*domain.Gig, error) {
	if slug == "" {
		return nil, domain.ErrInvalidRequest
	}

	query := Query{
		Table:   "gigs",
		Select:  gigDetailSelect,
		Filters: []Filter{{Column: "slug", Operator: "eq", Value: slug}},
		Limit:   1,
	}

	var rows []gigRow
	if err := g.rest.Execute(ctx, query, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("slug %q: %w", slug, domain.ErrGigNotFound)
	}

	gig := toGig(rows[0])
	return &gig, nil
}

func (g *SupabaseGateway) RolesByGig(ctx context.Context, gigID string, limit int) ([]domain.GigRole, error) {
	if gigID == "" {
		return nil, domain.ErrInvalidRequest
	}

	query := Query{
		Table:   "gig_roles",
		Select:  gigRoleSelect,
		Filters: []Filter{{Column: "gig_id", Operator: "eq", Value: gigID}},
		Order:   []Order{{Column: "created_at", Descending: true}},
		Limit:   limit,
	}

	var rows []gigRoleRow
	if err := g.rest.Execute(ctx, query, &rows); err != nil {
		return nil, err
	}

	roles := make([]domain.GigRole, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, toGigRole(row))
	}
	return roles, nil
}

func (g *SupabaseGateway) PlaylistByGig(ctx context.Context, gigID string) ([]domain.PlaylistTrack, error) {
	if gigID == "" {
		return nil, domain.ErrInvalidRequest
	}

	query := Query{
		Table:   "gig_playlist",
		Select:  playlistSelect,
		Filters: []Filter{{Column: "gig_id", Operator: "eq", Value: gigID}},
		Order:   []Order{{Column: "order_index", Descending: true}},
	}

	var rows []playlistRow
	if err := g.rest.Execute(ctx, query, &rows); err != nil {
		return nil, err
	}

	tracks := make([]domain.PlaylistTrack, 0, len(rows))
	for _, row := range rows {
		tracks = append(tracks, domain.PlaylistTrack{
			ID:         strconv.FormatInt(row.ID, 10),
			OrderIndex: row.OrderIndex,
			SongTitle:  row.SongTitle,
			ArtistName: row.ArtistName,
			TrackURL:   row.TrackURL,
			IsOriginal: row.IsOriginal,
		})
	}
	return tracks, nil
}

// RecentMusicians fetches the latest profiles whose main activity is a
// musical role; the service layer shuffles and trims them for the sidebar.
func (g *SupabaseGateway) RecentMusicians(ctx context.Context, limit int) ([]domain.Musician, error) {
	query := Query{
		Table:   "profiles",
		Select:  musicianSelect,
		Filters: []Filter{{Column: "profile_roles.main_activity", Operator: "eq", Value: "true"}},
		Order:   []Order{{Column: "created_at", Descending: true}},
		Limit:   limit,
	}

	var rows []musicianRow
	if err := g.rest.Execute(ctx, query, &rows); err != nil {
		return nil, err
	}

	musicians := make([]domain.Musician, 0, len(rows))
	for _, row := range rows {
		mainRole := "Músico"
		if len(row.ProfileRoles) > 0 && row.ProfileRoles[0].Roles != nil && row.ProfileRoles[0].Roles.NamePTBR != "" {
			mainRole = row.ProfileRoles[0].Roles.NamePTBR
		}
		musicians = append(musicians, domain.Musician{
			ID:       row.ID,
			Name:     row.FullName,
			Username: row.Username,
			Avatar:   row.Avatar,
			MainRole: mainRole,
		})
	}
	return musicians, nil
}

// ProjectRoleOptions reads the role reference list for the landing page
// select through the SDK's builder; a plain equality read is all it needs.
func (g *SupabaseGateway) ProjectRoleOptions(ctx context.Context) ([]domain.RoleOption, error) {
	var rows []roleOptionRow
	err := g.sdk.DB.From("roles").
		Select("id", "description_ptbr").
		Eq("applies_to_a_project", "true").
		Execute(&rows)
	if err != nil {
		return nil, fmt.Errorf("roles reference read: %v: %w", err, domain.ErrFetchFailed)
	}

	options := make([]domain.RoleOption, 0, len(rows))
	for _, row := range rows {
		options = append(options, domain.RoleOption{
			ID:    strconv.FormatInt(row.ID, 10),
			Label: row.DescriptionPTBR,
		})
	}
	return options, nil
}

func toGig(row gigRow) domain.Gig {
	gig := domain.Gig{
		ID:              strconv.FormatInt(row.ID, 10),
		Slug:            row.Slug,
		Title:           row.Title,
		Description:     row.Description,
		CreatedAt:       parseTimestamp(row.CreatedAt),
		DateStart:       parseDate(row.DateStart),
		DateEnd:         parseDate(row.DateEnd),
		TimeEventStart:  row.TimeEventStart,
		TimeEventEnd:    row.TimeEventEnd,
		TimeStageStart:  row.TimeStageStart,
		TimeStageEnd:    row.TimeStageEnd,
		StageName:       row.StageName,
		HasRemuneration: row.HasRemuneration,
		Featured:        row.Featured,
		Recurrence:      domain.Recurrence{ID: row.IterationID},
		VenueName:       row.VenueName,
		City:            toCity(row.Cities),
	}

	if row.GigIterations != nil {
		gig.Recurrence.Name = row.GigIterations.NamePTBR
	}
	if row.Projects != nil {
		gig.Project = domain.Project{
			ID:      strconv.FormatInt(row.Projects.ID, 10),
			Name:    row.Projects.Name,
			Picture: row.Projects.Picture,
			OnTour:  row.Projects.OnTour,
		}
		if row.Projects.Genres != nil {
			gig.Project.Genre = row.Projects.Genres.Name
		}
		if row.Projects.ProjectTypes != nil {
			gig.Project.Type = row.Projects.ProjectTypes.NamePTBR
		}
	}
	if row.Profiles != nil {
		gig.PostedBy = domain.Profile{
			ID:       row.Profiles.ID,
			Username: row.Profiles.Username,
			FullName: row.Profiles.FullName,
			Avatar:   row.Profiles.Avatar,
		}
	}
	if row.VenueTypes != nil {
		gig.VenueType = row.VenueTypes.Name
	}
	if row.DressCodeTypes != nil {
		gig.DressCode = row.DressCodeTypes.Name
	}
	if row.Events != nil {
		event := domain.Event{
			Name:        row.Events.Name,
			Description: row.Events.Description,
			DateStart:   parseDate(row.Events.DateStart),
			DateEnd:     parseDate(row.Events.DateEnd),
		}
		if row.Events.EventTypes != nil {
			event.Type = row.Events.EventTypes.Name
		}
		if row.Events.Venues != nil {
			event.Venue = &domain.Venue{
				Name: row.Events.Venues.Name,
				City: toCity(row.Events.Venues.Cities),
			}
		}
		gig.Event = &event
	}
	if len(row.ApplicationsCount) > 0 {
		gig.ApplicationsCount = row.ApplicationsCount[0].Count
	}
	if len(row.RolesCount) > 0 {
		gig.RolesCount = row.RolesCount[0].Count
	}

	gig.Roles = make([]domain.GigRole, 0, len(row.GigRoles))
	for _, roleRow := range row.GigRoles {
		gig.Roles = append(gig.Roles, toGigRole(roleRow))
	}

	return gig
}

func toGigRole(row gigRoleRow) domain.GigRole {
	role := domain.GigRole{
		ID:          strconv.FormatInt(row.ID, 10),
		GigID:       strconv.FormatInt(row.GigID, 10),
		Description: row.Description,
		Fee:         row.Fee,
		IsFilled:    row.IsFilled,
		IsSub:       row.IsSub,
		CreatedAt:   parseTimestamp(row.CreatedAt),
	}
	if row.Roles != nil {
		role.RoleName = row.Roles.NamePTBR
		role.RoleLabel = row.Roles.DescriptionPTBR
	}
	if row.ExperienceLevels != nil {
		role.Experience = domain.ExperienceLevel{
			Level: row.ExperienceLevels.ID,
			Name:  row.ExperienceLevels.NamePT,
		}
	}
	if row.IsSub && row.Profiles != nil {
		role.SubFor = &domain.Profile{
			Username: row.Profiles.Username,
			Avatar:   row.Profiles.Avatar,
		}
	}
	return role
}

func toCity(row *cityRow) *domain.City {
	if row == nil {
		return nil
	}
	city := &domain.City{Name: row.Name}
	if row.Regions != nil {
		city.Region = &domain.Region{
			ID: strconv.FormatInt(row.Regions.ID, 10),
			UF: row.Regions.UF,
		}
	}
	if row.Countries != nil {
		city.Country = &domain.Country{
			ID:   strconv.FormatInt(row.Countries.ID, 10),
			Code: row.Countries.Code,
		}
	}
	return city
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
