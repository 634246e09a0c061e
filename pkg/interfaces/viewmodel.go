package interfaces

import (
	"errors"
	"time"

	"github.com/mublin/mublin-web/pkg/domain"
	"github.com/mublin/mublin-web/pkg/format"
)

// Shared marketplace copy.
const (
	labelNotInformed  = "Não informado"
	labelDefaultRole  = "Músico"
	labelOpenSingular = "vaga"
	labelOpenPlural   = "vagas"
)

// CDN variants used by the gig views.
var (
	projectPictureSize = format.Transform{Height: 60, Width: 60}
	avatarSize         = format.Transform{Height: 40, Width: 40}
)

// Capabilities is what the current visitor may see or do on a gig page.
// Guests can read the full roster; applying and the setlist require a
// session.
type Capabilities struct {
	IsAuthenticated  bool `json:"is_authenticated"`
	CanApply         bool `json:"can_apply"`
	CanSeeFullRoster bool `json:"can_see_full_roster"`
	CanSeePlaylist   bool `json:"can_see_playlist"`
}

// CapabilitiesFor derives the capability set from a session snapshot. A nil
// session means guest.
func CapabilitiesFor(session *domain.Session) Capabilities {
	if session == nil {
		return Capabilities{CanSeeFullRoster: true}
	}
	return Capabilities{
		IsAuthenticated:  true,
		CanApply:         true,
		CanSeeFullRoster: true,
		CanSeePlaylist:   true,
	}
}

// GigCardView is one entry of the feed list, fully formatted for display.
type GigCardView struct {
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Featured        bool   `json:"featured"`
	ProjectName     string `json:"project_name"`
	ProjectPicture  string `json:"project_picture,omitempty"`
	PostedByName    string `json:"posted_by_name"`
	PostedByAvatar  string `json:"posted_by_avatar,omitempty"`
	PostedLabel     string `json:"posted_label"`
	DateLabel       string `json:"date_label"`
	VenueName       string `json:"venue_name,omitempty"`
	CityLabel       string `json:"city_label,omitempty"`
	FeeLabel        string `json:"fee_label"`
	OpenRolesLabel  string `json:"open_roles_label"`
	RolesCount      int    `json:"roles_count"`
	ApplicantsCount int    `json:"applicants_count"`
}

// RoleView is one roster slot, formatted for the gig page.
type RoleView struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	FeeLabel    string `json:"fee_label"`
	Stars       string `json:"stars"`
	Filled      bool   `json:"filled"`
	Sub         bool   `json:"sub"`
	SubForName  string `json:"sub_for_name,omitempty"`
}

// TrackView is one setlist entry.
type TrackView struct {
	Title       string `json:"title"`
	ArtistLabel string `json:"artist_label"`
	TrackURL    string `json:"track_url,omitempty"`
	IsOriginal  bool   `json:"is_original"`
}

// MusicianView is one trending-musician sidebar entry.
type MusicianView struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	RoleName string `json:"role_name"`
}

// GigPageView is the fully formatted gig page. The playlist is present only
// when the visitor's capabilities allow it.
type GigPageView struct {
	Slug           string       `json:"slug"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Featured       bool         `json:"featured"`
	ProjectName    string       `json:"project_name"`
	ProjectGenre   string       `json:"project_genre,omitempty"`
	ProjectPicture string       `json:"project_picture,omitempty"`
	PostedByName   string       `json:"posted_by_name"`
	PostedByAvatar string       `json:"posted_by_avatar,omitempty"`
	PublishedLabel string       `json:"published_label"`
	DateLabel      string       `json:"date_label"`
	EventName      string       `json:"event_name,omitempty"`
	VenueName      string       `json:"venue_name,omitempty"`
	CityLabel      string       `json:"city_label,omitempty"`
	StageName      string       `json:"stage_name,omitempty"`
	EventHours     string       `json:"event_hours,omitempty"`
	StageHours     string       `json:"stage_hours,omitempty"`
	DressCode      string       `json:"dress_code"`
	Recurrence     string       `json:"recurrence,omitempty"`
	FeeLabel       string       `json:"fee_label"`
	OpenRoles      []RoleView   `json:"open_roles"`
	FilledRoles    []RoleView   `json:"filled_roles"`
	Playlist       []TrackView  `json:"playlist,omitempty"`
	Capabilities   Capabilities `json:"capabilities"`
}

// ViewModelBuilder turns domain records into display-ready views. Now is
// injectable so "Hoje" and relative labels are testable.
type ViewModelBuilder struct {
	Media format.MediaResolver
	Now   func() time.Time
}

func NewViewModelBuilder(media format.MediaResolver) *ViewModelBuilder {
	return &ViewModelBuilder{Media: media, Now: time.Now}
}

func (b *ViewModelBuilder) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}

// GigCard formats one feed entry.
func (b *ViewModelBuilder) GigCard(gig domain.Gig) GigCardView {
	now := b.now()
	open, _ := format.PartitionRoles(gig.Roles)

	card := GigCardView{
		Slug:            gig.Slug,
		Title:           gig.Title,
		Featured:        gig.Featured,
		ProjectName:     gig.Project.Name,
		PostedByName:    displayName(gig.PostedBy),
		PostedLabel:     format.RelativeTime(gig.CreatedAt, now),
		DateLabel:       dateLabel(gig, now),
		VenueName:       venueName(gig),
		CityLabel:       cityLabel(gig),
		FeeLabel:        feeLabel(gig, gig.Roles),
		OpenRolesLabel:  format.CountLabel(len(open), labelOpenSingular, labelOpenPlural),
		RolesCount:      gig.RolesCount,
		ApplicantsCount: gig.ApplicationsCount,
	}
	if url, ok := b.Media.Resolve(format.MediaProjectPicture, gig.Project.Picture, projectPictureSize); ok {
		card.ProjectPicture = url
	}
	if url, ok := b.Media.Resolve(format.MediaUserAvatar, gig.PostedBy.Avatar, avatarSize); ok {
		card.PostedByAvatar = url
	}
	return card
}

// GigCards formats a feed page. The result is non-nil so the JSON renders an
// empty array rather than null.
func (b *ViewModelBuilder) GigCards(gigs []domain.Gig) []GigCardView {
	cards := make([]GigCardView, 0, len(gigs))
	for _, gig := range gigs {
		cards = append(cards, b.GigCard(gig))
	}
	return cards
}

// GigPage formats the gig detail page for a visitor with the given
// capabilities.
func (b *ViewModelBuilder) GigPage(detail *domain.GigDetailResponse, caps Capabilities) GigPageView {
	now := b.now()
	gig := detail.Gig
	open, filled := format.PartitionRoles(detail.Roles)

	page := GigPageView{
		Slug:           gig.Slug,
		Title:          gig.Title,
		Description:    gig.Description,
		Featured:       gig.Featured,
		ProjectName:    gig.Project.Name,
		ProjectGenre:   gig.Project.Genre,
		PostedByName:   displayName(gig.PostedBy),
		PublishedLabel: "Publicada em " + format.AbsoluteDate(gig.CreatedAt.In(now.Location())),
		DateLabel:      dateLabel(gig, now),
		VenueName:      venueName(gig),
		CityLabel:      cityLabel(gig),
		StageName:      gig.StageName,
		EventHours:     format.ClockRange(gig.TimeEventStart, gig.TimeEventEnd),
		StageHours:     format.ClockRange(gig.TimeStageStart, gig.TimeStageEnd),
		DressCode:      orNotInformed(gig.DressCode),
		Recurrence:     gig.Recurrence.Name,
		FeeLabel:       feeLabel(gig, detail.Roles),
		OpenRoles:      b.roleViews(open),
		FilledRoles:    b.roleViews(filled),
		Capabilities:   caps,
	}
	if gig.Event != nil {
		page.EventName = gig.Event.Name
	}
	if url, ok := b.Media.Resolve(format.MediaProjectPicture, gig.Project.Picture, projectPictureSize); ok {
		page.ProjectPicture = url
	}
	if url, ok := b.Media.Resolve(format.MediaUserAvatar, gig.PostedBy.Avatar, avatarSize); ok {
		page.PostedByAvatar = url
	}
	if caps.CanSeePlaylist {
		page.Playlist = trackViews(detail.Playlist)
	}
	return page
}

// Musicians formats the trending sidebar.
func (b *ViewModelBuilder) Musicians(musicians []domain.Musician) []MusicianView {
	views := make([]MusicianView, 0, len(musicians))
	for _, m := range musicians {
		view := MusicianView{
			Name:     m.Name,
			Username: m.Username,
			RoleName: m.MainRole,
		}
		if view.RoleName == "" {
			view.RoleName = labelDefaultRole
		}
		if url, ok := b.Media.Resolve(format.MediaUserAvatar, m.Avatar, avatarSize); ok {
			view.Avatar = url
		}
		views = append(views, view)
	}
	return views
}

func (b *ViewModelBuilder) roleViews(roles []domain.GigRole) []RoleView {
	views := make([]RoleView, 0, len(roles))
	for _, role := range roles {
		view := RoleView{
			Label:       roleLabel(role),
			Description: role.Description,
			FeeLabel:    roleFeeLabel(role),
			Stars:       format.ExperienceStars(role.Experience.Level),
			Filled:      role.IsFilled,
			Sub:         role.IsSub,
		}
		if role.SubFor != nil {
			view.SubForName = displayName(*role.SubFor)
		}
		views = append(views, view)
	}
	return views
}

func trackViews(tracks []domain.PlaylistTrack) []TrackView {
	views := make([]TrackView, 0, len(tracks))
	for _, track := range tracks {
		artist := track.ArtistName
		if track.IsOriginal {
			artist = "Autoral"
		}
		views = append(views, TrackView{
			Title:       track.SongTitle,
			ArtistLabel: artist,
			TrackURL:    track.TrackURL,
			IsOriginal:  track.IsOriginal,
		})
	}
	return views
}

// feeLabel renders the gig-level remuneration badge. Gigs without
// remuneration, and gigs whose open roles disclose no fee, both show the
// not-informed copy.
func feeLabel(gig domain.Gig, roles []domain.GigRole) string {
	if !gig.HasRemuneration {
		return labelNotInformed
	}
	min, max, err := format.OpenRoleFeeRange(roles)
	if errors.Is(err, domain.ErrNoOpenRoles) {
		return labelNotInformed
	}
	return format.FeeRange(min, max)
}

func roleFeeLabel(role domain.GigRole) string {
	if role.Fee == nil {
		return labelNotInformed
	}
	return format.FeeRange(*role.Fee, *role.Fee)
}

func roleLabel(role domain.GigRole) string {
	if role.RoleLabel != "" {
		return role.RoleLabel
	}
	if role.RoleName != "" {
		return role.RoleName
	}
	return labelDefaultRole
}

// dateLabel prefers the parent event's start date; a gig not tied to an
// event falls back to its own.
func dateLabel(gig domain.Gig, now time.Time) string {
	date := gig.DateStart
	if gig.Event != nil && gig.Event.DateStart != nil {
		date = gig.Event.DateStart
	}
	if date == nil {
		return labelNotInformed
	}
	return format.EventDate(*date, now)
}

func venueName(gig domain.Gig) string {
	if gig.VenueName != "" {
		return gig.VenueName
	}
	if gig.Event != nil && gig.Event.Venue != nil {
		return gig.Event.Venue.Name
	}
	return ""
}

func cityLabel(gig domain.Gig) string {
	city := gig.City
	if city == nil && gig.Event != nil && gig.Event.Venue != nil {
		city = gig.Event.Venue.City
	}
	if city == nil {
		return ""
	}
	if city.Region != nil && city.Region.UF != "" {
		return city.Name + ", " + city.Region.UF
	}
	return city.Name
}

func displayName(p domain.Profile) string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Username
}

func orNotInformed(s string) string {
	if s == "" {
		return labelNotInformed
	}
	return s
}
