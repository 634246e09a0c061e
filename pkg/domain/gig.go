package domain

import (
	"time"
)

// Gig is a single advertised performance opportunity posted by a project.
// Gigs are read-only from this system's perspective: they are created and
// mutated by the hosted backend, and this service only renders committed
// snapshots at request time.
type Gig struct {
	ID                string     `json:"id"`
	Slug              string     `json:"slug"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	DateStart         *time.Time `json:"date_start,omitempty"`
	DateEnd           *time.Time `json:"date_end,omitempty"`
	TimeEventStart    string     `json:"time_event_start,omitempty"`
	TimeEventEnd      string     `json:"time_event_end,omitempty"`
	TimeStageStart    string     `json:"time_stage_start,omitempty"`
	TimeStageEnd      string     `json:"time_stage_end,omitempty"`
	StageName         string     `json:"stage_name,omitempty"`
	HasRemuneration   bool       `json:"has_remuneration"`
	Featured          bool       `json:"featured"`
	Recurrence        Recurrence `json:"recurrence"`
	Project           Project    `json:"project"`
	PostedBy          Profile    `json:"posted_by"`
	VenueName         string     `json:"venue_name,omitempty"`
	VenueType         string     `json:"venue_type,omitempty"`
	DressCode         string     `json:"dress_code,omitempty"`
	City              *City      `json:"city,omitempty"`
	Event             *Event     `json:"event,omitempty"`
	ApplicationsCount int        `json:"applications_count"`
	RolesCount        int        `json:"roles_count"`
	Roles             []GigRole  `json:"roles,omitempty"`
}

// Recurrence describes how often a gig repeats ("gig_iterations" upstream):
// one-off, recurring, tour leg, residency.
type Recurrence struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// GigRole is one staffing slot within a gig, fillable or filled.
// Fee is only meaningful when the parent gig has remuneration; it stays nil
// when the poster did not disclose an amount.
type GigRole struct {
	ID          string          `json:"id"`
	GigID       string          `json:"gig_id"`
	RoleName    string          `json:"role_name"`
	RoleLabel   string          `json:"role_label"`
	Description string          `json:"description,omitempty"`
	Fee         *float64        `json:"fee,omitempty"`
	IsFilled    bool            `json:"is_filled"`
	IsSub       bool            `json:"is_sub"`
	SubFor      *Profile        `json:"sub_for,omitempty"`
	Experience  ExperienceLevel `json:"experience"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ExperienceLevel is the ordinal 1-3 seniority required for a role.
type ExperienceLevel struct {
	Level int    `json:"level"`
	Name  string `json:"name,omitempty"`
}

// Project is the band/act posting gigs.
type Project struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	Genre   string `json:"genre,omitempty"`
	Type    string `json:"type,omitempty"`
	OnTour  bool   `json:"on_tour"`
}

// Profile is a user account as displayed next to gigs.
type Profile struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// Event is the optional scheduled event a gig belongs to. A gig not tied to
// an event carries its own venue and date fields instead.
type Event struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	DateStart   *time.Time `json:"date_start,omitempty"`
	DateEnd     *time.Time `json:"date_end,omitempty"`
	Type        string     `json:"type,omitempty"`
	Venue       *Venue     `json:"venue,omitempty"`
}

// Venue is a place where events happen.
type Venue struct {
	Name string `json:"name"`
	City *City  `json:"city,omitempty"`
}

// City with its optional region and country reference data.
type City struct {
	Name    string   `json:"name"`
	Region  *Region  `json:"region,omitempty"`
	Country *Country `json:"country,omitempty"`
}

type Region struct {
	ID string `json:"id,omitempty"`
	UF string `json:"uf"`
}

type Country struct {
	ID   string `json:"id,omitempty"`
	Code string `json:"code"`
}

// PlaylistTrack is one entry of a gig's setlist.
type PlaylistTrack struct {
	ID         string `json:"id"`
	OrderIndex int    `json:"order_index"`
	SongTitle  string `json:"song_title"`
	ArtistName string `json:"artist_name,omitempty"`
	TrackURL   string `json:"track_url,omitempty"`
	IsOriginal bool   `json:"is_original"`
}

// Musician is the trending-musician projection shown on the landing page and
// the authenticated feed sidebar.
type Musician struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	MainRole string `json:"main_role"`
}

// RoleOption is one entry of the landing page's "Sou ..." role select.
type RoleOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// GigListRequest describes one composite feed read.
type GigListRequest struct {
	ActiveOnly   bool      `json:"active_only"`
	CreatedSince time.Time `json:"created_since"`
	Limit        int       `json:"limit"`
}

type GigListResponse struct {
	Gigs  []Gig `json:"gigs"`
	Total int   `json:"total"`
}

// GigDetailResponse carries the primary gig record plus the two dependent
// collections fetched once its identifier is known.
type GigDetailResponse struct {
	Gig      Gig             `json:"gig"`
	Roles    []GigRole       `json:"roles"`
	Playlist []PlaylistTrack `json:"playlist"`
}

// Session is the authenticated-user snapshot handed out by the session
// provider. A nil *Session means guest.
type Session struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Email       string `json:"email,omitempty"`
}
