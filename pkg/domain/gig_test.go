package domain

import (
	"testing"
	"time"
)

func TestGig(t *testing.T) {
	t.Run("Gig struct creation", func(t *testing.T) {
		now := time.Now()
		dateStart := now.Add(7 * 24 * time.Hour)
		fee := 350.0

		gig := Gig{
			ID:              "42",
			Slug:            "noite-de-jazz-no-porao",
			Title:           "Noite de Jazz no Porão",
			CreatedAt:       now,
			DateStart:       &dateStart,
			TimeStageStart:  "21:00:00",
			TimeStageEnd:    "23:30:00",
			HasRemuneration: true,
			Featured:        true,
			Recurrence:      Recurrence{ID: 1, Name: "Única"},
			Project: Project{
				ID:     "7",
				Name:   "Porão Trio",
				Genre:  "Jazz",
				Type:   "Banda",
				OnTour: false,
			},
			PostedBy: Profile{Username: "ana", FullName: "Ana Souza"},
			VenueName: "Porão do Centro",
			City: &City{
				Name:    "São Paulo",
				Region:  &Region{UF: "SP"},
				Country: &Country{Code: "br"},
			},
			ApplicationsCount: 3,
			RolesCount:        2,
			Roles: []GigRole{
				{ID: "1", GigID: "42", RoleName: "Baixista", Fee: &fee, Experience: ExperienceLevel{Level: 2}},
			},
		}

		if gig.Slug != "noite-de-jazz-no-porao" {
			t.Errorf("expected slug noite-de-jazz-no-porao, got %s", gig.Slug)
		}
		if gig.Project.Name != "Porão Trio" {
			t.Errorf("expected project Porão Trio, got %s", gig.Project.Name)
		}
		if gig.City.Region.UF != "SP" {
			t.Errorf("expected region SP, got %s", gig.City.Region.UF)
		}
		if gig.Roles[0].Fee == nil || *gig.Roles[0].Fee != 350.0 {
			t.Errorf("expected role fee 350, got %v", gig.Roles[0].Fee)
		}
		if gig.DateStart == nil || !gig.DateStart.Equal(dateStart) {
			t.Errorf("expected DateStart %v, got %v", dateStart, gig.DateStart)
		}
	})

	t.Run("Gig without optional fields", func(t *testing.T) {
		gig := Gig{
			ID:        "1",
			Slug:      "gig-minima",
			Title:     "Gig Mínima",
			CreatedAt: time.Now(),
		}

		if gig.Event != nil {
			t.Errorf("expected Event to be nil, got %v", gig.Event)
		}
		if gig.City != nil {
			t.Errorf("expected City to be nil, got %v", gig.City)
		}
		if gig.DateStart != nil {
			t.Errorf("expected DateStart to be nil, got %v", gig.DateStart)
		}
		if len(gig.Roles) != 0 {
			t.Errorf("expected no roles, got %d", len(gig.Roles))
		}
	})

	t.Run("GigRole substitute slot", func(t *testing.T) {
		role := GigRole{
			ID:       "9",
			GigID:    "42",
			RoleName: "Baterista",
			IsSub:    true,
			SubFor:   &Profile{Username: "carlos", Avatar: "carlos.jpg"},
		}

		if !role.IsSub {
			t.Error("expected IsSub to be true")
		}
		if role.SubFor == nil || role.SubFor.Username != "carlos" {
			t.Errorf("expected SubFor carlos, got %v", role.SubFor)
		}
		if role.Fee != nil {
			t.Errorf("expected nil fee, got %v", role.Fee)
		}
	})

	t.Run("Event linked to gig", func(t *testing.T) {
		dateStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		event := Event{
			Name:      "Festival de Outono",
			DateStart: &dateStart,
			Type:      "Festival",
			Venue: &Venue{
				Name: "Parque Central",
				City: &City{Name: "Curitiba", Region: &Region{UF: "PR"}, Country: &Country{Code: "br"}},
			},
		}

		if event.Venue.City.Name != "Curitiba" {
			t.Errorf("expected Curitiba, got %s", event.Venue.City.Name)
		}
		if !event.DateStart.Equal(dateStart) {
			t.Errorf("expected DateStart %v, got %v", dateStart, event.DateStart)
		}
	})

	t.Run("GigDetailResponse creation", func(t *testing.T) {
		resp := GigDetailResponse{
			Gig:   Gig{ID: "42", Slug: "noite-de-jazz"},
			Roles: []GigRole{{ID: "1"}, {ID: "2"}},
			Playlist: []PlaylistTrack{
				{ID: "1", OrderIndex: 1, SongTitle: "So What", ArtistName: "Miles Davis"},
			},
		}

		if len(resp.Roles) != 2 {
			t.Errorf("expected 2 roles, got %d", len(resp.Roles))
		}
		if resp.Playlist[0].SongTitle != "So What" {
			t.Errorf("expected So What, got %s", resp.Playlist[0].SongTitle)
		}
	})
}
