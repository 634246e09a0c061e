package format

import (
	"testing"
)

func TestResolveMediaURL(t *testing.T) {
	t.Run("absent key resolves to nothing", func(t *testing.T) {
		url, ok := ResolveMediaURL(MediaProjectPicture, "", Transform{Height: 60, Width: 60})
		if ok {
			t.Errorf("expected no URL for empty key, got %q", url)
		}
	})

	t.Run("avatar URL exact concatenation", func(t *testing.T) {
		url, ok := ResolveMediaURL(MediaUserAvatar, "abc123", Transform{Height: 40, Width: 40})
		if !ok {
			t.Fatal("expected a URL")
		}
		want := "https://ik.imagekit.io/mublin/users/avatars/tr:h-40,w-40,c-maintain_ratio/abc123"
		if url != want {
			t.Errorf("expected %q, got %q", want, url)
		}
	})

	t.Run("project picture subpath", func(t *testing.T) {
		url, ok := ResolveMediaURL(MediaProjectPicture, "band.jpg", Transform{Height: 60, Width: 60})
		if !ok {
			t.Fatal("expected a URL")
		}
		want := "https://ik.imagekit.io/mublin/projects/tr:h-60,w-60,c-maintain_ratio/band.jpg"
		if url != want {
			t.Errorf("expected %q, got %q", want, url)
		}
	})

	t.Run("unknown kind resolves to nothing", func(t *testing.T) {
		if url, ok := (MediaResolver{}).Resolve(MediaKind("banner"), "abc", Transform{Height: 10, Width: 10}); ok {
			t.Errorf("expected no URL for unknown kind, got %q", url)
		}
	})

	t.Run("custom base keeps the transform convention", func(t *testing.T) {
		r := MediaResolver{BaseURL: "https://cdn.example.test/media"}
		url, ok := r.Resolve(MediaUserAvatar, "abc123", Transform{Height: 90, Width: 90})
		if !ok {
			t.Fatal("expected a URL")
		}
		want := "https://cdn.example.test/media/users/avatars/tr:h-90,w-90,c-maintain_ratio/abc123"
		if url != want {
			t.Errorf("expected %q, got %q", want, url)
		}
	})
}
