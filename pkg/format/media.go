package format

import (
	"fmt"
	"strings"
)

// MediaKind selects the CDN subpath an opaque storage key resolves under.
type MediaKind string

const (
	MediaProjectPicture MediaKind = "project-picture"
	MediaUserAvatar     MediaKind = "user-avatar"
)

// DefaultCDNBase is the media host's fixed base path.
const DefaultCDNBase = "https://ik.imagekit.io/mublin/"

// Transform is the requested pixel dimensions for a CDN image variant. The
// crop mode is always maintain_ratio.
type Transform struct {
	Height int
	Width  int
}

// MediaResolver builds CDN transformation URLs. The zero value uses
// DefaultCDNBase.
type MediaResolver struct {
	BaseURL string
}

// Resolve returns the fully qualified CDN URL for a storage key, or false
// when the key is absent so the caller can fall back to a placeholder visual.
// The parameter segment is order-sensitive: h, then w, then crop mode.
func (r MediaResolver) Resolve(kind MediaKind, key string, t Transform) (string, bool) {
	if key == "" {
		return "", false
	}

	base := r.BaseURL
	if base == "" {
		base = DefaultCDNBase
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	var subpath string
	switch kind {
	case MediaProjectPicture:
		subpath = "projects"
	case MediaUserAvatar:
		subpath = "users/avatars"
	default:
		return "", false
	}

	return fmt.Sprintf("%s%s/tr:h-%d,w-%d,c-maintain_ratio/%s", base, subpath, t.Height, t.Width, key), true
}

// ResolveMediaURL resolves against the fixed production base path.
func ResolveMediaURL(kind MediaKind, key string, t Transform) (string, bool) {
	return MediaResolver{}.Resolve(kind, key, t)
}
