package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is a validated (width, height) pair.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// String returns the canonical "WxH" token for the size.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// IsZero reports whether the size is unset.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Common size tokens shared across provider families.
var (
	Size256x256   = Size{256, 256}
	Size512x512   = Size{512, 512}
	Size1024x1024 = Size{1024, 1024}
	Size1024x768  = Size{1024, 768}
	Size768x1024  = Size{768, 1024}
	Size1024x1792 = Size{1024, 1792}
	Size1792x1024 = Size{1792, 1024}
)

// ParseSize parses a "WxH" token into a Size.
// It accepts any positive dimensions; whether a provider supports them is
// a separate question answered by Profile.Supports.
func ParseSize(token string) (Size, error) {
	w, h, ok := strings.Cut(strings.TrimSpace(token), "x")
	if !ok {
		return Size{}, fmt.Errorf("malformed size token %q: want WxH", token)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return Size{}, fmt.Errorf("malformed size token %q: bad width", token)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return Size{}, fmt.Errorf("malformed size token %q: bad height", token)
	}
	return Size{Width: width, Height: height}, nil
}

// ResolveSize maps a size token to dimensions accepted by the profile.
//
// A malformed token, or a well-formed one the provider does not accept,
// falls back to the profile default and emits a notice through the logger.
// A bad size must never abort an otherwise valid generation request, so
// ResolveSize never fails. An empty token selects the default silently.
func (p Profile) ResolveSize(token string, log Logger) Size {
	if log == nil {
		log = NopLogger{}
	}
	if strings.TrimSpace(token) == "" {
		return p.DefaultSize
	}

	size, err := ParseSize(token)
	if err != nil {
		log.Warnf("unrecognized size %q, using default %s", token, p.DefaultSize)
		return p.DefaultSize
	}
	if !p.Supports(size) {
		log.Warnf("size %s not supported by provider, using default %s", size, p.DefaultSize)
		return p.DefaultSize
	}
	return size
}
