// Package album keeps the ordered photo collection of the light table and
// the current-photo cursor that navigation gestures move.
package album

// Album is an ordered list of photos with a cursor on the current one.
// The zero value is an empty album.
type Album struct {
	photos  []*Photo
	current int
}

// New returns an album holding photos, with the first one current.
func New(photos ...*Photo) *Album {
	a := &Album{current: -1}
	for _, p := range photos {
		a.Add(p)
	}
	return a
}

// Add appends a photo. The first photo added becomes current.
func (a *Album) Add(p *Photo) {
	a.photos = append(a.photos, p)
	if len(a.photos) == 1 {
		a.current = 0
	}
}

// Len returns the number of photos.
func (a *Album) Len() int { return len(a.photos) }

// Photos returns the photos in order.
func (a *Album) Photos() []*Photo {
	out := make([]*Photo, len(a.photos))
	copy(out, a.photos)
	return out
}

// Index returns the position of the current photo, or -1 when empty.
func (a *Album) Index() int {
	if len(a.photos) == 0 {
		return -1
	}
	return a.current
}

// Current returns the current photo.
func (a *Album) Current() (*Photo, error) {
	if len(a.photos) == 0 {
		return nil, ErrNoPhoto
	}
	return a.photos[a.current], nil
}

// Next moves to the following photo. It reports false and stays put on the
// last photo.
func (a *Album) Next() bool {
	if a.current+1 >= len(a.photos) {
		return false
	}
	a.current++
	return true
}

// Previous moves to the preceding photo. It reports false and stays put on
// the first photo.
func (a *Album) Previous() bool {
	if a.current-1 < 0 || len(a.photos) == 0 {
		return false
	}
	a.current--
	return true
}

// DeleteCurrent removes the current photo and returns it. The cursor steps
// back one place unless it was on the first photo, in which case the photo
// that slid into that slot becomes current.
func (a *Album) DeleteCurrent() (*Photo, error) {
	if len(a.photos) == 0 {
		return nil, ErrNoPhoto
	}
	removed := a.photos[a.current]
	copy(a.photos[a.current:], a.photos[a.current+1:])
	a.photos[len(a.photos)-1] = nil
	a.photos = a.photos[:len(a.photos)-1]
	switch {
	case len(a.photos) == 0:
		a.current = -1
	case a.current >= 1:
		a.current--
	}
	return removed, nil
}
