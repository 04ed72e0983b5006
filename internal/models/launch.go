package models

// PatchSize selects which mission patch image to resolve.
type PatchSize string

const (
	PatchSizeSmall PatchSize = "SMALL"
	PatchSizeLarge PatchSize = "LARGE"
)

// Launch is the canonical entity produced from a raw upstream record.
// Launches are rebuilt on every fetch; they are never persisted locally.
type Launch struct {
	ID       string   `json:"id"`
	Cursor   string   `json:"cursor"`
	DateUnix int64    `json:"-"`
	Site     string   `json:"site"`
	Mission  *Mission `json:"mission"`
	Rocket   *Rocket  `json:"rocket"`
}

// CursorValue makes Launch pageable by the cursor paginator.
func (l Launch) CursorValue() string {
	return l.Cursor
}

// Mission carries both patch image slots; the exposed missionPatch field
// picks one at query time based on the requested size.
type Mission struct {
	Name       string `json:"name"`
	PatchSmall string `json:"patchSmall"`
	PatchLarge string `json:"patchLarge"`
}

// Patch returns the patch image for the requested size. Anything other
// than SMALL falls through to the large patch, which is also the default.
func (m *Mission) Patch(size PatchSize) string {
	if size == PatchSizeSmall {
		return m.PatchSmall
	}
	return m.PatchLarge
}

type Rocket struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Page is one slice of the launch sequence. Cursor is the cursor of the
// last launch on the page, nil when the page is empty.
type Page struct {
	Launches []Launch `json:"launches"`
	Cursor   *string  `json:"cursor"`
	HasMore  bool     `json:"hasMore"`
}

// TripUpdate reports the outcome of a booking mutation. Success is true
// only when every requested launch was booked; Message names the ones
// that were not.
type TripUpdate struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Launches []Launch `json:"launches"`
}
