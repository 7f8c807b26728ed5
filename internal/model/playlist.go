package model

import "time"

// Song is one entry of a playlist. Songs have no identity of their own
// outside their parent playlist; ordering is positional.
type Song struct {
	Name     string `json:"name" binding:"required"`
	Duration string `json:"duration" binding:"required"`
}

// PlatformLinks holds the optional streaming-platform URLs of a playlist.
// The set is always written as a whole: providing it on update overwrites
// all four fields.
type PlatformLinks struct {
	Spotify  *string `json:"spotify,omitempty"`
	Gaana    *string `json:"gaana,omitempty"`
	Jiosaavn *string `json:"jiosaavn,omitempty"`
	Amazon   *string `json:"amazon,omitempty"`
}

// Playlist is the public view model: the parent row composed with its
// ordered songs.
type Playlist struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	CoverImage    string        `json:"cover_image"`
	Songs         []Song        `json:"songs"`
	PlatformLinks PlatformLinks `json:"platform_links"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PlaylistRow is the playlists table row as stored, before composition into
// the view model.
type PlaylistRow struct {
	ID           string
	Title        string
	CoverImage   *string
	SpotifyLink  *string
	GaanaLink    *string
	JiosaavnLink *string
	AmazonLink   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// View composes a stored row and its ordered songs into the public shape.
func (r *PlaylistRow) View(songs []Song) Playlist {
	cover := ""
	if r.CoverImage != nil {
		cover = *r.CoverImage
	}
	if songs == nil {
		songs = []Song{}
	}
	return Playlist{
		ID:         r.ID,
		Title:      r.Title,
		CoverImage: cover,
		Songs:      songs,
		PlatformLinks: PlatformLinks{
			Spotify:  r.SpotifyLink,
			Gaana:    r.GaanaLink,
			Jiosaavn: r.JiosaavnLink,
			Amazon:   r.AmazonLink,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// CreatePlaylistInput is the validated input for creating a playlist. The
// handler decodes the multipart form (including the stringified songs and
// platform_links fields) into this before the service is called.
type CreatePlaylistInput struct {
	Title         string
	Songs         []Song
	PlatformLinks *PlatformLinks
	CoverImageURL *string
}

// UpdatePlaylistInput carries partial-update fields; nil means "leave as is".
// Songs, when present, wholesale-replace the existing list.
type UpdatePlaylistInput struct {
	Title         *string
	Songs         []Song
	PlatformLinks *PlatformLinks
	CoverImageURL *string
}
