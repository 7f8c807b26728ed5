package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/binarychai/playlist-backend/internal/logger"
	"github.com/binarychai/playlist-backend/internal/model"
	"github.com/binarychai/playlist-backend/internal/repository"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// PlaylistService implements the playlist aggregate read/write path:
// composing parent rows with their ordered songs on reads, and decomposing
// inputs into atomic parent+children writes.
type PlaylistService struct {
	playlistRepo *repository.PlaylistRepository
	log          zerolog.Logger
}

// NewPlaylistService creates a new PlaylistService.
func NewPlaylistService(playlistRepo *repository.PlaylistRepository, log zerolog.Logger) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		log:          logger.Component(log, "playlist_service"),
	}
}

// NewPlaylistID generates an external playlist identifier. The timestamp
// keeps IDs roughly sortable; the random suffix makes collisions practically
// impossible.
func NewPlaylistID() string {
	suffix := make([]byte, 7)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("playlist-%d-%s", time.Now().UnixMilli(), suffix)
}

// Get returns the composed playlist or pgx.ErrNoRows.
func (s *PlaylistService) Get(ctx context.Context, id string) (*model.Playlist, error) {
	row, err := s.playlistRepo.GetRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.compose(ctx, row)
}

// GetRandom returns one uniformly random composed playlist, or pgx.ErrNoRows
// when no playlists exist.
func (s *PlaylistService) GetRandom(ctx context.Context) (*model.Playlist, error) {
	row, err := s.playlistRepo.GetRandomRow(ctx)
	if err != nil {
		return nil, err
	}
	return s.compose(ctx, row)
}

// GetAll returns every playlist, newest first, each composed with its songs.
// Unbounded: the catalogue is expected to stay small.
func (s *PlaylistService) GetAll(ctx context.Context) ([]model.Playlist, error) {
	rows, err := s.playlistRepo.ListRows(ctx)
	if err != nil {
		return nil, err
	}

	songsByPlaylist, err := s.playlistRepo.ListAllSongs(ctx)
	if err != nil {
		return nil, err
	}

	playlists := make([]model.Playlist, 0, len(rows))
	for i := range rows {
		playlists = append(playlists, rows[i].View(songsByPlaylist[rows[i].ID]))
	}
	return playlists, nil
}

// Create inserts a new playlist aggregate under a fresh external ID and
// returns the composed result.
func (s *PlaylistService) Create(ctx context.Context, in *model.CreatePlaylistInput) (*model.Playlist, error) {
	row := &model.PlaylistRow{
		ID:         NewPlaylistID(),
		Title:      in.Title,
		CoverImage: in.CoverImageURL,
	}
	if in.PlatformLinks != nil {
		row.SpotifyLink = in.PlatformLinks.Spotify
		row.GaanaLink = in.PlatformLinks.Gaana
		row.JiosaavnLink = in.PlatformLinks.Jiosaavn
		row.AmazonLink = in.PlatformLinks.Amazon
	}

	if err := s.playlistRepo.Create(ctx, row, in.Songs); err != nil {
		return nil, err
	}

	s.log.Info().Str("playlist_id", row.ID).Int("songs", len(in.Songs)).Msg("playlist created")

	view := row.View(in.Songs)
	return &view, nil
}

// Update applies a partial update and returns the recomposed playlist.
// Returns pgx.ErrNoRows when the target does not exist.
func (s *PlaylistService) Update(ctx context.Context, id string, in *model.UpdatePlaylistInput) (*model.Playlist, error) {
	// Existence check up front so callers get a clean not-found.
	if _, err := s.playlistRepo.GetRow(ctx, id); err != nil {
		return nil, err
	}

	if err := s.playlistRepo.Update(ctx, id, in); err != nil {
		return nil, err
	}

	s.log.Info().Str("playlist_id", id).Bool("songs_replaced", in.Songs != nil).Msg("playlist updated")

	return s.Get(ctx, id)
}

// Delete removes a playlist; its songs go with it via the schema cascade.
func (s *PlaylistService) Delete(ctx context.Context, id string) error {
	if err := s.playlistRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("playlist_id", id).Msg("playlist deleted")
	return nil
}

func (s *PlaylistService) compose(ctx context.Context, row *model.PlaylistRow) (*model.Playlist, error) {
	songs, err := s.playlistRepo.GetSongs(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	view := row.View(songs)
	return &view, nil
}
