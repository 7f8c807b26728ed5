package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/binarychai/playlist-backend/internal/model"
)

// ErrDuplicateID is returned when a playlist insert hits the primary-key
// constraint. Practically unreachable with generated IDs, but surfaced so the
// handler can answer 409 instead of 500.
var ErrDuplicateID = errors.New("playlist with this ID already exists")

const playlistColumns = `id, title, cover_image, spotify_link, gaana_link, jiosaavn_link, amazon_link, created_at, updated_at`

// PlaylistRepository handles playlist aggregate data access. Parent and
// child rows are always written inside one transaction so a failure cannot
// leave an orphaned half-aggregate.
type PlaylistRepository struct {
	pool *pgxpool.Pool
}

// NewPlaylistRepository creates a new PlaylistRepository.
func NewPlaylistRepository(pool *pgxpool.Pool) *PlaylistRepository {
	return &PlaylistRepository{pool: pool}
}

// GetRow retrieves a playlist parent row by ID.
func (r *PlaylistRepository) GetRow(ctx context.Context, id string) (*model.PlaylistRow, error) {
	row := &model.PlaylistRow{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+playlistColumns+` FROM playlists WHERE id = $1`, id,
	).Scan(&row.ID, &row.Title, &row.CoverImage, &row.SpotifyLink, &row.GaanaLink,
		&row.JiosaavnLink, &row.AmazonLink, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// GetRandomRow retrieves one uniformly random playlist parent row.
// Returns pgx.ErrNoRows when the table is empty.
func (r *PlaylistRepository) GetRandomRow(ctx context.Context) (*model.PlaylistRow, error) {
	row := &model.PlaylistRow{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+playlistColumns+` FROM playlists ORDER BY RANDOM() LIMIT 1`,
	).Scan(&row.ID, &row.Title, &row.CoverImage, &row.SpotifyLink, &row.GaanaLink,
		&row.JiosaavnLink, &row.AmazonLink, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ListRows retrieves every playlist parent row, newest first.
func (r *PlaylistRepository) ListRows(ctx context.Context) ([]model.PlaylistRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+playlistColumns+` FROM playlists ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []model.PlaylistRow
	for rows.Next() {
		var p model.PlaylistRow
		if err := rows.Scan(&p.ID, &p.Title, &p.CoverImage, &p.SpotifyLink, &p.GaanaLink,
			&p.JiosaavnLink, &p.AmazonLink, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

// GetSongs retrieves a playlist's songs in stored order.
func (r *PlaylistRepository) GetSongs(ctx context.Context, playlistID string) ([]model.Song, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, duration FROM playlist_songs WHERE playlist_id = $1 ORDER BY song_order ASC`,
		playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []model.Song
	for rows.Next() {
		var s model.Song
		if err := rows.Scan(&s.Name, &s.Duration); err != nil {
			return nil, err
		}
		songs = append(songs, s)
	}
	return songs, rows.Err()
}

// ListAllSongs retrieves the songs of every playlist in one query, grouped by
// playlist ID and ordered by position within each group.
func (r *PlaylistRepository) ListAllSongs(ctx context.Context) (map[string][]model.Song, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT playlist_id, name, duration FROM playlist_songs ORDER BY playlist_id, song_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := make(map[string][]model.Song)
	for rows.Next() {
		var playlistID string
		var s model.Song
		if err := rows.Scan(&playlistID, &s.Name, &s.Duration); err != nil {
			return nil, err
		}
		grouped[playlistID] = append(grouped[playlistID], s)
	}
	return grouped, rows.Err()
}

// Create inserts the parent row and its songs atomically. Song order indices
// follow the slice positions.
func (r *PlaylistRepository) Create(ctx context.Context, row *model.PlaylistRow, songs []model.Song) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO playlists (id, title, cover_image, spotify_link, gaana_link, jiosaavn_link, amazon_link)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		row.ID, row.Title, row.CoverImage, row.SpotifyLink, row.GaanaLink, row.JiosaavnLink, row.AmazonLink,
	).Scan(&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return err
	}

	if err := insertSongs(ctx, tx, row.ID, songs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update applies a partial update to the parent row and, when a new song
// list is provided, wholesale-replaces the children — all in one transaction.
func (r *PlaylistRepository) Update(ctx context.Context, id string, in *model.UpdatePlaylistInput) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	setClauses := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(len(args)))
	}

	if in.Title != nil {
		addSet("title", *in.Title)
	}
	if in.CoverImageURL != nil {
		addSet("cover_image", *in.CoverImageURL)
	}
	if in.PlatformLinks != nil {
		// The links set is overwritten as a whole, never merged field-by-field.
		addSet("spotify_link", in.PlatformLinks.Spotify)
		addSet("gaana_link", in.PlatformLinks.Gaana)
		addSet("jiosaavn_link", in.PlatformLinks.Jiosaavn)
		addSet("amazon_link", in.PlatformLinks.Amazon)
	}

	if len(setClauses) > 0 {
		setClauses = append(setClauses, "updated_at = NOW()")
		args = append(args, id)
		query := "UPDATE playlists SET " + strings.Join(setClauses, ", ") +
			" WHERE id = $" + strconv.Itoa(len(args))
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
	}

	if in.Songs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM playlist_songs WHERE playlist_id = $1`, id); err != nil {
			return err
		}
		if err := insertSongs(ctx, tx, id, in.Songs); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete removes the parent row; the schema cascades to playlist_songs.
// Returns pgx.ErrNoRows when no playlist matched.
func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func insertSongs(ctx context.Context, tx pgx.Tx, playlistID string, songs []model.Song) error {
	for i, s := range songs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO playlist_songs (playlist_id, name, duration, song_order) VALUES ($1, $2, $3, $4)`,
			playlistID, s.Name, s.Duration, i); err != nil {
			return fmt.Errorf("insert song %d: %w", i, err)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
