package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/binarychai/playlist-backend/internal/model"
)

// QuizRepository handles quiz submission data access.
type QuizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

// Create inserts a quiz submission and fills in its generated fields.
func (r *QuizRepository) Create(ctx context.Context, q *model.Quiz) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO quiz (question1, question2, question3, question4, playlist_id, ip_address)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		q.Question1, q.Question2, q.Question3, q.Question4, q.PlaylistID, q.IPAddress,
	).Scan(&q.ID, &q.CreatedAt)
}

// ListPaginated retrieves quiz submissions newest first, optionally filtered
// by a substring match on playlist_id, along with the total matching count.
func (r *QuizRepository) ListPaginated(ctx context.Context, playlistID string, limit, offset int) ([]model.Quiz, int, error) {
	countQuery := `SELECT COUNT(*) FROM quiz`
	dataQuery := `SELECT id, question1, question2, question3, question4, playlist_id, ip_address, created_at FROM quiz`

	var filterArgs []interface{}
	if playlistID != "" {
		countQuery += ` WHERE playlist_id LIKE $1`
		dataQuery += ` WHERE playlist_id LIKE $1`
		filterArgs = append(filterArgs, "%"+playlistID+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, filterArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	argIdx := len(filterArgs) + 1
	dataQuery += ` ORDER BY id DESC LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args := append(filterArgs, limit, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	quizzes := []model.Quiz{}
	for rows.Next() {
		var q model.Quiz
		if err := rows.Scan(&q.ID, &q.Question1, &q.Question2, &q.Question3, &q.Question4,
			&q.PlaylistID, &q.IPAddress, &q.CreatedAt); err != nil {
			return nil, 0, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, total, rows.Err()
}
