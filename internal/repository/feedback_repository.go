package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"feedback-browser/internal/database"
	"feedback-browser/internal/models"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository serves the static feedback collection.
type FeedbackRepository interface {
	GetAll(ctx context.Context) ([]models.Feedback, error)
	GetByID(ctx context.Context, id int) (*models.Feedback, error)
	DistinctValues(ctx context.Context, column string) ([]string, error)
}

// The collection never changes after seeding, so rows are read once and kept
// in memory. Every caller gets its own copy of the slice. A failed read is
// retried by the next caller.
type feedbackRepository struct {
	db *database.DB

	mu      sync.Mutex
	loaded  bool
	records []models.Feedback
	byID    map[int]int
}

func NewFeedbackRepository(db *database.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// distinctColumns whitelists the columns DistinctValues may interpolate.
var distinctColumns = map[string]bool{
	"importance": true,
	"type":       true,
	"customer":   true,
}

func (r *feedbackRepository) load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded {
		return nil
	}

	// The load outlives the first request's context.
	records, err := r.queryAll(context.WithoutCancel(ctx))
	if err != nil {
		return err
	}
	r.byID = make(map[int]int, len(records))
	for i, f := range records {
		r.byID[f.ID] = i
	}
	r.records = records
	r.loaded = true
	return nil
}

func (r *feedbackRepository) queryAll(ctx context.Context) ([]models.Feedback, error) {
	query := `
        SELECT id, name, description, importance, type, customer, date
        FROM feedback
        ORDER BY id
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading feedback: %w", err)
	}
	defer rows.Close()

	feedback := []models.Feedback{}
	for rows.Next() {
		var f models.Feedback
		err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Importance, &f.Type, &f.Customer, &f.Date)
		if err != nil {
			return nil, fmt.Errorf("scanning feedback: %w", err)
		}
		feedback = append(feedback, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading feedback: %w", err)
	}

	return feedback, nil
}

func (r *feedbackRepository) GetAll(ctx context.Context) ([]models.Feedback, error) {
	if err := r.load(ctx); err != nil {
		return nil, err
	}

	out := make([]models.Feedback, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *feedbackRepository) GetByID(ctx context.Context, id int) (*models.Feedback, error) {
	if err := r.load(ctx); err != nil {
		return nil, err
	}

	i, ok := r.byID[id]
	if !ok {
		return nil, ErrFeedbackNotFound
	}
	f := r.records[i]
	return &f, nil
}

// DistinctValues lists the values present in a discrete column, sorted.
func (r *feedbackRepository) DistinctValues(ctx context.Context, column string) ([]string, error) {
	if !distinctColumns[column] {
		return nil, fmt.Errorf("column %q has no distinct values", column)
	}

	query := fmt.Sprintf("SELECT DISTINCT %s FROM feedback ORDER BY %s", column, column)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
