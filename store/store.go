// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/feedbackboard/server/models"
)

// CreatedAtLayout is the storage format for created_at: fixed-width UTC
// text, so lexical order on the column equals chronological order under
// both drivers.
const CreatedAtLayout = "2006-01-02 15:04:05.000000000"

var (
	// ErrNotFound is returned when no item has the requested identifier.
	ErrNotFound = errors.New("feedback item not found")
	// ErrInvalidID is returned when the identifier is not a UUID.
	ErrInvalidID = errors.New("invalid feedback ID format")
)

// ValidationError reports every field that failed submit validation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// FeedbackStore persists feedback items and executes the list queries.
type FeedbackStore struct {
	db       *sql.DB
	validate *validator.Validate
	now      func() time.Time
}

func New(db *sql.DB) *FeedbackStore {
	return &FeedbackStore{
		db:       db,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Create validates the submission, assigns id, createdAt and a zero
// upvote count, and persists the item. The title is trimmed before the
// length check.
func (s *FeedbackStore) Create(ctx context.Context, req models.SubmitFeedbackRequest) (models.FeedbackItem, error) {
	req.Title = strings.TrimSpace(req.Title)

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return models.FeedbackItem{}, &ValidationError{Messages: fieldMessages(verrs)}
		}
		return models.FeedbackItem{}, fmt.Errorf("failed to validate feedback: %w", err)
	}

	item := models.FeedbackItem{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Upvotes:     0,
		CreatedAt:   s.now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feedback (id, title, description, category, upvotes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, item.ID, item.Title, item.Description, item.Category, item.Upvotes, item.CreatedAt.Format(CreatedAtLayout))
	if err != nil {
		return models.FeedbackItem{}, fmt.Errorf("failed to insert feedback: %w", err)
	}

	return item, nil
}

// List returns items filtered by category (empty string selects all) in
// the requested order. Anything other than "mostUpvoted" sorts by
// recency, which also covers the omitted-sort default. Ties break on id
// ascending so listings are reproducible.
func (s *FeedbackStore) List(ctx context.Context, category, sortBy string) ([]models.FeedbackItem, error) {
	query := `SELECT id, title, description, category, upvotes, created_at FROM feedback`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	if sortBy == models.SortMostUpvoted {
		query += ` ORDER BY upvotes DESC, id ASC`
	} else {
		query += ` ORDER BY created_at DESC, id ASC`
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	items := []models.FeedbackItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback rows: %w", err)
	}

	return items, nil
}

// GetByID returns the item with the given identifier.
func (s *FeedbackStore) GetByID(ctx context.Context, id string) (models.FeedbackItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.FeedbackItem{}, ErrInvalidID
	}

	item, err := scanItem(s.db.QueryRowContext(ctx, `
		SELECT id, title, description, category, upvotes, created_at
		FROM feedback
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.FeedbackItem{}, ErrNotFound
	}
	if err != nil {
		return models.FeedbackItem{}, fmt.Errorf("failed to query feedback: %w", err)
	}

	return item, nil
}

// Upvote bumps the counter by one inside a single UPDATE, so concurrent
// upvotes of the same item never lose an increment, and returns the
// post-increment item. A plain read-then-write here would race.
func (s *FeedbackStore) Upvote(ctx context.Context, id string) (models.FeedbackItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.FeedbackItem{}, ErrInvalidID
	}

	item, err := scanItem(s.db.QueryRowContext(ctx, `
		UPDATE feedback
		SET upvotes = upvotes + 1
		WHERE id = $1
		RETURNING id, title, description, category, upvotes, created_at
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.FeedbackItem{}, ErrNotFound
	}
	if err != nil {
		return models.FeedbackItem{}, fmt.Errorf("failed to upvote feedback: %w", err)
	}

	return item, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.FeedbackItem, error) {
	var item models.FeedbackItem
	var createdAt string
	if err := row.Scan(&item.ID, &item.Title, &item.Description, &item.Category, &item.Upvotes, &createdAt); err != nil {
		return models.FeedbackItem{}, err
	}

	ts, err := time.Parse(CreatedAtLayout, createdAt)
	if err != nil {
		return models.FeedbackItem{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	item.CreatedAt = ts

	return item, nil
}

// fieldMessages converts validator errors into the messages the API
// exposes, one per failed field.
func fieldMessages(verrs validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Title":
			if fe.Tag() == "max" {
				msgs = append(msgs, "Title cannot be more than 100 characters")
			} else {
				msgs = append(msgs, "Please add a title")
			}
		case "Description":
			if fe.Tag() == "max" {
				msgs = append(msgs, "Description cannot be more than 500 characters")
			} else {
				msgs = append(msgs, "Please add a description")
			}
		case "Category":
			msgs = append(msgs, "Please select a valid category")
		default:
			msgs = append(msgs, fe.Error())
		}
	}
	return msgs
}
