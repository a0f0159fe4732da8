package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/models"
)

// tagRepository is the PostgreSQL-backed implementation of [TagRepository].
// Ownership filtering follows the same in-query pattern as the task
// repository.
type tagRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTagRepository constructs a [TagRepository] backed by the provided
// database connection and logger.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		db:     db,
		logger: logger,
	}
}

// ListTags returns all tags owned by ownerID with the optional sort and
// limit applied.
func (r *tagRepository) ListTags(ctx context.Context, ownerID string, opts models.ListOptions) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTagsQuery(ownerID, opts)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.ListTags").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryTags(ctx, r.db.DB, query, args...)
}

// GetTag returns the tag with the given id owned by ownerID, or
// [ErrTagNotFound] if no such row exists under that owner.
func (r *tagRepository) GetTag(ctx context.Context, ownerID, tagID string) (models.Tag, error) {
	row := r.db.QueryRowContext(ctx, getTag, tagID, ownerID)
	return r.scanTagRow(ctx, row, "*tagRepository.GetTag")
}

// CreateTag persists a new tag.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrTagNameTaken] (the name is
//     unique within the owner's scope).
func (r *tagRepository) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	row := r.db.QueryRowContext(ctx, createTag, tag.ID, tag.Name, tag.UserID)
	return r.scanTagRow(ctx, row, "*tagRepository.CreateTag")
}

// UpdateTag renames the tag owned by tag.UserID and refreshes updated_at.
// Returns [ErrTagNotFound] when the row does not exist under that owner and
// [ErrTagNameTaken] when the new name collides with another tag of the same
// owner.
func (r *tagRepository) UpdateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	row := r.db.QueryRowContext(ctx, updateTag, tag.Name, tag.ID, tag.UserID)
	return r.scanTagRow(ctx, row, "*tagRepository.UpdateTag")
}

// DeleteTag removes the tag owned by ownerID and returns the deleted row.
// Relations referencing the tag are removed by the ON DELETE CASCADE
// constraint. Returns [ErrTagNotFound] when absent under that owner.
func (r *tagRepository) DeleteTag(ctx context.Context, ownerID, tagID string) (models.Tag, error) {
	row := r.db.QueryRowContext(ctx, deleteTag, tagID, ownerID)
	return r.scanTagRow(ctx, row, "*tagRepository.DeleteTag")
}

// scanTagRow scans a single RETURNING/SELECT row into a tag, translating
// [sql.ErrNoRows] to [ErrTagNotFound] and unique violations to
// [ErrTagNameTaken].
func (r *tagRepository) scanTagRow(ctx context.Context, row *sql.Row, fn string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	var tag models.Tag
	if err := scanTag(row, &tag); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tag{}, ErrTagNotFound
		}

		log.Err(err).Str("func", fn).Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Tag{}, ErrTagNameTaken
		case "":
			return models.Tag{}, err
		default:
			return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return tag, nil
}

// queryTags runs a multi-row tag query against any querier (pool or tx) and
// scans the full result set.
func queryTags(ctx context.Context, db interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}, query string, args ...any) ([]models.Tag, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		var tag models.Tag
		if err := scanTag(rows, &tag); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

func scanTag(row rowScanner, tag *models.Tag) error {
	return row.Scan(
		&tag.ID,
		&tag.Name,
		&tag.UserID,
		&tag.CreatedAt,
		&tag.UpdatedAt,
	)
}
