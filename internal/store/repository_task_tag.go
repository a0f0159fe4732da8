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

// relationRepository is the PostgreSQL-backed implementation of
// [RelationRepository].
//
// Link and unlink run their ownership checks and the mutation inside one
// transaction. The UNIQUE(task_id, tag_id) constraint backstops the
// check-then-insert race: of two concurrent links for the same pair, exactly
// one commits and the other surfaces [ErrRelationExists].
type relationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRelationRepository constructs a [RelationRepository] backed by the
// provided database connection and logger.
func NewRelationRepository(db *DB, logger *logger.Logger) RelationRepository {
	logger.Debug().Msg("creating relation repository")
	return &relationRepository{
		db:     db,
		logger: logger,
	}
}

// LinkTaskTag associates a task with a tag, both owned by ownerID.
//
// The checks run in a fixed order inside a single transaction:
//  1. task exists under ownerID — else [ErrTaskNotFound];
//  2. tag exists under ownerID — else [ErrTagNotFound];
//  3. the pair is not linked yet — else [ErrRelationExists].
func (r *relationRepository) LinkTaskTag(ctx context.Context, ownerID, taskID, tagID string) (models.TaskTag, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*relationRepository.LinkTaskTag").Msg("error beginning transaction")
		return models.TaskTag{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := checkOwnership(ctx, tx, checkTaskOwnership, taskID, ownerID, ErrTaskNotFound); err != nil {
		return models.TaskTag{}, err
	}

	if err := checkOwnership(ctx, tx, checkTagOwnership, tagID, ownerID, ErrTagNotFound); err != nil {
		return models.TaskTag{}, err
	}

	var relation models.TaskTag
	row := tx.QueryRowContext(ctx, createRelation, taskID, tagID)
	if err := row.Scan(&relation.TaskID, &relation.TagID, &relation.CreatedAt); err != nil {
		log.Err(err).Str("func", "*relationRepository.LinkTaskTag").Msg("error inserting relation")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.TaskTag{}, ErrRelationExists
		case pgerrcode.ForeignKeyViolation:
			// the task or tag was deleted between the check and the insert
			return models.TaskTag{}, ErrTaskNotFound
		default:
			return models.TaskTag{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*relationRepository.LinkTaskTag").Msg("error committing transaction")
		return models.TaskTag{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return relation, nil
}

// ListTagsForTask returns all tags linked to the given task. The join
// filters on tag.user_id = ownerID, so tags (and by extension tasks) of
// other users never appear; an unknown or foreign task id yields an empty
// slice.
func (r *relationRepository) ListTagsForTask(ctx context.Context, ownerID, taskID string) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTagsForTaskQuery(ownerID, taskID)
	if err != nil {
		log.Err(err).Str("func", "*relationRepository.ListTagsForTask").Msg("error building join query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryTags(ctx, r.db.DB, query, args...)
}

// UnlinkTaskTag removes the relation between a task and a tag, both owned by
// ownerID, and returns the deleted row. Ownership of both endpoints is
// re-validated in the same order as on link; a missing relation yields
// [ErrRelationNotFound]. The tag itself is never deleted here.
func (r *relationRepository) UnlinkTaskTag(ctx context.Context, ownerID, taskID, tagID string) (models.TaskTag, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*relationRepository.UnlinkTaskTag").Msg("error beginning transaction")
		return models.TaskTag{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := checkOwnership(ctx, tx, checkTaskOwnership, taskID, ownerID, ErrTaskNotFound); err != nil {
		return models.TaskTag{}, err
	}

	if err := checkOwnership(ctx, tx, checkTagOwnership, tagID, ownerID, ErrTagNotFound); err != nil {
		return models.TaskTag{}, err
	}

	var relation models.TaskTag
	row := tx.QueryRowContext(ctx, deleteRelation, taskID, tagID)
	if err := row.Scan(&relation.TaskID, &relation.TagID, &relation.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TaskTag{}, ErrRelationNotFound
		}

		log.Err(err).Str("func", "*relationRepository.UnlinkTaskTag").Msg("error deleting relation")
		return models.TaskTag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*relationRepository.UnlinkTaskTag").Msg("error committing transaction")
		return models.TaskTag{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return relation, nil
}

// checkOwnership verifies that the row with the given id exists under
// ownerID, returning notFoundErr otherwise.
func checkOwnership(ctx context.Context, tx *sql.Tx, query, id, ownerID string, notFoundErr error) error {
	var foundID string
	if err := tx.QueryRowContext(ctx, query, id, ownerID).Scan(&foundID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFoundErr
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
