package service

import (
	"context"
	"fmt"

	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/internal/store"
	"github.com/renivi-eth/todo-api/models"
)

// relationService is the concrete implementation of RelationService. The
// ownership and uniqueness checks live in the repository transaction; this
// layer only adds logging and error wrapping.
type relationService struct {
	relationRepository store.RelationRepository
	logger             *logger.Logger
}

// NewRelationService constructs a RelationService over the given repository.
func NewRelationService(relationRepository store.RelationRepository, logger *logger.Logger) RelationService {
	return &relationService{
		relationRepository: relationRepository,
		logger:             logger,
	}
}

// LinkTaskTag associates a task and a tag owned by ownerID. Failures keep
// the repository ordering: task checked before tag, duplicate pair last.
func (s *relationService) LinkTaskTag(ctx context.Context, ownerID, taskID, tagID string) (models.TaskTag, error) {
	relation, err := s.relationRepository.LinkTaskTag(ctx, ownerID, taskID, tagID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("taskID", taskID).
			Str("tagID", tagID).
			Msg("task-tag linking ended with error")
		return models.TaskTag{}, fmt.Errorf("task-tag linking ended with error: %w", err)
	}

	return relation, nil
}

// ListTagsForTask returns all tags attached to the given task within the
// owner's scope.
func (s *relationService) ListTagsForTask(ctx context.Context, ownerID, taskID string) ([]models.Tag, error) {
	tags, err := s.relationRepository.ListTagsForTask(ctx, ownerID, taskID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("taskID", taskID).Msg("listing tags for task ended with error")
		return nil, fmt.Errorf("listing tags for task ended with error: %w", err)
	}

	return tags, nil
}

// UnlinkTaskTag removes the association between a task and a tag owned by
// ownerID and returns the deleted relation. The tag itself is untouched.
func (s *relationService) UnlinkTaskTag(ctx context.Context, ownerID, taskID, tagID string) (models.TaskTag, error) {
	relation, err := s.relationRepository.UnlinkTaskTag(ctx, ownerID, taskID, tagID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("taskID", taskID).
			Str("tagID", tagID).
			Msg("task-tag unlinking ended with error")
		return models.TaskTag{}, fmt.Errorf("task-tag unlinking ended with error: %w", err)
	}

	return relation, nil
}
