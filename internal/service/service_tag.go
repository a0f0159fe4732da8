package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/internal/store"
	"github.com/renivi-eth/todo-api/internal/utils"
	"github.com/renivi-eth/todo-api/models"
)

// tagService is the concrete implementation of TagService.
type tagService struct {
	tagRepository store.TagRepository
	uuidGenerator *utils.UUIDGenerator
	logger        *logger.Logger
}

// NewTagService constructs a TagService over the given repository.
func NewTagService(tagRepository store.TagRepository, logger *logger.Logger) TagService {
	return &tagService{
		tagRepository: tagRepository,
		uuidGenerator: utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

// ListTags returns the owner's tags after validating the list options.
func (s *tagService) ListTags(ctx context.Context, ownerID string, opts models.ListOptions) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	if err := validateListOptions(opts, false); err != nil {
		log.Error().Err(err).Msg("invalid list options provided")
		return nil, err
	}

	tags, err := s.tagRepository.ListTags(ctx, ownerID, opts)
	if err != nil {
		log.Err(err).Msg("tag listing ended with error")
		return nil, fmt.Errorf("tag listing ended with error: %w", err)
	}

	return tags, nil
}

// GetTag returns one tag owned by ownerID.
func (s *tagService) GetTag(ctx context.Context, ownerID, tagID string) (models.Tag, error) {
	tag, err := s.tagRepository.GetTag(ctx, ownerID, tagID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("tagID", tagID).Msg("tag lookup ended with error")
		return models.Tag{}, fmt.Errorf("tag lookup ended with error: %w", err)
	}

	return tag, nil
}

// CreateTag validates the name and persists a new tag under ownerID.
func (s *tagService) CreateTag(ctx context.Context, ownerID string, data models.TagData) (models.Tag, error) {
	log := logger.FromContext(ctx)

	if err := validateTagName(data.Name); err != nil {
		log.Error().Err(err).Msg("invalid tag data provided")
		return models.Tag{}, err
	}

	tag := models.Tag{
		ID:     s.uuidGenerator.Generate(),
		Name:   data.Name,
		UserID: ownerID,
	}

	createdTag, err := s.tagRepository.CreateTag(ctx, tag)
	if err != nil {
		log.Err(err).Msg("tag creation ended with error")
		return models.Tag{}, fmt.Errorf("tag creation ended with error: %w", err)
	}

	return createdTag, nil
}

// UpdateTag validates the name and renames the tag owned by ownerID.
func (s *tagService) UpdateTag(ctx context.Context, ownerID, tagID string, data models.TagData) (models.Tag, error) {
	log := logger.FromContext(ctx)

	if err := validateTagName(data.Name); err != nil {
		log.Error().Err(err).Msg("invalid tag data provided")
		return models.Tag{}, err
	}

	tag := models.Tag{
		ID:     tagID,
		Name:   data.Name,
		UserID: ownerID,
	}

	updatedTag, err := s.tagRepository.UpdateTag(ctx, tag)
	if err != nil {
		log.Err(err).Str("tagID", tagID).Msg("tag update ended with error")
		return models.Tag{}, fmt.Errorf("tag update ended with error: %w", err)
	}

	return updatedTag, nil
}

// DeleteTag removes the tag owned by ownerID and returns the deleted row.
// Relations to tasks are removed by the storage cascade.
func (s *tagService) DeleteTag(ctx context.Context, ownerID, tagID string) (models.Tag, error) {
	deletedTag, err := s.tagRepository.DeleteTag(ctx, ownerID, tagID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("tagID", tagID).Msg("tag deletion ended with error")
		return models.Tag{}, fmt.Errorf("tag deletion ended with error: %w", err)
	}

	return deletedTag, nil
}

func validateTagName(name string) error {
	if nameLen := utf8.RuneCountInString(name); nameLen < 3 || nameLen > 50 {
		return ErrValidationTagName
	}

	return nil
}
