package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/internal/mock"
	"github.com/renivi-eth/todo-api/internal/store"
	"github.com/renivi-eth/todo-api/models"
)

func newTestRelationService(t *testing.T) (RelationService, *mock.MockRelationRepository) {
	ctrl := gomock.NewController(t)
	relationRepo := mock.NewMockRelationRepository(ctrl)
	svc := NewRelationService(relationRepo, logger.Nop())
	return svc, relationRepo
}

func TestLinkTaskTag_Delegates(t *testing.T) {
	svc, relationRepo := newTestRelationService(t)
	ctx := context.Background()
	ownerID := "018f0000-0000-7000-8000-000000000001"
	taskID := "018f0000-0000-7000-8000-00000000000a"
	tagID := "018f0000-0000-7000-8000-00000000000b"

	relationRepo.EXPECT().
		LinkTaskTag(gomock.Any(), ownerID, taskID, tagID).
		Return(models.TaskTag{TaskID: taskID, TagID: tagID}, nil)

	relation, err := svc.LinkTaskTag(ctx, ownerID, taskID, tagID)
	require.NoError(t, err)
	assert.Equal(t, taskID, relation.TaskID)
	assert.Equal(t, tagID, relation.TagID)
}

func TestLinkTaskTag_DuplicateIsPreserved(t *testing.T) {
	svc, relationRepo := newTestRelationService(t)
	ctx := context.Background()

	relationRepo.EXPECT().
		LinkTaskTag(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.TaskTag{}, store.ErrRelationExists)

	_, err := svc.LinkTaskTag(ctx, "owner", "task-id", "tag-id")
	require.ErrorIs(t, err, store.ErrRelationExists)
}

func TestLinkTaskTag_ForeignTaskIsPreserved(t *testing.T) {
	svc, relationRepo := newTestRelationService(t)
	ctx := context.Background()

	relationRepo.EXPECT().
		LinkTaskTag(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.TaskTag{}, store.ErrTaskNotFound)

	_, err := svc.LinkTaskTag(ctx, "owner", "task-id", "tag-id")
	require.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestListTagsForTask_Delegates(t *testing.T) {
	svc, relationRepo := newTestRelationService(t)
	ctx := context.Background()

	relationRepo.EXPECT().
		ListTagsForTask(gomock.Any(), "owner", "task-id").
		Return([]models.Tag{{Name: "urgent"}, {Name: "home"}}, nil)

	tags, err := svc.ListTagsForTask(ctx, "owner", "task-id")
	require.NoError(t, err)
	require.Len(t, tags, 2)
}

func TestUnlinkTaskTag_MissingRelationIsPreserved(t *testing.T) {
	svc, relationRepo := newTestRelationService(t)
	ctx := context.Background()

	relationRepo.EXPECT().
		UnlinkTaskTag(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.TaskTag{}, store.ErrRelationNotFound)

	_, err := svc.UnlinkTaskTag(ctx, "owner", "task-id", "tag-id")
	require.ErrorIs(t, err, store.ErrRelationNotFound)
}
