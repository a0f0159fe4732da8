package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/renivi-eth/todo-api/models"
)

// UserRepository persists user identities. Emails are unique across all
// users; violation is reported as [ErrEmailAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TaskRepository provides CRUD over tasks scoped to an owning user.
//
// Every method takes the owner's user ID and applies it as an additional
// filter next to the primary key, so a task belonging to another user is
// indistinguishable from a missing one ([ErrTaskNotFound] in both cases).
type TaskRepository interface {
	ListTasks(ctx context.Context, ownerID string, opts models.ListOptions) ([]models.Task, error)
	GetTask(ctx context.Context, ownerID, taskID string) (models.Task, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) (models.Task, error)
}

// TagRepository mirrors [TaskRepository] for tags. Tag names are unique per
// owner; violation is reported as [ErrTagNameTaken].
type TagRepository interface {
	ListTags(ctx context.Context, ownerID string, opts models.ListOptions) ([]models.Tag, error)
	GetTag(ctx context.Context, ownerID, tagID string) (models.Tag, error)
	CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	UpdateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	DeleteTag(ctx context.Context, ownerID, tagID string) (models.Tag, error)
}

// RelationRepository manages the task↔tag association.
//
// LinkTaskTag verifies — inside a single transaction — that the task and the
// tag both exist under ownerID (task checked first), then inserts the
// relation. A concurrent insert of the same pair is stopped by the unique
// constraint and reported as [ErrRelationExists].
type RelationRepository interface {
	LinkTaskTag(ctx context.Context, ownerID, taskID, tagID string) (models.TaskTag, error)
	ListTagsForTask(ctx context.Context, ownerID, taskID string) ([]models.Tag, error)
	UnlinkTaskTag(ctx context.Context, ownerID, taskID, tagID string) (models.TaskTag, error)
}
