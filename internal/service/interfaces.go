package service

import (
	"context"

	"github.com/renivi-eth/todo-api/models"
)

// AuthService owns the identity lifecycle: registration, credential
// verification and the JWT session token round-trip.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService validates task input and delegates persistence to the task
// repository. ownerID always comes from a verified token, never from the
// request body.
type TaskService interface {
	ListTasks(ctx context.Context, ownerID string, opts models.ListOptions) ([]models.Task, error)
	GetTask(ctx context.Context, ownerID, taskID string) (models.Task, error)
	CreateTask(ctx context.Context, ownerID string, data models.TaskData) (models.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID string, data models.TaskData) (models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) (models.Task, error)
}

// TagService mirrors [TaskService] for tags.
type TagService interface {
	ListTags(ctx context.Context, ownerID string, opts models.ListOptions) ([]models.Tag, error)
	GetTag(ctx context.Context, ownerID, tagID string) (models.Tag, error)
	CreateTag(ctx context.Context, ownerID string, data models.TagData) (models.Tag, error)
	UpdateTag(ctx context.Context, ownerID, tagID string, data models.TagData) (models.Tag, error)
	DeleteTag(ctx context.Context, ownerID, tagID string) (models.Tag, error)
}

// RelationService manages the task↔tag association within one owner's scope.
// Unlinking never deletes the tag itself; tag deletion is a separate,
// explicit TagService operation.
type RelationService interface {
	LinkTaskTag(ctx context.Context, ownerID, taskID, tagID string) (models.TaskTag, error)
	ListTagsForTask(ctx context.Context, ownerID, taskID string) ([]models.Tag, error)
	UnlinkTaskTag(ctx context.Context, ownerID, taskID, tagID string) (models.TaskTag, error)
}
