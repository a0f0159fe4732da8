package store

import (
	"github.com/renivi-eth/todo-api/internal/logger"
)

// Storages bundles all repository implementations behind their interfaces so
// the service layer receives a single dependency.
type Storages struct {
	UserRepository     UserRepository
	TaskRepository     TaskRepository
	TagRepository      TagRepository
	RelationRepository RelationRepository
}

// NewStorages constructs every repository over the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		TaskRepository:     NewTaskRepository(db, logger),
		TagRepository:      NewTagRepository(db, logger),
		RelationRepository: NewRelationRepository(db, logger),
	}
}
