package service

import (
	"github.com/renivi-eth/todo-api/internal/config"
	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/internal/store"
)

// Services bundles all business-logic services for the HTTP layer.
type Services struct {
	AuthService     AuthService
	TaskService     TaskService
	TagService      TagService
	RelationService RelationService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg, logger),
		TaskService:     NewTaskService(storages.TaskRepository, logger),
		TagService:      NewTagService(storages.TagRepository, logger),
		RelationService: NewRelationService(storages.RelationRepository, logger),
	}
}
