package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/registration", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes behind bearer-token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/tasks", h.listTasks)
		r.Post("/task", h.createTask)
		r.Get("/task/{id}", h.getTask)
		r.Put("/task/{id}", h.updateTask)
		r.Delete("/task/{id}", h.deleteTask)
		r.Get("/task/{taskId}/tags", h.listTagsForTask)

		r.Get("/tags", h.listTags)
		r.Post("/tags", h.createTag)
		r.Get("/tags/{id}", h.getTag)
		r.Put("/tags/{id}", h.updateTag)
		r.Delete("/tags/{id}", h.deleteTag)

		r.Post("/tags/{tagId}/task/{taskId}", h.linkTaskTag)
		r.Delete("/tags/{tagId}/task/{taskId}", h.unlinkTaskTag)
	})

	return router
}
