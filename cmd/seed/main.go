// Command seed populates a running todo-api instance with demo data.
//
// It registers a user (ignoring the conflict if the account already exists),
// logs in, creates the requested number of tasks and tags and links every tag
// to every task. Useful for manual testing and demos:
//
//	go run ./cmd/seed -a http://localhost:8080 -email demo@example.com -password secret -tasks 5 -tags 3
package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/internal/utils"
	"github.com/renivi-eth/todo-api/models"
)

var taskStates = []models.TaskState{
	models.TaskStateBacklog,
	models.TaskStateInProgress,
	models.TaskStateDone,
}

func main() {
	address := flag.String("a", "http://localhost:8080", "base URL of the todo-api server")
	email := flag.String("email", "demo@example.com", "account email")
	password := flag.String("password", "demo-password", "account password")
	taskCount := flag.Int("tasks", 5, "number of tasks to create")
	tagCount := flag.Int("tags", 3, "number of tags to create")
	flag.Parse()

	log := logger.NewLogger("todo-api-seed")
	client := utils.NewHTTPClient(*address)

	credentials := models.Credentials{Email: *email, Password: *password}

	resp, err := client.R().
		SetBody(credentials).
		Post("/auth/registration")
	if err != nil {
		log.Fatal().Err(err).Msg("registration request failed")
	}
	switch resp.StatusCode() {
	case http.StatusCreated:
		log.Info().Str("email", *email).Msg("registered new user")
	case http.StatusConflict:
		log.Info().Str("email", *email).Msg("user already exists, reusing account")
	default:
		log.Fatal().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("registration rejected")
	}

	var tokenResponse models.TokenResponse
	resp, err = client.R().
		SetBody(credentials).
		SetResult(&tokenResponse).
		Post("/auth/login")
	if err != nil {
		log.Fatal().Err(err).Msg("login request failed")
	}
	if resp.StatusCode() != http.StatusOK {
		log.Fatal().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("login rejected")
	}
	client.SetAuthToken(tokenResponse.Token)

	tasks := make([]models.Task, 0, *taskCount)
	for i := 0; i < *taskCount; i++ {
		data := models.TaskData{
			Name:        fmt.Sprintf("Demo task #%d", i+1),
			Description: fmt.Sprintf("Auto-generated task number %d", i+1),
			State:       taskStates[i%len(taskStates)],
		}

		var task models.Task
		resp, err = client.R().
			SetBody(data).
			SetResult(&task).
			Post("/task")
		if err != nil {
			log.Fatal().Err(err).Msg("task creation request failed")
		}
		if resp.StatusCode() != http.StatusCreated {
			log.Fatal().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("task creation rejected")
		}

		tasks = append(tasks, task)
	}
	log.Info().Int("count", len(tasks)).Msg("tasks created")

	tags := make([]models.Tag, 0, *tagCount)
	for i := 0; i < *tagCount; i++ {
		var tag models.Tag
		resp, err = client.R().
			SetBody(models.TagData{Name: fmt.Sprintf("demo-tag-%d", i+1)}).
			SetResult(&tag).
			Post("/tags")
		if err != nil {
			log.Fatal().Err(err).Msg("tag creation failed")
		}
		if resp.StatusCode() == http.StatusConflict {
			log.Info().Str("name", fmt.Sprintf("demo-tag-%d", i+1)).Msg("tag already exists, skipping")
			continue
		}
		if resp.StatusCode() != http.StatusCreated {
			log.Fatal().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("tag creation rejected")
		}

		tags = append(tags, tag)
	}
	log.Info().Int("count", len(tags)).Msg("tags created")

	linked := 0
	for _, task := range tasks {
		for _, tag := range tags {
			resp, err = client.R().
				Post(fmt.Sprintf("/tags/%s/task/%s", tag.ID, task.ID))
			if err != nil {
				log.Fatal().Err(err).Msg("link request failed")
			}
			switch resp.StatusCode() {
			case http.StatusCreated:
				linked++
			case http.StatusConflict:
				// already linked on a previous run
			default:
				log.Fatal().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("link rejected")
			}
		}
	}
	log.Info().Int("count", linked).Msg("task-tag links created")
}
