package service

import (
	"io"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/tasklite/task-service/internal/apperrors"
	"github.com/tasklite/task-service/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeUserStore struct {
	createFunc         func(*models.User) error
	findByUsernameFunc func(string) (*models.User, error)
	findByIDFunc       func(int64) (*models.User, error)

	created *models.User
}

func (f *fakeUserStore) Create(user *models.User) error {
	f.created = user
	if f.createFunc != nil {
		return f.createFunc(user)
	}
	user.ID = 1
	return nil
}

func (f *fakeUserStore) FindByUsername(username string) (*models.User, error) {
	if f.findByUsernameFunc != nil {
		return f.findByUsernameFunc(username)
	}
	return nil, apperrors.NotFound("user not found")
}

func (f *fakeUserStore) FindByID(id int64) (*models.User, error) {
	if f.findByIDFunc != nil {
		return f.findByIDFunc(id)
	}
	return nil, apperrors.NotFound("user not found")
}

// memTaskStore is an in-memory TaskStore with the same owner-scoping
// semantics as the Postgres implementation.
type memTaskStore struct {
	nextID int64
	tasks  map[int64]models.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: map[int64]models.Task{}}
}

func (m *memTaskStore) Create(task *models.Task) error {
	m.nextID++
	task.ID = m.nextID
	m.tasks[task.ID] = *task
	return nil
}

func (m *memTaskStore) FindByID(id, userID int64) (*models.Task, error) {
	task, ok := m.tasks[id]
	if !ok || task.UserID != userID {
		return nil, apperrors.NotFound("task not found")
	}
	found := task
	return &found, nil
}

func (m *memTaskStore) FindByOwner(userID int64) ([]models.Task, error) {
	out := []models.Task{}
	for _, task := range m.tasks {
		if task.UserID == userID {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memTaskStore) Update(task *models.Task) error {
	existing, ok := m.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return apperrors.NotFound("task not found")
	}
	m.tasks[task.ID] = *task
	return nil
}

func (m *memTaskStore) Delete(id, userID int64) error {
	task, ok := m.tasks[id]
	if !ok || task.UserID != userID {
		return apperrors.NotFound("task not found")
	}
	delete(m.tasks, id)
	return nil
}
