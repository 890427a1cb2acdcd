package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"telegram-bulk-checker/internal/domain"
)

// TaskStatus представляет статус задачи проверки списка.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// Task — одна асинхронная задача проверки. Результат заполняется после
// завершения пакетного прогона, ErrorMessage — при сбое.
type Task struct {
	ID           string
	Status       TaskStatus
	Result       []domain.CheckResult
	ErrorMessage string
	CreatedAt    time.Time
	FinishedAt   time.Time
	ExpiresAt    time.Time // Для автоматической очистки
}

// TaskStore — потокобезопасное in-memory хранилище задач.
type TaskStore struct {
	mutex sync.RWMutex
	tasks map[string]*Task
}

// NewTaskStore создает новый экземпляр TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[string]*Task),
	}
}

// CreateTask регистрирует новую задачу со статусом 'pending' и сроком жизни ttl.
func (ts *TaskStore) CreateTask(taskID string, ttl time.Duration) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	now := time.Now()
	ts.tasks[taskID] = &Task{
		ID:        taskID,
		Status:    TaskStatusPending,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// update применяет fn к задаче под блокировкой записи.
func (ts *TaskStore) update(taskID string, fn func(*Task)) error {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	task, exists := ts.tasks[taskID]
	if !exists {
		return fmt.Errorf("задача с ID %s не найдена", taskID)
	}
	fn(task)
	return nil
}

// UpdateTaskStatus обновляет статус задачи.
func (ts *TaskStore) UpdateTaskStatus(taskID string, status TaskStatus) error {
	return ts.update(taskID, func(t *Task) {
		t.Status = status
	})
}

// UpdateTaskResult сохраняет результат и переводит задачу в 'completed'.
func (ts *TaskStore) UpdateTaskResult(taskID string, result []domain.CheckResult) error {
	return ts.update(taskID, func(t *Task) {
		t.Status = TaskStatusCompleted
		t.Result = result
		t.FinishedAt = time.Now()
	})
}

// UpdateTaskError сохраняет сообщение об ошибке и переводит задачу в 'failed'.
func (ts *TaskStore) UpdateTaskError(taskID string, errorMessage string) error {
	return ts.update(taskID, func(t *Task) {
		t.Status = TaskStatusFailed
		t.ErrorMessage = errorMessage
		t.FinishedAt = time.Now()
	})
}

// GetTask возвращает копию задачи по ее ID. Копия защищает вызывающий код
// от гонок с фоновыми обновлениями статуса.
func (ts *TaskStore) GetTask(taskID string) (*Task, error) {
	ts.mutex.RLock()
	defer ts.mutex.RUnlock()

	task, exists := ts.tasks[taskID]
	if !exists {
		return nil, fmt.Errorf("задача с ID %s не найдена", taskID)
	}

	snapshot := *task
	return &snapshot, nil
}

// CleanupExpired удаляет просроченные задачи из хранилища.
func (ts *TaskStore) CleanupExpired() {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	now := time.Now()
	for taskID, task := range ts.tasks {
		if now.After(task.ExpiresAt) {
			delete(ts.tasks, taskID)
		}
	}
}

// StartCleanupTicker запускает периодическую очистку просроченных задач.
// Горутина завершается при отмене контекста.
func (ts *TaskStore) StartCleanupTicker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ts.CleanupExpired()
			}
		}
	}()
}
