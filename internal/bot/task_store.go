package bot

import (
	"sync"
	"time"
)

// activeTask — задача на бэкенде, привязанная к чату.
type activeTask struct {
	taskID    string
	startedAt time.Time
}

// TaskStore — потокобезопасное in-memory хранилище активных задач.
// Каждому чату Telegram соответствует не более одной задачи проверки.
type TaskStore struct {
	mu     sync.RWMutex
	active map[int64]activeTask
}

// NewTaskStore создает новый экземпляр TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		active: make(map[int64]activeTask),
	}
}

// Set сохраняет сопоставление chatID и taskID. Существующая задача
// для данного chatID перезаписывается.
func (s *TaskStore) Set(chatID int64, taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[chatID] = activeTask{taskID: taskID, startedAt: time.Now()}
}

// Get извлекает taskID для указанного chatID.
// Возвращает taskID и true, если задача найдена, иначе — пустую строку и false.
func (s *TaskStore) Get(chatID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.active[chatID]
	return task.taskID, ok
}

// Age возвращает длительность выполнения активной задачи чата.
func (s *TaskStore) Age(chatID int64) (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.active[chatID]
	if !ok {
		return 0, false
	}
	return time.Since(task.startedAt), true
}

// Delete удаляет задачу для указанного chatID.
func (s *TaskStore) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, chatID)
}
