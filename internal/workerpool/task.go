package workerpool

import (
	"go.uber.org/zap"
)

// Task is a unit of work with its payload. Err holds the outcome once processed.
type Task struct {
	Err  error
	Data interface{}
	f    func(interface{}) error
}

func NewTask(f func(interface{}) error, data interface{}) *Task {
	return &Task{f: f, Data: data}
}

func process(workerID int, task *Task, log Log) {
	task.Err = task.f(task.Data)
	if task.Err != nil {
		log.Info("task failed", zap.Int("worker", workerID), zap.Error(task.Err))
	}
}
