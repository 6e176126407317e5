package workerpool

import (
	"sync"

	"go.uber.org/zap"
)

// Worker controls all work.
type Worker struct {
	ID       int
	taskChan chan *Task
	quit     chan struct{}
	once     sync.Once
	log      Log
}

// NewWorker returns a new worker instance.
func NewWorker(channel chan *Task, ID int, log Log) *Worker {
	return &Worker{
		ID:       ID,
		taskChan: channel,
		quit:     make(chan struct{}),
		log:      log,
	}
}

// Start runs the worker until the task channel is closed.
func (wr *Worker) Start(wg *sync.WaitGroup) {
	wg.Add(1)

	go func() {
		defer wg.Done()

		for task := range wr.taskChan {
			process(wr.ID, task, wr.log)
		}
	}()
}

// StartBackground processes tasks until Stop is called.
func (wr *Worker) StartBackground(wg *sync.WaitGroup) {
	defer wg.Done()

	wr.log.Info("starting worker", zap.Int("worker", wr.ID))

	for {
		select {
		case task := <-wr.taskChan:
			process(wr.ID, task, wr.log)
		case <-wr.quit:
			return
		}
	}
}

// Stop quits for worker.
func (wr *Worker) Stop() {
	wr.once.Do(func() {
		wr.log.Info("closing worker", zap.Int("worker", wr.ID))
		close(wr.quit)
	})
}
