package workerpool

import (
	"strconv"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultConcurrency = 5
	collectorSize      = 1000
)

type Log interface {
	Info(string, ...zapcore.Field)
}

// Pool.
type Pool struct {
	Tasks   []*Task
	Workers []*Worker

	concurrency int
	collector   chan *Task
	stop        chan struct{}
	wg          sync.WaitGroup
	log         Log
}

// NewPool initializes a new pool with the given tasks.
func NewPool(tasks []*Task, concurrency func() string, log Log) *Pool {
	conc, err := strconv.Atoi(concurrency())
	if err != nil || conc < 1 {
		log.Info("cannot convert concurrency option: ", zap.String("value", concurrency()), zap.Error(err))

		conc = defaultConcurrency
	}

	return &Pool{
		Tasks:       tasks,
		concurrency: conc,
		collector:   make(chan *Task, collectorSize),
		stop:        make(chan struct{}),
		log:         log,
	}
}

// Run starts all the work in the Pool and blocks until it is finished.
func (p *Pool) Run() {
	for i := 1; i <= p.concurrency; i++ {
		worker := NewWorker(p.collector, i, p.log)
		worker.Start(&p.wg)
	}

	for i := range p.Tasks {
		p.collector <- p.Tasks[i]
	}
	close(p.collector)

	p.wg.Wait()
}

// AddTask adds tasks to the pool.
func (p *Pool) AddTask(task *Task) {
	p.collector <- task
}

// RunBackground runs the pool in the background and blocks until Stop.
func (p *Pool) RunBackground() {
	for i := 1; i <= p.concurrency; i++ {
		worker := NewWorker(p.collector, i, p.log)
		p.Workers = append(p.Workers, worker)

		p.wg.Add(1)
		go worker.StartBackground(&p.wg)
	}

	for i := range p.Tasks {
		p.collector <- p.Tasks[i]
	}

	<-p.stop

	for i := range p.Workers {
		p.Workers[i].Stop()
	}

	p.wg.Wait()
}

// Stop stops workers running in the background.
func (p *Pool) Stop() {
	close(p.stop)
}
