package worker

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool runs background tasks such as cache warm-up.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		run(job)
	}
}

// run keeps a panicking task from taking the worker down with it.
func run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("worker task panicked")
		}
	}()
	job()
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop waits for queued tasks to finish. Submit must not be called after Stop.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
