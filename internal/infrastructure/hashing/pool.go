// Package hashing runs bcrypt work on a fixed-size worker pool so CPU-bound
// password hashing cannot monopolize request goroutines. Callers block on a
// per-job result channel and are released early when their context ends.
package hashing

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/policedept/records-system/internal/api/metrics"
	"github.com/policedept/records-system/internal/core/domain"
)

const queueBuffer = 64

type job struct {
	compare  bool
	password string
	hash     string
	done     chan result
}

type result struct {
	hash string
	err  error
}

// Pool is a bounded bcrypt worker pool implementing ports.PasswordHasher.
type Pool struct {
	jobs    chan job
	workers int
	cost    int
}

// NewPool creates a Pool with the given worker count and bcrypt cost factor.
// Non-positive workers defaults to the CPU count; a cost outside bcrypt's
// accepted range defaults to bcrypt.DefaultCost (10).
func NewPool(workers, cost int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Pool{
		jobs:    make(chan job, queueBuffer),
		workers: workers,
		cost:    cost,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		go p.runWorker(ctx)
	}
}

// Hash derives a salted bcrypt hash of password.
func (p *Pool) Hash(ctx context.Context, password string) (string, error) {
	start := time.Now()
	res, err := p.submit(ctx, job{password: password, done: make(chan result, 1)})
	metrics.HashingDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	return res.hash, res.err
}

// Compare checks password against a stored bcrypt hash. Mismatch returns
// domain.ErrInvalidCredentials.
func (p *Pool) Compare(ctx context.Context, hash, password string) error {
	start := time.Now()
	res, err := p.submit(ctx, job{compare: true, hash: hash, password: password, done: make(chan result, 1)})
	metrics.HashingDuration.WithLabelValues("compare").Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}
	return res.err
}

func (p *Pool) submit(ctx context.Context, j job) (result, error) {
	select {
	case p.jobs <- j:
	case <-ctx.Done():
		return result{}, ctx.Err()
	}

	select {
	case res := <-j.done:
		return res, nil
	case <-ctx.Done():
		// The worker still finishes the job; the buffered done channel lets
		// it complete without a receiver.
		return result{}, ctx.Err()
	}
}

func (p *Pool) runWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-p.jobs:
			j.done <- p.process(j)
		}
	}
}

func (p *Pool) process(j job) result {
	if j.compare {
		if bcrypt.CompareHashAndPassword([]byte(j.hash), []byte(j.password)) != nil {
			return result{err: domain.ErrInvalidCredentials}
		}
		return result{}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(j.password), p.cost)
	if err != nil {
		return result{err: err}
	}
	return result{hash: string(hash)}
}
