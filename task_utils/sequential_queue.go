package task_utils

import (
	"context"
	"time"
)

type Task func(ctx context.Context) error

// SequentialQueue runs tasks strictly one after another with a fixed pause
// after every successful task. The first failure aborts the remainder.
type SequentialQueue struct {
	delay time.Duration
}

func NewSequentialQueue(delay time.Duration) *SequentialQueue {
	return &SequentialQueue{delay: delay}
}

func (q *SequentialQueue) Run(ctx context.Context, tasks []Task) error {
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := task(ctx); err != nil {
			return err
		}
		if err := q.pause(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (q *SequentialQueue) pause(ctx context.Context) error {
	if q.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(q.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
