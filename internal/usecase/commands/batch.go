package commands

import (
	"context"
	"errors"
	"sync"

	"bagtrack/internal/pkg/config"
	"bagtrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// BatchFailure reports one bag that could not be transitioned, with a
// stable machine-readable reason for the caller.
type BatchFailure struct {
	BagID  uuid.UUID `json:"bag_id"`
	Reason string    `json:"reason"`
}

type BatchResult struct {
	Succeeded []uuid.UUID    `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
}

type BatchCommands interface {
	// UpdateStatuses applies the same transition to every bag in ids.
	// Each bag succeeds or fails on its own; one bad bag never blocks
	// the rest of the batch.
	UpdateStatuses(ctx context.Context, ids []uuid.UUID, status string, note *string) (*BatchResult, error)
}

type batchCommandsImpl struct {
	bagCommands BagCommands
	cfg         config.BatchConfig
}

func NewBatchCommands(bagCommands BagCommands, cfg config.BatchConfig) BatchCommands {
	return &batchCommandsImpl{bagCommands: bagCommands, cfg: cfg}
}

func (c *batchCommandsImpl) UpdateStatuses(ctx context.Context, ids []uuid.UUID, status string, note *string) (*BatchResult, error) {
	if len(ids) == 0 {
		return &BatchResult{Succeeded: []uuid.UUID{}, Failed: []BatchFailure{}}, nil
	}
	if len(ids) > c.cfg.MaxSize {
		return nil, errs.ErrBatchTooLarge
	}

	type outcome struct {
		id  uuid.UUID
		err error
	}
	outcomes := make([]outcome, len(ids))

	sem := make(chan struct{}, c.cfg.MaxConcurrency)
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			defer func() { <-sem }()
			_, err := c.bagCommands.UpdateStatus(ctx, id, status, note)
			outcomes[i] = outcome{id: id, err: err}
		}(i, id)
	}
	wg.Wait()

	result := &BatchResult{Succeeded: []uuid.UUID{}, Failed: []BatchFailure{}}
	for _, o := range outcomes {
		if o.err == nil {
			result.Succeeded = append(result.Succeeded, o.id)
			continue
		}
		result.Failed = append(result.Failed, BatchFailure{BagID: o.id, Reason: failureReason(o.err)})
	}
	return result, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrBagNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, errs.ErrTransitionConflict):
		return "conflict"
	case errors.Is(err, errs.ErrInvalidNote):
		return "invalid_note"
	default:
		return "internal_error"
	}
}
