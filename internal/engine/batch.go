package engine

import (
	"context"
	"sync"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

// BatchResult pairs one file with its classification outcome.
type BatchResult struct {
	Result *model.Result
	Path   string
	Err    error
}

// ClassifyBatch classifies files concurrently in bulk mode: questions
// are disabled, so the preference store is never written and workers
// share no mutable state. Results arrive in input order. A canceled
// context stops scheduling new files; already-started files finish.
func (e *Engine) ClassifyBatch(ctx context.Context, paths []string, workers int) []BatchResult {
	if workers <= 0 {
		workers = 4
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	bulk := e.config
	bulk.MaxQuestions = 0
	bulkEngine := NewWithConfig(e.catalog, e.storage, e.source, neverAsk{}, bulk)

	results := make([]BatchResult, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := bulkEngine.ClassifyFile(ctx, paths[i])
				results[i] = BatchResult{Path: paths[i], Result: res, Err: err}
			}
		}()
	}

	for i := range paths {
		if ctx.Err() != nil {
			results[i] = BatchResult{Path: paths[i], Err: ctx.Err()}
			continue
		}
		select {
		case <-ctx.Done():
			results[i] = BatchResult{Path: paths[i], Err: ctx.Err()}
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

// neverAsk is the bulk-mode answerer. With MaxQuestions at zero the
// loop never reaches AwaitingAnswer, so aborting is just a safety net.
type neverAsk struct{}

func (neverAsk) Ask(_ context.Context, _ model.Question) (model.Answer, error) {
	return model.Answer{}, ErrAborted
}
