package bulk

import (
	"context"
	"sync"

	"github.com/ib-77/parsec/pkg/parse"
)

// ToChan feeds a batch of decoded documents into a channel, stopping early
// when ctx is cancelled.
func ToChan(ctx context.Context, inputs []parse.Value) <-chan parse.Value {
	in := make(chan parse.Value)

	go func() {
		defer close(in)

		for _, v := range inputs {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Run validates every document arriving on inputCh against v, spreading the
// work over the given number of workers. Validators are stateless, so
// sharing v between workers needs no locking. Output order is not the input
// order when workers > 1. Cancellation is batch-level only: a validation
// already started always completes.
func Run[T any](ctx context.Context, inputCh <-chan parse.Value,
	v parse.Validator[T], workers int) <-chan parse.Result[T] {

	if workers < 1 {
		workers = 1
	}

	out := make(chan parse.Result[T])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker(ctx, inputCh, out, v, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func worker[T any](ctx context.Context, inputCh <-chan parse.Value,
	outCh chan<- parse.Result[T], v parse.Validator[T], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case outCh <- v(in):
			case <-ctx.Done():
				return
			}
		}
	}
}

// Collect drains the result channel into a slice.
func Collect[T any](ctx context.Context, out <-chan parse.Result[T]) []parse.Result[T] {
	res := make([]parse.Result[T], 0)

	for {
		select {
		case r, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, r)
		case <-ctx.Done():
			return res
		}
	}
}

// FinallyHandlers folds each result of a batch into a final value.
type FinallyHandlers[In, Out any] struct {
	OnSuccess func(r In) Out
	OnFailure func(input parse.Value, reason string) Out
}

// Finally reduces every result on inputCh via the handlers, forwarding the
// folded values downstream.
func Finally[In, Out any](ctx context.Context, inputCh <-chan parse.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-inputCh:
				if !ok {
					return
				}

				select {
				case out <- parse.Finally(r, handlers.OnSuccess, handlers.OnFailure):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
