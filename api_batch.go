package jsonptr

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// OpKind selects what an Operation does
type OpKind uint8

const (
	OpGet OpKind = iota
	OpSet
)

// String returns the operation name
func (k OpKind) String() string {
	switch k {
	case OpGet:
		return "get"
	case OpSet:
		return "set"
	default:
		return "unknown"
	}
}

// Operation is one pointer operation of a batch
type Operation struct {
	Kind    OpKind
	Pointer string
	Value   any // written by OpSet
}

// OpResult is the outcome of one operation on one document
type OpResult struct {
	Node *Node // node read by OpGet
	Err  error // failure of OpSet
}

// BatchResult holds the results for one document, in operation order
type BatchResult struct {
	Index   int
	Results []OpResult
	Err     error // set when the document was not processed
}

// ApplyBatch applies ops in order to every document. Each document is
// handled by a single worker, so its operations never run concurrently.
// Documents run on a worker pool once their count reaches
// ParallelThreshold. Documents not started before ctx is done report
// ctx.Err().
func (m *Mapper) ApplyBatch(ctx context.Context, docs []*Node, ops []Operation) ([]BatchResult, error) {
	if err := m.checkClosed(); err != nil {
		return nil, err
	}

	results := make([]BatchResult, len(docs))
	for i := range results {
		results[i].Index = i
	}

	if len(docs) < m.config.ParallelThreshold {
		for i, doc := range docs {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				continue
			}
			results[i].Results = m.applyOps(doc, ops)
		}
		return results, nil
	}

	size := m.config.MaxConcurrency
	if size > len(docs) {
		size = len(docs)
	}
	pool, err := ants.NewPool(size, ants.WithPreAlloc(true))
	if err != nil {
		return nil, newOperationError("apply_batch", "failed to create worker pool: "+err.Error(), ErrInvalidConfig)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					results[i].Err = newOperationError("apply_batch", fmt.Sprintf("document %d: panic: %v", i, p), ErrPathMalformed)
					m.logError(ctx, "apply_batch", "", results[i].Err)
				}
			}()
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			results[i].Results = m.applyOps(doc, ops)
		})
		if submitErr != nil {
			wg.Done()
			results[i].Err = submitErr
		}
	}
	wg.Wait()

	return results, nil
}

func (m *Mapper) applyOps(doc *Node, ops []Operation) []OpResult {
	out := make([]OpResult, len(ops))
	for i, op := range ops {
		switch op.Kind {
		case OpGet:
			out[i].Node = m.Get(doc, op.Pointer)
		case OpSet:
			value := op.Value
			if n, ok := value.(*Node); ok && n != nil {
				// Documents must not share subtrees
				value = n.Clone()
			}
			out[i].Err = m.SetE(doc, op.Pointer, value)
		default:
			out[i].Err = newOperationError("apply_batch", "unknown operation "+op.Kind.String(), ErrInvalidPath)
		}
	}
	return out
}
