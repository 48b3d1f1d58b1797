package jsonptr

import (
	"context"
	"fmt"
	"testing"
)

func batchDocs(t *testing.T, count int) []*Node {
	t.Helper()
	docs := make([]*Node, count)
	for i := range docs {
		docs[i] = mustParse(t, fmt.Sprintf(`{"id":%d,"items":[]}`, i))
	}
	return docs
}

func TestApplyBatch(t *testing.T) {
	helper := NewTestHelper(t)

	ops := []Operation{
		{Kind: OpSet, Pointer: "/items/0/name", Value: "first"},
		{Kind: OpSet, Pointer: "/meta/owner", Value: "ops"},
		{Kind: OpGet, Pointer: "/id"},
		{Kind: OpSet, Pointer: "/items/5", Value: 1},
		{Kind: OpGet, Pointer: "/items/0/name"},
	}

	check := func(t *testing.T, docs []*Node, results []BatchResult) {
		t.Helper()
		helper.AssertEqual(len(docs), len(results))
		for i, res := range results {
			helper.AssertEqual(i, res.Index)
			helper.AssertNoError(res.Err)
			helper.AssertEqual(len(ops), len(res.Results))

			helper.AssertNoError(res.Results[0].Err)
			helper.AssertNoError(res.Results[1].Err)
			id, _ := res.Results[2].Node.Int64()
			helper.AssertEqual(int64(i), id)
			helper.AssertErrorIs(res.Results[3].Err, ErrIndexOutOfRange)
			helper.AssertJSON(`"first"`, res.Results[4].Node)

			helper.AssertJSON(fmt.Sprintf(`{"id":%d,"items":[{"name":"first"}],"meta":{"owner":"ops"}}`, i), docs[i])
		}
	}

	t.Run("Sequential", func(t *testing.T) {
		m := newQuietMapper(t)
		docs := batchDocs(t, 3)

		results, err := m.ApplyBatch(context.Background(), docs, ops)
		helper.AssertNoError(err)
		check(t, docs, results)
	})

	t.Run("Parallel", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ParallelThreshold = 2
		cfg.MaxConcurrency = 4
		m := newQuietMapper(t, cfg)
		docs := batchDocs(t, 25)

		results, err := m.ApplyBatch(context.Background(), docs, ops)
		helper.AssertNoError(err)
		check(t, docs, results)
		helper.AssertEqual(int64(25*4), m.Stats().TotalOperations)
	})

	t.Run("NodeValuesAreCopiedPerDocument", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ParallelThreshold = 2
		m := newQuietMapper(t, cfg)
		docs := batchDocs(t, 4)
		shared := mustParse(t, `{"flag":true}`)

		_, err := m.ApplyBatch(context.Background(), docs, []Operation{
			{Kind: OpSet, Pointer: "/shared", Value: shared},
		})
		helper.AssertNoError(err)

		helper.AssertTrue(docs[0].Field("shared") != docs[1].Field("shared"))
		helper.AssertTrue(docs[0].Field("shared") != shared)
		helper.AssertJSON(`{"flag":true}`, docs[3].Field("shared"))
	})

	t.Run("UnknownOperation", func(t *testing.T) {
		m := newQuietMapper(t)
		results, err := m.ApplyBatch(context.Background(), batchDocs(t, 1), []Operation{{Kind: OpKind(9), Pointer: "/a"}})
		helper.AssertNoError(err)
		helper.AssertErrorIs(results[0].Results[0].Err, ErrInvalidPath)
		helper.AssertEqual("unknown", OpKind(9).String())
	})

	t.Run("CancelledContext", func(t *testing.T) {
		for _, threshold := range []int{100, 2} {
			cfg := DefaultConfig()
			cfg.ParallelThreshold = threshold
			m := newQuietMapper(t, cfg)
			docs := batchDocs(t, 5)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			results, err := m.ApplyBatch(ctx, docs, ops)
			helper.AssertNoError(err)
			for i, res := range results {
				helper.AssertErrorIs(res.Err, context.Canceled)
				helper.AssertEqual(0, len(res.Results))
				helper.AssertJSON(fmt.Sprintf(`{"id":%d,"items":[]}`, i), docs[i])
			}
		}
	})

	t.Run("PackageLevel", func(t *testing.T) {
		docs := batchDocs(t, 2)
		results, err := ApplyBatch(context.Background(), docs, []Operation{{Kind: OpGet, Pointer: "/id"}})
		helper.AssertNoError(err)
		helper.AssertJSON(`1`, results[1].Results[0].Node)
	})
}
