package batch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeIds(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("id-%03d", i))
	}
	return ids
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		wantChunks int
	}{
		{name: "empty", n: 0, wantChunks: 0},
		{name: "single", n: 1, wantChunks: 1},
		{name: "exactly one batch", n: 10, wantChunks: 1},
		{name: "one over", n: 11, wantChunks: 2},
		{name: "several batches", n: 25, wantChunks: 3},
		{name: "exact multiple", n: 30, wantChunks: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Chunks(makeIds(tt.n))
			assert.Len(t, chunks, tt.wantChunks)

			seen := make(map[string]bool)
			for _, chunk := range chunks {
				assert.LessOrEqual(t, len(chunk), 10)
				for _, id := range chunk {
					assert.False(t, seen[id], "id %s出现在多个批次中", id)
					seen[id] = true
				}
			}
			assert.Len(t, seen, tt.n)
		})
	}
}

func TestChunksDeduplicates(t *testing.T) {
	ids := append(makeIds(5), makeIds(5)...)
	chunks := Chunks(ids)
	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0], 5)
}

func TestFetchAll(t *testing.T) {
	ids := makeIds(25)

	var calls int
	got, err := FetchAll(context.Background(), ids, func(_ context.Context, batch []string) ([]string, error) {
		calls++
		return batch, nil
	})
	require.NoError(t, err)

	// ceil(25/10)次查询，并集等于一次无上限查询的结果
	assert.Equal(t, 3, calls)
	assert.ElementsMatch(t, ids, got)
}

func TestFetchAllFailFast(t *testing.T) {
	boom := errors.New("boom")

	var calls int
	_, err := FetchAll(context.Background(), makeIds(30), func(_ context.Context, _ []string) ([]string, error) {
		calls++
		if calls == 2 {
			return nil, boom
		}
		return nil, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestCountAll(t *testing.T) {
	total, err := CountAll(context.Background(), makeIds(12), func(_ context.Context, batch []string) (int64, error) {
		return int64(len(batch)), nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
}
