package batch

import (
	"context"

	"classroom-hub/biz/infrastructure/consts"

	"github.com/samber/lo"
)

// Chunks 将id集合按后端单次成员查询上限切分
func Chunks(ids []string) [][]string {
	if len(ids) == 0 {
		return nil
	}
	return lo.Chunk(lo.Uniq(ids), consts.QueryBatchSize)
}

// FetchAll 按批次执行成员查询并合并结果。每个批次的id互不相交，
// 合并结果天然无重复。任一批次失败则整体失败。
func FetchAll[T any](ctx context.Context, ids []string, fetch func(ctx context.Context, batch []string) ([]T, error)) ([]T, error) {
	var out []T
	for _, chunk := range Chunks(ids) {
		items, err := fetch(ctx, chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// CountAll 按批次统计数量并求和
func CountAll(ctx context.Context, ids []string, count func(ctx context.Context, batch []string) (int64, error)) (int64, error) {
	var total int64
	for _, chunk := range Chunks(ids) {
		n, err := count(ctx, chunk)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
