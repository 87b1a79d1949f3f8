package cache

import (
	"context"
	"fmt"

	"classroom-hub/biz/infrastructure/config"
	"classroom-hub/biz/infrastructure/redis"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	focusSubmissionCachePrefix = "focus_submission"
	focusSubmissionCacheExpire = 3600 // 1小时
)

// IFocusCacheMapper 通知跳转时暂存目标提交id，读取一次后即清除
type IFocusCacheMapper interface {
	Set(ctx context.Context, userId string, submissionId string) error
	Take(ctx context.Context, userId string) (string, error)
}

type FocusCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewFocusCacheMapper(config *config.Config) *FocusCacheMapper {
	return &FocusCacheMapper{
		rds: redis.GetRedis(config),
	}
}

// Set 记录待打开的提交id
func (m *FocusCacheMapper) Set(ctx context.Context, userId string, submissionId string) error {
	return m.rds.SetexCtx(ctx, m.buildCacheKey(userId), submissionId, focusSubmissionCacheExpire)
}

// Take 取出并清除，保证只消费一次
func (m *FocusCacheMapper) Take(ctx context.Context, userId string) (string, error) {
	cacheKey := m.buildCacheKey(userId)

	submissionId, err := m.rds.GetCtx(ctx, cacheKey)
	if err != nil {
		return "", err
	}
	if submissionId == "" {
		return "", fmt.Errorf("cache miss")
	}

	if _, err := m.rds.DelCtx(ctx, cacheKey); err != nil {
		return "", err
	}
	return submissionId, nil
}

// buildCacheKey 构造缓存key
func (m *FocusCacheMapper) buildCacheKey(userId string) string {
	return fmt.Sprintf("%s:%s", focusSubmissionCachePrefix, userId)
}
