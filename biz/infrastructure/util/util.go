package util

import (
	"encoding/json"

	"classroom-hub/biz/infrastructure/util/log"
)

// JSONF 序列化为json字符串，用于日志打印
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("JSONF序列化失败: %v", err)
		return ""
	}
	return string(data)
}
