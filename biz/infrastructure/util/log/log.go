package log

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

func Debug(format string, v ...any) {
	logx.Debugf(format, v...)
}

func Info(format string, v ...any) {
	logx.Infof(format, v...)
}

func Error(format string, v ...any) {
	logx.Errorf(format, v...)
}

func CtxDebug(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Debugf(format, v...)
}

func CtxInfo(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Infof(format, v...)
}

func CtxError(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Errorf(format, v...)
}
