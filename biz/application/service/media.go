package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"classroom-hub/biz/adaptor"
	"classroom-hub/biz/application/dto/classroom/hub"
	"classroom-hub/biz/infrastructure/config"
	"classroom-hub/biz/infrastructure/consts"
	"classroom-hub/biz/infrastructure/util/log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/google/wire"
)

type IMediaService interface {
	ApplyUploadUrl(ctx context.Context, req *hub.ApplyUploadUrlReq) (*hub.ApplyUploadUrlResp, error)
}

type MediaService struct {
	Config *config.Config
}

var MediaServiceSet = wire.NewSet(
	wire.Struct(new(MediaService), "*"),
	wire.Bind(new(IMediaService), new(*MediaService)),
)

// ApplyUploadUrl 签发直传地址，文件字节不经过本服务
func (s *MediaService) ApplyUploadUrl(ctx context.Context, req *hub.ApplyUploadUrlReq) (*hub.ApplyUploadUrlResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	sess, err := session.NewSession(&aws.Config{
		Endpoint:         aws.String(s.Config.Media.Endpoint),
		Region:           aws.String(s.Config.Media.Region),
		Credentials:      credentials.NewStaticCredentials(s.Config.Media.AccessKey, s.Config.Media.SecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		log.CtxError(ctx, "初始化媒体存储会话失败: %v", err)
		return nil, consts.ErrApplyUploadUrl
	}

	key := fmt.Sprintf("%s/%s/%s%s", s.Config.State, userMeta.GetUserId(), uuid.New().String(), filepath.Ext(req.FileName))
	request, _ := s3.New(sess).PutObjectRequest(&s3.PutObjectInput{
		Bucket: aws.String(s.Config.Media.Bucket),
		Key:    aws.String(key),
	})
	uploadUrl, err := request.Presign(15 * time.Minute)
	if err != nil {
		log.CtxError(ctx, "签发上传地址失败: %v", err)
		return nil, consts.ErrApplyUploadUrl
	}

	return &hub.ApplyUploadUrlResp{
		UploadUrl: uploadUrl,
		FileUrl:   fmt.Sprintf("%s/%s", s.Config.Media.PublicURL, key),
		FileName:  req.FileName,
	}, nil
}
