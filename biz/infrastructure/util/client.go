package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"classroom-hub/biz/infrastructure/config"
	"classroom-hub/biz/infrastructure/consts"
)

var client *HttpClient

// HttpClient 是一个简单的 HTTP 客户端，封装认证中台的接口
type HttpClient struct {
	Client *http.Client
	Config *config.Config
}

// NewHttpClient 创建一个新的 HttpClient 实例
func NewHttpClient() *HttpClient {
	return &HttpClient{
		Client: &http.Client{},
	}
}

func GetHttpClient() *HttpClient {
	if client == nil {
		client = NewHttpClient()
	}
	return client
}

// SendRequest 发送 HTTP 请求
func (c *HttpClient) SendRequest(ctx context.Context, method, url string, headers map[string]string, body interface{}) (map[string]interface{}, error) {
	// 将 body 序列化为 JSON
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("请求体序列化失败: %w", err)
	}

	// 创建新的请求
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	// 设置请求头
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	// 发送请求
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("发送请求失败: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("关闭请求失败: %v", closeErr)
		}
	}()

	// 读取响应
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	// 检查响应状态码
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d, response body: %s", resp.StatusCode, responseBody)
	}

	// 反序列化响应体
	var responseMap map[string]interface{}
	if err := json.Unmarshal(responseBody, &responseMap); err != nil {
		return nil, fmt.Errorf("反序列化响应失败: %w", err)
	}

	return responseMap, nil
}

func (c *HttpClient) defaultHeader() map[string]string {
	header := make(map[string]string)
	header["Content-Type"] = consts.ContentTypeJson
	header["Charset"] = consts.CharSetUTF8

	// 如果是测试环境则向测试环境的中台发送请求
	if config.GetConfig().State == "test" {
		header["X-Ch-Env"] = "test"
	}
	return header
}

// SignIn 邮箱密码登录，成功时返回中台分配的uid
func (c *HttpClient) SignIn(ctx context.Context, email string, password string) (map[string]interface{}, error) {
	body := make(map[string]interface{})
	body["email"] = email
	body["password"] = password
	body["appId"] = consts.AppId

	return c.SendRequest(ctx, consts.Post, config.GetConfig().Api.PlatformURL+"/auth/sign_in", c.defaultHeader(), body)
}

// SignUp 邮箱密码注册
func (c *HttpClient) SignUp(ctx context.Context, email string, password string, fullName string) (map[string]interface{}, error) {
	body := make(map[string]interface{})
	body["email"] = email
	body["password"] = password
	body["fullName"] = fullName
	body["appId"] = consts.AppId

	return c.SendRequest(ctx, consts.Post, config.GetConfig().Api.PlatformURL+"/auth/sign_up", c.defaultHeader(), body)
}

// DeleteIdentity 删除认证身份，仅服务端可调用
func (c *HttpClient) DeleteIdentity(ctx context.Context, userId string) (map[string]interface{}, error) {
	body := make(map[string]interface{})
	body["userId"] = userId
	body["appId"] = consts.AppId

	return c.SendRequest(ctx, consts.Post, config.GetConfig().Api.PlatformURL+"/auth/delete_identity", c.defaultHeader(), body)
}
