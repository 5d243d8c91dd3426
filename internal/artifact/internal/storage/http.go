// Copyright 2024 BIRU-sketch
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// HTTPStorage 服务端直传对象存储，走简单的授权 PUT。
// 证书 PDF 这类服务端生成的产物用它，客户端大文件走 STS 临时凭证
type HTTPStorage struct {
	client     *http.Client
	endpoint   string
	publicBase string
	authToken  string
}

func NewHTTPStorage(endpoint, publicBase, authToken string) *HTTPStorage {
	return &HTTPStorage{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		endpoint:   endpoint,
		publicBase: publicBase,
		authToken:  authToken,
	}
}

func (s *HTTPStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	target, err := url.JoinPath(s.endpoint, key)
	if err != nil {
		return "", errors.Wrap(err, "拼接上传地址失败")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(data))
	if err != nil {
		return "", errors.Wrap(err, "构造上传请求失败")
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", s.authToken)
	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "上传失败")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errors.Errorf("上传失败: %s", resp.Status)
	}
	res, err := url.JoinPath(s.publicBase, key)
	if err != nil {
		return "", errors.Wrap(err, "拼接访问地址失败")
	}
	return res, nil
}
