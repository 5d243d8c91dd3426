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

package artifact

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/artifact/internal/storage"
	"github.com/BIRU-sketch/Skill-Sphere/internal/artifact/internal/web"
	"github.com/gotomicro/ego/core/econf"
)

// InitModule 上传凭证和服务端直传都从配置里读密钥
func InitModule() *Module {
	type cosConfig struct {
		SecretID  string `yaml:"secretID"`
		SecretKey string `yaml:"secretKey"`
		AppID     string `yaml:"appID"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
	}
	type storageConfig struct {
		Endpoint   string `yaml:"endpoint"`
		PublicBase string `yaml:"publicBase"`
		AuthToken  string `yaml:"authToken"`
	}
	var cos cosConfig
	if err := econf.UnmarshalKey("cos", &cos); err != nil {
		panic(err)
	}
	var sc storageConfig
	if err := econf.UnmarshalKey("artifactStorage", &sc); err != nil {
		panic(err)
	}
	return &Module{
		Hdl:     web.NewHandler(cos.SecretID, cos.SecretKey, cos.AppID, cos.Bucket, cos.Region),
		Storage: storage.NewHTTPStorage(sc.Endpoint, sc.PublicBase, sc.AuthToken),
	}
}
