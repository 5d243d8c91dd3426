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
)

type Handler = web.Handler

// Storage 服务端上传产物用，证书模块依赖它
//
//go:generate mockgen -source=./types.go -package=artifactmocks -destination=./mocks/artifact.mock.go Storage
type Storage = storage.Storage

type Module struct {
	Hdl     *Handler
	Storage Storage
}
