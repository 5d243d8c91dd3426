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

package portfolio

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/web"
)

type Handler = web.Handler
type Portfolio = domain.Portfolio
type CompletedChallenge = domain.CompletedChallenge

// Fold 证书模块签发时把这个喂给 FoldInTx
type Fold = domain.Fold

// PortfolioService 证书模块签发证书时折算作品集用
//
//go:generate mockgen -source=./types.go -package=portfoliomocks -destination=./mocks/portfolio.mock.go PortfolioService
type PortfolioService = service.PortfolioService

var ErrPortfolioNotFound = service.ErrPortfolioNotFound

type Module struct {
	Hdl *Handler
	Svc PortfolioService
}
