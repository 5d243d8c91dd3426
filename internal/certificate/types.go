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

package certificate

import (
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/domain"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/service"
	"github.com/BIRU-sketch/Skill-Sphere/internal/certificate/internal/web"
)

type Handler = web.Handler
type Certificate = domain.Certificate

//go:generate mockgen -source=./types.go -package=certificatemocks -destination=./mocks/certificate.mock.go CertificateService
type CertificateService = service.CertificateService

var (
	ErrCertificateNotFound = service.ErrCertificateNotFound
	ErrAlreadyIssued       = service.ErrAlreadyIssued
)

type Module struct {
	Hdl *Handler
	Svc CertificateService
}
