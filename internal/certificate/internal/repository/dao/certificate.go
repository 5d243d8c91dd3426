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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrAlreadyIssued enrollment_id 撞了唯一索引
	ErrAlreadyIssued = errors.New("这条报名已经发过证书")
)

//go:generate mockgen -source=./certificate.go -package=daomocks -destination=mocks/certificate.mock.go CertificateDAO
type CertificateDAO interface {
	// InsertWithFold 证书插入和作品集折算在同一个事务里，
	// 任何一步失败整体回滚。fold 会拿到刚生成的证书 id
	InsertWithFold(ctx context.Context, c Certificate, fold func(tx *gorm.DB, certId int64) error) (int64, error)
	FindById(ctx context.Context, id int64) (Certificate, error)
	FindByCode(ctx context.Context, code string) (Certificate, error)
	ListByStudent(ctx context.Context, studentId int64) ([]Certificate, error)
}

type GORMCertificateDAO struct {
	db *egorm.Component
}

func NewGORMCertificateDAO(db *egorm.Component) CertificateDAO {
	return &GORMCertificateDAO{
		db: db,
	}
}

func (d *GORMCertificateDAO) InsertWithFold(ctx context.Context,
	c Certificate, fold func(tx *gorm.DB, certId int64) error) (int64, error) {
	now := time.Now().UnixMilli()
	c.IssuedAt = now
	c.Ctime = now
	c.Utime = now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		return fold(tx, c.Id)
	})
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrAlreadyIssued
		}
	}
	return c.Id, err
}

func (d *GORMCertificateDAO) FindById(ctx context.Context, id int64) (Certificate, error) {
	var c Certificate
	err := d.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (d *GORMCertificateDAO) FindByCode(ctx context.Context, code string) (Certificate, error) {
	var c Certificate
	err := d.db.WithContext(ctx).First(&c, "code = ?", code).Error
	return c, err
}

func (d *GORMCertificateDAO) ListByStudent(ctx context.Context, studentId int64) ([]Certificate, error) {
	var cs []Certificate
	err := d.db.WithContext(ctx).
		Where("student_id = ?", studentId).
		Order("issued_at desc").
		Find(&cs).Error
	return cs, err
}

type Certificate struct {
	Id   int64  `gorm:"primaryKey,autoIncrement"`
	Code string `gorm:"type:varchar(32);uniqueIndex:uk_code"`
	// 一条报名只发一张
	EnrollmentId   int64  `gorm:"uniqueIndex:uk_enrollment_id"`
	StudentId      int64  `gorm:"index:idx_student_id"`
	StudentName    string `gorm:"type:varchar(256)"`
	ChallengeId    int64  `gorm:"index:idx_challenge_id"`
	ChallengeTitle string `gorm:"type:varchar(512)"`
	MentorId       int64
	MentorName     string                    `gorm:"type:varchar(256)"`
	Skills         sqlx.JsonColumn[[]string] `gorm:"type:text"`
	ArtifactURL    string                    `gorm:"type:varchar(1024)"`
	IssuedAt       int64                     `gorm:"index:idx_issued_at"`
	Ctime          int64
	Utime          int64
}

func (Certificate) TableName() string {
	return "certificates"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Certificate{})
}
