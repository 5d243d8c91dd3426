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

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrAlreadyEnrolled (student_id, challenge_id) 撞了唯一索引
	ErrAlreadyEnrolled = errors.New("已经报名过这个挑战")
	// ErrStatusConflict 状态 CAS 失败，说明别的请求先改了
	ErrStatusConflict = errors.New("状态已经被修改")
)

//go:generate mockgen -source=./enrollment.go -package=daomocks -destination=mocks/enrollment.mock.go EnrollmentDAO
type EnrollmentDAO interface {
	Insert(ctx context.Context, e Enrollment) (int64, error)
	FindById(ctx context.Context, id int64) (Enrollment, error)
	FindByPair(ctx context.Context, studentId, challengeId int64) (Enrollment, error)
	ListByStudent(ctx context.Context, studentId int64) ([]Enrollment, error)
	ListByChallenge(ctx context.Context, challengeId int64) ([]Enrollment, error)
	// UpdateStatus 带上旧状态做 CAS，并发下谁先提交谁生效
	UpdateStatus(ctx context.Context, id int64, from, to string, stamps map[string]any) error
}

type GORMEnrollmentDAO struct {
	db *egorm.Component
}

func NewGORMEnrollmentDAO(db *egorm.Component) EnrollmentDAO {
	return &GORMEnrollmentDAO{
		db: db,
	}
}

func (d *GORMEnrollmentDAO) Insert(ctx context.Context, e Enrollment) (int64, error) {
	now := time.Now().UnixMilli()
	e.EnrolledAt = now
	e.Ctime = now
	e.Utime = now
	err := d.db.WithContext(ctx).Create(&e).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrAlreadyEnrolled
		}
	}
	return e.Id, err
}

func (d *GORMEnrollmentDAO) FindById(ctx context.Context, id int64) (Enrollment, error) {
	var e Enrollment
	err := d.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return e, err
}

func (d *GORMEnrollmentDAO) FindByPair(ctx context.Context, studentId, challengeId int64) (Enrollment, error) {
	var e Enrollment
	err := d.db.WithContext(ctx).
		First(&e, "student_id = ? AND challenge_id = ?", studentId, challengeId).Error
	return e, err
}

func (d *GORMEnrollmentDAO) ListByStudent(ctx context.Context, studentId int64) ([]Enrollment, error) {
	var es []Enrollment
	err := d.db.WithContext(ctx).
		Where("student_id = ?", studentId).
		Order("enrolled_at desc").
		Find(&es).Error
	return es, err
}

func (d *GORMEnrollmentDAO) ListByChallenge(ctx context.Context, challengeId int64) ([]Enrollment, error) {
	var es []Enrollment
	err := d.db.WithContext(ctx).
		Where("challenge_id = ?", challengeId).
		Order("enrolled_at desc").
		Find(&es).Error
	return es, err
}

func (d *GORMEnrollmentDAO) UpdateStatus(ctx context.Context,
	id int64, from, to string, stamps map[string]any) error {
	updates := map[string]any{
		"status": to,
		"utime":  time.Now().UnixMilli(),
	}
	for k, v := range stamps {
		updates[k] = v
	}
	res := d.db.WithContext(ctx).
		Model(&Enrollment{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

type Enrollment struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	StudentId int64 `gorm:"uniqueIndex:uk_student_challenge;index:idx_student_id"`
	// 冗余学生姓名和邮箱，展示和通知都不用回表
	StudentName    string `gorm:"type:varchar(256)"`
	StudentEmail   string `gorm:"type:varchar(256)"`
	ChallengeId    int64  `gorm:"uniqueIndex:uk_student_challenge;index:idx_challenge_id"`
	ChallengeTitle string `gorm:"type:varchar(512)"`
	Status         string `gorm:"type:varchar(32);not null;index:idx_status"`
	Essay          string `gorm:"type:text"`
	Motivation     string `gorm:"type:text"`
	Experience     string `gorm:"type:text"`
	EnrolledAt     int64  `gorm:"index:idx_enrolled_at"`
	// 提交和评审时间，0 表示还没发生
	SubmittedAt int64
	ReviewedAt  int64
	Ctime       int64
	Utime       int64
}

func (Enrollment) TableName() string {
	return "enrollments"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Enrollment{})
}
