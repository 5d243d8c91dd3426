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
	"time"

	"github.com/BIRU-sketch/Skill-Sphere/internal/challenge/internal/domain"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./challenge.go -package=daomocks -destination=mocks/challenge.mock.go ChallengeDAO
type ChallengeDAO interface {
	Insert(ctx context.Context, c Challenge) (int64, error)
	Update(ctx context.Context, c Challenge) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	FindById(ctx context.Context, id int64) (Challenge, error)
	ListActive(ctx context.Context, offset, limit int) ([]Challenge, error)
	CountActive(ctx context.Context) (int64, error)
	ListByMentor(ctx context.Context, mentorId int64) ([]Challenge, error)
}

type GORMChallengeDAO struct {
	db *egorm.Component
}

func NewGORMChallengeDAO(db *egorm.Component) ChallengeDAO {
	return &GORMChallengeDAO{
		db: db,
	}
}

func (d *GORMChallengeDAO) Insert(ctx context.Context, c Challenge) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := d.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (d *GORMChallengeDAO) Update(ctx context.Context, c Challenge) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).
		Model(&Challenge{}).Where("id = ?", c.Id).Updates(map[string]any{
		"title":             c.Title,
		"description":       c.Description,
		"category":          c.Category,
		"difficulty":        c.Difficulty,
		"requirements":      c.Requirements,
		"learning_outcomes": c.LearningOutcomes,
		"resources":         c.Resources,
		"max_participants":  c.MaxParticipants,
		"deadline":          c.Deadline,
		"utime":             now,
	}).Error
}

func (d *GORMChallengeDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).
		Model(&Challenge{}).Where("id = ?", id).Updates(map[string]any{
		"status": status,
		"utime":  now,
	}).Error
}

func (d *GORMChallengeDAO) FindById(ctx context.Context, id int64) (Challenge, error) {
	var c Challenge
	err := d.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (d *GORMChallengeDAO) ListActive(ctx context.Context, offset, limit int) ([]Challenge, error) {
	var cs []Challenge
	err := d.db.WithContext(ctx).
		Where("status = ?", domain.StatusActive.String()).
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&cs).Error
	return cs, err
}

func (d *GORMChallengeDAO) CountActive(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Challenge{}).
		Where("status = ?", domain.StatusActive.String()).
		Select("COUNT(id)").Count(&res).Error
	return res, err
}

func (d *GORMChallengeDAO) ListByMentor(ctx context.Context, mentorId int64) ([]Challenge, error) {
	var cs []Challenge
	err := d.db.WithContext(ctx).
		Where("mentor_id = ?", mentorId).
		Order("id desc").
		Find(&cs).Error
	return cs, err
}

type Challenge struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Title       string `gorm:"type:varchar(512);not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"type:varchar(128);index:idx_category"`
	Difficulty  string `gorm:"type:varchar(32);not null"`
	// 参加要求
	Requirements sqlx.JsonColumn[[]string] `gorm:"type:text"`
	// 学习产出
	LearningOutcomes sqlx.JsonColumn[[]string]          `gorm:"type:text"`
	Resources        sqlx.JsonColumn[[]domain.Resource] `gorm:"type:text"`
	MaxParticipants  int
	// 截止时间，毫秒时间戳，0 表示不限
	Deadline   int64
	Status     string `gorm:"type:varchar(32);not null;index:idx_status"`
	MentorId   int64  `gorm:"index:idx_mentor_id"`
	MentorName string `gorm:"type:varchar(256)"`
	Ctime      int64
	Utime      int64
}

func (Challenge) TableName() string {
	return "challenges"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Challenge{})
}
