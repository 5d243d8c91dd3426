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

	"github.com/BIRU-sketch/Skill-Sphere/internal/hackathon/internal/domain"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrStatusConflict 状态被并发修改
	ErrStatusConflict = errors.New("状态已经变了")
)

//go:generate mockgen -source=./hackathon.go -package=daomocks -destination=mocks/hackathon.mock.go HackathonDAO
type HackathonDAO interface {
	Insert(ctx context.Context, h Hackathon) (int64, error)
	FindById(ctx context.Context, id int64) (Hackathon, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]Hackathon, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	ListByOrganizer(ctx context.Context, organizerId int64) ([]Hackathon, error)
	// UpdateStatus CAS，状态对不上返回 ErrStatusConflict
	UpdateStatus(ctx context.Context, id int64, from, to string) error
	AppendAnnouncement(ctx context.Context, id int64, a domain.Announcement) error
	UpdateJudges(ctx context.Context, id int64, judges []int64) error
	// CompleteExpired 把已经结束的 published 全部置为 completed，给定时任务用
	CompleteExpired(ctx context.Context, now int64) (int64, error)
}

type GORMHackathonDAO struct {
	db *egorm.Component
}

func NewGORMHackathonDAO(db *egorm.Component) HackathonDAO {
	return &GORMHackathonDAO{
		db: db,
	}
}

func (d *GORMHackathonDAO) Insert(ctx context.Context, h Hackathon) (int64, error) {
	now := time.Now().UnixMilli()
	h.Ctime = now
	h.Utime = now
	err := d.db.WithContext(ctx).Create(&h).Error
	return h.Id, err
}

func (d *GORMHackathonDAO) FindById(ctx context.Context, id int64) (Hackathon, error) {
	var h Hackathon
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&h).Error
	return h, err
}

func (d *GORMHackathonDAO) ListByStatus(ctx context.Context, status string, offset, limit int) ([]Hackathon, error) {
	var hs []Hackathon
	err := d.db.WithContext(ctx).
		Where("status = ?", status).
		Order("ctime desc").
		Offset(offset).Limit(limit).
		Find(&hs).Error
	return hs, err
}

func (d *GORMHackathonDAO) CountByStatus(ctx context.Context, status string) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).
		Model(&Hackathon{}).
		Where("status = ?", status).
		Count(&cnt).Error
	return cnt, err
}

func (d *GORMHackathonDAO) ListByOrganizer(ctx context.Context, organizerId int64) ([]Hackathon, error) {
	var hs []Hackathon
	err := d.db.WithContext(ctx).
		Where("organizer_id = ?", organizerId).
		Order("ctime desc").
		Find(&hs).Error
	return hs, err
}

func (d *GORMHackathonDAO) UpdateStatus(ctx context.Context, id int64, from, to string) error {
	res := d.db.WithContext(ctx).
		Model(&Hackathon{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (d *GORMHackathonDAO) AppendAnnouncement(ctx context.Context, id int64, a domain.Announcement) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var h Hackathon
		// 公告列表是 JSON 列，追加要锁整行
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&h).Error
		if err != nil {
			return err
		}
		anns := append(h.Announcements.Val, a)
		return tx.Model(&Hackathon{}).Where("id = ?", id).Updates(map[string]any{
			"announcements": sqlx.JsonColumn[[]domain.Announcement]{
				Val: anns, Valid: true,
			},
			"utime": time.Now().UnixMilli(),
		}).Error
	})
}

func (d *GORMHackathonDAO) UpdateJudges(ctx context.Context, id int64, judges []int64) error {
	res := d.db.WithContext(ctx).
		Model(&Hackathon{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"judges": sqlx.JsonColumn[[]int64]{
				Val: judges, Valid: true,
			},
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (d *GORMHackathonDAO) CompleteExpired(ctx context.Context, now int64) (int64, error) {
	res := d.db.WithContext(ctx).
		Model(&Hackathon{}).
		Where("status = ? AND end_at <= ?", "published", now).
		Updates(map[string]any{
			"status": "completed",
			"utime":  now,
		})
	return res.RowsAffected, res.Error
}

type Hackathon struct {
	Id            int64  `gorm:"primaryKey,autoIncrement"`
	Title         string `gorm:"type:varchar(512)"`
	Description   string `gorm:"type:text"`
	Rules         string `gorm:"type:text"`
	Category      string `gorm:"type:varchar(32)"`
	OrganizerId   int64  `gorm:"index:idx_organizer_id"`
	OrganizerName string `gorm:"type:varchar(256)"`
	Judges        sqlx.JsonColumn[[]int64] `gorm:"type:text"`
	Criteria      sqlx.JsonColumn[[]domain.Criterion] `gorm:"type:text"`
	Announcements sqlx.JsonColumn[[]domain.Announcement] `gorm:"type:text"`
	StartAt       int64
	// EndAt 定时任务按它判断结束
	EndAt                int64  `gorm:"index:idx_end_at"`
	RegistrationDeadline int64
	Status               string `gorm:"type:varchar(16);index:idx_status"`
	Ctime                int64
	Utime                int64
}

func (Hackathon) TableName() string {
	return "hackathons"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Hackathon{}, &Team{})
}
