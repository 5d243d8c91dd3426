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

	"github.com/BIRU-sketch/Skill-Sphere/internal/submission/internal/domain"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./submission.go -package=daomocks -destination=mocks/submission.mock.go SubmissionDAO
type SubmissionDAO interface {
	Insert(ctx context.Context, s Submission) (int64, error)
	FindById(ctx context.Context, id int64) (Submission, error)
	// ListByHackathon 聚合分降序，分数相同按创建时间降序
	ListByHackathon(ctx context.Context, hackathonId int64) ([]Submission, error)
	TopByScore(ctx context.Context, hackathonId int64, limit int) ([]Submission, error)
	// AttachFeedback 追加反馈并同步重算聚合分，置为 reviewed，同一个事务里完成
	AttachFeedback(ctx context.Context, id int64, f domain.Feedback) (Submission, error)
}

type GORMSubmissionDAO struct {
	db *egorm.Component
}

func NewGORMSubmissionDAO(db *egorm.Component) SubmissionDAO {
	return &GORMSubmissionDAO{
		db: db,
	}
}

func (d *GORMSubmissionDAO) Insert(ctx context.Context, s Submission) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime = now
	s.Utime = now
	err := d.db.WithContext(ctx).Create(&s).Error
	return s.Id, err
}

func (d *GORMSubmissionDAO) FindById(ctx context.Context, id int64) (Submission, error) {
	var s Submission
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (d *GORMSubmissionDAO) ListByHackathon(ctx context.Context, hackathonId int64) ([]Submission, error) {
	var subs []Submission
	err := d.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonId).
		Order("aggregate_score desc, ctime desc").
		Find(&subs).Error
	return subs, err
}

func (d *GORMSubmissionDAO) TopByScore(ctx context.Context, hackathonId int64, limit int) ([]Submission, error) {
	var subs []Submission
	err := d.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonId).
		Order("aggregate_score desc, ctime desc").
		Limit(limit).
		Find(&subs).Error
	return subs, err
}

func (d *GORMSubmissionDAO) AttachFeedback(ctx context.Context, id int64, f domain.Feedback) (Submission, error) {
	var s Submission
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 反馈是 JSON 列，追加要锁整行
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&s).Error
		if err != nil {
			return err
		}
		fs := append(s.Feedbacks.Val, f)
		score := domain.AggregateScore(fs)
		err = tx.Model(&Submission{}).Where("id = ?", id).Updates(map[string]any{
			"feedbacks": sqlx.JsonColumn[[]domain.Feedback]{
				Val: fs, Valid: true,
			},
			"aggregate_score": score,
			"status":          domain.StatusReviewed.String(),
			"utime":           time.Now().UnixMilli(),
		}).Error
		if err != nil {
			return err
		}
		s.Feedbacks = sqlx.JsonColumn[[]domain.Feedback]{Val: fs, Valid: true}
		s.AggregateScore = score
		s.Status = domain.StatusReviewed.String()
		return nil
	})
	return s, err
}

type Submission struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	HackathonId int64  `gorm:"index:idx_hackathon_score,priority:1"`
	TeamId      int64  `gorm:"index:idx_team_id"`
	TeamName    string `gorm:"type:varchar(256)"`
	SubmittedBy int64
	Title       string                           `gorm:"type:varchar(512)"`
	Description string                           `gorm:"type:text"`
	TechStack   sqlx.JsonColumn[[]string]        `gorm:"type:text"`
	RepoUrl     string                           `gorm:"type:varchar(1024)"`
	DemoUrl     string                           `gorm:"type:varchar(1024)"`
	ArtifactUrl string                           `gorm:"type:varchar(1024)"`
	Feedbacks   sqlx.JsonColumn[[]domain.Feedback] `gorm:"type:text"`
	Status      string                           `gorm:"type:varchar(16)"`
	// AggregateScore 排行榜按它排序
	AggregateScore float64 `gorm:"index:idx_hackathon_score,priority:2"`
	Ctime          int64
	Utime          int64
}

func (Submission) TableName() string {
	return "submissions"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Submission{})
}
