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

	"github.com/BIRU-sketch/Skill-Sphere/internal/portfolio/internal/domain"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./portfolio.go -package=daomocks -destination=mocks/portfolio.mock.go PortfolioDAO
type PortfolioDAO interface {
	FindByStudent(ctx context.Context, studentId int64) (Portfolio, error)
	// FoldIn 读改写一条作品集记录。tx 不为 nil 时加入外部事务，
	// 证书签发用它保证证书和作品集同生共死
	FoldIn(ctx context.Context, tx *gorm.DB, f domain.Fold) error
	UpdateVisibility(ctx context.Context, studentId int64, public bool) error
}

type GORMPortfolioDAO struct {
	db *egorm.Component
}

func NewGORMPortfolioDAO(db *egorm.Component) PortfolioDAO {
	return &GORMPortfolioDAO{
		db: db,
	}
}

func (d *GORMPortfolioDAO) FindByStudent(ctx context.Context, studentId int64) (Portfolio, error) {
	var p Portfolio
	err := d.db.WithContext(ctx).First(&p, "student_id = ?", studentId).Error
	return p, err
}

func (d *GORMPortfolioDAO) FoldIn(ctx context.Context, tx *gorm.DB, f domain.Fold) error {
	if tx != nil {
		return d.foldIn(ctx, tx, f)
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return d.foldIn(ctx, tx, f)
	})
}

func (d *GORMPortfolioDAO) foldIn(ctx context.Context, tx *gorm.DB, f domain.Fold) error {
	now := time.Now().UnixMilli()
	var p Portfolio
	// 行锁，挡住并发折算把彼此的更新冲掉
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, "student_id = ?", f.StudentID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// 第一张证书，懒创建
		np := domain.NewPortfolio(f)
		return tx.WithContext(ctx).Create(&Portfolio{
			StudentId:    np.StudentID,
			StudentName:  np.StudentName,
			StudentEmail: np.StudentEmail,
			Bio:          np.Bio,
			Skills: sqlx.JsonColumn[[]string]{
				Val: np.Skills, Valid: true,
			},
			CompletedChallenges: sqlx.JsonColumn[[]domain.CompletedChallenge]{
				Val: np.CompletedChallenges, Valid: true,
			},
			CertificateCount: np.CertificateCount,
			TotalPoints:      np.TotalPoints,
			Public:           np.Public,
			Ctime:            now,
			Utime:            now,
		}).Error
	case err != nil:
		return err
	}
	dp := domain.Portfolio{
		Skills:              p.Skills.Val,
		CompletedChallenges: p.CompletedChallenges.Val,
		CertificateCount:    p.CertificateCount,
		TotalPoints:         p.TotalPoints,
	}
	dp.Apply(f)
	return tx.WithContext(ctx).
		Model(&Portfolio{}).Where("id = ?", p.Id).Updates(map[string]any{
		"skills": sqlx.JsonColumn[[]string]{
			Val: dp.Skills, Valid: true,
		},
		"completed_challenges": sqlx.JsonColumn[[]domain.CompletedChallenge]{
			Val: dp.CompletedChallenges, Valid: true,
		},
		"certificate_count": dp.CertificateCount,
		"total_points":      dp.TotalPoints,
		"utime":             now,
	}).Error
}

func (d *GORMPortfolioDAO) UpdateVisibility(ctx context.Context, studentId int64, public bool) error {
	res := d.db.WithContext(ctx).
		Model(&Portfolio{}).
		Where("student_id = ?", studentId).
		Updates(map[string]any{
			"public": public,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

type Portfolio struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	StudentId    int64  `gorm:"uniqueIndex:uk_student_id"`
	StudentName  string `gorm:"type:varchar(256)"`
	StudentEmail string `gorm:"type:varchar(256)"`
	Bio          string `gorm:"type:text"`
	Skills       sqlx.JsonColumn[[]string] `gorm:"type:text"`
	CompletedChallenges sqlx.JsonColumn[[]domain.CompletedChallenge] `gorm:"type:text"`
	CertificateCount    int
	TotalPoints         int
	Public              bool
	Ctime               int64
	Utime               int64
}

func (Portfolio) TableName() string {
	return "portfolios"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Portfolio{})
}
