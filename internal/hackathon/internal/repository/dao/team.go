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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicateTeamName = errors.New("队名已经被用了")
	ErrAlreadyMember     = errors.New("已经在队伍里了")
)

//go:generate mockgen -source=./team.go -package=daomocks -destination=mocks/team.mock.go TeamDAO
type TeamDAO interface {
	Insert(ctx context.Context, t Team) (int64, error)
	FindById(ctx context.Context, id int64) (Team, error)
	ListByHackathon(ctx context.Context, hackathonId int64) ([]Team, error)
	AddMember(ctx context.Context, id, uid int64) error
}

type GORMTeamDAO struct {
	db *egorm.Component
}

func NewGORMTeamDAO(db *egorm.Component) TeamDAO {
	return &GORMTeamDAO{
		db: db,
	}
}

func (d *GORMTeamDAO) Insert(ctx context.Context, t Team) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := d.db.WithContext(ctx).Create(&t).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			// 同一个黑客松里队名唯一
			return 0, ErrDuplicateTeamName
		}
	}
	return t.Id, err
}

func (d *GORMTeamDAO) FindById(ctx context.Context, id int64) (Team, error) {
	var t Team
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	return t, err
}

func (d *GORMTeamDAO) ListByHackathon(ctx context.Context, hackathonId int64) ([]Team, error) {
	var ts []Team
	err := d.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonId).
		Order("ctime asc").
		Find(&ts).Error
	return ts, err
}

func (d *GORMTeamDAO) AddMember(ctx context.Context, id, uid int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t Team
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&t).Error
		if err != nil {
			return err
		}
		if slice.Contains(t.Members.Val, uid) {
			return ErrAlreadyMember
		}
		return tx.Model(&Team{}).Where("id = ?", id).Updates(map[string]any{
			"members": sqlx.JsonColumn[[]int64]{
				Val: append(t.Members.Val, uid), Valid: true,
			},
			"utime": time.Now().UnixMilli(),
		}).Error
	})
}

type Team struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Name        string `gorm:"type:varchar(256);uniqueIndex:uk_hackathon_name"`
	HackathonId int64  `gorm:"uniqueIndex:uk_hackathon_name;index:idx_hackathon_id"`
	LeaderId    int64
	Members     sqlx.JsonColumn[[]int64] `gorm:"type:text"`
	Ctime       int64
	Utime       int64
}

func (Team) TableName() string {
	return "teams"
}
