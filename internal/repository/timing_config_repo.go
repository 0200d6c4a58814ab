package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
)

// TimingConfigRepository 园所作息配置数据访问接口（单行）
type TimingConfigRepository interface {
	Get(ctx context.Context) (*model.TimingConfig, error)
	Replace(ctx context.Context, cfg *model.TimingConfig) error
}

type timingConfigRepo struct {
	db *gorm.DB
}

// NewTimingConfigRepo 创建 TimingConfigRepository 实例
func NewTimingConfigRepo(db *gorm.DB) TimingConfigRepository {
	return &timingConfigRepo{db: db}
}

func (r *timingConfigRepo) Get(ctx context.Context) (*model.TimingConfig, error) {
	var cfg model.TimingConfig
	err := r.db.WithContext(ctx).
		Where("singleton = ?", true).
		First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Replace 整体替换单行配置
func (r *timingConfigRepo) Replace(ctx context.Context, cfg *model.TimingConfig) error {
	cfg.Singleton = true
	return r.db.WithContext(ctx).Save(cfg).Error
}
