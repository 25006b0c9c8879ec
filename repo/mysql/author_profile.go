package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// AuthorProfileRepository 定义作者资料冗余表的持久化操作接口。
// 数据来源是用户服务的资料变更事件（见 mq/consumer），本服务只做最终一致的镜像。
type AuthorProfileRepository interface {
	// UpsertProfile 按 user_id 插入或更新作者资料。
	UpsertProfile(ctx context.Context, profile *entities.AuthorProfile) error

	// GetByUserID 读取指定用户的资料。
	// - 未找到时返回 commonerrors.ErrRepoNotFound
	GetByUserID(ctx context.Context, userID string) (*entities.AuthorProfile, error)
}

type authorProfileRepository struct {
	db *gorm.DB
}

// NewAuthorProfileRepository 创建 AuthorProfileRepository 实例
func NewAuthorProfileRepository(db *gorm.DB) AuthorProfileRepository {
	return &authorProfileRepository{db: db}
}

// UpsertProfile 按主键冲突时更新展示名。
func (r *authorProfileRepository) UpsertProfile(ctx context.Context, profile *entities.AuthorProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "updated_at"}),
		}).
		Create(profile).Error
}

// GetByUserID 读取指定用户的资料。
func (r *authorProfileRepository) GetByUserID(ctx context.Context, userID string) (*entities.AuthorProfile, error) {
	var profile entities.AuthorProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &profile, nil
}
