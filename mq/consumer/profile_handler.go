package consumer

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/events"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// todo  未配置死信队列

// MessageHandler 定义了处理 Kafka 消息的接口
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// AuthorProfileHandler 消费用户服务的作者资料变更事件，
// 把展示名同步到本服务的 author_profiles 冗余表。
type AuthorProfileHandler struct {
	logger      *core.ZapLogger
	profileRepo mysql.AuthorProfileRepository
}

func NewAuthorProfileHandler(logger *core.ZapLogger, profileRepo mysql.AuthorProfileRepository) *AuthorProfileHandler {
	return &AuthorProfileHandler{
		logger:      logger,
		profileRepo: profileRepo,
	}
}

func (h *AuthorProfileHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("AuthorProfileHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event events.AuthorProfileUpdatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("AuthorProfileHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	if event.UserID == "" {
		h.logger.Warn("AuthorProfileHandler: 事件缺少 user_id，丢弃", zap.String("event_id", event.EventID))
		return nil
	}

	h.logger.Info("AuthorProfileHandler: 成功解析作者资料变更消息",
		zap.String("event_id", event.EventID),
		zap.String("user_id", event.UserID),
		zap.String("display_name", event.DisplayName))

	profile := &entities.AuthorProfile{
		UserID: event.UserID,
		DisplayName: sql.NullString{
			String: event.DisplayName,
			Valid:  event.DisplayName != "",
		},
	}

	upsertCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.profileRepo.UpsertProfile(upsertCtx, profile); err != nil {
		h.logger.Error("AuthorProfileHandler: 同步作者资料失败",
			zap.Error(err),
			zap.String("user_id", event.UserID))
		return fmt.Errorf("AuthorProfileHandler: 调用 UpsertProfile 失败: %w", err)
	}

	h.logger.Info("AuthorProfileHandler: 作者资料已同步", zap.String("user_id", event.UserID))
	return nil
}
