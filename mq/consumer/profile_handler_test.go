package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	sharedConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/events"
)

type fakeProfileRepo struct {
	profiles map[string]*entities.AuthorProfile
}

func (r *fakeProfileRepo) UpsertProfile(_ context.Context, profile *entities.AuthorProfile) error {
	if r.profiles == nil {
		r.profiles = make(map[string]*entities.AuthorProfile)
	}
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*entities.AuthorProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return profile, nil
}

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(sharedConfig.ZapConfig{Level: "error", Encoding: "json"})
	if err != nil {
		t.Fatalf("初始化测试 logger 失败: %v", err)
	}
	return logger
}

func TestAuthorProfileHandlerUpsertsProfile(t *testing.T) {
	repo := &fakeProfileRepo{}
	handler := NewAuthorProfileHandler(newTestLogger(t), repo)

	event := events.AuthorProfileUpdatedEvent{
		EventID:     "evt-1",
		Timestamp:   time.Now(),
		UserID:      "user-1",
		DisplayName: "Ada Lovelace",
	}
	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("序列化事件失败: %v", err)
	}

	if err := handler.Handle(context.Background(), kafka.Message{Value: payload}); err != nil {
		t.Fatalf("Handle 返回错误: %v", err)
	}

	profile, err := repo.GetByUserID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("资料未写入: %v", err)
	}
	if !profile.DisplayName.Valid || profile.DisplayName.String != "Ada Lovelace" {
		t.Errorf("DisplayName = %+v, want Ada Lovelace", profile.DisplayName)
	}
}

func TestAuthorProfileHandlerDropsInvalidMessages(t *testing.T) {
	repo := &fakeProfileRepo{}
	handler := NewAuthorProfileHandler(newTestLogger(t), repo)

	// 无法解析的消息不重试、不报错。
	if err := handler.Handle(context.Background(), kafka.Message{Value: []byte("not-json")}); err != nil {
		t.Errorf("坏消息应被丢弃而不是报错, got %v", err)
	}
	// 缺少 user_id 的消息同样丢弃。
	if err := handler.Handle(context.Background(), kafka.Message{Value: []byte(`{"event_id":"e"}`)}); err != nil {
		t.Errorf("缺 user_id 的消息应被丢弃, got %v", err)
	}
	if len(repo.profiles) != 0 {
		t.Errorf("坏消息不应产生写入, got %d 条", len(repo.profiles))
	}
}
