package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/models/events"
)

// KafkaProducer Kafka 消息生产者
// - 负责把文章发布/删除事件通知给下游（搜索索引、邮件订阅等）
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(cfg config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: cfg.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})
	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Successfully sent Kafka message", zap.String("topic", topic))
	}
	return err
}

// SendPostPublishedEvent 发送文章发布事件
// - 意图: 文章进入 published 状态后通知下游服务做索引/推送
// - 输入: ctx 上下文, postData 文章核心数据
func (p *KafkaProducer) SendPostPublishedEvent(ctx context.Context, postData events.PostEventData) error {
	event := events.PostPublishedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Post:      postData,
	}
	return p.SendEvent(ctx, p.topics.PostPublished, event)
}

// SendPostDeletedEvent 发送文章删除事件
// - 意图: 通知下游清理索引与缓存
func (p *KafkaProducer) SendPostDeletedEvent(ctx context.Context, postID string, slug string) error {
	event := events.PostDeletedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		PostID:    postID,
		Slug:      slug,
	}
	return p.SendEvent(ctx, p.topics.PostDeleted, event)
}

// Close 关闭底层 writer。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
