package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// AuditEvent описывает одно изменение данных через API
type AuditEvent struct {
	Entity    string    `json:"entity"`
	EntityID  uint      `json:"entity_id"`
	Action    string    `json:"action"`
	ActorID   *uint     `json:"actor_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Действия, публикуемые в журнал аудита
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditPublisher публикует события изменения данных в Kafka.
// Публикация необязательна: при недоступности брокера событие
// логируется и запрос продолжает выполняться.
type AuditPublisher struct {
	writer *kafka.Writer
}

// NewAuditPublisher создает publisher, если указаны брокеры
// При пустом списке брокеров возвращает nil (аудит отключен)
func NewAuditPublisher(kafkaBrokers, topic string) *AuditPublisher {
	if kafkaBrokers == "" {
		return nil
	}

	brokers := strings.Split(kafkaBrokers, ",")
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
		Async:    true, // Асинхронная отправка, чтобы не блокировать запросы
	}
	log.Printf("✅ Kafka producer аудита подключен к %s (топик: %s)", kafkaBrokers, topic)

	return &AuditPublisher{writer: writer}
}

// Publish отправляет событие аудита
// Безопасно вызывать на nil-получателе
func (p *AuditPublisher) Publish(entity string, entityID uint, action string, actorID *uint) {
	if p == nil || p.writer == nil {
		return
	}

	event := AuditEvent{
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("⚠️ Ошибка сериализации события аудита: %v", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entity),
		Value: data,
	}
	if err := p.writer.WriteMessages(context.Background(), msg); err != nil {
		log.Printf("⚠️ Ошибка публикации события аудита: %v", err)
	}
}

// Close закрывает Kafka writer
func (p *AuditPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
