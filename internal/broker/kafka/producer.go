// Package kafkabroker publishes panel audit events. Staff actions that
// take data off the panel (exports, downloads) are worth a trail of
// their own; the stream is optional and failures never block a request.
package kafkabroker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// AuditEvent records who did what with which filter.
type AuditEvent struct {
	SteamID string    `json:"steamid"`
	Action  string    `json:"action"`
	Query   string    `json:"query"`
	Time    time.Time `json:"time"`
}

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(cfg ProducerConfig) *Producer {
	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		Balancer: &kafka.RoundRobin{},
	})
	return &Producer{
		writer: w,
		topic:  cfg.Topic,
	}
}

// Publish sends one audit event. Safe on a nil producer so callers can
// skip the nil check when auditing is not configured.
func (p *Producer) Publish(ctx context.Context, event AuditEvent) error {
	if p == nil {
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Value: value,
		Time:  event.Time,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Errorf("Failed to publish audit event: %v", err)
		return err
	}

	log.Debugf("Audit event published: action=%s steamid=%s", event.Action, event.SteamID)
	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	log.Info("Closing Kafka producer...")
	return p.writer.Close()
}
