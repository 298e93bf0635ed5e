package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"course_revisions/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// ActionCourseSynced marks a message emitted after a course pass.
const ActionCourseSynced = "course_synced"

type CourseSyncMessage struct {
	Action       string              `json:"action"`
	CourseID     int64               `json:"course_id"`
	Slug         string              `json:"slug"`
	Counts       domain.CourseCounts `json:"counts"`
	NewRevisions int                 `json:"new_revisions"`
	NewArticles  int                 `json:"new_articles"`
	Errors       int                 `json:"errors"`
	Timestamp    time.Time           `json:"timestamp"`
}

func NewCourseSyncMessage(course *domain.Course, result *domain.CourseSyncResult) CourseSyncMessage {
	return CourseSyncMessage{
		Action:       ActionCourseSynced,
		CourseID:     course.ID,
		Slug:         course.Slug,
		Counts:       result.Counts,
		NewRevisions: result.NewRevisions,
		NewArticles:  result.NewArticles,
		Errors:       result.Errors,
		Timestamp:    time.Now().UTC(),
	}
}

func (r *RabbitMQ) PublishCourseSynced(ctx context.Context, course *domain.Course, result *domain.CourseSyncResult) error {
	msg := NewCourseSyncMessage(course, result)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			MessageId:    uuid.NewString(),
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         ActionCourseSynced,
			Body:         body,
			Timestamp:    msg.Timestamp,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published course sync",
		"course_id", course.ID,
		"new_revisions", result.NewRevisions,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
