//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"course_revisions/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) newPublisher(name string) (*RabbitMQ, Config) {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-" + name,
		RoutingKey: "test-routing-key-" + name,
		QueueName:  "test-queue-" + name,
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	return pub, cfg
}

func sampleCourse() (*domain.Course, *domain.CourseSyncResult) {
	course := &domain.Course{
		ID:    42,
		Slug:  "University/Course_(Spring_2015)",
		Start: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2015, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	result := &domain.CourseSyncResult{
		CourseID:     42,
		NewRevisions: 7,
		NewArticles:  2,
		Counts: domain.CourseCounts{
			RevisionCount: 30,
			CharacterSum:  12000,
			ArticleCount:  5,
			UserCount:     3,
		},
	}
	return course, result
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishCourseSynced() {
	pub, cfg := s.newPublisher("synced")
	defer pub.Close()

	course, result := sampleCourse()
	s.Require().NoError(pub.PublishCourseSynced(s.ctx, course, result))

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	var received CourseSyncMessage
	s.Require().NoError(json.Unmarshal(msg.Body, &received))
	s.Equal(ActionCourseSynced, received.Action)
	s.Equal(int64(42), received.CourseID)
	s.Equal("University/Course_(Spring_2015)", received.Slug)
	s.Equal(7, received.NewRevisions)
	s.Equal(result.Counts, received.Counts)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessageProperties() {
	pub, cfg := s.newPublisher("props")
	defer pub.Close()

	course, result := sampleCourse()
	s.Require().NoError(pub.PublishCourseSynced(s.ctx, course, result))
	s.Require().NoError(pub.PublishCourseSynced(s.ctx, course, result))

	first := s.consumeMessage(cfg)
	second := s.consumeMessage(cfg)
	s.Require().NotNil(first)
	s.Require().NotNil(second)

	s.Equal("application/json", first.ContentType)
	s.Equal(uint8(amqp.Persistent), first.DeliveryMode)
	s.Equal(ActionCourseSynced, first.Type)
	s.NotEmpty(first.MessageId)
	s.NotEqual(first.MessageId, second.MessageId)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		msg, ok, err := ch.Get(cfg.QueueName, true)
		s.Require().NoError(err)
		if ok {
			return &msg
		}
		time.Sleep(50 * time.Millisecond)
	}
	s.Fail("Timeout waiting for message")
	return nil
}
