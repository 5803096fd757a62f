package taskqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"podcaster/internal/domain"
)

// Handler processes one task. Its error decides whether the task is retried.
type Handler func(ctx context.Context, task domain.Task) error

type Config struct {
	URL         string
	Exchange    string
	RoutingKey  string
	QueueName   string
	Prefetch    int
	MaxAttempts int
	// A failed task is redelivered after RetryInitialDelay, doubling per attempt up to
	// RetryMaxDelay. A zero RetryInitialDelay redelivers at once.
	RetryInitialDelay time.Duration
	RetryMaxDelay     time.Duration
}

// RabbitMQ is a durable at-least-once task queue. Delayed retries wait in per-delay queues
// whose expired messages dead-letter back into the task queue.
type RabbitMQ struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	publishMu   sync.Mutex
	exchange    string
	routingKey  string
	queueName   string
	prefetch    int
	maxAttempts int
	retryDelay  func(attempt int) time.Duration
	logger      *slog.Logger
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

	prefetch := cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 1
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	retryDelay := func(attempt int) time.Duration {
		return backoff(attempt, cfg.RetryInitialDelay, cfg.RetryMaxDelay)
	}

	for _, delay := range retryDelays(maxAttempts, retryDelay) {
		_, err := ch.QueueDeclare(
			retryQueueName(q.Name, delay),
			true,
			false,
			false,
			false,
			amqp.Table{
				"x-message-ttl":             delay.Milliseconds(),
				"x-dead-letter-exchange":    cfg.Exchange,
				"x-dead-letter-routing-key": cfg.RoutingKey,
			},
		)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("declare retry queue for %s: %w", delay, err)
		}
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
		"max_attempts", maxAttempts,
	)

	return &RabbitMQ{
		conn:        conn,
		channel:     ch,
		exchange:    cfg.Exchange,
		routingKey:  cfg.RoutingKey,
		queueName:   q.Name,
		prefetch:    prefetch,
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
		logger:      logger.With("component", "taskqueue"),
	}, nil
}

func (r *RabbitMQ) Enqueue(ctx context.Context, task domain.Task) error {
	return r.publish(ctx, r.exchange, r.routingKey, task, 0)
}

// scheduleRetry publishes the next attempt of task to the retry queue matching its delay.
func (r *RabbitMQ) scheduleRetry(ctx context.Context, task domain.Task) (time.Duration, error) {
	delay := r.retryDelay(task.Attempt)
	next := task.Retry()
	if delay <= 0 {
		return 0, r.publish(ctx, r.exchange, r.routingKey, next, 0)
	}
	return delay, r.publish(ctx, "", retryQueueName(r.queueName, delay), next, delay)
}

func (r *RabbitMQ) publish(ctx context.Context, exchange, routingKey string, task domain.Task, delay time.Duration) error {
	if task.EnqueuedAt.IsZero() {
		task.EnqueuedAt = time.Now().UTC()
	}
	if task.Attempt == 0 {
		task.Attempt = 1
	}

	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}

	r.publishMu.Lock()
	defer r.publishMu.Unlock()

	err = r.channel.PublishWithContext(
		ctx,
		exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
			Type:         string(task.Kind),
		},
	)
	if err != nil {
		return fmt.Errorf("publish task: %w", err)
	}

	r.logger.Debug("enqueued task",
		"kind", task.Kind,
		"id", task.ID,
		"attempt", task.Attempt,
		"delay", delay,
	)

	return nil
}

// Consume delivers tasks to handler until ctx is done. At most prefetch tasks run at once.
func (r *RabbitMQ) Consume(ctx context.Context, handler Handler) error {
	ch, err := r.conn.Channel()
	if err != nil {
		return fmt.Errorf("open consumer channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Qos(r.prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx,
		r.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	r.logger.Info("consuming tasks", "queue", r.queueName, "prefetch", r.prefetch)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("consumer stopped")
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return errors.New("delivery channel closed")
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				r.handle(ctx, d, handler)
			}()
		}
	}
}

func (r *RabbitMQ) handle(ctx context.Context, d amqp.Delivery, handler Handler) {
	var task domain.Task
	if err := json.Unmarshal(d.Body, &task); err != nil {
		r.logger.Error("dropping undecodable task", "error", err)
		_ = d.Nack(false, false)
		return
	}
	if err := task.Validate(); err != nil {
		r.logger.Error("dropping invalid task", "error", err)
		_ = d.Nack(false, false)
		return
	}

	logger := r.logger.With("kind", task.Kind, "id", task.ID, "attempt", task.Attempt)

	err := handler(ctx, task)

	switch decide(task, err, r.maxAttempts) {
	case outcomeDone:
		_ = d.Ack(false)
	case outcomeDrop:
		logger.Warn("dropping task", "error", err)
		_ = d.Ack(false)
	case outcomeRetry:
		delay, perr := r.scheduleRetry(context.WithoutCancel(ctx), task)
		if perr != nil {
			logger.Error("failed to schedule retry, requeueing delivery", "error", perr)
			_ = d.Nack(false, true)
			return
		}
		logger.Warn("task failed, retry scheduled", "delay", delay, "error", err)
		_ = d.Ack(false)
	case outcomeGiveUp:
		logger.Error("task failed, giving up", "error", err)
		_ = d.Ack(false)
	}
}

type outcome int

const (
	outcomeDone outcome = iota
	outcomeDrop
	outcomeRetry
	outcomeGiveUp
)

func decide(task domain.Task, err error, maxAttempts int) outcome {
	switch {
	case err == nil:
		return outcomeDone
	case !domain.IsRetryable(err):
		return outcomeDrop
	case task.Attempt >= maxAttempts:
		return outcomeGiveUp
	default:
		return outcomeRetry
	}
}

// backoff doubles initial for every attempt after the first, capped at maxDelay.
func backoff(attempt int, initial, maxDelay time.Duration) time.Duration {
	if initial <= 0 {
		return 0
	}
	delay := initial
	for i := 1; i < attempt && delay < maxDelay; i++ {
		delay *= 2
	}
	if maxDelay > 0 && delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

// retryDelays lists the distinct delays used before attempts 2 through maxAttempts.
func retryDelays(maxAttempts int, delay func(attempt int) time.Duration) []time.Duration {
	var delays []time.Duration
	seen := make(map[time.Duration]bool)
	for attempt := 1; attempt < maxAttempts; attempt++ {
		d := delay(attempt)
		if d <= 0 || seen[d] {
			continue
		}
		seen[d] = true
		delays = append(delays, d)
	}
	return delays
}

func retryQueueName(queue string, delay time.Duration) string {
	return fmt.Sprintf("%s.retry.%dms", queue, delay.Milliseconds())
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
