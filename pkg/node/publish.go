package node

import (
	"context"
	"time"

	"github.com/lioia/dense-pagerank/pkg/utils"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/xerrors"
	protobuf "google.golang.org/protobuf/proto"
)

// Publisher ships finished reports to an external consumer
type Publisher interface {
	Publish(ctx context.Context, report *Report) error
}

type QueuePublisher struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Queue   amqp.Queue
}

func NewQueuePublisher(url, name string) (*QueuePublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, xerrors.Errorf("could not connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, xerrors.Errorf("failed to open a channel to RabbitMQ: %w", err)
	}
	queue, err := utils.DeclareQueue(name, ch)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, xerrors.Errorf("failed to declare %q queue: %w", name, err)
	}
	return &QueuePublisher{Conn: conn, Channel: ch, Queue: queue}, nil
}

func (p *QueuePublisher) Publish(ctx context.Context, report *Report) error {
	msg, err := report.Message()
	if err != nil {
		return xerrors.Errorf("could not convert report %s: %w", report.Id, err)
	}
	data, err := protobuf.Marshal(msg)
	if err != nil {
		return xerrors.Errorf("could not marshal report %s: %w", report.Id, err)
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return p.Channel.PublishWithContext(ctx,
		"",
		p.Queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/x-protobuf",
			Type:         "google.protobuf.Struct",
			MessageId:    report.Id,
			Timestamp:    time.Now(),
			Body:         data,
		})
}

func (p *QueuePublisher) Close() error {
	if err := p.Channel.Close(); err != nil {
		p.Conn.Close()
		return err
	}
	return p.Conn.Close()
}
