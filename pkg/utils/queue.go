package utils

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

// Results are fire-and-forget: the queue is neither durable nor exclusive
func DeclareQueue(name string, ch *amqp.Channel) (amqp.Queue, error) {
	return ch.QueueDeclare(
		name,  // name
		false, // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
}
