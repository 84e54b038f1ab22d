package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConfirmationSender delivers the submission-confirmation message.
type ConfirmationSender interface {
	SendConfirmation(to, name string) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  ConfirmationSender
}

func NewWorker(ch *amqp.Channel, mailer ConfirmationSender) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCreatedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[worker] malformed message: %s", err)
				// Poison message, reject without requeue.
				d.Nack(false, false)
				continue
			}

			if err := w.processMessage(payload); err != nil {
				log.Printf("[worker] confirmation for lead %s failed: %s", payload.LeadID, err)
				d.Nack(false, false)
			} else {
				log.Printf("[worker] confirmation sent to %s", payload.Email)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] worker waiting on queue %q", queueName)
	<-forever
}

func (w *Worker) processMessage(payload LeadCreatedPayload) error {
	return w.Mailer.SendConfirmation(payload.Email, payload.FirstName+" "+payload.LastName)
}
