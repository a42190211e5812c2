package rabbitmq

import (
	"github.com/streadway/amqp"

	"github.com/mentesana/landing-api/internal/models"
	brokersetup "github.com/mentesana/landing-api/internal/rabbitmq"
)

// LeadNotifier publishes lead-created events for the
// notification-sender worker.
type LeadNotifier struct {
	ch *amqp.Channel
}

func NewLeadNotifier(ch *amqp.Channel) *LeadNotifier {
	return &LeadNotifier{ch: ch}
}

func (n *LeadNotifier) NotifyLead(lead models.NewLead) error {
	return PublishMessage(n.ch, brokersetup.Exchange, brokersetup.RoutingKeyLead, lead)
}
