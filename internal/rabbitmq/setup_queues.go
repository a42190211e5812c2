package rabbitmq

// RoutingKeyLead routes freshly captured inscriptions to the
// notification-sender worker.
const RoutingKeyLead = "lead.created"

// QueueLeads is the queue the notification-sender consumes from.
const QueueLeads = "landing.leads"

type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: QueueLeads, RoutingKey: RoutingKeyLead},
	}
}
