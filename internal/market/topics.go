package market

const (
	TopicOrderPlaced        = "order.placed"
	TopicOrderStatusChanged = "order.status.changed"
	TopicMessageSent        = "message.sent"
)

// Partition key = order id (chat: receiver id), so events of one order
// keep their relative order.
func PartitionKey(id string) []byte { return []byte(id) }
