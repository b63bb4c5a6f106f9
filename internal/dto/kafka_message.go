package dto

const (
	EventSellerCreated = "seller_created"
	EventSellerUpdated = "seller_updated"
	EventSellerDeleted = "seller_deleted"
	EventOrderCreated  = "order_created"
)

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type DeletedResource struct {
	ID string `json:"id"`
}
