package messaging

type ChangeTopic string

const (
	ProductsUpserted ChangeTopic = "product_upserted"
	ProductsDeleted  ChangeTopic = "product_deleted"
	TrackingTopic    ChangeTopic = "tracking"
)
