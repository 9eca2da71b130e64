package rabbitmq

const (
	OrdersExchange        = "kiosk_orders"
	NotificationsExchange = "kiosk_notifications"
	OrderPlacedKey        = "kitchen.order.placed"

	kitchenQueue    = "kitchen_display_queue"
	deadLetterEx    = "kiosk_orders_dlx"
	deadLetterQueue = "kitchen_display_queue_dlq"
)
