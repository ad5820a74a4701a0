package storage

import (
	"github.com/matst80/slask-storefront/pkg/types"
)

// Fixtures is the built-in demo catalogue, in featured order.
func Fixtures() []types.Product {
	return []types.Product{
		{Id: 1, Title: "Wireless Noise Cancelling Headphones", Description: "Over-ear headphones with 30 hours of battery", Category: "electronics", Price: 249.99, OriginalPrice: types.Float(299.99), Currency: "USD", Image: "/images/headphones.jpg", IsOnSale: true, Badge: "Sale", Rating: types.Float(4.7), ReviewCount: 1289, Created: 1717200000},
		{Id: 2, Title: "Mechanical Gaming Keyboard", Description: "RGB keyboard with hot-swappable switches", Category: "gaming", Price: 89.99, Currency: "USD", Image: "/images/keyboard.jpg", Badge: "Gaming", Rating: types.Float(4.5), ReviewCount: 842, Created: 1719792000},
		{Id: 3, Title: "USB-C Charging Cable", Description: "Braided two metre cable", Category: "accessories", Price: 12.99, Currency: "USD", Image: "/images/cable.jpg", Rating: types.Float(4.2), ReviewCount: 3120, Created: 1704067200},
		{Id: 4, Title: "4K Ultra HD Monitor", Description: "27 inch IPS panel", Category: "electronics", Price: 329.00, OriginalPrice: types.Float(379.00), Currency: "USD", Image: "/images/monitor.jpg", Rating: types.Float(4.6), ReviewCount: 512, Created: 1722470400},
		{Id: 5, Title: "Gaming Mouse", Description: "Lightweight mouse with 26k DPI sensor", Category: "gaming", Price: 49.99, Currency: "USD", Image: "/images/mouse.jpg", Badge: "Gaming", Rating: types.Float(4.4), ReviewCount: 977, Created: 1711929600},
		{Id: 6, Title: "Laptop Stand", Description: "Aluminium stand with adjustable height", Category: "accessories", Price: 34.50, Currency: "USD", Image: "/images/stand.jpg", Rating: types.Float(4.3), ReviewCount: 221, Created: 1709251200},
		{Id: 7, Title: "Bluetooth Speaker", Description: "Waterproof portable speaker", Category: "electronics", Price: 59.00, Currency: "USD", Image: "/images/speaker.jpg", IsOutOfStock: true, Rating: types.Float(4.1), ReviewCount: 310, Created: 1706745600},
		{Id: 8, Title: "Gaming Headset", Description: "7.1 surround headset with detachable mic", Category: "gaming", Price: 119.00, OriginalPrice: types.Float(139.00), Currency: "USD", Image: "/images/headset.jpg", IsOnSale: true, Badge: "Gaming", ReviewCount: 0, Created: 1725148800},
		{Id: 9, Title: "Phone Case", Description: "Slim protective case", Category: "accessories", Price: 19.99, Currency: "USD", Image: "/images/case.jpg", Rating: types.Float(3.9), ReviewCount: 1504, Created: 1698796800},
		{Id: 10, Title: "Smart Watch", Description: "Fitness tracking with heart rate monitor", Category: "electronics", Price: 199.00, Currency: "USD", Image: "/images/watch.jpg", Badge: "New", Rating: types.Float(4.0), ReviewCount: 96, Created: 1727740800},
		{Id: 11, Title: "Controller Charging Dock", Description: "Dual dock for wireless controllers", Category: "gaming", Price: 24.99, Currency: "USD", Image: "/images/dock.jpg", Badge: "Gaming", Rating: types.Float(4.2), ReviewCount: 188, Created: 1714521600},
		{Id: 12, Title: "Webcam 1080p", Description: "Full HD webcam with privacy shutter", Category: "electronics", Price: 64.99, OriginalPrice: types.Float(79.99), Currency: "USD", Image: "/images/webcam.jpg", Rating: types.Float(4.4), ReviewCount: 403, Created: 1701388800},
	}
}
