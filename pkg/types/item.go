package types

type ProductId uint32

// Product is a read-only catalogue entry. OriginalPrice and Rating are optional.
type Product struct {
	Id            ProductId `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty" gorm:"index"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	Image         string    `json:"image"`
	ImageAlt      string    `json:"imageAlt,omitempty"`
	IsOnSale      bool      `json:"isOnSale,omitempty"`
	IsOutOfStock  bool      `json:"isOutOfStock,omitempty"`
	Badge         string    `json:"badge,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	ReviewCount   int       `json:"reviewCount,omitempty"`
	Created       int64     `json:"created,omitempty"`
	Position      int       `json:"-" gorm:"index"`
}

// GetRating returns the rating, zero when the product has none.
func (p *Product) GetRating() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

func (p *Product) GetOriginalPrice() (float64, bool) {
	if p.OriginalPrice == nil {
		return 0, false
	}
	return *p.OriginalPrice, true
}

// OnSale is true when flagged or when the original price is higher than the price.
// The two sources are independent in the data and are not reconciled.
func (p *Product) OnSale() bool {
	if p.IsOnSale {
		return true
	}
	org, ok := p.GetOriginalPrice()
	return ok && org > p.Price
}

func (p *Product) Discount() float64 {
	org, ok := p.GetOriginalPrice()
	if !ok || org <= p.Price {
		return 0
	}
	return org - p.Price
}

func (p *Product) GetCurrency() string {
	if p.Currency == "" {
		return DefaultCurrency
	}
	return p.Currency
}

const DefaultCurrency = "USD"

func Float(v float64) *float64 {
	return &v
}
