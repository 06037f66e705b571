package domain

type Product struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Price    int64  `db:"price" json:"price"` // smallest currency unit
	Quantity int64  `db:"quantity" json:"quantity"`
}

type Sale struct {
	ID           int64  `db:"id" json:"id"`
	ProductID    int64  `db:"product_id" json:"product_id"`
	QuantitySold int64  `db:"quantity_sold" json:"quantity_sold"`
	TotalPrice   int64  `db:"total_price" json:"total_price"`
	DateTime     string `db:"date_time" json:"date_time"` // RFC3339 UTC
	PaymentMode  string `db:"payment_mode" json:"payment_mode"`
	CheckoutID   string `db:"checkout_id" json:"checkout_id"`
}

type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
}
