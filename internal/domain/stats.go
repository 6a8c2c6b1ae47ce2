package domain

// BookingStats summarizes the booking collection for the admin dashboard.
// GrossValue sums total_price over every booking regardless of payment
// state; paid-only revenue lives in RevenueStats.
type BookingStats struct {
	Total      int64   `db:"total" json:"total"`
	Confirmed  int64   `db:"confirmed" json:"confirmed"`
	Pending    int64   `db:"pending" json:"pending"`
	GrossValue float64 `db:"gross_value" json:"gross_value"`
}

// RevenueStats covers paid bookings only. Growth compares this month's
// paid revenue against the previous month, as a percentage.
type RevenueStats struct {
	Total     float64 `json:"total"`
	ThisMonth float64 `json:"this_month"`
	Growth    float64 `json:"growth"`
}

type UserStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type AdminStats struct {
	Bookings BookingStats `json:"bookings"`
	Users    UserStats    `json:"users"`
	Revenue  RevenueStats `json:"revenue"`
}
