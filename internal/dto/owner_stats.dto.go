package dto

type TopServiceDTO struct {
	ServiceID   uint   `json:"service_id"`
	ServiceName string `json:"service_name"`
	Count       int    `json:"count"`
}

type OwnerStatsDTO struct {
	Revenue            float64         `json:"revenue"`
	BookingsCount      int             `json:"bookings_count"`
	ActiveBarbersCount int64           `json:"active_barbers_count"`
	TopServices        []TopServiceDTO `json:"top_services"`
}
