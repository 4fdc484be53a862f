package ports

// DashboardSummary is the aggregate shown on the landing screen.
type DashboardSummary struct {
	TotalRooms       int     `json:"total_rooms"`
	AvailableRooms   int     `json:"available_rooms"`
	OccupiedRooms    int     `json:"occupied_rooms"`
	MaintenanceRooms int     `json:"maintenance_rooms"`
	OccupancyRate    float64 `json:"occupancy_rate"`
	ArrivalsToday    int     `json:"arrivals_today"`
	DeparturesToday  int     `json:"departures_today"`
	UpcomingBookings int     `json:"upcoming_bookings"`
	MonthRevenue     float64 `json:"month_revenue"`
	MonthExpenses    float64 `json:"month_expenses"`
	LowStockItems    int     `json:"low_stock_items"`
}
