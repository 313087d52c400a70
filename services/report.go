package services

import (
	"garagepro-backend/models"
	"garagepro-backend/repository"
)

// ReportService feeds the admin dashboard. None of it is
// correctness-critical; figures are recomputed on every call.
type ReportService struct {
	store             repository.Store
	lowStockThreshold int
}

func NewReportService(store repository.Store, lowStockThreshold int) *ReportService {
	return &ReportService{store: store, lowStockThreshold: lowStockThreshold}
}

type DashboardOverview struct {
	TotalCustomers   int64               `json:"total_customers"`
	TotalVehicles    int64               `json:"total_vehicles"`
	TotalBookings    int64               `json:"total_bookings"`
	BookingsByStatus []models.LabelCount `json:"bookings_by_status"`
	Revenue          float64             `json:"revenue"`
	LowStockParts    []models.Part       `json:"low_stock_parts"`
	RecentBookings   []models.Booking    `json:"recent_bookings"`
}

func (s *ReportService) Dashboard(actor ActingUser) (DashboardOverview, error) {
	if !actor.IsAdmin() {
		return DashboardOverview{}, forbiddenErr("admin only")
	}

	var overview DashboardOverview
	var err error

	if overview.TotalCustomers, err = s.store.Users().CountCustomers(); err != nil {
		return DashboardOverview{}, unavailableErr(err)
	}
	if overview.TotalVehicles, err = s.store.Vehicles().Count(); err != nil {
		return DashboardOverview{}, unavailableErr(err)
	}
	if overview.TotalBookings, err = s.store.Bookings().Count(); err != nil {
		return DashboardOverview{}, unavailableErr(err)
	}
	if overview.BookingsByStatus, err = s.store.Bookings().CountPerStatus(); err != nil {
		return DashboardOverview{}, unavailableErr(err)
	}
	if overview.Revenue, err = s.revenue(); err != nil {
		return DashboardOverview{}, unavailableErr(err)
	}
	if overview.LowStockParts, err = s.store.Parts().ListBelow(s.lowStockThreshold); err != nil {
		return DashboardOverview{}, unavailableErr(err)
	}

	recent, err := s.store.Bookings().List()
	if err != nil {
		return DashboardOverview{}, unavailableErr(err)
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}
	overview.RecentBookings = recent

	return overview, nil
}

// revenue sums derived totals over finished bookings.
func (s *ReportService) revenue() (float64, error) {
	done, err := s.store.Bookings().ListByStatus(models.StatusDone)
	if err != nil {
		return 0, err
	}
	var revenue float64
	for _, b := range done {
		material, err := s.store.RepairItems().MaterialCost(b.ID)
		if err != nil {
			return 0, err
		}
		revenue += b.Total(material)
	}
	return revenue, nil
}
