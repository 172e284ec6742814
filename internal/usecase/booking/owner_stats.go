package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/ArielVinis/france-barbershop/internal/domain/booking"
	"github.com/ArielVinis/france-barbershop/internal/dto"
	"github.com/ArielVinis/france-barbershop/internal/models"
)

type StatsPeriod string

const (
	PeriodDay   StatsPeriod = "day"
	PeriodWeek  StatsPeriod = "week"
	PeriodMonth StatsPeriod = "month"
)

type OwnerStats struct {
	repo domain.Repository
}

func NewOwnerStats(repo domain.Repository) *OwnerStats {
	return &OwnerStats{repo: repo}
}

// Execute monta o resumo do dashboard do dono: faturamento sobre
// agendamentos pagos, total de agendamentos e top 5 serviços no
// período. As duas leituras são independentes e saem em paralelo.
func (uc *OwnerStats) Execute(
	ctx context.Context,
	barbershopID uint,
	period StatsPeriod,
	date time.Time,
) (*dto.OwnerStatsDTO, error) {

	start, end := periodRange(period, date)

	var (
		bookings    []models.Booking
		barberCount int64
		errBookings error
		errBarbers  error
	)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		bookings, errBookings = uc.repo.ListShopBookings(ctx, barbershopID, start, end)
	}()

	go func() {
		defer wg.Done()
		barberCount, errBarbers = uc.repo.CountActiveBarbers(ctx, barbershopID)
	}()

	wg.Wait()

	if errBookings != nil {
		return nil, errBookings
	}
	if errBarbers != nil {
		return nil, errBarbers
	}

	var revenue float64
	countByService := map[uint]*dto.TopServiceDTO{}

	for _, bk := range bookings {
		if bk.PaymentStatus == string(domain.PaymentPaid) {
			revenue += bk.Service.Price
		}

		top, ok := countByService[bk.ServiceID]
		if !ok {
			top = &dto.TopServiceDTO{
				ServiceID:   bk.ServiceID,
				ServiceName: bk.Service.Name,
			}
			countByService[bk.ServiceID] = top
		}
		top.Count++
	}

	topServices := make([]dto.TopServiceDTO, 0, len(countByService))
	for _, top := range countByService {
		topServices = append(topServices, *top)
	}
	sort.Slice(topServices, func(i, j int) bool {
		if topServices[i].Count != topServices[j].Count {
			return topServices[i].Count > topServices[j].Count
		}
		return topServices[i].ServiceID < topServices[j].ServiceID
	})
	if len(topServices) > 5 {
		topServices = topServices[:5]
	}

	return &dto.OwnerStatsDTO{
		Revenue:            revenue,
		BookingsCount:      len(bookings),
		ActiveBarbersCount: barberCount,
		TopServices:        topServices,
	}, nil
}

func periodRange(period StatsPeriod, date time.Time) (time.Time, time.Time) {
	dayStart := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)

	switch period {
	case PeriodWeek:
		// semana começa no domingo (weekday 0)
		start := dayStart.AddDate(0, 0, -int(dayStart.Weekday()))
		return start, start.AddDate(0, 0, 7)

	case PeriodMonth:
		start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		return start, start.AddDate(0, 1, 0)

	default:
		return dayStart, dayStart.AddDate(0, 0, 1)
	}
}
