package reporting

import (
	"time"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

type Service struct {
	orders     interfaces.OrderRepository
	title      string
	targets    Targets
	thresholds Thresholds
	logger     logger.Logger
}

func NewService(orders interfaces.OrderRepository, title string, targets Targets, thresholds Thresholds, logger logger.Logger) *Service {
	return &Service{
		orders:     orders,
		title:      title,
		targets:    targets,
		thresholds: thresholds,
		logger:     logger,
	}
}

func (s *Service) Dashboard(now time.Time) domain.Dashboard {
	orders := s.orders.List()

	d := domain.Dashboard{
		TotalRevenue: Revenue(orders),
		TotalOrders:  len(orders),
		Items:        AggregateItems(orders),
	}
	for _, o := range orders {
		switch o.Status {
		case domain.StatusCompleted:
			d.CompletedOrders++
		case domain.StatusCancelled:
			d.CancelledOrders++
		}
	}

	d.TodayRevenue = Revenue(FilterByPeriod(orders, domain.PeriodDaily, now))
	d.Daily = Evaluate(d.TodayRevenue, s.targets.Daily, s.thresholds)
	return d
}

func (s *Service) Export(period domain.Period, now time.Time) domain.Report {
	report := ExportReport(s.title, period, s.orders.List(), now, s.targets, s.thresholds)

	s.logger.Info("report_exported", "Sales report rendered", "", map[string]interface{}{
		"period":   string(period),
		"filename": report.Filename,
		"bytes":    len(report.Body),
	})
	return report
}
