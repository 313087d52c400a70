package services

import (
	"garagepro-backend/repository"

	cron "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StockMonitor periodically scans the catalog for parts running low and
// logs a warning per part. Log-only on purpose: delivery channels (SMS,
// email) are out of scope.
type StockMonitor struct {
	store     repository.Store
	log       *zap.Logger
	threshold int
	schedule  string
	cron      *cron.Cron
}

func NewStockMonitor(store repository.Store, log *zap.Logger, threshold int, schedule string) *StockMonitor {
	return &StockMonitor{
		store:     store,
		log:       log,
		threshold: threshold,
		schedule:  schedule,
		cron:      cron.New(),
	}
}

func (m *StockMonitor) Start() error {
	if _, err := m.cron.AddFunc(m.schedule, m.Scan); err != nil {
		return err
	}
	m.cron.Start()
	m.log.Info("stock monitor started",
		zap.String("schedule", m.schedule),
		zap.Int("threshold", m.threshold))
	return nil
}

func (m *StockMonitor) Stop() {
	m.cron.Stop()
}

func (m *StockMonitor) Scan() {
	parts, err := m.store.Parts().ListBelow(m.threshold)
	if err != nil {
		m.log.Error("stock scan failed", zap.Error(err))
		return
	}
	for _, p := range parts {
		m.log.Warn("part running low",
			zap.String("part_id", p.ID),
			zap.String("name", p.Name),
			zap.Int("quantity", p.Quantity),
			zap.Int("threshold", m.threshold))
	}
	m.log.Info("stock scan finished", zap.Int("low_stock_parts", len(parts)))
}
