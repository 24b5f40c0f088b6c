package service

import (
	"context"

	"github.com/levelup-marketers/client-dashboard-service/internal/model"
	"gorm.io/gorm"
)

// ExtrasService covers the light-weight billing and plugin records, which
// only ever get created and listed per client.
type ExtrasService struct {
	db *gorm.DB
}

func NewExtrasService(db *gorm.DB) *ExtrasService {
	return &ExtrasService{db: db}
}

func (s *ExtrasService) CreateBilling(ctx context.Context, b *model.BillingRecord) error {
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *ExtrasService) ListBillingByClient(ctx context.Context, clientID uint64) ([]model.BillingRecord, error) {
	var items []model.BillingRecord
	err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *ExtrasService) CreatePlugin(ctx context.Context, p *model.PluginRecord) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *ExtrasService) ListPluginsByClient(ctx context.Context, clientID uint64) ([]model.PluginRecord, error) {
	var items []model.PluginRecord
	err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("plugin_name").
		Find(&items).Error
	return items, err
}

func (s *ExtrasService) CountByClient(ctx context.Context, clientID uint64) (projects, plugins, tickets int64, err error) {
	if err = s.db.WithContext(ctx).Model(&model.Project{}).Where("client_id = ?", clientID).Count(&projects).Error; err != nil {
		return
	}
	if err = s.db.WithContext(ctx).Model(&model.PluginRecord{}).Where("client_id = ?", clientID).Count(&plugins).Error; err != nil {
		return
	}
	err = s.db.WithContext(ctx).Model(&model.Ticket{}).Where("client_id = ?", clientID).Count(&tickets).Error
	return
}
