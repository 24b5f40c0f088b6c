package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/levelup-marketers/client-dashboard-service/internal/errs"
	"github.com/levelup-marketers/client-dashboard-service/internal/model"
	"gorm.io/gorm"
)

// ClientServicer is the interface handlers and the dashboard depend on.
type ClientServicer interface {
	Create(ctx context.Context, c *model.Client) error
	GetByID(ctx context.Context, id uint64) (*model.Client, error)
	GetByUserID(ctx context.Context, userID uint64) (*model.Client, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]model.Client, int64, error)
	Update(ctx context.Context, id uint64, changes map[string]interface{}) (*model.Client, error)
	Archive(ctx context.Context, id uint64) error
	Delete(ctx context.Context, id uint64) error
}

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

func (s *ClientService) Create(ctx context.Context, c *model.Client) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *ClientService) GetByID(ctx context.Context, id uint64) (*model.Client, error) {
	var c model.Client
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *ClientService) GetByUserID(ctx context.Context, userID uint64) (*model.Client, error) {
	var c model.Client
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *ClientService) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]model.Client, int64, error) {
	var items []model.Client
	var total int64
	tx := s.db.WithContext(ctx).Model(&model.Client{})
	for k, v := range filter {
		tx = tx.Where(k, v)
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if offset > 0 {
		tx = tx.Offset(offset)
	}
	if err := tx.Order("last_name, first_name").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *ClientService) Update(ctx context.Context, id uint64, changes map[string]interface{}) (*model.Client, error) {
	var c model.Client
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrClientNotFound
		}
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&c).Updates(changes).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Archive copies the client row to the archive mirror and removes it from
// the active table in one transaction.
func (s *ClientService) Archive(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Client
		if err := tx.First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrClientNotFound
			}
			return err
		}
		if err := tx.Table(model.ClientsArchiveTable).Create(&c).Error; err != nil {
			return fmt.Errorf("archive client %d: %w", id, err)
		}
		return tx.Delete(&model.Client{}, id).Error
	})
}

func (s *ClientService) Delete(ctx context.Context, id uint64) error {
	res := s.db.WithContext(ctx).Delete(&model.Client{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrClientNotFound
	}
	return nil
}
