package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/levelup-marketers/client-dashboard-service/internal/errs"
	"github.com/levelup-marketers/client-dashboard-service/internal/model"
	"gorm.io/gorm"
)

type ProjectServicer interface {
	Create(ctx context.Context, p *model.Project) error
	GetByID(ctx context.Context, id uint64) (*model.Project, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]model.Project, int64, error)
	ListByClient(ctx context.Context, clientID uint64) ([]model.Project, error)
	Update(ctx context.Context, id uint64, changes map[string]interface{}) (*model.Project, error)
	Archive(ctx context.Context, id uint64) error
	Delete(ctx context.Context, id uint64) error
}

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

func (s *ProjectService) Create(ctx context.Context, p *model.Project) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *ProjectService) GetByID(ctx context.Context, id uint64) (*model.Project, error) {
	var p model.Project
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]model.Project, int64, error) {
	var items []model.Project
	var total int64
	tx := s.db.WithContext(ctx).Model(&model.Project{})
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
	if err := tx.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListByClient returns every project of a client in creation order, the
// iteration order the overview card preserves.
func (s *ProjectService) ListByClient(ctx context.Context, clientID uint64) ([]model.Project, error) {
	var items []model.Project
	err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("project_id").
		Find(&items).Error
	return items, err
}

func (s *ProjectService) Update(ctx context.Context, id uint64, changes map[string]interface{}) (*model.Project, error) {
	var p model.Project
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProjectNotFound
		}
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&p).Updates(changes).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) Archive(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Project
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrProjectNotFound
			}
			return err
		}
		if err := tx.Table(model.ProjectsArchiveTable).Create(&p).Error; err != nil {
			return fmt.Errorf("archive project %d: %w", id, err)
		}
		return tx.Delete(&model.Project{}, id).Error
	})
}

func (s *ProjectService) Delete(ctx context.Context, id uint64) error {
	res := s.db.WithContext(ctx).Delete(&model.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrProjectNotFound
	}
	return nil
}
