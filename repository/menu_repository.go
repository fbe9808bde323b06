package repository

import (
	"strings"

	"github.com/jesh-analyst/campus-eats-hub/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// MenuFilter narrows a catalog listing. Zero values mean "no filter".
type MenuFilter struct {
	Category string
	Type     string
	Search   string
	// OnlyAvailable hides items staff have switched off.
	OnlyAvailable bool
}

func (r *MenuRepository) List(f MenuFilter) ([]entity.MenuItem, error) {
	q := r.DB.Model(&entity.MenuItem{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if f.OnlyAvailable {
		q = q.Where("available = ?", true)
	}

	var items []entity.MenuItem
	err := q.Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

// Delete is a soft delete (gorm.DeletedAt); order history keeps its own
// snapshots and is never affected.
func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) SetAvailability(id uint, available bool) error {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update("available", available)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&count).Error
	return count, err
}
