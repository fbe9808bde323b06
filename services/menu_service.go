package services

import (
	"github.com/jesh-analyst/campus-eats-hub/entity"
	"github.com/jesh-analyst/campus-eats-hub/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List(f repository.MenuFilter) ([]entity.MenuItem, error) {
	return s.Repo.List(f)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	return s.Repo.Create(item)
}

func (s *MenuService) Update(item *entity.MenuItem) error {
	return s.Repo.Update(item)
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *MenuService) SetAvailability(id uint, available bool) error {
	return s.Repo.SetAvailability(id, available)
}
