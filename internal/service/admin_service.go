package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/repository/repoargs"
	"github.com/fsdevblog/salesboard/pkg/uow"
)

type AdminService struct {
	adminRepo AdminRepository
	secret    string
}

func NewAdminService(u uow.UOW, secret string) (*AdminService, error) {
	adminRepo, adminRepoErr := repoOf[AdminRepository](u, repoargs.AdminRepoName)
	if adminRepoErr != nil {
		return nil, adminRepoErr
	}
	return &AdminService{adminRepo: adminRepo, secret: secret}, nil
}

// Reset удаляет все данные соревнования. Пустой секрет в конфигурации отключает операцию.
func (a *AdminService) Reset(ctx context.Context, secret string) error {
	if a.secret == "" || subtle.ConstantTimeCompare([]byte(a.secret), []byte(secret)) != 1 {
		return domain.ErrForbidden
	}
	if err := a.adminRepo.ResetAll(ctx); err != nil {
		return fmt.Errorf("resetting data: %w", err)
	}
	return nil
}
