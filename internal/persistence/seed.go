package persistence

import (
	"context"

	"go.uber.org/zap"

	"github.com/legalsuite/case-service/internal/auth"
	"github.com/legalsuite/case-service/internal/domain"
	"github.com/legalsuite/case-service/internal/repository"
)

// Seeder populates demo data for development environments.
type Seeder struct {
	users    repository.UserRepository
	lawyers  repository.LawyerRepository
	lawsuits repository.LawsuitRepository
	cost     int
	logger   *zap.Logger
}

// NewSeeder creates a seeder instance.
func NewSeeder(users repository.UserRepository, lawyers repository.LawyerRepository, lawsuits repository.LawsuitRepository, bcryptCost int, logger *zap.Logger) *Seeder {
	return &Seeder{users: users, lawyers: lawyers, lawsuits: lawsuits, cost: bcryptCost, logger: logger}
}

// Run inserts demo operators, lawyers and lawsuits. It is a no-op when the
// demo operators already exist.
func (s *Seeder) Run(ctx context.Context) error {
	if _, err := s.users.GetByUsername(ctx, "admin_user"); err == nil {
		s.logger.Info("seed data already present; skipping")
		return nil
	}

	demoUsers := []struct {
		username string
		password string
		role     domain.UserRole
	}{
		{"admin_user", "admin123", domain.UserRoleAdmin},
		{"operator_user", "operator123", domain.UserRoleOperator},
	}
	for _, u := range demoUsers {
		hash, err := auth.HashPassword(u.password, s.cost)
		if err != nil {
			return err
		}
		user := &domain.User{Username: u.username, PasswordHash: hash, Role: u.role}
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
		s.logger.Info("seeded user", zap.String("username", u.username))
	}

	demoLawyers := []domain.Lawyer{
		{Name: "Juan Pérez", Email: "juan.perez@example.com", Phone: "3001234567", Specialization: "Laboral", Status: domain.LawyerStatusActive},
		{Name: "María Gómez", Email: "maria.gomez@example.com", Phone: "3007654321", Specialization: "Civil", Status: domain.LawyerStatusActive},
	}
	for i := range demoLawyers {
		if err := s.lawyers.Create(ctx, &demoLawyers[i]); err != nil {
			return err
		}
		s.logger.Info("seeded lawyer", zap.String("name", demoLawyers[i].Name))
	}

	demoLawsuits := []domain.Lawsuit{
		{CaseNumber: "DEM-2025-001", Plaintiff: "Empresa XYZ", Defendant: "Juan Rodríguez", CaseType: domain.CaseTypeLabor, Status: domain.LawsuitStatusPending},
		{CaseNumber: "DEM-2025-002", Plaintiff: "Ana López", Defendant: "Comercial SA", CaseType: domain.CaseTypeCommercial, Status: domain.LawsuitStatusPending},
	}
	for i := range demoLawsuits {
		if err := s.lawsuits.Create(ctx, &demoLawsuits[i]); err != nil {
			return err
		}
		s.logger.Info("seeded lawsuit", zap.String("case_number", demoLawsuits[i].CaseNumber))
	}

	return nil
}
