// Seeding tool to create a demo provider with a realistic compliance state:
// a verified state registration, a general liability policy awaiting review,
// declared-no-coverage records for the remaining categories, and one
// EPA 609 universal-certified technician.
//
// Usage (env overrides):
//
//	SEED_BUSINESS_NAME="Sunrise Mobile Repair" go run ./cmd/seed
//
// Reads DATABASE_URL and other core config via fixly/pkg/config
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"fixly/internal/domain"
	"fixly/internal/repository/postgres"
	"fixly/pkg/config"
	"fixly/pkg/logger"
)

func main() {
	log := logger.New("seed-provider")

	cfg := config.Load()
	if err := cfg.ValidateCore(); err != nil {
		log.Fatal("Invalid configuration", map[string]interface{}{"error": err.Error()})
	}

	businessName := getenv("SEED_BUSINESS_NAME", "Sunrise Mobile Repair LLC")
	techName := getenv("SEED_TECH_NAME", "Maria Alvarez")

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database", map[string]interface{}{"error": err.Error()})
	}
	defer db.Close()

	providerRepo := postgres.NewProviderRepository(db)
	itemRepo := postgres.NewComplianceItemRepository(db)
	policyRepo := postgres.NewInsurancePolicyRepository(db)
	technicianRepo := postgres.NewTechnicianRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	provider := &domain.Provider{
		ID:           uuid.New(),
		BusinessName: businessName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := providerRepo.Create(ctx, provider); err != nil {
		log.Fatal("Failed to create provider", map[string]interface{}{"error": err.Error()})
	}
	log.Info("Provider created", map[string]interface{}{
		"provider_id":   provider.ID.String(),
		"business_name": provider.BusinessName,
	})

	// Verified state registration valid for a year
	regNumber := "MV-104882"
	regExpiry := now.AddDate(1, 0, 0)
	verified := now.Add(-48 * time.Hour)
	item := &domain.ComplianceItem{
		ID:                 uuid.New(),
		ProviderID:         provider.ID,
		Type:               domain.ComplianceTypeFDACSMotorVehicleRepair,
		RegistrationNumber: &regNumber,
		ExpirationDate:     &regExpiry,
		DocumentUploads:    []string{"https://uploads.fixly.dev/demo/fdacs-registration.pdf"},
		LastVerifiedAt:     &verified,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := itemRepo.Upsert(ctx, item); err != nil {
		log.Fatal("Failed to seed compliance item", map[string]interface{}{"error": err.Error()})
	}

	// Local business tax receipt left unsubmitted on purpose so the
	// dashboard shows a not-submitted row
	blank := &domain.ComplianceItem{
		ID:         uuid.New(),
		ProviderID: provider.ID,
		Type:       domain.ComplianceTypeLocalBusinessTax,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := itemRepo.Upsert(ctx, blank); err != nil {
		log.Fatal("Failed to seed compliance item", map[string]interface{}{"error": err.Error()})
	}

	// General liability declared with coverage, pending review
	carrier := "Gulfstream Mutual"
	policyNumber := "GL-7781923"
	policyExpiry := now.AddDate(0, 10, 0)
	amount := decimal.NewFromInt(1_000_000)
	gl := &domain.InsurancePolicy{
		ID:             uuid.New(),
		ProviderID:     provider.ID,
		Type:           domain.InsuranceGeneralLiability,
		HasCoverage:    true,
		CarrierName:    &carrier,
		PolicyNumber:   &policyNumber,
		ExpirationDate: &policyExpiry,
		CoverageAmount: &amount,
		COIUploads:     []string{"https://uploads.fixly.dev/demo/gl-coi.pdf"},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := policyRepo.Upsert(ctx, gl); err != nil {
		log.Fatal("Failed to seed insurance policy", map[string]interface{}{"error": err.Error()})
	}

	// Remaining categories declared as no coverage
	for _, insType := range domain.InsuranceTypes {
		if insType == domain.InsuranceGeneralLiability {
			continue
		}
		policy := &domain.InsurancePolicy{
			ID:          uuid.New(),
			ProviderID:  provider.ID,
			Type:        insType,
			HasCoverage: false,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := policyRepo.Upsert(ctx, policy); err != nil {
			log.Fatal("Failed to seed insurance policy", map[string]interface{}{"error": err.Error()})
		}
	}

	// One universal-certified technician
	certNumber := "EPA-609-55201"
	certType := domain.EPA609Universal
	certExpiry := now.AddDate(2, 0, 0)
	tech := &domain.Technician{
		ID:                uuid.New(),
		ProviderID:        provider.ID,
		FullName:          techName,
		Role:              domain.RoleLeadTechnician,
		IsActive:          true,
		EPA609CertNumber:  &certNumber,
		EPA609CertType:    &certType,
		EPA609CertExpiry:  &certExpiry,
		EPA609CertUploads: []string{"https://uploads.fixly.dev/demo/epa609-card.pdf"},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := technicianRepo.Create(ctx, tech); err != nil {
		log.Fatal("Failed to seed technician", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Seed complete", map[string]interface{}{
		"provider_id":   provider.ID.String(),
		"technician_id": tech.ID.String(),
	})
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
