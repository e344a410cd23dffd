package seed

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/opentender/radar/internal/models"
	"github.com/opentender/radar/internal/repository"
	"github.com/opentender/radar/internal/scoring"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Демонстрационные данные, имитирующие структуру реальных источников
// закупок (TED, национальные порталы).
var (
	countries = []string{"ES", "PT", "FR", "IT", "DE", "UK", "NL", "BE", "PL", "SE"}

	sectors = []string{
		"technology",
		"software development",
		"digital transformation",
		"consulting services",
		"it infrastructure",
		"telecommunications",
		"construction",
		"healthcare",
		"education",
		"public administration",
	}

	titles = []string{
		"Digital Platform for Public Services",
		"Cloud Infrastructure Migration",
		"Cybersecurity Assessment Services",
		"API Development and Integration",
		"Data Analytics Platform",
		"Software Development Framework",
		"Machine Learning Solutions",
		"Blockchain Implementation",
		"SaaS Platform Development",
		"IT Consulting Services",
		"Road Construction Project",
		"Building Maintenance Services",
		"Medical Equipment Supply",
		"Educational Software Platform",
		"Telecommunications Network Upgrade",
	}

	descriptions = []string{
		"Development of a comprehensive digital platform to modernize public services and improve citizen engagement.",
		"Migration of legacy systems to cloud infrastructure with focus on scalability and security.",
		"Comprehensive cybersecurity assessment and implementation of security best practices.",
		"Development and integration of RESTful APIs for inter-system communication.",
		"Implementation of a data analytics platform for business intelligence and reporting.",
		"Framework development for scalable software solutions.",
		"Implementation of machine learning models for predictive analytics.",
		"Blockchain-based solution for secure document management.",
		"Development of a Software-as-a-Service platform for enterprise clients.",
		"IT consulting services for digital transformation initiatives.",
		"Construction of new road infrastructure connecting major cities.",
		"Maintenance and repair services for public buildings.",
		"Supply of medical equipment for public hospitals.",
		"Educational software platform for online learning.",
		"Upgrade of telecommunications network infrastructure.",
	}

	cpvCodes = []string{
		"48000000", // Software package and information systems
		"72000000", // IT services
		"48000000",
		"72000000",
		"48000000",
		"48000000",
		"48000000",
		"48000000",
		"48000000",
		"72000000",
		"45000000", // Construction work
		"50000000", // Repair and maintenance services
		"33000000", // Medical equipment
		"48000000",
		"32000000", // Communication equipment
	}

	contractTypes = []models.ContractType{
		models.ServicesContract,
		models.SuppliesContract,
		models.WorksContract,
		models.ConcessionContract,
	}
)

// Generate создаёт n демонстрационных тендеров без скоров: бюджеты от
// 5 тысяч до миллиона, публикация за последние 90 дней, дедлайн в
// ближайшие 60.
func Generate(n int, now time.Time, rng *rand.Rand) []models.Tender {
	tenders := make([]models.Tender, 0, n)
	for i := 0; i < n; i++ {
		idx := i % len(titles)
		budget := round2(5000 + rng.Float64()*995000)
		deadline := now.AddDate(0, 0, 1+rng.Intn(60))

		tenders = append(tenders, models.Tender{
			ID:            uuid.New().String(),
			Title:         titles[idx],
			Description:   descriptions[idx],
			Country:       countries[rng.Intn(len(countries))],
			Sector:        sectors[rng.Intn(len(sectors))],
			CPVCode:       cpvCodes[idx],
			Budget:        &budget,
			Currency:      "EUR",
			Status:        randomStatus(rng),
			ContractType:  contractTypes[rng.Intn(len(contractTypes))],
			PublishedDate: now.AddDate(0, 0, -rng.Intn(91)),
			Deadline:      &deadline,
			CreatedAt:     now,
		})
	}
	return tenders
}

// randomStatus выбирает статус с весами 70/20/10: большинство открыты.
func randomStatus(rng *rand.Rand) models.TenderStatus {
	switch v := rng.Intn(100); {
	case v < 70:
		return models.OpenTender
	case v < 90:
		return models.ClosedTender
	default:
		return models.AwardedTender
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Run наполняет хранилище демонстрационными тендерами, рассчитывая
// скор каждого тем же движком, что и при обычном создании.
func Run(ctx context.Context, repo repository.TenderRepository, engine *scoring.Engine, n int, logger zerolog.Logger) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	tenders := Generate(n, time.Now().UTC(), rng)
	for i := range tenders {
		tenders[i].Score = engine.Score(tenders[i]).Total
	}

	if err := repo.ReplaceAllTenders(ctx, tenders); err != nil {
		return err
	}
	logger.Info().Int("count", len(tenders)).Msg("seeded tenders with calculated scores")
	return nil
}
