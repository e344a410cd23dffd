package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/opentender/radar/internal/models"
	"github.com/opentender/radar/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1))

	tenders := Generate(50, now, rng)
	require.Len(t, tenders, 50)

	seenIDs := make(map[string]bool)
	for _, tender := range tenders {
		assert.NotEmpty(t, tender.ID)
		assert.False(t, seenIDs[tender.ID], "IDs must be unique")
		seenIDs[tender.ID] = true

		assert.NotEmpty(t, tender.Title)
		assert.NotEmpty(t, tender.Country)
		assert.NotEmpty(t, tender.Sector)
		assert.Equal(t, "EUR", tender.Currency)
		assert.True(t, models.KnownTenderStatus(tender.Status))
		assert.True(t, models.KnownContractType(tender.ContractType))

		require.NotNil(t, tender.Budget)
		assert.GreaterOrEqual(t, *tender.Budget, 5000.0)
		assert.LessOrEqual(t, *tender.Budget, 1000000.0)

		assert.False(t, tender.PublishedDate.After(now))
		require.NotNil(t, tender.Deadline)
		assert.True(t, tender.Deadline.After(now))
	}
}

func TestGenerate_ScoresStayWithinRange(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultConfig())
	rng := rand.New(rand.NewSource(7))

	for _, tender := range Generate(200, time.Now().UTC(), rng) {
		total := engine.Score(tender).Total
		assert.GreaterOrEqual(t, total, 0.0)
		assert.LessOrEqual(t, total, 100.0)
	}
}
