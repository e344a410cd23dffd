package query

import (
	"fmt"
	"testing"
	"time"

	"github.com/opentender/radar/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func makeTender(id string, score float64) models.Tender {
	return models.Tender{
		ID:            id,
		Country:       "ES",
		Sector:        "technology",
		Status:        models.OpenTender,
		Score:         score,
		PublishedDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func itemIDs(page TenderPage) []string {
	ids := make([]string, 0, len(page.Items))
	for _, t := range page.Items {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestPage_FilterByCountry(t *testing.T) {
	tenders := []models.Tender{
		{ID: "a", Country: "ES", Score: 90},
		{ID: "b", Country: "FR", Score: 80},
		{ID: "c", Country: "ES", Score: 70},
	}

	q := DefaultQuery()
	q.Country = "ES"
	page, err := Page(tenders, q)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Total)
	assert.Equal(t, []string{"a", "c"}, itemIDs(page), "ES records keep their relative sort order")
}

func TestPage_FilterBySector(t *testing.T) {
	tenders := []models.Tender{
		{ID: "a", Sector: "technology", Score: 50},
		{ID: "b", Sector: "construction", Score: 60},
	}

	q := DefaultQuery()
	q.Sector = "technology"
	page, err := Page(tenders, q)
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, itemIDs(page))
}

func TestPage_FiltersAreConjunctive(t *testing.T) {
	tenders := []models.Tender{
		{ID: "a", Country: "ES", Sector: "technology", Score: 50},
		{ID: "b", Country: "ES", Sector: "construction", Score: 60},
		{ID: "c", Country: "FR", Sector: "technology", Score: 70},
	}

	q := DefaultQuery()
	q.Country = "ES"
	q.Sector = "technology"
	page, err := Page(tenders, q)
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, itemIDs(page))
}

func TestPage_StatusAndScoreFilters(t *testing.T) {
	tenders := []models.Tender{
		{ID: "a", Status: models.OpenTender, Score: 95},
		{ID: "b", Status: models.ClosedTender, Score: 85},
		{ID: "c", Status: models.OpenTender, Score: 40},
	}

	q := DefaultQuery()
	q.Status = models.OpenTender
	q.MinScore = floatPtr(50)
	page, err := Page(tenders, q)
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, itemIDs(page))
}

func TestPage_EmptyResultIsNotAnError(t *testing.T) {
	tenders := []models.Tender{{ID: "a", Country: "ES"}}

	q := DefaultQuery()
	q.Country = "JP"
	page, err := Page(tenders, q)
	require.NoError(t, err)

	assert.Equal(t, 0, page.Total)
	assert.Empty(t, page.Items)
}

func TestPage_SortByScoreTieBreaksByID(t *testing.T) {
	tenders := []models.Tender{
		makeTender("b", 80),
		makeTender("a", 80),
		makeTender("c", 90),
	}

	page, err := Page(tenders, DefaultQuery())
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a", "b"}, itemIDs(page), "equal scores fall back to ascending IDs")
}

func TestPage_SortByBudgetTreatsNilAsLowest(t *testing.T) {
	tenders := []models.Tender{
		{ID: "a", Budget: floatPtr(100000)},
		{ID: "b", Budget: nil},
		{ID: "c", Budget: floatPtr(5000)},
	}

	q := DefaultQuery()
	q.SortBy = SortByBudget
	page, err := Page(tenders, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, itemIDs(page), "nil budget sorts last when descending")

	q.SortOrder = OrderAsc
	page, err = Page(tenders, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, itemIDs(page), "nil budget sorts first when ascending, never excluded")
}

func TestPage_SortByPublishedDate(t *testing.T) {
	tenders := []models.Tender{
		{ID: "a", PublishedDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", PublishedDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "c", PublishedDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	q := DefaultQuery()
	q.SortBy = SortByPublished
	q.SortOrder = OrderAsc
	page, err := Page(tenders, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, itemIDs(page))

	q.SortOrder = OrderDesc
	page, err = Page(tenders, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, itemIDs(page))
}

func TestPage_Pagination(t *testing.T) {
	tenders := make([]models.Tender, 0, 45)
	for i := 0; i < 45; i++ {
		tenders = append(tenders, makeTender(fmt.Sprintf("t-%02d", i), float64(i)))
	}

	cases := []struct {
		page     int
		expected int
	}{
		{1, 20},
		{2, 20},
		{3, 5},
		{4, 0},
	}
	for _, tc := range cases {
		q := DefaultQuery()
		q.Page = tc.page
		page, err := Page(tenders, q)
		require.NoError(t, err)

		assert.Len(t, page.Items, tc.expected, "page %d", tc.page)
		assert.Equal(t, 45, page.Total, "total must be reported on every page")
		assert.Equal(t, tc.page, page.Page)
		assert.Equal(t, 20, page.PageSize)
	}
}

func TestPage_PagesDoNotOverlap(t *testing.T) {
	tenders := make([]models.Tender, 0, 7)
	for i := 0; i < 7; i++ {
		tenders = append(tenders, makeTender(fmt.Sprintf("t-%d", i), float64(i)))
	}

	q := DefaultQuery()
	q.PageSize = 3

	seen := make(map[string]bool)
	for p := 1; p <= 3; p++ {
		q.Page = p
		page, err := Page(tenders, q)
		require.NoError(t, err)
		for _, id := range itemIDs(page) {
			assert.False(t, seen[id], "tender %s returned twice", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, 7)
}

func TestPage_Validation(t *testing.T) {
	tenders := []models.Tender{makeTender("a", 50)}

	cases := []struct {
		name  string
		field string
		mut   func(q *TenderQuery)
	}{
		{"zero page", "page", func(q *TenderQuery) { q.Page = 0 }},
		{"negative page size", "pageSize", func(q *TenderQuery) { q.PageSize = -1 }},
		{"unknown sort field", "sortBy", func(q *TenderQuery) { q.SortBy = "title" }},
		{"unknown sort order", "sortOrder", func(q *TenderQuery) { q.SortOrder = "sideways" }},
		{"unknown status", "status", func(q *TenderQuery) { q.Status = "archived" }},
		{"unknown contract type", "contractType", func(q *TenderQuery) { q.ContractType = "barter" }},
		{"min score out of range", "minScore", func(q *TenderQuery) { q.MinScore = floatPtr(150) }},
		{"max score out of range", "maxScore", func(q *TenderQuery) { q.MaxScore = floatPtr(-1) }},
		{"inverted score range", "minScore", func(q *TenderQuery) {
			q.MinScore = floatPtr(80)
			q.MaxScore = floatPtr(20)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := DefaultQuery()
			tc.mut(&q)

			_, err := Page(tenders, q)
			var validationErr *models.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestDefaultQuery(t *testing.T) {
	q := DefaultQuery()

	assert.Equal(t, SortByScore, q.SortBy)
	assert.Equal(t, OrderDesc, q.SortOrder)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPageSize, q.PageSize)
	assert.NoError(t, q.Validate())
}

func TestPage_DoesNotMutateInput(t *testing.T) {
	tenders := []models.Tender{
		makeTender("c", 10),
		makeTender("a", 30),
		makeTender("b", 20),
	}

	_, err := Page(tenders, DefaultQuery())
	require.NoError(t, err)

	assert.Equal(t, "c", tenders[0].ID, "input slice order must stay untouched")
	assert.Equal(t, "a", tenders[1].ID)
	assert.Equal(t, "b", tenders[2].ID)
}
