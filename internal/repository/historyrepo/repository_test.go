package historyrepo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"beltstock/internal/domain"
	"beltstock/internal/repository/historyrepo"
)

func TestBuildQuery_NoFilters(t *testing.T) {
	query, args := historyrepo.BuildQuery(domain.HistoryFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY date DESC")
	assert.Empty(t, args)
}

func TestBuildQuery_AllFiltersNumberedInOrder(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	query, args := historyrepo.BuildQuery(domain.HistoryFilter{
		Category:    "Cogged",
		Subcategory: "Bx",
		StartDate:   &start,
		EndDate:     &end,
	})

	assert.Contains(t, query, "WHERE category = $1 AND subcategory = $2 AND date >= $3 AND date <= $4")
	assert.Equal(t, []interface{}{"Cogged", "Bx", start, end}, args)
}

func TestBuildQuery_SkipsEmptyFields(t *testing.T) {
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	query, args := historyrepo.BuildQuery(domain.HistoryFilter{Subcategory: "Bx", EndDate: &end})

	assert.Contains(t, query, "WHERE subcategory = $1 AND date <= $2")
	assert.Len(t, args, 2)
}
