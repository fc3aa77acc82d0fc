package transactionrepo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"beltstock/internal/domain"
	"beltstock/internal/repository/transactionrepo"
)

func TestBuildQuery_NoFilters(t *testing.T) {
	query, args := transactionrepo.BuildQuery(domain.TransactionFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildQuery_SearchTypeAndDay(t *testing.T) {
	day := time.Date(2024, 3, 5, 15, 30, 0, 0, time.UTC)

	query, args := transactionrepo.BuildQuery(domain.TransactionFilter{
		Search: " cogged ",
		Type:   domain.TransactionOut,
		Date:   &day,
	})

	assert.Contains(t, query, "(product_name ILIKE $1 OR reason ILIKE $1 OR reference ILIKE $1)")
	assert.Contains(t, query, "type = $2")
	assert.Contains(t, query, "date >= $3 AND date < $4")
	assert.Equal(t, []interface{}{
		"%cogged%",
		"OUT",
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
	}, args)
}
