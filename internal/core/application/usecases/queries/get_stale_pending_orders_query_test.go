package queries_test

import (
	"testing"
	"time"

	"campuseats/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStalePendingOrdersQuery_Valid(t *testing.T) {
	cutoff := time.Now().UTC().Add(-15 * time.Minute)

	query, err := queries.NewGetStalePendingOrdersQuery(cutoff)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, cutoff, query.Cutoff())
}

func TestNewGetStalePendingOrdersQuery_ZeroCutoff(t *testing.T) {
	_, err := queries.NewGetStalePendingOrdersQuery(time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrCutoffIsRequired)
}

func TestGetStalePendingOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStalePendingOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStalePendingOrdersQueryIsNotConstructed)
}
