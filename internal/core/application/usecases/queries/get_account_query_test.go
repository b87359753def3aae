package queries_test

import (
	"testing"

	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAccountQuery_Valid(t *testing.T) {
	uid, err := kernel.NewUserID("user-1")
	require.NoError(t, err)

	query, err := queries.NewGetAccountQuery(uid)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, uid, query.UID())
}

func TestNewGetAccountQuery_InvalidUID(t *testing.T) {
	_, err := queries.NewGetAccountQuery(kernel.UserID{})
	require.Error(t, err)
}

func TestGetAccountQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAccountQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAccountQueryIsNotConstructed)
}
