package commands_test

import (
	"testing"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateProfileCommand_Valid(t *testing.T) {
	uid := mustUserID(t, "user-1")

	cmd, err := commands.NewUpdateProfileCommand(uid, "Dana R.", "https://cdn.campus.edu/p/1.png")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, uid, cmd.UID())
	assert.Equal(t, "Dana R.", cmd.DisplayName())
	assert.Equal(t, "https://cdn.campus.edu/p/1.png", cmd.PhotoURL())
}

func TestNewUpdateProfileCommand_EmptyPhotoURLClearsPhoto(t *testing.T) {
	cmd, err := commands.NewUpdateProfileCommand(mustUserID(t, "user-1"), "Dana", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.PhotoURL())
}

func TestNewUpdateProfileCommand_BlankDisplayName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		_, err := commands.NewUpdateProfileCommand(mustUserID(t, "user-1"), name, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrDisplayNameIsRequired)
	}
}

func TestNewUpdateProfileCommand_InvalidUID(t *testing.T) {
	_, err := commands.NewUpdateProfileCommand(kernel.UserID{}, "Dana", "")
	require.Error(t, err)
}

func TestUpdateProfileCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.UpdateProfileCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateProfileCommandIsNotConstructed)
}
