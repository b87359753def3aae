package http

import (
	"strings"

	"campuseats/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity header names. Authentication happens upstream (the campus SSO
// gateway); by the time a request reaches this service the gateway has
// verified the user and stamped these headers.
const (
	headerUserID    = "X-User-Id"
	headerUserEmail = "X-User-Email"
	headerUserName  = "X-User-Name"
)

// identity is the authenticated caller as asserted by the gateway.
type identity struct {
	uid   kernel.UserID
	email string
	name  string
}

// callerIdentity extracts the caller's identity from the request headers.
// The boolean is false when the UID header is missing or blank.
func callerIdentity(ctx echo.Context) (identity, bool) {
	uid, err := kernel.NewUserID(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return identity{}, false
	}

	return identity{
		uid:   uid,
		email: ctx.Request().Header.Get(headerUserEmail),
		name:  ctx.Request().Header.Get(headerUserName),
	}, true
}

// displayName resolves the name shown to other users: the profile name when
// present, otherwise the email local part.
func (id identity) displayName() string {
	if id.name != "" {
		return id.name
	}

	if at := strings.Index(id.email, "@"); at > 0 {
		return id.email[:at]
	}

	return id.email
}
