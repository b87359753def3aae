// Package account contains the Account aggregate: a registered user of the
// application. Accounts are created on first authentication; the identifier is
// issued by the external identity provider. Every account can both place
// orders and deliver them, and accumulates courier earnings one flat delivery
// fee at a time.
package account
