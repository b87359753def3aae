// Package order contains the Order aggregate: the central domain object of the
// campuseats delivery workflow.
//
// An order is placed by a customer against a vendor with a cart of items and a
// delivery location. Pricing is fixed at placement: subtotal (sum of item
// totals) plus the flat delivery fee. The lifecycle is a strict one-way state
// machine, Pending -> Accepted -> Delivered, where acceptance binds exactly one
// courier and delivery is terminal.
//
// The aggregate enforces its invariants itself (self-delivery ban, courier
// authorization on delivery, one-way transitions); the persistence layer backs
// the contended Pending -> Accepted transition with a conditional update so the
// invariants hold under concurrent couriers as well.
package order
