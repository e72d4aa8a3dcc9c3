// Package order holds the Order aggregate of the kitchen display: a ticket that
// arrives from the point of sale, is cooked item by item and finally leaves the
// pass.
//
// The package includes:
//   - Order: the aggregate root owning its items, timestamps and lifecycle
//   - Item: a line of the ticket with its own pending -> preparing -> ready flow
//   - Status and ItemStatus: the two state machines
//   - Priority: the closed normal < rush < vip ordering key
//   - StatusChanged: the domain event recorded on every order status change
//
// Key business rules:
//   - pending -> preparing -> ready -> served -> paid, with recall (served -> ready)
//     and cancel from any state that is not served, paid or cancelled
//   - bump advances one step along the main line and fails on terminal states
//   - every lifecycle timestamp is stamped the first time its state is entered
//     and never overwritten afterwards
//   - when the last item of an order becomes ready, a pending or preparing order
//     becomes ready on its own; manual order transitions ignore item state
package order
