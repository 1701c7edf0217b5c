package entity

import (
	"strings"

	domainerrors "marketplace/internal/domain/errors"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusRequested      OrderStatus = "REQUESTED"
	OrderStatusAccepted       OrderStatus = "ACCEPTED"
	OrderStatusInProduction   OrderStatus = "IN_PRODUCTION"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCanceled       OrderStatus = "CANCELED"
)

// orderStatusSequence is the forward path. CANCELED sits outside it.
var orderStatusSequence = []OrderStatus{
	OrderStatusRequested,
	OrderStatusAccepted,
	OrderStatusInProduction,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// AllOrderStatuses lists every status in declaration order.
func AllOrderStatuses() []OrderStatus {
	return append(append([]OrderStatus{}, orderStatusSequence...), OrderStatusCanceled)
}

// ParseOrderStatus accepts any letter case.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))

	return status, status.IsValid()
}

func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the declared values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusRequested, OrderStatusAccepted, OrderStatusInProduction,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports DELIVERED and CANCELED.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled
}

func (s OrderStatus) position() int {
	for i, st := range orderStatusSequence {
		if st == s {
			return i
		}
	}

	return -1
}

// SkipsSteps reports a forward move that jumps over at least one status on the
// delivery path, such as REQUESTED → DELIVERED.
func SkipsSteps(from, to OrderStatus) bool {
	f, t := from.position(), to.position()
	if f < 0 || t < 0 {
		return false
	}

	return t > f+1
}

// TransitionRule decides whether from → to is allowed. Both inputs are valid statuses.
type TransitionRule func(from, to OrderStatus) bool

// AllowAnyTransition lets an authorized actor set any status from any status.
func AllowAnyTransition(_, _ OrderStatus) bool {
	return true
}

// SequentialTransition allows staying put, moving one step forward along the
// delivery path, or canceling a non-terminal order.
func SequentialTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	if from.IsTerminal() {
		return false
	}
	if to == OrderStatusCanceled {
		return true
	}

	return to.position() == from.position()+1
}

// StatusMachine validates order status changes. The rule is swappable so the
// allowed set can be tightened without touching callers.
type StatusMachine struct {
	rule TransitionRule
}

// NewStatusMachine builds a machine around rule; nil means AllowAnyTransition.
func NewStatusMachine(rule TransitionRule) *StatusMachine {
	if rule == nil {
		rule = AllowAnyTransition
	}

	return &StatusMachine{rule: rule}
}

// NewPermissiveStatusMachine is the default machine.
func NewPermissiveStatusMachine() *StatusMachine {
	return NewStatusMachine(AllowAnyTransition)
}

// NewSequentialStatusMachine enforces SequentialTransition.
func NewSequentialStatusMachine() *StatusMachine {
	return NewStatusMachine(SequentialTransition)
}

// CanTransition reports whether from → to is allowed.
func (m *StatusMachine) CanTransition(from, to OrderStatus) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}

	return m.rule(from, to)
}

// Transition returns the new status or the reason it is refused:
// ErrValidationFailed for unknown statuses, ErrInvalidStatusTransition otherwise.
func (m *StatusMachine) Transition(from, to OrderStatus) (OrderStatus, error) {
	if !to.IsValid() {
		return from, domainerrors.ErrValidationFailed.WithDetailsf("unknown order status %q", to)
	}
	if !from.IsValid() {
		return from, domainerrors.ErrValidationFailed.WithDetailsf("order is in unknown status %q", from)
	}
	if !m.rule(from, to) {
		return from, domainerrors.ErrInvalidStatusTransition.WithDetailsf("%s -> %s", from, to)
	}

	return to, nil
}
