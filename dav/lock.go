package dav

import (
	"time"

	"github.com/samber/mo"
)

// LockOwnerKind tags the variant held by a LockOwner.
type LockOwnerKind int

const (
	LockOwnerPrincipal LockOwnerKind = iota + 1
	LockOwnerURI
)

// LockOwner identifies who holds a lock: either a principal name or an absolute
// URI. The zero value is not a valid owner.
type LockOwner struct {
	Kind  LockOwnerKind
	Value string
}

// PrincipalLockOwner returns an owner identified by name.
func PrincipalLockOwner(name string) LockOwner {
	return LockOwner{Kind: LockOwnerPrincipal, Value: name}
}

// URILockOwner returns an owner identified by an absolute URI.
func URILockOwner(href string) LockOwner {
	return LockOwner{Kind: LockOwnerURI, Value: href}
}

// ActiveLock describes a lock reported by the server. Any field may be absent.
type ActiveLock struct {
	ApplyTo   mo.Option[ApplyTo]
	LockScope mo.Option[LockScope]
	LockToken mo.Option[string]
	Owner     mo.Option[LockOwner]
	LockRoot  mo.Option[string]
	// Timeout is None both when the server sent none and when it sent "Infinite".
	Timeout mo.Option[time.Duration]
}

// ActiveLockBuilder assembles an ActiveLock.
type ActiveLockBuilder struct {
	lock ActiveLock
}

// NewActiveLockBuilder returns a builder for an empty ActiveLock.
func NewActiveLockBuilder() *ActiveLockBuilder {
	return &ActiveLockBuilder{}
}

// WithApplyTo sets the lock depth.
func (b *ActiveLockBuilder) WithApplyTo(v mo.Option[ApplyTo]) *ActiveLockBuilder {
	b.lock.ApplyTo = v
	return b
}

// WithLockScope sets the lock scope.
func (b *ActiveLockBuilder) WithLockScope(v mo.Option[LockScope]) *ActiveLockBuilder {
	b.lock.LockScope = v
	return b
}

// WithLockToken sets the lock token.
func (b *ActiveLockBuilder) WithLockToken(v mo.Option[string]) *ActiveLockBuilder {
	b.lock.LockToken = v
	return b
}

// WithOwner sets the lock owner.
func (b *ActiveLockBuilder) WithOwner(v mo.Option[LockOwner]) *ActiveLockBuilder {
	b.lock.Owner = v
	return b
}

// WithLockRoot sets the href of the locked root.
func (b *ActiveLockBuilder) WithLockRoot(v mo.Option[string]) *ActiveLockBuilder {
	b.lock.LockRoot = v
	return b
}

// WithTimeout sets the remaining lock lifetime.
func (b *ActiveLockBuilder) WithTimeout(v mo.Option[time.Duration]) *ActiveLockBuilder {
	b.lock.Timeout = v
	return b
}

// Build returns the lock.
func (b *ActiveLockBuilder) Build() ActiveLock {
	return b.lock
}
