package postgres

import (
	"context"
	"database/sql/driver"
	"net"
	"os"

	"atlas/internal/domain/repository"

	"github.com/pkg/errors"
)

// isStoreUnavailable classifies network-class failures (timeout, connectivity,
// DNS/TLS) structurally. Everything else is treated as a store rejection.
// String matching on driver messages is deliberately avoided; the distinction
// has to hold across driver versions.
func isStoreUnavailable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, os.ErrDeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) {
		return true
	}

	// Covers *net.OpError (dial/refused/reset), *net.DNSError and TLS
	// handshake timeouts, all of which implement net.Error.
	var netErr net.Error

	return errors.As(err, &netErr)
}

// classifyStoreError wraps network-class failures into the repository's
// ErrStoreUnavailable sentinel so callers can branch without inspecting
// driver errors. Other errors keep their cause and gain context.
func classifyStoreError(err error, op string) error {
	if isStoreUnavailable(err) {
		return errors.Wrapf(repository.ErrStoreUnavailable, "%s: %v", op, err)
	}

	return errors.Wrap(err, op)
}
