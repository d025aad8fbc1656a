package service

import (
	"context"
	"time"

	"github.com/izakod/asn-api/internal/models"
	"github.com/izakod/asn-api/internal/repository"
)

// Session is the authenticated identity attached to every store and workflow
// call. It is rebuilt per request from the bearer token; nothing is kept in
// process-global state.
type Session struct {
	PegawaiID uint
	NIP       string
	Role      string
	UnitID    uint
}

// IsAdmin reports whether the session carries administrative scope.
func (s Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

// IsSupervisor reports whether the session may hold verification authority.
func (s Session) IsSupervisor() bool {
	return s.Role == models.RoleAtasan || s.Role == models.RoleAdmin
}

// isAtasanOf reports whether the session holds verification authority over the
// given report owner: admin scope, the owner's direct superior, or a delegate
// of that superior.
func isAtasanOf(ctx context.Context, pegawai repository.PegawaiRepository, session Session, owner models.Pegawai, at time.Time) (bool, error) {
	if session.IsAdmin() {
		return true, nil
	}

	if owner.AtasanID == nil {
		return false, nil
	}

	if *owner.AtasanID == session.PegawaiID {
		return true, nil
	}

	if !session.IsSupervisor() {
		return false, nil
	}

	return pegawai.HasDelegation(ctx, *owner.AtasanID, session.PegawaiID, at)
}
