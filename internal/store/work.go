package store

import (
	"fmt"

	"github.com/rtservizi/fieldtrack/internal/models"
)

// WorkRef is the tagged reference a report is filed against: exactly one of
// a commission or a machine, selected by Kind. It replaces loose
// discriminator/foreign-key pairs at the store boundary so that resolution
// always joins against the right table.
type WorkRef struct {
	Kind models.WorkKind // Target table discriminator.
	ID   uint64          // Target row ID.
}

// CommissionRef builds a reference to a commission.
func CommissionRef(id uint64) WorkRef {
	return WorkRef{Kind: models.WorkKindCommission, ID: id}
}

// MachineRef builds a reference to a machine.
func MachineRef(id uint64) WorkRef {
	return WorkRef{Kind: models.WorkKindMachine, ID: id}
}

// ParseWorkRef builds a WorkRef from its wire form, rejecting unknown kinds.
func ParseWorkRef(kind string, id uint64) (WorkRef, error) {
	k := models.WorkKind(kind)
	if !k.Valid() {
		return WorkRef{}, fmt.Errorf("unknown work type %q", kind)
	}
	if id == 0 {
		return WorkRef{}, fmt.Errorf("missing work id")
	}
	return WorkRef{Kind: k, ID: id}, nil
}
