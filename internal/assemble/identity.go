package assemble

import (
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/locate"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/record"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/textnorm"
)

// Identity runs the deterministic CCCD pipeline over the front and back
// transcripts. The card number, holder data and place of origin live on the
// front; residence, issue date and issuing authority are printed on the
// back but fall back to the front when no back-side text is supplied.
func Identity(front, back string) record.Identity {
	backSide := back
	if backSide == "" {
		backSide = front
	}
	return record.Identity{
		IDNumber:           locate.IdentityNumber(front),
		FullName:           textnorm.RepairAccents(locate.FullName(front)),
		DateOfBirth:        locate.DateOfBirth(front),
		Sex:                locate.Sex(front),
		Nationality:        locate.Nationality(front),
		PlaceOfOrigin:      locate.PlaceOfOrigin(front),
		PermanentResidence: locate.PermanentResidence(backSide),
		IssueDate:          locate.IssueDate(backSide),
		IssuingAuthority:   textnorm.RepairAccents(locate.IssuingAuthority(backSide)),
	}
}
