package ticket

import "helpdesk/internal/domain/user"

// Authorization policy. Pure decisions only: no storage access, no side
// effects. Reads require authentication alone, so they have no policy
// function here.
//
// The ticket and message policies are deliberately asymmetric: admins may
// modify any ticket but may NOT modify another user's message. The tests pin
// this so any future change is an explicit decision.

// CanModifyTicket reports whether the actor may update or delete the ticket.
// Allowed for the ticket's creator and for admins.
func CanModifyTicket(actor user.Actor, t *Ticket) bool {
	if t == nil {
		return false
	}
	return actor.ID == t.CreatorID() || actor.Role.IsAdmin()
}

// CanModifyMessage reports whether the actor may update or delete the
// message. Allowed for the author only; there is no admin override.
func CanModifyMessage(actor user.Actor, m *Message) bool {
	if m == nil {
		return false
	}
	return actor.ID == m.AuthorID()
}
