package core

// Action is a mutation a caller may attempt on an owned record.
type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// OwnedRecord is any record that tracks the identity of the user that created it.
type OwnedRecord interface {
	OwnerID() string
}

// Can is the single authorization decision applied to all record mutations:
// only the owner may update or delete a record.
func Can(callerID string, action Action, rec OwnedRecord) bool {
	switch action {
	case ActionUpdate, ActionDelete:
		return callerID != "" && callerID == rec.OwnerID()
	}
	return false
}
