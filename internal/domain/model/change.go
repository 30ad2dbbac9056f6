package model

// ChangeType enumerates change feed operations.
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// OrderChange is a single row change observed on the orders table.
// New is set for inserts and updates, Old for updates and deletes.
type OrderChange struct {
	Type ChangeType
	New  *Order
	Old  *Order
}

// OrderID returns the identifier the change applies to.
func (c OrderChange) OrderID() string {
	if c.New != nil {
		return c.New.ID
	}
	if c.Old != nil {
		return c.Old.ID
	}
	return ""
}
