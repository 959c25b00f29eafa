package chat

import "github.com/samber/lo"

// Conversations is the ordered, deduplicated list of users the actor has an
// active room with. Index 0 is the most recently active entry. SelectedID
// points at the current conversation; zero means none is selected and the
// panel shows its "choose a conversation" placeholder.
type Conversations struct {
	Entries    []User
	SelectedID int
}

// Selected returns the currently selected entry, if any.
func (c Conversations) Selected() (User, bool) {
	if c.SelectedID == 0 {
		return User{}, false
	}
	return c.Find(c.SelectedID)
}

// Find returns the entry with the given user id.
func (c Conversations) Find(id int) (User, bool) {
	return lo.Find(c.Entries, func(u User) bool { return u.ID == id })
}

// Select points the panel at the given entry. Selecting a user that is not
// part of the list is ignored: the selection must never dangle.
func (c Conversations) Select(id int) Conversations {
	if _, ok := c.Find(id); !ok {
		return c
	}
	c.SelectedID = id
	return c
}

// Promote removes any existing entry with the same id and re-inserts the
// updated user at index 0 with the given last message. Used after a
// successful send and after a new room is created, so the list stays in
// most-recently-active order. Removal-then-insert is what keeps ids unique.
func (c Conversations) Promote(u User, lastMessage string) Conversations {
	u.LastMessage = lastMessage
	rest := lo.Filter(c.Entries, func(e User, _ int) bool { return e.ID != u.ID })
	c.Entries = append([]User{u}, rest...)
	return c
}

// Remove deletes the entry with the given id. If the removed entry was
// selected, the selection is cleared; selecting a replacement is the
// caller's decision, not this type's.
func (c Conversations) Remove(id int) Conversations {
	c.Entries = lo.Filter(c.Entries, func(e User, _ int) bool { return e.ID != id })
	if c.SelectedID == id {
		c.SelectedID = 0
	}
	return c
}
