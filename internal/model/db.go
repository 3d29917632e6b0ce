package model

// Db is the aggregate root: every user, board and task lives in one JSON
// document that is loaded and saved as a unit. Version is a monotonically
// increasing counter used for compare-and-swap saves; a save only succeeds
// when the persisted version still matches the one that was loaded, so two
// concurrent load→mutate→save cycles cannot silently overwrite each other.
type Db struct {
	Version uint64  `json:"version"`
	Users   []User  `json:"users"`
	Boards  []Board `json:"boards"`
	Tasks   []Task  `json:"tasks"`
}

// FindUser returns a pointer into Users for the given id, or nil.
func (d *Db) FindUser(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindBoard returns a pointer into Boards for the given id, or nil.
func (d *Db) FindBoard(id string) *Board {
	for i := range d.Boards {
		if d.Boards[i].ID == id {
			return &d.Boards[i]
		}
	}
	return nil
}

// FindTask returns a pointer into Tasks for the given id, or nil.
func (d *Db) FindTask(id string) *Task {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return &d.Tasks[i]
		}
	}
	return nil
}
