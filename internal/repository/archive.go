package repository

import "database/sql"

// Archive is the complete archive reader handed to the extraction core: it
// composes the array, event, and das repositories over one database handle.
type Archive struct {
	*ArrayRepository
	*EventRepository
	*DASRepository
}

// NewArchive creates the archive reader over an open archive database.
func NewArchive(db *sql.DB) *Archive {
	return &Archive{
		ArrayRepository: NewArrayRepository(db),
		EventRepository: NewEventRepository(db),
		DASRepository:   NewDASRepository(db),
	}
}
