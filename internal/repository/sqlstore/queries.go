package sqlstore

// Queries holds the three statement templates the guest repository runs.
// Templates must bind values as parameters, in the argument order documented on each field.
type Queries struct {
	// FindByNameAndAddress takes (address, lastName) and selects at most one guest row.
	FindByNameAndAddress string
	// FindByID takes (id).
	FindByID string
	// UpdateAttendance takes (numAttending, isAttending, id).
	UpdateAttendance string
}

// PostgresQueries are the default templates for the postgres dialect.
var PostgresQueries = Queries{
	FindByNameAndAddress: `
		SELECT id, last_name, address, max_attending, num_attending, is_attending
		FROM guests
		WHERE address = $1 AND strpos(lower(last_name), lower($2)) > 0
		ORDER BY id
		LIMIT 1
	`,
	FindByID: `
		SELECT id, last_name, address, max_attending, num_attending, is_attending
		FROM guests
		WHERE id = $1
	`,
	UpdateAttendance: `
		UPDATE guests
		SET num_attending = $1, is_attending = $2
		WHERE id = $3
	`,
}

// SQLiteQueries are the default templates for the sqlite dialect.
// They rely on the ulower function registered by OpenSQLite.
var SQLiteQueries = Queries{
	FindByNameAndAddress: `
		SELECT id, last_name, address, max_attending, num_attending, is_attending
		FROM guests
		WHERE address = ? AND instr(ulower(last_name), ulower(?)) > 0
		ORDER BY id
		LIMIT 1
	`,
	FindByID: `
		SELECT id, last_name, address, max_attending, num_attending, is_attending
		FROM guests
		WHERE id = ?
	`,
	UpdateAttendance: `
		UPDATE guests
		SET num_attending = ?, is_attending = ?
		WHERE id = ?
	`,
}

// Override returns q with every non-empty field of o replacing the default.
func (q Queries) Override(o Queries) Queries {
	if o.FindByNameAndAddress != "" {
		q.FindByNameAndAddress = o.FindByNameAndAddress
	}
	if o.FindByID != "" {
		q.FindByID = o.FindByID
	}
	if o.UpdateAttendance != "" {
		q.UpdateAttendance = o.UpdateAttendance
	}
	return q
}
