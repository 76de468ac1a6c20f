// Package store provides the storage abstraction layer for citas.
//
// The package defines the [Store] interface which abstracts all appointment
// persistence, allowing different storage backends to be used
// interchangeably. Two backends are available and selected at runtime by
// the database.driver setting:
//   - sqlite (default): a single citas table, see package sqlite
//   - bolt: a BoltDB file with an appointments bucket and a slots index
//
// # Store Interface
//
// The [Store] interface defines methods for:
//   - Exact slot lookups (FindByDateTime)
//   - Appending appointments (Insert)
//   - Full scans (ListAll, ListAppointments)
//
// Appointments are never updated or deleted.
//
//	s, err := store.Open(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
package store
