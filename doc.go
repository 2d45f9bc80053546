// Package wrap provides column adapters that let application types be stored through
// database/sql when the database has no native representation for them.
//
// An adapter is described by four types:
//
//   - D, the domain type the application works with (uuid.UUID, uint32, ...)
//   - I, an intermediate type the backend already knows how to encode ([]byte, int32, ...)
//   - C, a zero-size Conversion holding the D -> I and I -> D bodies
//   - K, a zero-size backend Codec for I on one wire type
//
// # Basic Usage
//
//	type uuidBytes struct{}
//
//	func (uuidBytes) ToIntermediate(id uuid.UUID) []byte { return id[:] }
//	func (uuidBytes) FromIntermediate(b []byte) (uuid.UUID, error) { return uuid.FromBytes(b) }
//
//	type ID = wrap.As[uuid.UUID, []byte, uuidBytes, sqlite.Blob]
//	type OptionalID = wrap.AsOption[uuid.UUID, []byte, uuidBytes, sqlite.Blob]
//
//	_, err := db.ExecContext(ctx, "INSERT INTO foo (id, opt_id) VALUES (?, ?)",
//	    ID{V: id}, wrap.OptionOf[uuid.UUID, []byte, uuidBytes, sqlite.Blob](nil))
//
//	var got ID
//	err = db.QueryRowContext(ctx, "SELECT id FROM foo").Scan(&got)
//
// As is used for NOT NULL columns and AsOption for nullable ones. A mismatch between the
// intermediate type and the codec is a compile error.
//
// # Errors
//
// Scan returns backend decode errors unchanged and never runs the conversion for them.
// A conversion that rejects a well-formed intermediate value is reported as a
// *ConversionError wrapping the conversion's own error.
//
// # Generated adapters
//
// The generator package and the wrapgen command emit a package holding As, AsOption and
// the conversion type from a short declaration, for callers who prefer not to write
// the conversion type by hand.
package wrap
