// Package hashes holds the dictionaries that turn name hashes back into
// strings. A Resolver keeps five tables apart by role:
//
//	Fields   struct field names                (FNV-1a 32)
//	Entries  entry names and link targets      (FNV-1a 32)
//	Types    struct and entry type names       (FNV-1a 32)
//	Hashes   generic hash values               (FNV-1a 32)
//	Paths    file references                   (xxHash64)
//
// Tables are filled once from "<hex-hash> <string>" text files before any
// decode runs and are only read afterwards, so one Resolver can serve many
// concurrent decodes.
package hashes
