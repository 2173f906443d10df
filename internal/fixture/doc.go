// Package fixture loads YAML seed datasets and applies them to a store.
//
// A dataset lists records per entity. Records name each other by ref
// instead of by id, so a file can be written before any id exists:
//
//	curators:
//	  - ref: ivanova
//	    name: Ivanova Maria
//	groups:
//	  - ref: iu7-11
//	    curator: ivanova
//	    name_number: IU7-11
//
// Every ref is resolved before the first write; a dataset with a dangling
// or duplicate ref is rejected without touching the store.
package fixture
