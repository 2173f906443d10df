// Package model defines the academic-records entities and report rows.
//
// This package contains type definitions only. Every other internal package
// imports model; model imports nothing internal.
//
// Records are plain values. They carry no connection back to storage and are
// only produced or persisted through the store package. All JSON tags use
// snake_case and match the column names of the underlying tables.
package model
