// Package pantry tracks ingredient quantities across named storages.
//
// The core types are:
//   - Unit and Measurement: a closed set of mass and volume units, with exact
//     decimal conversion between units of the same kind, rounded to 2 decimals.
//   - Ingredient: a batch with a measurement, a price per standard unit
//     (kilogram or liter) and an expiry date. Batches with the same name and
//     expiry merge, batches with different expiry dates are kept apart.
//   - Ledger: the batches of one storage, with expiry queries and valuation.
//   - Inventory: every storage, the current storage and a navigation history,
//     much like a working directory.
//
// State is in memory only. The `pantry` command line tool exposes it through
// an interactive shell, see the shell package.
package pantry
