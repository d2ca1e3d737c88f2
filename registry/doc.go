// Package registry holds the type-keyed function tables that drive
// transforming and converting geometric values.
//
// A Registry owns four independent namespaces:
//
//   - apply: how to move a value of some type into another frame, given a
//     transform (one entry per type)
//   - to-msg: how to turn a value into its canonical message form
//   - from-msg: how to turn a canonical message back into a concrete type
//   - direct: how to convert straight between an ordered pair of types,
//     skipping the canonical form
//
// Keys are reflect.Type values compared by identity: T and *T are distinct
// keys, and no assignability or interface satisfaction is consulted.
// Registration is insert-or-overwrite; the last write for a key wins.
// Lookups for an absent key return an error carrying the key, never a
// default.
//
// # Registering support for a type
//
// Extension packages register their types against a registry at startup,
// typically the process-wide Default(). The typed helpers box and unbox for
// you:
//
//	registry.RegisterApply[lidar.Sweep](reg, transformSweep)
//	registry.RegisterToMsg[lidar.Sweep, msg.PointCloud](reg, sweepToCloud)
//	registry.RegisterFromMsg[lidar.Sweep, msg.PointCloud](reg, cloudToSweep)
//	registry.RegisterDirect[lidar.Sweep, grid.Map](reg, sweepToGrid)
//
// Tests and tools that need isolation build their own with New instead of
// touching Default().
package registry
