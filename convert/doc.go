// Package convert dispatches conversions between registered geometric
// representations.
//
// ToType resolves a conversion in a fixed order:
//
//  1. a direct conversion registered for exactly (source type, target type)
//  2. if source and target are the same type, an independent deep copy
//  3. the two-hop bridge: source's to-msg conversion, then the target's
//     from-msg conversion
//  4. otherwise an unsupported-type error naming both types
//
// A registered direct conversion always wins, even over the same-type copy,
// so representations can install cheaper or lossier paths deliberately.
// Step 2 never aliases: slices, maps, and pointers reachable through
// exported fields are duplicated.
//
// The dispatcher consults the registry on every call. It holds no state of
// its own, so concurrent use is as safe as the registry backing it.
package convert
