// Package geometry2 moves stamped data between coordinate frames.
//
// The library pairs a transform facade with a type-keyed registry, so any
// Go type that carries a frame and a timestamp can be looked up, rigidly
// transformed, and converted into other registered types.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	geometry2/           Root package documentation
//	├── tf/              Buffer facade tying transform sources to the registry
//	├── msg/             Message types with frame and time headers
//	├── registry/        Type-keyed apply and conversion registries
//	├── convert/         Conversion dispatch between registered types
//	├── geomsg/          Rigid transform math for the message types
//	├── r3msg/           gonum-backed vector and pose types
//	├── static/          Static transform source and YAML scene loading
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Declare a frame, stamp a value, and move it:
//
//	reg := registry.New()
//	geomsg.Register(reg)
//
//	src := static.New()
//	src.Set(msg.TransformStamped{
//	    Header:       msg.Header{FrameID: "base_link"},
//	    ChildFrameID: "laser",
//	    Transform:    msg.IdentityTransform(),
//	})
//
//	buf := tf.NewWithRegistry(src, reg)
//	hit := tf.Stamp(msg.PointStamped{Point: msg.Point{X: 1.5}}, "laser", time.Now())
//	onBody, err := tf.TransformAs[msg.PointStamped](ctx, buf, hit, "base_link", time.Second)
//
// # Type Conversion
//
// Conversion between registered types resolves in a fixed order: an exact
// direct entry, then a copy for identical types, then a two-hop bridge
// through the canonical message form. A direct entry always wins, so a
// pair can be special-cased without touching its bridge halves.
//
// # Transform Sources
//
// A Source answers transform lookups. The static source serves exactly the
// pairs it was given, never composing frames across pairs, and blocks a
// lookup until the pair is declared or the timeout expires. Other sources
// can plug in behind the same facade by implementing tf.Source, embedding
// tf.UnimplementedSource for the lookups they cannot answer.
//
// # Thread Safety
//
// Registries, static sources, and buffers are safe for concurrent use.
// Transform and conversion functions never mutate their inputs; results
// share no memory with the value passed in.
package geometry2
