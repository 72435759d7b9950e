// Package transport defines the collective and point-to-point messaging
// primitives the distributed octree pipeline is built on (spec's "Required
// transport primitives"), and provides an in-process implementation, Null
// and InProcess, that simulates P ranks as goroutines.
//
// The real message-passing layer is explicitly out of scope for this
// library (it is "consumed as a typed collective+point-to-point API");
// InProcess exists so every pipeline stage is independently testable
// without a real network or a cgo MPI binding, and so the benchmark CLI
// (cmd/octreebench) can demonstrate the full pipeline in a single process.
//
// Every method takes a context.Context. In InProcess, Send and ReceiveAny
// return ctx.Err() when the context ends while they are blocked. The
// collectives (AllGather, ScanSum, Broadcast, Barrier) check the context
// only after their rendezvous: they still block until every rank has
// arrived, and a cancelled context does not release them early.
package transport
