// Package symposium simulates mutual-exclusion contention at a dining
// table: N philosophers alternate between thinking and eating, and eating
// requires exclusive acquisition of the two chopsticks adjacent to a seat.
//
// The core is the parity-ordered acquisition protocol that keeps the ring
// deadlock-free; presentation (console colours, journal, tracing) consumes
// the table's lifecycle event stream and stays outside the core.
//
// End-users typically interact via the Service façade exposed by this
// package:
//
//	srv, _ := symposium.New(symposium.WithSeats(5))
//	rt := srv.Runtime()
//	_ = rt.Start(ctx)
//	defer rt.Shutdown()
//
// For more details see the individual sub-packages.
package symposium
