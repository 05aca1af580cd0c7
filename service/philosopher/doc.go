// Package philosopher hosts the actors of the simulation.  Every seat at
// the table runs one goroutine cycling thinking -> hungry -> eating, with
// chopstick acquisition ordered by seat parity so the ring can never reach
// the symmetric all-wait deadlock.
package philosopher
