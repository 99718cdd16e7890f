// Package bulk validates many independent documents concurrently through a
// channel pipeline.
//
// A batch flows ToChan -> Run -> Finally/Collect. Run fans the documents out
// over a fixed pool of workers that all share one validator; because
// validators are pure and stateless this needs no synchronization beyond the
// channels themselves. The context cancels the batch between documents, it
// never interrupts a single validation in flight.
package bulk
