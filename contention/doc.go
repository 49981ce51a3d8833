// Package contention simulates processors competing for shared memory
// modules over discrete cycles.
//
// Every cycle each processor tries the module it is waiting for. A free module
// serves the first processor that asks for it; everyone else asking for the
// same module waits. Processors that waited are moved in front of the ones
// that were served, so they get priority in the next cycle. The simulation
// reports w_bar, the average over all processors of the cycles-per-grant
// ratio minus one, once it stops changing or the cycle budget runs out.
//
// A simulation is built with a Builder:
//
//	s, err := contention.MakeBuilder().
//		WithProcessors(8).
//		WithModules(4).
//		WithDistribution(contention.DistributionNormal).
//		WithSeed(1).
//		Build("run-1")
//	if err != nil {
//		return err
//	}
//
//	result, err := s.Run()
package contention
