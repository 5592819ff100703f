package verlet

// StepsPerSecond is the number of simulation steps that make up one second
// of simulated time.
const StepsPerSecond = 60

// TimeStep is the fixed duration of a single simulation step, in seconds.
//
// Every conversion between a rate and a per-step displacement goes through
// this constant: velocity times TimeStep is the displacement one Integrate
// applies, angular velocity times TimeStep is the per-step rotation.
const TimeStep float64 = 1.0 / StepsPerSecond
