package integrators

import "github.com/san-kum/musclelab/internal/dynamo"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, drive dynamo.Drive, t float64, dt float64) dynamo.State {
	dx := dyn.Derive(x, drive.U(t), t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
