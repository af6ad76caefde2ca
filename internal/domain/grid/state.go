package grid

import "dino-infographic/internal/platform/util"

type State string

const (
	StateUninitialized State = "uninitialized"
	StateInitialized   State = "initialized"
)

// Machine pasa de uninitialized a initialized una sola vez. No hay vuelta
// atrás: el estado final dura lo que dure la sesión.
type Machine struct {
	state      State
	transition func(build func()) bool
}

func NewMachine() *Machine {
	m := &Machine{state: StateUninitialized}
	m.transition = util.Once(func(build func()) bool {
		if build != nil {
			build()
		}
		m.state = StateInitialized
		return true
	})
	return m
}

// Initialize corre build solo en la primera llamada y devuelve true solo
// en esa llamada.
func (m *Machine) Initialize(build func()) bool {
	return m.transition(build)
}

func (m *Machine) State() State { return m.state }
