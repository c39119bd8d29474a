package main

import "github.com/charmbracelet/harmonica"

// lookFrequency is the angular frequency of the velocity spring. With
// critical damping an impulse v0 travels v0*2/lookFrequency seconds' worth of
// frames before it settles.
const lookFrequency = 4.0

// LookAxis tracks the angular velocity of one look axis with spring decay.
type LookAxis struct {
	Velocity  float64 // radians per frame
	velSpring harmonica.Spring
	velAccel  float64 // spring velocity of Velocity itself
	glide     float64 // frames an impulse spreads over
}

// NewLookAxis creates an axis with a critically damped harmonica spring.
func NewLookAxis(fps int) LookAxis {
	return LookAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), lookFrequency, 1.0),
		glide:     float64(fps) * 2 / lookFrequency,
	}
}

// Push adds an impulse that, once decayed, has turned the axis by about angle
// radians.
func (a *LookAxis) Push(angle float64) {
	a.Velocity += angle / a.glide
}

// Update returns this frame's rotation and decays the velocity toward 0.
func (a *LookAxis) Update() float64 {
	step := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return step
}

// LookState holds the camera's yaw and pitch velocities.
type LookState struct {
	Yaw, Pitch LookAxis
	fps        int
}

func NewLookState(fps int) *LookState {
	return &LookState{
		Yaw:   NewLookAxis(fps),
		Pitch: NewLookAxis(fps),
		fps:   fps,
	}
}

// Update advances both springs and returns the yaw and pitch deltas for this
// frame.
func (l *LookState) Update() (yaw, pitch float64) {
	return l.Yaw.Update(), l.Pitch.Update()
}

// Reset stops all rotation.
func (l *LookState) Reset() {
	l.Yaw = NewLookAxis(l.fps)
	l.Pitch = NewLookAxis(l.fps)
}
