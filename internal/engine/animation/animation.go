// Package animation drives time-based updates of layer objects.
package animation

// Animation advances by a time step in seconds.
type Animation interface {
	Name() string
	Update(dt float32)
}

// Engine accepts animations to drive.
type Engine interface {
	Register(a Animation)
}

// Loop is a minimal Engine that steps every registered animation.
type Loop struct {
	animations []Animation
	elapsed    float32
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Register implements Engine.
func (l *Loop) Register(a Animation) {
	if a == nil {
		return
	}
	l.animations = append(l.animations, a)
}

// Update steps all animations by dt.
func (l *Loop) Update(dt float32) {
	l.elapsed += dt
	for _, a := range l.animations {
		a.Update(dt)
	}
}

// Elapsed returns the accumulated time.
func (l *Loop) Elapsed() float32 {
	return l.elapsed
}

// Len returns the number of registered animations.
func (l *Loop) Len() int {
	return len(l.animations)
}

// Find returns the first animation named name.
func (l *Loop) Find(name string) Animation {
	for _, a := range l.animations {
		if a.Name() == name {
			return a
		}
	}
	return nil
}
