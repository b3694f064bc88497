package entity

// Projectile is a bullet travelling in a straight line.
// Both player shots and spawner bullets use this type.
type Projectile struct {
	Position Vec2
	Velocity Vec2
}

// NewProjectile creates a projectile at pos moving with vel (pixels/sec)
func NewProjectile(pos, vel Vec2) Projectile {
	return Projectile{Position: pos, Velocity: vel}
}

// NewAimedProjectile creates a projectile leaving from toward target.
// Speed grows with aim distance: distance*factor + base.
func NewAimedProjectile(from, target Vec2, factor, base float64) Projectile {
	aim := target.Sub(from)
	speed := aim.Length()*factor + base
	return Projectile{
		Position: from,
		Velocity: aim.Normalized().Scale(speed),
	}
}

// Advance moves the projectile by velocity*dt
func (p *Projectile) Advance(dt float64) {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
}

// Hitbox returns the hit region for a projectile sprite of the given size
func (p Projectile) Hitbox(size Vec2) Rect {
	return Rect{X: p.Position.X, Y: p.Position.Y, Width: size.X, Height: size.Y}
}

// Center returns the hit region center for the given size
func (p Projectile) Center(size Vec2) Vec2 {
	return p.Hitbox(size).Center()
}
