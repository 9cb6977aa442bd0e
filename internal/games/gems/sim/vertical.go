package sim

// groundEpsilon absorbs float error when an airborne body meets the ground.
const groundEpsilon = 1e-4

// jump launches a grounded body. Ignored once the session is over.
func (s *Simulation) jump() {
	if !s.running || !s.body.Grounded {
		return
	}
	s.body.Grounded = false
	s.body.VZ = s.cfg.Jump.LaunchVelocity
}

// ground is the support under the body; pass-through mode stands on the floor.
func (s *Simulation) ground() float64 {
	if s.ghost {
		return 0
	}
	return s.world.SupportHeight(s.body.X, s.body.Y, 2*s.cfg.Body.Radius)
}

// integrateVertical advances the grounded/airborne machine by dt.
func (s *Simulation) integrateVertical(dt float64) {
	b := &s.body
	rest := s.ground() + s.cfg.Body.Radius

	if b.Grounded {
		b.Z = rest
		return
	}

	b.VZ += s.cfg.Jump.Gravity * dt
	b.Z += b.VZ * dt
	if b.Z <= rest+groundEpsilon {
		b.Z = rest
		b.VZ = 0
		b.Grounded = true
	}
}

// settle lifts the body onto anything that appeared under it this tick.
func (s *Simulation) settle() {
	rest := s.ground() + s.cfg.Body.Radius
	if s.body.Z >= rest {
		return
	}
	s.body.Z = rest
	if s.body.VZ <= 0 {
		s.body.VZ = 0
		s.body.Grounded = true
	}
}
