package simulation

// Move displaces the player by Speed along every held axis. Axes are
// independent, so diagonals cover more ground, and nothing clamps the
// player to the canvas.
func (s *State) Move(in Input) {
	p := &s.Player
	if in.Up {
		p.Pos.Y -= p.Speed
	}
	if in.Down {
		p.Pos.Y += p.Speed
	}
	if in.Left {
		p.Pos.X -= p.Speed
	}
	if in.Right {
		p.Pos.X += p.Speed
	}
}

// Fire spawns a bullet at the player heading straight up. A dead player
// cannot fire; the call is then a silent no-op.
func (s *State) Fire() []Effect {
	if !s.Player.Alive {
		return nil
	}
	s.Bullets = append(s.Bullets, Bullet{
		Pos: s.Player.Pos,
		Vel: Vec{X: 0, Y: -BulletSpeed},
	})
	return []Effect{PlayCue(CueShoot)}
}

// Step advances the world by one frame and returns the effects the frame
// driver should carry out.
func (s *State) Step(in Input) []Effect {
	var effects []Effect

	s.Move(in)

	for i := range s.Bullets {
		s.Bullets[i].Pos = s.Bullets[i].Pos.Add(s.Bullets[i].Vel)
	}

	// Decide removals first, then compact once.
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		hit := false
		for i := range s.Enemies {
			e := &s.Enemies[i]
			if !Touches(b.Pos, e) {
				continue
			}
			killed := e.ApplyDamage(s.combat.BulletDamage)
			effects = append(effects, PlayCue(CueHit))
			if killed {
				effects = append(effects, Effect{Kind: EffectEnemyDown, Enemy: i})
			}
			hit = true
			break
		}
		if hit || b.Pos.Y < 0 {
			continue
		}
		kept = append(kept, b)
	}
	clear(s.Bullets[len(kept):])
	s.Bullets = kept

	for i := range s.Enemies {
		e := &s.Enemies[i]
		// The player's size is the threshold for contact.
		if !e.Alive || !Touches(e.Pos, &s.Player) {
			continue
		}
		if s.Player.ApplyDamage(s.combat.ContactDamage) {
			effects = append(effects, Effect{Kind: EffectPlayerDown})
		}
	}

	s.Frame++
	return effects
}
