package game

import "testing"

func TestAutopilot_Decide(t *testing.T) {
	tests := []struct {
		name string
		opts []SimOption
		want Command
	}{
		{"safe and armed holds", []SimOption{WithPlayerAmmo(1)}, CmdNone},
		{"threat with ammo fires", []SimOption{WithPlayerAmmo(1), WithEnemyAt(2, 560, 0.5)}, CmdFire},
		{"threat without ammo dodges left", []SimOption{WithEnemyAt(2, 560, 0.5)}, CmdMoveLeft},
		{"blocked left dodges right", []SimOption{
			WithEnemyAt(2, 560, 0.5), WithEnemyAt(1, 580, 0.5),
		}, CmdMoveRight},
		{"passed enemy is ignored", []SimOption{WithEnemyAt(2, 720, 0.5)}, CmdNone},
		{"chases ammo", []SimOption{WithAmmoAt(4, 0, 0.3)}, CmdMoveRight},
		{"does not chase into danger", []SimOption{WithAmmoAt(0, 0, 0.3), WithEnemyAt(1, 560, 0.5)}, CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newQuietSim(t, tt.opts...)
			got := NewAutopilot().Decide(ts.Engine)
			if got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAutopilot_TrustsMissileInFlight(t *testing.T) {
	ts := newQuietSim(t, WithPlayerAmmo(2), WithEnemyAt(2, 560, 0.5),
		WithEnemyAt(1, 560, 0.5), WithEnemyAt(3, 560, 0.5))
	a := NewAutopilot()
	if c := a.Decide(ts.Engine); c != CmdFire {
		t.Fatalf("expected fire, got %s", c)
	}
	ts.Apply(CmdFire)
	if c := a.Decide(ts.Engine); c != CmdNone {
		t.Fatalf("expected to hold behind the missile, got %s", c)
	}
}

func TestAutopilot_DeadPlayerDoesNothing(t *testing.T) {
	ts := newQuietSim(t, WithEnemyAt(2, 650, 0))
	ts.RunFrames(1)
	if c := NewAutopilot().Decide(ts.Engine); c != CmdNone {
		t.Fatalf("expected no command after death, got %s", c)
	}
}
