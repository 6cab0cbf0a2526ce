package resolve

// Player holds one seat's state: health, zones, and per-turn flags.
// Invariant: CurrentHealth <= MaxHealth; Alive <=> CurrentHealth > 0,
// except transiently during a dying flow that has already restored
// health above 0 but whose dying resolver has not yet cleared (spec §3).
type Player struct {
	Seat          Seat
	MaxHealth     int
	CurrentHealth int
	Alive         bool

	Hand      *Zone
	Equipment *Zone
	Judgement *Zone

	Flags map[string]any
}

// NewPlayer constructs a fresh player at full health.
func NewPlayer(seat Seat, maxHealth int) *Player {
	return &Player{
		Seat:          seat,
		MaxHealth:     maxHealth,
		CurrentHealth: maxHealth,
		Alive:         true,
		Hand:          NewZone(ZoneHand, seat, true),
		Equipment:     NewZone(ZoneEquipment, seat, false),
		Judgement:     NewZone(ZoneJudgement, seat, false),
		Flags:         make(map[string]any),
	}
}

// EquippedWeapon returns the equipped weapon card, or nil.
func (p *Player) EquippedWeapon() *Card {
	return p.equipmentOfSubtype(SubtypeWeapon)
}

// EquippedArmor returns the equipped armor card, or nil.
func (p *Player) EquippedArmor() *Card {
	return p.equipmentOfSubtype(SubtypeArmor)
}

func (p *Player) equipmentOfSubtype(sub Subtype) *Card {
	for _, c := range p.Equipment.Cards() {
		if c.Subtype() == sub {
			return c
		}
	}
	return nil
}

// HealthDeficit returns how much health is missing from max.
func (p *Player) HealthDeficit() int {
	d := p.MaxHealth - p.CurrentHealth
	if d < 0 {
		return 0
	}
	return d
}

// ResetTurnFlags clears the per-turn tag map (equivalent to the spec's
// "generic flag map (per-turn tags)").
func (p *Player) ResetTurnFlags() {
	p.Flags = make(map[string]any)
}
