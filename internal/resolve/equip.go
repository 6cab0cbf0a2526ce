package resolve

import "github.com/sanguo/resolver/internal/log"

func init() {
	registerResolver("UseEquipWeapon", SubtypeWeapon, newEquipResolver)
	registerResolver("UseEquipArmor", SubtypeArmor, newEquipResolver)
	registerResolver("UseEquipOffenseHorse", SubtypeOffenseHorse, newEquipResolver)
	registerResolver("UseEquipDefenseHorse", SubtypeDefenseHorse, newEquipResolver)
}

func newEquipResolver(action *ActionDescriptor, card *Card) Resolver {
	return &EquipResolver{Source: action.Source, Card: card}
}

// EquipResolver attaches an equip card to its owner's equipment zone,
// replacing and discarding whatever of the same subtype was equipped
// there before (spec §4.5's deferred move strategy: the card never
// touches the discard pile on its way in). TransferWeapon below applies
// the same single-slot replace rule when Borrow Knife (targeted_trick.go)
// moves a weapon to a new owner.
type EquipResolver struct {
	Source Seat
	Card   *Card
}

func (r *EquipResolver) Name() string { return "Equip" }

func (r *EquipResolver) Resolve(ctx *ResolutionContext) error {
	p := ctx.Game.Player(r.Source)
	if p == nil {
		return errInvalidTarget(r.Source, "no such seat")
	}

	p.Hand.remove(r.Card.ID)

	if old := p.equipmentOfSubtype(r.Card.Subtype()); old != nil {
		p.Equipment.remove(old.ID)
		ctx.Game.DiscardPile.push(old)
	}

	p.Equipment.push(r.Card)
	return nil
}

// TransferWeapon moves an equipped weapon from its current owner directly
// to a new owner's equipment zone (spec §4.6's Borrow Knife flow), without
// passing through the discard pile, and logs the transfer.
func TransferWeapon(ctx *ResolutionContext, weapon *Card, from, to Seat) error {
	fromPlayer := ctx.Game.Player(from)
	toPlayer := ctx.Game.Player(to)
	if fromPlayer == nil || toPlayer == nil {
		return errInvalidState("unknown seat in weapon transfer")
	}
	if fromPlayer.Equipment.remove(weapon.ID) == nil {
		return errCardNotFound(weapon.ID)
	}
	if old := toPlayer.equipmentOfSubtype(weapon.Subtype()); old != nil {
		toPlayer.Equipment.remove(old.ID)
		ctx.Game.DiscardPile.push(old)
	}
	toPlayer.Equipment.push(weapon)
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewWeaponTransferredEvent(ctx.Game.Turn, int(from), int(to), weapon.Def.Name))
	}
	return nil
}
