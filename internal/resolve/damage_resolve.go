package resolve

import "github.com/sanguo/resolver/internal/log"

// DamageResolver applies one DamageDescriptor (spec §4.10): publish
// EventBeforeDamage so skills can prevent or modify it, apply the net
// amount to the effective target's health, publish EventAfterDamage, and
// push a DyingResolver if health dropped to zero or below.
type DamageResolver struct {
	Damage *DamageDescriptor
}

func (r *DamageResolver) Name() string { return "Damage" }

func (r *DamageResolver) Resolve(ctx *ResolutionContext) error {
	target := ctx.Game.Player(r.Damage.EffectiveTarget())
	if target == nil {
		return errInvalidTarget(r.Damage.EffectiveTarget(), "no such seat")
	}
	if !target.Alive {
		return errTargetNotAlive(target.Seat)
	}

	before := &Event{Kind: EventBeforeDamage, Source: r.Damage.Source, Target: target.Seat, Damage: r.Damage}
	ctx.Publish(before)
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewBeforeDamageEvent(ctx.Game.Turn, int(r.Damage.Source), int(target.Seat), r.Damage.Amount))
	}
	if before.Prevented || r.Damage.prevented {
		return nil
	}

	amount := r.Damage.Amount + before.Modification
	if amount < 0 {
		amount = 0
	}

	ctx.Publish(&Event{Kind: EventDamageCreated, Source: r.Damage.Source, Target: target.Seat, Damage: r.Damage})
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewDamageCreatedEvent(ctx.Game.Turn, int(r.Damage.Source), int(target.Seat), amount))
	}

	previous := target.CurrentHealth
	target.CurrentHealth -= amount
	if target.CurrentHealth < 0 {
		target.CurrentHealth = 0
	}
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewDamageAppliedEvent(ctx.Game.Turn, int(target.Seat), previous, target.CurrentHealth, amount))
	}

	ctx.Publish(&Event{Kind: EventDamageApplied, Source: r.Damage.Source, Target: target.Seat, Damage: r.Damage})

	ctx.Publish(&Event{Kind: EventDamageResolved, Source: r.Damage.Source, Target: target.Seat, Damage: r.Damage})
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewDamageResolvedEvent(ctx.Game.Turn, int(target.Seat), amount))
	}

	if target.CurrentHealth <= 0 {
		ctx.Stack.Push(&DyingResolver{Seat: target.Seat, Killer: r.Damage.Source})
	}

	ctx.Publish(&Event{Kind: EventAfterDamage, Source: r.Damage.Source, Target: target.Seat, Damage: r.Damage})
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewAfterDamageEvent(ctx.Game.Turn, int(target.Seat)))
	}
	return nil
}

// RecoverResolver restores health to a player, capped at max health
// (spec §4.10's rescue path and any other recovery source).
type RecoverResolver struct {
	Seat   Seat
	Amount int
}

func (r *RecoverResolver) Name() string { return "Recover" }

func (r *RecoverResolver) Resolve(ctx *ResolutionContext) error {
	p := ctx.Game.Player(r.Seat)
	if p == nil {
		return errInvalidTarget(r.Seat, "no such seat")
	}
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewBeforeRecoverEvent(ctx.Game.Turn, int(r.Seat), r.Amount))
	}
	previous := p.CurrentHealth
	p.CurrentHealth += r.Amount
	if p.CurrentHealth > p.MaxHealth {
		p.CurrentHealth = p.MaxHealth
	}
	if p.CurrentHealth > 0 {
		p.Alive = true
	}
	if ctx.Logger != nil {
		ctx.Logger.Emit(log.NewAfterRecoverEvent(ctx.Game.Turn, int(r.Seat), previous, p.CurrentHealth))
	}
	return nil
}
