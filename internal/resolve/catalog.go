package resolve

// BuiltinCatalog is a small, fixed CardDef table for the cards the
// resolver core ships resolvers for natively. The concrete card catalog
// is an external collaborator (spec §1) in a full deployment; this table
// exists so the CLI scenario runner and tests have a real catalog to load
// scenario YAML against without depending on one.
var BuiltinCatalog = builtinCatalog{defs: map[string]*CardDef{
	"slash":             {DefID: "slash", Name: "Slash", Category: CategoryBasic, Subtype: SubtypeSlash},
	"peach":             {DefID: "peach", Name: "Peach", Category: CategoryBasic, Subtype: SubtypePeach},
	"dodge":             {DefID: "dodge", Name: "Dodge", Category: CategoryBasic, Subtype: SubtypeDodge},
	"nullification":     {DefID: "nullification", Name: "Nullification", Category: CategoryTrick, Subtype: SubtypeNullification},
	"duel":              {DefID: "duel", Name: "Duel", Category: CategoryTrick, Subtype: SubtypeDuel},
	"dismantle":         {DefID: "dismantle", Name: "Dismantle", Category: CategoryTrick, Subtype: SubtypeDismantle},
	"snatch":            {DefID: "snatch", Name: "Snatch", Category: CategoryTrick, Subtype: SubtypeSnatch},
	"harvest":           {DefID: "harvest", Name: "Harvest", Category: CategoryTrick, Subtype: SubtypeHarvest},
	"borrow_knife":      {DefID: "borrow_knife", Name: "Borrow Knife", Category: CategoryTrick, Subtype: SubtypeBorrowKnife},
	"lightning_bolt":    {DefID: "lightning_bolt", Name: "Lightning Bolt", Category: CategoryTrick, Subtype: SubtypeLightningBolt},
	"barbarian_invasion": {DefID: "barbarian_invasion", Name: "Barbarian Invasion", Category: CategoryTrick, Subtype: SubtypeBarbarianInvasion},
	"arrows_volley":     {DefID: "arrows_volley", Name: "Arrows Volley", Category: CategoryTrick, Subtype: SubtypeArrowsVolley},
	"amused_distraction": {DefID: "amused_distraction", Name: "Amused Distraction", Category: CategoryTrick, Subtype: SubtypeAmusedDistraction},
	"weapon":            {DefID: "weapon", Name: "Weapon", Category: CategoryEquip, Subtype: SubtypeWeapon},
	"armor":             {DefID: "armor", Name: "Armor", Category: CategoryEquip, Subtype: SubtypeArmor},
	"offense_horse":     {DefID: "offense_horse", Name: "Offense Horse", Category: CategoryEquip, Subtype: SubtypeOffenseHorse},
	"defense_horse":     {DefID: "defense_horse", Name: "Defense Horse", Category: CategoryEquip, Subtype: SubtypeDefenseHorse},
}}

type builtinCatalog struct {
	defs map[string]*CardDef
}

// Lookup implements scenario.CardCatalog without internal/scenario having
// to import internal/resolve's unexported fields.
func (c builtinCatalog) Lookup(defID string) (*CardDef, bool) {
	d, ok := c.defs[defID]
	return d, ok
}
