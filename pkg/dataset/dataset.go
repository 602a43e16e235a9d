package dataset

import (
	"sort"

	"github.com/dexdata/dexdb/pkg/schema"
)

// Dataset is an immutable, indexed snapshot of the loaded data. All
// methods are read-only; a built Dataset needs no synchronization.
type Dataset struct {
	rows map[string][]schema.Model

	pokemon       map[int]*schema.Pokemon
	pokemonByName map[string]*schema.Pokemon
	abilities     map[int]*schema.Ability
	abilityByName map[string]*schema.Ability
	items         map[int]*schema.Item
	itemByName    map[string]*schema.Item
	moves         map[int]*schema.Move
	moveByName    map[string]*schema.Move
	natures       map[int]*schema.Nature
	stats         map[int]*schema.Stat
	statByName    map[string]*schema.Stat
	types         map[int]*schema.Type
	typeByName    map[string]*schema.Type
	damageClasses map[int]*schema.MoveDamageClass
	eggGroups     map[int]*schema.EggGroup
	generations   map[int]*schema.Generation
	versions      map[int]*schema.Version
	versionGroups map[int]*schema.VersionGroup
	languages     map[int]*schema.Language
	pokedexes     map[int]*schema.Pokedex
	regions       map[int]*schema.Region
	locations     map[int]*schema.Location
	locationAreas map[int]*schema.LocationArea
	growthRates   map[int]*schema.GrowthRate
	colors        map[int]*schema.PokemonColor
	habitats      map[int]*schema.PokemonHabitat
	shapes        map[int]*schema.PokemonShape
	itemFlags     map[int]*schema.ItemFlag
	itemCats      map[int]*schema.ItemCategory
	itemPockets   map[int]*schema.ItemPocket
	berries       map[int]*schema.Berry
	encounters    map[int]*schema.Encounter
	slots         map[int]*schema.EncounterSlot
	terrains      map[int]*schema.EncounterTerrain
	condValues    map[int]*schema.EncounterConditionValue

	pokemonTypes      map[int][]schema.PokemonType
	pokemonStats      map[int][]schema.PokemonStat
	pokemonAbilities  map[int][]schema.PokemonAbility
	pokemonEggGroups  map[int][]schema.PokemonEggGroup
	pokemonFlavor     map[int][]schema.PokemonFlavorText
	pokemonDexNumbers map[int][]schema.PokemonDexNumber
	pokemonMoves      map[int][]schema.PokemonMove
	formes            map[int][]*schema.Pokemon
	evolutionsFrom    map[int][]schema.PokemonEvolution
	evolutionTo       map[int]*schema.PokemonEvolution
	itemFlagIDs       map[int][]int
	machinesByVG      map[int][]schema.Machine
	experience        map[int]map[int]int
	encounterConds    map[int][]int
}

func newDataset(rows map[string][]schema.Model) *Dataset {
	d := &Dataset{
		rows: rows,

		pokemon:       make(map[int]*schema.Pokemon),
		pokemonByName: make(map[string]*schema.Pokemon),
		abilities:     make(map[int]*schema.Ability),
		abilityByName: make(map[string]*schema.Ability),
		items:         make(map[int]*schema.Item),
		itemByName:    make(map[string]*schema.Item),
		moves:         make(map[int]*schema.Move),
		moveByName:    make(map[string]*schema.Move),
		natures:       make(map[int]*schema.Nature),
		stats:         make(map[int]*schema.Stat),
		statByName:    make(map[string]*schema.Stat),
		types:         make(map[int]*schema.Type),
		typeByName:    make(map[string]*schema.Type),
		damageClasses: make(map[int]*schema.MoveDamageClass),
		eggGroups:     make(map[int]*schema.EggGroup),
		generations:   make(map[int]*schema.Generation),
		versions:      make(map[int]*schema.Version),
		versionGroups: make(map[int]*schema.VersionGroup),
		languages:     make(map[int]*schema.Language),
		pokedexes:     make(map[int]*schema.Pokedex),
		regions:       make(map[int]*schema.Region),
		locations:     make(map[int]*schema.Location),
		locationAreas: make(map[int]*schema.LocationArea),
		growthRates:   make(map[int]*schema.GrowthRate),
		colors:        make(map[int]*schema.PokemonColor),
		habitats:      make(map[int]*schema.PokemonHabitat),
		shapes:        make(map[int]*schema.PokemonShape),
		itemFlags:     make(map[int]*schema.ItemFlag),
		itemCats:      make(map[int]*schema.ItemCategory),
		itemPockets:   make(map[int]*schema.ItemPocket),
		berries:       make(map[int]*schema.Berry),
		encounters:    make(map[int]*schema.Encounter),
		slots:         make(map[int]*schema.EncounterSlot),
		terrains:      make(map[int]*schema.EncounterTerrain),
		condValues:    make(map[int]*schema.EncounterConditionValue),

		pokemonTypes:      make(map[int][]schema.PokemonType),
		pokemonStats:      make(map[int][]schema.PokemonStat),
		pokemonAbilities:  make(map[int][]schema.PokemonAbility),
		pokemonEggGroups:  make(map[int][]schema.PokemonEggGroup),
		pokemonFlavor:     make(map[int][]schema.PokemonFlavorText),
		pokemonDexNumbers: make(map[int][]schema.PokemonDexNumber),
		pokemonMoves:      make(map[int][]schema.PokemonMove),
		formes:            make(map[int][]*schema.Pokemon),
		evolutionsFrom:    make(map[int][]schema.PokemonEvolution),
		evolutionTo:       make(map[int]*schema.PokemonEvolution),
		itemFlagIDs:       make(map[int][]int),
		machinesByVG:      make(map[int][]schema.Machine),
		experience:        make(map[int]map[int]int),
		encounterConds:    make(map[int][]int),
	}

	for _, tableRows := range rows {
		for _, row := range tableRows {
			d.index(row)
		}
	}

	d.sortCollections()
	return d
}

func (d *Dataset) index(row schema.Model) {
	switch r := row.(type) {
	case schema.Pokemon:
		p := r
		d.pokemon[p.ID] = &p
		d.pokemonByName[p.Name] = &p
	case schema.Ability:
		a := r
		d.abilities[a.ID] = &a
		d.abilityByName[a.Name] = &a
	case schema.Item:
		it := r
		d.items[it.ID] = &it
		d.itemByName[it.Name] = &it
	case schema.Move:
		m := r
		d.moves[m.ID] = &m
		d.moveByName[m.Name] = &m
	case schema.Nature:
		n := r
		d.natures[n.ID] = &n
	case schema.Stat:
		s := r
		d.stats[s.ID] = &s
		d.statByName[s.Name] = &s
	case schema.Type:
		t := r
		d.types[t.ID] = &t
		d.typeByName[t.Name] = &t
	case schema.MoveDamageClass:
		dc := r
		d.damageClasses[dc.ID] = &dc
	case schema.EggGroup:
		eg := r
		d.eggGroups[eg.ID] = &eg
	case schema.Generation:
		g := r
		d.generations[g.ID] = &g
	case schema.Version:
		v := r
		d.versions[v.ID] = &v
	case schema.VersionGroup:
		vg := r
		d.versionGroups[vg.ID] = &vg
	case schema.Language:
		l := r
		d.languages[l.ID] = &l
	case schema.Pokedex:
		p := r
		d.pokedexes[p.ID] = &p
	case schema.Region:
		reg := r
		d.regions[reg.ID] = &reg
	case schema.Location:
		l := r
		d.locations[l.ID] = &l
	case schema.LocationArea:
		la := r
		d.locationAreas[la.ID] = &la
	case schema.GrowthRate:
		gr := r
		d.growthRates[gr.ID] = &gr
	case schema.PokemonColor:
		c := r
		d.colors[c.ID] = &c
	case schema.PokemonHabitat:
		h := r
		d.habitats[h.ID] = &h
	case schema.PokemonShape:
		s := r
		d.shapes[s.ID] = &s
	case schema.ItemFlag:
		f := r
		d.itemFlags[f.ID] = &f
	case schema.ItemCategory:
		c := r
		d.itemCats[c.ID] = &c
	case schema.ItemPocket:
		p := r
		d.itemPockets[p.ID] = &p
	case schema.Berry:
		b := r
		d.berries[b.ItemID] = &b
	case schema.Encounter:
		e := r
		d.encounters[e.ID] = &e
	case schema.EncounterSlot:
		s := r
		d.slots[s.ID] = &s
	case schema.EncounterTerrain:
		t := r
		d.terrains[t.ID] = &t
	case schema.EncounterConditionValue:
		cv := r
		d.condValues[cv.ID] = &cv

	case schema.PokemonType:
		d.pokemonTypes[r.PokemonID] = append(d.pokemonTypes[r.PokemonID], r)
	case schema.PokemonStat:
		d.pokemonStats[r.PokemonID] = append(d.pokemonStats[r.PokemonID], r)
	case schema.PokemonAbility:
		d.pokemonAbilities[r.PokemonID] = append(d.pokemonAbilities[r.PokemonID], r)
	case schema.PokemonEggGroup:
		d.pokemonEggGroups[r.PokemonID] = append(d.pokemonEggGroups[r.PokemonID], r)
	case schema.PokemonFlavorText:
		d.pokemonFlavor[r.PokemonID] = append(d.pokemonFlavor[r.PokemonID], r)
	case schema.PokemonDexNumber:
		d.pokemonDexNumbers[r.PokemonID] = append(d.pokemonDexNumbers[r.PokemonID], r)
	case schema.PokemonMove:
		d.pokemonMoves[r.PokemonID] = append(d.pokemonMoves[r.PokemonID], r)
	case schema.PokemonEvolution:
		evo := r
		d.evolutionsFrom[evo.FromPokemonID] = append(d.evolutionsFrom[evo.FromPokemonID], evo)
		d.evolutionTo[evo.ToPokemonID] = &evo
	case schema.ItemFlagMap:
		d.itemFlagIDs[r.ItemID] = append(d.itemFlagIDs[r.ItemID], r.ItemFlagID)
	case schema.Machine:
		d.machinesByVG[r.VersionGroupID] = append(d.machinesByVG[r.VersionGroupID], r)
	case schema.Experience:
		if d.experience[r.GrowthRateID] == nil {
			d.experience[r.GrowthRateID] = make(map[int]int)
		}
		d.experience[r.GrowthRateID][r.Level] = r.Experience
	case schema.EncounterConditionValueMap:
		d.encounterConds[r.EncounterID] = append(
			d.encounterConds[r.EncounterID], r.EncounterConditionValueID)
	}
}

// sortCollections puts ordered collections into their game-meaningful
// order. Slot and order values encode display priority, so this is a
// correctness requirement, not cosmetics.
func (d *Dataset) sortCollections() {
	for id := range d.pokemonTypes {
		sortByInt(d.pokemonTypes[id], func(t schema.PokemonType) int { return t.Slot })
	}
	for id := range d.pokemonStats {
		sortByInt(d.pokemonStats[id], func(s schema.PokemonStat) int { return s.StatID })
	}
	for id := range d.pokemonAbilities {
		sortByInt(d.pokemonAbilities[id], func(a schema.PokemonAbility) int { return a.Slot })
	}
	for id := range d.pokemonFlavor {
		sortByInt(d.pokemonFlavor[id], func(f schema.PokemonFlavorText) int { return f.VersionID })
	}
	for id := range d.pokemonDexNumbers {
		sortByInt(d.pokemonDexNumbers[id], func(n schema.PokemonDexNumber) int { return n.PokedexID })
	}
	// Moves order by (method, level, order): ties on level are common,
	// a level-1 move and a machine move for instance.
	for id := range d.pokemonMoves {
		moves := d.pokemonMoves[id]
		sort.Slice(moves, func(i, j int) bool {
			if moves[i].PokemonMoveMethodID != moves[j].PokemonMoveMethodID {
				return moves[i].PokemonMoveMethodID < moves[j].PokemonMoveMethodID
			}
			if moves[i].Level != moves[j].Level {
				return moves[i].Level < moves[j].Level
			}
			return moves[i].Order.Int32 < moves[j].Order.Int32
		})
	}
	for vg := range d.machinesByVG {
		sortByInt(d.machinesByVG[vg], func(m schema.Machine) int { return m.MachineNumber })
	}

	// Reverse index from a base forme to its alternate formes.
	for _, p := range d.pokemon {
		if p.FormeBasePokemonID.Valid {
			base := int(p.FormeBasePokemonID.Int32)
			d.formes[base] = append(d.formes[base], p)
		}
	}
	for id := range d.formes {
		sortByInt(d.formes[id], func(p *schema.Pokemon) int { return p.ID })
	}
}

// Rows returns the raw rows of a table, in load order. Tables without a
// dedicated index are still reachable this way.
func (d *Dataset) Rows(table string) []schema.Model {
	return d.rows[table]
}

// Pokemon returns a pokémon by ID.
func (d *Dataset) Pokemon(id int) (*schema.Pokemon, error) {
	if p, ok := d.pokemon[id]; ok {
		return p, nil
	}
	return nil, notFoundError("pokemon", id)
}

// PokemonByName returns a pokémon by its English species name.
func (d *Dataset) PokemonByName(name string) (*schema.Pokemon, error) {
	if p, ok := d.pokemonByName[name]; ok {
		return p, nil
	}
	return nil, notFoundError("pokemon", name)
}

// Ability returns an ability by ID.
func (d *Dataset) Ability(id int) (*schema.Ability, error) {
	if a, ok := d.abilities[id]; ok {
		return a, nil
	}
	return nil, notFoundError("ability", id)
}

// AbilityByName returns an ability by its English name.
func (d *Dataset) AbilityByName(name string) (*schema.Ability, error) {
	if a, ok := d.abilityByName[name]; ok {
		return a, nil
	}
	return nil, notFoundError("ability", name)
}

// Item returns an item by ID.
func (d *Dataset) Item(id int) (*schema.Item, error) {
	if it, ok := d.items[id]; ok {
		return it, nil
	}
	return nil, notFoundError("item", id)
}

// ItemByName returns an item by its English name.
func (d *Dataset) ItemByName(name string) (*schema.Item, error) {
	if it, ok := d.itemByName[name]; ok {
		return it, nil
	}
	return nil, notFoundError("item", name)
}

// Move returns a move by ID.
func (d *Dataset) Move(id int) (*schema.Move, error) {
	if m, ok := d.moves[id]; ok {
		return m, nil
	}
	return nil, notFoundError("move", id)
}

// MoveByName returns a move by its English name.
func (d *Dataset) MoveByName(name string) (*schema.Move, error) {
	if m, ok := d.moveByName[name]; ok {
		return m, nil
	}
	return nil, notFoundError("move", name)
}

// Nature returns a nature by ID.
func (d *Dataset) Nature(id int) (*schema.Nature, error) {
	if n, ok := d.natures[id]; ok {
		return n, nil
	}
	return nil, notFoundError("nature", id)
}

// Type returns a type by ID.
func (d *Dataset) Type(id int) (*schema.Type, error) {
	if t, ok := d.types[id]; ok {
		return t, nil
	}
	return nil, notFoundError("type", id)
}

// TypeByName returns a type by its English name.
func (d *Dataset) TypeByName(name string) (*schema.Type, error) {
	if t, ok := d.typeByName[name]; ok {
		return t, nil
	}
	return nil, notFoundError("type", name)
}

// Stat returns a stat by ID.
func (d *Dataset) Stat(id int) (*schema.Stat, error) {
	if s, ok := d.stats[id]; ok {
		return s, nil
	}
	return nil, notFoundError("stat", id)
}

// DamageClass returns a damage class by ID.
func (d *Dataset) DamageClass(id int) (*schema.MoveDamageClass, error) {
	if dc, ok := d.damageClasses[id]; ok {
		return dc, nil
	}
	return nil, notFoundError("damage class", id)
}

// Encounter returns an encounter by ID.
func (d *Dataset) Encounter(id int) (*schema.Encounter, error) {
	if e, ok := d.encounters[id]; ok {
		return e, nil
	}
	return nil, notFoundError("encounter", id)
}

// PokemonTypes returns a pokémon's types ordered by ascending slot.
func (d *Dataset) PokemonTypes(pokemonID int) []schema.PokemonType {
	return d.pokemonTypes[pokemonID]
}

// PokemonStats returns a pokémon's stats ordered by stat ID.
func (d *Dataset) PokemonStats(pokemonID int) []schema.PokemonStat {
	return d.pokemonStats[pokemonID]
}

// PokemonAbilities returns a pokémon's abilities ordered by slot.
func (d *Dataset) PokemonAbilities(pokemonID int) []schema.PokemonAbility {
	return d.pokemonAbilities[pokemonID]
}

// PokemonEggGroups returns a pokémon's egg group links.
func (d *Dataset) PokemonEggGroups(pokemonID int) []schema.PokemonEggGroup {
	return d.pokemonEggGroups[pokemonID]
}

// PokemonFlavorText returns a pokémon's dex text ordered by version.
func (d *Dataset) PokemonFlavorText(pokemonID int) []schema.PokemonFlavorText {
	return d.pokemonFlavor[pokemonID]
}

// PokemonDexNumbers returns a pokémon's regional dex numbers ordered by
// pokédex.
func (d *Dataset) PokemonDexNumbers(pokemonID int) []schema.PokemonDexNumber {
	return d.pokemonDexNumbers[pokemonID]
}

// PokemonMoves returns a pokémon's learnable moves ordered by level.
func (d *Dataset) PokemonMoves(pokemonID int) []schema.PokemonMove {
	return d.pokemonMoves[pokemonID]
}

// Formes returns the alternate formes of a base pokémon, ordered by ID.
func (d *Dataset) Formes(basePokemonID int) []*schema.Pokemon {
	return d.formes[basePokemonID]
}

// BaseForme returns the base forme of a pokémon, or the pokémon itself
// if it is not an alternate forme.
func (d *Dataset) BaseForme(p *schema.Pokemon) *schema.Pokemon {
	if !p.FormeBasePokemonID.Valid {
		return p
	}
	return d.pokemon[int(p.FormeBasePokemonID.Int32)]
}

// EvolutionsFrom returns the evolution steps leading away from a
// pokémon.
func (d *Dataset) EvolutionsFrom(pokemonID int) []schema.PokemonEvolution {
	return d.evolutionsFrom[pokemonID]
}

// EvolutionTo returns the evolution step that produces a pokémon, or
// nil for base species.
func (d *Dataset) EvolutionTo(pokemonID int) *schema.PokemonEvolution {
	return d.evolutionTo[pokemonID]
}

// ItemFlags returns the flags attached to an item.
func (d *Dataset) ItemFlags(itemID int) []*schema.ItemFlag {
	ids := d.itemFlagIDs[itemID]
	flags := make([]*schema.ItemFlag, 0, len(ids))
	for _, id := range ids {
		if f, ok := d.itemFlags[id]; ok {
			flags = append(flags, f)
		}
	}
	return flags
}

// Machines returns the machines of a version group ordered by machine
// number.
func (d *Dataset) Machines(versionGroupID int) []schema.Machine {
	return d.machinesByVG[versionGroupID]
}

// Machine returns a single machine by number within a version group.
func (d *Dataset) Machine(machineNumber, versionGroupID int) (*schema.Machine, error) {
	for i := range d.machinesByVG[versionGroupID] {
		m := &d.machinesByVG[versionGroupID][i]
		if m.MachineNumber == machineNumber {
			return m, nil
		}
	}
	return nil, notFoundError("machine", machineNumber)
}

// ColorName returns the name of a pokémon's color. The color name is
// never stored on the pokémon row itself.
func (d *Dataset) ColorName(p *schema.Pokemon) string {
	if c, ok := d.colors[p.ColorID]; ok {
		return c.Name
	}
	return ""
}

// HabitatName returns the name of a pokémon's habitat, or "" when the
// pokémon has none.
func (d *Dataset) HabitatName(p *schema.Pokemon) string {
	if !p.HabitatID.Valid {
		return ""
	}
	if h, ok := d.habitats[int(p.HabitatID.Int32)]; ok {
		return h.Name
	}
	return ""
}

// ShapeName returns the name of a pokémon's body shape, or "" when the
// pokémon has none.
func (d *Dataset) ShapeName(p *schema.Pokemon) string {
	if !p.PokemonShapeID.Valid {
		return ""
	}
	if s, ok := d.shapes[int(p.PokemonShapeID.Int32)]; ok {
		return s.Name
	}
	return ""
}

// Pocket returns the pocket an item is sorted into, through its
// category.
func (d *Dataset) Pocket(it *schema.Item) (*schema.ItemPocket, error) {
	cat, ok := d.itemCats[it.CategoryID]
	if !ok {
		return nil, notFoundError("item category", it.CategoryID)
	}
	pocket, ok := d.itemPockets[cat.PocketID]
	if !ok {
		return nil, notFoundError("item pocket", cat.PocketID)
	}
	return pocket, nil
}

// Berry returns the berry attributes of an item, if the item is a
// berry.
func (d *Dataset) Berry(itemID int) (*schema.Berry, error) {
	if b, ok := d.berries[itemID]; ok {
		return b, nil
	}
	return nil, notFoundError("berry", itemID)
}

// ExperienceAt returns the EXP needed for a level under a growth rate.
func (d *Dataset) ExperienceAt(growthRateID, level int) (int, error) {
	exp, ok := d.experience[growthRateID][level]
	if !ok {
		return 0, notFoundError("experience level", level)
	}
	return exp, nil
}

// MaxExperience returns the EXP needed for level 100 under a growth
// rate, looked up live from the experience table.
func (d *Dataset) MaxExperience(growthRateID int) (int, error) {
	return d.ExperienceAt(growthRateID, 100)
}

// EncounterContext is an encounter resolved together with its slot,
// terrain, and condition values. Only the full tuple determines when
// and how often the encounter happens.
type EncounterContext struct {
	Encounter  *schema.Encounter
	Slot       *schema.EncounterSlot
	Terrain    *schema.EncounterTerrain
	Conditions []*schema.EncounterConditionValue
}

// EncounterContext resolves an encounter through slot and terrain to
// its condition values.
func (d *Dataset) EncounterContext(encounterID int) (*EncounterContext, error) {
	enc, ok := d.encounters[encounterID]
	if !ok {
		return nil, notFoundError("encounter", encounterID)
	}
	slot, ok := d.slots[enc.EncounterSlotID]
	if !ok {
		return nil, notFoundError("encounter slot", enc.EncounterSlotID)
	}
	terrain, ok := d.terrains[slot.EncounterTerrainID]
	if !ok {
		return nil, notFoundError("encounter terrain", slot.EncounterTerrainID)
	}

	var conds []*schema.EncounterConditionValue
	for _, id := range d.encounterConds[encounterID] {
		if cv, ok := d.condValues[id]; ok {
			conds = append(conds, cv)
		}
	}

	return &EncounterContext{
		Encounter:  enc,
		Slot:       slot,
		Terrain:    terrain,
		Conditions: conds,
	}, nil
}
