package dataset

import (
	"github.com/dexdata/dexdb/pkg/schema"
)

// PokemonStat finds one of a pokémon's stat rows. The stat argument
// accepts either a *schema.Stat or a stat name string. A missing stat
// is a recoverable lookup failure, not an integrity violation.
func (d *Dataset) PokemonStat(p *schema.Pokemon, stat any) (*schema.PokemonStat, error) {
	var statID int
	switch s := stat.(type) {
	case *schema.Stat:
		statID = s.ID
	case string:
		row, ok := d.statByName[s]
		if !ok {
			return nil, statNotFoundError(s)
		}
		statID = row.ID
	default:
		return nil, statNotFoundError(stat)
	}

	for i := range d.pokemonStats[p.ID] {
		ps := &d.pokemonStats[p.ID][i]
		if ps.StatID == statID {
			return ps, nil
		}
	}
	return nil, statNotFoundError(stat)
}

// betterDamageClassThreshold is how far Attack and Special Attack must
// diverge before a pokémon counts as leaning one way.
const betterDamageClassThreshold = 5

// BetterDamageClass reports whether a pokémon is more of a physical or
// a special attacker. A nil result with a nil error means no clear
// preference; it is deliberately distinct from the damage class named
// "None".
func (d *Dataset) BetterDamageClass(p *schema.Pokemon) (*schema.MoveDamageClass, error) {
	attack, err := d.PokemonStat(p, "Attack")
	if err != nil {
		return nil, err
	}
	spAttack, err := d.PokemonStat(p, "Special Attack")
	if err != nil {
		return nil, err
	}

	diff := attack.BaseStat - spAttack.BaseStat

	var statID int
	switch {
	case diff > betterDamageClassThreshold:
		statID = attack.StatID
	case diff < -betterDamageClassThreshold:
		statID = spAttack.StatID
	default:
		return nil, nil
	}

	stat := d.stats[statID]
	if !stat.DamageClassID.Valid {
		return nil, notFoundError("damage class for stat", stat.Name)
	}
	return d.DamageClass(int(stat.DamageClassID.Int32))
}

// ItemAppearsUnderground reports whether an item can be dug up in the
// Sinnoh Underground. True iff one of the item's flags carries the
// identifier "underground".
func (d *Dataset) ItemAppearsUnderground(it *schema.Item) bool {
	for _, flag := range d.ItemFlags(it.ID) {
		if flag.Identifier == "underground" {
			return true
		}
	}
	return false
}
