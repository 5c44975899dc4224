package items

import "github.com/hollowmoor/soulsfight/internal/gamedata"

// WeaponRecord is the persisted weapon catalog row
type WeaponRecord struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"uniqueIndex"`
	DamageType  string
	DiceCount   int
	DiceSides   int
	FlatBonus   int
	ScalingStat string
	TwoHanded   bool
}

func (WeaponRecord) TableName() string { return "weapons" }

// ToWeapon converts a catalog row into the engine's weapon definition
func (r *WeaponRecord) ToWeapon() *gamedata.Weapon {
	return &gamedata.Weapon{
		Name:        r.Name,
		DamageType:  gamedata.DamageType(r.DamageType),
		DiceCount:   r.DiceCount,
		DiceSides:   r.DiceSides,
		FlatBonus:   r.FlatBonus,
		ScalingStat: gamedata.ScalingStat(r.ScalingStat),
		TwoHanded:   r.TwoHanded,
	}
}

// ArmorRecord is the persisted armor catalog row
type ArmorRecord struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex"`
	ArmorType string
	FlatBonus int
}

func (ArmorRecord) TableName() string { return "armors" }

// SpellRecord is the persisted spell catalog row
type SpellRecord struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"uniqueIndex"`
	SpellType   string
	EffectKind  string
	DamageType  string
	DiceCount   int
	DiceSides   int
	FlatBonus   int
	ScalingStat string
	APCost      int
	Duration    int
	Description string
}

func (SpellRecord) TableName() string { return "spells" }

// ToSpell converts a catalog row into the engine's spell definition
func (r *SpellRecord) ToSpell() *gamedata.Spell {
	return &gamedata.Spell{
		Name:        r.Name,
		EffectKind:  gamedata.SpellEffectKind(r.EffectKind),
		DamageType:  gamedata.DamageType(r.DamageType),
		DiceCount:   r.DiceCount,
		DiceSides:   r.DiceSides,
		FlatBonus:   r.FlatBonus,
		ScalingStat: gamedata.ScalingStat(r.ScalingStat),
		APCost:      r.APCost,
		Duration:    r.Duration,
		Description: r.Description,
	}
}
