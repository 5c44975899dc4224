package gamedata

// DamageType categorizes weapon and spell damage
type DamageType string

const (
	DamageSlashing    DamageType = "slashing"
	DamagePiercing    DamageType = "piercing"
	DamageBludgeoning DamageType = "bludgeoning"
	DamageFire        DamageType = "fire"
	DamageLightning   DamageType = "lightning"
	DamageMagic       DamageType = "magic"
	DamageDark        DamageType = "dark"
	DamageFrost       DamageType = "frost"
)

// ScalingStat names a character attribute a weapon or spell scales with
type ScalingStat string

const (
	ScalingStrength     ScalingStat = "STR"
	ScalingDexterity    ScalingStat = "DEX"
	ScalingIntelligence ScalingStat = "INT"
	ScalingFaith        ScalingStat = "FTH"
)

// Grade is the letter grade a stat value maps to on the scaling table
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
)

// Weapon is the read-only weapon definition the engine consumes
type Weapon struct {
	Name        string
	DamageType  DamageType
	DiceCount   int
	DiceSides   int
	FlatBonus   int
	ScalingStat ScalingStat // empty when the weapon does not scale
	TwoHanded   bool
}

// SpellEffectKind mirrors the engine's effect taxonomy for spell payloads
type SpellEffectKind string

const (
	SpellDamage  SpellEffectKind = "damage"
	SpellHealing SpellEffectKind = "healing"
	SpellBuff    SpellEffectKind = "buff"
	SpellDebuff  SpellEffectKind = "debuff"
	SpellUtility SpellEffectKind = "utility"
)

// Spell is the read-only spell definition the engine consumes
type Spell struct {
	Name        string
	EffectKind  SpellEffectKind
	DamageType  DamageType
	DiceCount   int
	DiceSides   int
	FlatBonus   int
	ScalingStat ScalingStat
	APCost      int
	Duration    int // rounds, for buff/debuff payloads
	Description string
}
