package items

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenAndMigrate opens the catalog database, migrates its schema and
// seeds the default item set when the catalog is empty
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&WeaponRecord{}, &ArmorRecord{}, &SpellRecord{}); err != nil {
		return nil, err
	}

	seedDefaultItems(db)
	return db, nil
}

func seedDefaultItems(db *gorm.DB) {
	var count int64
	db.Model(&WeaponRecord{}).Count(&count)
	if count > 0 {
		return
	}

	weapons := []WeaponRecord{
		{Name: "Longsword", DamageType: "slashing", DiceCount: 1, DiceSides: 8, FlatBonus: 1, ScalingStat: "STR"},
		{Name: "Claymore", DamageType: "slashing", DiceCount: 2, DiceSides: 6, ScalingStat: "STR", TwoHanded: true},
		{Name: "Estoc", DamageType: "piercing", DiceCount: 1, DiceSides: 8, ScalingStat: "DEX"},
		{Name: "Reinforced Club", DamageType: "bludgeoning", DiceCount: 1, DiceSides: 6, FlatBonus: 2, ScalingStat: "STR"},
		{Name: "Broken Straight Sword", DamageType: "slashing", DiceCount: 1, DiceSides: 4},
	}
	db.Create(&weapons)

	armors := []ArmorRecord{
		{Name: "Knight Set", ArmorType: "medium", FlatBonus: 3},
		{Name: "Leather Set", ArmorType: "light", FlatBonus: 1},
		{Name: "Havel's Set", ArmorType: "heavy", FlatBonus: 5},
	}
	db.Create(&armors)

	spells := []SpellRecord{
		{Name: "Fireball", SpellType: "sorcery", EffectKind: "damage", DamageType: "fire", DiceCount: 2, DiceSides: 6, ScalingStat: "INT", APCost: 4},
		{Name: "Soul Arrow", SpellType: "sorcery", EffectKind: "damage", DamageType: "magic", DiceCount: 1, DiceSides: 10, ScalingStat: "INT", APCost: 2},
		{Name: "Heal Aid", SpellType: "miracle", EffectKind: "healing", FlatBonus: 5, ScalingStat: "FTH", APCost: 3},
		{Name: "Sacred Oath", SpellType: "miracle", EffectKind: "buff", FlatBonus: 2, ScalingStat: "FTH", APCost: 5, Duration: 3, Description: "Raises attack rolls"},
		{Name: "Dark Hand", SpellType: "sorcery", EffectKind: "debuff", FlatBonus: 2, ScalingStat: "INT", APCost: 3, Duration: 2, Description: "Saps attack rolls"},
		{Name: "Hidden Body", SpellType: "sorcery", EffectKind: "utility", APCost: 2, Description: "Turns the caster near invisible"},
	}
	db.Create(&spells)
}
