package character

import (
	"time"

	"github.com/hollowmoor/soulsfight/internal/gamedata"
)

// StatName identifies one of the six character attributes
type StatName string

const (
	StatStrength     StatName = "STR"
	StatDexterity    StatName = "DEX"
	StatIntelligence StatName = "INT"
	StatFaith        StatName = "FTH"
	StatVitality     StatName = "VIT"
	StatEndurance    StatName = "END"
)

// StatNames lists every attribute in display order
var StatNames = []StatName{
	StatStrength, StatDexterity, StatIntelligence,
	StatFaith, StatVitality, StatEndurance,
}

// Stat holds an attribute's raw value and its derived modifier
type Stat struct {
	Value    int `json:"value"`
	Modifier int `json:"modifier"`
}

// Resource is a depletable pool such as HP or AP
type Resource struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Slot names an equipment slot on a character
type Slot string

const (
	SlotRightHand Slot = "right_hand"
	SlotLeftHand  Slot = "left_hand"
	SlotArmor     Slot = "armor"
	SlotSpell1    Slot = "spell_1"
	SlotSpell2    Slot = "spell_2"
	SlotSpell3    Slot = "spell_3"
	SlotSpell4    Slot = "spell_4"
)

// SpellSlots lists the attunement slots in order
var SpellSlots = []Slot{SlotSpell1, SlotSpell2, SlotSpell3, SlotSpell4}

// Character is a persistent playable (or hostile) entity. Equipped slots
// reference items in the catalog by name; the catalog owns the item data.
type Character struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsPlayer  bool   `json:"is_player"`
	Level     int    `json:"level"`
	Souls     int    `json:"souls"`
	Hollowing int    `json:"hollowing"`

	Stats map[StatName]*Stat `json:"stats"`

	HP Resource `json:"hp"`
	AP Resource `json:"ap"`

	EquippedSlots map[Slot]string `json:"equipped_slots"`
	Inventory     []string        `json:"inventory"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stat returns the named attribute, or a zero stat when unassigned
func (c *Character) Stat(name StatName) Stat {
	if c.Stats == nil {
		return Stat{}
	}
	if s, ok := c.Stats[name]; ok && s != nil {
		return *s
	}
	return Stat{}
}

// StatModifier returns the modifier for a scaling stat
func (c *Character) StatModifier(stat gamedata.ScalingStat) int {
	return c.Stat(StatName(stat)).Modifier
}

// EquippedItem returns the item name in a slot, empty when the slot is bare
func (c *Character) EquippedItem(slot Slot) string {
	if c.EquippedSlots == nil {
		return ""
	}
	return c.EquippedSlots[slot]
}

// Equip places an item name into a slot, displacing whatever was there
func (c *Character) Equip(slot Slot, itemName string) {
	if c.EquippedSlots == nil {
		c.EquippedSlots = make(map[Slot]string)
	}
	c.EquippedSlots[slot] = itemName
}

// Unequip clears a slot and reports whether anything was removed
func (c *Character) Unequip(slot Slot) bool {
	if c.EquippedSlots == nil {
		return false
	}
	_, ok := c.EquippedSlots[slot]
	delete(c.EquippedSlots, slot)
	return ok
}

// HasSpellEquipped reports whether the named spell sits in any attunement slot
func (c *Character) HasSpellEquipped(name string) bool {
	for _, slot := range SpellSlots {
		if c.EquippedItem(slot) == name {
			return true
		}
	}
	return false
}

// IsAlive reports whether the character has hit points remaining
func (c *Character) IsAlive() bool {
	return c.HP.Current > 0
}
