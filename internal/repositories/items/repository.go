package items

//go:generate mockgen -destination=mock/mock.go -package=mockitems -source=repository.go

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperr "github.com/hollowmoor/soulsfight/internal/errors"
	"github.com/hollowmoor/soulsfight/internal/gamedata"
)

// Repository defines read access to the item catalog
type Repository interface {
	// GetWeapon returns a weapon definition by name
	GetWeapon(ctx context.Context, name string) (*gamedata.Weapon, error)

	// GetArmorBonus returns the flat defense bonus of the named armor
	GetArmorBonus(ctx context.Context, name string) (int, error)

	// GetSpell returns a spell definition by name
	GetSpell(ctx context.Context, name string) (*gamedata.Spell, error)

	// ListWeapons returns every weapon in the catalog
	ListWeapons(ctx context.Context) ([]*gamedata.Weapon, error)

	// ListSpells returns every spell in the catalog
	ListSpells(ctx context.Context) ([]*gamedata.Spell, error)
}

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository creates a catalog repository backed by gorm
func NewSQLiteRepository(db *gorm.DB) Repository {
	if db == nil {
		panic("gorm DB cannot be nil")
	}
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetWeapon(ctx context.Context, name string) (*gamedata.Weapon, error) {
	if name == "" {
		return nil, apperr.InvalidArgument("weapon name is required")
	}

	var record WeaponRecord
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("weapon '%s' not found in catalog", name).
			WithMeta("item_name", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load weapon: %w", err)
	}
	return record.ToWeapon(), nil
}

func (r *sqliteRepository) GetArmorBonus(ctx context.Context, name string) (int, error) {
	if name == "" {
		return 0, apperr.InvalidArgument("armor name is required")
	}

	var record ArmorRecord
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperr.NotFoundf("armor '%s' not found in catalog", name).
			WithMeta("item_name", name)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load armor: %w", err)
	}
	return record.FlatBonus, nil
}

func (r *sqliteRepository) GetSpell(ctx context.Context, name string) (*gamedata.Spell, error) {
	if name == "" {
		return nil, apperr.InvalidArgument("spell name is required")
	}

	var record SpellRecord
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("spell '%s' not found in catalog", name).
			WithMeta("item_name", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load spell: %w", err)
	}
	return record.ToSpell(), nil
}

func (r *sqliteRepository) ListWeapons(ctx context.Context) ([]*gamedata.Weapon, error) {
	var records []WeaponRecord
	if err := r.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list weapons: %w", err)
	}

	weapons := make([]*gamedata.Weapon, 0, len(records))
	for i := range records {
		weapons = append(weapons, records[i].ToWeapon())
	}
	return weapons, nil
}

func (r *sqliteRepository) ListSpells(ctx context.Context) ([]*gamedata.Spell, error) {
	var records []SpellRecord
	if err := r.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list spells: %w", err)
	}

	spells := make([]*gamedata.Spell, 0, len(records))
	for i := range records {
		spells = append(spells, records[i].ToSpell())
	}
	return spells, nil
}
