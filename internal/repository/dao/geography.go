package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrPartyNotFound = errors.New("party not found")

// Geography reference tables. This core only ever reads them; seeding
// happens outside (migrations load the 37 states, districts, LGAs and
// wards once).

type State struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"unique;not null"`
}

type SenatorialDistrict struct {
	ID      uint   `gorm:"primaryKey"`
	StateID uint   `gorm:"not null;index"`
	State   State  `gorm:"foreignKey:StateID"`
	Name    string `gorm:"not null"`
}

type LGA struct {
	ID      uint   `gorm:"primaryKey"`
	StateID uint   `gorm:"not null;index"`
	State   State  `gorm:"foreignKey:StateID"`
	Name    string `gorm:"not null"`
}

type Ward struct {
	ID    uint   `gorm:"primaryKey"`
	LgaID uint   `gorm:"not null;index"`
	Lga   LGA    `gorm:"foreignKey:LgaID"`
	Name  string `gorm:"not null"`
}

type Party struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"unique;not null"`
	Acronym  string `gorm:"unique;not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

type GeographyDAO struct {
	db *gorm.DB
}

func NewGeographyDAO(db *gorm.DB) *GeographyDAO {
	return &GeographyDAO{
		db: db,
	}
}

func (d *GeographyDAO) ListStates(ctx context.Context) ([]State, error) {
	var states []State
	if err := d.db.WithContext(ctx).Order("id").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

func (d *GeographyDAO) FindStatesByIDs(ctx context.Context, ids []uint) ([]State, error) {
	var states []State
	if err := d.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

func (d *GeographyDAO) ListSenatorialDistricts(ctx context.Context) ([]SenatorialDistrict, error) {
	var districts []SenatorialDistrict
	if err := d.db.WithContext(ctx).Order("id").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

func (d *GeographyDAO) FindSenatorialDistrictsByIDs(ctx context.Context, ids []uint) ([]SenatorialDistrict, error) {
	var districts []SenatorialDistrict
	if err := d.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

func (d *GeographyDAO) ListSenatorialDistrictsByState(ctx context.Context, stateID uint) ([]SenatorialDistrict, error) {
	var districts []SenatorialDistrict
	if err := d.db.WithContext(ctx).Where("state_id = ?", stateID).Order("id").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

func (d *GeographyDAO) ListLGAs(ctx context.Context) ([]LGA, error) {
	var lgas []LGA
	if err := d.db.WithContext(ctx).Order("id").Find(&lgas).Error; err != nil {
		return nil, err
	}
	return lgas, nil
}

func (d *GeographyDAO) FindLGAsByIDs(ctx context.Context, ids []uint) ([]LGA, error) {
	var lgas []LGA
	if err := d.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&lgas).Error; err != nil {
		return nil, err
	}
	return lgas, nil
}

func (d *GeographyDAO) ListLGAsByState(ctx context.Context, stateID uint) ([]LGA, error) {
	var lgas []LGA
	if err := d.db.WithContext(ctx).Where("state_id = ?", stateID).Order("id").Find(&lgas).Error; err != nil {
		return nil, err
	}
	return lgas, nil
}

func (d *GeographyDAO) ListWards(ctx context.Context) ([]Ward, error) {
	var wards []Ward
	if err := d.db.WithContext(ctx).Order("id").Find(&wards).Error; err != nil {
		return nil, err
	}
	return wards, nil
}

func (d *GeographyDAO) FindWardsByIDs(ctx context.Context, ids []uint) ([]Ward, error) {
	var wards []Ward
	if err := d.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&wards).Error; err != nil {
		return nil, err
	}
	return wards, nil
}

func (d *GeographyDAO) ListWardsByLGA(ctx context.Context, lgaID uint) ([]Ward, error) {
	var wards []Ward
	if err := d.db.WithContext(ctx).Where("lga_id = ?", lgaID).Order("id").Find(&wards).Error; err != nil {
		return nil, err
	}
	return wards, nil
}

func (d *GeographyDAO) ListActiveParties(ctx context.Context) ([]Party, error) {
	var parties []Party
	if err := d.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&parties).Error; err != nil {
		return nil, err
	}
	return parties, nil
}

func (d *GeographyDAO) FindPartyByID(ctx context.Context, id uint) (Party, error) {
	var party Party

	result := d.db.WithContext(ctx).First(&party, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Party{}, ErrPartyNotFound
		}

		return Party{}, result.Error
	}

	return party, nil
}
