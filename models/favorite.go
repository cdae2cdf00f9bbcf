package models

import (
	"errors"

	"gorm.io/gorm"
)

const (
	NoCharacter = "No character!"
	NoPlanet    = "No planet!"
	NoUser      = "No user!"
)

// ErrInvalidFavoriteTarget is returned when a favorite points at neither or both of character and planet.
var ErrInvalidFavoriteTarget = errors.New("favorite must reference exactly one character or planet")

// FavoriteTarget is what a favorite points at: CharacterFavorite or PlanetFavorite.
type FavoriteTarget interface {
	TargetID() uint
	column() string
}

type CharacterFavorite struct{ ID uint }

func (t CharacterFavorite) TargetID() uint { return t.ID }
func (CharacterFavorite) column() string { return "character_id" }

type PlanetFavorite struct{ ID uint }

func (t PlanetFavorite) TargetID() uint { return t.ID }
func (PlanetFavorite) column() string { return "planeta_id" }

// TargetColumn returns the favorite column that stores the target id.
func TargetColumn(t FavoriteTarget) string {
	return t.column()
}

// Favorite - избранное пользователя (персонаж или планета)
type Favorite struct {
	ID          uint  `json:"id" gorm:"primaryKey"`
	CharacterID *uint `json:"character_id" gorm:"index"`
	PlanetID    *uint `json:"planeta_id" gorm:"column:planeta_id;index"`
	UserID      uint  `json:"usuario_id" gorm:"column:usuario_id;not null;index"`

	Character *Character `json:"-" gorm:"foreignKey:CharacterID;references:ID"`
	Planet    *Planet    `json:"-" gorm:"foreignKey:PlanetID;references:ID"`
	User      *User      `json:"-" gorm:"foreignKey:UserID;references:ID"`
}

func (Favorite) TableName() string {
	return "favorite"
}

func NewFavorite(target FavoriteTarget, userID uint) Favorite {
	id := target.TargetID()
	fav := Favorite{UserID: userID}
	switch target.(type) {
	case CharacterFavorite:
		fav.CharacterID = &id
	case PlanetFavorite:
		fav.PlanetID = &id
	}
	return fav
}

// Target recovers the variant stored in the row. ok is false for malformed rows.
func (f Favorite) Target() (target FavoriteTarget, ok bool) {
	switch {
	case f.CharacterID != nil && f.PlanetID == nil:
		return CharacterFavorite{ID: *f.CharacterID}, true
	case f.PlanetID != nil && f.CharacterID == nil:
		return PlanetFavorite{ID: *f.PlanetID}, true
	}
	return nil, false
}

func (f *Favorite) BeforeSave(tx *gorm.DB) error {
	if _, ok := f.Target(); !ok {
		return ErrInvalidFavoriteTarget
	}
	return nil
}

// FavoriteResponse nests the related views, or a placeholder string when a relation is absent.
type FavoriteResponse struct {
	ID        uint `json:"id"`
	Character any  `json:"character"`
	Planet    any  `json:"planeta"`
	User      any  `json:"usuario"`
}

func (f Favorite) Serialize() FavoriteResponse {
	out := FavoriteResponse{ID: f.ID, Character: NoCharacter, Planet: NoPlanet, User: NoUser}
	if f.Character != nil {
		out.Character = f.Character.Serialize()
	}
	if f.Planet != nil {
		out.Planet = f.Planet.Serialize()
	}
	if f.User != nil {
		out.User = f.User.Serialize()
	}
	return out
}
