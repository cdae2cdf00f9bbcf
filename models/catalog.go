package models

// Character - персонаж (таблица character)
type Character struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(250);not null"`
	Description string `json:"description" gorm:"type:varchar(250);not null"`
}

func NewCharacter(name, description string) Character {
	return Character{Name: name, Description: description}
}

func (Character) TableName() string {
	return "character"
}

// Planet - планета (таблица planeta)
type Planet struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(250);not null"`
	Description string `json:"description" gorm:"type:varchar(250);not null"`
}

func NewPlanet(name, description string) Planet {
	return Planet{Name: name, Description: description}
}

func (Planet) TableName() string {
	return "planeta"
}

// CatalogResponse is the shared view of characters and planets.
type CatalogResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (ch Character) Serialize() CatalogResponse {
	return CatalogResponse{ID: ch.ID, Name: ch.Name, Description: ch.Description}
}

func (p Planet) Serialize() CatalogResponse {
	return CatalogResponse{ID: p.ID, Name: p.Name, Description: p.Description}
}
