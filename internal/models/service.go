package models

// Catálogo de serviços; seed feito no primeiro boot, somente leitura depois
type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	DurationMin int     `gorm:"column:duration" json:"duration"`
	Price       float64 `json:"price"`
}
