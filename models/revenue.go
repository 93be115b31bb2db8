package models

type Revenue struct {
	Month   string `gorm:"size:4;unique;not null" json:"month"`
	Revenue int64  `gorm:"not null" json:"revenue"`
}

func (Revenue) TableName() string {
	return "revenue"
}
