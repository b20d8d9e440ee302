package models

type Organization struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
}
