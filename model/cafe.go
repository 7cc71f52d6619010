package model

// Cafe is one row of the `cafe` table: a cafe's metadata plus its amenity
// flags. Seats and CoffeePrice are pointers so an absent value round-trips as
// JSON null rather than an empty string.
type Cafe struct {
	ID           uint    `json:"id" gorm:"column:id;primaryKey"`
	Name         string  `json:"name" gorm:"column:name;size:250;not null;uniqueIndex"`
	MapURL       string  `json:"map_url" gorm:"column:map_url;size:500;not null"`
	ImgURL       string  `json:"img_url" gorm:"column:img_url;size:500;not null"`
	Location     string  `json:"location" gorm:"column:location;size:250;not null"`
	HasSockets   bool    `json:"has_sockets" gorm:"column:has_sockets;not null"`
	HasToilet    bool    `json:"has_toilet" gorm:"column:has_toilet;not null"`
	HasWifi      bool    `json:"has_wifi" gorm:"column:has_wifi;not null"`
	CanTakeCalls bool    `json:"can_take_calls" gorm:"column:can_take_calls;not null"`
	Seats        *string `json:"seats" gorm:"column:seats;size:250"`
	CoffeePrice  *string `json:"coffee_price" gorm:"column:coffee_price;size:250"`
}

func (Cafe) TableName() string { return "cafe" }
