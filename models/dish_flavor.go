package models

import "encoding/json"

// DishFlavor is one flavor group of a dish, e.g. name "spiciness" with
// options ["mild","medium","hot"]. Options are stored as a JSON array in
// the value column. Rows are deleted and re-inserted wholesale on every
// dish update, never diffed.
type DishFlavor struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	DishID uint   `gorm:"not null;index" json:"dish_id"`
	Name   string `gorm:"type:varchar(100);not null" json:"name"`
	Value  string `gorm:"type:text" json:"value"`
}

func (f *DishFlavor) SetOptions(options []string) error {
	raw, err := json.Marshal(options)
	if err != nil {
		return err
	}
	f.Value = string(raw)
	return nil
}

func (f *DishFlavor) GetOptions() []string {
	var options []string
	if f.Value == "" {
		return options
	}
	if err := json.Unmarshal([]byte(f.Value), &options); err != nil {
		return nil
	}
	return options
}
