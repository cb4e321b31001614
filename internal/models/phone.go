package models

import (
	"encoding/json"

	"baraholkaCPT/internal/apperr"
)

// Phone - строковый телефон в JSON-запросах. Клиенты иногда присылают массив
// телефонов, такое значение отклоняется еще на разборе запроса.
type Phone string

func (p *Phone) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return apperr.Validation("телефон должен быть одной строкой, а не массивом")
	}
	*p = Phone(s)
	return nil
}

func (p Phone) String() string {
	return string(p)
}
