package models

import "time"

// OrganizationType - организационно-правовая форма организации.
type OrganizationType string

const (
	IE  OrganizationType = "IE"
	LLC OrganizationType = "LLC"
	JSC OrganizationType = "JSC"
)

// Employee представляет пользователя системы. Создаётся внешним путём
// регистрации и здесь никогда не изменяется.
type Employee struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Organization представляет организацию.
type Organization struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Type        OrganizationType `json:"type"`
	CreatedAt   time.Time        `json:"createdAt"`
}
