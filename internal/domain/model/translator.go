package model

import "time"

// Translator is a candidate worker who may accept jobs and receive notifications.
type Translator struct {
	ID           string    `json:"id"                     db:"id"`
	Name         string    `json:"name"                   db:"name"`
	Email        string    `json:"email"                  db:"email"`
	Phone        string    `json:"phone,omitempty"        db:"phone"`
	DeviceToken  string    `json:"device_token,omitempty" db:"device_token"`
	LanguageFrom string    `json:"language_from"          db:"language_from"`
	LanguageTo   string    `json:"language_to"            db:"language_to"`
	Region       string    `json:"region,omitempty"       db:"region"`
	Active       bool      `json:"active"                 db:"active"`
	CreatedAt    time.Time `json:"created_at"             db:"created_at"`
}

// Contact is the delivery address material the dispatcher needs for one
// recipient. Resolved from the translator record, cached in redis.
type Contact struct {
	TranslatorID string `json:"translator_id"          db:"translator_id"`
	DeviceToken  string `json:"device_token,omitempty" db:"device_token"`
	Phone        string `json:"phone,omitempty"        db:"phone"`
	Email        string `json:"email,omitempty"        db:"email"`
}
