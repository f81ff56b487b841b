// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol represents one tradable instrument in the directory the UI uses to
// populate its symbol pickers. RefPrice is a rough last-known price kept for
// display purposes, not for trading decisions.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Market    string    `gorm:"size:100;not null"`
	RefPrice  float64   `gorm:"not null;default:0"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
