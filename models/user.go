package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a signup record from the onboarding stub. Citizens and ward
// staff share the shape; Role tells them apart.
type User struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"`
	Aadhaar     string    `json:"aadhar"`
	Mobile      string    `json:"mobile"`
	VoterID     string    `json:"voterId,omitempty"`
	HouseNumber string    `json:"houseNumber,omitempty"`
	WardNumber  string    `json:"wardNumber,omitempty"`
	WardLeader  string    `json:"wardLeader,omitempty"`
	Department  string    `json:"department,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Privacy controls which profile fields other citizens can see.
type Privacy struct {
	ShowBio           bool `json:"showBio"`
	ShowContributions bool `json:"showContributions"`
}

// Session is a login session entry shown on the profile page.
type Session struct {
	ID         string    `json:"id"`
	Device     string    `json:"device"`
	IP         string    `json:"ip"`
	LastActive time.Time `json:"lastActive"`
	Current    bool      `json:"current,omitempty"`
}

// Profile holds a user's editable account data. Password is a bcrypt
// hash and never serialized.
type Profile struct {
	UserID           string    `json:"userId"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Aadhaar          string    `json:"aadhaar"`
	AvatarURL        string    `json:"avatarUrl"`
	Bio              string    `json:"bio"`
	TwoFactorEnabled bool      `json:"twoFactorEnabled"`
	Privacy          Privacy   `json:"privacy"`
	Password         string    `json:"-"`
	Sessions         []Session `json:"-"`
}

func (p *Profile) HashPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Password = string(hashed)
	return nil
}

func (p *Profile) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(candidate))
	return err == nil
}
