// Package models defines the account, credential and record types of the
// local vault.
package models

import "time"

// Profile is the descriptive part of an account.
type Profile struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// Account is one registered local user. Username is the immutable, case-sensitive
// primary key.
//
// LegacyPassword is only ever set on accounts written before digests were
// introduced; MigrateLegacyAccounts replaces it with PasswordDigest.
type Account struct {
	Username       string     `json:"username"`
	PasswordDigest string     `json:"passwordDigest,omitempty"`
	Salt           string     `json:"salt,omitempty"`
	Profile        Profile    `json:"profile"`
	RegisteredAt   time.Time  `json:"registeredAt"`
	LastLoginAt    *time.Time `json:"lastLoginAt"`
	LegacyPassword string     `json:"password,omitempty"`
}

// KeyMaterial returns the credential material needed to open the
// account's records.
func (a *Account) KeyMaterial() KeyMaterial {
	return KeyMaterial{PasswordDigest: a.PasswordDigest, Salt: a.Salt}
}

// KeyMaterial is what every record operation needs to re-derive the
// account's encryption key. It is passed explicitly; nothing keeps it
// globally.
type KeyMaterial struct {
	PasswordDigest string
	Salt           string
}
