// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a registered customer of the ordering system.
//
// PasswordHash holds the bcrypt digest of the user's password. It is
// never serialized to clients, so a User can be returned from the profile
// endpoint as is.
type User struct {
	// ID is the identifier assigned by the data store on registration.
	ID int64 `json:"id"`

	// Name is the display name supplied at registration.
	Name string `json:"name"`

	// Email is the login identifier. Uniqueness is enforced by the data store.
	Email string `json:"email"`

	// PasswordHash is the salted bcrypt hash of the user's password.
	PasswordHash string `json:"-"`
}
