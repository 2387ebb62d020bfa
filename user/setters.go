package user

// SetName returns an UpdateSetter that sets the user's display name.
func SetName(name string) UpdateSetter {
	return func(u *User) error {
		if name == "" {
			return ErrInvalidName
		}
		u.Name = name
		return nil
	}
}

// SetRole returns an UpdateSetter that sets the user's role.
func SetRole(role Role) UpdateSetter {
	return func(u *User) error {
		if !role.IsValid() {
			return ErrInvalidRole
		}
		u.Role = role
		return nil
	}
}

// SetActive returns an UpdateSetter that sets the user's active status.
func SetActive(active bool) UpdateSetter {
	return func(u *User) error {
		u.IsActive = active
		return nil
	}
}

// SetPassword returns an UpdateSetter that hashes and sets a new password.
func SetPassword(password string) UpdateSetter {
	return func(u *User) error {
		return u.SetPassword(password)
	}
}
